package sem

import (
	"silica/internal/syntax"
	"silica/internal/types"
)

// resolveTypeRef maps a written data type onto the semantic type model.
// Implicit types resolve to the given default.
func resolveTypeRef(tr *syntax.TypeRef, implicit *types.Type) *types.Type {
	if tr.Implicit() {
		return implicit
	}
	switch tr.Kind {
	case syntax.TypeLogic:
		if tr.Width > 1 {
			return types.LogicVector(tr.Width)
		}
		return types.Logic()
	case syntax.TypeInt:
		return types.Int()
	case syntax.TypeReal:
		return types.Real()
	case syntax.TypeString:
		return types.String()
	case syntax.TypeVoid:
		return types.Void()
	default:
		return types.Error()
	}
}
