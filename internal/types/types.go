package types

import (
	"fmt"
	"sync"
)

// Kind classifies the semantic type of a bound value.
type Kind uint8

const (
	KindError Kind = iota
	KindVoid
	KindLogic
	KindInt
	KindReal
	KindString
	KindFixedArray
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindLogic:
		return "logic"
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	case KindFixedArray:
		return "fixed array"
	default:
		return "<error>"
	}
}

// Type is an immutable semantic type. Shared singletons cover the scalar
// kinds; fixed arrays are canonicalized per (element, length). Compare
// through the predicate methods, not by identity.
type Type struct {
	Kind  Kind
	Width uint32 // bit width for logic vectors, 0 when not applicable
	Elem  *Type  // element type for fixed arrays
	Len   uint32 // element count for fixed arrays
}

var (
	errorType  = &Type{Kind: KindError}
	voidType   = &Type{Kind: KindVoid}
	logicType  = &Type{Kind: KindLogic, Width: 1}
	intType    = &Type{Kind: KindInt, Width: 32}
	realType   = &Type{Kind: KindReal}
	stringType = &Type{Kind: KindString}
)

func Error() *Type  { return errorType }
func Void() *Type   { return voidType }
func Logic() *Type  { return logicType }
func Int() *Type    { return intType }
func Real() *Type   { return realType }
func String() *Type { return stringType }

// LogicVector returns a logic type of the given width.
func LogicVector(width uint32) *Type {
	if width == 1 {
		return logicType
	}
	return &Type{Kind: KindLogic, Width: width}
}

type fixedKey struct {
	elem *Type
	len  uint32
}

var (
	fixedMu     sync.Mutex
	fixedArrays = map[fixedKey]*Type{}
)

// FixedArray builds a fixed-size unpacked array of elem. Repeated calls with
// the same element and length return the same instance; the table is shared
// across concurrent compilations.
func FixedArray(elem *Type, length uint32) *Type {
	key := fixedKey{elem: elem, len: length}
	fixedMu.Lock()
	defer fixedMu.Unlock()
	if t, ok := fixedArrays[key]; ok {
		return t
	}
	t := &Type{Kind: KindFixedArray, Elem: elem, Len: length}
	fixedArrays[key] = t
	return t
}

func (t *Type) IsError() bool { return t == nil || t.Kind == KindError }
func (t *Type) IsVoid() bool  { return t != nil && t.Kind == KindVoid }

// IsIntegral reports whether the type participates in integral contexts
// (weights, repeat counts, finish codes).
func (t *Type) IsIntegral() bool {
	if t == nil {
		return false
	}
	return t.Kind == KindLogic || t.Kind == KindInt
}

// IsNumeric additionally admits real values (rand join controls).
func (t *Type) IsNumeric() bool {
	return t.IsIntegral() || (t != nil && t.Kind == KindReal)
}

// IsBooleanConvertible reports whether a value of this type can stand as a
// condition.
func (t *Type) IsBooleanConvertible() bool {
	return t.IsNumeric()
}

// BitWidth returns the width of integral types and 0 otherwise.
func (t *Type) BitWidth() uint32 {
	if t == nil || !t.IsIntegral() {
		return 0
	}
	return t.Width
}

func (t *Type) String() string {
	if t == nil {
		return "<error>"
	}
	switch t.Kind {
	case KindLogic:
		if t.Width > 1 {
			return fmt.Sprintf("logic[%d]", t.Width)
		}
		return "logic"
	case KindFixedArray:
		return fmt.Sprintf("%s$[%d]", t.Elem, t.Len)
	default:
		return t.Kind.String()
	}
}
