package syntax

import (
	"silica/internal/source"
)

// ElabTaskKind identifies the elaboration system task being invoked.
type ElabTaskKind uint8

const (
	TaskFatal ElabTaskKind = iota
	TaskError
	TaskWarning
	TaskInfo
	TaskStaticAssert
)

func (k ElabTaskKind) String() string {
	switch k {
	case TaskFatal:
		return "$fatal"
	case TaskError:
		return "$error"
	case TaskWarning:
		return "$warning"
	case TaskInfo:
		return "$info"
	case TaskStaticAssert:
		return "$static_assert"
	}
	return "?"
}

// ElabSystemTask is a $fatal/$error/$warning/$info/$static_assert directive
// at module scope.
type ElabSystemTask struct {
	TaskKind ElabTaskKind
	Args     []Argument // nil when no argument list was written
	Sp       source.Span
}

func (d *ElabSystemTask) Span() source.Span { return d.Sp }

// Argument is one entry of a system task argument list.
type Argument interface {
	Node
	argNode()
}

// OrderedArgument is a positional expression argument.
type OrderedArgument struct {
	Expr Expr
	Sp   source.Span
}

func (a *OrderedArgument) Span() source.Span { return a.Sp }
func (a *OrderedArgument) argNode()          {}

// NamedArgument is .name(expr); rejected by elaboration tasks.
type NamedArgument struct {
	Name string
	Expr Expr
	Sp   source.Span
}

func (a *NamedArgument) Span() source.Span { return a.Sp }
func (a *NamedArgument) argNode()          {}

// EmptyArgument is a skipped position in the list.
type EmptyArgument struct {
	Sp source.Span
}

func (a *EmptyArgument) Span() source.Span { return a.Sp }
func (a *EmptyArgument) argNode()          {}
