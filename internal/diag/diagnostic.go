package diag

import (
	"silica/internal/source"
)

// Note attaches secondary context to a diagnostic, typically pointing at a
// conflicting prior declaration.
type Note struct {
	Code Code
	Span source.Span
	Args []string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Primary  source.Span
	Args     []string
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
	}
}

func NewError(code Code, primary source.Span) Diagnostic {
	return New(SevError, code, primary)
}

func (d Diagnostic) WithArg(arg string) Diagnostic {
	d.Args = append(d.Args, arg)
	return d
}

func (d Diagnostic) WithNote(code Code, sp source.Span, args ...string) Diagnostic {
	d.Notes = append(d.Notes, Note{Code: code, Span: sp, Args: args})
	return d
}
