package diag

import "silica/internal/source"

// Handle points at a diagnostic already stored in a Bag and allows appending
// arguments and notes after the fact. Producers record the diagnostic first
// and decorate it as they discover more context (e.g. the location of a
// conflicting declaration).
type Handle struct {
	bag *Bag
	idx int
}

// AddNew appends a fresh diagnostic and returns a handle for in-place edits.
// When the bag limit is reached the returned handle is inert but non-nil, so
// call sites never need to check.
func (b *Bag) AddNew(sev Severity, code Code, primary source.Span) *Handle {
	if !b.Add(New(sev, code, primary)) {
		return &Handle{}
	}
	return &Handle{bag: b, idx: len(b.items) - 1}
}

func (h *Handle) get() *Diagnostic {
	if h == nil || h.bag == nil {
		return nil
	}
	return &h.bag.items[h.idx]
}

// AddArg appends an ordered argument to the diagnostic.
func (h *Handle) AddArg(arg string) *Handle {
	if d := h.get(); d != nil {
		d.Args = append(d.Args, arg)
	}
	return h
}

// AddNote appends a note and returns a handle-like closure over it.
func (h *Handle) AddNote(code Code, sp source.Span, args ...string) *Handle {
	if d := h.get(); d != nil {
		d.Notes = append(d.Notes, Note{Code: code, Span: sp, Args: args})
	}
	return h
}

// AddNoteArg appends an argument to the most recently added note.
func (h *Handle) AddNoteArg(arg string) *Handle {
	if d := h.get(); d != nil && len(d.Notes) > 0 {
		n := &d.Notes[len(d.Notes)-1]
		n.Args = append(n.Args, arg)
	}
	return h
}
