package source

import (
	"fmt"
)

// FileID identifies a source file inside the host front end. The elaboration
// core never opens files itself; IDs arrive attached to syntax nodes.
type FileID uint32

// NoFileID marks the absence of a file reference.
const NoFileID FileID = 0

// IsValid reports whether the ID refers to a real file.
func (id FileID) IsValid() bool { return id != NoFileID }

// Span is a half-open byte range inside one file.
type Span struct {
	File  FileID
	Start uint32 // включительно
	End   uint32 // не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover extends the span to include other. Spans from different files are
// left untouched.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// At builds a zero-length span, useful for synthesized symbols that still
// need a stable diagnostic anchor.
func At(file FileID, offset uint32) Span {
	return Span{File: file, Start: offset, End: offset}
}
