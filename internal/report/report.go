// Package report encodes elaborated symbol trees for external consumers.
// The core emits through the format-agnostic sem.Writer interface; this
// package supplies a map-building writer plus JSON and MessagePack
// encodings of its output.
package report

import (
	"github.com/spf13/cast"

	"silica/internal/sem"
)

// frame is one level of the object/array nesting being built.
type frame struct {
	key     string
	obj     map[string]any
	arr     []any
	isArray bool
}

// MapWriter implements sem.Writer by building a nested map representation.
// Scalar values are normalized so every encoder sees the same Go types.
type MapWriter struct {
	stack []*frame
}

// NewMapWriter returns a writer with an empty root object.
func NewMapWriter() *MapWriter {
	return &MapWriter{stack: []*frame{{obj: map[string]any{}}}}
}

// Result returns the built root object.
func (w *MapWriter) Result() map[string]any {
	return w.stack[0].obj
}

func (w *MapWriter) top() *frame { return w.stack[len(w.stack)-1] }

func (w *MapWriter) put(key string, v any) {
	f := w.top()
	if f.isArray {
		f.arr = append(f.arr, v)
		return
	}
	f.obj[key] = v
}

// Write stores a normalized scalar value.
func (w *MapWriter) Write(key string, value any) {
	w.put(key, normalize(value))
}

// WriteLink stores a non-recursive reference to another symbol.
func (w *MapWriter) WriteLink(key string, sym sem.Symbol) {
	w.put(key, map[string]any{
		"kind": sym.Kind().String(),
		"name": sym.Name(),
	})
}

func (w *MapWriter) BeginObject(key string) {
	w.stack = append(w.stack, &frame{key: key, obj: map[string]any{}})
}

func (w *MapWriter) EndObject() {
	f := w.top()
	w.stack = w.stack[:len(w.stack)-1]
	w.put(f.key, f.obj)
}

func (w *MapWriter) BeginArray(key string) {
	w.stack = append(w.stack, &frame{key: key, isArray: true})
}

func (w *MapWriter) EndArray() {
	f := w.top()
	w.stack = w.stack[:len(w.stack)-1]
	arr := f.arr
	if arr == nil {
		arr = []any{}
	}
	w.put(f.key, arr)
}

// normalize collapses scalar values onto a stable set of Go types: bool,
// int64, float64, string. Encoders then agree on representation regardless
// of which integer width a producer happened to use.
func normalize(v any) any {
	switch v.(type) {
	case bool:
		return v
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return cast.ToInt64(v)
	case float32, float64:
		return cast.ToFloat64(v)
	case string:
		return v
	}
	return cast.ToString(v)
}
