package report

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"

	"silica/internal/sem"
)

// JSON serializes a symbol tree to indented JSON.
func JSON(sym sem.Symbol) ([]byte, error) {
	w := NewMapWriter()
	sem.SerializeTree(sym, w)
	return gojson.MarshalIndent(w.Result(), "", "  ")
}

// Msgpack serializes a symbol tree to MessagePack.
func Msgpack(sym sem.Symbol) ([]byte, error) {
	w := NewMapWriter()
	sem.SerializeTree(sym, w)
	return msgpack.Marshal(w.Result())
}

// Encode dispatches on a config-level format name.
func Encode(sym sem.Symbol, format string) ([]byte, error) {
	switch format {
	case "", "json":
		return JSON(sym)
	case "msgpack":
		return Msgpack(sym)
	}
	return nil, fmt.Errorf("unknown report format %q", format)
}
