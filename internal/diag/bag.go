package diag

import (
	"fmt"
	"sort"
	"strings"
)

type Bag struct {
	items []Diagnostic
	max   uint16
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   uint16(max),
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// ByCode returns the diagnostics carrying the given code, in emission order.
func (b *Bag) ByCode(code Code) []Diagnostic {
	var out []Diagnostic
	for _, d := range b.items {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

// Sort сортирует диагностики по: file, start, end, severity (desc), code (asc)
// для стабильного и детерминированного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code.String() < dj.Code.String()
	})
}

// Dump renders the bag in a compact single-line-per-diagnostic form used by
// the CLI and by failing tests.
func (b *Bag) Dump() string {
	var sb strings.Builder
	for _, d := range b.items {
		fmt.Fprintf(&sb, "%s %s @%s", d.Severity, d.Code, d.Primary)
		if len(d.Args) > 0 {
			fmt.Fprintf(&sb, " [%s]", strings.Join(d.Args, ", "))
		}
		sb.WriteByte('\n')
		for _, n := range d.Notes {
			fmt.Fprintf(&sb, "  note %s @%s", n.Code, n.Span)
			if len(n.Args) > 0 {
				fmt.Fprintf(&sb, " [%s]", strings.Join(n.Args, ", "))
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
