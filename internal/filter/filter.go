// Package filter narrows the country table down to the codes whose names
// contain a search term.
package filter

import (
	"log"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"

	"countrypick/internal/countries"
)

// Table is the read side of the country table the engine filters over.
type Table interface {
	Codes() []string
	Names() []string
	CodeOf(name string) string
}

// Engine filters a fixed table. It holds no per-query state apart from the
// optional result cache, so one engine may back many pickers.
type Engine struct {
	table  Table
	codes  []string
	names  []string
	folded []string
	cache  *lru.Cache[string, []string]
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache keeps the results of the last size distinct queries.
func WithCache(size int) Option {
	return func(e *Engine) {
		if size <= 0 {
			return
		}
		c, err := lru.New[string, []string](size)
		if err != nil {
			log.Printf("filter: cache disabled: %v", err)
			return
		}
		e.cache = c
	}
}

// New creates an engine over table. A nil table means the bundled one.
func New(table Table, opts ...Option) *Engine {
	if table == nil {
		table = countries.Default()
	}
	e := &Engine{
		table: table,
		codes: table.Codes(),
		names: table.Names(),
	}
	e.folded = make([]string, len(e.names))
	for i, name := range e.names {
		e.folded[i] = fold(name)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Filter returns, in table order, the codes whose names contain query
// case-insensitively. An empty query yields every code.
func (e *Engine) Filter(query string) []string {
	if query == "" {
		return e.All()
	}

	if e.cache != nil {
		if hit, ok := e.cache.Get(query); ok {
			return clone(hit)
		}
	}

	q := fold(query)
	result := make([]string, 0)
	for i, name := range e.folded {
		if !strings.Contains(name, q) {
			continue
		}
		code := e.table.CodeOf(e.names[i])
		if code == "" {
			continue
		}
		result = append(result, code)
	}

	if e.cache != nil {
		e.cache.Add(query, clone(result))
	}
	return result
}

// All returns every code in table order.
func (e *Engine) All() []string {
	return clone(e.codes)
}

// Len returns the size of the underlying table.
func (e *Engine) Len() int {
	return len(e.codes)
}

// Match reports whether name contains query case-insensitively.
func Match(name, query string) bool {
	return strings.Contains(fold(name), fold(query))
}

// MatchRange returns the byte range of the first case-insensitive
// occurrence of query in name. The range always falls on rune boundaries
// of name.
func MatchRange(name, query string) (start, end int, ok bool) {
	if query == "" {
		return 0, 0, false
	}
	q := fold(query)

	// origin maps each rune boundary of the folded name to the byte offset
	// of the same boundary in name.
	c := cases.Fold()
	var b strings.Builder
	origin := map[int]int{0: 0}
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		b.WriteString(c.String(string(r)))
		i += size
		origin[b.Len()] = i
	}
	folded := b.String()

	for from := 0; from+len(q) <= len(folded); {
		k := strings.Index(folded[from:], q)
		if k < 0 {
			break
		}
		k += from
		s, okStart := origin[k]
		e, okEnd := origin[k+len(q)]
		if okStart && okEnd {
			return s, e, true
		}
		from = k + 1
	}
	return 0, 0, false
}

func fold(s string) string {
	return cases.Fold().String(s)
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
