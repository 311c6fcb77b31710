// Package countries provides the bundled ISO-3166 country table and its
// code/name lookups.
package countries

import (
	"bufio"
	_ "embed"
	"fmt"
	"log"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

//go:embed iso3166.txt
var iso3166Data string

// Table is an immutable, index-aligned list of country codes and names.
type Table struct {
	codes      []string
	names      []string
	codeToName map[string]string
	nameToCode map[string]string
	foldToCode map[string]string
}

var (
	defaultTable *Table
	once         sync.Once
)

// fold returns the case-folded form of s. A Caser is stateful, so each
// call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// NewTable builds a table from two index-aligned slices. Codes are
// normalized to upper case.
func NewTable(codes, names []string) (*Table, error) {
	if len(codes) != len(names) {
		return nil, fmt.Errorf("codes and names differ in length: %d != %d", len(codes), len(names))
	}

	t := &Table{
		codes:      make([]string, 0, len(codes)),
		names:      make([]string, 0, len(names)),
		codeToName: make(map[string]string, len(codes)),
		nameToCode: make(map[string]string, len(names)),
		foldToCode: make(map[string]string, len(names)),
	}

	for i := range codes {
		code := strings.ToUpper(strings.TrimSpace(codes[i]))
		name := strings.TrimSpace(names[i])
		if code == "" || name == "" {
			return nil, fmt.Errorf("empty entry at index %d", i)
		}
		if _, dup := t.codeToName[code]; dup {
			return nil, fmt.Errorf("duplicate code %q at index %d", code, i)
		}
		if _, dup := t.nameToCode[name]; dup {
			return nil, fmt.Errorf("duplicate name %q at index %d", name, i)
		}

		t.codes = append(t.codes, code)
		t.names = append(t.names, name)
		t.codeToName[code] = name
		t.nameToCode[name] = code
		t.foldToCode[fold(name)] = code
	}

	return t, nil
}

// Parse reads "CODE,Name" lines. Blank lines and lines starting with '#'
// are skipped. Only the first comma separates code from name.
func Parse(data string) (*Table, error) {
	var codes, names []string

	scanner := bufio.NewScanner(strings.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: expected CODE,Name", lineNo)
		}
		codes = append(codes, parts[0])
		names = append(names, parts[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read country data: %w", err)
	}

	return NewTable(codes, names)
}

// Default returns the bundled table, parsed on first use.
func Default() *Table {
	once.Do(func() {
		t, err := Parse(iso3166Data)
		if err != nil {
			log.Printf("countries: bundled data is invalid: %v", err)
			t, _ = NewTable(nil, nil)
		}
		defaultTable = t
	})
	return defaultTable
}

// NameOf returns the display name for a code, or "" if unknown.
func (t *Table) NameOf(code string) string {
	return t.codeToName[strings.ToUpper(strings.TrimSpace(code))]
}

// CodeOf returns the code for a display name, or "" if unknown. An exact
// match wins; otherwise the name is compared case-insensitively.
func (t *Table) CodeOf(name string) string {
	if code, ok := t.nameToCode[name]; ok {
		return code
	}
	return t.foldToCode[fold(strings.TrimSpace(name))]
}

// Codes returns all codes in canonical order.
func (t *Table) Codes() []string {
	out := make([]string, len(t.codes))
	copy(out, t.codes)
	return out
}

// Names returns all names in canonical order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len returns the number of countries.
func (t *Table) Len() int {
	return len(t.codes)
}

// NameAt returns the name at index i in canonical order.
func (t *Table) NameAt(i int) string {
	return t.names[i]
}

// NameOf looks a code up in the bundled table.
func NameOf(code string) string {
	return Default().NameOf(code)
}

// CodeOf looks a name up in the bundled table.
func CodeOf(name string) string {
	return Default().CodeOf(name)
}

// Codes returns all bundled codes.
func Codes() []string {
	return Default().Codes()
}

// Names returns all bundled names.
func Names() []string {
	return Default().Names()
}

// Flag returns the regional-indicator emoji for a two-letter code, or ""
// if code is not two ASCII letters.
func Flag(code string) string {
	code = strings.ToUpper(code)
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < 2; i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return ""
		}
		b.WriteRune(rune(0x1F1E6 + int(c-'A')))
	}
	return b.String()
}
