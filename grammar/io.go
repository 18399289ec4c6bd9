// SPDX-License-Identifier: MIT

package grammar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// startFooter precedes the start nonterminal on the second-to-last line.
const startFooter = "Count:"

// Read parses a grammar in the text format described in the package doc.
// Errors name the offending line number.
func Read(r io.Reader) (*Template, error) {
	type line struct {
		no     int
		fields []string
	}
	var lines []line
	sc := bufio.NewScanner(r)
	for no := 1; sc.Scan(); no++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, line{no: no, fields: fields})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grammar: read: %w", err)
	}

	n := len(lines)
	if n < 2 || len(lines[n-2].fields) != 1 || lines[n-2].fields[0] != startFooter || len(lines[n-1].fields) != 1 {
		return nil, fmt.Errorf("grammar: last two lines must be %q and the start nonterminal: %w", startFooter, ErrMissingStart)
	}
	start := NewSymbol(lines[n-1].fields[0])

	var (
		epsilon      []Symbol
		simple       []SimpleRule
		complexRules []ComplexRule
	)
	for _, l := range lines[:n-2] {
		f := l.fields
		switch len(f) {
		case 1:
			epsilon = append(epsilon, NewSymbol(f[0]))
		case 2:
			simple = append(simple, SimpleRule{LHS: NewSymbol(f[0]), RHS: NewSymbol(f[1])})
		case 3:
			complexRules = append(complexRules, ComplexRule{LHS: NewSymbol(f[0]), Left: NewSymbol(f[1]), Right: NewSymbol(f[2])})
		default:
			return nil, fmt.Errorf("grammar: line %d %q: expected 1 to 3 fields, got %d: %w",
				l.no, strings.Join(f, " "), len(f), ErrMalformedRule)
		}
	}

	return New(start, epsilon, simple, complexRules)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grammar: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Write emits t in the text format: epsilon rules, simple rules, complex
// rules, then the start footer when includeStart is set.
func (t *Template) Write(w io.Writer, includeStart bool) error {
	bw := bufio.NewWriter(w)
	for _, s := range t.epsilon {
		fmt.Fprintf(bw, "%s\n", s)
	}
	for _, r := range t.simple {
		fmt.Fprintf(bw, "%s\t%s\n", r.LHS, r.RHS)
	}
	for _, r := range t.complex {
		fmt.Fprintf(bw, "%s\t%s\t%s\n", r.LHS, r.Left, r.Right)
	}
	if includeStart {
		fmt.Fprintf(bw, "\n%s\n%s\n", startFooter, t.start)
	}

	return bw.Flush()
}
