// SPDX-License-Identifier: MIT

package lgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/cflr/grammar"
)

// Read parses the text format described in the package doc. Blank lines
// are skipped. Errors name the offending line number.
func Read(r io.Reader) (*Graph, error) {
	var edges []Edge
	sc := bufio.NewScanner(r)
	for no := 1; sc.Scan(); no++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		e, err := parseEdge(fields)
		if err != nil {
			return nil, fmt.Errorf("lgraph: line %d %q: %w", no, sc.Text(), err)
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lgraph: read: %w", err)
	}

	return FromEdges(edges)
}

func parseEdge(fields []string) (Edge, error) {
	if len(fields) != 3 && len(fields) != 4 {
		return Edge{}, fmt.Errorf("expected 3 or 4 fields, got %d: %w", len(fields), ErrMalformedEdge)
	}
	var (
		e   = Edge{Label: fields[2]}
		err error
	)
	if e.Src, err = parseID(fields[0]); err != nil {
		return Edge{}, err
	}
	if e.Dst, err = parseID(fields[1]); err != nil {
		return Edge{}, err
	}
	if len(fields) == 4 {
		if e.Index, err = parseID(fields[3]); err != nil {
			return Edge{}, err
		}
	}

	return e, nil
}

func parseID(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid id %q: %w", s, ErrMalformedEdge)
	}

	return v, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lgraph: %w", err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Write emits one line per edge. The index column is written for indexed
// labels only.
func (g *Graph) Write(w io.Writer) error {
	edges, err := g.Edges()
	if err != nil {
		return err
	}

	return WriteEdges(w, edges)
}

// WriteEdges emits edges in the text format.
func WriteEdges(w io.Writer, edges []Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if e.Index > 0 || grammar.NewSymbol(e.Label).Indexed() {
			fmt.Fprintf(bw, "%d\t%d\t%s\t%d\n", e.Src, e.Dst, e.Label, e.Index)
			continue
		}
		fmt.Fprintf(bw, "%d\t%d\t%s\n", e.Src, e.Dst, e.Label)
	}

	return bw.Flush()
}
