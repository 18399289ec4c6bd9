// SPDX-License-Identifier: MIT
package grammar_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/cflr/grammar"
	"github.com/stretchr/testify/require"
)

const pointsTo = `
S
S	a
S	A	S
A	a

A	b_i	B_i
B_i	c_i

Count:
S
`

func sym(label string) grammar.Symbol { return grammar.NewSymbol(label) }

func TestNewSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label   string
		indexed bool
	}{
		{"a", false},
		{"load_i", true},
		{"_i", true},
		{"i", false},
		{"load_i_0", false},
		{"load_I", false},
	}
	for _, tc := range tests {
		require.Equal(t, tc.indexed, sym(tc.label).Indexed(), tc.label)
		require.Equal(t, tc.label, sym(tc.label).String())
	}

	require.Equal(t, sym("load_i_3"), sym("load_i").At(3))
	require.Equal(t, sym("a"), sym("a").At(3))
	require.Equal(t, sym("x"), grammar.NewSymbol("x"), "equal labels give equal symbols")
}

func TestRead(t *testing.T) {
	t.Parallel()

	g, err := grammar.Read(strings.NewReader(pointsTo))
	require.NoError(t, err)
	require.Equal(t, sym("S"), g.Start())
	require.Equal(t, []grammar.Symbol{sym("S")}, g.EpsilonRules())
	require.Equal(t, []grammar.SimpleRule{
		{LHS: sym("S"), RHS: sym("a")},
		{LHS: sym("A"), RHS: sym("a")},
		{LHS: sym("B_i"), RHS: sym("c_i")},
	}, g.SimpleRules())
	require.Equal(t, []grammar.ComplexRule{
		{LHS: sym("S"), Left: sym("A"), Right: sym("S")},
		{LHS: sym("A"), Left: sym("b_i"), Right: sym("B_i")},
	}, g.ComplexRules())
	require.Equal(t, []grammar.Symbol{sym("A"), sym("B_i"), sym("S")}, g.NonTerminals())
	require.Equal(t, []grammar.Symbol{sym("A"), sym("B_i"), sym("S"), sym("a"), sym("b_i"), sym("c_i")}, g.Symbols())
	require.True(t, g.IsNonTerminal(sym("B_i")))
	require.False(t, g.IsNonTerminal(sym("a")))
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", grammar.ErrMissingStart},
		{"no footer", "S a\n", grammar.ErrMissingStart},
		{"footer without start", "S a\nCount:\n", grammar.ErrMissingStart},
		{"four fields", "S a b c\nCount:\nS\n", grammar.ErrMalformedRule},
		{"indexed start", "S_i a\nCount:\nS_i\n", grammar.ErrIndexedStart},
		{"self alias", "S S\nCount:\nS\n", grammar.ErrAliasCycle},
		{"two-step alias", "A B\nB A\nB b\nCount:\nA\n", grammar.ErrAliasCycle},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := grammar.Read(strings.NewReader(tc.input))
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}

	_, err := grammar.Read(strings.NewReader("S a b c\nCount:\nS\n"))
	require.ErrorContains(t, err, "line 1")
}

func TestRead_AliasChainWithoutCycle(t *testing.T) {
	t.Parallel()

	g, err := grammar.Read(strings.NewReader("S A\nA B\nB b\nCount:\nS\n"))
	require.NoError(t, err)
	require.Len(t, g.SimpleRules(), 3)
}

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	g, err := grammar.Read(strings.NewReader(pointsTo))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.Write(&buf, true))
	back, err := grammar.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, g.Start(), back.Start())
	require.Equal(t, g.EpsilonRules(), back.EpsilonRules())
	require.Equal(t, g.SimpleRules(), back.SimpleRules())
	require.Equal(t, g.ComplexRules(), back.ComplexRules())

	buf.Reset()
	require.NoError(t, g.Write(&buf, false))
	require.NotContains(t, buf.String(), "Count:")
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "g.cnf")
	require.NoError(t, os.WriteFile(path, []byte(pointsTo), 0o600))
	g, err := grammar.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, sym("S"), g.Start())

	_, err = grammar.ReadFile(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExplode(t *testing.T) {
	t.Parallel()

	g, err := grammar.Read(strings.NewReader("X_i\nS a\nS b_i S\nX_i x_i\nCount:\nS\n"))
	require.NoError(t, err)
	e, err := g.Explode(2)
	require.NoError(t, err)
	require.Equal(t, []grammar.Symbol{sym("X_i_0"), sym("X_i_1")}, e.EpsilonRules())
	require.Equal(t, []grammar.SimpleRule{
		{LHS: sym("S"), RHS: sym("a")},
		{LHS: sym("X_i_0"), RHS: sym("x_i_0")},
		{LHS: sym("X_i_1"), RHS: sym("x_i_1")},
	}, e.SimpleRules())
	require.Equal(t, []grammar.ComplexRule{
		{LHS: sym("S"), Left: sym("b_i_0"), Right: sym("S")},
		{LHS: sym("S"), Left: sym("b_i_1"), Right: sym("S")},
	}, e.ComplexRules())
	for _, s := range e.Symbols() {
		require.False(t, s.Indexed(), s.String())
	}
}
