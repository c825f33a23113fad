package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrammar(t *testing.T) {
	g, err := ParseGrammar(`
Note -> Pitch Duration
Pitch -> 'A' | 'B'
Duration -> 'whole' | 'half'
`)
	require.NoError(t, err)
	assert.Equal(t, Nonterminal("Note"), g.Start)
	require.Len(t, g.Productions, 5)
	assert.Equal(t, []Symbol{Nonterminal("Pitch"), Nonterminal("Duration")}, g.Productions[0].RHS)
	assert.Equal(t, []Symbol{Terminal("A")}, g.Productions[1].RHS)
	assert.Equal(t, []Symbol{Terminal("B")}, g.Productions[2].RHS)
}

func TestParseGrammarEpsilon(t *testing.T) {
	g, err := ParseGrammar(`List -> Item List | `)
	require.NoError(t, err)
	require.Len(t, g.Productions, 2)
	assert.False(t, g.Productions[0].Epsilon())
	assert.True(t, g.Productions[1].Epsilon())

	// Nothing at all after the arrow is a single epsilon production.
	g, err = ParseGrammar(`Empty ->`)
	require.NoError(t, err)
	require.Len(t, g.Productions, 1)
	assert.True(t, g.Productions[0].Epsilon())
}

func TestParseGrammarWhitespaceAlternatives(t *testing.T) {
	// Alternatives separated without spaces, and a whitespace-only trailing
	// alternative, must all survive.
	g, err := ParseGrammar("A -> 'a'|'b' |  ")
	require.NoError(t, err)
	require.Len(t, g.Productions, 3)
	assert.Equal(t, []Symbol{Terminal("a")}, g.Productions[0].RHS)
	assert.Equal(t, []Symbol{Terminal("b")}, g.Productions[1].RHS)
	assert.True(t, g.Productions[2].Epsilon())
}

func TestParseGrammarQuotes(t *testing.T) {
	g, err := ParseGrammar(`S -> '(' "mixed" ')'`)
	require.NoError(t, err)
	assert.Equal(t, []Symbol{Terminal("("), Terminal("mixed"), Terminal(")")}, g.Productions[0].RHS)
}

func TestParseGrammarErrors(t *testing.T) {
	tests := []struct {
		name    string
		grammar string
		line    int
	}{
		{"MissingArrow", "S -> 'a'\njunk line", 2},
		{"UnterminatedLiteral", "S -> 'a\n", 1},
		{"MalformedSymbol", "S -> foo$bar", 1},
		{"BadLHS", "fo$o -> 'a'", 1},
		{"Empty", "   \n\n", 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseGrammar(test.grammar)
			require.Error(t, err)
			gerr, ok := err.(Error)
			require.True(t, ok, "expected a cfg.Error, got %T", err)
			assert.Equal(t, test.line, gerr.Line())
		})
	}
}

func TestGrammarAlphabets(t *testing.T) {
	g, err := ParseGrammar(`
S -> A B
A -> 'x' | 'y'
B -> A 'z' |
`)
	require.NoError(t, err)
	assert.Equal(t, []Symbol{Nonterminal("A"), Nonterminal("B"), Nonterminal("S")}, g.Nonterminals())
	assert.Equal(t, []Symbol{Terminal("x"), Terminal("y"), Terminal("z")}, g.Terminals())
}

func TestGrammarString(t *testing.T) {
	g, err := ParseGrammar("S -> 'a' S |")
	require.NoError(t, err)
	assert.Equal(t, "S -> 'a' S\nS ->", g.String())
}

func TestNewGrammarStartMustHaveProductions(t *testing.T) {
	_, err := NewGrammar(Nonterminal("S"), []*Production{
		{LHS: Nonterminal("T"), RHS: []Symbol{Terminal("t")}},
	})
	require.Error(t, err)
}
