package cfg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognizeSpans(t *testing.T) {
	g := MustParseGrammar(`
S -> 'a' S |
`)
	chart := Recognize(g, []string{"a", "a"})
	// S derives every suffix, and the empty span at every position.
	for start := 0; start <= 2; start++ {
		assert.True(t, chart.Derives(Nonterminal("S"), start, 2), "S should derive [%d:2]", start)
		assert.True(t, chart.Derives(Nonterminal("S"), start, start), "S should derive the empty span at %d", start)
	}
	assert.False(t, chart.Derives(Nonterminal("T"), 0, 2))
	require.Len(t, chart.Complete(g), 1)
}

func TestRecognizeNoParseReturnsChart(t *testing.T) {
	g := MustParseGrammar(`S -> 'a'`)
	chart := Recognize(g, []string{"b"})
	require.NotNil(t, chart)
	assert.Empty(t, chart.Complete(g))
	// Sub-span results are still recorded even though the whole input failed.
	assert.False(t, chart.Derives(g.Start, 0, 1))
}

func TestRecognizeUndefinedNonterminal(t *testing.T) {
	// Missing has no productions; it derives nothing, and recognition must
	// not crash.
	g := MustParseGrammar(`S -> Missing 'a' | 'a'`)
	chart := Recognize(g, []string{"a"})
	require.Len(t, chart.Complete(g), 1)
}

func TestRecognizeRecordsEveryDerivation(t *testing.T) {
	g := MustParseGrammar(`
E -> E '+' E | 'x'
`)
	chart := Recognize(g, []string{"x", "+", "x", "+", "x"})
	// Two ways to bracket x+x+x: split after the first x or after the third.
	require.Len(t, chart.Derivations(g.Start, 0, 5), 2)
}

func TestRecognizeLeftRecursion(t *testing.T) {
	g := MustParseGrammar(`List -> List 'a' | 'a'`)
	chart := Recognize(g, []string{"a", "a", "a"})
	require.Len(t, chart.Complete(g), 1)
}

func TestChartString(t *testing.T) {
	g := MustParseGrammar(`S -> 'a'`)
	chart := Recognize(g, []string{"a"})
	assert.Equal(t, "[0:1] S -> 'a' <= 'a'[0:1]", strings.TrimSpace(chart.String()))
}
