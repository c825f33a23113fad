package cfg

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Span is a half-open range [Start, End) of token positions covered by a
// symbol. A terminal span always covers exactly one token; a nonterminal
// span may cover zero tokens when derived through epsilon productions.
type Span struct {
	Sym   Symbol
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%s[%d:%d]", s.Sym, s.Start, s.End)
}

// Edge records one complete way a nonterminal derives a token span: the
// production applied and the sub-span consumed by each right-hand-side
// symbol. Edges are immutable once added to a chart.
type Edge struct {
	Start    int
	End      int
	Prod     *Production
	Children []Span
}

// Sym returns the nonterminal this edge derives.
func (e *Edge) Sym() Symbol { return e.Prod.LHS }

func (e *Edge) String() string {
	out := fmt.Sprintf("[%d:%d] %s", e.Start, e.End, e.Prod)
	if len(e.Children) > 0 {
		parts := make([]string, len(e.Children))
		for i, ch := range e.Children {
			parts[i] = ch.String()
		}
		out += " <= " + strings.Join(parts, " ")
	}
	return out
}

type symSpan struct {
	name  string
	start int
	end   int
}

// Chart is the dynamic-programming table produced by Recognize: for every
// token span it holds every distinct derivation of every nonterminal that
// covers the span. A chart belongs to a single parse invocation.
type Chart struct {
	tokens []string
	bySym  map[symSpan][]*Edge
	seen   map[string]bool
}

func newChart(tokens []string) *Chart {
	return &Chart{
		tokens: tokens,
		bySym:  map[symSpan][]*Edge{},
		seen:   map[string]bool{},
	}
}

// Tokens returns the token sequence the chart was built over.
func (c *Chart) Tokens() []string { return c.tokens }

// Derivations returns every recorded derivation of sym over [start, end),
// in the order they were discovered (a deterministic function of production
// declaration order).
func (c *Chart) Derivations(sym Symbol, start, end int) []*Edge {
	return c.bySym[symSpan{sym.Value, start, end}]
}

// Derives reports whether sym derives exactly the tokens in [start, end).
func (c *Chart) Derives(sym Symbol, start, end int) bool {
	return len(c.bySym[symSpan{sym.Value, start, end}]) > 0
}

// Complete returns the derivations of the start symbol spanning the whole
// input. Empty means "no parse".
func (c *Chart) Complete(g *Grammar) []*Edge {
	return c.Derivations(g.Start, 0, len(c.tokens))
}

// add records an edge unless an identical derivation (same production and
// split points) is already present for its span. The at-most-once guarantee
// is what bounds the recognizer's fixpoint.
func (c *Chart) add(e *Edge) bool {
	key := c.derivationKey(e)
	if c.seen[key] {
		return false
	}
	c.seen[key] = true
	ss := symSpan{e.Sym().Value, e.Start, e.End}
	c.bySym[ss] = append(c.bySym[ss], e)
	return true
}

func (c *Chart) derivationKey(e *Edge) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%d:%p", e.Start, e.End, e.Prod)
	for _, ch := range e.Children {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(ch.End))
	}
	return sb.String()
}

// String renders every edge in the chart, ordered by span then discovery
// order, one per line.
func (c *Chart) String() string {
	keys := maps.Keys(c.bySym)
	slices.SortFunc(keys, func(a, b symSpan) int {
		if a.start != b.start {
			return a.start - b.start
		}
		if a.end != b.end {
			return a.end - b.end
		}
		return strings.Compare(a.name, b.name)
	})
	var lines []string
	for _, key := range keys {
		for _, e := range c.bySym[key] {
			lines = append(lines, e.String())
		}
	}
	return strings.Join(lines, "\n")
}
