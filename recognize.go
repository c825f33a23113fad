package cfg

import (
	"fmt"
	"io"
)

// Recognize builds the complete parse chart for tokens under grammar g.
//
// Every alternative is explored: the chart records each distinct derivation
// of each nonterminal over each span, which is what lets ambiguous grammars
// surface every parse later. A chart with no full-span derivation of the
// start symbol is the "no parse" outcome, not an error.
func Recognize(g *Grammar, tokens []string) *Chart {
	return recognize(g, tokens, nil)
}

func recognize(g *Grammar, tokens []string, trace io.Writer) *Chart {
	chart := newChart(tokens)
	n := len(tokens)
	// Zero-length spans first: nullable nonterminals derive [i, i) at every
	// position, and longer spans lean on them for epsilon children.
	for length := 0; length <= n; length++ {
		for start := 0; start+length <= n; start++ {
			fillSpan(chart, g, start, start+length, trace)
		}
	}
	return chart
}

// fillSpan closes the derivation set over [start, end). Productions are
// re-scanned until no new edge appears, so unit chains and recursion that
// re-enter the same span settle instead of looping: an identical derivation
// is never added twice.
func fillSpan(chart *Chart, g *Grammar, start, end int, trace io.Writer) {
	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			for _, children := range coverings(chart, p.RHS, start, end) {
				edge := &Edge{Start: start, End: end, Prod: p, Children: children}
				if chart.add(edge) {
					changed = true
					if trace != nil {
						fmt.Fprintln(trace, edge)
					}
				}
			}
		}
	}
}

// coverings enumerates every way rhs can exactly cover [pos, end). A
// terminal consumes one token by exact string match; a nonterminal consumes
// any already-recognized sub-span, including a zero-length one when it is
// nullable. Unknown nonterminals never derive anything and fall out here.
func coverings(chart *Chart, rhs []Symbol, pos, end int) [][]Span {
	if len(rhs) == 0 {
		if pos == end {
			return [][]Span{nil}
		}
		return nil
	}
	head, rest := rhs[0], rhs[1:]
	if head.Kind == TerminalSymbol {
		if pos >= end || chart.tokens[pos] != head.Value {
			return nil
		}
		return prepend(Span{Sym: head, Start: pos, End: pos + 1}, coverings(chart, rest, pos+1, end))
	}
	var out [][]Span
	for mid := pos; mid <= end; mid++ {
		if !chart.Derives(head, pos, mid) {
			continue
		}
		sp := Span{Sym: head, Start: pos, End: mid}
		out = append(out, prepend(sp, coverings(chart, rest, mid, end))...)
	}
	return out
}

func prepend(sp Span, tails [][]Span) [][]Span {
	out := make([][]Span, 0, len(tails))
	for _, tail := range tails {
		out = append(out, append([]Span{sp}, tail...))
	}
	return out
}
