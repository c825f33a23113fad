package cfg

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Tree is one complete derivation: a node labelled with a Symbol and, for
// nonterminal nodes, the ordered children produced by one production.
// Terminal nodes are leaves.
type Tree struct {
	Sym      Symbol
	Children []*Tree
}

// Leaf reports whether the node is a terminal leaf.
func (t *Tree) Leaf() bool { return t.Sym.Kind == TerminalSymbol }

// Tokens returns the terminal fringe of the tree in order.
func (t *Tree) Tokens() []string {
	if t.Leaf() {
		return []string{t.Sym.Value}
	}
	var out []string
	for _, child := range t.Children {
		out = append(out, child.Tokens()...)
	}
	return out
}

// String renders the tree in bracketed form, eg.
// (Note (Pitch 'C') (Duration 'quarter')).
func (t *Tree) String() string {
	if t.Leaf() {
		return t.Sym.String()
	}
	parts := make([]string, 0, len(t.Children)+1)
	parts = append(parts, t.Sym.Value)
	for _, child := range t.Children {
		parts = append(parts, child.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Pretty renders the tree one node per line, indented by depth.
func (t *Tree) Pretty() string {
	var sb strings.Builder
	t.pretty(&sb, 0)
	return sb.String()
}

func (t *Tree) pretty(sb *strings.Builder, depth int) {
	if depth > 0 {
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(t.Sym.String())
	for _, child := range t.Children {
		child.pretty(sb, depth+1)
	}
}

// ExtractTrees reconstructs every derivation of the start symbol over the
// full input from a populated chart. Ambiguity expands as the Cartesian
// product of the recorded alternatives at each node; the result is empty
// exactly when the chart holds no full-span start derivation.
//
// Tree order is deterministic: it follows edge discovery order, which in
// turn follows production declaration order.
func ExtractTrees(chart *Chart, g *Grammar) []*Tree {
	root := Span{Sym: g.Start, Start: 0, End: len(chart.Tokens())}
	return expand(chart, root, map[*Edge]bool{})
}

// expand materializes every tree for one span. onPath holds the edges
// currently being expanded up the recursion: revisiting one would mean a
// derivation cycle (epsilon or unit recursion), whose expansions never
// terminate, so only the cycle-free trees are produced.
func expand(chart *Chart, sp Span, onPath map[*Edge]bool) []*Tree {
	if sp.Sym.Kind == TerminalSymbol {
		return []*Tree{{Sym: sp.Sym}}
	}
	var trees []*Tree
	for _, edge := range chart.Derivations(sp.Sym, sp.Start, sp.End) {
		if onPath[edge] {
			continue
		}
		onPath[edge] = true
		combos := [][]*Tree{nil}
		for _, child := range edge.Children {
			subtrees := expand(chart, child, onPath)
			var next [][]*Tree
			for _, combo := range combos {
				for _, sub := range subtrees {
					next = append(next, append(slices.Clone(combo), sub))
				}
			}
			combos = next
		}
		delete(onPath, edge)
		for _, combo := range combos {
			trees = append(trees, &Tree{Sym: sp.Sym, Children: combo})
		}
	}
	return trees
}
