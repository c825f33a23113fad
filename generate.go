package cfg

import "strings"

// Generate produces up to maxCount sentences derivable from the grammar's
// start symbol. Expansion is depth-first over productions in declaration
// order; any branch still holding an unexpanded symbol at maxDepth is
// pruned, which guarantees termination on recursive grammars. The result is
// empty when no sentence fits inside the depth bound.
func Generate(g *Grammar, maxCount, maxDepth int) []string {
	if maxCount <= 0 {
		return nil
	}
	var out []string
	emit := func(tokens []string) bool {
		out = append(out, strings.Join(tokens, " "))
		return len(out) < maxCount
	}
	generateAll(g, []Symbol{g.Start}, maxDepth, nil, emit)
	return out
}

// generateAll extends prefix with every expansion of items, invoking emit
// for each complete sentence. It returns false once emit asks to stop.
func generateAll(g *Grammar, items []Symbol, depth int, prefix []string, emit func([]string) bool) bool {
	if len(items) == 0 {
		return emit(prefix)
	}
	return generateOne(g, items[0], depth, func(frag []string) bool {
		return generateAll(g, items[1:], depth, append(prefix, frag...), emit)
	})
}

// generateOne yields the expansions of a single symbol. Terminals and
// nonterminals both consume one level of depth; at depth zero the branch
// yields nothing at all.
func generateOne(g *Grammar, item Symbol, depth int, emit func([]string) bool) bool {
	if depth <= 0 {
		return true
	}
	if item.Kind == TerminalSymbol {
		return emit([]string{item.Value})
	}
	for _, p := range g.ProductionsFor(item) {
		if !generateAll(g, p.RHS, depth-1, nil, emit) {
			return false
		}
	}
	return true
}
