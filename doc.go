// Package cfg parses token sequences against arbitrary context-free grammars,
// producing every valid derivation rather than just the first one found.
//
// A grammar is written one rule per line, with `|`-separated alternatives.
// Single-quoted tokens are terminal literals, bare identifiers are
// nonterminals, and an empty alternative is an epsilon production:
//
//	Note     -> Pitch Duration
//	Pitch    -> 'A' | 'B' | 'C'
//	Duration -> 'whole' | 'half' | 'quarter'
//	Rest     -> 'rest' Duration |
//
// The first left-hand side encountered becomes the start symbol.
//
// Recognition is a bottom-up chart parse: every nonterminal derivable over
// every token span is recorded along with each distinct way of deriving it,
// so ambiguous grammars yield complete parse forests. Epsilon productions and
// left or right recursion terminate without any special casing by the caller.
//
//	grammar, err := cfg.ParseGrammar(spec)
//	if err != nil {
//		// the grammar text itself is malformed
//	}
//	parser := cfg.MustBuild(grammar)
//	trees := parser.Parse("( C E G ) whole")
//	for _, tree := range trees {
//		fmt.Println(tree.Pretty())
//	}
//
// A Grammar is immutable after construction and safe to share across
// goroutines; each Parse call owns its chart and the trees it returns.
package cfg
