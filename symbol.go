package cfg

// SymbolKind discriminates the two cases of a grammar Symbol.
type SymbolKind int

const (
	// TerminalSymbol is a literal that must match one input token exactly.
	TerminalSymbol SymbolKind = iota
	// NonterminalSymbol names a rule defined by the grammar's productions.
	NonterminalSymbol
)

// Symbol is a tagged variant: either a terminal literal or a nonterminal
// name. Symbols are comparable values; two symbols are equal when both kind
// and value match.
type Symbol struct {
	Kind  SymbolKind
	Value string
}

// Terminal returns a terminal symbol matching the literal token "lit".
func Terminal(lit string) Symbol {
	return Symbol{Kind: TerminalSymbol, Value: lit}
}

// Nonterminal returns a nonterminal symbol with the given rule name.
func Nonterminal(name string) Symbol {
	return Symbol{Kind: NonterminalSymbol, Value: name}
}

// String renders the symbol in grammar text form, single-quoting terminals.
func (s Symbol) String() string {
	if s.Kind == TerminalSymbol {
		return "'" + s.Value + "'"
	}
	return s.Value
}
