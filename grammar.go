package cfg

import (
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Production is a single grammar rule alternative: a left-hand nonterminal
// and the ordered sequence of symbols it expands to. An empty RHS is an
// epsilon production, deriving zero tokens.
//
// Productions are immutable once their Grammar is built.
type Production struct {
	LHS Symbol
	RHS []Symbol
}

// Epsilon reports whether the production derives the empty sequence.
func (p *Production) Epsilon() bool { return len(p.RHS) == 0 }

func (p *Production) String() string {
	out := p.LHS.Value + " ->"
	for _, sym := range p.RHS {
		out += " " + sym.String()
	}
	return out
}

// Grammar is an immutable set of productions with a designated start symbol.
// Once built it is safe to share read-only across concurrent parses.
type Grammar struct {
	Start       Symbol
	Productions []*Production

	byLHS map[string][]*Production
}

// NewGrammar builds a grammar from productions in declaration order. The
// declaration order is significant: it fixes the order of derivations in
// parse forests and of generated examples.
func NewGrammar(start Symbol, productions []*Production) (*Grammar, error) {
	if start.Kind != NonterminalSymbol {
		return nil, Errorf(0, "start symbol %s must be a nonterminal", start)
	}
	g := &Grammar{
		Start:       start,
		Productions: productions,
		byLHS:       map[string][]*Production{},
	}
	for _, p := range productions {
		g.byLHS[p.LHS.Value] = append(g.byLHS[p.LHS.Value], p)
	}
	if len(g.byLHS[start.Value]) == 0 {
		return nil, Errorf(0, "start symbol %s has no productions", start)
	}
	return g, nil
}

// ProductionsFor returns the productions with sym on the left-hand side, in
// declaration order. A nonterminal that never appears on a left-hand side
// has no productions and simply derives nothing.
func (g *Grammar) ProductionsFor(sym Symbol) []*Production {
	if sym.Kind != NonterminalSymbol {
		return nil
	}
	return g.byLHS[sym.Value]
}

// Nonterminals returns every nonterminal appearing in the grammar, sorted
// by name.
func (g *Grammar) Nonterminals() []Symbol {
	set := map[Symbol]bool{}
	for _, p := range g.Productions {
		set[p.LHS] = true
		for _, sym := range p.RHS {
			if sym.Kind == NonterminalSymbol {
				set[sym] = true
			}
		}
	}
	return sortedSymbols(set)
}

// Terminals returns the terminal alphabet of the grammar, sorted by literal.
func (g *Grammar) Terminals() []Symbol {
	set := map[Symbol]bool{}
	for _, p := range g.Productions {
		for _, sym := range p.RHS {
			if sym.Kind == TerminalSymbol {
				set[sym] = true
			}
		}
	}
	return sortedSymbols(set)
}

func sortedSymbols(set map[Symbol]bool) []Symbol {
	out := maps.Keys(set)
	slices.SortFunc(out, func(a, b Symbol) int { return strings.Compare(a.Value, b.Value) })
	return out
}

func (g *Grammar) String() string {
	lines := make([]string, 0, len(g.Productions))
	for _, p := range g.Productions {
		lines = append(lines, p.String())
	}
	return strings.Join(lines, "\n")
}

// ParseGrammar parses line-oriented grammar text into a Grammar.
//
// Each non-blank line must have the form `LHS -> RHS | RHS | ...`. Within an
// alternative, a quoted token is a terminal literal and a bare identifier is
// a nonterminal; an alternative with no tokens is an epsilon production. The
// first left-hand side encountered becomes the start symbol.
func ParseGrammar(text string) (*Grammar, error) {
	var start Symbol
	var productions []*Production
	for i, line := range strings.Split(text, "\n") {
		lineno := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}
		lhsText, rhsText, ok := strings.Cut(line, "->")
		if !ok {
			return nil, Errorf(lineno, "expected \"LHS -> RHS\" but got %q", strings.TrimSpace(line))
		}
		lhs := strings.TrimSpace(lhsText)
		if !isIdentifier(lhs) {
			return nil, Errorf(lineno, "left-hand side %q is not a valid nonterminal name", lhs)
		}
		if start.Value == "" {
			start = Nonterminal(lhs)
		}
		// Every |-separated alternative is one production. An alternative
		// that is empty or all whitespace is an epsilon production, not a
		// dropped one.
		for _, alt := range strings.Split(rhsText, "|") {
			rhs, err := parseAlternative(lineno, alt)
			if err != nil {
				return nil, err
			}
			productions = append(productions, &Production{LHS: Nonterminal(lhs), RHS: rhs})
		}
	}
	if start.Value == "" {
		return nil, Errorf(0, "grammar has no productions")
	}
	return NewGrammar(start, productions)
}

// MustParseGrammar parses grammar text and panics if it is malformed.
func MustParseGrammar(text string) *Grammar {
	g, err := ParseGrammar(text)
	if err != nil {
		panic(err)
	}
	return g
}

func parseAlternative(lineno int, alt string) ([]Symbol, error) {
	var rhs []Symbol
	for _, tok := range strings.Fields(alt) {
		sym, err := parseToken(lineno, tok)
		if err != nil {
			return nil, err
		}
		rhs = append(rhs, sym)
	}
	return rhs, nil
}

func parseToken(lineno int, tok string) (Symbol, error) {
	if quote := tok[0]; quote == '\'' || quote == '"' {
		if len(tok) < 3 || tok[len(tok)-1] != quote {
			return Symbol{}, Errorf(lineno, "unterminated terminal literal %s", tok)
		}
		return Terminal(tok[1 : len(tok)-1]), nil
	}
	if !isIdentifier(tok) {
		return Symbol{}, Errorf(lineno, "malformed symbol %q", tok)
	}
	return Nonterminal(tok), nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
