package cfg

import (
	"io"

	"golang.org/x/exp/slices"

	"github.com/chartkit/cfg/lexer"
)

// A Parser answers membership and derivation queries for one grammar. It is
// stateless between calls: each Parse owns its chart, so a single Parser may
// be used from multiple goroutines.
type Parser struct {
	grammar  *Grammar
	trace    io.Writer
	fallback []string
}

// fallbackExamples is returned by GenerateExamples when generation yields
// nothing within the depth bound and no Fallback option was given.
var fallbackExamples = []string{
	"C quarter",
	"A whole B half",
	"C quarter D half E whole",
	"( C E G ) whole",
	"C quarter ( D F A ) half",
}

// Build constructs a Parser for the grammar.
func Build(grammar *Grammar, options ...Option) (*Parser, error) {
	p := &Parser{
		grammar:  grammar,
		fallback: fallbackExamples,
	}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustBuild calls Build and panics if an error occurs.
func MustBuild(grammar *Grammar, options ...Option) *Parser {
	p, err := Build(grammar, options...)
	if err != nil {
		panic(err)
	}
	return p
}

// Grammar returns the grammar the parser was built with.
func (p *Parser) Grammar() *Grammar { return p.grammar }

// Parse tokenizes text and returns every derivation of it under the
// grammar. An empty forest means the text is not in the language; it is
// also returned, rather than an error, should anything go wrong internally.
func (p *Parser) Parse(text string) (trees []*Tree) {
	defer func() {
		if recover() != nil {
			trees = nil
		}
	}()
	tokens := lexer.Tokenize(text)
	chart := recognize(p.grammar, tokens, p.trace)
	return ExtractTrees(chart, p.grammar)
}

// IsValid reports whether text is a sentence of the grammar.
func (p *Parser) IsValid(text string) bool {
	return len(p.Parse(text)) > 0
}

// GenerateExamples returns up to maxCount sentences derivable from the
// grammar, expanding productions depth-first in declaration order and
// pruning at maxDepth so recursive grammars terminate. If nothing can be
// generated within the bound it returns the fallback list instead, and
// reports that with the second return value.
func (p *Parser) GenerateExamples(maxCount, maxDepth int) ([]string, bool) {
	examples := Generate(p.grammar, maxCount, maxDepth)
	if len(examples) == 0 {
		return slices.Clone(p.fallback), true
	}
	return examples, false
}
