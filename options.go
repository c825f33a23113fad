package cfg

import "io"

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Trace the chart construction to "w", one edge per line as it is added.
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}

// Fallback replaces the built-in example sentences returned by
// GenerateExamples when depth-bounded generation produces nothing.
func Fallback(examples ...string) Option {
	return func(p *Parser) error {
		p.fallback = examples
		return nil
	}
}
