package cfg

import "fmt"

// Error represents an error while building a grammar.
//
// The error will contain the offending line of the grammar text if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// One-based line number the error occurred on, or 0 if unknown.
	Line() int
}

type grammarError struct {
	message string
	line    int
}

// Errorf creates a new Error at the given grammar line.
func Errorf(line int, format string, args ...interface{}) error {
	return &grammarError{message: fmt.Sprintf(format, args...), line: line}
}

func (g *grammarError) Message() string { return g.message }
func (g *grammarError) Line() int       { return g.line }

func (g *grammarError) Error() string {
	if g.line == 0 {
		return g.message
	}
	return fmt.Sprintf("%d: %s", g.line, g.message)
}
