// Package lexer splits raw text into the terminal tokens fed to the parser.
package lexer

import "strings"

var parens = strings.NewReplacer("(", " ( ", ")", " ) ")

// Tokenize splits text on whitespace into terminal tokens. Parentheses are
// always isolated into their own tokens, even with no whitespace around
// them, so "(C E G)whole" tokenizes the same as "( C E G ) whole". No other
// normalization is applied; case is preserved.
func Tokenize(text string) []string {
	return strings.Fields(parens.Replace(text))
}
