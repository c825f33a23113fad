// Command cfg checks sentences against a context-free grammar and prints
// their parse trees.
//
// With no --grammar flag a small musical language is used:
//
//	cfg "C quarter D half" "( C E G ) whole"
//	cfg --trees "( C E G ) whole"
//	cfg --examples 10
//	cfg --interactive
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/chartkit/cfg"
)

const musicalGrammar = `
S -> Composition
Composition -> PhraseList
PhraseList -> Phrase PhraseList_Prime
PhraseList_Prime -> Phrase PhraseList_Prime |
Phrase -> NoteSequence | ChordSequence
NoteSequence -> Note NoteSequence_Prime
NoteSequence_Prime -> Note NoteSequence_Prime |
Note -> Pitch Duration
Pitch -> 'A' | 'B' | 'C' | 'D' | 'E' | 'F' | 'G'
Duration -> 'whole' | 'half' | 'quarter' | 'eighth' | 'sixteenth'
ChordSequence -> Chord ChordSequence_Prime
ChordSequence_Prime -> Chord ChordSequence_Prime |
Chord -> '(' PitchList ')' Duration
PitchList -> Pitch PitchList_Prime
PitchList_Prime -> Pitch PitchList_Prime |
`

var (
	grammarFile = kingpin.Flag("grammar", "Grammar file to load instead of the built-in musical grammar.").Short('g').String()
	trees       = kingpin.Flag("trees", "Print every parse tree of valid sentences.").Short('t').Bool()
	examples    = kingpin.Flag("examples", "Generate up to N example sentences and exit.").PlaceHolder("N").Int()
	depth       = kingpin.Flag("depth", "Recursion depth bound for example generation.").Default("5").Int()
	interactive = kingpin.Flag("interactive", "Read sentences from stdin until EOF or 'q'.").Short('i').Bool()
	debug       = kingpin.Flag("debug", "Dump the grammar structure.").Bool()
	sentences   = kingpin.Arg("sentence", "Sentences to validate.").Strings()
)

func main() {
	kingpin.CommandLine.Help = "Check sentences against a context-free grammar and print their parse trees."
	kingpin.Parse()

	text := musicalGrammar
	if *grammarFile != "" {
		data, err := os.ReadFile(*grammarFile)
		kingpin.FatalIfError(err, "")
		text = string(data)
	}
	grammar, err := cfg.ParseGrammar(text)
	kingpin.FatalIfError(err, "invalid grammar")
	if *debug {
		repr.Println(grammar)
	}
	parser := cfg.MustBuild(grammar)

	if *examples > 0 {
		generated, fallback := parser.GenerateExamples(*examples, *depth)
		if fallback {
			fmt.Println("(no sentences fit the depth bound; built-in examples follow)")
		}
		for _, example := range generated {
			fmt.Println(example)
		}
		return
	}

	for _, sentence := range *sentences {
		check(parser, sentence)
	}
	if *interactive || len(*sentences) == 0 {
		prompt(parser)
	}
}

func check(parser *cfg.Parser, sentence string) {
	forest := parser.Parse(sentence)
	if len(forest) == 0 {
		fmt.Printf("%q: INVALID\n", sentence)
		return
	}
	fmt.Printf("%q: VALID\n", sentence)
	if *trees {
		for i, tree := range forest {
			fmt.Printf("Parse Tree %d:\n%s\n", i+1, tree.Pretty())
		}
	}
}

func prompt(parser *cfg.Parser) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("sentence> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "q" {
			break
		}
		if line == "" {
			continue
		}
		check(parser, line)
	}
}
