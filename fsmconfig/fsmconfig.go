// Package fsmconfig loads a library of named alphabets and named regex
// patterns from a TOML document, compiling and minimizing each pattern
// against its declared alphabet.
package fsmconfig

import (
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/fsmkit/automaton"
	"github.com/dekarrin/fsmkit/fsmerr"
	"github.com/dekarrin/fsmkit/thompson"
)

// Library holds the alphabets and compiled patterns loaded from a config
// document.
type Library struct {
	Alphabets map[string][]byte
	Patterns  map[string]automaton.Automaton
}

type alphabetDef struct {
	Symbols string `toml:"symbols"`
}

type patternDef struct {
	Alphabet string `toml:"alphabet"`
	Regex    string `toml:"regex"`
}

type document struct {
	Alphabet map[string]alphabetDef `toml:"alphabet"`
	Pattern  map[string]patternDef  `toml:"pattern"`
}

// Load reads a TOML document of the form:
//
//	[alphabet.ascii-lower]
//	symbols = "abcdefghijklmnopqrstuvwxyz"
//
//	[pattern.identifier]
//	alphabet = "ascii-lower"
//	regex = "(a|b|c)(a|b|c)*"
//
// Every pattern's regex is compiled, validated against its declared
// alphabet (every literal character the regex mentions must be a member),
// and minimized. Patterns are processed in name-sorted order so error
// messages are reproducible across runs.
func Load(r io.Reader) (*Library, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fsmerr.Wrap(fsmerr.KindPrecondition, err, "fsmconfig: reading config: %v", err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fsmerr.Wrap(fsmerr.KindParse, err, "fsmconfig: invalid TOML: %v", err)
	}

	lib := &Library{
		Alphabets: make(map[string][]byte, len(doc.Alphabet)),
		Patterns:  make(map[string]automaton.Automaton, len(doc.Pattern)),
	}

	for name, def := range doc.Alphabet {
		lib.Alphabets[name] = []byte(def.Symbols)
	}

	names := make([]string, 0, len(doc.Pattern))
	for name := range doc.Pattern {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := doc.Pattern[name]

		alphabet, ok := lib.Alphabets[def.Alphabet]
		if !ok {
			return nil, fsmerr.Precondition("fsmconfig: pattern %q references undefined alphabet %q", name, def.Alphabet)
		}

		a, err := thompson.BuildFSM(def.Regex)
		if err != nil {
			return nil, fsmerr.Wrap(fsmerr.KindParse, err, "fsmconfig: pattern %q: %v", name, err)
		}

		if err := checkAlphabet(a, alphabet); err != nil {
			return nil, fsmerr.Wrap(fsmerr.KindPrecondition, err, "fsmconfig: pattern %q: %v", name, err)
		}

		lib.Patterns[name] = a.Minimize()
	}

	return lib, nil
}

func checkAlphabet(a automaton.Automaton, declared []byte) error {
	allowed := make(map[byte]bool, len(declared))
	for _, c := range declared {
		allowed[c] = true
	}
	for _, c := range a.Alphabet() {
		if !allowed[c] {
			return fmt.Errorf("uses symbol %q not in its declared alphabet", string(c))
		}
	}
	return nil
}
