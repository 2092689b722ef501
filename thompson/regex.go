package thompson

import (
	"github.com/dekarrin/fsmkit/automaton"
	"github.com/dekarrin/fsmkit/regex/parser"
)

// BuildFSM parses pattern and compiles it straight to an ε-NFA via
// Thompson's construction. It is the regex-to-automaton entry point: parse
// failures and unsupported features surface as the same *fsmerr errors
// Parse returns.
func BuildFSM(pattern string) (automaton.Automaton, error) {
	node, err := parser.Parse(pattern)
	if err != nil {
		return automaton.Automaton{}, err
	}
	return Compile(node)
}

// MinRegex parses and compiles pattern, then reduces the result to its
// canonical minimal DFA. It is equivalent to BuildFSM(pattern) followed by
// Minimize on the result.
func MinRegex(pattern string) (automaton.Automaton, error) {
	a, err := BuildFSM(pattern)
	if err != nil {
		return automaton.Automaton{}, err
	}
	return a.Minimize(), nil
}
