// Package thompson lowers a regex AST (package ast) to an ε-NFA using
// Thompson's construction: each AST variant compiles to a small fragment
// with exactly one start state and one accept state, and composition glues
// fragments together with ε-edges.
package thompson

import (
	"github.com/dekarrin/fsmkit/automaton"
	"github.com/dekarrin/fsmkit/regex/ast"
)

// fragment is an in-progress piece of the automaton under construction: one
// start state and one accept state, with everything between them already
// wired into the shared Builder.
type fragment struct {
	start, accept int
}

// Compile lowers root to an ε-NFA. State indices are allocated by a
// monotonic counter in the order the construction visits the tree; the
// alphabet is the set of distinct Char symbols encountered, in first-seen
// order.
func Compile(root ast.Node) (automaton.Automaton, error) {
	alphabet := collectAlphabet(root)

	b, err := automaton.New(numStates(root), alphabet)
	if err != nil {
		return automaton.Automaton{}, err
	}

	next := 0
	frag, err := build(b, root, &next)
	if err != nil {
		return automaton.Automaton{}, err
	}

	if err := b.MarkStart(frag.start); err != nil {
		return automaton.Automaton{}, err
	}
	if err := b.MarkAccept(frag.accept); err != nil {
		return automaton.Automaton{}, err
	}

	return b.Automaton(), nil
}

func build(b *automaton.Builder, node ast.Node, next *int) (fragment, error) {
	switch n := node.(type) {
	case ast.Char:
		return buildChar(b, n, next)
	case ast.Concat:
		return buildConcat(b, n, next)
	case ast.Alt:
		return buildAlt(b, n, next)
	case ast.Opt:
		return buildOpt(b, n, next)
	case ast.Star:
		return buildStar(b, n, next)
	case ast.Plus:
		return buildPlus(b, n, next)
	default:
		panic("thompson: unrecognized ast.Node variant")
	}
}

// Char(c): two states s, f; single edge s --c--> f.
func buildChar(b *automaton.Builder, n ast.Char, next *int) (fragment, error) {
	s, f := alloc(next), alloc(next)
	if err := b.Connect(s, f, automaton.Symbol(n.Value)); err != nil {
		return fragment{}, err
	}
	return fragment{start: s, accept: f}, nil
}

// Concat(x1..xk): compile each child in order, ε-linking accept(xi) to
// start(xi+1); the fragment's start/accept are the first child's start and
// the last child's accept. No fresh states are needed.
func buildConcat(b *automaton.Builder, n ast.Concat, next *int) (fragment, error) {
	var first fragment
	var prevAccept int

	for i, child := range n.Children {
		frag, err := build(b, child, next)
		if err != nil {
			return fragment{}, err
		}
		if i == 0 {
			first = frag
		} else if err := b.Connect(prevAccept, frag.start, automaton.Epsilon); err != nil {
			return fragment{}, err
		}
		prevAccept = frag.accept
	}

	return fragment{start: first.start, accept: prevAccept}, nil
}

// Alt(x1..xk): fresh s, f; for each child, ε-edges s -> start(xi) and
// accept(xi) -> f.
func buildAlt(b *automaton.Builder, n ast.Alt, next *int) (fragment, error) {
	s, f := alloc(next), alloc(next)

	for _, child := range n.Children {
		frag, err := build(b, child, next)
		if err != nil {
			return fragment{}, err
		}
		if err := b.Connect(s, frag.start, automaton.Epsilon); err != nil {
			return fragment{}, err
		}
		if err := b.Connect(frag.accept, f, automaton.Epsilon); err != nil {
			return fragment{}, err
		}
	}

	return fragment{start: s, accept: f}, nil
}

// Opt(x): fresh s, f; ε-edges s -> start(x), accept(x) -> f, and s -> f
// directly (the zero-occurrence path).
func buildOpt(b *automaton.Builder, n ast.Opt, next *int) (fragment, error) {
	s, f := alloc(next), alloc(next)

	frag, err := build(b, n.Child, next)
	if err != nil {
		return fragment{}, err
	}
	if err := b.Connect(s, frag.start, automaton.Epsilon); err != nil {
		return fragment{}, err
	}
	if err := b.Connect(frag.accept, f, automaton.Epsilon); err != nil {
		return fragment{}, err
	}
	if err := b.Connect(s, f, automaton.Epsilon); err != nil {
		return fragment{}, err
	}

	return fragment{start: s, accept: f}, nil
}

// Star(x): fresh s, f; ε-edges s -> start(x), accept(x) -> s (the repeat
// loop), and s -> f (the zero-occurrence path).
func buildStar(b *automaton.Builder, n ast.Star, next *int) (fragment, error) {
	s, f := alloc(next), alloc(next)

	frag, err := build(b, n.Child, next)
	if err != nil {
		return fragment{}, err
	}
	if err := b.Connect(s, frag.start, automaton.Epsilon); err != nil {
		return fragment{}, err
	}
	if err := b.Connect(frag.accept, s, automaton.Epsilon); err != nil {
		return fragment{}, err
	}
	if err := b.Connect(s, f, automaton.Epsilon); err != nil {
		return fragment{}, err
	}

	return fragment{start: s, accept: f}, nil
}

// Plus(x): reuse start(x) and accept(x) directly; a single fresh f, with
// ε-edges accept(x) -> start(x) (the repeat loop) and accept(x) -> f.
func buildPlus(b *automaton.Builder, n ast.Plus, next *int) (fragment, error) {
	frag, err := build(b, n.Child, next)
	if err != nil {
		return fragment{}, err
	}

	f := alloc(next)
	if err := b.Connect(frag.accept, frag.start, automaton.Epsilon); err != nil {
		return fragment{}, err
	}
	if err := b.Connect(frag.accept, f, automaton.Epsilon); err != nil {
		return fragment{}, err
	}

	return fragment{start: frag.start, accept: f}, nil
}

func alloc(next *int) int {
	q := *next
	*next++
	return q
}

// numStates returns the number of states buildX allocates for node, so the
// Builder can be sized up front; it must stay in lockstep with the
// allocation counts in buildChar/buildConcat/buildAlt/buildOpt/buildStar/
// buildPlus above.
func numStates(node ast.Node) int {
	switch n := node.(type) {
	case ast.Char:
		return 2
	case ast.Concat:
		total := 0
		for _, c := range n.Children {
			total += numStates(c)
		}
		return total
	case ast.Alt:
		total := 2
		for _, c := range n.Children {
			total += numStates(c)
		}
		return total
	case ast.Opt:
		return 2 + numStates(n.Child)
	case ast.Star:
		return 2 + numStates(n.Child)
	case ast.Plus:
		return 1 + numStates(n.Child)
	default:
		panic("thompson: unrecognized ast.Node variant")
	}
}

// collectAlphabet walks node and returns the distinct Char symbols it
// contains, in first-seen order.
func collectAlphabet(node ast.Node) []byte {
	seen := make(map[byte]bool)
	var order []byte

	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch v := n.(type) {
		case ast.Char:
			if !seen[v.Value] {
				seen[v.Value] = true
				order = append(order, v.Value)
			}
		case ast.Concat:
			for _, c := range v.Children {
				walk(c)
			}
		case ast.Alt:
			for _, c := range v.Children {
				walk(c)
			}
		case ast.Opt:
			walk(v.Child)
		case ast.Star:
			walk(v.Child)
		case ast.Plus:
			walk(v.Child)
		}
	}
	walk(node)

	return order
}
