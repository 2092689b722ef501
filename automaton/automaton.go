// Package automaton implements the ε-NFA/DFA core: an immutable,
// value-semantics automaton type; the three structural transforms (reverse,
// determinize, minimize) described by the classic Thompson/Brzozowski
// theory; and the builder used to construct automata in the first place.
//
// An Automaton is built via New/Connect/MarkStart/MarkAccept (or, for
// callers that already have a full transition table, via
// FromTransitionTable) and then frozen with Builder.Automaton. From that
// point on, every method on Automaton returns a new value; none of them
// mutate the receiver, so an Automaton is safe to share across goroutines
// for read-only use.
package automaton

import "github.com/dekarrin/fsmkit/fsmerr"

// Symbol is either a byte-valued member of an automaton's alphabet or the
// distinguished Epsilon value denoting an ε-transition.
type Symbol int32

// Epsilon is the symbol value reserved for ε-transitions. It is never a
// member of any alphabet, since alphabet members are plain bytes (0-255)
// and Epsilon falls outside that range.
const Epsilon Symbol = -1

// Automaton is the tuple (Σ, Q, δ, S, F) described in the package
// documentation: an ordered alphabet, a dense state space 0..n-1, a total
// transition relation, a start-state set, and an accept-state set.
//
// The zero value is the empty automaton over an empty alphabet; use New to
// build anything more interesting.
type Automaton struct {
	alphabet []byte
	n        int
	delta    []map[Symbol][]int // delta[state][symbol] -> sorted, deduplicated targets
	start    []int              // sorted, deduplicated
	accept   []int              // sorted, deduplicated
}

// Alphabet returns a copy of the automaton's ordered alphabet.
func (a Automaton) Alphabet() []byte {
	return append([]byte(nil), a.alphabet...)
}

// Len returns the number of states, n.
func (a Automaton) Len() int {
	return a.n
}

// Delta returns a copy of δ(q, sym): the sorted, deduplicated set of states
// reachable from q on sym (an alphabet byte cast to Symbol, or Epsilon). An
// out-of-range q yields nil.
func (a Automaton) Delta(q int, sym Symbol) []int {
	if q < 0 || q >= a.n {
		return nil
	}
	return append([]int(nil), a.delta[q][sym]...)
}

// Start returns a copy of S, sorted ascending.
func (a Automaton) Start() []int {
	return append([]int(nil), a.start...)
}

// Accept returns a copy of F, sorted ascending.
func (a Automaton) Accept() []int {
	return append([]int(nil), a.accept...)
}

// IsStart reports whether q is a member of S.
func (a Automaton) IsStart(q int) bool {
	return contains(a.start, q)
}

// IsAccept reports whether q is a member of F.
func (a Automaton) IsAccept(q int) bool {
	return contains(a.accept, q)
}

// IsDeterministic reports whether a satisfies the shape of a DFA: exactly
// one start state, no ε-transitions, and at most one transition per
// (state, symbol).
func (a Automaton) IsDeterministic() bool {
	if len(a.start) != 1 {
		return false
	}
	for q := 0; q < a.n; q++ {
		if len(a.delta[q][Epsilon]) > 0 {
			return false
		}
		for _, c := range a.alphabet {
			if len(a.delta[q][Symbol(c)]) > 1 {
				return false
			}
		}
	}
	return true
}

// contains reports whether the sorted slice xs contains x.
func contains(xs []int, x int) bool {
	lo, hi := 0, len(xs)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case xs[mid] == x:
			return true
		case xs[mid] < x:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}

// symbolIndex returns the in-alphabet-order position of sym, or -1 if sym
// is Epsilon or not a member of the alphabet.
func (a Automaton) symbolIndex(sym Symbol) int {
	if sym == Epsilon {
		return -1
	}
	for i, c := range a.alphabet {
		if Symbol(c) == sym {
			return i
		}
	}
	return -1
}

// FromTransitionTable builds an Automaton from an explicit transition
// relation: table[from] is a row of len(alphabet)+1 columns, one per
// alphabet symbol in alphabet order followed by one ε column; each column
// holds the (possibly empty) list of target states reached from `from` on
// that symbol. start and accept are optional (nil is the empty set).
func FromTransitionTable(alphabet []byte, table [][][]int, start, accept []int) (Automaton, error) {
	b, err := New(len(table), alphabet)
	if err != nil {
		return Automaton{}, err
	}

	for from, row := range table {
		if len(row) != len(alphabet)+1 {
			return Automaton{}, fsmerr.Precondition(
				"automaton: state %d: transition row has %d columns, want %d (%d alphabet symbols + epsilon)",
				from, len(row), len(alphabet)+1, len(alphabet))
		}
		for col, tos := range row {
			sym := Epsilon
			if col < len(alphabet) {
				sym = Symbol(alphabet[col])
			}
			for _, to := range tos {
				if err := b.Connect(from, to, sym); err != nil {
					return Automaton{}, err
				}
			}
		}
	}

	for _, q := range start {
		if err := b.MarkStart(q); err != nil {
			return Automaton{}, err
		}
	}
	for _, q := range accept {
		if err := b.MarkAccept(q); err != nil {
			return Automaton{}, err
		}
	}

	return b.Automaton(), nil
}
