package automaton

import "github.com/dekarrin/fsmkit/fsmerr"

// Builder is the mutable handle used to construct an Automaton one state
// and one edge at a time. A Builder is owned by a single goroutine; once
// Automaton is called, the frozen value it returns is safe to share freely.
type Builder struct {
	alphabet []byte
	inAlpha  map[byte]bool
	n        int
	delta    []map[Symbol]stateSet
	start    stateSet
	accept   stateSet
}

// New returns a Builder for an automaton with n states (numbered 0..n-1)
// and the given alphabet. It fails if n is negative or the alphabet
// contains a duplicate symbol.
func New(n int, alphabet []byte) (*Builder, error) {
	if n < 0 {
		return nil, fsmerr.Precondition("automaton: negative state count %d", n)
	}

	inAlpha := make(map[byte]bool, len(alphabet))
	for _, c := range alphabet {
		if inAlpha[c] {
			return nil, fsmerr.Precondition("automaton: duplicate alphabet symbol %q", c)
		}
		inAlpha[c] = true
	}

	b := &Builder{
		alphabet: append([]byte(nil), alphabet...),
		inAlpha:  inAlpha,
		n:        n,
		delta:    make([]map[Symbol]stateSet, n),
		start:    stateSet{},
		accept:   stateSet{},
	}
	for i := range b.delta {
		b.delta[i] = map[Symbol]stateSet{}
	}
	return b, nil
}

// Connect adds an edge from q1 to q2 labeled by sym (an alphabet symbol or
// Epsilon). Adding a duplicate edge has no effect. It fails if q1 or q2 is
// out of range, or sym is neither Epsilon nor a member of the alphabet.
func (b *Builder) Connect(q1, q2 int, sym Symbol) error {
	if q1 < 0 || q1 >= b.n {
		return fsmerr.Precondition("automaton: connect: state %d out of range [0, %d)", q1, b.n)
	}
	if q2 < 0 || q2 >= b.n {
		return fsmerr.Precondition("automaton: connect: state %d out of range [0, %d)", q2, b.n)
	}
	if sym != Epsilon && (sym < 0 || sym > 255 || !b.inAlpha[byte(sym)]) {
		return fsmerr.Precondition("automaton: connect: symbol %q not in alphabet", rune(sym))
	}

	set, ok := b.delta[q1][sym]
	if !ok {
		set = stateSet{}
		b.delta[q1][sym] = set
	}
	set.add(q2)
	return nil
}

// MarkStart inserts q into S. It fails if q is out of range.
func (b *Builder) MarkStart(q int) error {
	if q < 0 || q >= b.n {
		return fsmerr.Precondition("automaton: mark_start: state %d out of range [0, %d)", q, b.n)
	}
	b.start.add(q)
	return nil
}

// MarkAccept inserts q into F. It fails if q is out of range.
func (b *Builder) MarkAccept(q int) error {
	if q < 0 || q >= b.n {
		return fsmerr.Precondition("automaton: mark_accept: state %d out of range [0, %d)", q, b.n)
	}
	b.accept.add(q)
	return nil
}

// Automaton freezes the builder's current state into an immutable
// Automaton value. The builder remains usable afterward; further calls to
// Connect/MarkStart/MarkAccept do not affect automata already produced by
// earlier calls to this method.
func (b *Builder) Automaton() Automaton {
	delta := make([]map[Symbol][]int, b.n)
	for q := 0; q < b.n; q++ {
		delta[q] = make(map[Symbol][]int, len(b.delta[q]))
		for sym, set := range b.delta[q] {
			delta[q][sym] = set.sorted()
		}
	}

	return Automaton{
		alphabet: append([]byte(nil), b.alphabet...),
		n:        b.n,
		delta:    delta,
		start:    b.start.sorted(),
		accept:   b.accept.sorted(),
	}
}
