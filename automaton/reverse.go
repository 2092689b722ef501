package automaton

// Reverse returns rev(a) = (Σ, Q, δ', F, S), where δ'(q, c) = { q0 | q ∈
// δ(q0, c) } for every symbol c including ε. The accepted language of the
// result is the reverse of L(a): every accepted string read backward.
//
// The result is generally nondeterministic even when a is a DFA; Reverse
// alone never collapses to a DFA shape.
func (a Automaton) Reverse() Automaton {
	sets := make([]map[Symbol]stateSet, a.n)
	for i := range sets {
		sets[i] = map[Symbol]stateSet{}
	}

	for from := 0; from < a.n; from++ {
		for sym, tos := range a.delta[from] {
			for _, to := range tos {
				set, ok := sets[to][sym]
				if !ok {
					set = stateSet{}
					sets[to][sym] = set
				}
				set.add(from)
			}
		}
	}

	delta := make([]map[Symbol][]int, a.n)
	for q := 0; q < a.n; q++ {
		delta[q] = make(map[Symbol][]int, len(sets[q]))
		for sym, set := range sets[q] {
			delta[q][sym] = set.sorted()
		}
	}

	return Automaton{
		alphabet: append([]byte(nil), a.alphabet...),
		n:        a.n,
		delta:    delta,
		start:    append([]int(nil), a.accept...),
		accept:   append([]int(nil), a.start...),
	}
}
