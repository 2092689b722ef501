package automaton

// Determinize converts a into an equivalent deterministic finite automaton
// via subset construction, collapsing ε-closures at every step. DFA state i
// is the i-th distinct subset discovered by a breadth-first worklist seeded
// with the ε-closure of S and explored in alphabet order; because that
// order is fixed, the numbering is a deterministic function of a's
// structure and its alphabet's order.
//
// The result is partial: a symbol for which every reachable subset is
// empty simply has no outgoing edge from the corresponding DFA state,
// meaning rejection rather than a trip to an explicit dead state.
func (a Automaton) Determinize() Automaton {
	closures := a.epsilonClosures()

	isAccept := make([]bool, a.n)
	for _, q := range a.accept {
		isAccept[q] = true
	}

	t0 := stateSet{}
	for _, q := range a.start {
		t0.addAll(closures[q])
	}

	var subsets []stateSet
	index := map[string]int{}
	var queue []int

	discover := func(s stateSet) int {
		k := s.key()
		if i, ok := index[k]; ok {
			return i
		}
		i := len(subsets)
		index[k] = i
		subsets = append(subsets, s)
		queue = append(queue, i)
		return i
	}

	discover(t0)

	rows := make([]map[Symbol]int, 0, 1)
	growRows := func(n int) {
		for len(rows) < n {
			rows = append(rows, map[Symbol]int{})
		}
	}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		T := subsets[i]

		growRows(i + 1)
		row := rows[i]

		for _, c := range a.alphabet {
			sym := Symbol(c)
			u := stateSet{}
			for q := range T {
				for _, q2 := range a.delta[q][sym] {
					u.addAll(closures[q2])
				}
			}
			if len(u) == 0 {
				continue
			}
			j := discover(u)
			row[sym] = j
		}
	}
	growRows(len(subsets))

	n := len(subsets)
	delta := make([]map[Symbol][]int, n)
	var accept []int
	for i := 0; i < n; i++ {
		delta[i] = make(map[Symbol][]int, len(rows[i]))
		for sym, j := range rows[i] {
			delta[i][sym] = []int{j}
		}
		for q := range subsets[i] {
			if isAccept[q] {
				accept = append(accept, i)
				break
			}
		}
	}

	return Automaton{
		alphabet: append([]byte(nil), a.alphabet...),
		n:        n,
		delta:    delta,
		start:    []int{0},
		accept:   accept,
	}
}
