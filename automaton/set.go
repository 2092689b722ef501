package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// stateSet is a set of automaton state indices. It backs ε-closures and the
// subsets discovered during subset construction.
type stateSet map[int]struct{}

func newStateSet(states ...int) stateSet {
	s := make(stateSet, len(states))
	for _, q := range states {
		s[q] = struct{}{}
	}
	return s
}

func (s stateSet) add(q int) {
	s[q] = struct{}{}
}

func (s stateSet) addAll(o stateSet) {
	for q := range o {
		s[q] = struct{}{}
	}
}

// sorted returns the set's elements in ascending order.
func (s stateSet) sorted() []int {
	out := make([]int, 0, len(s))
	for q := range s {
		out = append(out, q)
	}
	sort.Ints(out)
	return out
}

// key returns the canonical representation of the set: its elements sorted
// ascending and joined by commas. Two sets with the same elements always
// produce the same key regardless of how they were built up, which is what
// lets subset construction test discovered subsets for equality without
// caring about discovery order.
func (s stateSet) key() string {
	elems := s.sorted()
	parts := make([]string, len(elems))
	for i, q := range elems {
		parts[i] = strconv.Itoa(q)
	}
	return strings.Join(parts, ",")
}
