package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_EpsilonClosure_reflexiveAndTransitive(t *testing.T) {
	assert := assert.New(t)

	// 0 --ε--> 1 --ε--> 2, plus an ε-cycle 2 --ε--> 0 to exercise the
	// visited-flag termination.
	b, err := New(3, nil)
	assert.NoError(err)
	assert.NoError(b.Connect(0, 1, Epsilon))
	assert.NoError(b.Connect(1, 2, Epsilon))
	assert.NoError(b.Connect(2, 0, Epsilon))

	a := b.Automaton()

	for q := 0; q < 3; q++ {
		closure := a.EpsilonClosure(q)
		assert.Contains(closure, q, "closure must be reflexive")
		assert.ElementsMatch([]int{0, 1, 2}, closure, "cycle collapses all three states together")
	}
}

func Test_EpsilonClosure_branchingCycleThroughThreeStates(t *testing.T) {
	assert := assert.New(t)

	// Mirrors the ε-skeleton thompson.Compile produces for "(a?)*": an
	// ε-triangle 0-2-3 with a branch off of 2, plus an extra state 5 that
	// enters the triangle without being part of it. A closure algorithm
	// that memoizes per-state results across a single shared pass computes
	// closures[3] before state 0's own closure (reached via the back-edge
	// 3->0) has finished accumulating, and ends up missing 2 and 4 -
	// dropping the only state with an outgoing 'a' edge.
	b, err := New(6, []byte("a"))
	assert.NoError(err)
	assert.NoError(b.Connect(0, 1, Epsilon))
	assert.NoError(b.Connect(0, 2, Epsilon))
	assert.NoError(b.Connect(2, 3, Epsilon))
	assert.NoError(b.Connect(2, 4, Epsilon))
	assert.NoError(b.Connect(3, 0, Epsilon))
	assert.NoError(b.Connect(5, 3, Epsilon))
	assert.NoError(b.Connect(4, 4, Symbol('a')))

	a := b.Automaton()

	assert.ElementsMatch([]int{0, 1, 2, 3, 4}, a.EpsilonClosure(0))
	assert.ElementsMatch([]int{0, 1, 2, 3, 4}, a.EpsilonClosure(2))
	assert.ElementsMatch([]int{0, 1, 2, 3, 4}, a.EpsilonClosure(3), "back-edge into the cycle must not see a partial closure for state 0")
	assert.ElementsMatch([]int{0, 1, 2, 3, 4, 5}, a.EpsilonClosure(5), "must still reach the 'a'-producing state 4 through the cycle")
}

func Test_EpsilonClosure_noEpsilons(t *testing.T) {
	assert := assert.New(t)

	b, err := New(2, []byte("a"))
	assert.NoError(err)
	assert.NoError(b.Connect(0, 1, Symbol('a')))

	a := b.Automaton()

	assert.Equal([]int{0}, a.EpsilonClosure(0))
	assert.Equal([]int{1}, a.EpsilonClosure(1))
}

func Test_EpsilonClosure_outOfRange(t *testing.T) {
	assert := assert.New(t)

	b, err := New(1, nil)
	assert.NoError(err)
	a := b.Automaton()

	assert.Nil(a.EpsilonClosure(5))
}
