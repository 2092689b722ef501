package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// accepts runs a reference NFA/DFA simulation of a over s: it tracks the
// set of live states (closed under ε at every step) and reports whether
// that set intersects F at the end. It is test-only scaffolding and not
// part of the package's public contract; matching is out of scope for the
// library itself.
func accepts(a Automaton, s string) bool {
	closures := a.epsilonClosures()

	live := stateSet{}
	for _, q := range a.start {
		live.addAll(closures[q])
	}

	for i := 0; i < len(s); i++ {
		sym := Symbol(s[i])
		next := stateSet{}
		for q := range live {
			for _, q2 := range a.delta[q][sym] {
				next.addAll(closures[q2])
			}
		}
		live = next
	}

	for q := range live {
		if a.IsAccept(q) {
			return true
		}
	}
	return false
}

// S1. Singleton: Σ={a}; n=2; S={0}; F={1}; δ(0,a)={1}. min yields a 2-state
// DFA accepting exactly "a".
func Test_Scenario_S1_Singleton(t *testing.T) {
	assert := assert.New(t)

	b, err := New(2, []byte("a"))
	assert.NoError(err)
	assert.NoError(b.Connect(0, 1, Symbol('a')))
	assert.NoError(b.MarkStart(0))
	assert.NoError(b.MarkAccept(1))

	a := b.Automaton()
	min := a.Minimize()

	assert.True(min.IsDeterministic())
	assert.Equal(2, min.Len())
	assert.True(accepts(min, "a"))
	assert.False(accepts(min, ""))
	assert.False(accepts(min, "aa"))
}

// S2. Star: Σ={a}; n=2; S={0}; F={0}; δ(0,a)={0}. min yields a single state
// (start = accept) accepting a*.
func Test_Scenario_S2_Star(t *testing.T) {
	assert := assert.New(t)

	b, err := New(2, []byte("a"))
	assert.NoError(err)
	assert.NoError(b.Connect(0, 0, Symbol('a')))
	assert.NoError(b.MarkStart(0))
	assert.NoError(b.MarkAccept(0))

	a := b.Automaton()
	min := a.Minimize()

	assert.True(min.IsDeterministic())
	assert.Equal(1, min.Len())
	assert.Equal(min.Start(), min.Accept())
	for _, s := range []string{"", "a", "aa", "aaaa"} {
		assert.True(accepts(min, s), "expected %q to be accepted", s)
	}
}

// S3. Even-count a's over {a,b}: min has exactly 2 states.
func Test_Scenario_S3_EvenAs(t *testing.T) {
	assert := assert.New(t)

	// state 0: even a's seen (start, accept); state 1: odd a's seen.
	b, err := New(2, []byte("ab"))
	assert.NoError(err)
	assert.NoError(b.Connect(0, 1, Symbol('a')))
	assert.NoError(b.Connect(1, 0, Symbol('a')))
	assert.NoError(b.Connect(0, 0, Symbol('b')))
	assert.NoError(b.Connect(1, 1, Symbol('b')))
	assert.NoError(b.MarkStart(0))
	assert.NoError(b.MarkAccept(0))

	a := b.Automaton()
	min := a.Minimize()

	assert.True(min.IsDeterministic())
	assert.Equal(2, min.Len())
	assert.True(accepts(min, ""))
	assert.True(accepts(min, "aa"))
	assert.True(accepts(min, "abab"))
	assert.False(accepts(min, "a"))
	assert.False(accepts(min, "aaa"))
}

// S4. ε-NFA collapse: Σ={a}; n=3; δ(0,ε)={1}, δ(1,a)={2}; S={0}; F={2}.
// det yields a 2-state DFA; min yields a 2-state DFA accepting exactly "a".
func Test_Scenario_S4_EpsilonCollapse(t *testing.T) {
	assert := assert.New(t)

	b, err := New(3, []byte("a"))
	assert.NoError(err)
	assert.NoError(b.Connect(0, 1, Epsilon))
	assert.NoError(b.Connect(1, 2, Symbol('a')))
	assert.NoError(b.MarkStart(0))
	assert.NoError(b.MarkAccept(2))

	a := b.Automaton()

	det := a.Determinize()
	assert.True(det.IsDeterministic())
	assert.Equal(2, det.Len())

	min := a.Minimize()
	assert.True(min.IsDeterministic())
	assert.Equal(2, min.Len())
	assert.True(accepts(min, "a"))
	assert.False(accepts(min, ""))
	assert.False(accepts(min, "aa"))
}

func Test_Invariant_RevRev(t *testing.T) {
	assert := assert.New(t)

	b, _ := New(2, []byte("ab"))
	_ = b.Connect(0, 1, Symbol('a'))
	_ = b.Connect(1, 0, Symbol('b'))
	_ = b.MarkStart(0)
	_ = b.MarkAccept(1)
	a := b.Automaton()

	rr := a.Reverse().Reverse()

	for _, s := range []string{"", "a", "ab", "aba", "b", "abab"} {
		assert.Equal(accepts(a, s), accepts(rr, s), "rev(rev(a)) must accept the same language as a for %q", s)
	}
}

func Test_Invariant_DetIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	b, _ := New(3, []byte("ab"))
	_ = b.Connect(0, 1, Epsilon)
	_ = b.Connect(1, 2, Symbol('a'))
	_ = b.Connect(0, 2, Symbol('b'))
	_ = b.MarkStart(0)
	_ = b.MarkAccept(2)
	a := b.Automaton()

	det := a.Determinize()
	assert.True(det.IsDeterministic())
}

func Test_Invariant_DetIdempotent(t *testing.T) {
	assert := assert.New(t)

	b, _ := New(3, []byte("ab"))
	_ = b.Connect(0, 1, Epsilon)
	_ = b.Connect(1, 2, Symbol('a'))
	_ = b.Connect(0, 2, Symbol('b'))
	_ = b.MarkStart(0)
	_ = b.MarkAccept(2)
	a := b.Automaton()

	det := a.Determinize()
	detdet := det.Determinize()

	assert.Equal(det.Len(), detdet.Len())
	for _, s := range []string{"", "a", "b", "ab"} {
		assert.Equal(accepts(det, s), accepts(detdet, s))
	}
}

func Test_Invariant_MinIdempotentStateCount(t *testing.T) {
	assert := assert.New(t)

	b, _ := New(2, []byte("ab"))
	_ = b.Connect(0, 1, Symbol('a'))
	_ = b.Connect(1, 0, Symbol('b'))
	_ = b.MarkStart(0)
	_ = b.MarkAccept(1)
	a := b.Automaton()

	min1 := a.Minimize()
	min2 := min1.Minimize()

	assert.Equal(min1.Len(), min2.Len())
}

func Test_EmptyAutomaton(t *testing.T) {
	assert := assert.New(t)

	b, err := New(0, nil)
	assert.NoError(err)
	a := b.Automaton()

	det := a.Determinize()
	assert.Equal(1, det.Len(), "subset construction materializes a single dead state for the empty subset")
	assert.Empty(det.Accept())
	assert.False(accepts(det, ""))
	assert.False(accepts(det, "anything"))
}
