package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dekarrin/fsmkit/automaton"
	"github.com/stretchr/testify/assert"
)

func sample(t *testing.T) automaton.Automaton {
	t.Helper()

	b, err := automaton.New(3, []byte("a"))
	if err != nil {
		t.Fatal(err)
	}
	_ = b.Connect(0, 1, automaton.Epsilon)
	_ = b.Connect(1, 2, automaton.Symbol('a'))
	_ = b.MarkStart(0)
	_ = b.MarkAccept(2)

	return b.Automaton()
}

func Test_Sprint_NonEpsilonLineFormat(t *testing.T) {
	assert := assert.New(t)

	out := Sprint(sample(t))
	assert.Contains(out, " 1  --a->  2*")
}

func Test_Sprint_EpsilonLineFormat(t *testing.T) {
	assert := assert.New(t)

	out := Sprint(sample(t))
	assert.Contains(out, "*0  --->>  1 ")
}

func Test_Sprint_HeaderMentionsAlphabetAndCounts(t *testing.T) {
	assert := assert.New(t)

	out := Sprint(sample(t))
	firstLine := strings.SplitN(out, "\n", 2)[0]
	assert.Contains(firstLine, "a")
	assert.Contains(firstLine, "states: 3")
}

func Test_Fprint_WritesSameAsSprint(t *testing.T) {
	assert := assert.New(t)

	a := sample(t)
	var buf bytes.Buffer
	assert.NoError(Fprint(&buf, a))
	assert.Equal(Sprint(a), buf.String())
}

func Test_Sprint_NoTransitionsStillPrintsHeader(t *testing.T) {
	assert := assert.New(t)

	b, err := automaton.New(1, nil)
	assert.NoError(err)
	out := Sprint(b.Automaton())
	assert.Contains(out, "states: 1")
}
