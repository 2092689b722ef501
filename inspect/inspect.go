// Package inspect renders an automaton as human-readable text: a summary
// header followed by one line per transition. It exists purely for
// debugging and manual inspection; there is no corresponding reader, and
// none of the core package depends on this one.
package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/dekarrin/fsmkit/automaton"
	"github.com/dekarrin/rosed"
)

// Fprint writes the pretty-printed form of a to w.
func Fprint(w io.Writer, a automaton.Automaton) error {
	_, err := io.WriteString(w, Sprint(a))
	return err
}

// Sprint renders a as a summary header followed by one line per transition.
// Each transition line reads "<p>q1<p> --c-> <p>q2<p>" for a non-ε edge on
// symbol c, or "<p>q1<p> --->> <p>q2<p>" for an ε-edge, where <p>X<p>
// flanks the state number X with a '*' on the left if X is a start state
// and a '*' on the right if X is an accept state (a space otherwise).
func Sprint(a automaton.Automaton) string {
	var sb strings.Builder

	sb.WriteString(header(a))
	sb.WriteByte('\n')

	for _, line := range transitionLines(a) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

func header(a automaton.Automaton) string {
	alphabet := a.Alphabet()
	symbols := make([]string, len(alphabet))
	for i, c := range alphabet {
		symbols[i] = string(c)
	}

	summary := fmt.Sprintf("alphabet: {%s}; states: %d; start: %v; accept: %v",
		strings.Join(symbols, ", "), a.Len(), a.Start(), a.Accept())

	return rosed.Edit(summary).Wrap(80).String()
}

func transitionLines(a automaton.Automaton) []string {
	var lines []string

	for q := 0; q < a.Len(); q++ {
		for _, c := range a.Alphabet() {
			for _, to := range a.Delta(q, automaton.Symbol(c)) {
				lines = append(lines, fmt.Sprintf("%s --%c-> %s", render(a, q), c, render(a, to)))
			}
		}
		for _, to := range a.Delta(q, automaton.Epsilon) {
			lines = append(lines, fmt.Sprintf("%s --->> %s", render(a, q), render(a, to)))
		}
	}

	return lines
}

// render formats q as "<p>q<p>": flanked by '*' on the left if q is a start
// state, by '*' on the right if q is an accept state, by a space otherwise.
func render(a automaton.Automaton, q int) string {
	left, right := " ", " "
	if a.IsStart(q) {
		left = "*"
	}
	if a.IsAccept(q) {
		right = "*"
	}
	return fmt.Sprintf("%s%d%s", left, q, right)
}
