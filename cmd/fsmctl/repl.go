package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dekarrin/fsmkit/automaton"
	"github.com/dekarrin/fsmkit/inspect"
	"github.com/dekarrin/fsmkit/thompson"
)

// replLineReader is satisfied by both the readline-backed reader and the
// plain bufio reader that runREPL falls back to when readline cannot be
// set up.
type replLineReader interface {
	ReadLine() (string, error)
	Close() error
}

type readlineReader struct {
	rl *readline.Instance
}

func (r *readlineReader) ReadLine() (string, error) {
	return r.rl.Readline()
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

type directReader struct {
	r *bufio.Reader
}

func (r *directReader) ReadLine() (string, error) {
	return r.r.ReadString('\n')
}

func (r *directReader) Close() error {
	return nil
}

// runREPL drives the "build/rev/det/min/show" command loop described in the
// package doc comment against a single current automaton.
func runREPL() {
	var reader replLineReader

	rl, err := readline.NewEx(&readline.Config{Prompt: "fsmctl> "})
	if err != nil {
		reader = &directReader{r: bufio.NewReader(os.Stdin)}
	} else {
		reader = &readlineReader{rl: rl}
	}
	defer reader.Close()

	var current *automaton.Automaton

	for {
		line, err := reader.ReadLine()
		line = strings.TrimSpace(line)
		if line != "" {
			current = runREPLCommand(line, current)
		}
		if err != nil {
			if err != io.EOF {
				fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			}
			return
		}
	}
}

func runREPLCommand(line string, current *automaton.Automaton) *automaton.Automaton {
	fields := strings.SplitN(line, " ", 2)
	cmd := fields[0]

	switch cmd {
	case "build":
		if len(fields) < 2 {
			fmt.Fprintln(os.Stderr, "usage: build <regex>")
			return current
		}
		a, err := thompson.BuildFSM(fields[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			return current
		}
		fmt.Println("built.")
		return &a
	case "rev":
		return applyTransform(current, automaton.Automaton.Reverse, "rev")
	case "det":
		return applyTransform(current, automaton.Automaton.Determinize, "det")
	case "min":
		return applyTransform(current, automaton.Automaton.Minimize, "min")
	case "show":
		if current == nil {
			fmt.Fprintln(os.Stderr, "no current automaton; use \"build <regex>\" first")
			return current
		}
		fmt.Print(inspect.Sprint(*current))
		return current
	default:
		fmt.Fprintf(os.Stderr, "unrecognized command %q; expected build/rev/det/min/show\n", cmd)
		return current
	}
}

func applyTransform(current *automaton.Automaton, transform func(automaton.Automaton) automaton.Automaton, name string) *automaton.Automaton {
	if current == nil {
		fmt.Fprintln(os.Stderr, "no current automaton; use \"build <regex>\" first")
		return current
	}
	result := transform(*current)
	fmt.Printf("%s applied.\n", name)
	return &result
}
