/*
Fsmctl is a command-line front end for the fsmkit automaton library.

It compiles regex patterns to minimal DFAs and prints them, runs a batch of
named patterns out of a TOML config file, drives an interactive REPL for
walking an automaton through the reverse/determinize/minimize transforms by
hand, or starts the library's debug HTTP server.

Usage:

	fsmctl [flags]

The flags are:

	-p, --pattern REGEX
		Compile and minimize the given regex, print the result, and exit.

	-c, --config FILE
		Load a fsmconfig library from FILE and print one minimized DFA per
		named pattern in it.

	-i, --interactive
		Start a REPL accepting "build <regex>", "rev", "det", "min", and
		"show" commands against a single "current" automaton.

	-s, --serve ADDRESS
		Start the debug HTTP server listening on ADDRESS instead of running
		one-shot.

Exactly one of -p, -c, -i, or -s should be given; if none or more than one
is, fsmctl prints a one-line error pointing at -h and exits nonzero.
*/
package main

import (
	"fmt"
	"net/http"
	"os"
	"sort"

	"github.com/dekarrin/fsmkit/fsmconfig"
	"github.com/dekarrin/fsmkit/fsmhttp"
	"github.com/dekarrin/fsmkit/inspect"
	"github.com/dekarrin/fsmkit/thompson"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitUsageError indicates no mode flag (or more than one) was given.
	ExitUsageError

	// ExitCompileError indicates a pattern failed to parse or compile.
	ExitCompileError

	// ExitConfigError indicates a config file failed to load.
	ExitConfigError

	// ExitServerError indicates the debug HTTP server failed to start.
	ExitServerError
)

var (
	returnCode = ExitSuccess

	flagPattern     = pflag.StringP("pattern", "p", "", "Compile and minimize the given regex, then exit.")
	flagConfig      = pflag.StringP("config", "c", "", "Load a fsmconfig library from FILE and print every named pattern.")
	flagInteractive = pflag.BoolP("interactive", "i", false, "Start a REPL for building and transforming an automaton by hand.")
	flagServe       = pflag.StringP("serve", "s", "", "Start the debug HTTP server on ADDRESS.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	modesGiven := 0
	for _, given := range []bool{*flagPattern != "", *flagConfig != "", *flagInteractive, *flagServe != ""} {
		if given {
			modesGiven++
		}
	}
	if modesGiven != 1 {
		fmt.Fprintln(os.Stderr, "Exactly one of -p, -c, -i, or -s must be given.\nDo -h for help.")
		returnCode = ExitUsageError
		return
	}

	switch {
	case *flagPattern != "":
		runPattern(*flagPattern)
	case *flagConfig != "":
		runConfig(*flagConfig)
	case *flagInteractive:
		runREPL()
	case *flagServe != "":
		runServe(*flagServe)
	}
}

func runPattern(pattern string) {
	a, err := thompson.MinRegex(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitCompileError
		return
	}
	fmt.Print(inspect.Sprint(a))
}

func runConfig(path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitConfigError
		return
	}
	defer f.Close()

	lib, err := fsmconfig.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitConfigError
		return
	}

	names := make([]string, 0, len(lib.Patterns))
	for name := range lib.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("=== %s ===\n", name)
		fmt.Print(inspect.Sprint(lib.Patterns[name]))
	}
}

func runServe(addr string) {
	srv := fsmhttp.New()
	fmt.Printf("Listening on %s (prefix %s)...\n", addr, fsmhttp.PathPrefix)
	if err := http.ListenAndServe(addr, srv.Routes()); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitServerError
	}
}

