// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package cli implements the dsa sub-commands on top of internal/pkg.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/trim21/errgo"

	"dsa/internal/config"
)

var ErrUnknownCommand = errors.New("unknown command")

// ErrUsage is returned when a command gets the wrong arguments.
var ErrUsage = errors.New("invalid arguments")

const Usage = `usage: dsa [flags] <command> [args...]

commands:
  heap-sort N...           insert numbers into a max-heap and print them in delete-root order
  heap-dump N...           insert numbers into a max-heap and print its slot array
  lookup WORDS [QUERY...]  load a word list into a trie and look up each query (stdin if none)
  complete WORDS PREFIX    print every word of the list that starts with PREFIX
  dfs GRAPH START          print the depth-first visiting order of a TOML graph

with --json every command prints JSON, lookup prints one object per query.
`

type App struct {
	Config config.Config
	Stdin  io.Reader
	Stdout io.Writer
	JSON   bool // print JSON instead of text
}

type command struct {
	run     func(a *App, args []string) error
	minArgs int
	maxArgs int // -1 for unlimited
}

var commands = map[string]command{
	"heap-sort": {run: (*App).heapSort, minArgs: 1, maxArgs: -1},
	"heap-dump": {run: (*App).heapDump, minArgs: 1, maxArgs: -1},
	"lookup":    {run: (*App).lookup, minArgs: 1, maxArgs: -1},
	"complete":  {run: (*App).complete, minArgs: 2, maxArgs: 2},
	"dfs":       {run: (*App).dfs, minArgs: 2, maxArgs: 2},
}

// Run dispatches args[0] to its command.
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", ErrUsage)
	}

	name, args := args[0], args[1:]

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}

	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return fmt.Errorf("%w for %s, see --help", ErrUsage, name)
	}

	return cmd.run(a, args)
}

func (a *App) println(s ...string) {
	_, _ = fmt.Fprintln(a.Stdout, strings.Join(s, " "))
}

// printJSON writes v as a single line of JSON.
func (a *App) printJSON(v any) error {
	if err := json.NewEncoder(a.Stdout).Encode(v); err != nil {
		return errgo.Wrap(err, "failed to encode output")
	}

	return nil
}
