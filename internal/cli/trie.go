// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package cli

import (
	"bufio"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/trim21/errgo"

	"dsa/internal/pkg/trie"
)

var (
	found    = color.New(color.FgGreen).SprintFunc()
	notFound = color.New(color.FgRed).SprintFunc()
)

// loadWords reads one word per line, skipping blank lines.
func loadWords(path string) (*trie.Words, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errgo.Wrap(err, "failed to open word list")
	}
	defer f.Close()

	w := trie.NewWords()

	var n int64
	s := bufio.NewScanner(f)
	for s.Scan() {
		word := strings.TrimSpace(s.Text())
		if word == "" {
			continue
		}

		w.Add(word)
		n++
	}

	if err := s.Err(); err != nil {
		return nil, errgo.Wrap(err, "failed to read word list")
	}

	log.Debug().Str("path", path).Msgf("loaded %s words", humanize.Comma(n))

	return w, nil
}

func (a *App) lookup(args []string) error {
	w, err := loadWords(args[0])
	if err != nil {
		return err
	}

	if len(args) > 1 {
		for _, q := range args[1:] {
			if err := a.printLookup(w, q); err != nil {
				return err
			}
		}

		return nil
	}

	return a.lookupStdin(w)
}

// lookupStdin answers one query per line until EOF or an empty line.
func (a *App) lookupStdin(w *trie.Words) error {
	if a.Stdin == nil {
		return nil
	}

	s := bufio.NewScanner(a.Stdin)
	for s.Scan() {
		q := strings.TrimSpace(s.Text())
		if q == "" {
			return nil
		}

		if err := a.printLookup(w, q); err != nil {
			return err
		}
	}

	if err := s.Err(); err != nil {
		return errgo.Wrap(err, "failed to read queries")
	}

	return nil
}

type lookupResult struct {
	Query string `json:"query"`
	Found bool   `json:"found"`
}

func (a *App) printLookup(w *trie.Words, q string) error {
	ok := w.Has(q)

	if a.JSON {
		return a.printJSON(lookupResult{Query: q, Found: ok})
	}

	if ok {
		a.println(found("FOUND    "), q)
	} else {
		a.println(notFound("NOT FOUND"), q)
	}

	return nil
}

func (a *App) complete(args []string) error {
	w, err := loadWords(args[0])
	if err != nil {
		return err
	}

	words := w.Complete(args[1])

	if a.JSON {
		return a.printJSON(lo.Ternary(words == nil, []string{}, words))
	}

	for _, word := range words {
		a.println(word)
	}

	return nil
}
