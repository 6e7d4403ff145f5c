// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/trim21/errgo"

	"dsa/internal/pkg/dfs"
)

type graphFile struct {
	Edges map[string][]string `toml:"edges"`
}

func loadGraph(path string) (dfs.Graph[string], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errgo.Wrap(err, "failed to read graph file")
	}

	var f graphFile
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, errgo.Wrap(err, "failed to parse graph file")
	}

	log.Debug().Str("path", path).Int("vertices", len(f.Edges)).Msg("graph loaded")

	return f.Edges, nil
}

func (a *App) dfs(args []string) error {
	g, err := loadGraph(args[0])
	if err != nil {
		return err
	}

	start := args[1]
	if _, ok := g[start]; !ok {
		return fmt.Errorf("%w: start vertex %q is not in the graph", ErrUsage, start)
	}

	order := dfs.Order(g, start, dfs.WithCapacity(a.Config.Stack.InitialCapacity))

	if a.JSON {
		return a.printJSON(order)
	}

	a.println(order...)

	return nil
}
