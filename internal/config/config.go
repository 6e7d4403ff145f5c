// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/trim21/errgo"

	"dsa/internal/pkg/dfs"
	"dsa/internal/pkg/heap"
)

// Capacity is the initial sizing of one structure.
type Capacity struct {
	InitialCapacity int `toml:"initial-capacity" validate:"min=1"`
}

type Config struct {
	Heap  Capacity `toml:"heap"`
	Stack Capacity `toml:"stack"`
}

func Default() Config {
	return Config{
		Heap:  Capacity{InitialCapacity: heap.DefaultCapacity},
		Stack: Capacity{InitialCapacity: dfs.DefaultCapacity},
	}
}

var validate = validator.New()

// LoadFromFile reads a TOML config. A missing file is not an error, defaults are returned.
// Keys absent from the file keep their default value.
func LoadFromFile(path string) (Config, error) {
	var cfg = Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return Config{}, errgo.Wrap(err, "failed to read config file")
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errgo.Wrap(err, "failed to parse config file")
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, errgo.Wrap(err, "invalid config")
	}

	return cfg, nil
}
