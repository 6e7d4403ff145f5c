// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package version

import (
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatBuildInfo renders info like `go version -m`, one aligned row per
// go version, dependency, replacement and build setting.
func FormatBuildInfo(info *debug.BuildInfo) string {
	t := table.NewWriter()
	t.Style().Options = table.OptionsNoBordersAndSeparators

	t.AppendRow(table.Row{"go", info.GoVersion})

	for _, d := range info.Deps {
		t.AppendRow(table.Row{"dep", d.Path, d.Version, d.Sum})
		if d.Replace != nil {
			t.AppendRow(table.Row{"=>", d.Replace.Path, d.Replace.Version, d.Replace.Sum})
		}
	}

	for _, s := range info.Settings {
		t.AppendRow(table.Row{"build", quote(s.Key, true) + "=" + quote(s.Value, false)})
	}

	return t.Render() + "\n"
}

// quote quotes a build setting the way `go version -m` does.
// Keys additionally need quoting when empty or containing '='.
func quote(s string, key bool) string {
	if strings.ContainsAny(s, " \t\r\n\"`") || (key && (s == "" || strings.Contains(s, "="))) {
		return strconv.Quote(s)
	}

	return s
}
