// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/trim21/errgo"

	"dsa/internal/pkg/heap"
	"dsa/internal/pkg/null"
)

func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, errgo.Wrap(err, fmt.Sprintf("%q is not an integer", s))
		}

		values = append(values, v)
	}

	return values, nil
}

type heapSortOutput struct {
	Max    null.Null[int] `json:"max"`
	Sorted []int          `json:"sorted"`
}

// slotRow is one occupied heap slot with its neighbours, empty neighbours are null.
type slotRow struct {
	Index  int            `json:"index"`
	Value  int            `json:"value"`
	Parent null.Null[int] `json:"parent"`
	Left   null.Null[int] `json:"left"`
	Right  null.Null[int] `json:"right"`
}

func (a *App) buildHeap(args []string) (*heap.Heap[int], error) {
	values, err := parseInts(args)
	if err != nil {
		return nil, err
	}

	h := heap.New[int](a.Config.Heap.InitialCapacity)
	for _, v := range values {
		h.Insert(v)
	}

	log.Debug().Msgf("heap built with %s values, capacity %s",
		humanize.Comma(int64(h.Len())), humanize.Comma(int64(h.Cap())))

	return h, nil
}

func (a *App) heapSort(args []string) error {
	h, err := a.buildHeap(args)
	if err != nil {
		return err
	}

	root := h.Peek()

	sorted := make([]int, 0, h.Len())
	for {
		v, ok := h.DeleteRoot().Get()
		if !ok {
			break
		}

		sorted = append(sorted, v)
	}

	if a.JSON {
		return a.printJSON(heapSortOutput{Max: root, Sorted: sorted})
	}

	a.println(lo.Map(sorted, func(v int, _ int) string {
		return strconv.Itoa(v)
	})...)

	return nil
}

func (a *App) heapDump(args []string) error {
	h, err := a.buildHeap(args)
	if err != nil {
		return err
	}

	rows := make([]slotRow, 0, h.Len())
	for i := 1; i <= h.Len(); i++ {
		rows = append(rows, slotRow{
			Index:  i,
			Value:  h.At(i).Value,
			Parent: h.At(i / 2),
			Left:   h.At(2 * i),
			Right:  h.At(2*i + 1),
		})
	}

	if a.JSON {
		return a.printJSON(rows)
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"index", "value", "parent", "left", "right"})

	for _, r := range rows {
		t.AppendRow(table.Row{r.Index, r.Value, slot(r.Parent), slot(r.Left), slot(r.Right)})
	}

	_, _ = io.WriteString(a.Stdout, t.Render())
	_, _ = fmt.Fprintln(a.Stdout)

	return nil
}

func slot(v null.Null[int]) string {
	if !v.Set {
		return "-"
	}

	return strconv.Itoa(v.Value)
}
