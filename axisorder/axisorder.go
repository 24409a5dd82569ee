// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axisorder parses the optional secondary table giving preferred
// per-category orderings of a dataset's dimensions. A malformed table is
// not fatal to the overall load: callers log the error and proceed
// without axis-ordering data.
package axisorder

import (
	"fmt"
	"math"
	"slices"

	"github.com/lanl/cinema-components/dataset"
	"github.com/lanl/cinema-components/dsv"
)

// Variant is one named ordering of a subset of dimensions within a
// category, ranked ascending by the priority values of its source row.
type Variant struct {
	// Label is the value column of the source row.
	Label string

	// Order lists the dimension names, best first. Dimensions with a
	// missing priority sort last, keeping their original column order.
	Order []string
}

// Store holds the parsed orderings, keyed by category.
type Store struct {
	categories []string // first-seen order
	variants   map[string][]Variant
}

// Parse parses an axis-order table with header [category, value, dim_1...]
// and data rows [category, label, priority_1...]. It validates: at least
// 2 lines, uniform row width, every dim name known to the dataset, and
// every priority numeric or missing.
func Parse(text string, ds *dataset.Dataset) (*Store, error) {
	cells, err := dsv.Parse(text)
	if err != nil {
		return nil, err
	}
	if len(cells) < 2 {
		return nil, fmt.Errorf("axisorder.Parse: table must have at least 2 lines, got %d", len(cells))
	}
	header := cells[0]
	if len(header) < 3 {
		return nil, fmt.Errorf("axisorder.Parse: header must be [category, value, dim_1...], got %d columns", len(header))
	}
	dims := make([]string, len(header)-2)
	for j, h := range header[2:] {
		if h.Missing {
			return nil, fmt.Errorf("axisorder.Parse: missing dimension name in header column %d", j+2)
		}
		if ds.Dim(h.Text) == nil {
			return nil, fmt.Errorf("axisorder.Parse: unknown dimension %q in header column %d", h.Text, j+2)
		}
		dims[j] = h.Text
	}
	st := &Store{variants: map[string][]Variant{}}
	for i, row := range cells[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("axisorder.Parse: line %d has %d fields, expected %d", i+2, len(row), len(header))
		}
		prios := make([]float64, len(dims))
		for j, c := range row[2:] {
			if c.Missing {
				prios[j] = math.Inf(1) // sorts last, stably
				continue
			}
			p := dataset.Str(c.Text)
			if p.IsNaN() {
				return nil, fmt.Errorf("axisorder.Parse: line %d column %d: priority %q is not numeric", i+2, j+2, c.Text)
			}
			prios[j] = p.Num
		}
		cat := row[0].Text
		if _, ok := st.variants[cat]; !ok {
			st.categories = append(st.categories, cat)
		}
		st.variants[cat] = append(st.variants[cat], Variant{
			Label: row[1].Text,
			Order: orderDims(dims, prios),
		})
	}
	return st, nil
}

// orderDims sorts the dimension names ascending by priority; the stable
// sort keeps ties and missing priorities in original column order.
func orderDims(dims []string, prios []float64) []string {
	idx := make([]int, len(dims))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		switch {
		case prios[a] < prios[b]:
			return -1
		case prios[a] > prios[b]:
			return 1
		}
		return 0
	})
	out := make([]string, len(dims))
	for i, j := range idx {
		out[i] = dims[j]
	}
	return out
}

// Categories returns the category keys in first-seen order.
func (st *Store) Categories() []string {
	return slices.Clone(st.categories)
}

// Orderings returns the ordering variants for the given category,
// nil if the category is unknown.
func (st *Store) Orderings(category string) []Variant {
	return st.variants[category]
}
