// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"math"

	"cogentcore.org/core/math32/minmax"

	"github.com/lanl/cinema-components/dataset"
)

// Scale maps a dimension's data values into rendered coordinates.
// Views supply one per rendered dimension; brush extents are expressed
// in the resulting coordinate space, not in data units.
type Scale interface {
	// Pos returns the rendered coordinate of the given value, and false
	// if the value has no position on this scale (missing, NaN on a
	// numeric scale, or an unknown category).
	Pos(v dataset.Value) (float32, bool)
}

// Linear maps a numeric domain linearly onto a rendered span.
type Linear struct {
	// Domain is the data range, normally the dimension's Range.
	Domain minmax.F64

	// Span is the rendered coordinate range of the axis.
	Span minmax.F32
}

// NewLinear returns a linear scale from the dimension's domain onto the
// rendered span [lo, hi].
func NewLinear(dm *dataset.Dimension, lo, hi float32) *Linear {
	return &Linear{Domain: dm.Range, Span: minmax.F32{Min: lo, Max: hi}}
}

// Pos maps the value's number onto the span. A degenerate domain maps
// everything to the low end of the span.
func (sc *Linear) Pos(v dataset.Value) (float32, bool) {
	if v.Missing || math.IsNaN(v.Num) {
		return 0, false
	}
	return sc.Span.ProjValue(float32(sc.Domain.NormValue(v.Num))), true
}

// Point assigns evenly spaced positions on a rendered span to the
// distinct values of a categorical dimension, in first-seen order.
type Point struct {
	// Span is the rendered coordinate range of the axis.
	Span minmax.F32

	slots map[string]int
	n     int
}

// NewPoint returns a point scale over the dimension's distinct categories
// onto the rendered span [lo, hi].
func NewPoint(dm *dataset.Dimension, lo, hi float32) *Point {
	cats := dm.Categories()
	slots := make(map[string]int, len(cats))
	for i, c := range cats {
		slots[c] = i
	}
	return &Point{Span: minmax.F32{Min: lo, Max: hi}, slots: slots, n: len(cats)}
}

// Pos returns the slot position of the value's category. A single
// category sits at the midpoint of the span.
func (sc *Point) Pos(v dataset.Value) (float32, bool) {
	if v.Missing {
		return 0, false
	}
	i, ok := sc.slots[v.Text]
	if !ok {
		return 0, false
	}
	if sc.n < 2 {
		return sc.Span.Midpoint(), true
	}
	return sc.Span.ProjValue(float32(i) / float32(sc.n-1)), true
}

// NewScale returns the natural scale for the dimension: a point scale
// for categorical dimensions, linear otherwise.
func NewScale(dm *dataset.Dimension, lo, hi float32) Scale {
	if dm.Type == dataset.Categorical {
		return NewPoint(dm, lo, hi)
	}
	return NewLinear(dm, lo, hi)
}
