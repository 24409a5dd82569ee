// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection maintains per-dimension brush constraints in rendered
// coordinates and recomputes the set of row indices satisfying all of
// them. The engine owns the brush extents and the derived selection;
// the dataset is referenced read-only and views consume snapshots via
// the engine's event sources.
package selection

import (
	"slices"

	"github.com/lanl/cinema-components/dataset"
	"github.com/lanl/cinema-components/events"
)

// Extent is an active brush constraint on one dimension, in that
// dimension's rendered coordinate space. An extent with Lo == Hi is
// treated as absent (cleared), never as a zero-width selection.
type Extent struct {
	Lo, Hi float32
}

// IsActive reports whether the extent constrains anything.
func (e Extent) IsActive() bool {
	return e.Lo != e.Hi
}

// Contains reports whether the coordinate falls within the extent,
// inclusive on both ends. Lo and Hi may be given in either order.
func (e Extent) Contains(p float32) bool {
	lo, hi := e.Lo, e.Hi
	if lo > hi {
		lo, hi = hi, lo
	}
	return p >= lo && p <= hi
}

// Engine holds the brush-extent map, the current dimension order, and
// the derived selection for one dataset. The selection is never stored
// as a source of truth: it is recomputed synchronously on every brush
// or dimension change, atomically within the mutating call.
type Engine struct {
	// SelectionChanged fires with the new row-index set after each
	// recompute that changes the selection.
	SelectionChanged events.Source[[]int]

	// AxisOrderChanged fires with the new dimension order whenever the
	// rendered order actually changes (not on every pointer tick).
	AxisOrderChanged events.Source[[]string]

	// MouseOverItem fires with the hovered row index, -1 for none,
	// only when the hovered item changes.
	MouseOverItem events.Source[int]

	data      *dataset.Dataset
	scales    map[string]Scale
	extents   map[string]Extent
	order     []string
	axisPos   map[string]float32
	selection []int
	suppress  bool
	mouseOver int

	dragging bool
	dragDim  string
}

// New returns an engine over the given dataset, with all dimensions in
// dataset order, no active brushes, and everything selected.
func New(ds *dataset.Dataset) *Engine {
	e := &Engine{
		data:      ds,
		scales:    map[string]Scale{},
		extents:   map[string]Extent{},
		order:     ds.DimNames(),
		axisPos:   map[string]float32{},
		mouseOver: -1,
	}
	e.selection = e.compute()
	return e
}

// Data returns the engine's dataset.
func (e *Engine) Data() *dataset.Dataset { return e.data }

// SetScale sets the rendered-coordinate scale for a dimension and
// recomputes, since brush membership depends on scaled positions.
func (e *Engine) SetScale(dim string, sc Scale) {
	if e.data.Dim(dim) == nil {
		return
	}
	e.scales[dim] = sc
	e.recompute()
}

// Scale returns the scale for a dimension, nil if not set.
func (e *Engine) Scale(dim string) Scale { return e.scales[dim] }

// SetExtent installs a brush extent on a dimension and recomputes.
// A degenerate extent (lo == hi) clears the brush instead.
func (e *Engine) SetExtent(dim string, lo, hi float32) {
	if e.data.Dim(dim) == nil {
		return
	}
	if lo == hi {
		delete(e.extents, dim)
	} else {
		e.extents[dim] = Extent{Lo: lo, Hi: hi}
	}
	e.recompute()
}

// ClearExtent removes the brush on a dimension and recomputes.
func (e *Engine) ClearExtent(dim string) {
	if _, ok := e.extents[dim]; !ok {
		return
	}
	delete(e.extents, dim)
	e.recompute()
}

// ClearAll removes all brushes, selecting everything again.
func (e *Engine) ClearAll() {
	if len(e.extents) == 0 {
		return
	}
	clear(e.extents)
	e.recompute()
}

// Extent returns the active extent on a dimension, false if none.
func (e *Engine) Extent(dim string) (Extent, bool) {
	ext, ok := e.extents[dim]
	return ext, ok
}

// Selection returns a snapshot of the currently selected row indices,
// in row order.
func (e *Engine) Selection() []int {
	return slices.Clone(e.selection)
}

// BeginTransient suppresses recomputation and notifications during a
// transient operation such as a resize. Mutations made while suppressed
// take effect but do not notify; [Engine.EndTransient] forces one
// recompute when the operation completes.
func (e *Engine) BeginTransient() {
	e.suppress = true
}

// EndTransient re-enables and forces recomputation after a transient
// operation, emitting at most one SelectionChanged.
func (e *Engine) EndTransient() {
	e.suppress = false
	e.recompute()
}

// Rescale applies f to every active extent under transient suppression,
// e.g. to rescale all brushes proportionally on resize. An extent
// returned degenerate is cleared.
func (e *Engine) Rescale(f func(dim string, ext Extent) Extent) {
	e.BeginTransient()
	for dim, ext := range e.extents {
		ne := f(dim, ext)
		if !ne.IsActive() {
			delete(e.extents, dim)
		} else {
			e.extents[dim] = ne
		}
	}
	e.EndTransient()
}

// SelectRows re-expresses an explicit row set as brush extents: per
// rendered dimension, the coordinate span covering exactly those rows'
// positions, padded by pad on each side. This is a lossy hyper-rectangular
// approximation and may over-select rows that are not axis-aligned
// separable from the chosen ones.
func (e *Engine) SelectRows(rows []int, pad float32) {
	e.BeginTransient()
	for _, dim := range e.order {
		sc := e.scales[dim]
		if sc == nil {
			continue
		}
		var lo, hi float32
		found := false
		for _, row := range rows {
			p, ok := sc.Pos(e.data.Value(dim, row))
			if !ok {
				continue
			}
			if !found || p < lo {
				lo = p
			}
			if !found || p > hi {
				hi = p
			}
			found = true
		}
		if !found {
			delete(e.extents, dim)
			continue
		}
		e.SetExtent(dim, lo-pad, hi+pad)
	}
	e.EndTransient()
}

// SetMouseOver records the hovered row index (-1 for none), emitting
// MouseOverItem only when it changes.
func (e *Engine) SetMouseOver(row int) {
	if row == e.mouseOver {
		return
	}
	e.mouseOver = row
	e.MouseOverItem.Emit(row)
}

// MouseOver returns the currently hovered row index, -1 for none.
func (e *Engine) MouseOver() int { return e.mouseOver }

// recompute derives the selection from the current extents and scales,
// emitting SelectionChanged if it differs from the previous selection.
// No-op while suppressed.
func (e *Engine) recompute() {
	if e.suppress {
		return
	}
	sel := e.compute()
	changed := !slices.Equal(sel, e.selection)
	e.selection = sel
	if changed {
		e.SelectionChanged.Emit(slices.Clone(sel))
	}
}

// compute returns the rows satisfying every active extent: a conjunction
// across dimensions, so adding a brush can only narrow the result. With
// no active extents every row is selected. A row whose value has no
// position on a brushed dimension's scale fails that constraint; a
// brushed dimension with no scale yet cannot be evaluated and is skipped.
func (e *Engine) compute() []int {
	n := e.data.Rows()
	sel := make([]int, 0, n)
rows:
	for row := 0; row < n; row++ {
		for dim, ext := range e.extents {
			sc := e.scales[dim]
			if sc == nil {
				continue
			}
			p, ok := sc.Pos(e.data.Value(dim, row))
			if !ok || !ext.Contains(p) {
				continue rows
			}
		}
		sel = append(sel, row)
	}
	return sel
}
