// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"fmt"
	"slices"
)

// Order returns a snapshot of the current rendered dimension order.
func (e *Engine) Order() []string {
	return slices.Clone(e.order)
}

// SetAxisPositions records the settled rendered coordinate of each axis,
// as placed by the view's discrete scale. Positions are the reference
// against which a dragged axis is compared.
func (e *Engine) SetAxisPositions(pos map[string]float32) {
	for dim, p := range pos {
		e.axisPos[dim] = p
	}
}

// SetAxisPosition records the settled rendered coordinate of one axis.
func (e *Engine) SetAxisPosition(dim string, p float32) {
	e.axisPos[dim] = p
}

// AddAxis adds a dimension to the rendered order with the given scale,
// recomputes the selection, and fires AxisOrderChanged.
func (e *Engine) AddAxis(dim string, sc Scale) error {
	if e.data.Dim(dim) == nil {
		return fmt.Errorf("selection.Engine.AddAxis: unknown dimension %q", dim)
	}
	if slices.Contains(e.order, dim) {
		return fmt.Errorf("selection.Engine.AddAxis: dimension %q is already rendered", dim)
	}
	e.order = append(e.order, dim)
	e.scales[dim] = sc
	e.AxisOrderChanged.Emit(e.Order())
	e.recompute()
	return nil
}

// RemoveAxis removes a dimension from the rendered order, dropping its
// scale and any brush on it, recomputes, and fires AxisOrderChanged.
func (e *Engine) RemoveAxis(dim string) {
	i := slices.Index(e.order, dim)
	if i < 0 {
		return
	}
	e.order = slices.Delete(e.order, i, i+1)
	delete(e.scales, dim)
	delete(e.extents, dim)
	delete(e.axisPos, dim)
	e.AxisOrderChanged.Emit(e.Order())
	e.recompute()
}

// StartDrag begins an interactive drag of the given axis. While the
// drag is live, the axis's effective position is the pointer coordinate
// given to [Engine.DragTo] rather than its settled position.
func (e *Engine) StartDrag(dim string) {
	if !slices.Contains(e.order, dim) {
		return
	}
	e.dragging = true
	e.dragDim = dim
}

// DragTo updates the dragged axis's provisional position and re-sorts
// the dimension order by current effective position. AxisOrderChanged
// fires only when the movement actually changes the permutation, not on
// every pointer tick.
func (e *Engine) DragTo(p float32) {
	if !e.dragging {
		return
	}
	pos := make(map[string]float32, len(e.order))
	for i, dim := range e.order {
		sp, ok := e.axisPos[dim]
		if !ok {
			sp = float32(i)
		}
		if dim == e.dragDim {
			sp = p
		}
		pos[dim] = sp
	}
	next := slices.Clone(e.order)
	slices.SortStableFunc(next, func(a, b string) int {
		switch {
		case pos[a] < pos[b]:
			return -1
		case pos[a] > pos[b]:
			return 1
		}
		return 0
	})
	if slices.Equal(next, e.order) {
		return
	}
	e.order = next
	e.AxisOrderChanged.Emit(e.Order())
}

// EndDrag finishes the drag; the axis snaps back onto the view's
// discrete scale, whose new settled positions the view reports via
// [Engine.SetAxisPositions].
func (e *Engine) EndDrag() {
	e.dragging = false
	e.dragDim = ""
}

// Dragging returns the axis currently being dragged, "" if none.
func (e *Engine) Dragging() string {
	if !e.dragging {
		return ""
	}
	return e.dragDim
}
