// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanl/cinema-components/dataset"
)

const testCSV = "phi,theta,color\n0,0,red\n5,10,red\n10,20,blue\n"

// testEngine returns an engine over testCSV with every axis scaled onto
// [0, 100]: phi maps 0/5/10 to 0/50/100, theta maps 0/10/20 likewise,
// and color maps red/blue to 0/100.
func testEngine(t *testing.T) *Engine {
	t.Helper()
	ds, err := dataset.ParseText(testCSV)
	require.NoError(t, err)
	e := New(ds)
	for _, dim := range ds.DimNames() {
		e.SetScale(dim, NewScale(ds.Dim(dim), 0, 100))
	}
	return e
}

func TestNoBrushSelectsAll(t *testing.T) {
	e := testEngine(t)
	assert.Equal(t, []int{0, 1, 2}, e.Selection())
}

func TestBrushNarrows(t *testing.T) {
	e := testEngine(t)
	e.SetExtent("phi", 40, 100)
	assert.Equal(t, []int{1, 2}, e.Selection())

	// conjunction: a second brush can only narrow
	e.SetExtent("theta", 0, 60)
	assert.Equal(t, []int{1}, e.Selection())

	// inclusive bounds
	e.SetExtent("phi", 50, 100)
	assert.Equal(t, []int{1}, e.Selection())

	e.ClearExtent("theta")
	assert.Equal(t, []int{1, 2}, e.Selection())
	e.ClearAll()
	assert.Equal(t, []int{0, 1, 2}, e.Selection())
}

func TestBrushExcludesAll(t *testing.T) {
	e := testEngine(t)
	e.SetExtent("phi", 101, 200)
	assert.Empty(t, e.Selection())
}

func TestDegenerateExtentClears(t *testing.T) {
	e := testEngine(t)
	e.SetExtent("phi", 40, 100)
	require.Equal(t, []int{1, 2}, e.Selection())
	e.SetExtent("phi", 30, 30) // lo == hi means no constraint
	_, ok := e.Extent("phi")
	assert.False(t, ok)
	assert.Equal(t, []int{0, 1, 2}, e.Selection())
}

func TestInvertedExtent(t *testing.T) {
	e := testEngine(t)
	e.SetExtent("phi", 100, 40) // brushed upward
	assert.Equal(t, []int{1, 2}, e.Selection())
}

func TestCategoricalBrush(t *testing.T) {
	e := testEngine(t)
	e.SetExtent("color", 50, 100)
	assert.Equal(t, []int{2}, e.Selection())
}

func TestSelectionChangedEvents(t *testing.T) {
	e := testEngine(t)
	var fired [][]int
	e.SelectionChanged.Listen(func(sel []int) { fired = append(fired, sel) })

	e.SetExtent("phi", 40, 100)
	require.Len(t, fired, 1)
	assert.Equal(t, []int{1, 2}, fired[0])

	// same resulting selection: no event
	e.SetExtent("phi", 45, 100)
	assert.Len(t, fired, 1)
}

func TestSelectionInRange(t *testing.T) {
	e := testEngine(t)
	e.SetExtent("phi", 0, 60)
	for _, row := range e.Selection() {
		assert.NoError(t, e.Data().IsValidRow(row))
	}
}

func TestTransientSuppression(t *testing.T) {
	e := testEngine(t)
	var events int
	e.SelectionChanged.Listen(func([]int) { events++ })

	e.BeginTransient()
	e.SetExtent("phi", 40, 100)
	e.SetExtent("theta", 0, 60)
	assert.Equal(t, 0, events) // suppressed
	e.EndTransient()
	assert.Equal(t, 1, events) // forced once
	assert.Equal(t, []int{1}, e.Selection())
}

func TestRescale(t *testing.T) {
	e := testEngine(t)
	e.SetExtent("phi", 40, 100)
	var nev int
	e.SelectionChanged.Listen(func([]int) { nev++ })

	// the view doubled in size: rescale brushes proportionally
	for _, dim := range e.Order() {
		e.SetScale(dim, NewScale(e.Data().Dim(dim), 0, 200))
	}
	e.Rescale(func(dim string, ext Extent) Extent {
		return Extent{Lo: ext.Lo * 2, Hi: ext.Hi * 2}
	})
	ext, ok := e.Extent("phi")
	require.True(t, ok)
	assert.Equal(t, Extent{Lo: 80, Hi: 200}, ext)
	assert.Equal(t, []int{1, 2}, e.Selection())
	// one event from rescaling phi's axis, one forced at EndTransient
	assert.Equal(t, 2, nev)
}

func TestSelectRows(t *testing.T) {
	e := testEngine(t)
	e.SelectRows([]int{0, 1}, 5)
	// phi span [0-5, 50+5], theta likewise, color covers red only
	assert.Equal(t, []int{0, 1}, e.Selection())

	// lossy approximation: covering rows 0 and 2 sweeps row 1 along
	e.SelectRows([]int{0, 2}, 5)
	assert.Equal(t, []int{0, 1, 2}, e.Selection())
}

func TestMouseOverDedupe(t *testing.T) {
	e := testEngine(t)
	var fired []int
	e.MouseOverItem.Listen(func(row int) { fired = append(fired, row) })
	e.SetMouseOver(2)
	e.SetMouseOver(2)
	e.SetMouseOver(-1)
	assert.Equal(t, []int{2, -1}, fired)
	assert.Equal(t, -1, e.MouseOver())
}
