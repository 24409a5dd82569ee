// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	indices := []int{-1, 0, 1, 254, 255, 256, 65535, 65536, 123456, MaxIndex}
	for _, i := range indices {
		c := Encode(i)
		assert.Equal(t, i, Decode(c.R, c.G, c.B), "index %d", i)
	}
}

func TestCodecBytes(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Encode(-1))
	assert.Equal(t, color.RGBA{1, 0, 0, 255}, Encode(0))
	// r is the low byte, b the high byte
	assert.Equal(t, color.RGBA{0, 1, 0, 255}, Encode(255))
	assert.Equal(t, color.RGBA{0, 0, 1, 255}, Encode(65535))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Encode(MaxIndex))
}

func TestCodecSaturation(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	assert.Equal(t, white, Encode(MaxIndex+1))
	assert.Equal(t, white, Encode(MaxIndex+12345))
	// clamped below the reserved no-item index
	assert.Equal(t, Encode(-1), Encode(-7))
}

func TestHitTestMajority(t *testing.T) {
	b := NewBuffer(10, 10)
	// a solid 3x3 block of item 7
	for y := 3; y <= 5; y++ {
		for x := 3; x <= 5; x++ {
			b.SetIndex(x, y, 7)
		}
	}
	assert.Equal(t, 7, b.HitTest(4, 4))

	// a thin one-pixel stroke: only 3 of 9 samples agree
	b2 := NewBuffer(10, 10)
	for x := 3; x <= 5; x++ {
		b2.SetIndex(x, 4, 9)
	}
	assert.Equal(t, -1, b2.HitTest(4, 4))

	// exactly 5 matching samples is enough
	b3 := NewBuffer(10, 10)
	b3.SetIndex(3, 3, 2)
	b3.SetIndex(4, 3, 2)
	b3.SetIndex(5, 3, 2)
	b3.SetIndex(3, 4, 2)
	b3.SetIndex(4, 4, 2)
	assert.Equal(t, 2, b3.HitTest(4, 4))
}

func TestHitTestNoisyNeighborhood(t *testing.T) {
	b := NewBuffer(10, 10)
	// two items split the neighborhood 4 / 5: the majority wins
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			i := 11
			if dx < 0 || (dx == 0 && dy < 0) {
				i = 12
			}
			b.SetIndex(4+dx, 4+dy, i)
		}
	}
	assert.Equal(t, 11, b.HitTest(4, 4))
}

func TestHitTestEdges(t *testing.T) {
	b := NewBuffer(10, 10)
	// background is all no-item
	assert.Equal(t, -1, b.HitTest(4, 4))
	// out of bounds entirely
	assert.Equal(t, -1, b.HitTest(-5, -5))
	// corner: only 4 in-bounds samples, cannot reach a majority of 5
	for y := 0; y <= 1; y++ {
		for x := 0; x <= 1; x++ {
			b.SetIndex(x, y, 3)
		}
	}
	assert.Equal(t, -1, b.HitTest(0, 0))
	assert.Equal(t, -1, b.IndexAt(-1, 0))
	assert.Equal(t, 3, b.IndexAt(1, 1))
}

func TestFill(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Fill(42)
	require.Equal(t, 42, b.IndexAt(0, 0))
	require.Equal(t, 42, b.IndexAt(3, 3))
	assert.Equal(t, 42, b.HitTest(2, 2))
}
