// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pick encodes item indices as RGB colors so a renderer can
// paint an invisible index buffer and identify which item occupies a
// pixel. Index -1 is reserved for "no item" and encodes to black;
// indices above [MaxIndex] saturate to white and are not distinguishable,
// an explicit limit of ~16.7M addressable items.
package pick

import (
	"image"
	"image/color"
	"image/draw"
)

// MaxIndex is the largest encodable item index, 256^3 - 2.
const MaxIndex = 256*256*256 - 2

// Encode returns the RGB color for an item index. Indices below -1 are
// clamped to -1 (no item, black); indices above MaxIndex saturate to
// white.
func Encode(i int) color.RGBA {
	if i < -1 {
		i = -1
	}
	n := i + 1
	if n > MaxIndex+1 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{
		R: uint8(n & 0xff),
		G: uint8((n >> 8) & 0xff),
		B: uint8((n >> 16) & 0xff),
		A: 255,
	}
}

// Decode returns the item index for an RGB triple: the inverse of
// [Encode] over [-1, MaxIndex].
func Decode(r, g, b uint8) int {
	return int(r) + int(g)<<8 + int(b)<<16 - 1
}

// Buffer is an offscreen index surface: an RGBA image whose pixels hold
// encoded item indices instead of visible colors.
type Buffer struct {
	img *image.RGBA
}

// NewBuffer returns a buffer of the given size with every pixel set to
// no-item.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	b.Fill(-1)
	return b
}

// Image returns the underlying RGBA image, for renderers that paint
// index-encoded marks themselves.
func (b *Buffer) Image() *image.RGBA { return b.img }

// Fill sets every pixel to the encoded index.
func (b *Buffer) Fill(i int) {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(Encode(i)), image.Point{}, draw.Src)
}

// SetIndex paints the encoded index at a pixel. Out-of-bounds pixels
// are ignored.
func (b *Buffer) SetIndex(x, y, i int) {
	if !image.Pt(x, y).In(b.img.Bounds()) {
		return
	}
	b.img.SetRGBA(x, y, Encode(i))
}

// IndexAt decodes the index at a pixel, -1 if out of bounds.
func (b *Buffer) IndexAt(x, y int) int {
	return indexAt(b.img, x, y)
}

// HitTest identifies the item under the pointer; see the package-level
// [HitTest].
func (b *Buffer) HitTest(x, y int) int {
	return HitTest(b.img, x, y)
}

// HitTest samples the 3x3 pixel neighborhood around (x, y) in an
// index-encoded surface and returns the item index only if at least 5
// of the 9 samples decode to the same item, tolerating anti-aliasing
// noise along thin strokes. Ambiguous neighborhoods return -1.
// Out-of-bounds samples count as no-item votes.
func HitTest(img image.Image, x, y int) int {
	counts := map[int]int{}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			counts[indexAt(img, x+dx, y+dy)]++
		}
	}
	for i, n := range counts {
		if i >= 0 && n >= 5 {
			return i
		}
	}
	return -1
}

func indexAt(img image.Image, x, y int) int {
	if !image.Pt(x, y).In(img.Bounds()) {
		return -1
	}
	r, g, b, _ := img.At(x, y).RGBA()
	return Decode(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
