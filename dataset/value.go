// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/lanl/cinema-components/dsv"
)

// Value is one cell of a row: a raw string plus its parsed numeric form,
// or missing. Num is NaN both for the literal "NaN" and for text that does
// not parse as a number, so on numeric dimensions the two behave as the
// same equivalence class.
type Value struct {
	// Text is the raw string form of the value. Meaningless if Missing.
	Text string

	// Num is the parsed numeric form; NaN if Text is not numeric or Missing.
	Num float64

	// Missing is true when the source cell was absent.
	Missing bool
}

func valueFromCell(c dsv.Cell) Value {
	if c.Missing {
		return Value{Num: math.NaN(), Missing: true}
	}
	return Value{Text: c.Text, Num: parseNum(c.Text)}
}

// parseNum parses text as a float64, returning NaN for anything that does
// not parse. ParseFloat accepts "NaN" and "Inf" in any case, matching the
// case-insensitive NaN literal rule.
func parseNum(text string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// IsNaN reports whether the value is present but has no usable number:
// the NaN literal, or non-numeric text read through a numeric dimension.
func (v Value) IsNaN() bool {
	return !v.Missing && math.IsNaN(v.Num)
}

// Num returns a query value for a numeric dimension. NaN is allowed and
// matches only NaN row values.
func Num(f float64) Value {
	return Value{Text: strconv.FormatFloat(f, 'g', -1, 64), Num: f}
}

// Str returns a query value for a categorical dimension.
func Str(s string) Value {
	return Value{Text: s, Num: parseNum(s)}
}

// None returns a missing query value, matching only missing row values.
func None() Value {
	return Value{Num: math.NaN(), Missing: true}
}
