// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset holds the rows of a cinema parameter study as typed,
// domain-bounded dimensions (columns), and provides the normalized
// similarity query used by linked views. A Dataset is immutable once
// loaded and may be read freely by any number of views.
package dataset

import (
	"fmt"
	"math"
	"strings"

	"cogentcore.org/core/base/keylist"
	"cogentcore.org/core/base/metadata"
	"cogentcore.org/core/math32/minmax"

	"github.com/lanl/cinema-components/dsv"
)

// Type is the inferred data type of a [Dimension].
type Type int32

const (
	// Categorical dimensions hold arbitrary strings.
	Categorical Type = iota

	// Integer dimensions hold whole numbers.
	Integer

	// Float dimensions hold real numbers, including NaN.
	Float
)

func (t Type) String() string {
	switch t {
	case Categorical:
		return "Categorical"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	}
	return fmt.Sprintf("Type(%d)", int32(t))
}

// IsNumeric returns true for Integer and Float.
func (t Type) IsNumeric() bool {
	return t == Integer || t == Float
}

// DefaultFilePrefix is the reserved column-name prefix designating
// file-reference columns, which are excluded from numeric scaling.
const DefaultFilePrefix = "FILE"

// Dimension is one named column: its type, domain and per-row values.
// Computed once at load time and immutable thereafter.
type Dimension struct {
	// Name is the column name from the header, unique within a dataset.
	Name string

	// Type is the inferred type, from the first present value in the column.
	Type Type

	// Range is the [min, max] domain over non-missing, non-NaN values.
	// Only meaningful for numeric types; [0, 0] if no such value exists.
	Range minmax.F64

	// Values holds one value per row, in row order. For categorical
	// dimensions this is also the domain: the raw observed values, not
	// deduplicated. Consumers needing unique categories deduplicate
	// themselves (see [Dimension.Categories]).
	Values []Value
}

// Value returns the value at the given row.
func (dm *Dimension) Value(row int) Value {
	return dm.Values[row]
}

// Categories returns the distinct present values in first-seen order.
func (dm *Dimension) Categories() []string {
	seen := map[string]bool{}
	var cats []string
	for _, v := range dm.Values {
		if v.Missing || seen[v.Text] {
			continue
		}
		seen[v.Text] = true
		cats = append(cats, v.Text)
	}
	return cats
}

// Norm maps a number into [0, 1] over the dimension's range,
// returning 0 for a degenerate (zero-width) range.
func (dm *Dimension) Norm(f float64) float64 {
	return (f - dm.Range.Min) * dm.Range.Scale()
}

// Dataset is an ordered list of typed dimensions over a fixed set of rows.
// Rows are identified by their zero-based position, the stable handle used
// everywhere selections are expressed.
type Dataset struct {
	// Dims is the ordered list of dimensions, keyed by name.
	Dims keylist.List[string, *Dimension]

	// Meta is misc metadata for the dataset, e.g. name and source path.
	Meta metadata.Data

	// FilePrefix is the reserved column-name prefix for file-reference
	// columns (case-insensitive). Defaults to [DefaultFilePrefix].
	FilePrefix string

	rows int
}

// ParseText parses comma-separated text into a validated Dataset.
func ParseText(text string) (*Dataset, error) {
	cells, err := dsv.Parse(text)
	if err != nil {
		return nil, err
	}
	return New(cells)
}

// New builds a Dataset from parsed cells: the first line is the header,
// the rest are data rows. It validates shape (at least 2 lines and 2
// columns, fully populated header, uniform row width), then infers each
// dimension's type and computes its domain.
func New(cells [][]dsv.Cell) (*Dataset, error) {
	if len(cells) < 2 {
		return nil, fmt.Errorf("dataset.New: table must have at least 2 lines (header + 1 row), got %d", len(cells))
	}
	header := cells[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("dataset.New: table must have at least 2 columns, got %d", len(header))
	}
	for j, h := range header {
		if h.Missing {
			return nil, fmt.Errorf("dataset.New: missing dimension name in header column %d", j)
		}
	}
	for i, row := range cells[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("dataset.New: line %d has %d fields, expected %d", i+2, len(row), len(header))
		}
	}
	ds := &Dataset{FilePrefix: DefaultFilePrefix, rows: len(cells) - 1}
	for j, h := range header {
		dm := &Dimension{Name: h.Text, Values: make([]Value, ds.rows)}
		for i := 0; i < ds.rows; i++ {
			dm.Values[i] = valueFromCell(cells[i+1][j])
		}
		inferType(dm)
		computeRange(dm)
		if err := ds.Dims.Add(h.Text, dm); err != nil {
			return nil, fmt.Errorf("dataset.New: duplicate dimension name %q in header column %d", h.Text, j)
		}
	}
	return ds, nil
}

// inferType applies the first-present-sample rule: the type of the first
// non-missing value decides the column type. A column whose first present
// value looks integral is typed Integer even if later values are
// fractional; this single-sample policy is load-bearing for compatibility
// and must not be replaced with majority voting.
func inferType(dm *Dimension) {
	for _, v := range dm.Values {
		if v.Missing {
			continue
		}
		f := v.Num
		switch {
		case math.IsNaN(f):
			if strings.EqualFold(strings.TrimSpace(v.Text), "nan") {
				dm.Type = Float
			} else {
				dm.Type = Categorical
			}
		case f == math.Trunc(f) && !math.IsInf(f, 0):
			dm.Type = Integer
		default:
			dm.Type = Float
		}
		return
	}
	dm.Type = Categorical // all missing
}

// computeRange scans for the first usable number and fits all later
// usable numbers into the range. A numeric column with no usable number
// gets the [0, 0] domain.
func computeRange(dm *Dimension) {
	if !dm.Type.IsNumeric() {
		return
	}
	first := true
	for _, v := range dm.Values {
		if v.Missing || math.IsNaN(v.Num) {
			continue
		}
		if first {
			dm.Range.Set(v.Num, v.Num)
			first = false
			continue
		}
		dm.Range.FitValInRange(v.Num)
	}
	if first {
		dm.Range.Set(0, 0)
	}
}

// Rows returns the number of data rows.
func (ds *Dataset) Rows() int { return ds.rows }

// NumDims returns the number of dimensions.
func (ds *Dataset) NumDims() int { return ds.Dims.Len() }

// DimNames returns the dimension names in column order.
func (ds *Dataset) DimNames() []string {
	names := make([]string, len(ds.Dims.Keys))
	copy(names, ds.Dims.Keys)
	return names
}

// Dim returns the dimension with the given name, nil if not found.
func (ds *Dataset) Dim(name string) *Dimension {
	return ds.Dims.At(name)
}

// Value returns the value of the named dimension at the given row.
// Returns a missing value for an unknown dimension.
func (ds *Dataset) Value(name string, row int) Value {
	dm := ds.Dims.At(name)
	if dm == nil {
		return None()
	}
	return dm.Values[row]
}

// IsValidRow returns an error if the row index is out of range.
func (ds *Dataset) IsValidRow(row int) error {
	if row < 0 || row >= ds.rows {
		return fmt.Errorf("dataset.Dataset.IsValidRow: row %d is out of valid range [0..%d]", row, ds.rows)
	}
	return nil
}

// IsCategorical reports whether the named dimension is categorical.
// An unknown dimension reports false.
func (ds *Dataset) IsCategorical(name string) bool {
	dm := ds.Dims.At(name)
	return dm != nil && dm.Type == Categorical
}

// IsFileReference reports whether the named column is designated as a
// file reference by the reserved prefix convention. File-reference
// columns are excluded from numeric scaling by views.
func (ds *Dataset) IsFileReference(name string) bool {
	prefix := ds.FilePrefix
	if prefix == "" {
		prefix = DefaultFilePrefix
	}
	return len(name) >= len(prefix) && strings.EqualFold(name[:len(prefix)], prefix)
}
