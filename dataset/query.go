// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import "math"

// Query is a partial row used for similarity search: a value per queried
// dimension name. It need not match any existing row, and dimensions
// absent from the query contribute nothing to the distance.
type Query map[string]Value

// GetSimilar returns the indices of all rows whose distance to the query
// is at most threshold, in row order. The distance is a normalized
// Manhattan distance: the sum over queried dimensions of a per-dimension
// term in [0, 1], with missing and NaN each forming their own equivalence
// class (see [Dataset.Distance]).
func (ds *Dataset) GetSimilar(q Query, threshold float64) []int {
	var rows []int
	for row := 0; row < ds.rows; row++ {
		if ds.Distance(q, row) <= threshold {
			rows = append(rows, row)
		}
	}
	return rows
}

// Distance returns the similarity distance between the query and the
// given row. Per queried dimension:
//   - categorical: 0 on equal values, else 1;
//   - numeric, query NaN: 0 if the row value is also NaN, else 1;
//   - numeric, query missing: 0 if the row value is also missing, else 1;
//   - numeric, query defined but row value missing or NaN: 1;
//   - numeric, both defined: |norm(query) - norm(row)| over the
//     dimension's domain, where a degenerate domain normalizes to 0.
func (ds *Dataset) Distance(q Query, row int) float64 {
	d := 0.0
	for _, dm := range ds.Dims.Values {
		qv, ok := q[dm.Name]
		if !ok {
			continue
		}
		rv := dm.Values[row]
		if dm.Type == Categorical {
			if !sameCategory(qv, rv) {
				d++
			}
			continue
		}
		switch {
		case qv.Missing:
			if !rv.Missing {
				d++
			}
		case math.IsNaN(qv.Num):
			if rv.Missing || !math.IsNaN(rv.Num) {
				d++
			}
		case rv.Missing || math.IsNaN(rv.Num):
			d++
		default:
			d += math.Abs(dm.Norm(qv.Num) - dm.Norm(rv.Num))
		}
	}
	return d
}

func sameCategory(a, b Value) bool {
	if a.Missing || b.Missing {
		return a.Missing == b.Missing
	}
	return a.Text == b.Text
}
