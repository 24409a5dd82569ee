// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cdb inspects cinema databases and runs similarity queries
// over them.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/core/cli"

	"github.com/lanl/cinema-components/cdb"
	"github.com/lanl/cinema-components/dataset"
)

// Config is the configuration information for the cdb cli.
type Config struct {

	// Database is the path to the cinema database directory,
	// containing data.csv and optionally axis_order.csv.
	Database string `posarg:"0"`

	// Query is a comma-separated list of dimension=value pairs
	// forming the query point for the similar command. An empty
	// value queries for a missing cell.
	Query string `cmd:"similar" flag:"q,query"`

	// Threshold is the maximum similarity distance for the similar
	// command.
	Threshold float64 `cmd:"similar" flag:"t,threshold" default:"1"`
}

func main() {
	opts := cli.DefaultOptions("cdb", "Inspect cinema databases and run similarity queries over them.")
	cli.Run(opts, &Config{}, Info, Similar)
}

// Info prints the dimensions of the database: name, inferred type,
// domain, and whether the column is a file reference.
func Info(c *Config) error { //cli:cmd -root
	db, err := cdb.LoadDir(c.Database)
	if err != nil {
		return err
	}
	ds := db.Data
	fmt.Printf("%s: %d rows, %d dimensions\n", c.Database, ds.Rows(), ds.NumDims())
	for _, name := range ds.DimNames() {
		dm := ds.Dim(name)
		switch {
		case ds.IsFileReference(name):
			fmt.Printf("  %-20s %-12s file reference\n", name, dm.Type)
		case dm.Type.IsNumeric():
			fmt.Printf("  %-20s %-12s [%g, %g]\n", name, dm.Type, dm.Range.Min, dm.Range.Max)
		default:
			fmt.Printf("  %-20s %-12s %d categories\n", name, dm.Type, len(dm.Categories()))
		}
	}
	if db.HasAxisOrdering {
		fmt.Printf("  axis orderings: %s\n", strings.Join(db.AxisOrder.Categories(), ", "))
	}
	return nil
}

// Similar prints the indices of rows within the distance threshold of
// the query point.
func Similar(c *Config) error {
	db, err := cdb.LoadDir(c.Database)
	if err != nil {
		return err
	}
	q, err := parseQuery(db.Data, c.Query)
	if err != nil {
		return err
	}
	rows := db.Data.GetSimilar(q, c.Threshold)
	if len(rows) == 0 {
		fmt.Println("no rows within threshold")
		return nil
	}
	for _, row := range rows {
		fmt.Printf("row %d (distance %.4g)\n", row, db.Data.Distance(q, row))
	}
	return nil
}

// parseQuery builds a query point from dimension=value pairs, using the
// dataset's types: categorical dimensions take the value verbatim,
// numeric ones parse it, and an empty value means missing.
func parseQuery(ds *dataset.Dataset, text string) (dataset.Query, error) {
	q := dataset.Query{}
	if strings.TrimSpace(text) == "" {
		return q, nil
	}
	for _, pair := range strings.Split(text, ",") {
		dim, val, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("query pair %q is not dimension=value", pair)
		}
		dim = strings.TrimSpace(dim)
		if ds.Dim(dim) == nil {
			return nil, fmt.Errorf("unknown dimension %q", dim)
		}
		val = strings.TrimSpace(val)
		switch {
		case val == "":
			q[dim] = dataset.None()
		case ds.IsCategorical(dim):
			q[dim] = dataset.Str(val)
		default:
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("dimension %q is numeric: %w", dim, err)
			}
			q[dim] = dataset.Num(f)
		}
	}
	return q, nil
}
