// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cdb loads cinema databases: a directory holding the primary
// table data.csv and, optionally, the axis-order table axis_order.csv.
// A malformed or missing primary table aborts the load; a malformed or
// missing axis-order table is logged and the database proceeds without
// axis-ordering data.
package cdb

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"cogentcore.org/core/base/errors"

	"github.com/lanl/cinema-components/axisorder"
	"github.com/lanl/cinema-components/dataset"
)

const (
	// DataFile is the primary table within a database directory.
	DataFile = "data.csv"

	// AxisOrderFile is the optional axis-order table.
	AxisOrderFile = "axis_order.csv"
)

// Database is a loaded cinema database.
type Database struct {
	// Data is the primary dataset.
	Data *dataset.Dataset

	// AxisOrder holds per-category dimension orderings; nil when
	// HasAxisOrdering is false.
	AxisOrder *axisorder.Store

	// HasAxisOrdering is false when axis_order.csv was absent or invalid.
	HasAxisOrdering bool
}

// Load reads a database from the given directory within a filesystem.
func Load(fsys fs.FS, dir string) (*Database, error) {
	b, err := fs.ReadFile(fsys, path.Join(dir, DataFile))
	if err != nil {
		return nil, errors.Log(fmt.Errorf("cdb.Load: cannot read primary table: %w", err))
	}
	ds, err := dataset.ParseText(string(b))
	if err != nil {
		return nil, errors.Log(fmt.Errorf("cdb.Load: %w", err))
	}
	ds.Meta.Set("source", path.Join(dir, DataFile))
	db := &Database{Data: ds}

	ab, err := fs.ReadFile(fsys, path.Join(dir, AxisOrderFile))
	if err != nil {
		return db, nil // optional
	}
	st, err := axisorder.Parse(string(ab), ds)
	if err != nil {
		slog.Warn("cdb.Load: ignoring invalid axis-order table", "file", AxisOrderFile, "err", err)
		return db, nil
	}
	db.AxisOrder = st
	db.HasAxisOrdering = true
	return db, nil
}

// LoadDir reads a database from a directory on the local filesystem.
func LoadDir(dir string) (*Database, error) {
	return Load(os.DirFS(dir), ".")
}
