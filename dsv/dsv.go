// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dsv parses and writes the comma-separated tabular text dialect
// used by cinema databases. Unlike the standard encoding/csv reader, it
// preserves the distinction between a missing field (nothing between two
// commas) and an empty quoted field (""), which the data model treats as
// different values.
package dsv

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFormat is the base error for malformed input; all Parse errors wrap it.
var ErrFormat = errors.New("dsv: malformed input")

// Cell is one field of a parsed table: either a string value or missing.
// A present empty string is not the same as a missing cell.
type Cell struct {
	// Text is the decoded field content. Meaningless if Missing.
	Text string

	// Missing is true for an empty unquoted field.
	Missing bool
}

// Str returns a present Cell with the given text.
func Str(text string) Cell { return Cell{Text: text} }

// Missing returns a missing Cell.
func Missing() Cell { return Cell{Missing: true} }

// Parse decodes comma-separated text into one row of cells per source line.
// Fields may be quoted with double quotes: embedded commas and newlines are
// then literal, and a doubled quote decodes to one literal quote.
// An empty unquoted field decodes to a missing cell; a quoted empty field
// ("") decodes to the empty string. Both LF and CRLF line endings are
// accepted. The trailing blank line produced by a final newline is dropped.
// Parse does not validate row shape; see the dataset package for that.
func Parse(text string) ([][]Cell, error) {
	var (
		rows   [][]Cell
		row    []Cell
		field  strings.Builder
		quoted bool
	)
	endField := func() {
		c := Cell{Text: field.String()}
		if !quoted && c.Text == "" {
			c = Cell{Missing: true}
		}
		row = append(row, c)
		field.Reset()
		quoted = false
	}
	endLine := func() {
		endField()
		rows = append(rows, row)
		row = nil
	}
	n := len(text)
	for i := 0; i < n; {
		switch c := text[i]; c {
		case '"':
			if quoted || field.Len() > 0 {
				return nil, fmt.Errorf("%w: line %d: unexpected quote inside field", ErrFormat, len(rows)+1)
			}
			quoted = true
			i++
			closed := false
			for i < n {
				if text[i] != '"' {
					field.WriteByte(text[i])
					i++
					continue
				}
				if i+1 < n && text[i+1] == '"' { // escaped quote
					field.WriteByte('"')
					i += 2
					continue
				}
				closed = true
				i++
				break
			}
			if !closed {
				return nil, fmt.Errorf("%w: line %d: unterminated quoted field", ErrFormat, len(rows)+1)
			}
			if i < n && text[i] != ',' && text[i] != '\n' && text[i] != '\r' {
				return nil, fmt.Errorf("%w: line %d: unexpected %q after closing quote", ErrFormat, len(rows)+1, text[i])
			}
		case ',':
			endField()
			i++
		case '\r':
			i++
			if i < n && text[i] == '\n' {
				i++
			}
			endLine()
		case '\n':
			endLine()
			i++
		default:
			field.WriteByte(c)
			i++
		}
	}
	// flush a final line not terminated by a newline
	if field.Len() > 0 || quoted || len(row) > 0 {
		endLine()
	}
	return rows, nil
}
