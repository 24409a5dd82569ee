// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsv

import (
	"io"
	"strings"
)

// Write encodes rows of cells as comma-separated text to the given writer.
// Missing cells are written as truly empty fields and present empty cells
// as "", so Parse(WriteString(rows)) reproduces rows exactly.
func Write(w io.Writer, rows [][]Cell) error {
	_, err := io.WriteString(w, WriteString(rows))
	return err
}

// WriteString is the string-building version of [Write].
func WriteString(rows [][]Cell) string {
	var sb strings.Builder
	for _, row := range rows {
		for i, c := range row {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCell(&sb, c)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeCell(sb *strings.Builder, c Cell) {
	if c.Missing {
		return
	}
	if c.Text == "" || strings.ContainsAny(c.Text, ",\"\r\n") {
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(c.Text, `"`, `""`))
		sb.WriteByte('"')
		return
	}
	sb.WriteString(c.Text)
}
