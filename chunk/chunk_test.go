// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chunk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassAdvance(t *testing.T) {
	var drawn []int
	p := NewPass([]int{10, 11, 12, 13, 14}, func(i int) { drawn = append(drawn, i) })
	assert.Equal(t, 5, p.Remaining())

	assert.False(t, p.Advance(2))
	assert.Equal(t, []int{10, 11}, drawn)
	assert.Equal(t, 3, p.Remaining())

	assert.False(t, p.Advance(2))
	assert.True(t, p.Advance(2)) // last batch is short
	assert.Equal(t, []int{10, 11, 12, 13, 14}, drawn)
	assert.Equal(t, 0, p.Remaining())

	// advancing a finished pass stays done and draws nothing
	assert.True(t, p.Advance(2))
	assert.Len(t, drawn, 5)
}

func TestPassEmpty(t *testing.T) {
	p := NewPass(nil, func(int) { t.Fatal("draw called on empty pass") })
	assert.True(t, p.Advance(25))

	var drawn int
	p = NewPass([]int{1, 2}, func(int) { drawn++ })
	assert.False(t, p.Advance(0)) // non-positive batch draws nothing
	assert.Equal(t, 0, drawn)
}

func TestRunnerCompletes(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	drawn := make(chan int, len(items))
	done := make(chan struct{})

	r := NewRunner(time.Millisecond, 25)
	defer r.Close()
	r.Busy.Listen(func(busy bool) {
		if !busy {
			close(done)
		}
	})
	r.Start(NewPass(items, func(i int) { drawn <- i }))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pass did not complete")
	}
	close(drawn)
	var got []int
	for i := range drawn {
		got = append(got, i)
	}
	assert.Equal(t, items, got)
}

func TestRunnerSupersede(t *testing.T) {
	first := NewPass(make([]int, 100000), func(int) {})
	done := make(chan struct{})

	r := NewRunner(time.Millisecond, 10)
	defer r.Close()
	r.Busy.Listen(func(busy bool) {
		if !busy {
			close(done)
		}
	})

	r.Start(first)
	var second []int
	r.Start(NewPass([]int{1, 2, 3}, func(i int) { second = append(second, i) }))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("superseding pass did not complete")
	}
	// the first pass was discarded mid-flight; only the second finished
	require.Equal(t, []int{1, 2, 3}, second)
	assert.Greater(t, first.Remaining(), 0)
}

func TestRunnerCancel(t *testing.T) {
	var busyLog []bool
	busyc := make(chan bool, 8)

	r := NewRunner(time.Hour, 25) // tick never fires during the test
	defer r.Close()
	r.Busy.Listen(func(b bool) { busyc <- b })

	r.Start(NewPass([]int{1, 2, 3}, func(int) {}))
	busyLog = append(busyLog, <-busyc)
	r.Cancel()
	busyLog = append(busyLog, <-busyc)
	assert.Equal(t, []bool{true, false}, busyLog)
}
