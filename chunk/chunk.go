// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunk drives long-running per-item draw work in small
// time-sliced batches so the interface stays responsive while thousands
// of marks are redrawn. A redraw is modeled as an explicit resumable
// [Pass] advanced by a tick-driven [Runner]; starting a new pass
// discards any in-flight pass for the same runner immediately, so no
// two passes ever draw over the same surface concurrently.
package chunk

import (
	"time"

	"github.com/lanl/cinema-components/events"
)

const (
	// DefaultInterval is the scheduler tick, one frame at ~60Hz.
	DefaultInterval = 16 * time.Millisecond

	// DefaultBatch is the number of items drawn per tick.
	DefaultBatch = 25
)

// Pass is one resumable redraw over a list of items: progress state plus
// an advance method, with no reliance on language-level coroutines.
type Pass struct {
	// Items are the item indices to draw, in draw order.
	Items []int

	// Draw draws one item.
	Draw func(item int)

	next int
}

// NewPass returns a pass that draws the given items.
func NewPass(items []int, draw func(item int)) *Pass {
	return &Pass{Items: items, Draw: draw}
}

// Advance draws up to batch more items and reports whether the pass is
// complete. A non-positive batch draws nothing.
func (p *Pass) Advance(batch int) bool {
	n := len(p.Items)
	for i := 0; i < batch && p.next < n; i++ {
		p.Draw(p.Items[p.next])
		p.next++
	}
	return p.next >= n
}

// Remaining returns the number of items not yet drawn.
func (p *Pass) Remaining() int {
	return len(p.Items) - p.next
}

// Runner advances at most one pass at a time on a fixed tick.
// Draw functions and Busy listeners run on the runner's goroutine;
// register Busy listeners before the first Start.
type Runner struct {
	// Busy fires true when a pass becomes pending and false when it
	// completes or is cancelled, for a "drawing..." indicator. It does
	// not fire when one pass directly supersedes another.
	Busy events.Source[bool]

	interval time.Duration
	batch    int
	start    chan *Pass
	quit     chan struct{}
}

// NewRunner returns a started runner. Non-positive interval or batch
// select [DefaultInterval] and [DefaultBatch].
func NewRunner(interval time.Duration, batch int) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if batch <= 0 {
		batch = DefaultBatch
	}
	r := &Runner{
		interval: interval,
		batch:    batch,
		start:    make(chan *Pass),
		quit:     make(chan struct{}),
	}
	go r.run()
	return r
}

// Start makes the pass current, immediately discarding any in-flight
// pass. The discarded pass is simply never advanced again.
func (r *Runner) Start(p *Pass) {
	r.start <- p
}

// Cancel discards the in-flight pass, if any.
func (r *Runner) Cancel() {
	r.start <- nil
}

// Close stops the runner's tick loop. The runner must not be used
// afterwards.
func (r *Runner) Close() {
	close(r.quit)
}

func (r *Runner) run() {
	tick := time.NewTicker(r.interval)
	defer tick.Stop()
	var cur *Pass
	for {
		select {
		case p := <-r.start:
			switch {
			case cur == nil && p != nil:
				r.Busy.Emit(true)
			case cur != nil && p == nil:
				r.Busy.Emit(false)
			}
			cur = p
		case <-tick.C:
			if cur == nil {
				continue
			}
			if cur.Advance(r.batch) {
				cur = nil
				r.Busy.Emit(false)
			}
		case <-r.quit:
			return
		}
	}
}
