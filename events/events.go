// Copyright (c) 2026, The Cinema Components Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides typed publish / subscribe event sources.
// Each event name gets its own [Source] with a strongly typed payload,
// instead of a shared registry of untyped callbacks.
package events

// Source registers listener functions for one named event and calls
// them with the event payload on each [Source.Emit].
// Listeners are closure functions with all context captured,
// registered on specific objects. The zero value is ready to use.
type Source[T any] struct {
	listeners []func(T)
}

// Listen adds a listener function, called on every subsequent Emit.
// Listeners cannot be removed; register them once at view setup.
func (s *Source[T]) Listen(fun func(T)) {
	s.listeners = append(s.listeners, fun)
}

// Emit calls all listener functions with the given payload,
// in the order they were added.
func (s *Source[T]) Emit(val T) {
	for _, fun := range s.listeners {
		fun(val)
	}
}

// Len returns the number of registered listeners.
func (s *Source[T]) Len() int {
	return len(s.listeners)
}
