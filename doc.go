// Package ui provides the invalidation and layout core of a retained-mode
// widget library.
//
// Widgets embed a [Component], call [Component.Invalidate] from their
// property setters and implement [Drawer]. A [ValidationQueue], one per
// [Surface], redraws every invalid component at most once per frame, deepest
// first. Containers position their children with the [Linear] layout engine,
// which supports virtualization for long sequences backed by few live items.
package ui
