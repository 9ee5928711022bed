// Package layout implements a virtualized linear layout engine.
//
// The engine positions an ordered sequence of items along one axis inside a
// scrollable viewport. It supports gaps, padding, on-axis and cross-axis
// alignment, distributed sizing, percentage sizing and virtualization, where
// the item slice is longer than the number of live instances and the missing
// entries are nil.
// Types are re-exported through the root ui package for public consumption.
//
// The main entry point is [Linear.Layout], which takes the items and a
// [ViewPortBounds] contract and returns a [BoundsResult].
package layout
