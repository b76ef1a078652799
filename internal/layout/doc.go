// Package layout implements the pure geometry behind container layout.
//
// It knows nothing about invalidation or scheduling. The scene package feeds
// it measured child sizes and gets back positions and a content box. It covers
// the five layout modes (absolute, vertical, horizontal, grid, none),
// relative-size resolution between siblings, the greedy grid column solver,
// and content alignment. Types are re-exported through the root scene package.
//
// The main entry points are [Arrange] for positioning and [SortFixedFirst],
// [RelativeFraction] and [RelativeSize] for the pricing walk that precedes it.
package layout
