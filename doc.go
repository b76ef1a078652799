// Package scene provides an invalidation-driven frame scheduler and the box
// layout engine it drives.
//
// Users import this single package for the complete public API: the
// [System] that ticks once per host frame, [Node] construction (sprites and
// containers), layout types, data consumers, animations, and notifications.
//
// Mutations only mark nodes invalid. Each [System.Tick] drains the
// per-base work queues in a fixed stage order (layouts, data, visual nodes,
// animations, idle callbacks, then a final layout pass) so that several
// independent bases can share one host without blocking each other.
package scene
