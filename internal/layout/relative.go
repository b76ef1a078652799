package layout

import "math"

// IsRelative reports whether a child with the given requested size is priced
// after its fixed siblings in mode m. Absolute and none layouts price every
// child as fixed.
func IsRelative(m Mode, width, height Value) bool {
	switch m {
	case ModeHorizontal, ModeGrid:
		return width.IsPercent()
	case ModeVertical:
		return height.IsPercent()
	default:
		return false
	}
}

// SortFixedFirst returns items stably reordered so that fixed-size items come
// first and relative ones last. The input slice is not modified.
func SortFixedFirst[T any](items []T, relative func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !relative(it) {
			out = append(out, it)
		}
	}
	for _, it := range items {
		if relative(it) {
			out = append(out, it)
		}
	}
	return out
}

// RelativeFraction converts a percentage into a fraction of the parent's
// space. On a distributing axis siblings that ask for more than 100% in total
// are scaled down to share the space proportionally.
func RelativeFraction(percent, siblingSum float64, distributing bool) float64 {
	if distributing && siblingSum > 100 {
		return percent / siblingSum
	}
	return percent / 100
}

// RelativeSize returns the whole-pixel size a relative child may occupy,
// with its margins already taken out.
func RelativeSize(available, fraction, margins float64) float64 {
	if math.IsInf(available, 0) || math.IsNaN(available) {
		return 0
	}
	return max(0, math.Round(available*fraction-margins))
}
