// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package scene

import "github.com/grindlemire/go-scene/internal/layout"

// Mode selects the algorithm a container uses to position its children.
type Mode = layout.Mode

const (
	Absolute   = layout.ModeAbsolute
	Vertical   = layout.ModeVertical
	Horizontal = layout.ModeHorizontal
	Grid       = layout.ModeGrid
	NoLayout   = layout.ModeNone
)

// HAlign positions a node horizontally inside the space its parent gives it.
type HAlign = layout.HAlign

const (
	AlignUnset  = layout.AlignUnset
	AlignLeft   = layout.AlignLeft
	AlignCenter = layout.AlignCenter
	AlignRight  = layout.AlignRight
	AlignNone   = layout.AlignNone
)

// VAlign positions a node vertically inside the space its parent gives it.
type VAlign = layout.VAlign

const (
	ValignUnset  = layout.ValignUnset
	ValignTop    = layout.ValignTop
	ValignMiddle = layout.ValignMiddle
	ValignBottom = layout.ValignBottom
	ValignNone   = layout.ValignNone
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Fixed creates a Value with a fixed pixel size.
func Fixed(px float64) Value {
	return layout.Fixed(px)
}

// Percent creates a Value representing a percentage of the parent's space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// ParseMode maps a layout mode name ("vertical", "grid", ...) to a Mode.
func ParseMode(s string) (Mode, bool) {
	return layout.ParseMode(s)
}
