package layout

// Mode selects the algorithm a container uses to position its children.
type Mode uint8

const (
	ModeAbsolute   Mode = iota // Each child placed on its own
	ModeVertical               // Children stacked top-to-bottom
	ModeHorizontal             // Children stacked left-to-right
	ModeGrid                   // Children flowed into columns
	ModeNone                   // Children keep their explicit positions, no alignment
)

func (m Mode) String() string {
	switch m {
	case ModeAbsolute:
		return "absolute"
	case ModeVertical:
		return "vertical"
	case ModeHorizontal:
		return "horizontal"
	case ModeGrid:
		return "grid"
	case ModeNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode name to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "absolute":
		return ModeAbsolute, true
	case "vertical":
		return ModeVertical, true
	case "horizontal":
		return ModeHorizontal, true
	case "grid":
		return ModeGrid, true
	case "none":
		return ModeNone, true
	default:
		return ModeAbsolute, false
	}
}

// HAlign positions a child horizontally inside the space given to it.
type HAlign uint8

const (
	AlignUnset  HAlign = iota // Layout default (start of the box)
	AlignLeft                 // Left edge
	AlignCenter               // Centered
	AlignRight                // Right edge
	AlignNone                 // Opt out: keep explicit X, skip content alignment
)

// VAlign positions a child vertically inside the space given to it.
type VAlign uint8

const (
	ValignUnset  VAlign = iota // Layout default (top of the box)
	ValignTop                  // Top edge
	ValignMiddle               // Centered
	ValignBottom               // Bottom edge
	ValignNone                 // Opt out: keep explicit Y, skip content alignment
)

// factor returns how far along the free space an aligned box sits (0, 0.5, 1).
func (a HAlign) factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

func (v VAlign) factor() float64 {
	switch v {
	case ValignMiddle:
		return 0.5
	case ValignBottom:
		return 1
	default:
		return 0
	}
}

// Distributes reports which axes a mode shares between siblings.
// Relative sizes on a distributing axis are normalised against the siblings'
// sum; on the other axis they are plain fractions of the parent.
func Distributes(m Mode) (width, height bool) {
	switch m {
	case ModeHorizontal, ModeGrid:
		return true, false
	case ModeVertical:
		return false, true
	default:
		return false, false
	}
}

// Stacks reports the axis along which a mode consumes space with a cursor.
func Stacks(m Mode) (width, height bool) {
	switch m {
	case ModeHorizontal:
		return true, false
	case ModeVertical:
		return false, true
	default:
		return false, false
	}
}
