package scene

// Kind tags what a Node is. Behaviour that differs per kind switches on it
// instead of type-asserting.
type Kind uint8

const (
	// KindSprite is a leaf visual node measured from its own size or Content.
	KindSprite Kind = iota
	// KindContainer owns an ordered child list and lays it out.
	KindContainer
)

func (k Kind) String() string {
	switch k {
	case KindSprite:
		return "sprite"
	case KindContainer:
		return "container"
	default:
		return "unknown"
	}
}
