package controller

import "fmt"

// Kind enumerates the controllers a kart can be driven by.
type Kind int

const (
	KindLocalPlayer Kind = iota
	KindAI
	KindNetwork
	KindGhost
)

func (k Kind) String() string {
	switch k {
	case KindLocalPlayer:
		return "LocalPlayer"
	case KindAI:
		return "AI"
	case KindNetwork:
		return "Network"
	case KindGhost:
		return "Ghost"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Handle is the closed set of controllers. Only types of this package
// implement it.
type Handle interface {
	Kind() Kind
	isHandle()
}

// Basic is a controller handle for all kinds that are driven outside of the replay.
type Basic struct {
	kind Kind
}

func NewBasic(kind Kind) *Basic {
	return &Basic{kind: kind}
}

func (b *Basic) Kind() Kind { return b.kind }
func (b *Basic) isHandle()  {}

// AsGhost narrows h to the playback controller.
func AsGhost(h Handle) (*Ghost, bool) {
	if h == nil || h.Kind() != KindGhost {
		return nil, false
	}
	g, ok := h.(*Ghost)
	return g, ok && g != nil
}
