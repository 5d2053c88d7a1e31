// Package components defines the ECS components for the wheel's slots.
package components

// Slot ties an entity to a wheel slot.
type Slot struct {
	Index int
	ID    string
}

// Highlight is the animated selection emphasis of a slot.
// Level eases toward Target; 1 is fully selected.
type Highlight struct {
	Level  float32
	Target float32
}

// Icon holds the slot's display assets. Selected falls back to Normal when
// empty.
type Icon struct {
	Normal   string
	Selected string
	Title    string
}

// Ref returns the asset to draw for the given highlight state.
func (i Icon) Ref(selected bool) string {
	if selected && i.Selected != "" {
		return i.Selected
	}
	return i.Normal
}
