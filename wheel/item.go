// Package wheel lays out a circular tab bar and tracks its selection state.
//
// The wheel is a ring of equal wedges around a center button. Layout computes
// the wedge geometry; Controller turns drag and tap input into a selected index
// and a target pose for the host's animator.
package wheel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidItem is returned when an item list fails validation.
	ErrInvalidItem = errors.New("wheel: invalid item")
	// ErrIndexOutOfRange is returned by SetSelectedIndex for i < 0 or i >= N.
	ErrIndexOutOfRange = errors.New("wheel: index out of range")
	// ErrNoItems is returned by selection calls on an empty wheel.
	ErrNoItems = errors.New("wheel: no items")
)

// Item is one entry of the wheel. ID is opaque to the wheel; the icon fields
// are references the host resolves to images.
type Item struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	Icon         string `yaml:"icon"`
	SelectedIcon string `yaml:"selected_icon"`
}

// Label returns the title, or the ID when no title is set.
func (it Item) Label() string {
	if it.Title != "" {
		return it.Title
	}
	return it.ID
}

// ValidateItems checks that every item has an ID and an icon and that IDs are unique.
func ValidateItems(items []Item) error {
	seen := make(map[string]int, len(items))
	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("%w: item %d has no id", ErrInvalidItem, i)
		}
		if it.Icon == "" {
			return fmt.Errorf("%w: item %q has no icon", ErrInvalidItem, it.ID)
		}
		if prev, ok := seen[it.ID]; ok {
			return fmt.Errorf("%w: duplicate id %q at %d and %d", ErrInvalidItem, it.ID, prev, i)
		}
		seen[it.ID] = i
	}
	return nil
}
