// Package systems holds the per-frame ECS systems of the wheel host.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/wheeltab/components"
	"github.com/pthm-cable/wheeltab/wheel"
)

// HighlightRate is how fast a highlight level moves toward its target, in
// full swings per second.
const HighlightRate = 8.0

// SlotView is a read-only snapshot of one slot entity, for drawing.
type SlotView struct {
	Slot      components.Slot
	Highlight components.Highlight
	Icon      components.Icon
}

// SlotSystem mirrors the controller's slots as ECS entities and fades their
// highlight as the selection settles.
type SlotSystem struct {
	world    *ecs.World
	mapper   *ecs.Map3[components.Slot, components.Highlight, components.Icon]
	filter   *ecs.Filter3[components.Slot, components.Highlight, components.Icon]
	entities []ecs.Entity
	revision uint64
	synced   bool
}

// NewSlotSystem creates an empty slot world.
func NewSlotSystem() *SlotSystem {
	world := ecs.NewWorld()
	return &SlotSystem{
		world:  world,
		mapper: ecs.NewMap3[components.Slot, components.Highlight, components.Icon](world),
		filter: ecs.NewFilter3[components.Slot, components.Highlight, components.Icon](world),
	}
}

// Sync rebuilds the slot entities when the controller's revision changed.
func (s *SlotSystem) Sync(c *wheel.Controller) {
	if s.synced && c.Revision() == s.revision {
		return
	}
	for _, e := range s.entities {
		s.mapper.Remove(e)
	}
	s.entities = s.entities[:0]

	highlighted := c.Highlighted()
	for i, item := range c.Items() {
		slot := components.Slot{Index: i, ID: item.ID}
		hl := components.Highlight{}
		if i == highlighted {
			hl = components.Highlight{Level: 1, Target: 1}
		}
		icon := components.Icon{Normal: item.Icon, Selected: item.SelectedIcon, Title: item.Label()}
		s.entities = append(s.entities, s.mapper.NewEntity(&slot, &hl, &icon))
	}
	s.revision = c.Revision()
	s.synced = true
}

// Update retargets highlights to the controller's highlighted slot and eases
// every level toward its target.
func (s *SlotSystem) Update(c *wheel.Controller, dt float32) {
	highlighted := c.Highlighted()
	step := HighlightRate * dt

	query := s.filter.Query()
	for query.Next() {
		slot, hl, _ := query.Get()
		hl.Target = 0
		if slot.Index == highlighted {
			hl.Target = 1
		}
		switch {
		case hl.Level < hl.Target:
			hl.Level = min(hl.Target, hl.Level+step)
		case hl.Level > hl.Target:
			hl.Level = max(hl.Target, hl.Level-step)
		}
	}
}

// Slots returns a snapshot of every slot ordered by index.
func (s *SlotSystem) Slots() []SlotView {
	views := make([]SlotView, len(s.entities))
	query := s.filter.Query()
	for query.Next() {
		slot, hl, icon := query.Get()
		if slot.Index >= 0 && slot.Index < len(views) {
			views[slot.Index] = SlotView{Slot: *slot, Highlight: *hl, Icon: *icon}
		}
	}
	return views
}

// Len returns the number of slot entities.
func (s *SlotSystem) Len() int { return len(s.entities) }
