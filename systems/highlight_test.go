package systems

import (
	"fmt"
	"math"
	"testing"

	"github.com/pthm-cable/wheeltab/telemetry"
	"github.com/pthm-cable/wheeltab/wheel"
)

func newController(t *testing.T, n int) *wheel.Controller {
	t.Helper()
	items := make([]wheel.Item, n)
	for i := range items {
		items[i] = wheel.Item{ID: fmt.Sprintf("item-%d", i), Icon: fmt.Sprintf("icon-%d", i)}
	}
	c, err := wheel.New(items, 100)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestSlotSystem_Sync(t *testing.T) {
	c := newController(t, 4)
	s := NewSlotSystem()
	s.Sync(c)

	slots := s.Slots()
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}
	for i, v := range slots {
		if v.Slot.Index != i || v.Slot.ID != fmt.Sprintf("item-%d", i) {
			t.Errorf("slot %d = %+v", i, v.Slot)
		}
	}
	if slots[0].Highlight.Level != 1 || slots[1].Highlight.Level != 0 {
		t.Errorf("initial highlight wrong: %+v %+v", slots[0].Highlight, slots[1].Highlight)
	}

	// Same revision is a no-op; new items rebuild.
	s.Sync(c)
	if s.Len() != 4 {
		t.Errorf("expected 4 entities after resync, got %d", s.Len())
	}
	if err := c.SetItems(newController(t, 6).Items()); err != nil {
		t.Fatal(err)
	}
	s.Sync(c)
	if s.Len() != 6 || len(s.Slots()) != 6 {
		t.Errorf("expected 6 entities after SetItems, got %d", s.Len())
	}
}

func TestSlotSystem_HighlightFades(t *testing.T) {
	c := newController(t, 4)
	s := NewSlotSystem()
	s.Sync(c)

	c.Tap(c.Layout().Wedge(2).Centroid())
	s.Sync(c)

	dt := float32(1.0 / 60.0)
	s.Update(c, dt)
	slots := s.Slots()
	want := float32(HighlightRate) * dt
	if math.Abs(float64(slots[2].Highlight.Level-want)) > 1e-6 {
		t.Errorf("slot 2 level = %f, want %f", slots[2].Highlight.Level, want)
	}
	if math.Abs(float64(slots[0].Highlight.Level-(1-want))) > 1e-6 {
		t.Errorf("slot 0 level = %f, want %f", slots[0].Highlight.Level, 1-want)
	}

	for i := 0; i < 60; i++ {
		s.Update(c, dt)
	}
	slots = s.Slots()
	if slots[2].Highlight.Level != 1 || slots[0].Highlight.Level != 0 {
		t.Errorf("levels did not settle: %f %f", slots[2].Highlight.Level, slots[0].Highlight.Level)
	}
}

func TestFramePhases(t *testing.T) {
	phases := FramePhases()
	if len(phases) != 4 || phases[0].ID != telemetry.PhaseInput || phases[3].ID != telemetry.PhaseDraw {
		t.Fatalf("unexpected phases: %+v", phases)
	}
	phases[0].Label = "changed"
	if FramePhases()[0].Label != "Input" {
		t.Error("FramePhases returned shared storage")
	}
	if phases[2].Label != "Highlight" {
		t.Errorf("systems phase label = %q", phases[2].Label)
	}
}
