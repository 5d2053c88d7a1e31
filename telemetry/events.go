// Package telemetry records wheel events, frame timing and CSV exports.
package telemetry

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pthm-cable/wheeltab/wheel"
)

// EventType identifies telemetry events.
type EventType uint8

const (
	EventSelect EventType = iota
	EventOpen
	EventClose
	EventCenter
)

var eventNames = [...]string{
	EventSelect: "select",
	EventOpen:   "open",
	EventClose:  "close",
	EventCenter: "center",
}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("event(%d)", e)
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (e EventType) MarshalCSV() (string, error) { return e.String(), nil }

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (e *EventType) UnmarshalCSV(s string) error {
	for i, name := range eventNames {
		if name == s {
			*e = EventType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown event type %q", s)
}

// Event is one wheel event as written to events.csv.
type Event struct {
	Seq       int       `csv:"seq"`
	ElapsedMS int64     `csv:"elapsed_ms"`
	Type      EventType `csv:"type"`
	Index     int       `csv:"index"`
	ItemID    string    `csv:"item_id"`
	Open      bool      `csv:"open"`
	Rotation  float64   `csv:"rotation"`
}

// Recorder collects wheel events in memory, logs them and streams them to an
// OutputManager when one is attached. It implements wheel.Listener.
type Recorder struct {
	logger *slog.Logger
	out    *OutputManager
	start  time.Time
	now    func() time.Time

	events []Event
	err    error
}

// NewRecorder creates a recorder. out may be nil.
func NewRecorder(logger *slog.Logger, out *OutputManager) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		logger: logger,
		out:    out,
		start:  time.Now(),
		now:    time.Now,
	}
}

// DidSelectItem records a selection.
func (r *Recorder) DidSelectItem(c *wheel.Controller, item wheel.Item) {
	r.Record(EventSelect, c)
}

// Toggled records an open or close event for c's current state.
func (r *Recorder) Toggled(c *wheel.Controller) {
	if c.IsOpen() {
		r.Record(EventOpen, c)
	} else {
		r.Record(EventClose, c)
	}
}

// Record appends an event describing c's current state.
func (r *Recorder) Record(typ EventType, c *wheel.Controller) {
	ev := Event{
		Seq:       len(r.events),
		ElapsedMS: r.now().Sub(r.start).Milliseconds(),
		Type:      typ,
		Index:     c.Selected(),
		Open:      c.IsOpen(),
		Rotation:  c.Pose().Rotation,
	}
	if item, ok := c.SelectedItem(); ok {
		ev.ItemID = item.ID
	}
	r.events = append(r.events, ev)
	r.logger.Info("wheel event", "type", ev.Type.String(), "index", ev.Index, "item", ev.ItemID, "open", ev.Open)

	if err := r.out.WriteEvent(ev); err != nil && r.err == nil {
		r.err = err
		r.logger.Error("failed to write event", "error", err)
	}
}

// Events returns the recorded events.
func (r *Recorder) Events() []Event { return r.events }

// Count returns how many events of the given type were recorded.
func (r *Recorder) Count(typ EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

// Err returns the first export error, if any.
func (r *Recorder) Err() error { return r.err }
