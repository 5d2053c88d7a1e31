package app

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Sound is a short clip decoded into memory and replayed on selection.
type Sound struct {
	buffer *beep.Buffer
}

// LoadSound decodes a WAV file and initializes the speaker at its sample
// rate. An empty path returns a nil Sound, which plays nothing.
func LoadSound(path string) (*Sound, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sound: %w", err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding sound: %w", err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return &Sound{buffer: buffer}, nil
}

// Play starts the clip from the beginning, replacing any clip still playing.
func (s *Sound) Play() {
	if s == nil {
		return
	}
	speaker.Clear()
	speaker.Play(s.buffer.Streamer(0, s.buffer.Len()))
}

// Close stops playback.
func (s *Sound) Close() {
	if s == nil {
		return
	}
	speaker.Clear()
}
