package midiexport

import (
	"fmt"
	"io"
	"math"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/cbegin/fmsynth-go/internal/catalog"
	"github.com/cbegin/fmsynth-go/internal/sequencer"
)

const (
	bpm      = 120.0
	channel  = 0
	velocity = 100
)

var resolution = smf.MetricTicks(960)

// Options controls the exported file.
type Options struct {
	// Lookup maps note names to Hz. Defaults to catalog.NoteFrequency.
	Lookup func(name string) float64
	// TrackName is written as a meta event when set.
	TrackName string
}

// Write renders notes as a single-track Standard MIDI File. Each note uses
// the same articulation as live playback: note-off after the sounding part,
// the remainder left as silence. Rests only advance time.
func Write(w io.Writer, notes []catalog.Note, opts Options) error {
	lookup := opts.Lookup
	if lookup == nil {
		lookup = catalog.NoteFrequency
	}

	s := smf.New()
	s.TimeFormat = resolution

	var track smf.Track
	if opts.TrackName != "" {
		track.Add(0, smf.MetaTrackSequenceName(opts.TrackName))
	}
	track.Add(0, smf.MetaTempo(bpm))

	var pending uint32
	for _, n := range notes {
		if n.DurationMs <= 0 {
			continue
		}
		freq := lookup(n.Name)
		if freq <= 0 {
			pending += ticks(time.Duration(n.DurationMs) * time.Millisecond)
			continue
		}
		key, ok := KeyForFrequency(freq)
		if !ok {
			return fmt.Errorf("note %q (%.2f Hz) is outside the MIDI key range", n.Name, freq)
		}
		sounding, release := sequencer.Articulation(n.DurationMs)
		track.Add(pending, midi.NoteOn(channel, key, velocity))
		track.Add(ticks(sounding), midi.NoteOff(channel, key))
		pending = ticks(release)
	}
	track.Close(pending)

	if err := s.Add(track); err != nil {
		return fmt.Errorf("error adding track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("error writing MIDI data: %w", err)
	}
	return nil
}

func ticks(d time.Duration) uint32 {
	return resolution.Ticks(bpm, d)
}

// KeyForFrequency returns the nearest equal-tempered MIDI key (A4 = 69).
func KeyForFrequency(freq float64) (uint8, bool) {
	if freq <= 0 {
		return 0, false
	}
	k := math.Round(69 + 12*math.Log2(freq/sequencer.ReferencePitch))
	if k < 0 || k > 127 {
		return 0, false
	}
	return uint8(k), true
}
