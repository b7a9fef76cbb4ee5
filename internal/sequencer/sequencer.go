package sequencer

import (
	"context"
	"time"

	"github.com/cbegin/fmsynth-go/internal/catalog"
	"github.com/cbegin/fmsynth-go/internal/fm"
)

// ReferencePitch is the pitch preset frequencies are stored at.
const ReferencePitch = 440.0

// DefaultTail covers the default envelope release.
const DefaultTail = 500 * time.Millisecond

// soundingPercent of every note is held before note-off; the rest of the
// note's duration is left for the release.
const soundingPercent = 80

// Target is what the sequencer drives. render.Bridge implements it.
type Target interface {
	ApplyParams(params fm.Params)
	NoteOn()
	NoteOff()
}

// EventKind identifies sequencer lifecycle events.
type EventKind int

const (
	EventNoteOn EventKind = iota
	EventNoteOff
	EventRest
	EventPlaybackEnded
)

func (k EventKind) String() string {
	switch k {
	case EventNoteOn:
		return "note-on"
	case EventNoteOff:
		return "note-off"
	case EventRest:
		return "rest"
	case EventPlaybackEnded:
		return "playback-ended"
	}
	return "unknown"
}

// Event is reported through Options.OnEvent right after the corresponding
// call on the Target. Index is the position of the note in the melody, or -1
// for EventPlaybackEnded.
type Event struct {
	Kind      EventKind
	Index     int
	Note      catalog.Note
	Frequency float64
	Params    fm.Params
}

type Options struct {
	// Lookup maps note names to Hz; 0 means rest. Defaults to catalog.NoteFrequency.
	Lookup func(name string) float64
	// Tail is waited after the last note so the release can finish.
	// 0 selects DefaultTail, a negative value disables it.
	Tail    time.Duration
	OnEvent func(Event)
}

// Sequencer plays a melody on a Target in real time using a single preset.
// It is a one-shot state machine: Run walks the notes once and stops.
type Sequencer struct {
	target  Target
	wait    Waiter
	preset  fm.Params
	lookup  func(string) float64
	tail    time.Duration
	onEvent func(Event)
}

func New(target Target, wait Waiter, preset fm.Params) *Sequencer {
	return NewWithOptions(target, wait, preset, Options{})
}

func NewWithOptions(target Target, wait Waiter, preset fm.Params, opts Options) *Sequencer {
	if wait == nil {
		wait = SleepWaiter{}
	}
	lookup := opts.Lookup
	if lookup == nil {
		lookup = catalog.NoteFrequency
	}
	tail := opts.Tail
	switch {
	case tail == 0:
		tail = DefaultTail
	case tail < 0:
		tail = 0
	}
	return &Sequencer{
		target:  target,
		wait:    wait,
		preset:  preset,
		lookup:  lookup,
		tail:    tail,
		onEvent: opts.OnEvent,
	}
}

// Run plays notes in order. It returns ctx.Err() when cancelled; a note that
// was switched on is always switched off first. The target lock is never held
// across a wait.
func (s *Sequencer) Run(ctx context.Context, notes []catalog.Note) error {
	for i, n := range notes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if n.DurationMs <= 0 {
			continue
		}
		freq := s.lookup(n.Name)
		if freq <= 0 {
			s.emit(Event{Kind: EventRest, Index: i, Note: n})
			if err := s.wait.Wait(ctx, time.Duration(n.DurationMs)*time.Millisecond); err != nil {
				return err
			}
			continue
		}

		params := NoteParams(s.preset, freq)
		s.target.ApplyParams(params)
		s.target.NoteOn()
		s.emit(Event{Kind: EventNoteOn, Index: i, Note: n, Frequency: freq, Params: params})

		sounding, release := Articulation(n.DurationMs)
		err := s.wait.Wait(ctx, sounding)
		s.target.NoteOff()
		s.emit(Event{Kind: EventNoteOff, Index: i, Note: n, Frequency: freq, Params: params})
		if err != nil {
			return err
		}
		if err := s.wait.Wait(ctx, release); err != nil {
			return err
		}
	}
	if s.tail > 0 {
		if err := s.wait.Wait(ctx, s.tail); err != nil {
			return err
		}
	}
	s.emit(Event{Kind: EventPlaybackEnded, Index: -1})
	return nil
}

func (s *Sequencer) emit(ev Event) {
	if s.onEvent != nil {
		s.onEvent(ev)
	}
}

// NoteParams transposes a preset stored at ReferencePitch to freq.
func NoteParams(preset fm.Params, freq float64) fm.Params {
	return preset.Scaled(freq / ReferencePitch)
}

// Articulation splits a note into the part held before note-off and the
// remainder left for the release. The split is fixed and does not depend on
// the envelope.
func Articulation(durationMs int) (sounding, release time.Duration) {
	if durationMs <= 0 {
		return 0, 0
	}
	on := durationMs * soundingPercent / 100
	return time.Duration(on) * time.Millisecond, time.Duration(durationMs-on) * time.Millisecond
}
