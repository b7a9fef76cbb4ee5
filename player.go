package fmsynth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	intaudio "github.com/cbegin/fmsynth-go/internal/audio"
	intcat "github.com/cbegin/fmsynth-go/internal/catalog"
	intfm "github.com/cbegin/fmsynth-go/internal/fm"
	intmidi "github.com/cbegin/fmsynth-go/internal/midiexport"
	intrender "github.com/cbegin/fmsynth-go/internal/render"
	intseq "github.com/cbegin/fmsynth-go/internal/sequencer"
)

var (
	ErrPresetNotFound          = intcat.ErrPresetNotFound
	ErrMelodyNotFound          = intcat.ErrMelodyNotFound
	ErrUnsupportedOutputFormat = intaudio.ErrUnsupportedOutputFormat
	ErrDeviceUnavailable       = intaudio.ErrDeviceUnavailable
)

const (
	DefaultSampleRate  = 48000
	streamPollInterval = 50 * time.Millisecond
)

// NoteEvent is reported for every note-on, note-off and rest, and once when a
// melody has finished including its release tail.
type NoteEvent = intseq.Event

const (
	EventNoteOn        = intseq.EventNoteOn
	EventNoteOff       = intseq.EventNoteOff
	EventRest          = intseq.EventRest
	EventPlaybackEnded = intseq.EventPlaybackEnded
)

type Option func(*playerConfig)

type playerConfig struct {
	sampleRate int
	backend    intaudio.Backend
	format     intaudio.Format
	bufferSize time.Duration
	envelope   intfm.EnvelopeConfig
	tail       time.Duration
	waiter     intseq.Waiter
	onEvent    func(NoteEvent)
	logger     *log.Logger
}

func defaultPlayerConfig() playerConfig {
	return playerConfig{
		sampleRate: DefaultSampleRate,
		backend:    intaudio.EbitenBackend{},
		format:     intaudio.FormatFloat32LE,
		envelope:   intfm.DefaultEnvelope(),
		tail:       intseq.DefaultTail,
		waiter:     intseq.SleepWaiter{},
	}
}

func WithSampleRate(sampleRate int) Option {
	return func(cfg *playerConfig) {
		cfg.sampleRate = sampleRate
	}
}

// WithBackend selects the audio output. See EbitenBackend, OtoBackend and
// NullBackend.
func WithBackend(backend intaudio.Backend) Option {
	return func(cfg *playerConfig) {
		cfg.backend = backend
	}
}

// WithFormat requests an output sample format. Only float32 is rendered;
// anything else fails with ErrUnsupportedOutputFormat when playback starts.
func WithFormat(format intaudio.Format) Option {
	return func(cfg *playerConfig) {
		cfg.format = format
	}
}

func WithBufferSize(d time.Duration) Option {
	return func(cfg *playerConfig) {
		cfg.bufferSize = d
	}
}

// WithEnvelope sets the ADSR used for every note of this player.
func WithEnvelope(attack, decay, sustain, release float64) Option {
	return func(cfg *playerConfig) {
		cfg.envelope = intfm.EnvelopeConfig{Attack: attack, Decay: decay, Sustain: sustain, Release: release}
	}
}

// WithTail sets the silence kept after the last note. It is never shorter
// than the envelope release.
func WithTail(d time.Duration) Option {
	return func(cfg *playerConfig) {
		cfg.tail = d
	}
}

// WithWaiter replaces the wall-clock sleep between sequencer steps.
func WithWaiter(w intseq.Waiter) Option {
	return func(cfg *playerConfig) {
		cfg.waiter = w
	}
}

// WithEventHook installs a callback invoked on the control goroutine for
// every sequencer event.
func WithEventHook(fn func(NoteEvent)) Option {
	return func(cfg *playerConfig) {
		cfg.onEvent = fn
	}
}

func WithLogger(l *log.Logger) Option {
	return func(cfg *playerConfig) {
		cfg.logger = l
	}
}

func EbitenBackend() intaudio.Backend { return intaudio.EbitenBackend{} }
func OtoBackend() intaudio.Backend    { return intaudio.OtoBackend{} }

// NullBackend renders in real time and discards the output.
func NullBackend() intaudio.Backend { return intaudio.HeadlessBackend{} }

func ParseFormat(s string) (intaudio.Format, error) { return intaudio.ParseFormat(s) }

// Player plays the compiled-in melodies with the compiled-in presets. Each
// playback builds a fresh voice and output stream and tears both down when
// the release tail is over. Playbacks on one Player are serialized.
type Player struct {
	mu  sync.Mutex
	cfg playerConfig
}

func NewPlayer(opts ...Option) (*Player, error) {
	cfg := defaultPlayerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sampleRate <= 0 {
		return nil, errors.New("sampleRate must be positive")
	}
	if err := cfg.envelope.Validate(); err != nil {
		return nil, err
	}
	if cfg.backend == nil {
		return nil, errors.New("no audio backend")
	}
	if cfg.waiter == nil {
		cfg.waiter = intseq.SleepWaiter{}
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard, "", 0)
	}
	release := time.Duration(cfg.envelope.Release * float64(time.Second))
	if cfg.tail < release {
		cfg.tail = release
	}
	return &Player{cfg: cfg}, nil
}

func (p *Player) SampleRate() int { return p.cfg.sampleRate }

func (p *Player) ListPresets() []string { return intcat.PresetNames() }

func (p *Player) ListMelodies() []string { return intcat.MelodyNames() }

// Play resolves both references before touching the audio backend, then
// plays the melody once and blocks until its release tail has finished.
// References are 1-based table indices or names: exact for presets,
// substring for melodies, both case-insensitive.
func (p *Player) Play(ctx context.Context, presetRef, melodyRef string) error {
	preset, err := intcat.FindPreset(presetRef)
	if err != nil {
		return fmt.Errorf("%w: %q", err, presetRef)
	}
	melody, err := intcat.FindMelody(melodyRef)
	if err != nil {
		return fmt.Errorf("%w: %q", err, melodyRef)
	}
	p.cfg.logger.Printf("playing %q with %q", melody.Name, preset.Name)
	return p.playNotes(ctx, preset.Params, melody.Notes)
}

// Demo plays the reference scale once with every preset, in table order.
// onPreset, if not nil, is called before each preset starts.
func (p *Player) Demo(ctx context.Context, onPreset func(index int, name string)) error {
	for i, preset := range intcat.Presets() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if onPreset != nil {
			onPreset(i, preset.Name)
		}
		p.cfg.logger.Printf("demo preset %d: %s", i+1, preset.Name)
		if err := p.playNotes(ctx, preset.Params, intcat.DemoScale); err != nil {
			return err
		}
	}
	return nil
}

// ExportMIDI writes the referenced melody as a Standard MIDI File.
func (p *Player) ExportMIDI(w io.Writer, melodyRef string) error {
	melody, err := intcat.FindMelody(melodyRef)
	if err != nil {
		return fmt.Errorf("%w: %q", err, melodyRef)
	}
	return intmidi.Write(w, melody.Notes, intmidi.Options{TrackName: melody.Name})
}

func (p *Player) playNotes(ctx context.Context, preset intfm.Params, notes []intcat.Note) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	synth := intfm.NewSynth(p.cfg.sampleRate, preset, p.cfg.envelope)
	bridge := intrender.NewBridge(synth)
	stream, err := p.cfg.backend.Open(intaudio.Config{
		SampleRate: p.cfg.sampleRate,
		Format:     p.cfg.format,
		BufferSize: p.cfg.bufferSize,
	}, bridge)
	if err != nil {
		return err
	}
	p.cfg.logger.Printf("%s stream opened at %d Hz", p.cfg.backend.Name(), p.cfg.sampleRate)
	defer func() {
		if err := stream.Close(); err != nil {
			p.cfg.logger.Printf("error while closing stream: %v", err)
		}
		p.cfg.logger.Printf("%s stream closed", p.cfg.backend.Name())
	}()
	stream.Play()

	seq := intseq.NewWithOptions(bridge, p.cfg.waiter, preset, intseq.Options{
		Tail:    p.cfg.tail,
		OnEvent: p.cfg.onEvent,
	})

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		return seq.Run(gctx, notes)
	})
	g.Go(func() error {
		return watchStream(gctx, done, stream)
	})
	return g.Wait()
}

// watchStream polls the backend for asynchronous playback failures until the
// sequencer is done. A failure cancels the sequencer.
func watchStream(ctx context.Context, done <-chan struct{}, stream intaudio.Stream) error {
	ticker := time.NewTicker(streamPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := stream.Err(); err != nil {
				return fmt.Errorf("audio stream: %w", err)
			}
		}
	}
}
