package fmsynth

import (
	"context"
	"fmt"
	"time"

	intcat "github.com/cbegin/fmsynth-go/internal/catalog"
	intfm "github.com/cbegin/fmsynth-go/internal/fm"
	intrender "github.com/cbegin/fmsynth-go/internal/render"
	intseq "github.com/cbegin/fmsynth-go/internal/sequencer"
)

// Render plays the referenced melody into memory instead of a device, using
// this player's sample rate, envelope and tail. The result is mono.
func (p *Player) Render(presetRef, melodyRef string) ([]float32, error) {
	preset, err := intcat.FindPreset(presetRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, presetRef)
	}
	melody, err := intcat.FindMelody(melodyRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, melodyRef)
	}
	return renderNotes(preset.Params, melody.Notes, p.cfg.sampleRate, p.cfg.envelope, p.cfg.tail), nil
}

// RenderMelody is Render with the default envelope and tail.
func RenderMelody(presetRef, melodyRef string, sampleRate int) ([]float32, error) {
	p, err := NewPlayer(WithSampleRate(sampleRate), WithBackend(NullBackend()))
	if err != nil {
		return nil, err
	}
	return p.Render(presetRef, melodyRef)
}

// renderNotes drives the same sequencer used for live playback, but every
// wait renders the elapsed time into the output instead of sleeping.
func renderNotes(preset intfm.Params, notes []intcat.Note, sampleRate int, env intfm.EnvelopeConfig, tail time.Duration) []float32 {
	bridge := intrender.NewBridge(intfm.NewSynth(sampleRate, preset, env))
	var out []float32
	var carry float64
	wait := intseq.WaiterFunc(func(_ context.Context, d time.Duration) error {
		exact := d.Seconds()*float64(sampleRate) + carry
		n := int(exact)
		carry = exact - float64(n)
		start := len(out)
		out = append(out, make([]float32, n)...)
		bridge.FillBuffer(out[start:])
		return nil
	})
	seq := intseq.NewWithOptions(bridge, wait, preset, intseq.Options{Tail: tail})
	_ = seq.Run(context.Background(), notes)
	return out
}
