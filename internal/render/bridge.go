package render

import (
	"sync"

	"github.com/cbegin/fmsynth-go/internal/fm"
)

// Bridge gives the audio callback and the control path exclusive, short
// access to one Synth. Every method holds the lock for a bounded amount of
// work and never blocks on anything else.
type Bridge struct {
	mu    sync.Mutex
	synth *fm.Synth
}

func NewBridge(synth *fm.Synth) *Bridge {
	return &Bridge{synth: synth}
}

// FillBuffer renders len(dst) mono samples under a single lock acquisition.
// It does not allocate.
func (b *Bridge) FillBuffer(dst []float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range dst {
		dst[i] = float32(b.synth.NextSample())
	}
}

// Process implements audio.SampleSource.
func (b *Bridge) Process(dst []float32) {
	b.FillBuffer(dst)
}

func (b *Bridge) ApplyParams(params fm.Params) {
	b.mu.Lock()
	b.synth.SetParams(params)
	b.mu.Unlock()
}

func (b *Bridge) NoteOn() {
	b.mu.Lock()
	b.synth.NoteOn()
	b.mu.Unlock()
}

func (b *Bridge) NoteOff() {
	b.mu.Lock()
	b.synth.NoteOff()
	b.mu.Unlock()
}

// Active reports whether the voice is still sounding (including its release tail).
func (b *Bridge) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.synth.Active()
}

func (b *Bridge) Params() fm.Params {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.synth.Params()
}
