package fm

import (
	"math"
	"testing"
)

func TestSynthSilentUntilNoteOn(t *testing.T) {
	s := NewSynth(48000, DefaultParams(), DefaultEnvelope())
	for i := 0; i < 1000; i++ {
		if v := s.NextSample(); v != 0 {
			t.Fatalf("sample %d = %f before note-on", i, v)
		}
	}
	if s.Active() {
		t.Fatalf("synth active before note-on")
	}
}

func TestSynthGeneratesSignal(t *testing.T) {
	s := NewSynth(48000, DefaultParams(), DefaultEnvelope())
	s.NoteOn()
	if !s.Active() {
		t.Fatalf("synth not active after note-on")
	}
	var maxAbs float64
	for i := 0; i < 5000; i++ {
		if a := math.Abs(s.NextSample()); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs < 0.05 {
		t.Fatalf("expected audible output, peak %f", maxAbs)
	}
	if maxAbs > DefaultParams().Amplitude {
		t.Fatalf("peak %f above amplitude", maxAbs)
	}
}

func TestSynthNoteOffDecaysToSilence(t *testing.T) {
	cfg := DefaultEnvelope()
	s := NewSynth(48000, DefaultParams(), cfg)
	s.NoteOn()
	for i := 0; i < 48000/4; i++ {
		s.NextSample()
	}
	s.NoteOff()
	if s.EnvelopeState() != EnvRelease {
		t.Fatalf("state after note-off = %v", s.EnvelopeState())
	}
	for i := 0; i < int(cfg.Release*48000)+2; i++ {
		s.NextSample()
	}
	if s.Active() {
		t.Fatalf("synth still active after release")
	}
	if v := s.NextSample(); v != 0 {
		t.Fatalf("sample after release = %f", v)
	}
}

func TestSynthSetParamsLeavesEnvelope(t *testing.T) {
	s := NewSynth(48000, DefaultParams(), DefaultEnvelope())
	s.NoteOn()
	for i := 0; i < 100; i++ {
		s.NextSample()
	}
	s.SetParams(Params{CarrierFreq: 220, ModulatorFreq: 220, ModIndex: 1, Amplitude: 0.2})
	if s.EnvelopeState() != EnvAttack {
		t.Fatalf("SetParams changed envelope state to %v", s.EnvelopeState())
	}
	if got := s.Params().CarrierFreq; got != 220 {
		t.Fatalf("carrier = %f, want 220", got)
	}
}
