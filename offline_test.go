package fmsynth

import (
	"errors"
	"math"
	"testing"

	intcat "github.com/cbegin/fmsynth-go/internal/catalog"
)

func TestRenderMelodyLengthAndTail(t *testing.T) {
	const sr = 48000
	samples, err := RenderMelody("Bell", "Twinkle", sr)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	melody, _ := intcat.FindMelody("Twinkle")
	wantLen := (melody.TotalDuration() + 500) * sr / 1000
	if len(samples) != wantLen {
		t.Fatalf("len = %d, want %d", len(samples), wantLen)
	}
	var peak float64
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(float64(s)))
	}
	if peak == 0 {
		t.Fatalf("render is silent")
	}
	if peak > 0.3+1e-6 {
		t.Fatalf("peak %f exceeds preset amplitude", peak)
	}
	// The last note is released 200 ms before the end and the release is
	// 500 ms, so the final 100 ms must be silent.
	for i := len(samples) - sr/10; i < len(samples); i++ {
		if samples[i] != 0 {
			t.Fatalf("sample %d = %f after release finished", i, samples[i])
		}
	}
}

func TestRenderMatchesAcrossRuns(t *testing.T) {
	a, err := RenderMelody("Metallic", "chromatic", 22050)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := RenderMelody("Metallic", "chromatic", 22050)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs", i)
		}
	}
}

func TestRenderUsesPlayerEnvelope(t *testing.T) {
	p, err := NewPlayer(WithSampleRate(8000), WithBackend(NullBackend()), WithEnvelope(0, 0, 1, 0.05))
	if err != nil {
		t.Fatal(err)
	}
	samples, err := p.Render("Flute", "twinkle")
	if err != nil {
		t.Fatal(err)
	}
	melody, _ := intcat.FindMelody("twinkle")
	// Tail is raised to the 50 ms release only when shorter; default 500 ms stays.
	if want := (melody.TotalDuration() + 500) * 8000 / 1000; len(samples) != want {
		t.Fatalf("len = %d, want %d", len(samples), want)
	}
}

func TestRenderUnknownReferences(t *testing.T) {
	if _, err := RenderMelody("nope", "twinkle", 48000); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("err = %v, want ErrPresetNotFound", err)
	}
	if _, err := RenderMelody("Bell", "nope", 48000); !errors.Is(err, ErrMelodyNotFound) {
		t.Fatalf("err = %v, want ErrMelodyNotFound", err)
	}
}
