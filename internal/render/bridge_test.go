package render

import (
	"sync"
	"testing"

	"github.com/cbegin/fmsynth-go/internal/fm"
)

func newTestBridge() *Bridge {
	return NewBridge(fm.NewSynth(48000, fm.DefaultParams(), fm.DefaultEnvelope()))
}

func TestBridgeFillBufferSilentWhenIdle(t *testing.T) {
	b := newTestBridge()
	buf := make([]float32, 512)
	for i := range buf {
		buf[i] = 1
	}
	b.FillBuffer(buf)
	for i, s := range buf {
		if s != 0 {
			t.Fatalf("sample %d = %f, want 0", i, s)
		}
	}
}

func TestBridgeNoteOnVisibleToNextBuffer(t *testing.T) {
	b := newTestBridge()
	buf := make([]float32, 1024)
	b.FillBuffer(buf)
	b.NoteOn()
	if !b.Active() {
		t.Fatalf("bridge not active after NoteOn")
	}
	b.FillBuffer(buf)
	var energy float64
	for _, s := range buf {
		if s < 0 {
			energy -= float64(s)
		} else {
			energy += float64(s)
		}
	}
	if energy == 0 {
		t.Fatalf("expected signal in the buffer following NoteOn")
	}
	b.NoteOff()
}

func TestBridgeApplyParams(t *testing.T) {
	b := newTestBridge()
	p := fm.Params{CarrierFreq: 261.63, ModulatorFreq: 261.63, ModIndex: 7, Amplitude: 0.3}
	b.ApplyParams(p)
	if got := b.Params(); got != p {
		t.Fatalf("params = %+v, want %+v", got, p)
	}
}

// Exercises the lock discipline; run with -race.
func TestBridgeConcurrentRenderAndControl(t *testing.T) {
	b := newTestBridge()
	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		buf := make([]float32, 256)
		for {
			select {
			case <-stop:
				return
			default:
			}
			b.FillBuffer(buf)
			for i, s := range buf {
				if s > 1 || s < -1 {
					t.Errorf("sample %d = %f out of range", i, s)
					return
				}
			}
		}
	}()

	for i := 0; i < 2000; i++ {
		b.ApplyParams(fm.DefaultParams().Scaled(float64(i%12+1) / 6))
		b.NoteOn()
		b.NoteOff()
	}
	close(stop)
	wg.Wait()
}

func BenchmarkBridgeFillBuffer(b *testing.B) {
	br := newTestBridge()
	br.NoteOn()
	buf := make([]float32, 1024)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		br.FillBuffer(buf)
	}
}
