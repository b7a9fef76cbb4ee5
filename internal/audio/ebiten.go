package audio

import (
	"fmt"
	"sync"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	audioContextOnce sync.Once
	audioContext     *ebitaudio.Context
	audioSampleRate  int
)

// ebiten allows one audio context per process.
func sharedAudioContext(sampleRate int) (*ebitaudio.Context, error) {
	audioContextOnce.Do(func() {
		audioSampleRate = sampleRate
		audioContext = ebitaudio.NewContext(sampleRate)
	})
	if audioSampleRate != sampleRate {
		return nil, fmt.Errorf("audio context already initialized at %d Hz (requested %d Hz)", audioSampleRate, sampleRate)
	}
	return audioContext, nil
}

// EbitenBackend plays through ebiten's stereo float32 audio context. The mono
// voice is copied to both channels.
type EbitenBackend struct{}

func (EbitenBackend) Name() string { return "ebiten" }

func (EbitenBackend) Open(cfg Config, source SampleSource) (Stream, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	ctx, err := sharedAudioContext(cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	reader := NewStreamReader(source, 2)
	pl, err := ctx.NewPlayerF32(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	if cfg.BufferSize > 0 {
		pl.SetBufferSize(cfg.BufferSize)
	}
	return &ebitenStream{player: pl, reader: reader}, nil
}

type ebitenStream struct {
	player *ebitaudio.Player
	reader *StreamReader
}

func (s *ebitenStream) Play() { s.player.Play() }

// Err is always nil: ebiten surfaces driver failures through its own context.
func (s *ebitenStream) Err() error { return nil }

func (s *ebitenStream) Close() error {
	s.player.Pause()
	s.player.Close()
	return s.reader.Close()
}
