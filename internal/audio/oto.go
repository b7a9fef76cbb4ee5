package audio

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

var (
	otoContextOnce sync.Once
	otoContext     *oto.Context
	otoContextErr  error
	otoSampleRate  int
)

// oto permits a single context per process; the first Open decides its rate.
func sharedOtoContext(cfg Config) (*oto.Context, error) {
	otoContextOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   cfg.SampleRate,
			ChannelCount: 1,
			Format:       oto.FormatFloat32LE,
			BufferSize:   cfg.BufferSize,
		}
		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			otoContextErr = err
			return
		}
		<-ready
		otoContext = ctx
		otoSampleRate = cfg.SampleRate
	})
	if otoContextErr != nil {
		return nil, otoContextErr
	}
	if otoSampleRate != cfg.SampleRate {
		return nil, fmt.Errorf("oto context already initialized at %d Hz (requested %d Hz)", otoSampleRate, cfg.SampleRate)
	}
	return otoContext, nil
}

// OtoBackend plays through a mono float32 oto context.
type OtoBackend struct{}

func (OtoBackend) Name() string { return "oto" }

func (OtoBackend) Open(cfg Config, source SampleSource) (Stream, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	ctx, err := sharedOtoContext(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	reader := NewStreamReader(source, 1)
	return &otoStream{player: ctx.NewPlayer(reader)}, nil
}

type otoStream struct {
	player *oto.Player
}

func (s *otoStream) Play()      { s.player.Play() }
func (s *otoStream) Err() error { return s.player.Err() }

func (s *otoStream) Close() error {
	s.player.Pause()
	return s.player.Close()
}
