package audio

import (
	"sync"
	"time"
)

// HeadlessBackend pulls buffers on a wall-clock ticker and discards them.
// It keeps the render path running without a device (CI, -backend null).
type HeadlessBackend struct {
	// BufferFrames is the number of samples pulled per tick; 0 means 512.
	BufferFrames int
	// Tap, if set, sees every rendered buffer on the render goroutine.
	Tap func([]float32)
}

func (HeadlessBackend) Name() string { return "null" }

func (b HeadlessBackend) Open(cfg Config, source SampleSource) (Stream, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	frames := b.BufferFrames
	if frames <= 0 {
		frames = 512
	}
	period := time.Duration(float64(time.Second) * float64(frames) / float64(cfg.SampleRate))
	if period <= 0 {
		period = time.Millisecond
	}
	return &headlessStream{
		source: source,
		buf:    make([]float32, frames),
		period: period,
		tap:    b.Tap,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}, nil
}

type headlessStream struct {
	source SampleSource
	buf    []float32
	period time.Duration
	tap    func([]float32)

	mu      sync.Mutex
	started bool
	closed  bool
	stop    chan struct{}
	done    chan struct{}
}

func (s *headlessStream) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.closed {
		return
	}
	s.started = true
	go s.run()
}

func (s *headlessStream) run() {
	defer close(s.done)
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.source.Process(s.buf)
			if s.tap != nil {
				s.tap(s.buf)
			}
		}
	}
}

func (s *headlessStream) Err() error { return nil }

func (s *headlessStream) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	started := s.started
	close(s.stop)
	s.mu.Unlock()
	if started {
		<-s.done
	}
	return nil
}
