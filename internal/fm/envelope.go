package fm

import (
	"errors"
	"fmt"
)

// EnvelopeConfig holds ADSR timings in seconds and the sustain level.
type EnvelopeConfig struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

func DefaultEnvelope() EnvelopeConfig {
	return EnvelopeConfig{
		Attack:  0.01,
		Decay:   0.1,
		Sustain: 0.7,
		Release: 0.5,
	}
}

func (c EnvelopeConfig) Validate() error {
	if c.Attack < 0 || c.Decay < 0 || c.Release < 0 {
		return errors.New("envelope timings must not be negative")
	}
	if c.Sustain < 0 || c.Sustain > 1 {
		return fmt.Errorf("envelope sustain %v out of range [0,1]", c.Sustain)
	}
	return nil
}

type EnvState int

const (
	EnvIdle EnvState = iota
	EnvAttack
	EnvDecay
	EnvSustain
	EnvRelease
)

func (s EnvState) String() string {
	switch s {
	case EnvIdle:
		return "idle"
	case EnvAttack:
		return "attack"
	case EnvDecay:
		return "decay"
	case EnvSustain:
		return "sustain"
	case EnvRelease:
		return "release"
	}
	return fmt.Sprintf("EnvState(%d)", int(s))
}

// Envelope is a time-driven ADSR. Each segment is a linear function of the
// time spent in it; Process must be called once per rendered sample.
type Envelope struct {
	cfg     EnvelopeConfig
	dt      float64
	state   EnvState
	level   float64
	elapsed float64
}

func NewEnvelope(sampleRate int, cfg EnvelopeConfig) *Envelope {
	if sampleRate <= 0 {
		sampleRate = 48000
	}
	return &Envelope{
		cfg: cfg,
		dt:  1 / float64(sampleRate),
	}
}

// Trigger restarts the attack from zero elapsed time, whatever the current
// state. The level in progress is abandoned.
func (e *Envelope) Trigger() {
	e.state = EnvAttack
	e.elapsed = 0
}

// Release starts the release segment. No-op while idle.
func (e *Envelope) Release() {
	if e.state == EnvIdle {
		return
	}
	e.state = EnvRelease
	e.elapsed = 0
}

// Process evaluates the level for the current state at the current elapsed
// time, performs any due transition and then advances time by one sample.
func (e *Envelope) Process() float64 {
	c := &e.cfg
	switch e.state {
	case EnvIdle:
		e.level = 0
	case EnvAttack:
		if c.Attack <= 0 {
			e.level = 1
		} else {
			e.level = e.elapsed / c.Attack
		}
		if e.elapsed >= c.Attack {
			e.state = EnvDecay
			e.elapsed = 0
		}
	case EnvDecay:
		if c.Decay <= 0 {
			e.level = c.Sustain
		} else {
			e.level = 1 - (1-c.Sustain)*(e.elapsed/c.Decay)
		}
		if e.elapsed >= c.Decay {
			e.state = EnvSustain
			e.elapsed = 0
		}
	case EnvSustain:
		e.level = c.Sustain
	case EnvRelease:
		if c.Release <= 0 {
			e.level = 0
		} else {
			e.level = c.Sustain * (1 - e.elapsed/c.Release)
		}
		if e.elapsed >= c.Release {
			e.state = EnvIdle
			e.level = 0
		}
	}
	e.level = clamp(e.level, 0, 1)
	e.elapsed += e.dt
	return e.level
}

func (e *Envelope) State() EnvState        { return e.state }
func (e *Envelope) Level() float64         { return e.level }
func (e *Envelope) Elapsed() float64       { return e.elapsed }
func (e *Envelope) Config() EnvelopeConfig { return e.cfg }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
