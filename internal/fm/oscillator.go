package fm

import "math"

const twoPi = math.Pi * 2

// Params is the parameter set of one FM voice. It is a value type and is
// always replaced as a whole.
type Params struct {
	CarrierFreq   float64 // Hz
	ModulatorFreq float64 // Hz
	ModIndex      float64 // depth, as a fraction of the carrier frequency
	Amplitude     float64 // 0-1
}

func DefaultParams() Params {
	return Params{
		CarrierFreq:   440,
		ModulatorFreq: 220,
		ModIndex:      2.0,
		Amplitude:     0.3,
	}
}

// Scaled returns a copy with both oscillator frequencies multiplied by ratio.
func (p Params) Scaled(ratio float64) Params {
	p.CarrierFreq *= ratio
	p.ModulatorFreq *= ratio
	return p
}

// Oscillator is a two-operator phase accumulator: the modulator bends the
// instantaneous frequency of the carrier.
type Oscillator struct {
	sampleRate     float64
	params         Params
	carrierPhase   float64 // [0, 1)
	modulatorPhase float64 // [0, 1)
}

func NewOscillator(sampleRate int, params Params) *Oscillator {
	if sampleRate <= 0 {
		sampleRate = 48000
	}
	return &Oscillator{
		sampleRate: float64(sampleRate),
		params:     params,
	}
}

// Advance renders one sample in [-Amplitude, Amplitude] and steps both phases.
func (o *Oscillator) Advance() float64 {
	p := &o.params
	mod := math.Sin(twoPi * o.modulatorPhase)
	instFreq := p.CarrierFreq * (1 + p.ModIndex*mod)
	carrier := math.Sin(twoPi * o.carrierPhase)

	o.carrierPhase = wrapPhase(o.carrierPhase + instFreq/o.sampleRate)
	o.modulatorPhase = wrapPhase(o.modulatorPhase + p.ModulatorFreq/o.sampleRate)

	return carrier * p.Amplitude
}

// SetParams swaps the parameter set. Phases are kept as they are, so a change
// mid-note is continuous in phase but jumps in frequency and amplitude.
func (o *Oscillator) SetParams(params Params) {
	o.params = params
}

func (o *Oscillator) Params() Params {
	return o.params
}

func (o *Oscillator) SampleRate() int {
	return int(o.sampleRate)
}

// Phases returns the normalized carrier and modulator phases.
func (o *Oscillator) Phases() (carrier, modulator float64) {
	return o.carrierPhase, o.modulatorPhase
}

// wrapPhase folds p back into [0, 1). One step covers every per-sample
// increment below the sample rate; larger jumps fall back to floor.
func wrapPhase(p float64) float64 {
	if p >= 1 {
		p--
	} else if p < 0 {
		// instantaneous frequency goes negative when ModIndex > 1
		p++
	}
	if p < 0 || p >= 1 {
		p -= math.Floor(p)
		if p >= 1 {
			p = 0
		}
	}
	return p
}
