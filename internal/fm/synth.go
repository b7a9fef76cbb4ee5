package fm

// Synth is a single monophonic voice: one Oscillator shaped by one Envelope.
// It is not safe for concurrent use; share it through render.Bridge.
type Synth struct {
	osc *Oscillator
	env *Envelope
}

func NewSynth(sampleRate int, params Params, env EnvelopeConfig) *Synth {
	return &Synth{
		osc: NewOscillator(sampleRate, params),
		env: NewEnvelope(sampleRate, env),
	}
}

func (s *Synth) NextSample() float64 {
	return s.osc.Advance() * s.env.Process()
}

func (s *Synth) NoteOn()  { s.env.Trigger() }
func (s *Synth) NoteOff() { s.env.Release() }

// SetParams only touches the oscillator; envelope timings are fixed at
// construction.
func (s *Synth) SetParams(params Params) {
	s.osc.SetParams(params)
}

func (s *Synth) Params() Params { return s.osc.Params() }

// Active reports whether the envelope is anywhere but idle, i.e. whether the
// voice can still produce sound.
func (s *Synth) Active() bool {
	return s.env.State() != EnvIdle
}

func (s *Synth) EnvelopeState() EnvState { return s.env.State() }
func (s *Synth) SampleRate() int         { return s.osc.SampleRate() }
