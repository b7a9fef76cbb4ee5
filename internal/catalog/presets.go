package catalog

import "github.com/cbegin/fmsynth-go/internal/fm"

type Preset struct {
	Name   string
	Params fm.Params
}

// Stored frequencies are relative to a 440 Hz reference pitch.
var presets = []Preset{
	{"Bell", fm.Params{CarrierFreq: 440, ModulatorFreq: 440, ModIndex: 7.0, Amplitude: 0.3}},
	{"Bass", fm.Params{CarrierFreq: 110, ModulatorFreq: 110, ModIndex: 1.5, Amplitude: 0.5}},
	{"Electric Piano", fm.Params{CarrierFreq: 440, ModulatorFreq: 880, ModIndex: 3.0, Amplitude: 0.4}},
	{"Brass", fm.Params{CarrierFreq: 440, ModulatorFreq: 440, ModIndex: 2.5, Amplitude: 0.4}},
	{"Organ", fm.Params{CarrierFreq: 440, ModulatorFreq: 880, ModIndex: 1.0, Amplitude: 0.4}},
	{"Synth Lead", fm.Params{CarrierFreq: 440, ModulatorFreq: 1320, ModIndex: 4.0, Amplitude: 0.35}},
	{"Marimba", fm.Params{CarrierFreq: 440, ModulatorFreq: 440, ModIndex: 3.5, Amplitude: 0.4}},
	{"Strings", fm.Params{CarrierFreq: 440, ModulatorFreq: 220, ModIndex: 0.8, Amplitude: 0.3}},
	{"Flute", fm.Params{CarrierFreq: 440, ModulatorFreq: 440, ModIndex: 0.5, Amplitude: 0.25}},
	{"Metallic", fm.Params{CarrierFreq: 440, ModulatorFreq: 567, ModIndex: 9.0, Amplitude: 0.3}},
	{"Glockenspiel", fm.Params{CarrierFreq: 440, ModulatorFreq: 1760, ModIndex: 2.5, Amplitude: 0.3}},
	{"Wood Block", fm.Params{CarrierFreq: 440, ModulatorFreq: 300, ModIndex: 12.0, Amplitude: 0.4}},
}

// Presets returns the preset table in display order.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}
