package catalog

import (
	"errors"
	"testing"
)

func TestNoteFrequencyKnownNames(t *testing.T) {
	for _, tc := range []struct {
		name string
		want float64
	}{
		{"C3", 130.81},
		{"A#3", 233.08},
		{"C4", 261.63},
		{"A4", 440.00},
		{"B4", 493.88},
		{"G#5", 830.61},
		{"A5", 880.00},
	} {
		if got := NoteFrequency(tc.name); got != tc.want {
			t.Errorf("NoteFrequency(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestNoteFrequencyTableIsChromatic(t *testing.T) {
	names := []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	prev := 0.0
	count := 0
	for _, oct := range []string{"3", "4", "5"} {
		for _, n := range names {
			name := n + oct
			if oct == "5" && (n == "A#" || n == "B") {
				continue
			}
			f := NoteFrequency(name)
			if f <= prev {
				t.Fatalf("%s = %v not above previous %v", name, f, prev)
			}
			prev = f
			count++
		}
	}
	if count != NoteCount() {
		t.Fatalf("walked %d names, table has %d", count, NoteCount())
	}
}

func TestNoteFrequencyUnknownIsSilent(t *testing.T) {
	for _, name := range []string{Rest, "", "rest", "c4", "H4", "A#5", "B5", "C6", "C2", "Db4"} {
		if got := NoteFrequency(name); got != 0 {
			t.Errorf("NoteFrequency(%q) = %v, want 0", name, got)
		}
	}
}

func TestFindPreset(t *testing.T) {
	for _, tc := range []struct {
		ref  string
		want string
		err  error
	}{
		{"1", "Bell", nil},
		{"2", "Bass", nil},
		{"12", "Wood Block", nil},
		{"bell", "Bell", nil},
		{"ELECTRIC PIANO", "Electric Piano", nil},
		{" organ ", "Organ", nil},
		{"0", "", ErrPresetNotFound},
		{"13", "", ErrPresetNotFound},
		{"-1", "", ErrPresetNotFound},
		{"bel", "", ErrPresetNotFound},
		{"nonexistent", "", ErrPresetNotFound},
		{"", "", ErrPresetNotFound},
	} {
		t.Run(tc.ref, func(t *testing.T) {
			p, err := FindPreset(tc.ref)
			if !errors.Is(err, tc.err) {
				t.Fatalf("err = %v, want %v", err, tc.err)
			}
			if p.Name != tc.want {
				t.Fatalf("preset = %q, want %q", p.Name, tc.want)
			}
		})
	}
}

func TestFindMelody(t *testing.T) {
	for _, tc := range []struct {
		ref  string
		want string
		err  error
	}{
		{"1", "Twinkle Twinkle", nil},
		{"2", "Happy Birthday", nil},
		{"10", "Synth Demo", nil},
		{"twinkle", "Twinkle Twinkle", nil},
		{"Twinkle Twinkle", "Twinkle Twinkle", nil},
		{"JOY", "Ode to Joy", nil},
		{"little lamb", "Mary Had a Little Lamb", nil},
		{"a", "Happy Birthday", nil},
		{"0", "", ErrMelodyNotFound},
		{"11", "", ErrMelodyNotFound},
		{"Bell", "", ErrMelodyNotFound},
		{"", "", ErrMelodyNotFound},
	} {
		t.Run(tc.ref, func(t *testing.T) {
			m, err := FindMelody(tc.ref)
			if !errors.Is(err, tc.err) {
				t.Fatalf("err = %v, want %v", err, tc.err)
			}
			if m.Name != tc.want {
				t.Fatalf("melody = %q, want %q", m.Name, tc.want)
			}
		})
	}
}

func TestTablesOrderAndShape(t *testing.T) {
	presetNames := PresetNames()
	if len(presetNames) != 12 || presetNames[0] != "Bell" || presetNames[11] != "Wood Block" {
		t.Fatalf("unexpected preset table: %v", presetNames)
	}
	melodyNames := MelodyNames()
	if len(melodyNames) != 10 || melodyNames[0] != "Twinkle Twinkle" || melodyNames[9] != "Synth Demo" {
		t.Fatalf("unexpected melody table: %v", melodyNames)
	}
	for _, m := range Melodies() {
		if len(m.Notes) == 0 {
			t.Errorf("melody %q is empty", m.Name)
		}
		for i, n := range m.Notes {
			if n.DurationMs <= 0 {
				t.Errorf("melody %q note %d has duration %d", m.Name, i, n.DurationMs)
			}
			if n.Name != Rest && NoteFrequency(n.Name) == 0 {
				t.Errorf("melody %q note %d uses unknown name %q", m.Name, i, n.Name)
			}
		}
	}
	for _, p := range Presets() {
		if p.Params.CarrierFreq <= 0 || p.Params.Amplitude < 0 || p.Params.Amplitude > 1 {
			t.Errorf("preset %q has invalid params %+v", p.Name, p.Params)
		}
	}
}

func TestPresetsReturnsCopy(t *testing.T) {
	ps := Presets()
	ps[0].Name = "changed"
	if PresetNames()[0] != "Bell" {
		t.Fatalf("Presets exposed the backing table")
	}
}

func TestMelodyTotalDuration(t *testing.T) {
	m, err := FindMelody("synth demo")
	if err != nil {
		t.Fatal(err)
	}
	if got := m.TotalDuration(); got != 3300 {
		t.Fatalf("total = %d, want 3300", got)
	}
}
