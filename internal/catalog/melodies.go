package catalog

// Note is one melody step. Name is resolved with NoteFrequency; unknown names
// and "REST" are silent.
type Note struct {
	Name       string
	DurationMs int
}

type Melody struct {
	Name  string
	Notes []Note
}

var melodies = []Melody{
	{"Twinkle Twinkle", []Note{
		{"C4", 500}, {"C4", 500}, {"G4", 500}, {"G4", 500},
		{"A4", 500}, {"A4", 500}, {"G4", 1000},
		{"F4", 500}, {"F4", 500}, {"E4", 500}, {"E4", 500},
		{"D4", 500}, {"D4", 500}, {"C4", 1000},
	}},
	{"Happy Birthday", []Note{
		{"C4", 250}, {"C4", 250}, {"D4", 500}, {"C4", 500},
		{"F4", 500}, {"E4", 1000},
		{"C4", 250}, {"C4", 250}, {"D4", 500}, {"C4", 500},
		{"G4", 500}, {"F4", 1000},
	}},
	{"Ode to Joy", []Note{
		{"E4", 500}, {"E4", 500}, {"F4", 500}, {"G4", 500},
		{"G4", 500}, {"F4", 500}, {"E4", 500}, {"D4", 500},
		{"C4", 500}, {"C4", 500}, {"D4", 500}, {"E4", 500},
		{"E4", 750}, {"D4", 250}, {"D4", 1000},
	}},
	{"Mary Had a Little Lamb", []Note{
		{"E4", 500}, {"D4", 500}, {"C4", 500}, {"D4", 500},
		{"E4", 500}, {"E4", 500}, {"E4", 1000},
		{"D4", 500}, {"D4", 500}, {"D4", 1000},
		{"E4", 500}, {"G4", 500}, {"G4", 1000},
	}},
	{"Chromatic Scale", []Note{
		{"C4", 200}, {"C#4", 200}, {"D4", 200}, {"D#4", 200},
		{"E4", 200}, {"F4", 200}, {"F#4", 200}, {"G4", 200},
		{"G#4", 200}, {"A4", 200}, {"A#4", 200}, {"B4", 200},
		{"C5", 400},
	}},
	{"Major Arpeggio", []Note{
		{"C4", 300}, {"E4", 300}, {"G4", 300}, {"C5", 300},
		{"G4", 300}, {"E4", 300}, {"C4", 600},
	}},
	{"Minor Pentatonic", []Note{
		{"A3", 400}, {"C4", 400}, {"D4", 400}, {"E4", 400},
		{"G4", 400}, {"A4", 400}, {"G4", 400}, {"E4", 400},
		{"D4", 400}, {"C4", 400}, {"A3", 800},
	}},
	{"Jazz Lick", []Note{
		{"C4", 200}, {"E4", 200}, {"G4", 200}, {"A#4", 200},
		{"A4", 400}, {"F4", 200}, {"D4", 400},
		{"G4", 200}, {"E4", 200}, {"C4", 600},
	}},
	{"Bach Invention", []Note{
		{"C4", 200}, {"D4", 200}, {"E4", 200}, {"F4", 200},
		{"D4", 200}, {"E4", 200}, {"C4", 400},
		{"G4", 200}, {"F4", 200}, {"E4", 200}, {"D4", 200},
		{"B3", 200}, {"C4", 600},
	}},
	{"Synth Demo", []Note{
		{"C4", 150}, {"E4", 150}, {"G4", 150}, {"C5", 150},
		{"E5", 150}, {"G5", 150}, {"E5", 150}, {"C5", 150},
		{"G4", 150}, {"E4", 150}, {"C4", 300},
		{"REST", 300},
		{"F4", 150}, {"A4", 150}, {"C5", 150}, {"F5", 150},
		{"C5", 150}, {"A4", 150}, {"F4", 300},
	}},
}

// DemoScale is played once per preset by the demo.
var DemoScale = []Note{
	{"C4", 300}, {"D4", 300}, {"E4", 300}, {"F4", 300},
	{"G4", 300}, {"A4", 300}, {"B4", 300}, {"C5", 600},
}

// Melodies returns the melody table in display order. Note slices are shared
// with the table and must not be modified.
func Melodies() []Melody {
	return append([]Melody(nil), melodies...)
}

func MelodyNames() []string {
	names := make([]string, len(melodies))
	for i, m := range melodies {
		names[i] = m.Name
	}
	return names
}

// TotalDuration is the sum of all note durations, rests included.
func (m Melody) TotalDuration() int {
	total := 0
	for _, n := range m.Notes {
		total += n.DurationMs
	}
	return total
}
