package catalog

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrMelodyNotFound = errors.New("melody not found")
)

// FindPreset resolves ref as a 1-based table index, then as a
// case-insensitive exact name.
func FindPreset(ref string) (Preset, error) {
	ref = strings.TrimSpace(ref)
	if i, ok := tableIndex(ref, len(presets)); ok {
		return presets[i], nil
	}
	for _, p := range presets {
		if strings.EqualFold(p.Name, ref) {
			return p, nil
		}
	}
	return Preset{}, ErrPresetNotFound
}

// FindMelody resolves ref as a 1-based table index, then as a
// case-insensitive substring of a melody name. The first match in table
// order wins. An empty ref matches nothing.
func FindMelody(ref string) (Melody, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Melody{}, ErrMelodyNotFound
	}
	if i, ok := tableIndex(ref, len(melodies)); ok {
		return melodies[i], nil
	}
	needle := strings.ToLower(ref)
	for _, m := range melodies {
		if strings.Contains(strings.ToLower(m.Name), needle) {
			return m, nil
		}
	}
	return Melody{}, ErrMelodyNotFound
}

// tableIndex parses a 1-based position. A numeric ref outside the table is
// not an index; it still falls through to name matching.
func tableIndex(ref string, n int) (int, bool) {
	num, err := strconv.Atoi(ref)
	if err != nil || num < 1 || num > n {
		return 0, false
	}
	return num - 1, true
}
