package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/cbegin/fmsynth-go"
	"github.com/cbegin/fmsynth-go/internal/catalog"
)

type repl struct {
	player *fmsynth.Player
	out    io.Writer
	// commandContext scopes one command; Ctrl-C cancels it.
	commandContext func() (context.Context, context.CancelFunc)
}

func newREPL(pl *fmsynth.Player, out io.Writer) *repl {
	return &repl{
		player: pl,
		out:    out,
		commandContext: func() (context.Context, context.CancelFunc) {
			return signal.NotifyContext(context.Background(), os.Interrupt)
		},
	}
}

// run prints the menu and executes commands until quit or end of input.
func (r *repl) run(in lineReader) error {
	r.printMenu()
	for {
		line, err := in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "Goodbye!")
				return nil
			}
			return err
		}
		if r.exec(line) {
			return nil
		}
	}
}

// exec runs one command line and reports whether the session should end.
func (r *repl) exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	switch strings.ToLower(parts[0]) {
	case "list":
		r.list(parts[1:])
	case "play":
		r.play(parts[1:])
	case "demo":
		r.demo()
	case "export":
		r.export(parts[1:])
	case "help":
		r.printMenu()
	case "quit", "exit":
		fmt.Fprintln(r.out, "Goodbye!")
		return true
	default:
		fmt.Fprintln(r.out, "Unknown command. Type 'help' for available commands.")
	}
	return false
}

func (r *repl) printMenu() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "=== FM Synthesizer CLI ===")
	fmt.Fprintln(r.out, "Commands:")
	fmt.Fprintln(r.out, "  list presets  - Show all available presets")
	fmt.Fprintln(r.out, "  list melodies - Show all available melodies")
	fmt.Fprintln(r.out, "  play <preset> <melody> - Play a melody with a preset")
	fmt.Fprintln(r.out, "  demo - Play all presets with a scale")
	fmt.Fprintln(r.out, "  export <melody> <file.mid> - Write a melody as a MIDI file")
	fmt.Fprintln(r.out, "  help - Show this menu")
	fmt.Fprintln(r.out, "  quit - Exit the program")
	fmt.Fprintln(r.out)
}

func (r *repl) list(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "Usage: list <presets|melodies>")
		return
	}
	var title string
	var names []string
	switch strings.ToLower(args[0]) {
	case "presets":
		title, names = "Available Presets:", r.player.ListPresets()
	case "melodies":
		title, names = "Available Melodies:", r.player.ListMelodies()
	default:
		fmt.Fprintln(r.out, "Unknown list command. Use 'list presets' or 'list melodies'")
		return
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, title)
	for i, name := range names {
		fmt.Fprintf(r.out, "  %d. %s\n", i+1, name)
	}
}

func (r *repl) play(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(r.out, "Usage: play <preset> <melody>")
		fmt.Fprintln(r.out, "Example: play bell twinkle")
		fmt.Fprintln(r.out, "Example: play 1 3")
		return
	}
	presetRef, melodyRef := splitPresetRef(args)
	if _, err := catalog.FindPreset(presetRef); err != nil {
		fmt.Fprintf(r.out, "Preset '%s' not found. Use 'list presets' to see available options.\n", presetRef)
		return
	}
	if _, err := catalog.FindMelody(melodyRef); err != nil {
		fmt.Fprintf(r.out, "Melody '%s' not found. Use 'list melodies' to see available options.\n", melodyRef)
		return
	}
	fmt.Fprintf(r.out, "Playing '%s' melody with '%s' preset...\n", melodyRef, presetRef)
	ctx, cancel := r.commandContext()
	defer cancel()
	if r.report(r.player.Play(ctx, presetRef, melodyRef)) {
		fmt.Fprintln(r.out, "Done!")
	}
}

// splitPresetRef lets preset names contain spaces ("electric piano ode") by
// taking the longest leading run of words that names a preset. At least one
// word is always left for the melody.
func splitPresetRef(args []string) (preset, melody string) {
	for k := len(args) - 1; k > 1; k-- {
		name := strings.Join(args[:k], " ")
		if _, err := catalog.FindPreset(name); err == nil {
			return name, strings.Join(args[k:], " ")
		}
	}
	return args[0], strings.Join(args[1:], " ")
}

func (r *repl) demo() {
	fmt.Fprintln(r.out, "Playing demo with all presets...")
	ctx, cancel := r.commandContext()
	defer cancel()
	err := r.player.Demo(ctx, func(_ int, name string) {
		fmt.Fprintf(r.out, "  Playing: %s\n", name)
	})
	if r.report(err) {
		fmt.Fprintln(r.out, "Demo complete!")
	}
}

func (r *repl) export(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(r.out, "Usage: export <melody> <file.mid>")
		fmt.Fprintln(r.out, "Example: export ode ode.mid")
		return
	}
	path := args[len(args)-1]
	melodyRef := strings.Join(args[:len(args)-1], " ")
	melody, err := catalog.FindMelody(melodyRef)
	if err != nil {
		fmt.Fprintf(r.out, "Melody '%s' not found. Use 'list melodies' to see available options.\n", melodyRef)
		return
	}
	if err := writeMIDIFile(r.player, path, melodyRef); err != nil {
		fmt.Fprintf(r.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Exported '%s' to %s\n", melody.Name, path)
}

func writeMIDIFile(pl *fmsynth.Player, path, melodyRef string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return pl.ExportMIDI(f, melodyRef)
}

// report prints a playback error and reports whether the command succeeded.
func (r *repl) report(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(r.out, "Stopped.")
	case errors.Is(err, fmsynth.ErrDeviceUnavailable):
		fmt.Fprintf(r.out, "Audio device unavailable: %v\n", err)
	case errors.Is(err, fmsynth.ErrUnsupportedOutputFormat):
		fmt.Fprintf(r.out, "Unsupported output format: %v\n", err)
	default:
		fmt.Fprintf(r.out, "Error in audio stream: %v\n", err)
	}
	return false
}
