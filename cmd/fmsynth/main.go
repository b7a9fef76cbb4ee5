package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cbegin/fmsynth-go"
	"github.com/cbegin/fmsynth-go/internal/audio"
)

func main() {
	var (
		sampleRate  = flag.Int("sample-rate", fmsynth.DefaultSampleRate, "output sample rate")
		backendName = flag.String("backend", "ebiten", "audio output: ebiten|oto|null")
		formatName  = flag.String("format", "f32", "output sample format: f32|s16|u8")
		bufferSize  = flag.Duration("buffer", 0, "device buffer duration (0 = backend default)")
		attack      = flag.Float64("attack", 0.01, "envelope attack in seconds")
		decay       = flag.Float64("decay", 0.1, "envelope decay in seconds")
		sustain     = flag.Float64("sustain", 0.7, "envelope sustain level (0..1)")
		release     = flag.Float64("release", 0.5, "envelope release in seconds")
		tail        = flag.Duration("tail", 0, "silence kept after the last note (0 = 500ms, never shorter than -release)")
		command     = flag.String("c", "", "run a single command and exit")
		verbose     = flag.Bool("v", false, "log stream and playback lifecycle to stderr")
	)
	flag.Parse()

	backend, err := parseBackend(*backendName)
	if err != nil {
		log.Fatal(err)
	}
	format, err := fmsynth.ParseFormat(*formatName)
	if err != nil {
		log.Fatal(err)
	}
	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "fmsynth: ", log.LstdFlags)
	}
	opts := []fmsynth.Option{
		fmsynth.WithSampleRate(*sampleRate),
		fmsynth.WithBackend(backend),
		fmsynth.WithFormat(format),
		fmsynth.WithBufferSize(*bufferSize),
		fmsynth.WithEnvelope(*attack, *decay, *sustain, *release),
		fmsynth.WithLogger(logger),
	}
	if *tail > 0 {
		opts = append(opts, fmsynth.WithTail(*tail))
	}
	pl, err := fmsynth.NewPlayer(opts...)
	if err != nil {
		log.Fatal(err)
	}

	r := newREPL(pl, os.Stdout)
	if strings.TrimSpace(*command) != "" {
		r.exec(*command)
		return
	}
	in, restore, err := openInput(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	defer restore()
	if err := r.run(in); err != nil {
		log.Fatal(err)
	}
}

func parseBackend(name string) (audio.Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ebiten":
		return fmsynth.EbitenBackend(), nil
	case "oto":
		return fmsynth.OtoBackend(), nil
	case "null", "none", "headless":
		return fmsynth.NullBackend(), nil
	default:
		return nil, fmt.Errorf("invalid -backend %q (expected ebiten|oto|null)", name)
	}
}
