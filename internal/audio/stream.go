package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
)

var (
	ErrUnsupportedOutputFormat = errors.New("unsupported output sample format")
	ErrDeviceUnavailable       = errors.New("audio device unavailable")
)

// SampleSource fills dst with mono samples. It is called from the audio
// thread and must not block beyond a short lock.
type SampleSource interface {
	Process(dst []float32)
}

// Format is the sample encoding requested from a backend. Only
// FormatFloat32LE is rendered; the others are rejected when the stream is
// opened.
type Format int

const (
	FormatFloat32LE Format = iota
	FormatSignedInt16LE
	FormatUnsignedInt8
)

func (f Format) String() string {
	switch f {
	case FormatFloat32LE:
		return "f32"
	case FormatSignedInt16LE:
		return "s16"
	case FormatUnsignedInt8:
		return "u8"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f32", "float32":
		return FormatFloat32LE, nil
	case "s16", "int16":
		return FormatSignedInt16LE, nil
	case "u8", "uint8":
		return FormatUnsignedInt8, nil
	}
	return 0, fmt.Errorf("invalid format %q (expected f32|s16|u8)", s)
}

// Config describes the stream a backend should open.
type Config struct {
	SampleRate int
	Format     Format
	// BufferSize is the backend's output buffer duration; 0 keeps the backend default.
	BufferSize time.Duration
}

func (c Config) validate() error {
	if c.SampleRate <= 0 {
		return errors.New("sampleRate must be positive")
	}
	if c.Format != FormatFloat32LE {
		return fmt.Errorf("%w: %s", ErrUnsupportedOutputFormat, c.Format)
	}
	return nil
}

// Backend opens output streams. Device and format errors are reported by
// Open, before any sample is pulled.
type Backend interface {
	Name() string
	Open(cfg Config, source SampleSource) (Stream, error)
}

// Stream is a running output. Err reports an asynchronous playback failure,
// if the backend can detect one.
type Stream interface {
	Play()
	Err() error
	Close() error
}

const defaultReaderFrames = 4096

// StreamReader encodes a mono SampleSource as interleaved little-endian
// float32 frames with the same sample on every channel.
type StreamReader struct {
	mu       sync.Mutex
	source   SampleSource
	channels int
	buf      []float32
}

func NewStreamReader(source SampleSource, channels int) *StreamReader {
	if channels <= 0 {
		channels = 1
	}
	return &StreamReader{
		source:   source,
		channels: channels,
		buf:      make([]float32, defaultReaderFrames),
	}
}

func (r *StreamReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frameSize := 4 * r.channels
	frames := len(p) / frameSize
	if frames == 0 {
		return 0, nil
	}
	// grows only when the backend asks for more than it did before
	if cap(r.buf) < frames {
		r.buf = make([]float32, frames)
	}
	r.buf = r.buf[:frames]
	r.source.Process(r.buf)
	for i, s := range r.buf {
		u := math.Float32bits(s)
		base := i * frameSize
		for c := 0; c < r.channels; c++ {
			binary.LittleEndian.PutUint32(p[base+c*4:], u)
		}
	}
	return frames * frameSize, nil
}

func (r *StreamReader) Close() error { return nil }
