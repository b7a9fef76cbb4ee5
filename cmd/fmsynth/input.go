package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const prompt = "> "

type lineReader interface {
	ReadLine() (string, error)
}

// openInput picks line editing with history when stdin is a terminal and a
// plain scanner otherwise.
func openInput(in *os.File, out io.Writer) (lineReader, func(), error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return newScanReader(in, out), func() {}, nil
	}
	rw := struct {
		io.Reader
		io.Writer
	}{in, out}
	tr := &termReader{fd: fd, t: term.NewTerminal(rw, prompt)}
	return tr, tr.restore, nil
}

// termReader only holds the terminal in raw mode while a line is being
// edited, so command output and Ctrl-C behave normally during playback.
type termReader struct {
	fd    int
	t     *term.Terminal
	state *term.State
}

func (r *termReader) ReadLine() (string, error) {
	state, err := term.MakeRaw(r.fd)
	if err != nil {
		return "", fmt.Errorf("error entering raw mode: %w", err)
	}
	r.state = state
	defer r.restore()
	return r.t.ReadLine()
}

func (r *termReader) restore() {
	if r.state != nil {
		_ = term.Restore(r.fd, r.state)
		r.state = nil
	}
}

type scanReader struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newScanReader(in io.Reader, out io.Writer) *scanReader {
	return &scanReader{sc: bufio.NewScanner(in), out: out}
}

func (r *scanReader) ReadLine() (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.sc.Text(), nil
}
