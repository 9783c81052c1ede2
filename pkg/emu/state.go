package emu

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andybalholm/brotli"
)

// stateMagic prefixes every state file, ahead of the compressed data.
var stateMagic = []byte("GBST\x01")

// ErrInvalidState is returned when a state file doesn't begin with
// the expected magic.
var ErrInvalidState = errors.New("not a state file")

// WriteState compresses state with brotli and writes it to w.
func WriteState(w io.Writer, state []byte) error {
	if _, err := w.Write(stateMagic); err != nil {
		return err
	}

	bw := brotli.NewWriterLevel(w, brotli.BestCompression)
	if _, err := bw.Write(state); err != nil {
		return err
	}
	return bw.Close()
}

// ReadState reads a state previously written with WriteState.
func ReadState(r io.Reader) ([]byte, error) {
	magic := make([]byte, len(stateMagic))
	if _, err := io.ReadFull(r, magic); err != nil || !bytes.Equal(magic, stateMagic) {
		return nil, ErrInvalidState
	}

	b, err := io.ReadAll(brotli.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("brotli: %w", err)
	}
	return b, nil
}

// SaveStateFile writes a compressed state file to path.
func SaveStateFile(path string, state []byte) error {
	var buf bytes.Buffer
	if err := WriteState(&buf, state); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}

// LoadStateFile reads a compressed state file from path.
func LoadStateFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadState(f)
}
