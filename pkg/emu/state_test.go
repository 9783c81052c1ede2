package emu

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func TestState(t *testing.T) {
	state := bytes.Repeat([]byte{0x01, 0x02, 0x03, 0x00}, 1024)

	var buf bytes.Buffer
	if err := WriteState(&buf, state); err != nil {
		t.Fatal(err)
	}
	if buf.Len() >= len(state) {
		t.Errorf("expected the state to be compressed, got %d bytes", buf.Len())
	}

	got, err := ReadState(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, state) {
		t.Error("expected the state to survive compression")
	}

	if _, err := ReadState(bytes.NewReader([]byte("garbage"))); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func TestStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.state")
	state := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	if err := SaveStateFile(path, state); err != nil {
		t.Fatal(err)
	}
	got, err := LoadStateFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, state) {
		t.Errorf("expected %v, got %v", state, got)
	}
}
