package emu

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSavePath(t *testing.T) {
	rom := []byte{0x00, 0x01}
	path := SavePath("saves", "POKEMON RED", rom)
	if filepath.Dir(path) != "saves" {
		t.Errorf("expected the save in saves, got %s", path)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "POKEMON_RED-") || !strings.HasSuffix(base, ".sav") {
		t.Errorf("unexpected save file name %s", base)
	}
	if path == SavePath("saves", "POKEMON RED", []byte{0x00, 0x02}) {
		t.Error("expected different ROMs to use different save files")
	}
	if got := filepath.Base(SavePath("", "", rom)); !strings.HasPrefix(got, "untitled-") {
		t.Errorf("expected an untitled save, got %s", got)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "game.sav")

	s, err := NewSave(path, 0x2000)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Bytes()) != 0x2000 {
		t.Fatalf("expected 0x2000 bytes, got %d", len(s.Bytes()))
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected nothing to be written before Flush")
	}

	data := bytes.Repeat([]byte{0xA5}, 0x2000)
	s.SetBytes(data)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	// no temporary files are left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the save file, got %d entries", len(entries))
	}

	loaded, err := NewSave(path, 0x2000)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(loaded.Bytes(), data) {
		t.Error("expected the flushed data to be loaded back")
	}
}
