// Package emu persists cartridge RAM and emulator state to disk.
package emu

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/thelolagemann/gbcore/pkg/utils"
)

// save file naming convention:
// <title>-<xxhash64 of the ROM>.sav

// Save represents a battery save file.
type Save struct {
	b    []byte // the save file data
	Path string // the path to the save file
}

// SavePath returns the path of the save file for a cartridge with the
// given title and ROM inside dir.
func SavePath(dir, title string, rom []byte) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s.sav", sanitize(title), utils.Fingerprint(rom)))
}

// NewSave opens the save file at path. If it doesn't exist yet, the
// save starts out as ramSize zeroed bytes, and nothing is written
// until Flush.
func NewSave(path string, ramSize uint) (*Save, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Save{b: make([]byte, ramSize), Path: path}, nil
	}
	if err != nil {
		return nil, err
	}

	return &Save{b: b, Path: path}, nil
}

// Bytes returns the save file data.
func (s *Save) Bytes() []byte {
	return s.b
}

// SetBytes sets the save file data. The data is copied.
func (s *Save) SetBytes(b []byte) {
	s.b = append(s.b[:0], b...)
}

// Flush writes the save file data to a temporary file next to Path,
// and renames it into place, so that a crash mid-write never leaves
// a truncated save behind.
func (s *Save) Flush() error {
	return writeFileAtomic(s.Path, s.b)
}

func writeFileAtomic(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("failed to write to temporary file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}

	return os.Rename(f.Name(), path)
}

// sanitize makes a cartridge title safe to use in a file name.
func sanitize(title string) string {
	title = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, strings.TrimSpace(title))
	if title == "" {
		return "untitled"
	}
	return title
}
