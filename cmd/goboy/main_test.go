package main

import (
	"testing"

	"github.com/thelolagemann/gbcore/internal/cpu"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in        string
		low, high uint16
		ok        bool
	}{
		{"C000:FFFE", 0xC000, 0xFFFE, true},
		{"0xff80:0xfffe", 0xFF80, 0xFFFE, true},
		{"FFFE:C000", 0, 0, false},
		{"C000", 0, 0, false},
		{"C000:GGGG", 0, 0, false},
	}
	for _, tt := range tests {
		low, high, err := parseWindow(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("%s: unexpected error %v", tt.in, err)
			continue
		}
		if low != tt.low || high != tt.high {
			t.Errorf("%s: expected %04X:%04X, got %04X:%04X", tt.in, tt.low, tt.high, low, high)
		}
	}
}

func TestFormatTrace(t *testing.T) {
	tests := []struct {
		code uint16
		want string
	}{
		{0x3E, "0100: 3E   LD A, d8          8"},
		{0xCB37, "0100: CB37 SWAP A            8"},
	}
	for _, tt := range tests {
		in, ok := cpu.Lookup(tt.code)
		if !ok {
			t.Fatalf("expected opcode %04X to be defined", tt.code)
		}
		if got := formatTrace(0x0100, in, 8); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
