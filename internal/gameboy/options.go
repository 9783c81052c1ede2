package gameboy

import (
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// WithLogger sets the logger used by the GameBoy and its MMU.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
		gb.MMU.Log = log
	}
}

// WithSaveDir enables battery saves, which are read from and
// flushed to dir. Cartridges without a battery are never saved.
func WithSaveDir(dir string) Opt {
	return func(gb *GameBoy) {
		gb.saveDir = dir
	}
}

// WithFrequency paces Run to hz clock cycles per second. A frequency
// of 0 runs as fast as possible.
func WithFrequency(hz uint) Opt {
	return func(gb *GameBoy) {
		gb.frequency = hz
	}
}

// WithStackWindow widens (or narrows) the range the stack pointer
// may move within. Both bounds are inclusive.
func WithStackWindow(low, high uint16) Opt {
	return func(gb *GameBoy) {
		gb.CPU.SetStackWindow(low, high)
	}
}

// WithTrace calls fn after every executed instruction.
func WithTrace(fn func(pc uint16, in cpu.Instruction, cycles uint8)) Opt {
	return func(gb *GameBoy) {
		gb.CPU.Trace = fn
	}
}

// WithState restores a snapshot previously taken with SaveState.
// The snapshot is applied after every other option.
func WithState(b []byte) Opt {
	return func(gb *GameBoy) {
		gb.state = b
	}
}

// WithStateFile restores the snapshot at path if it exists, and
// writes a new one there on Close.
func WithStateFile(path string) Opt {
	return func(gb *GameBoy) {
		gb.statePath = path
	}
}

// WithStepLimit stops Run after n instructions.
func WithStepLimit(n uint64) Opt {
	return func(gb *GameBoy) {
		gb.stepLimit = n
	}
}

// WithoutPostBootState leaves every register zeroed, instead of
// setting them to the values the boot ROM hands over with.
func WithoutPostBootState() Opt {
	return func(gb *GameBoy) {
		gb.postBoot = false
	}
}
