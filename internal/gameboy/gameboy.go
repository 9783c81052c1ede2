// Package gameboy wires the CPU, memory, timer and cartridge together,
// and drives them on behalf of a host.
package gameboy

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/timer"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/emu"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// paceInterval is how often Run checks it is keeping to the
// configured frequency.
const paceInterval = 10 * time.Millisecond

var (
	// ErrCorruptState is returned when a snapshot can't be decoded.
	ErrCorruptState = errors.New("corrupt state")
	// ErrStateMismatch is returned when a snapshot was taken with a
	// different cartridge.
	ErrStateMismatch = errors.New("state belongs to a different cartridge")
	// ErrClosed is returned by Run and Step after Close.
	ErrClosed = errors.New("gameboy closed")
)

// GameBoy represents a Game Boy. It contains all the components of the
// Game Boy, and is the main entry point for the emulator.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	Interrupts *interrupts.Service
	Timer      *timer.Controller
	Cartridge  *cartridge.Cartridge

	log.Logger

	rom         []byte
	fingerprint string
	save        *emu.Save

	saveDir   string
	statePath string
	state     []byte
	frequency uint
	stepLimit uint64
	postBoot  bool

	steps  uint64
	closed bool
}

// NewGameBoy loads rom and returns a GameBoy ready to Run from the
// cartridge entry point.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	cart, err := cartridge.NewCartridge(rom)
	if err != nil {
		return nil, err
	}

	interrupt := interrupts.NewService()
	timerCtl := timer.NewController(interrupt)
	memBus := mmu.NewMMU(cart, interrupt, timerCtl)

	g := &GameBoy{
		CPU:        cpu.NewCPU(memBus, interrupt, timerCtl),
		MMU:        memBus,
		Interrupts: interrupt,
		Timer:      timerCtl,
		Cartridge:  cart,
		Logger:     log.New(),

		rom:         rom,
		fingerprint: utils.Fingerprint(rom),
		postBoot:    true,
	}
	memBus.Log = g.Logger

	for _, opt := range opts {
		opt(g)
	}

	g.Infof("loaded %s", cart.Header.String())
	if !cart.HeaderChecksumOK() {
		g.Warnf("header checksum mismatch (0x%02X)", cart.HeaderChecksum)
	}

	if g.postBoot {
		g.CPU.ResetPostBoot()
	}

	if err := g.loadSave(); err != nil {
		return nil, err
	}

	if g.state == nil && g.statePath != "" {
		b, err := emu.LoadStateFile(g.statePath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("loading state: %w", err)
		default:
			g.state = b
		}
	}
	if g.state != nil {
		if err := g.LoadState(g.state); err != nil {
			return nil, err
		}
		g.Infof("restored state (%d bytes)", len(g.state))
	}

	return g, nil
}

// loadSave reads the battery save of the cartridge, if it has one.
func (g *GameBoy) loadSave() error {
	if g.saveDir == "" || !g.Cartridge.Battery() || len(g.Cartridge.RAM()) == 0 {
		return nil
	}

	s, err := emu.NewSave(emu.SavePath(g.saveDir, g.Cartridge.Title, g.rom), uint(len(g.Cartridge.RAM())))
	if err != nil {
		return fmt.Errorf("loading save: %w", err)
	}
	g.Cartridge.LoadRAM(s.Bytes())
	g.save = s
	g.Infof("using save file %s", s.Path)

	return nil
}

// Step executes a single instruction, returning the cycles it took. A
// fault stops the instruction, and is returned as a *types.Fault.
func (g *GameBoy) Step() (cycles uint8, err error) {
	if g.closed {
		return 0, ErrClosed
	}
	defer recoverFault(&err)

	cycles = g.CPU.Step()
	g.steps++
	return cycles, nil
}

// Steps returns the number of instructions executed so far.
func (g *GameBoy) Steps() uint64 {
	return g.steps
}

// Run steps the CPU until it executes STOP, the step limit is reached,
// ctx is cancelled, or a fault occurs. A fault is returned as a
// *types.Fault, after which the save data may still be flushed.
func (g *GameBoy) Run(ctx context.Context) (err error) {
	if g.closed {
		return ErrClosed
	}
	defer recoverFault(&err)

	start := time.Now()
	var cycles, batch uint64
	budget := uint64(cpu.ClockSpeed / 100)
	if g.frequency > 0 {
		budget = max(uint64(g.frequency)*uint64(paceInterval)/uint64(time.Second), 1)
	}

	for !g.CPU.Stopped() {
		if g.stepLimit > 0 && g.steps >= g.stepLimit {
			return nil
		}

		c := uint64(g.CPU.Step())
		g.steps++
		cycles += c
		batch += c
		if batch < budget {
			continue
		}
		batch = 0

		if err := ctx.Err(); err != nil {
			return err
		}
		if g.frequency == 0 {
			continue
		}

		// sleep until wall time catches up with emulated time
		ahead := time.Duration(cycles*uint64(time.Second)/uint64(g.frequency)) - time.Since(start)
		if ahead <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(ahead):
		}
	}

	g.Debugf("stopped after %d steps", g.steps)
	return nil
}

// Flush writes the cartridge RAM to its save file. It does nothing
// for cartridges without a battery, or when no save directory is set.
func (g *GameBoy) Flush() error {
	if g.save == nil {
		return nil
	}

	g.save.SetBytes(g.Cartridge.RAM())
	if err := g.save.Flush(); err != nil {
		g.Errorf("failed to write save file %s: %v", g.save.Path, err)
		return err
	}
	g.Infof("saved %s", g.save.Path)
	return nil
}

// Close flushes the save file, and writes a snapshot if a state file
// was configured. The GameBoy can't be used afterwards.
func (g *GameBoy) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true

	var result *multierror.Error
	if err := g.Flush(); err != nil {
		result = multierror.Append(result, fmt.Errorf("flushing save: %w", err))
	}
	if g.statePath != "" {
		if err := emu.SaveStateFile(g.statePath, g.SaveState()); err != nil {
			result = multierror.Append(result, fmt.Errorf("writing state: %w", err))
		} else {
			g.Infof("wrote state to %s", g.statePath)
		}
	}

	return result.ErrorOrNil()
}

// SaveState returns a snapshot of the whole machine.
func (g *GameBoy) SaveState() []byte {
	s := types.NewState()
	s.WriteData([]byte(g.fingerprint))
	g.CPU.Save(s)
	g.Interrupts.Save(s)
	g.Timer.Save(s)
	g.MMU.Save(s)
	return s.Bytes()
}

// LoadState restores a snapshot taken with SaveState. If the snapshot
// can't be decoded, the machine is left as it was before the call.
func (g *GameBoy) LoadState(b []byte) (err error) {
	prev := g.SaveState()
	defer func() {
		if r := recover(); r != nil {
			s := types.StateFromBytes(prev)
			g.matches(s) // skip the fingerprint
			g.restore(s)
			err = fmt.Errorf("%w: %v", ErrCorruptState, r)
		}
	}()

	s := types.StateFromBytes(b)
	if !g.matches(s) {
		return ErrStateMismatch
	}
	g.restore(s)
	return nil
}

// matches reads the fingerprint leading a snapshot, and reports
// whether it was taken with the loaded cartridge.
func (g *GameBoy) matches(s *types.State) bool {
	fingerprint := make([]byte, len(g.fingerprint))
	s.ReadData(fingerprint)
	return string(fingerprint) == g.fingerprint
}

// restore loads every component from s, in the order SaveState
// wrote them.
func (g *GameBoy) restore(s *types.State) {
	g.CPU.Load(s)
	g.Interrupts.Load(s)
	g.Timer.Load(s)
	g.MMU.Load(s)
}

// recoverFault turns a *types.Fault panic into an error. Any other
// panic is propagated.
func recoverFault(err *error) {
	r := recover()
	if r == nil {
		return
	}
	fault, ok := r.(*types.Fault)
	if !ok {
		panic(r)
	}
	*err = fault
}
