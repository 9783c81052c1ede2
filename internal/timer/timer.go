// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a specific
// frequency. The frequency can be configured using the
// types.TAC register.
package timer

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
)

// divPeriod is the number of clock cycles between increments
// of the divider register.
const divPeriod = 256

// periods maps the clock select bits of types.TAC to the number
// of clock cycles between increments of types.TIMA.
var periods = [4]uint32{
	0b00: 1024,
	0b01: 16,
	0b10: 64,
	0b11: 256,
}

// Controller is a timer controller. It accumulates the clock
// cycles reported by the CPU, incrementing the divider every
// 256 cycles and, while enabled, the counter at the frequency
// selected by types.TAC.
type Controller struct {
	div  uint8
	tima uint8
	tma  uint8
	tac  uint8

	// Enabled is bit 2 of types.TAC.
	Enabled bool
	period  uint32

	divCycles  uint32
	timaCycles uint32

	irq *interrupts.Service
}

// NewController returns a new timer controller, requesting
// timer interrupts through irq.
func NewController(irq *interrupts.Service) *Controller {
	c := &Controller{irq: irq}
	c.setTAC(0)
	return c
}

// Tick advances the timer by the given number of clock cycles.
func (c *Controller) Tick(cycles uint8) {
	c.divCycles += uint32(cycles)
	for c.divCycles >= divPeriod {
		c.divCycles -= divPeriod
		c.div++
	}

	if !c.Enabled {
		return
	}

	c.timaCycles += uint32(cycles)
	for c.timaCycles >= c.period {
		c.timaCycles -= c.period
		c.tima++

		// reload from TMA and request an interrupt on overflow
		if c.tima == 0 {
			c.tima = c.tma
			c.irq.Request(interrupts.TimerFlag)
		}
	}
}

// Read returns the value of one of the timer registers.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.DIV:
		return c.div
	case types.TIMA:
		return c.tima
	case types.TMA:
		return c.tma
	case types.TAC:
		return c.tac | 0b1111_1000 // unused bits read as set
	}
	panic(fmt.Sprintf("timer: illegal read from address %04X", address))
}

// Write writes to one of the timer registers. Writing any
// value to types.DIV resets it.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		c.div = 0
		c.divCycles = 0
	case types.TIMA:
		c.tima = value
	case types.TMA:
		c.tma = value
	case types.TAC:
		c.setTAC(value)
	default:
		panic(fmt.Sprintf("timer: illegal write to address %04X", address))
	}
}

// Handles reports whether address is one of the timer registers.
func (c *Controller) Handles(address uint16) bool {
	return address >= types.DIV && address <= types.TAC
}

func (c *Controller) setTAC(value uint8) {
	c.tac = value & 0b111
	c.Enabled = value&types.Bit2 != 0
	c.period = periods[value&0b11]
}

var _ types.Stater = (*Controller)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - div (uint8)
//   - tima (uint8)
//   - tma (uint8)
//   - tac (uint8)
//   - divCycles (uint32)
//   - timaCycles (uint32)
func (c *Controller) Load(s *types.State) {
	c.div = s.Read8()
	c.tima = s.Read8()
	c.tma = s.Read8()
	c.setTAC(s.Read8())
	c.divCycles = s.Read32()
	c.timaCycles = s.Read32()
}

// Save implements the types.Stater interface.
func (c *Controller) Save(s *types.State) {
	s.Write8(c.div)
	s.Write8(c.tima)
	s.Write8(c.tma)
	s.Write8(c.tac)
	s.Write32(c.divCycles)
	s.Write32(c.timaCycles)
}
