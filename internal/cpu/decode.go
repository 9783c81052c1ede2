package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// registerNames are the operand names of the 3-bit register index
// encoded in most opcodes. Index 6 addresses memory at HL.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

const indexHL = 6

// registerIndex returns a Register pointer for the given index.
func (c *CPU) registerIndex(index uint8) *types.Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

// readIndex reads the operand at the given register index.
func (c *CPU) readIndex(index uint8) uint8 {
	if index == indexHL {
		return c.readByte(c.HL.Uint16())
	}
	return *c.registerIndex(index)
}

// writeIndex writes the operand at the given register index.
func (c *CPU) writeIndex(index uint8, value uint8) {
	if index == indexHL {
		c.writeByte(c.HL.Uint16(), value)
		return
	}
	*c.registerIndex(index) = value
}

// cyclesFor returns mem for operands in memory, and reg otherwise.
func cyclesFor(index uint8, reg, mem uint8) uint8 {
	if index == indexHL {
		return mem
	}
	return reg
}

// registerPair returns the 16-bit register pair selected by bits 4-5
// of opcodes such as LD rr, d16 and INC rr. Index 3 is SP and has no
// RegisterPair, so callers handle it themselves.
func (c *CPU) registerPair(index uint8) *types.RegisterPair {
	switch index {
	case 0:
		return c.BC
	case 1:
		return c.DE
	case 2:
		return c.HL
	}
	panic(fmt.Sprintf("invalid register pair index: %d", index))
}

var pairNames = [4]string{"BC", "DE", "HL", "SP"}

// readPair reads the register pair at index, 3 being SP.
func (c *CPU) readPair(index uint8) uint16 {
	if index == 3 {
		return c.SP
	}
	return c.registerPair(index).Uint16()
}

// writePair writes the register pair at index, 3 being SP.
func (c *CPU) writePair(index uint8, value uint16) {
	if index == 3 {
		c.SP = value
		return
	}
	c.registerPair(index).SetUint16(value)
}

// condition is the branch condition encoded in bits 3-4 of
// conditional jumps, calls and returns.
type condition uint8

const (
	conditionNZ condition = iota
	conditionZ
	conditionNC
	conditionC
)

var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

// test evaluates the condition against the current flags.
func (c *CPU) test(cond condition) bool {
	switch cond {
	case conditionNZ:
		return c.isFlagsNotSet(FlagZero)
	case conditionZ:
		return c.isFlagsSet(FlagZero)
	case conditionNC:
		return c.isFlagsNotSet(FlagCarry)
	default:
		return c.isFlagsSet(FlagCarry)
	}
}
