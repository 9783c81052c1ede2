// Package cpu implements the Game Boy CPU. The CPU fetches, decodes
// and executes one instruction per Step, reading and writing memory
// through the MMU and clocking the timer with the elapsed cycles.
package cpu

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/timer"
	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304

	// StackLow and StackHigh bound the default stack window, which
	// is high RAM.
	StackLow  uint16 = 0xFF80
	StackHigh uint16 = 0xFFFE
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	types.Registers

	// Trace, if set, is called after every executed instruction with
	// the address it was fetched from.
	Trace func(pc uint16, in Instruction, cycles uint8)

	mmu   *mmu.MMU
	irq   *interrupts.Service
	timer *timer.Controller

	stackLow  uint16
	stackHigh uint16

	jumped  bool
	stopped bool
}

// NewCPU creates a new CPU instance with the given MMU. The MMU is
// used to read and write to the memory, and the timer is ticked with
// the cycles taken by each instruction. All registers start zeroed.
func NewCPU(mmu *mmu.MMU, irq *interrupts.Service, timer *timer.Controller) *CPU {
	c := &CPU{
		mmu:       mmu,
		irq:       irq,
		timer:     timer,
		stackLow:  StackLow,
		stackHigh: StackHigh,
	}
	// create register pairs
	c.BC = types.NewRegisterPair(&c.B, &c.C)
	c.DE = types.NewRegisterPair(&c.D, &c.E)
	c.HL = types.NewRegisterPair(&c.H, &c.L)
	c.AF = types.NewMaskedRegisterPair(&c.A, &c.F, 0xF0)

	return c
}

// SetStackWindow changes the range the stack pointer must stay
// within after every push and pop. Both bounds are inclusive.
func (c *CPU) SetStackWindow(low, high uint16) {
	c.stackLow, c.stackHigh = low, high
}

// ResetPostBoot sets the registers to the values the DMG boot ROM
// leaves behind when it hands over to the cartridge at 0x0100.
func (c *CPU) ResetPostBoot() {
	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.stopped = false
}

// Stopped returns true once a STOP instruction has been executed.
func (c *CPU) Stopped() bool {
	return c.stopped
}

// Step fetches, decodes and executes a single instruction, and
// returns the number of clock cycles it took.
//
// An illegal opcode, a prohibited memory access or a stack pointer
// leaving the stack window panics with a *types.Fault.
func (c *CPU) Step() uint8 {
	pc := c.PC
	instruction, fetched := c.fetch()

	c.jumped = false
	cycles := instruction.fn(c)

	// skip the operands, unless the instruction moved the PC itself
	if !c.jumped {
		c.PC += uint16(instruction.length) - fetched
	}

	c.timer.Tick(cycles)

	if c.Trace != nil {
		c.Trace(pc, instruction, cycles)
	}

	return cycles
}

// LoadAndRun places program at address 0, and steps the CPU from
// there until it executes a STOP instruction.
func (c *CPU) LoadAndRun(program []byte) {
	c.mmu.Cart.Patch(0, program)
	c.PC = 0
	c.stopped = false
	for !c.stopped {
		c.Step()
	}
}

// fetch reads the opcode at the PC, following the CB prefix, and
// returns its instruction with the number of bytes consumed.
func (c *CPU) fetch() (Instruction, uint16) {
	address := c.PC
	code := uint16(c.readByte(c.PC))
	c.PC++
	fetched := uint16(1)

	if code == prefixCB {
		code = code<<8 | uint16(c.readByte(c.PC))
		c.PC++
		fetched++
	}

	instruction, ok := Lookup(code)
	if !ok {
		types.Raise(types.FaultIllegalOpcode, address, code)
	}
	return instruction, fetched
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.mmu.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.mmu.Write(addr, val)
}

// readOperand reads the 8-bit immediate operand of the current
// instruction. The PC is not advanced.
func (c *CPU) readOperand() uint8 {
	return c.mmu.Read(c.PC)
}

// readOperand16 reads the 16-bit little-endian immediate operand
// of the current instruction.
func (c *CPU) readOperand16() uint16 {
	return c.mmu.Read16(c.PC)
}

// Push pushes a 16 bit value onto the stack.
func (c *CPU) Push(value uint16) {
	sp := int(c.SP) - 2
	c.validateSP(sp)
	c.SP = uint16(sp)
	c.mmu.Write16(c.SP, value)
}

// Pop pops a 16 bit value off the stack.
func (c *CPU) Pop() uint16 {
	sp := int(c.SP) + 2
	c.validateSP(sp)
	value := c.mmu.Read16(c.SP)
	c.SP = uint16(sp)
	return value
}

// validateSP faults unless sp lies within the stack window.
func (c *CPU) validateSP(sp int) {
	switch {
	case sp < int(c.stackLow):
		types.Raise(types.FaultStackOverflow, uint16(sp), 0)
	case sp > int(c.stackHigh):
		types.Raise(types.FaultStackUnderflow, uint16(sp), 0)
	}
}

var _ types.Stater = (*CPU)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - PC (uint16)
//   - SP (uint16)
//   - A, F, B, C, D, E, H, L (uint8)
//   - stopped (bool)
func (c *CPU) Load(s *types.State) {
	c.PC = s.Read16()
	c.SP = s.Read16()
	c.A = s.Read8()
	c.F = s.Read8() & 0xF0
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.stopped = s.ReadBool()
}

// Save implements the types.Stater interface.
func (c *CPU) Save(s *types.State) {
	s.Write16(c.PC)
	s.Write16(c.SP)
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.WriteBool(c.stopped)
}
