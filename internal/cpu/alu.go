package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/alu"
)

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A Register, by subtracting it and
// discarding the result.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) compare(n uint8) {
	_, half, carry, zero := alu.SubU8(c.A, n, false)
	c.setFlags(zero, true, half, carry)
}

// aluOperations are the 8 operations encoded in bits 3-5 of the
// opcodes 0x80 - 0xBF and 0xC6 - 0xFE.
var aluOperations = [8]struct {
	name string
	fn   func(c *CPU, n uint8)
}{
	{"ADD A,", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC A,", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB", func(c *CPU, n uint8) { c.sub(n, false) }},
	{"SBC A,", func(c *CPU, n uint8) { c.sub(n, true) }},
	{"AND", (*CPU).and},
	{"XOR", (*CPU).xor},
	{"OR", (*CPU).or},
	{"CP", (*CPU).compare},
}

func aluIndex(op, index uint8) func(*CPU) uint8 {
	return func(c *CPU) uint8 {
		aluOperations[op].fn(c, c.readIndex(index))
		return cyclesFor(index, 4, 8)
	}
}

func aluImmediate(op uint8) func(*CPU) uint8 {
	return func(c *CPU) uint8 {
		aluOperations[op].fn(c, c.readOperand())
		return 8
	}
}

func init() {
	for op := uint8(0); op < 8; op++ {
		// 0x80 - 0xBF - ALU A, r
		for i := uint8(0); i < 8; i++ {
			DefineInstruction(
				0x80+op<<3+i,
				fmt.Sprintf("%s %s", aluOperations[op].name, registerNames[i]),
				1,
				aluIndex(op, i),
			)
		}
		// 0xC6 - 0xFE - ALU A, d8
		DefineInstruction(0xC6+op<<3, fmt.Sprintf("%s d8", aluOperations[op].name), 2, aluImmediate(op))
	}
}
