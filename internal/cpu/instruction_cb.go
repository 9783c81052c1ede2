package cpu

import "fmt"

// cbOperations are the rotate and shift operations of the extended
// opcodes 0x00 - 0x3F, selected by bits 3-5.
var cbOperations = [8]struct {
	name string
	fn   func(*CPU, uint8) uint8
}{
	{"RLC", (*CPU).rotateLeft},
	{"RRC", (*CPU).rotateRight},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftIntoCarry},
	{"SRA", (*CPU).shiftRightIntoCarry},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

// modifyIndex applies fn to the operand at index and writes the
// result back.
func modifyIndex(index uint8, fn func(*CPU, uint8) uint8) func(*CPU) uint8 {
	return func(c *CPU) uint8 {
		c.writeIndex(index, fn(c, c.readIndex(index)))
		return cyclesFor(index, 8, 16)
	}
}

func testBitIndex(position, index uint8) func(*CPU) uint8 {
	return func(c *CPU) uint8 {
		c.testBit(c.readIndex(index), position)
		return cyclesFor(index, 8, 12)
	}
}

func init() {
	for i := uint8(0); i < 8; i++ {
		for r := uint8(0); r < 8; r++ {
			register := registerNames[r]
			position := i

			// 0x00 - 0x3F - rotates and shifts
			DefineInstructionCB(i<<3+r, fmt.Sprintf("%s %s", cbOperations[i].name, register), modifyIndex(r, cbOperations[i].fn))

			// 0x40 - 0x7F - BIT n, r
			DefineInstructionCB(0x40+i<<3+r, fmt.Sprintf("BIT %d, %s", i, register), testBitIndex(i, r))

			// 0x80 - 0xBF - RES n, r
			DefineInstructionCB(0x80+i<<3+r, fmt.Sprintf("RES %d, %s", i, register), modifyIndex(r, func(_ *CPU, v uint8) uint8 {
				return resetBit(v, position)
			}))

			// 0xC0 - 0xFF - SET n, r
			DefineInstructionCB(0xC0+i<<3+r, fmt.Sprintf("SET %d, %s", i, register), modifyIndex(r, func(_ *CPU, v uint8) uint8 {
				return setBit(v, position)
			}))
		}
	}
}
