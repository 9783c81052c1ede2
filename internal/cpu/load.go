package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/alu"
)

// loadRegisterToRegister copies the operand at index src into
// the operand at index dst.
//
//	LD r, r'
//	r, r' = A, B, C, D, E, H, L, (HL)
func loadRegisterToRegister(dst, src uint8) func(*CPU) uint8 {
	return func(c *CPU) uint8 {
		c.writeIndex(dst, c.readIndex(src))
		return cyclesFor(dst, cyclesFor(src, 4, 8), 8)
	}
}

// loadRegister8 loads the 8-bit immediate value into the operand
// at index.
//
//	LD r, d8
//	r = A, B, C, D, E, H, L, (HL)
func loadRegister8(index uint8) func(*CPU) uint8 {
	return func(c *CPU) uint8 {
		c.writeIndex(index, c.readOperand())
		return cyclesFor(index, 8, 12)
	}
}

// loadRegister16 loads the 16-bit immediate value into the given
// register pair.
//
//	LD rr, d16
//	rr = BC, DE, HL, SP
func loadRegister16(index uint8) func(*CPU) uint8 {
	return func(c *CPU) uint8 {
		c.writePair(index, c.readOperand16())
		return 12
	}
}

// loadHardware returns the address of the hardware register at
// 0xFF00 + offset.
func loadHardware(offset uint8) uint16 {
	return 0xFF00 + uint16(offset)
}

// addSPSigned adds the signed 8-bit immediate to SP and returns the
// result, without storing it.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	result, half, carry, _ := alu.AddU16Signed(c.SP, c.readOperand())
	c.setFlags(false, false, half, carry)
	return result
}

func init() {
	// 0x01, 0x11, 0x21, 0x31 - LD rr, d16
	for i := uint8(0); i < 4; i++ {
		DefineInstruction(0x01+i<<4, fmt.Sprintf("LD %s, d16", pairNames[i]), 3, loadRegister16(i))
	}

	// 0x06 - 0x3E - LD r, d8
	for i := uint8(0); i < 8; i++ {
		DefineInstruction(0x06+i<<3, fmt.Sprintf("LD %s, d8", registerNames[i]), 2, loadRegister8(i))
	}

	// 0x40 - 0x7F - LD r, r' (0x76 is HALT)
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == indexHL && src == indexHL {
				continue
			}
			DefineInstruction(
				0x40+dst<<3+src,
				fmt.Sprintf("LD %s, %s", registerNames[dst], registerNames[src]),
				1,
				loadRegisterToRegister(dst, src),
			)
		}
	}

	DefineInstruction(0x02, "LD (BC), A", 1, func(c *CPU) uint8 {
		c.writeByte(c.BC.Uint16(), c.A)
		return 8
	})
	DefineInstruction(0x12, "LD (DE), A", 1, func(c *CPU) uint8 {
		c.writeByte(c.DE.Uint16(), c.A)
		return 8
	})
	DefineInstruction(0x22, "LD (HL+), A", 1, func(c *CPU) uint8 {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
		return 8
	})
	DefineInstruction(0x32, "LD (HL-), A", 1, func(c *CPU) uint8 {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
		return 8
	})
	DefineInstruction(0x0A, "LD A, (BC)", 1, func(c *CPU) uint8 {
		c.A = c.readByte(c.BC.Uint16())
		return 8
	})
	DefineInstruction(0x1A, "LD A, (DE)", 1, func(c *CPU) uint8 {
		c.A = c.readByte(c.DE.Uint16())
		return 8
	})
	DefineInstruction(0x2A, "LD A, (HL+)", 1, func(c *CPU) uint8 {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
		return 8
	})
	DefineInstruction(0x3A, "LD A, (HL-)", 1, func(c *CPU) uint8 {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
		return 8
	})
	DefineInstruction(0x08, "LD (a16), SP", 3, func(c *CPU) uint8 {
		c.mmu.Write16(c.readOperand16(), c.SP)
		return 20
	})
	DefineInstruction(0xE0, "LDH (a8), A", 2, func(c *CPU) uint8 {
		c.writeByte(loadHardware(c.readOperand()), c.A)
		return 12
	})
	DefineInstruction(0xF0, "LDH A, (a8)", 2, func(c *CPU) uint8 {
		c.A = c.readByte(loadHardware(c.readOperand()))
		return 12
	})
	DefineInstruction(0xE2, "LD (C), A", 1, func(c *CPU) uint8 {
		c.writeByte(loadHardware(c.C), c.A)
		return 8
	})
	DefineInstruction(0xF2, "LD A, (C)", 1, func(c *CPU) uint8 {
		c.A = c.readByte(loadHardware(c.C))
		return 8
	})
	DefineInstruction(0xEA, "LD (a16), A", 3, func(c *CPU) uint8 {
		c.writeByte(c.readOperand16(), c.A)
		return 16
	})
	DefineInstruction(0xFA, "LD A, (a16)", 3, func(c *CPU) uint8 {
		c.A = c.readByte(c.readOperand16())
		return 16
	})
	DefineInstruction(0xF8, "LD HL, SP+r8", 2, func(c *CPU) uint8 {
		c.HL.SetUint16(c.addSPSigned())
		return 12
	})
	DefineInstruction(0xF9, "LD SP, HL", 1, func(c *CPU) uint8 {
		c.SP = c.HL.Uint16()
		return 8
	})

	// 0xC1 - 0xF1 - POP rr, 0xC5 - 0xF5 - PUSH rr
	pushPairs := [4]string{"BC", "DE", "HL", "AF"}
	for i := uint8(0); i < 4; i++ {
		DefineInstruction(0xC1+i<<4, "POP "+pushPairs[i], 1, popPair(i))
		DefineInstruction(0xC5+i<<4, "PUSH "+pushPairs[i], 1, pushPair(i))
	}
}

// stackPair returns the register pair used by PUSH and POP, where
// index 3 is AF rather than SP.
func (c *CPU) stackPair(index uint8) uint16 {
	if index == 3 {
		return c.AF.Uint16()
	}
	return c.registerPair(index).Uint16()
}

// pushPair pushes a register pair onto the stack.
//
//	PUSH rr
//	rr = BC, DE, HL, AF
func pushPair(index uint8) func(*CPU) uint8 {
	return func(c *CPU) uint8 {
		c.Push(c.stackPair(index))
		return 16
	}
}

// popPair pops a register pair off the stack. POP AF only keeps the
// upper nibble of F.
//
//	POP rr
//	rr = BC, DE, HL, AF
func popPair(index uint8) func(*CPU) uint8 {
	return func(c *CPU) uint8 {
		value := c.Pop()
		if index == 3 {
			c.AF.SetUint16(value)
		} else {
			c.registerPair(index).SetUint16(value)
		}
		return 12
	}
}
