package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/alu"
)

// jumpAbsolute sets the PC to the given address. Instructions that
// jump are not advanced past their operands after executing.
func (c *CPU) jumpAbsolute(address uint16) {
	c.PC = address
	c.jumped = true
}

// jump jumps to the 16-bit immediate address if the condition is true.
//
//	JP nn
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jump(condition bool) uint8 {
	if !condition {
		return 12
	}
	c.jumpAbsolute(c.readOperand16())
	return 16
}

// jumpRelative jumps by the signed 8-bit immediate offset, relative
// to the address of the next instruction, if the condition is true.
//
//	JR e
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(condition bool) uint8 {
	if !condition {
		return 8
	}
	c.jumpAbsolute(c.PC + 1 + alu.Signed(c.readOperand()))
	return 12
}

// call pushes the address of the next instruction onto the stack and
// jumps to the 16-bit immediate address, if the condition is true.
//
//	CALL nn
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) call(condition bool) uint8 {
	if !condition {
		return 12
	}
	address := c.readOperand16()
	c.Push(c.PC + 2)
	c.jumpAbsolute(address)
	return 24
}

// ret pops the return address off the stack and jumps to it.
//
//	RET
func (c *CPU) ret() {
	c.jumpAbsolute(c.Pop())
}

// retConditional returns if the condition is true.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) retConditional(condition bool) uint8 {
	if !condition {
		return 8
	}
	c.ret()
	return 20
}

// restart pushes the address of the next instruction onto the stack
// and jumps to one of the 8 restart vectors.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) restart(vector uint16) uint8 {
	c.Push(c.PC)
	c.jumpAbsolute(vector)
	return 16
}

func init() {
	DefineInstruction(0xC3, "JP a16", 3, func(c *CPU) uint8 { return c.jump(true) })
	DefineInstruction(0xE9, "JP HL", 1, func(c *CPU) uint8 {
		c.jumpAbsolute(c.HL.Uint16())
		return 4
	})
	DefineInstruction(0x18, "JR r8", 2, func(c *CPU) uint8 { return c.jumpRelative(true) })
	DefineInstruction(0xCD, "CALL a16", 3, func(c *CPU) uint8 { return c.call(true) })
	DefineInstruction(0xC9, "RET", 1, func(c *CPU) uint8 {
		c.ret()
		return 16
	})
	DefineInstruction(0xD9, "RETI", 1, func(c *CPU) uint8 {
		c.ret()
		c.irq.IME = true
		return 16
	})

	for i := uint8(0); i < 4; i++ {
		cond := condition(i)
		name := conditionNames[i]

		// 0x20, 0x28, 0x30, 0x38 - JR cc, r8
		DefineInstruction(0x20+i<<3, fmt.Sprintf("JR %s, r8", name), 2, func(c *CPU) uint8 {
			return c.jumpRelative(c.test(cond))
		})
		// 0xC2, 0xCA, 0xD2, 0xDA - JP cc, a16
		DefineInstruction(0xC2+i<<3, fmt.Sprintf("JP %s, a16", name), 3, func(c *CPU) uint8 {
			return c.jump(c.test(cond))
		})
		// 0xC4, 0xCC, 0xD4, 0xDC - CALL cc, a16
		DefineInstruction(0xC4+i<<3, fmt.Sprintf("CALL %s, a16", name), 3, func(c *CPU) uint8 {
			return c.call(c.test(cond))
		})
		// 0xC0, 0xC8, 0xD0, 0xD8 - RET cc
		DefineInstruction(0xC0+i<<3, fmt.Sprintf("RET %s", name), 1, func(c *CPU) uint8 {
			return c.retConditional(c.test(cond))
		})
	}

	// 0xC7 - 0xFF - RST n
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) << 3
		DefineInstruction(0xC7+i<<3, fmt.Sprintf("RST %02XH", vector), 1, func(c *CPU) uint8 {
			return c.restart(vector)
		})
	}
}
