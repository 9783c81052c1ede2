package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/alu"
)

// increment returns value + 1.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	result, half, _, zero := alu.AddU8(value, 1, false)
	c.shouldSetFlag(FlagZero, zero)
	c.clearFlag(FlagSubtract)
	c.shouldSetFlag(FlagHalfCarry, half)
	return result
}

// decrement returns value - 1.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	result, half, _, zero := alu.SubU8(value, 1, false)
	c.shouldSetFlag(FlagZero, zero)
	c.setFlag(FlagSubtract)
	c.shouldSetFlag(FlagHalfCarry, half)
	return result
}

// add adds n, and the carry flag if withCarry is set, to the A
// Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	result, half, carry, zero := alu.AddU8(c.A, n, withCarry && c.isFlagSet(FlagCarry))
	c.A = result
	c.setFlags(zero, false, half, carry)
}

// sub subtracts n, and the carry flag if withCarry is set, from
// the A Register.
//
//	SUB n
//	SBC A, n
//	n = d8, A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	result, half, carry, zero := alu.SubU8(c.A, n, withCarry && c.isFlagSet(FlagCarry))
	c.A = result
	c.setFlags(zero, true, half, carry)
}

// addHL adds value to the HL Register pair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(value uint16) {
	result, half, carry, _ := alu.AddU16(c.HL.Uint16(), value, false)
	c.HL.SetUint16(result)
	c.clearFlag(FlagSubtract)
	c.shouldSetFlag(FlagHalfCarry, half)
	c.shouldSetFlag(FlagCarry, carry)
}

// decimalAdjust adjusts the A Register to a binary coded decimal,
// after an addition or subtraction of two BCD values.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	var adjust uint8
	carry := c.isFlagSet(FlagCarry)
	subtract := c.isFlagSet(FlagSubtract)

	if c.isFlagSet(FlagHalfCarry) || (!subtract && c.A&0x0F > 0x09) {
		adjust |= 0x06
	}
	if carry || (!subtract && c.A > 0x99) {
		adjust |= 0x60
		carry = true
	}

	if subtract {
		c.A -= adjust
	} else {
		c.A += adjust
	}

	c.shouldSetFlag(FlagZero, c.A == 0)
	c.clearFlag(FlagHalfCarry)
	c.shouldSetFlag(FlagCarry, carry)
}

func incrementIndex(index uint8) func(*CPU) uint8 {
	return func(c *CPU) uint8 {
		c.writeIndex(index, c.increment(c.readIndex(index)))
		return cyclesFor(index, 4, 12)
	}
}

func decrementIndex(index uint8) func(*CPU) uint8 {
	return func(c *CPU) uint8 {
		c.writeIndex(index, c.decrement(c.readIndex(index)))
		return cyclesFor(index, 4, 12)
	}
}

// incrementPair and decrementPair never touch the flags.
func incrementPair(index uint8) func(*CPU) uint8 {
	return func(c *CPU) uint8 {
		c.writePair(index, c.readPair(index)+1)
		return 8
	}
}

func decrementPair(index uint8) func(*CPU) uint8 {
	return func(c *CPU) uint8 {
		c.writePair(index, c.readPair(index)-1)
		return 8
	}
}

func addPairToHL(index uint8) func(*CPU) uint8 {
	return func(c *CPU) uint8 {
		c.addHL(c.readPair(index))
		return 8
	}
}

func init() {
	// 0x04 - 0x3C - INC r, 0x05 - 0x3D - DEC r
	for i := uint8(0); i < 8; i++ {
		DefineInstruction(0x04+i<<3, "INC "+registerNames[i], 1, incrementIndex(i))
		DefineInstruction(0x05+i<<3, "DEC "+registerNames[i], 1, decrementIndex(i))
	}

	// 0x03 - 0x33 - INC rr, 0x0B - 0x3B - DEC rr, 0x09 - 0x39 ADD HL, rr
	for i := uint8(0); i < 4; i++ {
		DefineInstruction(0x03+i<<4, "INC "+pairNames[i], 1, incrementPair(i))
		DefineInstruction(0x0B+i<<4, "DEC "+pairNames[i], 1, decrementPair(i))
		DefineInstruction(0x09+i<<4, fmt.Sprintf("ADD HL, %s", pairNames[i]), 1, addPairToHL(i))
	}

	DefineInstruction(0xE8, "ADD SP, r8", 2, func(c *CPU) uint8 {
		c.SP = c.addSPSigned()
		return 16
	})
}
