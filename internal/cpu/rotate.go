package cpu

// rotateLeft rotates value left by 1 bit, bit 7 moving to both
// bit 0 and the carry flag.
//
//	RLC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeft(value uint8) uint8 {
	carry := value&0x80 != 0
	result := value<<1 | value>>7
	c.setFlags(result == 0, false, false, carry)
	return result
}

// rotateRight rotates value right by 1 bit, bit 0 moving to both
// bit 7 and the carry flag.
//
//	RRC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRight(value uint8) uint8 {
	carry := value&0x01 != 0
	result := value>>1 | value<<7
	c.setFlags(result == 0, false, false, carry)
	return result
}

// rotateLeftThroughCarry rotates value left through the carry flag.
//
//	RL n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(value uint8) uint8 {
	result := value << 1
	if c.isFlagSet(FlagCarry) {
		result |= 0x01
	}
	c.setFlags(result == 0, false, false, value&0x80 != 0)
	return result
}

// rotateRightThroughCarry rotates value right through the carry flag.
//
//	RR n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(value uint8) uint8 {
	result := value >> 1
	if c.isFlagSet(FlagCarry) {
		result |= 0x80
	}
	c.setFlags(result == 0, false, false, value&0x01 != 0)
	return result
}

// rotateAccumulator wraps one of the rotates for the 1-byte
// accumulator forms, which always reset the zero flag.
func rotateAccumulator(rotate func(*CPU, uint8) uint8) func(*CPU) uint8 {
	return func(c *CPU) uint8 {
		c.A = rotate(c, c.A)
		c.clearFlag(FlagZero)
		return 4
	}
}

func init() {
	DefineInstruction(0x07, "RLCA", 1, rotateAccumulator((*CPU).rotateLeft))
	DefineInstruction(0x0F, "RRCA", 1, rotateAccumulator((*CPU).rotateRight))
	DefineInstruction(0x17, "RLA", 1, rotateAccumulator((*CPU).rotateLeftThroughCarry))
	DefineInstruction(0x1F, "RRA", 1, rotateAccumulator((*CPU).rotateRightThroughCarry))
}
