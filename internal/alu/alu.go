// Package alu implements the pure arithmetic primitives shared by the
// CPU instructions. Every function returns the result together with
// the half-carry, carry and zero conditions it produced, leaving the
// caller to decide which of them reach the flag register.
package alu

// add performs x + y + carryIn on operands of the given bit width, and
// reports whether a carry left bit halfBit (the half-carry) or bit
// carryBit (the carry).
func add(bits uint8, x, y uint32, carryIn bool, halfBit, carryBit uint8) (res uint32, half, carry, zero bool) {
	c := uint32(0)
	if carryIn {
		c = 1
	}
	mask := uint32(1)<<bits - 1
	halfMask := uint32(1)<<halfBit - 1
	carryMask := uint32(1)<<carryBit - 1

	sum := x + y + c
	res = sum & mask
	half = (x&halfMask)+(y&halfMask)+c > halfMask
	carry = (x&carryMask)+(y&carryMask)+c > carryMask
	zero = res == 0
	return
}

// sub performs x - y - carryIn, where half and carry report a borrow
// into bit halfBit and bit carryBit respectively.
func sub(bits uint8, x, y uint32, carryIn bool, halfBit, carryBit uint8) (res uint32, half, carry, zero bool) {
	c := uint32(0)
	if carryIn {
		c = 1
	}
	mask := uint32(1)<<bits - 1
	halfMask := uint32(1)<<halfBit - 1
	carryMask := uint32(1)<<carryBit - 1

	res = (x - y - c) & mask
	half = x&halfMask < (y&halfMask)+c
	carry = x&carryMask < (y&carryMask)+c
	zero = res == 0
	return
}

// AddU8 adds two bytes and an optional carry.
//
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
//	Z - Set if result is zero.
func AddU8(x, y uint8, carryIn bool) (res uint8, half, carry, zero bool) {
	r, h, c, z := add(8, uint32(x), uint32(y), carryIn, 4, 8)
	return uint8(r), h, c, z
}

// SubU8 subtracts y and an optional borrow from x.
//
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
//	Z - Set if result is zero.
func SubU8(x, y uint8, carryIn bool) (res uint8, half, carry, zero bool) {
	r, h, c, z := sub(8, uint32(x), uint32(y), carryIn, 4, 8)
	return uint8(r), h, c, z
}

// AddU16 adds two 16-bit values and an optional carry.
//
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
//	Z - Set if result is zero.
func AddU16(x, y uint16, carryIn bool) (res uint16, half, carry, zero bool) {
	r, h, c, z := add(16, uint32(x), uint32(y), carryIn, 12, 16)
	return uint16(r), h, c, z
}

// AddU16Signed adds the sign-extended byte e to x. The result wraps at
// 16 bits, but half-carry and carry are taken from the low byte, from
// bit 3 and bit 7 respectively.
func AddU16Signed(x uint16, e uint8) (res uint16, half, carry, zero bool) {
	r, h, c, z := add(16, uint32(x), uint32(Signed(e)), false, 4, 8)
	return uint16(r), h, c, z
}

// Signed sign-extends v to 16 bits.
func Signed(v uint8) uint16 {
	if v&0x80 != 0 {
		return 0xFF00 | uint16(v)
	}
	return uint16(v)
}
