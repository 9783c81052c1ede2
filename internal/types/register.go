package types

// Register represents an 8-bit CPU register. The CPU has seven general
// purpose registers (A, B, C, D, E, H and L) plus the flag register F,
// of which only the upper nibble is ever set.
type Register = uint8

// RegisterPair represents two Registers combined into a single 16-bit
// value. The High register holds the most significant byte, so for BC
// the B register is High and C is Low.
type RegisterPair struct {
	High *Register
	Low  *Register

	// mask is applied to the low byte on writes, used by AF to keep
	// the low nibble of F clear.
	mask uint8
}

// NewRegisterPair returns a RegisterPair over the given registers.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, mask: 0xFF}
}

// NewMaskedRegisterPair returns a RegisterPair whose low register only
// accepts the bits set in mask.
func NewMaskedRegisterPair(high, low *Register, mask uint8) *RegisterPair {
	return &RegisterPair{High: high, Low: low, mask: mask}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.mask
}

// Registers represents the CPU register file.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}
