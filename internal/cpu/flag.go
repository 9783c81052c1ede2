package cpu

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= 1 << flag
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F |= 1 << flag
}

// shouldSetFlag sets the flag if set is true, and clears it otherwise.
func (c *CPU) shouldSetFlag(flag Flag, set bool) {
	if set {
		c.setFlag(flag)
	} else {
		c.clearFlag(flag)
	}
}

// setFlags assigns all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.shouldSetFlag(FlagZero, zero)
	c.shouldSetFlag(FlagSubtract, subtract)
	c.shouldSetFlag(FlagHalfCarry, halfCarry)
	c.shouldSetFlag(FlagCarry, carry)
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&(1<<flag) != 0
}

// isFlagsSet returns true if all the given flags are set.
func (c *CPU) isFlagsSet(flags ...Flag) bool {
	for _, flag := range flags {
		if !c.isFlagSet(flag) {
			return false
		}
	}
	return true
}

// isFlagsNotSet returns true if none of the given flags are set.
func (c *CPU) isFlagsNotSet(flags ...Flag) bool {
	for _, flag := range flags {
		if c.isFlagSet(flag) {
			return false
		}
	}
	return true
}

// Zero returns the state of the zero flag.
func (c *CPU) Zero() bool { return c.isFlagSet(FlagZero) }

// Subtract returns the state of the subtract flag.
func (c *CPU) Subtract() bool { return c.isFlagSet(FlagSubtract) }

// HalfCarry returns the state of the half carry flag.
func (c *CPU) HalfCarry() bool { return c.isFlagSet(FlagHalfCarry) }

// Carry returns the state of the carry flag.
func (c *CPU) Carry() bool { return c.isFlagSet(FlagCarry) }
