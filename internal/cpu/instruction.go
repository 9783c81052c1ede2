package cpu

// prefixCB selects the extended instruction set.
const prefixCB = 0xCB

// Instruction describes a single opcode: its code, mnemonic and
// length in bytes, including the CB prefix for extended opcodes.
// The function executes it and returns the clock cycles taken.
type Instruction struct {
	code   uint16
	name   string
	length uint8
	fn     func(*CPU) uint8
}

// Code returns the opcode, 0xCBxx for extended opcodes.
func (i Instruction) Code() uint16 { return i.code }

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string { return i.name }

// Length returns the length of the instruction in bytes.
func (i Instruction) Length() uint8 { return i.length }

// InstructionSet holds the unprefixed instructions, and
// InstructionSetCB the instructions following the CB prefix.
// Entries without a function are illegal opcodes.
var (
	InstructionSet   [256]Instruction
	InstructionSetCB [256]Instruction
)

// DefineInstruction defines the instruction in the InstructionSet,
// with the provided opcode.
func DefineInstruction(opcode uint8, name string, length uint8, fn func(*CPU) uint8) {
	InstructionSet[opcode] = Instruction{
		code:   uint16(opcode),
		name:   name,
		length: length,
		fn:     fn,
	}
}

// DefineInstructionCB defines the instruction in the InstructionSetCB.
// Every extended instruction is 2 bytes long.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU) uint8) {
	InstructionSetCB[opcode] = Instruction{
		code:   uint16(prefixCB)<<8 | uint16(opcode),
		name:   name,
		length: 2,
		fn:     fn,
	}
}

// Lookup returns the instruction for a code as formed by the fetch
// stage, and false if the code is illegal.
func Lookup(code uint16) (Instruction, bool) {
	var instruction Instruction
	switch code >> 8 {
	case 0x00:
		instruction = InstructionSet[code]
	case prefixCB:
		instruction = InstructionSetCB[code&0xFF]
	default:
		return instruction, false
	}
	return instruction, instruction.fn != nil
}

// disallowedOpcodes have no instruction on the hardware.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	DefineInstruction(0x00, "NOP", 1, func(c *CPU) uint8 { return 4 })
	DefineInstruction(0x10, "STOP", 2, func(c *CPU) uint8 {
		c.stopped = true
		return 4
	})
	DefineInstruction(0x76, "HALT", 1, func(c *CPU) uint8 { return 4 })
	DefineInstruction(0x27, "DAA", 1, func(c *CPU) uint8 {
		c.decimalAdjust()
		return 4
	})
	DefineInstruction(0x2F, "CPL", 1, func(c *CPU) uint8 {
		c.A = 0xFF ^ c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
		return 4
	})
	DefineInstruction(0x37, "SCF", 1, func(c *CPU) uint8 {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		return 4
	})
	DefineInstruction(0x3F, "CCF", 1, func(c *CPU) uint8 {
		c.shouldSetFlag(FlagCarry, !c.isFlagSet(FlagCarry))
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		return 4
	})
	DefineInstruction(0xF3, "DI", 1, func(c *CPU) uint8 {
		c.irq.IME = false
		return 4
	})
	DefineInstruction(0xFB, "EI", 1, func(c *CPU) uint8 {
		c.irq.IME = true
		return 4
	})
}
