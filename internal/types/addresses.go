package types

// Memory regions of the 16-bit address space. Bounds are inclusive.
const (
	ROMBankNStart    uint16 = 0x4000
	ROMEnd           uint16 = 0x7FFF
	VRAMStart        uint16 = 0x8000
	VRAMEnd          uint16 = 0x9FFF
	ExternalRAMStart uint16 = 0xA000
	ExternalRAMEnd   uint16 = 0xBFFF
	WRAMEnd          uint16 = 0xDFFF
	EchoEnd          uint16 = 0xFDFF
	OAMStart         uint16 = 0xFE00
	OAMEnd           uint16 = 0xFE9F
	UnusableEnd      uint16 = 0xFEFF
	IOStart          uint16 = 0xFF00
	IOEnd            uint16 = 0xFF7F
	HRAMStart        uint16 = 0xFF80
	HRAMEnd          uint16 = 0xFFFE
)

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// DIV is the address of the DIV hardware register. The DIV
	// hardware register is incremented every 256 clock cycles.
	// Writing any value to it resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. The TIMA
	// hardware register is incremented at a rate specified by the TAC
	// hardware register. When TIMA overflows, it is reset to the value
	// specified by the TMA hardware register, and a timer interrupt is
	// requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register. The TMA
	// hardware register is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register. The TAC
	// hardware register is used to control the timer.
	//
	//  Bit 2: Timer Enable
	//  Bits 1-0: Input Clock Select
	//         00: 1024 cycles
	//         01: 16 cycles
	//         10: 64 cycles
	//         11: 256 cycles
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// SVBK is the address of the SVBK hardware register. The SVBK
	// hardware register selects the work RAM bank mapped to
	// 0xD000 - 0xDFFF. Writing 0 selects bank 1.
	SVBK HardwareAddress = 0xFF70
	// IE is the address of the IE hardware register. The IE
	// hardware register is used to enable interrupts. Writing a 1
	// to a bit in IE Enables the corresponding interrupt, and writing
	// a 0 disables the interrupt.
	IE HardwareAddress = 0xFFFF
)
