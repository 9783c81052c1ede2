package cartridge

import (
	"github.com/thelolagemann/gbcore/internal/types"
)

// Kind identifies the bank controller variant driving a Controller.
type Kind uint8

const (
	// KindNone is a cartridge without banking. ROM is mapped directly
	// and there is no external RAM.
	KindNone Kind = iota
	// KindMBC1 is the ROM+RAM combo controller, with a 7-bit ROM bank
	// index, a 2-bit RAM bank index and a mode flag choosing which of
	// them the upper bank register feeds.
	KindMBC1
	// KindMBC2 is the controller with 512 4-bit cells of built-in RAM
	// and a 4-bit ROM bank index.
	KindMBC2
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMBC1:
		return "MBC1"
	case KindMBC2:
		return "MBC2"
	}
	return "unknown"
}

// kindOf returns the controller variant for a cartridge type.
func kindOf(t Type) (Kind, bool) {
	switch t {
	case ROM:
		return KindNone, true
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return KindMBC1, true
	case MBC2, MBC2BATT:
		return KindMBC2, true
	}
	return 0, false
}

// Controller owns the ROM and RAM of a cartridge and translates bus
// addresses into offsets within them. The variant is fixed at
// construction; every method switches on it.
//
// Offsets that fall outside ROM or RAM read as 0 and drop writes, so
// cartridges smaller than their selected bank are tolerated. While RAM
// is disabled, RAM reads return 0 and writes are dropped.
type Controller struct {
	kind Kind
	rom  []byte
	ram  []byte

	ramEnabled bool
	romBank    uint32
	ramBank    uint32
	ramMode    bool // MBC1: upper bank register selects the RAM bank
}

func newController(kind Kind, rom []byte, ramSize uint) Controller {
	return Controller{
		kind:    kind,
		rom:     rom,
		ram:     make([]byte, ramSize),
		romBank: 1,
	}
}

// Kind returns the variant of the controller.
func (c *Controller) Kind() Kind {
	return c.kind
}

// ReadROM reads a byte from the ROM area (0x0000 - 0x7FFF).
func (c *Controller) ReadROM(address uint16) uint8 {
	switch c.kind {
	case KindMBC1:
		return c.mbc1ReadROM(address)
	case KindMBC2:
		return c.mbc2ReadROM(address)
	default:
		return c.noneReadROM(address)
	}
}

// WriteROM handles a write to the ROM area. ROM itself is never
// modified, the write is interpreted as a control register write.
func (c *Controller) WriteROM(address uint16, value uint8) {
	switch c.kind {
	case KindMBC1:
		c.mbc1WriteROM(address, value)
	case KindMBC2:
		c.mbc2WriteROM(address, value)
	}
}

// ReadRAM reads a byte from the external RAM area (0xA000 - 0xBFFF).
func (c *Controller) ReadRAM(address uint16) uint8 {
	switch c.kind {
	case KindMBC1:
		return c.mbc1ReadRAM(address)
	case KindMBC2:
		return c.mbc2ReadRAM(address)
	default:
		return 0
	}
}

// WriteRAM writes a byte to the external RAM area (0xA000 - 0xBFFF).
func (c *Controller) WriteRAM(address uint16, value uint8) {
	switch c.kind {
	case KindMBC1:
		c.mbc1WriteRAM(address, value)
	case KindMBC2:
		c.mbc2WriteRAM(address, value)
	}
}

// RAM returns the external RAM of the cartridge. The slice is owned by
// the controller and is exactly what a save file holds.
func (c *Controller) RAM() []byte {
	return c.ram
}

// LoadRAM copies b into the external RAM. Bytes past the end of RAM
// are ignored, and RAM past the end of b is left untouched.
func (c *Controller) LoadRAM(b []byte) {
	copy(c.ram, b)
	if c.kind == KindMBC2 {
		for i := range c.ram {
			c.ram[i] &= 0x0F
		}
	}
}

// ROMBank returns the switchable ROM bank currently mapped to
// 0x4000 - 0x7FFF.
func (c *Controller) ROMBank() uint32 {
	return c.romBank
}

// RAMBank returns the currently selected RAM bank.
func (c *Controller) RAMBank() uint32 {
	return c.ramBank
}

// RAMEnabled returns true if external RAM is currently accessible.
func (c *Controller) RAMEnabled() bool {
	return c.ramEnabled
}

// Patch copies data into ROM starting at offset, growing the ROM if
// needed. It exists to place programs directly into the address space
// without going through the bus, where ROM writes are control
// register writes.
func (c *Controller) Patch(offset int, data []byte) {
	if end := offset + len(data); end > len(c.rom) {
		grown := make([]byte, end)
		copy(grown, c.rom)
		c.rom = grown
	}
	copy(c.rom[offset:], data)
}

// romAt reads the ROM byte at address within the given bank, treating
// address as an offset into the switchable region.
func (c *Controller) romAt(bank uint32, address uint16) uint8 {
	offset := bank*0x4000 + uint32(address-types.ROMBankNStart)
	if offset >= uint32(len(c.rom)) {
		return 0
	}
	return c.rom[offset]
}

func (c *Controller) readRAMOffset(offset uint32) uint8 {
	if !c.ramEnabled || offset >= uint32(len(c.ram)) {
		return 0
	}
	return c.ram[offset]
}

func (c *Controller) writeRAMOffset(offset uint32, value uint8) {
	if !c.ramEnabled || offset >= uint32(len(c.ram)) {
		return
	}
	c.ram[offset] = value
}

var _ types.Stater = (*Controller)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - ramEnabled (bool)
//   - romBank (uint32)
//   - ramBank (uint32)
//   - ramMode (bool)
//   - ram ([]byte)
func (c *Controller) Load(s *types.State) {
	c.ramEnabled = s.ReadBool()
	c.romBank = s.Read32()
	c.ramBank = s.Read32()
	c.ramMode = s.ReadBool()
	s.ReadData(c.ram)
}

// Save implements the types.Stater interface.
func (c *Controller) Save(s *types.State) {
	s.WriteBool(c.ramEnabled)
	s.Write32(c.romBank)
	s.Write32(c.ramBank)
	s.WriteBool(c.ramMode)
	s.WriteData(c.ram)
}
