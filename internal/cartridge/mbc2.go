package cartridge

import "github.com/thelolagemann/gbcore/internal/types"

// mbc2RAMSize is the size of the built-in RAM, 512 4-bit cells.
const mbc2RAMSize = 0x200

func (c *Controller) mbc2ReadROM(address uint16) uint8 {
	if address < types.ROMBankNStart {
		return c.noneReadROM(address)
	}
	return c.romAt(c.romBank, address)
}

// mbc2WriteROM updates the control registers. Only writes to
// 0x0000 - 0x3FFF are registers, and bit 8 of the address selects
// which one:
//
//	bit 8 clear: RAM enable, only 0x0A enables
//	bit 8 set:   ROM bank, low 4 bits, 0 selects 1
func (c *Controller) mbc2WriteROM(address uint16, value uint8) {
	if address >= types.ROMBankNStart {
		return
	}
	if address&0x0100 == 0 {
		c.ramEnabled = value == 0x0A
		return
	}
	bank := uint32(value & 0x0F)
	if bank == 0 {
		bank = 1
	}
	c.romBank = bank
}

// mbc2ReadRAM reads a 4-bit cell. The 512 cells repeat across
// 0xA000 - 0xBFFF.
func (c *Controller) mbc2ReadRAM(address uint16) uint8 {
	return c.readRAMOffset(uint32(address-types.ExternalRAMStart)&(mbc2RAMSize-1)) & 0x0F
}

func (c *Controller) mbc2WriteRAM(address uint16, value uint8) {
	c.writeRAMOffset(uint32(address-types.ExternalRAMStart)&(mbc2RAMSize-1), value&0x0F)
}
