package cartridge

import "github.com/thelolagemann/gbcore/internal/types"

// mbc1ReadROM reads from the fixed bank (0x0000 - 0x3FFF), or the
// switchable bank (0x4000 - 0x7FFF) selected by romBank.
func (c *Controller) mbc1ReadROM(address uint16) uint8 {
	if address < types.ROMBankNStart {
		return c.noneReadROM(address)
	}
	return c.romAt(c.romBank, address)
}

// mbc1WriteROM updates the control registers.
//
//	0x0000 - 0x1FFF: RAM enable, only 0x0A enables
//	0x2000 - 0x3FFF: ROM bank bits 0-4, 0 selects 1
//	0x4000 - 0x5FFF: RAM bank (RAM mode) or ROM bank bits 5-6 (ROM mode)
//	0x6000 - 0x7FFF: mode select, bit 0 set selects RAM mode
func (c *Controller) mbc1WriteROM(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		c.ramEnabled = value == 0x0A
	case address < types.ROMBankNStart:
		low := uint32(value & 0x1F)
		if low == 0 {
			low = 1
		}
		c.romBank = c.romBank&0x60 | low
	case address < 0x6000:
		if c.ramMode {
			c.ramBank = uint32(value & 0x03)
		} else {
			c.romBank = c.romBank&0x1F | uint32(value&0x03)<<5
		}
	case address < 0x8000:
		c.ramMode = value&0x01 == 0x01
	}
}

// mbc1RAMOffset translates a RAM address into an offset, using the
// RAM bank only while in RAM mode.
func (c *Controller) mbc1RAMOffset(address uint16) uint32 {
	var bank uint32
	if c.ramMode {
		bank = c.ramBank
	}
	return bank*0x2000 + uint32(address-types.ExternalRAMStart)
}

func (c *Controller) mbc1ReadRAM(address uint16) uint8 {
	return c.readRAMOffset(c.mbc1RAMOffset(address))
}

func (c *Controller) mbc1WriteRAM(address uint16, value uint8) {
	c.writeRAMOffset(c.mbc1RAMOffset(address), value)
}
