package cartridge

// noneReadROM reads the ROM directly, there is no banking.
func (c *Controller) noneReadROM(address uint16) uint8 {
	if int(address) >= len(c.rom) {
		return 0
	}
	return c.rom[address]
}
