// Package cartridge parses cartridge images and provides the bank
// controllers that map their ROM and RAM into the address space.
package cartridge

import "fmt"

// Cartridge is a loaded cartridge image: its parsed header, and the
// bank controller that owns its ROM and RAM.
type Cartridge struct {
	Header
	Controller
}

// NewCartridge parses the header of rom and instantiates the bank
// controller it names. The returned error wraps one of ErrROMTooSmall,
// ErrInvalidLogo or ErrUnsupportedType.
func NewCartridge(rom []byte) (*Cartridge, error) {
	header, err := parseHeader(rom)
	if err != nil {
		return nil, err
	}

	kind, ok := kindOf(header.CartridgeType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, header.CartridgeType)
	}

	var ramSize uint
	switch header.CartridgeType {
	case MBC1RAM, MBC1RAMBATT:
		ramSize = header.RAMSize
	case MBC2, MBC2BATT:
		ramSize = mbc2RAMSize
	}

	return &Cartridge{
		Header:     header,
		Controller: newController(kind, rom, ramSize),
	}, nil
}

// NewEmptyCartridge returns a cartridge without banking, backed by a
// zeroed 32kB ROM. Programs are placed into it with Patch.
func NewEmptyCartridge() *Cartridge {
	return &Cartridge{
		Header:     Header{CartridgeType: ROM, ROMSize: 0x8000},
		Controller: newController(KindNone, make([]byte, 0x8000), 0),
	}
}
