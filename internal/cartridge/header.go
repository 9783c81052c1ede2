package cartridge

import (
	"bytes"
	"fmt"
	"strings"
)

// Type is the cartridge type stored at 0x0147 of the header. It
// describes the memory bank controller and any additional hardware
// present on the cartridge.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MMM01             Type = 0x0B
	MMM01RAM          Type = 0x0C
	MMM01RAMBATT      Type = 0x0D
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
	POCKETCAMERA      Type = 0x1F
	BANDAITAMA5       Type = 0xFD
	HUDSONHUC3        Type = 0xFE
	HUDSONHUC1        Type = 0xFF
)

var typeNames = map[Type]string{
	ROM:               "ROM ONLY",
	MBC1:              "MBC1",
	MBC1RAM:           "MBC1+RAM",
	MBC1RAMBATT:       "MBC1+RAM+BATTERY",
	MBC2:              "MBC2",
	MBC2BATT:          "MBC2+BATTERY",
	ROMRAM:            "ROM+RAM",
	ROMRAMBATT:        "ROM+RAM+BATTERY",
	MMM01:             "MMM01",
	MMM01RAM:          "MMM01+RAM",
	MMM01RAMBATT:      "MMM01+RAM+BATTERY",
	MBC3TIMERBATT:     "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT:  "MBC3+TIMER+RAM+BATTERY",
	MBC3:              "MBC3",
	MBC3RAM:           "MBC3+RAM",
	MBC3RAMBATT:       "MBC3+RAM+BATTERY",
	MBC5:              "MBC5",
	MBC5RAM:           "MBC5+RAM",
	MBC5RAMBATT:       "MBC5+RAM+BATTERY",
	MBC5RUMBLE:        "MBC5+RUMBLE",
	MBC5RUMBLERAM:     "MBC5+RUMBLE+RAM",
	MBC5RUMBLERAMBATT: "MBC5+RUMBLE+RAM+BATTERY",
	POCKETCAMERA:      "POCKET CAMERA",
	BANDAITAMA5:       "BANDAI TAMA5",
	HUDSONHUC3:        "HuC3",
	HUDSONHUC1:        "HuC1+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%02X)", uint8(t))
}

var ramSizes = map[uint8]uint{
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// nintendoLogo is the bitmap every cartridge must carry at 0x0104-0x0133.
var nintendoLogo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

const (
	logoStart     = 0x0104
	logoEnd       = 0x0134
	titleStart    = 0x0134
	titleEnd      = 0x0143
	typeAddress   = 0x0147
	romSizeAddr   = 0x0148
	ramSizeAddr   = 0x0149
	checksumAddr  = 0x014D
	minHeaderSize = 0x0148
)

// Header represents the header of a cartridge, located at the address
// space 0x0100-0x014F. Only the fields the core relies on are parsed.
type Header struct {
	// 0x0134-0x0142 - Title of the game, trailing NULs removed
	Title string

	// 0x0147 - CartridgeType selects the memory bank controller
	CartridgeType Type

	// 0x0148 - ROMSize in bytes (32kB << n), 0 if the byte is missing
	ROMSize uint

	// 0x0149 - RAMSize in bytes as declared by the header
	RAMSize uint

	// 0x014D - HeaderChecksum over 0x0134-0x014C
	HeaderChecksum uint8

	checksumOK bool
}

// parseHeader validates and parses the header of the given ROM.
func parseHeader(rom []byte) (Header, error) {
	h := Header{}

	if len(rom) < minHeaderSize {
		return h, fmt.Errorf("%w: got %d bytes, need at least %d", ErrROMTooSmall, len(rom), minHeaderSize)
	}

	if !bytes.Equal(rom[logoStart:logoEnd], nintendoLogo[:]) {
		return h, ErrInvalidLogo
	}

	h.Title = strings.TrimRight(string(rom[titleStart:titleEnd]), "\x00")
	h.CartridgeType = Type(rom[typeAddress])

	if len(rom) > romSizeAddr {
		h.ROMSize = (32 * 1024) << (rom[romSizeAddr] & 0x0F)
	}
	if len(rom) > ramSizeAddr {
		h.RAMSize = ramSizes[rom[ramSizeAddr]]
	}
	if len(rom) > checksumAddr {
		h.HeaderChecksum = rom[checksumAddr]
		var sum uint8
		for _, b := range rom[titleStart:checksumAddr] {
			sum = sum - b - 1
		}
		h.checksumOK = sum == h.HeaderChecksum
	}

	return h, nil
}

// Battery returns true if the cartridge RAM is battery backed, and so
// should outlive the process.
func (h *Header) Battery() bool {
	switch h.CartridgeType {
	case MBC1RAMBATT, MBC2BATT:
		return true
	}
	return false
}

// HeaderChecksumOK reports whether the header checksum at 0x014D
// matches the header contents. Real hardware refuses to boot on a
// mismatch, the core only warns about it.
func (h *Header) HeaderChecksumOK() bool {
	return h.checksumOK
}

func (h *Header) String() string {
	return fmt.Sprintf("%s | Type: %s | ROM Size: %dkB | RAM Size: %dkB", h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}

// TypeName returns the name of the cartridge type, e.g. "MBC1+RAM".
func (h *Header) TypeName() string {
	return h.CartridgeType.String()
}
