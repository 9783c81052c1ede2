package cartridge

import "errors"

var (
	// ErrROMTooSmall is returned when the ROM is too short to hold a
	// cartridge header.
	ErrROMTooSmall = errors.New("cartridge: rom too small")
	// ErrInvalidLogo is returned when the logo bitmap in the header
	// does not match the reference bitmap.
	ErrInvalidLogo = errors.New("cartridge: invalid logo")
	// ErrUnsupportedType is returned for cartridge types without a
	// bank controller implementation.
	ErrUnsupportedType = errors.New("cartridge: unsupported cartridge type")
)
