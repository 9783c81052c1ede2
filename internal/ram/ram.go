// Package ram provides a basic RAM implementation.
package ram

import "github.com/thelolagemann/gbcore/internal/types"

// RAM represents a block of RAM mapped at a fixed base address
// of the address space.
type RAM struct {
	base uint16
	data []uint8
}

// NewRAM returns a new RAM of the given size, mapped at base.
func NewRAM(base uint16, size uint32) *RAM {
	return &RAM{
		base: base,
		data: make([]uint8, size),
	}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address-r.base]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address-r.base] = value
}

// Contains reports whether address falls within the RAM.
func (r *RAM) Contains(address uint16) bool {
	return address >= r.base && int(address-r.base) < len(r.data)
}

var _ types.Stater = (*RAM)(nil)

// Load implements the types.Stater interface.
func (r *RAM) Load(s *types.State) {
	s.ReadData(r.data)
}

// Save implements the types.Stater interface.
func (r *RAM) Save(s *types.State) {
	s.WriteData(r.data)
}
