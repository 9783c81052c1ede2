package mmu

import (
	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/types"
)

// videoMemory backs video RAM and the sprite attribute table
// when no video unit is attached.
type videoMemory struct {
	vRAM *ram.RAM
	oam  *ram.RAM
}

func newVideoMemory() *videoMemory {
	return &videoMemory{
		vRAM: ram.NewRAM(types.VRAMStart, 0x2000),
		oam:  ram.NewRAM(types.OAMStart, 0xA0),
	}
}

func (v *videoMemory) Read(address uint16) uint8 {
	if v.vRAM.Contains(address) {
		return v.vRAM.Read(address)
	}
	return v.oam.Read(address)
}

func (v *videoMemory) Write(address uint16, value uint8) {
	if v.vRAM.Contains(address) {
		v.vRAM.Write(address, value)
		return
	}
	v.oam.Write(address, value)
}

func (v *videoMemory) Load(s *types.State) {
	v.vRAM.Load(s)
	v.oam.Load(s)
}

func (v *videoMemory) Save(s *types.State) {
	v.vRAM.Save(s)
	v.oam.Save(s)
}
