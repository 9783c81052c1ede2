// Package mmu provides a memory management unit for the Game Boy. The
// MMU owns the cartridge and the internal memories, and dispatches
// every read and write to the owner of the address.
package mmu

import (
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/timer"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// IOBus is the interface that the MMU uses to communicate with the other
// components.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory.
//
//	0x0000 - 0x7FFF  cartridge ROM, control registers on write
//	0x8000 - 0x9FFF  video RAM
//	0xA000 - 0xBFFF  cartridge RAM
//	0xC000 - 0xDFFF  work RAM
//	0xE000 - 0xFDFF  echo RAM (prohibited)
//	0xFE00 - 0xFE9F  sprite attribute table
//	0xFEA0 - 0xFEFF  unusable (prohibited)
//	0xFF00 - 0xFF7F  I/O registers
//	0xFF80 - 0xFFFE  high RAM
//	0xFFFF           interrupt enable register
//
// Any access to a prohibited region panics with a *types.Fault.
type MMU struct {
	// 0x0000 - 0x7FFF - ROM
	// 0xA000 - 0xBFFF - External RAM
	Cart *cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	Video IOBus

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	wRAM *WRAM

	// 0xFF00 - 0xFF7F - I/O Registers without an owner
	io *ram.RAM

	// 0xFF80 - 0xFFFE - High RAM (127B)
	hRAM *ram.RAM

	timer *timer.Controller
	irq   *interrupts.Service

	Log log.Logger
}

// NewMMU returns a new MMU owning cart. Timer registers are forwarded
// to t, and the interrupt registers to irq.
func NewMMU(cart *cartridge.Cartridge, irq *interrupts.Service, t *timer.Controller) *MMU {
	return &MMU{
		Cart:  cart,
		Video: newVideoMemory(),
		wRAM:  NewWRAM(),
		io:    ram.NewRAM(types.IOStart, 0x80),
		hRAM:  ram.NewRAM(types.HRAMStart, 0x7F),
		timer: t,
		irq:   irq,
		Log:   log.NewNullLogger(),
	}
}

// AttachVideo replaces the memory backing video RAM and the sprite
// attribute table.
func (m *MMU) AttachVideo(video IOBus) {
	m.Video = video
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address <= types.ROMEnd:
		return m.Cart.ReadROM(address)
	case address <= types.VRAMEnd:
		return m.Video.Read(address)
	case address <= types.ExternalRAMEnd:
		return m.Cart.ReadRAM(address)
	case address <= types.WRAMEnd:
		return m.wRAM.Read(address)
	case address <= types.EchoEnd:
		types.Raise(types.FaultProhibitedAccess, address, 0)
	case address <= types.OAMEnd:
		return m.Video.Read(address)
	case address <= types.UnusableEnd:
		types.Raise(types.FaultProhibitedAccess, address, 0)
	case address <= types.IOEnd:
		return m.readIO(address)
	case address <= types.HRAMEnd:
		return m.hRAM.Read(address)
	}
	return m.irq.Enable
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address <= types.ROMEnd:
		m.Cart.WriteROM(address, value)
	case address <= types.VRAMEnd:
		m.Video.Write(address, value)
	case address <= types.ExternalRAMEnd:
		m.Cart.WriteRAM(address, value)
	case address <= types.WRAMEnd:
		m.wRAM.Write(address, value)
	case address <= types.EchoEnd:
		types.Raise(types.FaultProhibitedAccess, address, 0)
	case address <= types.OAMEnd:
		m.Video.Write(address, value)
	case address <= types.UnusableEnd:
		types.Raise(types.FaultProhibitedAccess, address, 0)
	case address <= types.IOEnd:
		m.writeIO(address, value)
	case address <= types.HRAMEnd:
		m.hRAM.Write(address, value)
	default:
		m.irq.Enable = value
	}
}

// Read16 reads a little-endian 16-bit value, the low byte from
// address and the high byte from address+1.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Write16 writes a little-endian 16-bit value.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

func (m *MMU) readIO(address uint16) uint8 {
	switch {
	case m.timer.Handles(address):
		return m.timer.Read(address)
	case address == types.IF:
		return m.irq.ReadFlag()
	case address == types.SVBK:
		return m.wRAM.Bank()
	}
	return m.io.Read(address)
}

func (m *MMU) writeIO(address uint16, value uint8) {
	switch {
	case m.timer.Handles(address):
		m.timer.Write(address, value)
	case address == types.IF:
		m.irq.WriteFlag(value)
	case address == types.SVBK:
		m.wRAM.SetBank(value)
	default:
		m.Log.Debugf("write to unmapped I/O register %04X: %02X", address, value)
		m.io.Write(address, value)
	}
}

var _ types.Stater = (*MMU)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - Cart (cartridge.Controller)
//   - wRAM (WRAM)
//   - hRAM (ram.RAM)
//   - io (ram.RAM)
//   - Video (only when it implements types.Stater)
func (m *MMU) Load(s *types.State) {
	m.Cart.Load(s)
	m.wRAM.Load(s)
	m.hRAM.Load(s)
	m.io.Load(s)
	if st, ok := m.Video.(types.Stater); ok {
		st.Load(s)
	}
}

// Save implements the types.Stater interface.
func (m *MMU) Save(s *types.State) {
	m.Cart.Save(s)
	m.wRAM.Save(s)
	m.hRAM.Save(s)
	m.io.Save(s)
	if st, ok := m.Video.(types.Stater); ok {
		st.Save(s)
	}
}
