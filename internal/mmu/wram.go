package mmu

import "github.com/thelolagemann/gbcore/internal/types"

// WRAM is the 8 banks of 4kB work RAM. Bank 0 is fixed at
// 0xC000 - 0xCFFF, and the bank selected by types.SVBK is
// mapped at 0xD000 - 0xDFFF.
type WRAM struct {
	bank uint8
	raw  [8][0x1000]uint8
}

func NewWRAM() *WRAM {
	return &WRAM{
		bank: 1, // bank 1 is the default as the first bank is fixed
	}
}

func (w *WRAM) Read(addr uint16) uint8 {
	// are we reading from the fixed bank?
	if addr < 0xD000 {
		return w.raw[0][addr&0xFFF]
	}
	return w.raw[w.bank][addr&0xFFF]
}

func (w *WRAM) Write(addr uint16, v uint8) {
	// are we writing to the fixed bank?
	if addr < 0xD000 {
		w.raw[0][addr&0xFFF] = v
		return
	}
	w.raw[w.bank][addr&0xFFF] = v
}

// Bank returns the value of the types.SVBK register.
func (w *WRAM) Bank() uint8 {
	return w.bank | 0xF8
}

// SetBank writes the types.SVBK register.
func (w *WRAM) SetBank(v uint8) {
	v &= 0x07 // only 3 bits are used
	if v == 0 {
		v = 1
	}
	w.bank = v
}

var _ types.Stater = (*WRAM)(nil)

// Load implements the types.Stater interface.
func (w *WRAM) Load(s *types.State) {
	w.SetBank(s.Read8())
	for i := range w.raw {
		s.ReadData(w.raw[i][:])
	}
}

// Save implements the types.Stater interface.
func (w *WRAM) Save(s *types.State) {
	s.Write8(w.bank)
	for i := range w.raw {
		s.WriteData(w.raw[i][:])
	}
}
