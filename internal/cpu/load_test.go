package cpu

import (
	"testing"

	"github.com/thelolagemann/gbcore/internal/types"
)

func TestInstruction_LoadMemory(t *testing.T) {
	testInstruction(t, "LD (BC), A", 0x02, func(t *testing.T, c *CPU) {
		c.BC.SetUint16(0xC800)
		c.A = 0x5A
		execute(c, 0x02)
		c.A = 0x00
		execute(c, 0x0A)
		if c.A != 0x5A {
			t.Errorf("expected A 0x5A after round trip, got 0x%02X", c.A)
		}
		if got := c.mmu.Read(0xC800); got != 0x5A {
			t.Errorf("expected 0x5A at 0xC800, got 0x%02X", got)
		}
	})
	testInstruction(t, "LD (HL+), A", 0x22, func(t *testing.T, c *CPU) {
		c.HL.SetUint16(0xC800)
		c.A = 0x11
		execute(c, 0x22)
		if c.HL.Uint16() != 0xC801 || c.mmu.Read(0xC800) != 0x11 {
			t.Errorf("expected write then increment, got HL=%04X", c.HL.Uint16())
		}
	})
	testInstruction(t, "LD A, (HL-)", 0x3A, func(t *testing.T, c *CPU) {
		c.HL.SetUint16(0xC800)
		c.mmu.Write(0xC800, 0x22)
		execute(c, 0x3A)
		if c.HL.Uint16() != 0xC7FF || c.A != 0x22 {
			t.Errorf("expected read then decrement, got HL=%04X A=%02X", c.HL.Uint16(), c.A)
		}
	})
	testInstruction(t, "LD (a16), SP", 0x08, func(t *testing.T, c *CPU) {
		c.SP = 0xBEEF
		execute(c, 0x08, 0x00, 0xC8)
		if c.mmu.Read(0xC800) != 0xEF || c.mmu.Read(0xC801) != 0xBE {
			t.Errorf("expected SP stored little-endian")
		}
	})
	testInstruction(t, "LDH (a8), A", 0xE0, func(t *testing.T, c *CPU) {
		c.A = 0x77
		execute(c, 0xE0, 0x90)
		if got := c.mmu.Read(0xFF90); got != 0x77 {
			t.Errorf("expected 0x77 at 0xFF90, got 0x%02X", got)
		}
		c.A = 0
		execute(c, 0xF0, 0x90)
		if c.A != 0x77 {
			t.Errorf("expected 0x77, got 0x%02X", c.A)
		}
	})
	testInstruction(t, "LD (C), A", 0xE2, func(t *testing.T, c *CPU) {
		c.A, c.C = 0x66, 0x85
		execute(c, 0xE2)
		if got := c.mmu.Read(0xFF85); got != 0x66 {
			t.Errorf("expected 0x66 at 0xFF85, got 0x%02X", got)
		}
	})
	testInstruction(t, "LD A, (a16)", 0xFA, func(t *testing.T, c *CPU) {
		c.mmu.Write(0xD123, 0x99)
		execute(c, 0xFA, 0x23, 0xD1)
		if c.A != 0x99 {
			t.Errorf("expected 0x99, got 0x%02X", c.A)
		}
	})
}

func TestInstruction_LoadRegister(t *testing.T) {
	// every LD r, r' must read its own source register
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == indexHL || src == indexHL {
				continue
			}
			opcode := 0x40 + dst<<3 + src
			testInstruction(t, "LD "+registerNames[dst]+", "+registerNames[src], uint16(opcode), func(t *testing.T, c *CPU) {
				for i := uint8(0); i < 8; i++ {
					if i != indexHL {
						*c.registerIndex(i) = 0x10 + i
					}
				}
				execute(c, opcode)
				if got := *c.registerIndex(dst); got != 0x10+src {
					t.Errorf("expected 0x%02X, got 0x%02X", 0x10+src, got)
				}
			})
		}
	}

	testInstruction(t, "LD (HL), d8", 0x36, func(t *testing.T, c *CPU) {
		c.HL.SetUint16(0xC800)
		execute(c, 0x36, 0xAB)
		if got := c.mmu.Read(0xC800); got != 0xAB {
			t.Errorf("expected 0xAB, got 0x%02X", got)
		}
	})
	testInstruction(t, "LD DE, d16", 0x11, func(t *testing.T, c *CPU) {
		execute(c, 0x11, 0x34, 0x12)
		if c.DE.Uint16() != 0x1234 {
			t.Errorf("expected DE 0x1234, got 0x%04X", c.DE.Uint16())
		}
	})
	testInstruction(t, "LD SP, d16", 0x31, func(t *testing.T, c *CPU) {
		execute(c, 0x31, 0xFE, 0xDF)
		if c.SP != 0xDFFE {
			t.Errorf("expected SP 0xDFFE, got 0x%04X", c.SP)
		}
	})
}

func TestInstruction_PushPop(t *testing.T) {
	testInstruction(t, "PUSH BC", 0xC5, func(t *testing.T, c *CPU) {
		c.BC.SetUint16(0x1234)
		execute(c, 0xC5)
		if c.SP != StackHigh-2 {
			t.Errorf("expected SP 0x%04X, got 0x%04X", StackHigh-2, c.SP)
		}
		execute(c, 0xD1)
		if c.DE.Uint16() != 0x1234 || c.SP != StackHigh {
			t.Errorf("expected DE 0x1234 and SP restored, got DE=%04X SP=%04X", c.DE.Uint16(), c.SP)
		}
	})
	testInstruction(t, "POP AF", 0xF1, func(t *testing.T, c *CPU) {
		c.Push(0x12FF)
		execute(c, 0xF1)
		if c.A != 0x12 || c.F != 0xF0 {
			t.Errorf("expected A 0x12 and F 0xF0, got A=%02X F=%02X", c.A, c.F)
		}
	})
	testInstruction(t, "POP HL", 0xE1, func(t *testing.T, c *CPU) {
		expectFault(t, types.FaultStackUnderflow, func() { execute(c, 0xE1) })
	})
}
