package cpu

import "testing"

func TestInstruction_RotateAccumulator(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		a, f   uint8
		want   uint8
		wantF  uint8
	}{
		{"RLCA", 0x07, 0x85, 0x00, 0x0B, 0x10},
		{"RRCA", 0x0F, 0x01, 0x00, 0x80, 0x10},
		{"RLA", 0x17, 0x80, 0x00, 0x00, 0x10},
		{"RLA", 0x17, 0x40, 0x10, 0x81, 0x00},
		{"RRA", 0x1F, 0x01, 0x00, 0x00, 0x10},
		{"RRA", 0x1F, 0x02, 0x10, 0x81, 0x00},
	}
	for _, tt := range tests {
		tt := tt
		testInstruction(t, tt.name, uint16(tt.opcode), func(t *testing.T, c *CPU) {
			c.A, c.F = tt.a, tt.f
			execute(c, tt.opcode)
			// the accumulator rotates never set Z, even on a zero result
			if c.A != tt.want || c.F != tt.wantF {
				t.Errorf("expected A=%02X F=%08b, got A=%02X F=%08b", tt.want, tt.wantF, c.A, c.F)
			}
		})
	}
}

func TestInstruction_RotateShift(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		b, f   uint8
		want   uint8
		wantF  uint8
	}{
		{"RLC B", 0xCB00, 0x85, 0x00, 0x0B, 0x10},
		{"RLC B", 0xCB00, 0x00, 0x10, 0x00, 0x80},
		{"RRC B", 0xCB08, 0x01, 0x00, 0x80, 0x10},
		{"RL B", 0xCB10, 0x80, 0x00, 0x00, 0x90},
		{"RR B", 0xCB18, 0x01, 0x10, 0x80, 0x10},
		{"SLA B", 0xCB20, 0xFF, 0x00, 0xFE, 0x10},
		{"SRA B", 0xCB28, 0x81, 0x00, 0xC0, 0x10},
		{"SWAP B", 0xCB30, 0xF1, 0x70, 0x1F, 0x00},
		{"SWAP B", 0xCB30, 0x00, 0x00, 0x00, 0x80},
		{"SRL B", 0xCB38, 0x81, 0x00, 0x40, 0x10},
		{"SRL B", 0xCB38, 0x01, 0x00, 0x00, 0x90},
	}
	for _, tt := range tests {
		tt := tt
		testInstruction(t, tt.name, tt.opcode, func(t *testing.T, c *CPU) {
			c.B, c.F = tt.b, tt.f
			execute(c, prefixCB, uint8(tt.opcode))
			if c.B != tt.want || c.F != tt.wantF {
				t.Errorf("B=%02X F=%08b: expected B=%02X F=%08b, got B=%02X F=%08b",
					tt.b, tt.f, tt.want, tt.wantF, c.B, c.F)
			}
			if c.PC != testCode+2 {
				t.Errorf("expected PC 0x%04X, got 0x%04X", testCode+2, c.PC)
			}
		})
	}

	testInstruction(t, "RLC (HL)", 0xCB06, func(t *testing.T, c *CPU) {
		c.HL.SetUint16(0xC800)
		c.mmu.Write(0xC800, 0x80)
		execute(c, prefixCB, 0x06)
		if got := c.mmu.Read(0xC800); got != 0x01 || !c.isFlagSet(FlagCarry) {
			t.Errorf("expected 0x01 with carry, got 0x%02X F=%08b", got, c.F)
		}
	})
}
