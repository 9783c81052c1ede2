package cartridge

import (
	"errors"
	"testing"

	"github.com/thelolagemann/gbcore/internal/types"
)

// buildROM returns a valid image of the given number of 16kB banks,
// with every byte of bank n set to n.
func buildROM(t Type, banks int, ramCode uint8) []byte {
	rom := make([]byte, banks*0x4000)
	for bank := 0; bank < banks; bank++ {
		for i := 0; i < 0x4000; i++ {
			rom[bank*0x4000+i] = uint8(bank)
		}
	}
	copy(rom[logoStart:logoEnd], nintendoLogo[:])
	copy(rom[titleStart:], "TESTCART")
	rom[typeAddress] = uint8(t)
	rom[romSizeAddr] = 0x00
	rom[ramSizeAddr] = ramCode
	return rom
}

func TestNewCartridge_Errors(t *testing.T) {
	t.Run("too small", func(t *testing.T) {
		if _, err := NewCartridge(make([]byte, 0x147)); !errors.Is(err, ErrROMTooSmall) {
			t.Errorf("expected ErrROMTooSmall, got %v", err)
		}
	})
	t.Run("invalid logo", func(t *testing.T) {
		rom := buildROM(ROM, 2, 0)
		rom[logoStart] ^= 0xFF
		if _, err := NewCartridge(rom); !errors.Is(err, ErrInvalidLogo) {
			t.Errorf("expected ErrInvalidLogo, got %v", err)
		}
	})
	t.Run("unsupported type", func(t *testing.T) {
		for _, typ := range []Type{0x04, MBC3, MBC5, ROMRAM, HUDSONHUC1} {
			if _, err := NewCartridge(buildROM(typ, 2, 0)); !errors.Is(err, ErrUnsupportedType) {
				t.Errorf("type %s: expected ErrUnsupportedType, got %v", typ, err)
			}
		}
	})
	t.Run("exactly 0x148 bytes", func(t *testing.T) {
		rom := buildROM(ROM, 1, 0)[:0x148]
		c, err := NewCartridge(rom)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if c.RAMSize != 0 {
			t.Errorf("expected RAM size 0, got %d", c.RAMSize)
		}
	})
}

func TestHeader(t *testing.T) {
	rom := buildROM(MBC1RAMBATT, 4, 0x03)
	c, err := NewCartridge(rom)
	if err != nil {
		t.Fatal(err)
	}
	if c.Title != "TESTCART" {
		t.Errorf("expected title TESTCART, got %q", c.Title)
	}
	if c.Kind() != KindMBC1 {
		t.Errorf("expected MBC1, got %s", c.Kind())
	}
	if c.TypeName() != "MBC1+RAM+BATTERY" {
		t.Errorf("expected MBC1+RAM+BATTERY, got %s", c.TypeName())
	}
	if !c.Battery() {
		t.Errorf("expected battery backed cartridge")
	}
	if len(c.RAM()) != 0x8000 {
		t.Errorf("expected 0x8000 bytes of RAM, got 0x%X", len(c.RAM()))
	}
	if c.HeaderChecksumOK() {
		t.Errorf("expected zeroed checksum to be rejected")
	}

	var sum uint8
	for _, b := range rom[titleStart:checksumAddr] {
		sum = sum - b - 1
	}
	rom[checksumAddr] = sum
	c, _ = NewCartridge(rom)
	if !c.HeaderChecksumOK() {
		t.Errorf("expected checksum 0x%02X to be accepted", sum)
	}
}

func TestRAMSizes(t *testing.T) {
	tests := []struct {
		typ  Type
		code uint8
		want int
	}{
		{ROM, 0x03, 0},
		{MBC1, 0x03, 0},
		{MBC1RAM, 0x02, 0x2000},
		{MBC1RAM, 0x03, 0x8000},
		{MBC1RAM, 0x04, 0x20000},
		{MBC1RAMBATT, 0x05, 0x10000},
		{MBC1RAM, 0x01, 0},
		{MBC2, 0x00, 0x200},
		{MBC2BATT, 0x03, 0x200},
	}
	for _, tt := range tests {
		c, err := NewCartridge(buildROM(tt.typ, 2, tt.code))
		if err != nil {
			t.Fatal(err)
		}
		if len(c.RAM()) != tt.want {
			t.Errorf("%s with code %02X: expected 0x%X bytes, got 0x%X", tt.typ, tt.code, tt.want, len(c.RAM()))
		}
	}
}

func TestController_None(t *testing.T) {
	c, _ := NewCartridge(buildROM(ROM, 2, 0))
	if got := c.ReadROM(0x4000); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	c.WriteROM(0x2000, 0x05)
	if got := c.ReadROM(0x4000); got != 1 {
		t.Errorf("expected writes to be ignored, got %d", got)
	}
	c.WriteRAM(0xA000, 0x42)
	if got := c.ReadRAM(0xA000); got != 0 {
		t.Errorf("expected 0, got 0x%02X", got)
	}
}

func TestController_MBC1(t *testing.T) {
	t.Run("rom bank select", func(t *testing.T) {
		c, _ := NewCartridge(buildROM(MBC1, 64, 0))
		c.WriteROM(0x2000, 0x00)
		if c.ROMBank() != 1 {
			t.Errorf("expected bank 0 to select 1, got %d", c.ROMBank())
		}
		c.WriteROM(0x2000, 0x05)
		if c.ROMBank() != 5 {
			t.Errorf("expected bank 5, got %d", c.ROMBank())
		}
		if got := c.ReadROM(0x4000); got != 5 {
			t.Errorf("expected byte from bank 5, got %d", got)
		}
		if got := c.ReadROM(0x0000); got != 0 {
			t.Errorf("expected fixed bank to ignore banking, got %d", got)
		}
	})
	t.Run("upper rom bits", func(t *testing.T) {
		c, _ := NewCartridge(buildROM(MBC1, 64, 0))
		c.WriteROM(0x2000, 0x03)
		c.WriteROM(0x4000, 0x01)
		if c.ROMBank() != 0x23 {
			t.Errorf("expected bank 0x23, got 0x%02X", c.ROMBank())
		}
		c.WriteROM(0x2000, 0x00)
		if c.ROMBank() != 0x21 {
			t.Errorf("expected bank 0x21, got 0x%02X", c.ROMBank())
		}
		if got := c.ReadROM(0x7FFF); got != 0x21 {
			t.Errorf("expected byte from bank 0x21, got 0x%02X", got)
		}
	})
	t.Run("out of range bank", func(t *testing.T) {
		c, _ := NewCartridge(buildROM(MBC1, 4, 0))
		c.WriteROM(0x2000, 0x10)
		if got := c.ReadROM(0x4000); got != 0 {
			t.Errorf("expected 0 for missing bank, got %d", got)
		}
	})
	t.Run("ram enable gating", func(t *testing.T) {
		c, _ := NewCartridge(buildROM(MBC1RAM, 2, 0x03))
		for _, v := range []uint8{0x00, 0x0B, 0x1A, 0xFA, 0xFF} {
			c.WriteROM(0x0000, v)
			c.WriteRAM(0xA000, 0x42)
			if got := c.ReadRAM(0xA000); got != 0 {
				t.Errorf("enable byte %02X: expected 0, got 0x%02X", v, got)
			}
			if c.RAM()[0] != 0 {
				t.Errorf("enable byte %02X: expected write to be dropped", v)
			}
		}
		c.WriteROM(0x1FFF, 0x0A)
		c.WriteRAM(0xA000, 0x42)
		if got := c.ReadRAM(0xA000); got != 0x42 {
			t.Errorf("expected 0x42, got 0x%02X", got)
		}
		c.WriteROM(0x0000, 0x00)
		if got := c.ReadRAM(0xA000); got != 0 {
			t.Errorf("expected 0 once disabled, got 0x%02X", got)
		}
	})
	t.Run("ram banking", func(t *testing.T) {
		c, _ := NewCartridge(buildROM(MBC1RAM, 2, 0x03))
		c.WriteROM(0x0000, 0x0A)
		c.WriteROM(0x6000, 0x01)
		c.WriteROM(0x4000, 0x02)
		c.WriteRAM(0xA010, 0x99)
		if c.RAM()[2*0x2000+0x10] != 0x99 {
			t.Errorf("expected write into bank 2")
		}
		c.WriteROM(0x6000, 0x00)
		if got := c.ReadRAM(0xA010); got != 0 {
			t.Errorf("expected bank 0 in ROM mode, got 0x%02X", got)
		}
	})
	t.Run("no ram", func(t *testing.T) {
		c, _ := NewCartridge(buildROM(MBC1, 2, 0x03))
		c.WriteROM(0x0000, 0x0A)
		c.WriteRAM(0xA000, 0x42)
		if got := c.ReadRAM(0xA000); got != 0 {
			t.Errorf("expected 0, got 0x%02X", got)
		}
	})
}

func TestController_MBC2(t *testing.T) {
	t.Run("rom bank select", func(t *testing.T) {
		c, _ := NewCartridge(buildROM(MBC2, 16, 0))
		c.WriteROM(0x2100, 0x00)
		if c.ROMBank() != 1 {
			t.Errorf("expected bank 0 to select 1, got %d", c.ROMBank())
		}
		c.WriteROM(0x2100, 0xF7)
		if got := c.ReadROM(0x4000); got != 7 {
			t.Errorf("expected byte from bank 7, got %d", got)
		}
		// bit 8 clear addresses the RAM enable register
		c.WriteROM(0x2000, 0x03)
		if c.ROMBank() != 7 {
			t.Errorf("expected bank to stay 7, got %d", c.ROMBank())
		}
	})
	t.Run("ram nibbles", func(t *testing.T) {
		c, _ := NewCartridge(buildROM(MBC2, 2, 0))
		c.WriteRAM(0xA000, 0x0F)
		if got := c.ReadRAM(0xA000); got != 0 {
			t.Errorf("expected 0 while disabled, got 0x%02X", got)
		}
		c.WriteROM(0x0100, 0x0A)
		if c.RAMEnabled() {
			t.Errorf("expected bit 8 set to not address RAM enable")
		}
		c.WriteROM(0x0000, 0x0A)
		c.WriteRAM(0xA001, 0xAB)
		if c.RAM()[1] != 0x0B {
			t.Errorf("expected stored nibble 0x0B, got 0x%02X", c.RAM()[1])
		}
		if got := c.ReadRAM(0xA201); got != 0x0B {
			t.Errorf("expected RAM to wrap every 0x200 bytes, got 0x%02X", got)
		}
		c.LoadRAM([]byte{0xFF, 0xF3})
		if got := c.ReadRAM(0xBE01); got != 0x03 {
			t.Errorf("expected loaded cell masked to 0x03, got 0x%02X", got)
		}
	})
}

func TestController_State(t *testing.T) {
	c, _ := NewCartridge(buildROM(MBC1RAM, 8, 0x03))
	c.WriteROM(0x0000, 0x0A)
	c.WriteROM(0x2000, 0x05)
	c.WriteRAM(0xA123, 0x77)

	st := types.NewState()
	c.Save(st)

	loaded, _ := NewCartridge(buildROM(MBC1RAM, 8, 0x03))
	loaded.Load(types.StateFromBytes(st.Bytes()))
	if loaded.ROMBank() != 5 || !loaded.RAMEnabled() {
		t.Errorf("expected bank 5 with RAM enabled, got %d/%v", loaded.ROMBank(), loaded.RAMEnabled())
	}
	if got := loaded.ReadRAM(0xA123); got != 0x77 {
		t.Errorf("expected 0x77, got 0x%02X", got)
	}
}

func TestPatch(t *testing.T) {
	c := NewEmptyCartridge()
	c.Patch(0x7FFE, []byte{1, 2, 3, 4})
	if got := c.ReadROM(0x7FFF); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if len(c.rom) != 0x8002 {
		t.Errorf("expected ROM to grow to 0x8002, got 0x%X", len(c.rom))
	}
}
