package timer

import (
	"testing"

	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
)

func newTimer() (*Controller, *interrupts.Service) {
	irq := interrupts.NewService()
	return NewController(irq), irq
}

func TestController_Divider(t *testing.T) {
	c, irq := newTimer()
	for i := 0; i < 64; i++ {
		c.Tick(4)
	}
	if got := c.Read(types.DIV); got != 1 {
		t.Errorf("expected DIV 1 after 256 cycles, got %d", got)
	}
	for i := 0; i < 255*64; i++ {
		c.Tick(4)
	}
	if got := c.Read(types.DIV); got != 0 {
		t.Errorf("expected DIV to wrap to 0, got %d", got)
	}
	if irq.Flag != 0 {
		t.Errorf("expected divider to never request interrupts, got %08b", irq.Flag)
	}

	c.Tick(200)
	c.Write(types.DIV, 0x55)
	c.Tick(100)
	if got := c.Read(types.DIV); got != 0 {
		t.Errorf("expected DIV write to reset the accumulator, got %d", got)
	}
}

func TestController_Frequencies(t *testing.T) {
	tests := []struct {
		tac    uint8
		period int
	}{
		{0b100, 1024},
		{0b101, 16},
		{0b110, 64},
		{0b111, 256},
	}
	for _, tt := range tests {
		c, _ := newTimer()
		c.Write(types.TAC, tt.tac)
		for i := 0; i < tt.period/4-1; i++ {
			c.Tick(4)
		}
		if got := c.Read(types.TIMA); got != 0 {
			t.Errorf("TAC %03b: expected TIMA 0 before %d cycles, got %d", tt.tac, tt.period, got)
		}
		c.Tick(4)
		if got := c.Read(types.TIMA); got != 1 {
			t.Errorf("TAC %03b: expected TIMA 1 after %d cycles, got %d", tt.tac, tt.period, got)
		}
	}
}

func TestController_Disabled(t *testing.T) {
	c, _ := newTimer()
	c.Write(types.TAC, 0b011)
	for i := 0; i < 1000; i++ {
		c.Tick(16)
	}
	if got := c.Read(types.TIMA); got != 0 {
		t.Errorf("expected disabled timer to hold TIMA, got %d", got)
	}
	if got := c.Read(types.TAC); got != 0xFB {
		t.Errorf("expected TAC 0xFB, got 0x%02X", got)
	}
}

func TestController_Overflow(t *testing.T) {
	c, irq := newTimer()
	c.Write(types.TMA, 0xF0)
	c.Write(types.TIMA, 0xFE)
	c.Write(types.TAC, 0b101)

	c.Tick(16)
	if irq.Flag&interrupts.TimerFlag != 0 {
		t.Errorf("expected no interrupt before overflow")
	}
	c.Tick(16)
	if got := c.Read(types.TIMA); got != 0xF0 {
		t.Errorf("expected TIMA reloaded from TMA, got 0x%02X", got)
	}
	if irq.Flag&interrupts.TimerFlag == 0 {
		t.Errorf("expected timer interrupt on overflow")
	}
}

func TestController_State(t *testing.T) {
	c, _ := newTimer()
	c.Write(types.TAC, 0b110)
	c.Write(types.TMA, 0x10)
	c.Tick(100)

	st := types.NewState()
	c.Save(st)

	loaded, _ := newTimer()
	loaded.Load(types.StateFromBytes(st.Bytes()))
	loaded.Tick(28)
	if got := loaded.Read(types.TIMA); got != 2 {
		t.Errorf("expected TIMA 2 after 128 cycles, got %d", got)
	}
	if !loaded.Enabled {
		t.Errorf("expected timer to be enabled")
	}
}
