package gb

import (
	"context"
	"testing"
	"time"
)

func TestNewEmulator_WithBootROMStartsAtZero(t *testing.T) {
	rom := makeROM(2, 0x00, 0)
	cart, err := NewCartridge(rom)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	boot := make([]byte, 0x100)
	emu := NewEmulator(cart, boot, 2)
	if emu.CPU.Reg.PC != 0x0000 || emu.CPU.Reg.SP != 0x0000 {
		t.Fatalf("PC/SP = %#04x/%#04x, want 0x0000/0x0000 with boot ROM present", emu.CPU.Reg.PC, emu.CPU.Reg.SP)
	}
}

func TestNewEmulator_WithoutBootROMStartsAtPostBootState(t *testing.T) {
	rom := makeROM(2, 0x00, 0)
	cart, err := NewCartridge(rom)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	emu := NewEmulator(cart, nil, 2)
	if emu.CPU.Reg.PC != 0x0100 {
		t.Fatalf("PC = %#04x, want 0x0100 with no boot ROM", emu.CPU.Reg.PC)
	}
}

// Every fourth T-cycle advances the CPU by one micro-op; the other three
// only tick the timer forward.
func TestEmulator_TickAdvancesCPUEveryFourthTCycle(t *testing.T) {
	rom := makeROM(2, 0x00, 0)
	rom[0x0100] = 0x00 // NOP, fixed bank
	cart, err := NewCartridge(rom)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	emu := NewEmulator(cart, nil, 2)
	startPC := emu.CPU.Reg.PC

	for i := 0; i < 3; i++ {
		emu.tick()
	}
	if emu.CPU.Reg.PC != startPC {
		t.Fatalf("PC moved after only 3 T-cycles: %#04x -> %#04x", startPC, emu.CPU.Reg.PC)
	}
	emu.tick() // fourth T-cycle: one CPU Step()
	if emu.CPU.IRPC != startPC {
		t.Fatalf("IRPC = %#04x after the 4th T-cycle, want %#04x (cold-start fetch)", emu.CPU.IRPC, startPC)
	}
}

func TestEmulator_RunStopsOnContextCancel(t *testing.T) {
	rom := makeROM(2, 0x00, 0)
	cart, err := NewCartridge(rom)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	emu := NewEmulator(cart, nil, 2)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- emu.Run(ctx) }()

	select {
	case err := <-done:
		if err != context.DeadlineExceeded {
			t.Fatalf("Run returned %v, want context.DeadlineExceeded", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after its context was cancelled")
	}
}

func TestEmulator_PushFrameDropsWhenChannelFull(t *testing.T) {
	rom := makeROM(2, 0x00, 0)
	cart, err := NewCartridge(rom)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	emu := NewEmulator(cart, nil, 1)

	emu.PushFrame(Frame{Sequence: 1})
	emu.PushFrame(Frame{Sequence: 2}) // channel capacity 1: this one is dropped

	got := <-emu.Frames
	if got.Sequence != 1 {
		t.Fatalf("first frame received = %+v, want Sequence 1", got)
	}
	select {
	case extra := <-emu.Frames:
		t.Fatalf("unexpected second frame received: %+v", extra)
	default:
	}
}
