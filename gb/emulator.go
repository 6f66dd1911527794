package gb

import (
	"context"
	"sync/atomic"
)

// Frame is a fully rendered framebuffer handed to the UI thread. PPU pixel
// rendering itself is out of scope, so Frame currently carries no pixel
// data — it exists so the concurrency contract (bounded channel,
// try-send/drop-on-full) and a future PPU have a documented hookup point.
type Frame struct {
	Sequence uint64
}

// Emulator owns the CPU, bus, and the chips the bus delegates to (timer,
// serial), and drives them forward one T-cycle at a time: every T-cycle
// advances the timer (serial has no per-cycle state; it acts only when SC
// is written); every fourth T-cycle additionally pops and
// executes one CPU micro-op, matching the M-cycle boundary real hardware
// runs on. The loop runs until ctx is canceled rather than polling an
// atomic running-flag.
type Emulator struct {
	CPU    *CPU
	Mem    *Memory
	Timer  *Timer
	Serial *Serial

	tCycle uint64

	Frames chan Frame
	Joypad atomic.Uint32 // bit-packed joypad state, written by the UI thread

	Logger Logger
}

// NewEmulator wires a CPU, bus and chips together over cart/bootROM, ready
// to Run. frameCapacity is typically 2, per the bounded-channel frame
// hand-off contract.
func NewEmulator(cart Cartridge, bootROM []byte, frameCapacity int) *Emulator {
	mem := NewMemory(cart, bootROM)
	ifByte := &mem.IO[addrIF-0xFF00]
	timer := &Timer{IF: ifByte}
	serial := &Serial{IF: ifByte}
	mem.Timer = timer
	mem.Serial = serial

	cpu := NewCPU(mem)
	if len(bootROM) > 0 {
		cpu.Reg = Registers{PC: 0x0000, SP: 0x0000}
	}

	return &Emulator{
		CPU:    cpu,
		Mem:    mem,
		Timer:  timer,
		Serial: serial,
		Frames: make(chan Frame, frameCapacity),
		Logger: NopLogger{},
	}
}

// Run drives the emulator until ctx is cancelled. Each iteration advances
// one T-cycle; one M-cycle's worth of CPU work (one micro-op) happens every
// fourth T-cycle.
func (e *Emulator) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		e.tick()
	}
}

func (e *Emulator) tick() {
	e.Timer.Tick()
	e.tCycle++
	if e.tCycle%4 == 0 {
		e.CPU.Step()
	}
}

// PushFrame offers f to the frame channel, dropping it if the consumer
// hasn't kept up — the emulation thread never blocks on UI backpressure.
func (e *Emulator) PushFrame(f Frame) {
	select {
	case e.Frames <- f:
	default:
	}
}
