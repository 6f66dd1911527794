package gb

import (
	"bytes"
	"testing"
)

func TestDoctorLog_EmitsOneByteExactLinePerInstruction(t *testing.T) {
	cart := &stubCart{}
	cart.rom[0x0100] = 0x00 // NOP
	cart.rom[0x0101] = 0x00 // NOP
	mem := NewMemory(cart, nil)
	cpu := NewCPU(mem)
	cpu.Reg = Registers{A: 0x01, F: 0xB0, B: 0x00, C: 0x13, D: 0x00, E: 0xD8, H: 0x01, L: 0x4D, SP: 0xFFFE, PC: 0x0100}

	var buf bytes.Buffer
	cpu.Debug = NewDoctorLog(&buf, cpu)

	cpu.Step() // cold start: this Step only fetches the opcode at 0x0100; the NOP has not executed yet

	want := "A:01 F:B0 B:00 C:13 D:00 E:D8 H:01 L:4D SP:FFFE PC:0100 PCMEM:00,00,00,00\n"
	if buf.String() != want {
		t.Fatalf("doctor log line =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestDoctorLog_OneLinePerInstructionBoundary(t *testing.T) {
	cart := &stubCart{}
	for i := 0; i < 4; i++ {
		cart.rom[0x0100+i] = 0x00 // four NOPs
	}
	mem := NewMemory(cart, nil)
	cpu := NewCPU(mem)
	cpu.Reg.PC = 0x0100

	var buf bytes.Buffer
	cpu.Debug = NewDoctorLog(&buf, cpu)

	for i := 0; i < 4; i++ {
		cpu.Step()
	}

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	if lines != 4 {
		t.Fatalf("doctor log emitted %d lines for 4 NOP fetches, want 4", lines)
	}
}
