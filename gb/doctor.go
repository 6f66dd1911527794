package gb

import (
	"fmt"
	"io"
)

// DoctorLog writes one line per executed instruction in the byte-exact
// format expected by GB Doctor-style reference logs, for line-by-line
// comparison against a known-good trace. It implements DebugSink and hooks
// in via CPU.Debug, logging from OnPrefetch — the one point guaranteed to
// fire exactly once per instruction, with PC and the register file still
// reflecting the state at that instruction's start.
type DoctorLog struct {
	Out io.Writer
	CPU *CPU
}

func NewDoctorLog(out io.Writer, cpu *CPU) *DoctorLog {
	return &DoctorLog{Out: out, CPU: cpu}
}

func (d *DoctorLog) OnPrefetch(pc uint16, opcode byte) {
	c := d.CPU
	mem := c.Bus.(*Memory).GetInstruction(pc)
	fmt.Fprintf(d.Out,
		"A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X PCMEM:%02X,%02X,%02X,%02X\n",
		c.Reg.A, c.Reg.F, c.Reg.B, c.Reg.C, c.Reg.D, c.Reg.E, c.Reg.H, c.Reg.L,
		c.Reg.SP, pc, mem[0], mem[1], mem[2], mem[3])
}

func (d *DoctorLog) OnInstructionEnd(uint16, byte)            {}
func (d *DoctorLog) OnRegister8Change(Reg8, byte, byte)       {}
func (d *DoctorLog) OnRegister16Change(Reg16, uint16, uint16) {}
func (d *DoctorLog) OnMicroOp(MicroOp)                        {}
