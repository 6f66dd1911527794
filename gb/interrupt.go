package gb

// Interrupt enumerates the five GB interrupt sources in priority order
// (lowest bit/vector serviced first when more than one is pending).
type Interrupt int

const (
	IntVBlank Interrupt = iota
	IntLCDStat
	IntTimer
	IntSerial
	IntJoypad
)

const (
	addrIF = 0xFF0F
	addrIE = 0xFFFF
)

var interruptVector = [5]uint16{0x40, 0x48, 0x50, 0x58, 0x60}

// pendingInterrupt returns the highest-priority interrupt whose IE and IF
// bits are both set, or -1 if none is pending.
func pendingInterrupt(ieVal, ifVal byte) int {
	masked := ieVal & ifVal & 0x1F
	if masked == 0 {
		return -1
	}
	for i := 0; i < 5; i++ {
		if masked&(1<<uint(i)) != 0 {
			return i
		}
	}
	return -1
}

// checkWake runs at the top of every Step(), before nextOps is touched. A
// halted or stopped CPU wakes as soon as any enabled interrupt is pending,
// regardless of IME, per the documented HALT-wake behavior; actual
// dispatch (if IME is set) happens separately, from prefetchOrDispatch, at
// the instruction boundary rather than here.
func (c *CPU) checkWake() {
	ifVal := c.Bus.Read(addrIF)
	ieVal := c.Bus.Read(addrIE)
	if pendingInterrupt(ieVal, ifVal) < 0 {
		return
	}
	c.Halted = false
	c.Stopped = false
}

// prefetchOrDispatch runs at every instruction boundary: either folded into
// the last micro-op of the previous instruction (same Step() call, so the
// fetch costs no extra M-cycle), or from Step() when nextOps is empty after
// waking from HALT. If IME is set and an interrupt is pending, it services
// the interrupt instead of fetching — pushing the fixed 5-µop sequence (two
// internal-delay cycles, PC spilled high-then-low to the stack, PC set to
// the vector) ahead of whatever decode() would otherwise have queued. A CPU
// that just halted inside this same call (HALT's own micro-op carries
// Prefetch:true) must not immediately re-fetch or dispatch; it waits for a
// later Step() to observe the wake via checkWake.
func (c *CPU) prefetchOrDispatch() {
	if c.Halted || c.Stopped {
		return
	}
	if c.IME {
		ifVal := c.Bus.Read(addrIF)
		ieVal := c.Bus.Read(addrIE)
		if idx := pendingInterrupt(ieVal, ifVal); idx >= 0 {
			c.dispatchInterrupt(idx, ifVal)
			return
		}
	}
	c.executePrefetch()
}

func (c *CPU) dispatchInterrupt(idx int, ifVal byte) {
	c.IME = false
	c.Bus.Write(addrIF, ifVal&^(1<<uint(idx)))
	vector := interruptVector[idx]
	c.nextOps.reset([]MicroOp{
		internalDelay(),
		internalDelay(),
		{Kind: OpDataMove, Src: PCHigh(), Dst: Ind16D(RegSP)},
		{Kind: OpDataMove, Src: PCLow(), Dst: Ind16D(RegSP)},
		{Kind: OpDataMove, Src: Value(vector), Dst: R16(RegPC), Prefetch: true},
	})
	c.condOps = nil
}
