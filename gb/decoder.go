package gb

// decode is a pure function mapping an opcode to its micro-op queue. It
// covers all 256 base opcodes (opcode 0xCB decodes to a single Prefix
// micro-op; the CB-suffixed opcode is separately handled by
// decodePrefixOpcode). The final micro-op normally carries prefetch:true,
// folding the next instruction's fetch into the same M-cycle, so queue
// length equals the instruction's documented M-cycle count. PUSH rp2 is the
// one exception: its last micro-op leaves prefetch:false on purpose, so the
// CPU spends a separate, otherwise-free Step() fetching the next opcode —
// supplying the cycle PUSH's queue would otherwise be one M-cycle short of.
// Conditional JR/JP/CALL/RET heads end in their condition-checking micro-op
// instead: it splices the taken tail (decodeCondition) or, when the
// condition fails, queues a single prefetchOnly, and either path adds up to
// the documented count for that outcome.
func decode(opcode byte) []MicroOp {
	if ops := baseTable[opcode]; len(ops) > 0 {
		return ops
	}
	return []MicroOp{prefetchOnly()}
}

// decodeCondition returns the "taken branch" tail queue for the conditional
// JR/JP/CALL/RET family; CheckCC/ReadLSBCC/ReadMSBCC splice this queue into
// next_ops when the condition holds.
func decodeCondition(opcode byte) []MicroOp {
	if ops := condTable[opcode]; ops != nil {
		return ops
	}
	return nil
}

// decodePrefixOpcode maps a CB-suffixed opcode to its micro-op queue.
func decodePrefixOpcode(opcode byte) []MicroOp {
	class := (opcode >> 6) & 3
	mid := (opcode >> 3) & 7
	regCode := opcode & 7
	target := reg8FromCode(regCode)
	isHL := regCode == 6

	switch class {
	case 0: // ROT: rotate/shift/swap
		op := rotOperation(mid, target)
		if isHL {
			return []MicroOp{
				dataMove(Ind16(RegHL), RegScratch8(), false),
				operationOn(op, RegScratch, false),
				dataMove(RegScratch8(), Ind16(RegHL), true),
			}
		}
		return []MicroOp{operation(op, true)}
	case 1: // BIT n,target
		op := Operation{Op: AluBit, Left: target, BitIndex: uint(mid), Dest: Value(0), Mask: FlagZ | FlagN | FlagH}
		if isHL {
			return []MicroOp{
				dataMove(Ind16(RegHL), RegScratch8(), false),
				operationOn(op, RegScratch, true),
			}
		}
		return []MicroOp{operation(op, true)}
	case 2: // RES n,target
		op := Operation{Op: AluRes, Left: target, BitIndex: uint(mid), Dest: target, Mask: 0}
		if isHL {
			return []MicroOp{
				dataMove(Ind16(RegHL), RegScratch8(), false),
				operationOn(op, RegScratch, false),
				dataMove(RegScratch8(), Ind16(RegHL), true),
			}
		}
		return []MicroOp{operation(op, true)}
	case 3: // SET n,target
		op := Operation{Op: AluSet, Left: target, BitIndex: uint(mid), Dest: target, Mask: 0}
		if isHL {
			return []MicroOp{
				dataMove(Ind16(RegHL), RegScratch8(), false),
				operationOn(op, RegScratch, false),
				dataMove(RegScratch8(), Ind16(RegHL), true),
			}
		}
		return []MicroOp{operation(op, true)}
	}
	return []MicroOp{prefetchOnly()}
}

// RegScratch is a synthetic Reg8 slot (the Z half of WZ) used by CB-prefixed
// (HL) operations to stage the indirect byte across the read/modify/write
// sequence without a dedicated ALU operand slot.
const RegScratch = RegZ

func operationOn(op Operation, target Reg8, prefetch bool) MicroOp {
	op.Left = R8(target)
	op.Dest = R8(target)
	return operation(op, prefetch)
}

func rotOperation(mid byte, target RWTarget) Operation {
	base := Operation{Left: target, Dest: target, Mask: FlagZ | FlagN | FlagH | FlagC}
	switch mid {
	case 0:
		base.Op, base.Shift = AluLsh, ShiftRC
	case 1:
		base.Op, base.Shift = AluRsh, ShiftRC
	case 2:
		base.Op, base.Shift = AluLsh, ShiftR
	case 3:
		base.Op, base.Shift = AluRsh, ShiftR
	case 4:
		base.Op, base.Shift = AluLsh, ShiftSL
	case 5:
		base.Op, base.Shift = AluRsh, ShiftSA
	case 6:
		base.Op, base.Mask = AluSwap, FlagZ|FlagN|FlagH|FlagC
	case 7:
		base.Op, base.Shift = AluRsh, ShiftSL
	}
	return base
}

func reg8FromCode(code byte) RWTarget {
	switch code {
	case 0:
		return R8(RegB)
	case 1:
		return R8(RegC)
	case 2:
		return R8(RegD)
	case 3:
		return R8(RegE)
	case 4:
		return R8(RegH)
	case 5:
		return R8(RegL)
	case 6:
		return Ind16(RegHL)
	case 7:
		return R8(RegA)
	}
	panic("gb: invalid 8-bit register code")
}

var rpTable = [4]Reg16{RegBC, RegDE, RegHL, RegSP}
var rp2Table = [4]Reg16{RegBC, RegDE, RegHL, RegAF}
var condTableIdx = [4]Condition{CondNZ, CondZ, CondNC, CondC}

var aluMaskAll = FlagZ | FlagN | FlagH | FlagC
var aluMaskNoC = FlagZ | FlagN | FlagH

func aluOpFromY(y byte) (AluOp, bool) {
	// returns (op, isCP)
	switch y {
	case 0:
		return AluAdd, false
	case 1:
		return AluAdc, false
	case 2:
		return AluSub, false
	case 3:
		return AluSbc, false
	case 4:
		return AluAnd, false
	case 5:
		return AluXor, false
	case 6:
		return AluOr, false
	case 7:
		return AluSub, true
	}
	panic("gb: invalid alu y")
}

func aluDest(isCP bool) RWTarget {
	if isCP {
		return Value(0)
	}
	return R8(RegA)
}

var baseTable [256][]MicroOp
var condTable [256][]MicroOp

func init() {
	buildBaseTable()
	buildConditionTable()
}

func buildBaseTable() {
	for op := 0; op < 256; op++ {
		baseTable[op] = buildOpcode(byte(op))
	}
}

// buildOpcode constructs the micro-op queue for one base-table opcode using
// the classic x/y/z/p/q decomposition (x=bits7-6, y=bits5-3, z=bits2-0,
// p=y>>1, q=y&1), with explicit overrides for the irregular instructions.
func buildOpcode(op byte) []MicroOp {
	if special, ok := buildSpecialOpcode(op); ok {
		return special
	}
	x := (op >> 6) & 3
	y := (op >> 3) & 7
	z := op & 7
	p := y >> 1
	q := y & 1

	switch x {
	case 0:
		return buildBlock0(op, y, z, p, q)
	case 1: // LD r,r' (0x76 HALT handled as special case above)
		dst := reg8FromCode(y)
		src := reg8FromCode(z)
		if y == 6 || z == 6 { // (HL) operand costs the extra memory-access M-cycle
			return []MicroOp{dataMove(src, dst, false), prefetchOnly()}
		}
		return []MicroOp{dataMove(src, dst, true)}
	case 2: // ALU A,r
		aop, isCP := aluOpFromY(y)
		o := Operation{Op: aop, Left: R8(RegA), Right: reg8FromCode(z), Dest: aluDest(isCP), Mask: aluMaskAll}
		if z == 6 { // ALU A,(HL): the memory read costs an extra M-cycle
			return []MicroOp{operation(o, false), prefetchOnly()}
		}
		return []MicroOp{operation(o, true)}
	case 3:
		return buildBlock3(op, y, z, p, q)
	}
	return []MicroOp{prefetchOnly()}
}

func buildBlock0(op byte, y, z, p, q byte) []MicroOp {
	switch z {
	case 0:
		switch y {
		case 0: // NOP (opcode 0x00)
			return []MicroOp{prefetchOnly()}
		case 1: // LD (a16),SP (opcode 0x08) — built in buildSpecialOpcode
			return []MicroOp{prefetchOnly()}
		case 2: // STOP (opcode 0x10) — built in buildSpecialOpcode
			return []MicroOp{prefetchOnly()}
		case 3: // JR d8 (opcode 0x18) — built in buildSpecialOpcode
			return []MicroOp{prefetchOnly()}
		default: // JR cc,d8 (y=4..7, opcodes 0x20/0x28/0x30/0x38) — built in buildSpecialOpcode
			return []MicroOp{prefetchOnly()}
		}
	case 1:
		if q == 0 { // LD rp,d16
			rp := rpTable[p]
			return []MicroOp{readLSB(false), readMSB(false), dataMove(R16(RegWZ), R16(rp), true)}
		}
		// ADD HL,rp
		rp := rpTable[p]
		return []MicroOp{addHLStep1(rp), addHLStep2(rp)}
	case 2:
		return ldIndirectAccum(p, q)
	case 3:
		rp := rpTable[p]
		if q == 0 {
			return []MicroOp{incDec16(rp, true), prefetchOnly()}
		}
		return []MicroOp{incDec16(rp, false), prefetchOnly()}
	case 4: // INC r8
		t := reg8FromCode(y)
		o := Operation{Op: AluInc, Left: t, Dest: t, Mask: aluMaskNoC}
		if y == 6 {
			return []MicroOp{
				dataMove(Ind16(RegHL), RegScratch8(), false),
				operation(Operation{Op: AluInc, Left: RegScratch8(), Dest: RegScratch8(), Mask: aluMaskNoC}, false),
				dataMove(RegScratch8(), Ind16(RegHL), true),
			}
		}
		return []MicroOp{operation(o, true)}
	case 5: // DEC r8
		t := reg8FromCode(y)
		if y == 6 {
			return []MicroOp{
				dataMove(Ind16(RegHL), RegScratch8(), false),
				operation(Operation{Op: AluDec, Left: RegScratch8(), Dest: RegScratch8(), Mask: aluMaskNoC}, false),
				dataMove(RegScratch8(), Ind16(RegHL), true),
			}
		}
		o := Operation{Op: AluDec, Left: t, Dest: t, Mask: aluMaskNoC}
		return []MicroOp{operation(o, true)}
	case 6: // LD r,d8
		t := reg8FromCode(y)
		if y == 6 {
			return []MicroOp{readIMM(false), dataMove(R8(RegZ), Ind16(RegHL), false), prefetchOnly()}
		}
		return []MicroOp{readIMM(false), dataMove(R8(RegZ), t, true)}
	case 7: // accumulator rotates + misc single-byte ops
		return accumulatorMisc(y)
	}
	return []MicroOp{prefetchOnly()}
}

// RegScratch8 returns the RWTarget for the scratch byte used by (HL)
// read-modify-write sequences.
func RegScratch8() RWTarget { return R8(RegScratch) }

func accumulatorMisc(y byte) []MicroOp {
	switch y {
	case 0: // RLCA
		return []MicroOp{operation(Operation{Op: AluLsh, Shift: ShiftRC, Left: R8(RegA), Dest: R8(RegA), Mask: FlagN | FlagH | FlagC}, true)}
	case 1: // RRCA
		return []MicroOp{operation(Operation{Op: AluRsh, Shift: ShiftRC, Left: R8(RegA), Dest: R8(RegA), Mask: FlagN | FlagH | FlagC}, true)}
	case 2: // RLA
		return []MicroOp{operation(Operation{Op: AluLsh, Shift: ShiftR, Left: R8(RegA), Dest: R8(RegA), Mask: FlagN | FlagH | FlagC}, true)}
	case 3: // RRA
		return []MicroOp{operation(Operation{Op: AluRsh, Shift: ShiftR, Left: R8(RegA), Dest: R8(RegA), Mask: FlagN | FlagH | FlagC}, true)}
	case 4: // DAA
		return []MicroOp{{Kind: OpDaa, Prefetch: true}}
	case 5: // CPL
		return []MicroOp{{Kind: OpCpl, Prefetch: true}}
	case 6: // SCF
		return []MicroOp{{Kind: OpScf, Prefetch: true}}
	case 7: // CCF
		return []MicroOp{{Kind: OpCcf, Prefetch: true}}
	}
	return []MicroOp{prefetchOnly()}
}

func ldIndirectAccum(p, q byte) []MicroOp {
	switch p {
	case 0:
		if q == 0 {
			return []MicroOp{dataMove(R8(RegA), Ind16(RegBC), false), prefetchOnly()}
		}
		return []MicroOp{dataMove(Ind16(RegBC), R8(RegA), false), prefetchOnly()}
	case 1:
		if q == 0 {
			return []MicroOp{dataMove(R8(RegA), Ind16(RegDE), false), prefetchOnly()}
		}
		return []MicroOp{dataMove(Ind16(RegDE), R8(RegA), false), prefetchOnly()}
	case 2:
		if q == 0 {
			return []MicroOp{dataMove(R8(RegA), Ind16I(RegHL), false), prefetchOnly()}
		}
		return []MicroOp{dataMove(Ind16I(RegHL), R8(RegA), false), prefetchOnly()}
	case 3:
		if q == 0 {
			return []MicroOp{dataMove(R8(RegA), Ind16D(RegHL), false), prefetchOnly()}
		}
		return []MicroOp{dataMove(Ind16D(RegHL), R8(RegA), false), prefetchOnly()}
	}
	return []MicroOp{prefetchOnly()}
}

func incDec16(rp Reg16, inc bool) MicroOp {
	// 16-bit INC/DEC takes two M-cycles with no flag changes on real
	// hardware: this no-flags Operation on the full pair, followed by the
	// caller's separate prefetchOnly.
	op := AluDec
	if inc {
		op = AluInc
	}
	return operation(Operation{Op: op, Left: R16(rp), Dest: R16(rp), Mask: 0}, false)
}

func addHLStep1(rp Reg16) MicroOp {
	return operation(Operation{Op: AluAdd, Left: R8(RegL), Right: lowOf(rp), Dest: R8(RegL), Mask: FlagC}, false)
}

func addHLStep2(rp Reg16) MicroOp {
	return operation(Operation{Op: AluAdc, Left: R8(RegH), Right: highOf(rp), Dest: R8(RegH), Mask: FlagN | FlagH | FlagC}, true)
}

func lowOf(rp Reg16) RWTarget {
	switch rp {
	case RegBC:
		return R8(RegC)
	case RegDE:
		return R8(RegE)
	case RegHL:
		return R8(RegL)
	case RegSP:
		return SPLow()
	}
	panic("gb: invalid pair for lowOf")
}

func highOf(rp Reg16) RWTarget {
	switch rp {
	case RegBC:
		return R8(RegB)
	case RegDE:
		return R8(RegD)
	case RegHL:
		return R8(RegH)
	case RegSP:
		return SPHigh()
	}
	panic("gb: invalid pair for highOf")
}

func buildBlock3(op byte, y, z, p, q byte) []MicroOp {
	switch z {
	case 0:
		if y <= 3 { // RET cc
			return []MicroOp{checkCC(condTableIdx[y])}
		}
		switch y {
		case 4: // LDH (a8),A
			return []MicroOp{readIMM(false), dataMove(R8(RegA), HRAM(RegZ), false), prefetchOnly()}
		case 5: // ADD SP,e8
			return []MicroOp{readIMM(false), aluAddSPStep(), aluAddSPStep(), dataMove(R16(RegWZ), R16(RegSP), true)}
		case 6: // LDH A,(a8)
			return []MicroOp{readIMM(false), dataMove(HRAM(RegZ), R8(RegA), false), prefetchOnly()}
		case 7: // LD HL,SP+e8
			return []MicroOp{readIMM(false), aluAddSPStep(), dataMove(R16(RegWZ), R16(RegHL), true)}
		}
	case 1:
		if q == 0 { // POP rp2
			rp := rp2Table[p]
			return []MicroOp{
				dataMove(Ind16I(RegSP), R8(RegZ), false),
				dataMove(Ind16I(RegSP), R8(RegW), false),
				dataMove(R16(RegWZ), R16(rp), true),
			}
		}
		switch p {
		case 0: // RET
			return []MicroOp{
				dataMove(Ind16I(RegSP), R8(RegZ), false),
				dataMove(Ind16I(RegSP), R8(RegW), false),
				dataMove(R16(RegWZ), R16(RegPC), false),
				prefetchOnly(),
			}
		case 1: // RETI
			return []MicroOp{
				dataMove(Ind16I(RegSP), R8(RegZ), false),
				dataMove(Ind16I(RegSP), R8(RegW), false),
				{Kind: OpRetI, Prefetch: false},
				prefetchOnly(),
			}
		case 2: // JP HL
			return []MicroOp{dataMove(R16(RegHL), R16(RegPC), true)}
		case 3: // LD SP,HL
			return []MicroOp{dataMove(R16(RegHL), R16(RegSP), false), prefetchOnly()}
		}
	case 2:
		if y <= 3 { // JP cc,a16: unconditional LSB read, condition checked at MSB
			return []MicroOp{readLSB(false), readMSBCC(condTableIdx[y])}
		}
		switch y {
		case 4: // LD (C),A
			return []MicroOp{dataMove(R8(RegA), HRAM(RegC), false), prefetchOnly()}
		case 5: // LD (a16),A
			return []MicroOp{readLSB(false), readMSB(false), dataMove(R8(RegA), Ind16(RegWZ), false), prefetchOnly()}
		case 6: // LD A,(C)
			return []MicroOp{dataMove(HRAM(RegC), R8(RegA), false), prefetchOnly()}
		case 7: // LD A,(a16)
			return []MicroOp{readLSB(false), readMSB(false), dataMove(Ind16(RegWZ), R8(RegA), false), prefetchOnly()}
		}
	case 3:
		switch y {
		case 0: // JP a16
			return []MicroOp{readLSB(false), readMSB(false), dataMove(R16(RegWZ), R16(RegPC), false), prefetchOnly()}
		case 1: // CB prefix
			return []MicroOp{{Kind: OpPrefix, Prefetch: true}}
		case 6: // DI
			return []MicroOp{dataMove(Value(0), IMETarget(), true)}
		case 7: // EI
			return []MicroOp{{Kind: OpScheduleEI, Prefetch: true}}
		default: // 0xD3, 0xDB, 0xE3, 0xEB invalid (built in buildSpecialOpcode)
			return []MicroOp{prefetchOnly()}
		}
	case 4:
		if y <= 3 { // CALL cc,a16: unconditional LSB read, condition checked at MSB
			return []MicroOp{readLSB(false), readMSBCC(condTableIdx[y])}
		}
		return []MicroOp{prefetchOnly()} // 0xE4, 0xEC, 0xF4, 0xFC invalid (built in buildSpecialOpcode)
	case 5:
		if q == 0 {
			// PUSH rp2 (0xC5/0xD5/0xE5/0xF5) is built in buildSpecialOpcode.
			return []MicroOp{prefetchOnly()}
		}
		if p == 0 { // CALL a16
			return []MicroOp{readLSB(false), readMSB(false), internalDelay(), pushHigh(RegPC), pushLow(RegPC), jumpToWZ()}
		}
		return []MicroOp{prefetchOnly()}
	case 6: // ALU A,d8
		aop, isCP := aluOpFromY(y)
		return []MicroOp{readIMM(false), operation(Operation{Op: aop, Left: R8(RegA), Right: R8(RegZ), Dest: aluDest(isCP), Mask: aluMaskAll}, true)}
	case 7: // RST n
		return []MicroOp{
			internalDelay(),
			pushHigh(RegPC), pushLow(RegPC),
			rstJump(y),
		}
	}
	return []MicroOp{prefetchOnly()}
}

func pushHigh(pair Reg16) MicroOp {
	return MicroOp{Kind: OpDataMove, Src: highReg(pair), Dst: Ind16D(RegSP), Prefetch: false}
}

func pushLow(pair Reg16) MicroOp {
	return MicroOp{Kind: OpDataMove, Src: lowReg(pair), Dst: Ind16D(RegSP), Prefetch: false}
}

func highReg(pair Reg16) RWTarget {
	switch pair {
	case RegBC:
		return R8(RegB)
	case RegDE:
		return R8(RegD)
	case RegHL:
		return R8(RegH)
	case RegAF:
		return R8(RegA)
	case RegPC:
		return PCHigh()
	}
	panic("gb: invalid pair for highReg")
}

func lowReg(pair Reg16) RWTarget {
	switch pair {
	case RegBC:
		return R8(RegC)
	case RegDE:
		return R8(RegE)
	case RegHL:
		return R8(RegL)
	case RegAF:
		return R8(RegF)
	case RegPC:
		return PCLow()
	}
	panic("gb: invalid pair for lowReg")
}

func jumpToWZ() MicroOp {
	return MicroOp{Kind: OpDataMove, Src: R16(RegWZ), Dst: R16(RegPC), Prefetch: true}
}

func rstJump(y byte) MicroOp {
	vector := uint16(y) * 8
	return MicroOp{Kind: OpDataMove, Src: Value(vector), Dst: R16(RegPC), Prefetch: true}
}

func aluAddSPStep() MicroOp {
	return MicroOp{Kind: OpOperation, Operation: Operation{Op: AluAds, Left: R16(RegSP), Right: R8(RegZ), Dest: R16(RegWZ), Mask: FlagH | FlagC}}
}

func buildConditionTable() {
	for op := 0; op < 256; op++ {
		condTable[op] = buildConditionTail(byte(op))
	}
}

func buildConditionTail(op byte) []MicroOp {
	x := (op >> 6) & 3
	y := (op >> 3) & 7
	z := op & 7
	if x == 0 && z == 0 && y >= 4 { // JR cc,d8
		return []MicroOp{jrApply(), prefetchOnly()}
	}
	if x == 3 && z == 2 && y <= 3 { // JP cc,a16: condition already verified, just jump
		return []MicroOp{dataMove(R16(RegWZ), R16(RegPC), false), prefetchOnly()}
	}
	if x == 3 && z == 4 && y <= 3 { // CALL cc,a16: condition already verified, spill PC and jump
		return []MicroOp{internalDelay(), pushHigh(RegPC), pushLow(RegPC), jumpToWZ()}
	}
	if x == 3 && z == 0 && y <= 3 { // RET cc
		return []MicroOp{
			dataMove(Ind16I(RegSP), R8(RegZ), false),
			dataMove(Ind16I(RegSP), R8(RegW), false),
			dataMove(R16(RegWZ), R16(RegPC), false),
			prefetchOnly(),
		}
	}
	return nil
}

// buildSpecialOpcode overrides the generic x/y/z decomposition for
// instructions whose encoding does not follow the regular grid (0x08, 0x10,
// 0x76, PUSH rp2, JR d8, the JR cc,d8 heads and the invalid opcodes), built
// directly instead of through buildBlock0/buildBlock3's placeholders. The
// JP/CALL/RET conditional heads come from buildBlock3.
func buildSpecialOpcode(op byte) ([]MicroOp, bool) {
	switch op {
	case 0x08: // LD (a16),SP: SP low byte to (a16), high byte to (a16+1)
		return []MicroOp{
			readLSB(false), readMSB(false),
			dataMove(SPLow(), Ind16I(RegWZ), false),
			dataMove(SPHigh(), Ind16(RegWZ), false),
			prefetchOnly(),
		}, true
	case 0x76: // HALT
		return []MicroOp{{Kind: OpHalt, Prefetch: true}}, true
	case 0x10: // STOP (the trailing 0x00 byte is not consumed; it is fetched as a NOP on wake)
		return []MicroOp{{Kind: OpStop, Prefetch: true}}, true
	case 0xC5: // PUSH BC
		return pushSeq(RegBC), true
	case 0xD5: // PUSH DE
		return pushSeq(RegDE), true
	case 0xE5: // PUSH HL
		return pushSeq(RegHL), true
	case 0xF5: // PUSH AF
		return pushSeq(RegAF), true
	case 0x18: // JR d8
		return []MicroOp{readLSB(false), jrApply(), prefetchOnly()}, true
	case 0x20, 0x28, 0x30, 0x38: // JR cc,d8
		idx := map[byte]byte{0x20: 0, 0x28: 1, 0x30: 2, 0x38: 3}[op]
		return []MicroOp{readLSBCC(condTableIdx[idx])}, true
	case 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD:
		return []MicroOp{prefetchOnly()}, true
	}
	return nil, false
}

// internalDelay is a micro-op with no architectural effect, spent on the
// internal setup cycle several instructions (PUSH, CALL, RST) burn before
// touching the stack.
func internalDelay() MicroOp {
	return MicroOp{Kind: OpDataMove, Src: Value(0), Dst: Value(0)}
}

func pushSeq(pair Reg16) []MicroOp {
	return []MicroOp{
		internalDelay(),
		pushHigh(pair),
		pushLow(pair),
	}
}

func jrApply() MicroOp {
	return MicroOp{Kind: OpJumpRelative}
}

