// cpu_alu.go - Integer ALU opcode semantics

/*
 __  __ ___ ____  ____
|  \/  |_ _|  _ \/ ___| _ __  _ __   __ _ ___  ___
| |\/| || || |_) \___ \| '_ \| '_ \ / _` / __|/ _ \
| |  | || ||  __/ ___) | |_) | | | | (_| \__ \  __/
|_|  |_|___|_|   |____/| .__/|_| |_|\__,_|___/\___|
                        |_|

(c) 2026 the mipsphase authors
License: GPLv3 or later
*/

// cpu_alu.go implements opcode=SPECIAL's register-register arithmetic,
// logic and shift instructions plus their I-type (opcode-keyed immediate)
// counterparts: add/sub raise Overflow on signed 32-bit overflow and still
// write the truncated result; addu/subu wrap silently; mult/multu/div/divu
// populate HI:LO.

package main

func (p *Processor) sll(rd, rt, shamt uint8) {
	p.gprWrite(rd, p.gprRead(rt)<<(shamt&0x1F))
}

func (p *Processor) srl(rd, rt, shamt uint8) {
	p.gprWrite(rd, p.gprRead(rt)>>(shamt&0x1F))
}

func (p *Processor) sra(rd, rt, shamt uint8) {
	p.gprWrite(rd, uint32(int32(p.gprRead(rt))>>(shamt&0x1F)))
}

func (p *Processor) sllv(rd, rt, rs uint8) {
	p.gprWrite(rd, p.gprRead(rt)<<(p.gprRead(rs)&0x1F))
}

func (p *Processor) srlv(rd, rt, rs uint8) {
	p.gprWrite(rd, p.gprRead(rt)>>(p.gprRead(rs)&0x1F))
}

func (p *Processor) srav(rd, rt, rs uint8) {
	p.gprWrite(rd, uint32(int32(p.gprRead(rt))>>(p.gprRead(rs)&0x1F)))
}

func (p *Processor) mfhi(rd uint8) { p.gprWrite(rd, p.hi) }
func (p *Processor) mthi(rs uint8) { p.hi = p.gprRead(rs) }
func (p *Processor) mflo(rd uint8) { p.gprWrite(rd, p.lo) }
func (p *Processor) mtlo(rs uint8) { p.lo = p.gprRead(rs) }

func (p *Processor) mult(rs, rt uint8) {
	op1 := int64(int32(p.gprRead(rs)))
	op2 := int64(int32(p.gprRead(rt)))
	result := uint64(op1 * op2)
	p.hi = uint32(result >> 32)
	p.lo = uint32(result)
}

func (p *Processor) multu(rs, rt uint8) {
	result := uint64(p.gprRead(rs)) * uint64(p.gprRead(rt))
	p.hi = uint32(result >> 32)
	p.lo = uint32(result)
}

// div and divu special-case a zero divisor to LO=0, HI=dividend rather than
// panic, since Go's integer division traps on divide-by-zero where the
// source's release-mode wrapping arithmetic silently produced a
// (compiler-defined) result. This is the Open Question resolution recorded
// in DESIGN.md.
func (p *Processor) div(rs, rt uint8) {
	op1 := int32(p.gprRead(rs))
	op2 := int32(p.gprRead(rt))
	if op2 == 0 {
		p.lo = 0
		p.hi = uint32(op1)
		return
	}
	p.lo = uint32(op1 / op2)
	p.hi = uint32(op1 % op2)
}

func (p *Processor) divu(rs, rt uint8) {
	op1 := p.gprRead(rs)
	op2 := p.gprRead(rt)
	if op2 == 0 {
		p.lo = 0
		p.hi = op1
		return
	}
	p.lo = op1 / op2
	p.hi = op1 % op2
}

func (p *Processor) add(rd, rs, rt uint8) {
	op1 := int32(p.gprRead(rs))
	op2 := int32(p.gprRead(rt))
	result := op1 + op2
	if (op1 > 0 && op2 > 0 && result < 0) || (op1 < 0 && op2 < 0 && result >= 0) {
		p.raiseException(excOverflow, p.instrPC, 0, false)
	}
	p.gprWrite(rd, uint32(result))
}

func (p *Processor) addu(rd, rs, rt uint8) {
	p.gprWrite(rd, p.gprRead(rs)+p.gprRead(rt))
}

func (p *Processor) sub(rd, rs, rt uint8) {
	op1 := int32(p.gprRead(rs))
	op2 := int32(p.gprRead(rt))
	result := op1 - op2
	if (op1 < 0 && op2 > 0 && result > 0) || (op1 >= 0 && op2 < 0 && result < 0) {
		p.raiseException(excOverflow, p.instrPC, 0, false)
	}
	p.gprWrite(rd, uint32(result))
}

func (p *Processor) subu(rd, rs, rt uint8) {
	p.gprWrite(rd, p.gprRead(rs)-p.gprRead(rt))
}

func (p *Processor) and(rd, rs, rt uint8) { p.gprWrite(rd, p.gprRead(rs)&p.gprRead(rt)) }
func (p *Processor) or(rd, rs, rt uint8)  { p.gprWrite(rd, p.gprRead(rs)|p.gprRead(rt)) }
func (p *Processor) xor(rd, rs, rt uint8) { p.gprWrite(rd, p.gprRead(rs)^p.gprRead(rt)) }
func (p *Processor) nor(rd, rs, rt uint8) { p.gprWrite(rd, ^(p.gprRead(rs) | p.gprRead(rt))) }

func (p *Processor) slt(rd, rs, rt uint8) {
	if int32(p.gprRead(rs)) < int32(p.gprRead(rt)) {
		p.gprWrite(rd, 1)
	} else {
		p.gprWrite(rd, 0)
	}
}

func (p *Processor) sltu(rd, rs, rt uint8) {
	if p.gprRead(rs) < p.gprRead(rt) {
		p.gprWrite(rd, 1)
	} else {
		p.gprWrite(rd, 0)
	}
}

func (p *Processor) addi(rt, rs uint8, imm uint16) {
	op1 := int32(p.gprRead(rs))
	op2 := int32(signExtend16(imm))
	result := op1 + op2
	if (op1 > 0 && op2 > 0 && result < 0) || (op1 < 0 && op2 < 0 && result > 0) {
		p.raiseException(excOverflow, p.instrPC, 0, false)
	}
	p.gprWrite(rt, uint32(result))
}

func (p *Processor) addiu(rt, rs uint8, imm uint16) {
	p.gprWrite(rt, p.gprRead(rs)+signExtend16(imm))
}

func (p *Processor) slti(rt, rs uint8, imm uint16) {
	if int32(p.gprRead(rs)) < int32(signExtend16(imm)) {
		p.gprWrite(rt, 1)
	} else {
		p.gprWrite(rt, 0)
	}
}

func (p *Processor) sltiu(rt, rs uint8, imm uint16) {
	if p.gprRead(rs) < signExtend16(imm) {
		p.gprWrite(rt, 1)
	} else {
		p.gprWrite(rt, 0)
	}
}

func (p *Processor) andi(rt, rs uint8, imm uint16) { p.gprWrite(rt, p.gprRead(rs)&uint32(imm)) }
func (p *Processor) ori(rt, rs uint8, imm uint16)  { p.gprWrite(rt, p.gprRead(rs)|uint32(imm)) }
func (p *Processor) xori(rt, rs uint8, imm uint16) { p.gprWrite(rt, p.gprRead(rs)^uint32(imm)) }

func (p *Processor) lui(rt uint8, imm uint16) {
	p.gprWrite(rt, uint32(imm)<<16)
}
