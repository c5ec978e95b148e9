// cpu_trap.go - Compare-and-trap opcode semantics

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

// cpu_trap.go implements the register-form (teq/tne/tge/tgeu/tlt/tltu) and
// immediate-form (teqi/tnei/tgei/tgeiu/tlti/tltiu) compare-and-trap family.
// Each raises CalledTrap when its predicate holds. Unsigned variants compare
// raw bit patterns; signed variants and all immediate forms sign-extend
// before comparing.
//
// tgei is implemented as the architecturally-correct signed >= comparison.
// An early source this is grounded on compares with != instead, which the
// comment alongside it flags as a typo; that literal behavior is not
// reproduced here (see DESIGN.md).

package main

func (p *Processor) teq(rs, rt uint8) {
	if int32(p.gprRead(rs)) == int32(p.gprRead(rt)) {
		p.raiseException(excCalledTrap, p.instrPC, 0, false)
	}
}

func (p *Processor) tne(rs, rt uint8) {
	if p.gprRead(rs) != p.gprRead(rt) {
		p.raiseException(excCalledTrap, p.instrPC, 0, false)
	}
}

func (p *Processor) tge(rs, rt uint8) {
	if int32(p.gprRead(rs)) >= int32(p.gprRead(rt)) {
		p.raiseException(excCalledTrap, p.instrPC, 0, false)
	}
}

func (p *Processor) tgeu(rs, rt uint8) {
	if p.gprRead(rs) >= p.gprRead(rt) {
		p.raiseException(excCalledTrap, p.instrPC, 0, false)
	}
}

func (p *Processor) tlt(rs, rt uint8) {
	if int32(p.gprRead(rs)) < int32(p.gprRead(rt)) {
		p.raiseException(excCalledTrap, p.instrPC, 0, false)
	}
}

func (p *Processor) tltu(rs, rt uint8) {
	if p.gprRead(rs) < p.gprRead(rt) {
		p.raiseException(excCalledTrap, p.instrPC, 0, false)
	}
}

func (p *Processor) teqi(rs uint8, imm uint16) {
	if int32(p.gprRead(rs)) == int32(signExtend16(imm)) {
		p.raiseException(excCalledTrap, p.instrPC, 0, false)
	}
}

func (p *Processor) tnei(rs uint8, imm uint16) {
	if int32(p.gprRead(rs)) != int32(signExtend16(imm)) {
		p.raiseException(excCalledTrap, p.instrPC, 0, false)
	}
}

func (p *Processor) tgei(rs uint8, imm uint16) {
	if int32(p.gprRead(rs)) >= int32(signExtend16(imm)) {
		p.raiseException(excCalledTrap, p.instrPC, 0, false)
	}
}

func (p *Processor) tgeiu(rs uint8, imm uint16) {
	if p.gprRead(rs) >= signExtend16(imm) {
		p.raiseException(excCalledTrap, p.instrPC, 0, false)
	}
}

func (p *Processor) tlti(rs uint8, imm uint16) {
	if int32(p.gprRead(rs)) < int32(signExtend16(imm)) {
		p.raiseException(excCalledTrap, p.instrPC, 0, false)
	}
}

func (p *Processor) tltiu(rs uint8, imm uint16) {
	if p.gprRead(rs) < signExtend16(imm) {
		p.raiseException(excCalledTrap, p.instrPC, 0, false)
	}
}
