// cpu_controlflow.go - Jump and branch opcode semantics

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

// Delay slots are not modeled: a taken branch or jump changes pc
// immediately, and the next Fetch reads from the new address.

package main

func (p *Processor) j(address uint32) {
	p.pc = (p.pc & 0xF000_0000) | (address << 2)
}

func (p *Processor) jal(address uint32) {
	const returnAddressReg = 31
	p.gprWrite(returnAddressReg, p.pc)
	p.j(address)
}

func (p *Processor) jr(rs uint8) {
	p.pc = p.gprRead(rs)
}

func (p *Processor) jalr(rd, rs uint8) {
	p.gprWrite(rd, p.pc)
	p.pc = p.gprRead(rs)
}

func (p *Processor) branch(imm uint16) {
	offset := int32(int16(imm)) * 4
	p.pc = uint32(int32(p.pc) + offset)
}

func (p *Processor) beq(rs, rt uint8, imm uint16) {
	if p.gprRead(rs) == p.gprRead(rt) {
		p.branch(imm)
	}
}

func (p *Processor) bne(rs, rt uint8, imm uint16) {
	if p.gprRead(rs) != p.gprRead(rt) {
		p.branch(imm)
	}
}

func (p *Processor) blez(rs uint8, imm uint16) {
	if int32(p.gprRead(rs)) <= 0 {
		p.branch(imm)
	}
}

func (p *Processor) bgtz(rs uint8, imm uint16) {
	if int32(p.gprRead(rs)) > 0 {
		p.branch(imm)
	}
}

func (p *Processor) syscall() {
	p.raiseException(excSyscall, p.instrPC, 0, false)
}

func (p *Processor) breakInstr() {
	p.raiseException(excBreak, p.instrPC, 0, false)
}
