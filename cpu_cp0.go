// cpu_cp0.go - System coprocessor register transfer and mode-stack control

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

package main

// mfc0 and mtc0 transfer between a CP0 register and a GPR. Both are
// kernel-only: calling them from user mode is an implementation fault
// (the guest program violated the privilege contract; the decoder does no
// privilege check of its own), not an architectural exception.
func (p *Processor) mfc0(rt, rd uint8) {
	if !p.isKernelMode() {
		panic("mipsphase: mfc0 from user mode")
	}
	p.gprWrite(rt, p.cp0[rd])
}

func (p *Processor) mtc0(rt, rd uint8) {
	if !p.isKernelMode() {
		panic("mipsphase: mtc0 from user mode")
	}
	p.cp0[rd] = p.gprRead(rt)
}

// rfe shifts Status's mode stack right by 2 (current<-previous,
// previous<-old), leaving the old field unchanged. Kernel-only.
func (p *Processor) rfe() {
	if !p.isKernelMode() {
		panic("mipsphase: rfe from user mode")
	}
	status := p.cp0[cp0Status]
	oldPrevious := (status & 0b111100) >> 2
	status &^= 0b1111
	status |= oldPrevious
	p.cp0[cp0Status] = status
}

// eret performs rfe, then returns control to the saved exception address.
func (p *Processor) eret() {
	p.rfe()
	p.pc = p.cp0[cp0EPC]
}
