// cpu_exception.go - Exception codes and the exception-entry sequence

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

// 5-bit exception codes, stored in Cause bits [6:2].
const (
	excInterrupt                  = 0
	excIllegalAddressLoad         = 4
	excIllegalAddressStore        = 5
	excBusErrorOnInstructionFetch = 6
	excBusErrorOnDataReference    = 7
	excSyscall                    = 8
	excBreak                      = 9
	excReservedInstruction        = 10
	excOverflow                   = 12
	excCalledTrap                 = 13
)

// raiseException performs the exception-entry sequence atomically with
// respect to the surrounding phase:
//
//  1. if hasBadVaddr, record the offending address in CP0[8] (BadVaddr)
//  2. clear Cause bits [6:2] and write the new exception code
//  3. shift Status's 6-bit mode stack left by 2 (old<-previous,
//     previous<-current), then force current mode to kernel with
//     interrupts disabled
//  4. EPC <- epc
//  5. PC <- the fixed exception vector
//
// The caller supplies epc explicitly rather than reading the processor's
// own pc: during DecodeAndExecute/WriteBack, pc has already been advanced
// past the faulting instruction by Fetch's pre-increment, so the caller
// passes instrPC (the instruction's own address) to match the
// architectural rule "EPC <- current PC" as the PC of the instruction
// that faulted, not the next one. InterruptCheck passes pc directly,
// since an interrupt is sampled only once the current instruction has
// fully retired and the correct return address is the next fetch.
func (p *Processor) raiseException(code uint8, epc uint32, badVaddr uint32, hasBadVaddr bool) {
	if hasBadVaddr {
		p.cp0[cp0BadVaddr] = badVaddr
	}

	cause := p.cp0[cp0Cause]
	cause &^= 0b1111100
	cause |= uint32(code&0x1F) << 2
	p.cp0[cp0Cause] = cause

	status := p.cp0[cp0Status]
	previousCurrent := status & 0b1111
	status &^= 0b111111
	status |= previousCurrent << 2
	p.cp0[cp0Status] = status

	p.cp0[cp0EPC] = epc
	p.pc = exceptionVector
}

func (p *Processor) interruptsEnabled() bool {
	return p.cp0[cp0Status]&0b1 != 0
}

func (p *Processor) interruptMask() uint8 {
	return uint8((p.cp0[cp0Status] >> 8) & 0xFF)
}

func (p *Processor) setInterruptRequests(requests uint8) {
	cause := p.cp0[cp0Cause]
	cause &^= 0xFF << 8
	cause |= uint32(requests) << 8
	p.cp0[cp0Cause] = cause
}
