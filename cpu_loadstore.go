// cpu_loadstore.go - Load/store opcode semantics and the writeback merge

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

/*
cpu_loadstore.go handles the effective-address computation for all loads
and stores, the unaligned lwl/lwr byte-range descriptors, and the single
writeBack() routine that every load funnels through during the WriteBack
phase.

Effective address is always GPR[base] + sign-extended 16-bit offset.
Unaligned loads (lwl, lwr) instead align the request down to a word
boundary and record a (from, to) byte range in the buffer; writeBack()
shifts the loaded word and merges only that byte range into the
destination register, leaving the rest untouched.
*/

package main

import "fmt"

func effectiveAddress(base uint32, imm uint16) uint32 {
	return base + signExtend16(imm)
}

func (p *Processor) lb(rt, rs uint8, imm uint16) {
	p.buffer = MemoryBuffer{
		Address:           effectiveAddress(p.gprRead(rs), imm),
		DataSize:          1,
		WritebackRegister: rt,
		SignExtended:      true,
	}
}

func (p *Processor) lbu(rt, rs uint8, imm uint16) {
	p.buffer = MemoryBuffer{
		Address:           effectiveAddress(p.gprRead(rs), imm),
		DataSize:          1,
		WritebackRegister: rt,
	}
}

func (p *Processor) lh(rt, rs uint8, imm uint16) {
	p.buffer = MemoryBuffer{
		Address:           effectiveAddress(p.gprRead(rs), imm),
		DataSize:          2,
		WritebackRegister: rt,
		SignExtended:      true,
	}
}

func (p *Processor) lhu(rt, rs uint8, imm uint16) {
	p.buffer = MemoryBuffer{
		Address:           effectiveAddress(p.gprRead(rs), imm),
		DataSize:          2,
		WritebackRegister: rt,
	}
}

func (p *Processor) lw(rt, rs uint8, imm uint16) {
	p.buffer = MemoryBuffer{
		Address:           effectiveAddress(p.gprRead(rs), imm),
		DataSize:          4,
		WritebackRegister: rt,
	}
}

func (p *Processor) sb(rt, rs uint8, imm uint16) {
	p.buffer = MemoryBuffer{
		Address: effectiveAddress(p.gprRead(rs), imm),
		Data:    p.gprRead(rt) & 0xFF,
		DataSize: 1,
		Store:   true,
	}
}

func (p *Processor) sh(rt, rs uint8, imm uint16) {
	p.buffer = MemoryBuffer{
		Address:  effectiveAddress(p.gprRead(rs), imm),
		Data:     p.gprRead(rt) & 0xFFFF,
		DataSize: 2,
		Store:    true,
	}
}

func (p *Processor) sw(rt, rs uint8, imm uint16) {
	p.buffer = MemoryBuffer{
		Address:  effectiveAddress(p.gprRead(rs), imm),
		Data:     p.gprRead(rt),
		DataSize: 4,
		Store:    true,
	}
}

// lwl loads the word containing addr, aligned down to a word boundary,
// and arranges for its high (to+1) bytes to replace the high bytes of the
// destination register on writeback.
func (p *Processor) lwl(rt, rs uint8, imm uint16) {
	addr := effectiveAddress(p.gprRead(rs), imm)
	to := uint8(3 - (addr & 3))
	p.buffer = MemoryBuffer{
		Address:           addr &^ 3,
		DataSize:          4,
		WritebackRegister: rt,
		HasPartialWrite:   true,
		PartialFrom:       0,
		PartialTo:         to,
	}
}

// lwr loads the word containing addr, aligned down to a word boundary,
// and arranges for its low (4-from) bytes to replace the low bytes of the
// destination register on writeback.
func (p *Processor) lwr(rt, rs uint8, imm uint16) {
	addr := effectiveAddress(p.gprRead(rs), imm)
	from := uint8(4 - ((addr & 3) + 1))
	p.buffer = MemoryBuffer{
		Address:           addr &^ 3,
		DataSize:          4,
		WritebackRegister: rt,
		HasPartialWrite:   true,
		PartialFrom:       from,
		PartialTo:         3,
	}
}

// lwc1 and swc1 address via the integer base+offset like any other
// load/store; the FP register is deposited through the 32..63 writeback
// encoding (index = ft+32).
func (p *Processor) lwc1(ft, rs uint8, imm uint16) {
	p.buffer = MemoryBuffer{
		Address:           effectiveAddress(p.gprRead(rs), imm),
		DataSize:          4,
		WritebackRegister: ft + 32,
	}
}

func (p *Processor) swc1(ft, rs uint8, imm uint16) {
	p.buffer = MemoryBuffer{
		Address:  effectiveAddress(p.gprRead(rs), imm),
		Data:     p.cp1[ft],
		DataSize: 4,
		Store:    true,
	}
}

// writeBack applies the pending load's result to its destination register.
// A partial write (lwl/lwr) shifts the loaded word and merges only the
// recorded byte range; otherwise the word is optionally sign-extended and
// deposited whole. Indices 0-31 target the GPR file (0 silently ignored);
// indices 32-63 target FP register (index-32) as a raw bit pattern.
func (p *Processor) writeBack() {
	reg := p.buffer.WritebackRegister
	data := p.buffer.Data

	if p.buffer.HasPartialWrite {
		from, to := p.buffer.PartialFrom, p.buffer.PartialTo
		dest := p.gprRead(reg)

		var shifted, mask uint32
		if from == 0 {
			shiftBytes := 3 - to
			shifted = data << (uint32(shiftBytes) * 8)
			maskBits := (uint32(to) + 1) * 8
			mask = ^uint32(0) << (32 - maskBits)
		} else {
			shifted = data >> (uint32(from) * 8)
			maskBits := (4 - uint32(from)) * 8
			mask = ^uint32(0) >> (32 - maskBits)
		}

		p.gprWrite(reg, (dest &^ mask)|(shifted&mask))
		return
	}

	result := data
	if p.buffer.SignExtended && p.buffer.DataSize < 4 {
		switch p.buffer.DataSize {
		case 2:
			result = uint32(int32(int16(uint16(data))))
		case 1:
			result = uint32(int32(int8(uint8(data))))
		default:
			panic(fmt.Sprintf("mipsphase: bad data size %d", p.buffer.DataSize))
		}
	}

	if reg < 32 {
		p.gprWrite(reg, result)
	} else {
		p.cp1[reg-32] = result
	}
}
