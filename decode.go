// decode.go - Instruction field extraction and opcode/funct tables

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
decode.go - Instruction decoder for the MIPS I/II-family processor core

Instructions are 32-bit words with the canonical MIPS field layout:
opcode[31:26] rs[25:21] rt[20:16] rd[15:11] shamt[10:6] funct[5:0], with
imm[15:0] and address[25:0] as alternate views of the low bits. Coprocessor-1
instructions reuse the same bit positions under different names: fmt:=rs,
ft:=rt, fs:=rd, fd:=shamt.

Dispatch is a two-level match: primary opcode first, then funct (SPECIAL),
rt (REGIMM), or rs/funct (COP0, COP1) to pick the handler.
*/

package main

// Primary opcode field (instruction bits [31:26]).
const (
	opSpecial = 0
	opRegimm  = 1
	opJ       = 2
	opJal     = 3
	opBeq     = 4
	opBne     = 5
	opBlez    = 6
	opBgtz    = 7
	opAddi    = 8
	opAddiu   = 9
	opSlti    = 10
	opSltiu   = 11
	opAndi    = 12
	opOri     = 13
	opXori    = 14
	opLui     = 15
	opCop0    = 16
	opCop1    = 17
	opLb      = 32
	opLh      = 33
	opLwl     = 34
	opLw      = 35
	opLbu     = 36
	opLhu     = 37
	opLwr     = 38
	opSb      = 40
	opSh      = 41
	opSw      = 43
	opLwc1    = 49
	opSwc1    = 57
)

// SPECIAL (opcode=0) funct field.
const (
	fnSll     = 0
	fnSrl     = 2
	fnSra     = 3
	fnSllv    = 4
	fnSrlv    = 6
	fnSrav    = 7
	fnJr      = 8
	fnJalr    = 9
	fnSyscall = 12
	fnBreak   = 13
	fnMfhi    = 16
	fnMthi    = 17
	fnMflo    = 18
	fnMtlo    = 19
	fnMult    = 24
	fnMultu   = 25
	fnDiv     = 26
	fnDivu    = 27
	fnAdd     = 32
	fnAddu    = 33
	fnSub     = 34
	fnSubu    = 35
	fnAnd     = 36
	fnOr      = 37
	fnXor     = 38
	fnNor     = 39
	fnSlt     = 42
	fnSltu    = 43
	fnTge     = 48
	fnTgeu    = 49
	fnTlt     = 50
	fnTltu    = 51
	fnTeq     = 52
	fnTne     = 54
)

// REGIMM (opcode=1) rt field.
const (
	rtTgei   = 8
	rtTgeiu  = 9
	rtTlti   = 10
	rtTltiu  = 11
	rtTeqi   = 12
	rtTnei   = 14
)

// COP0 (opcode=16) rs field.
const (
	cop0Mf = 0
	cop0Mt = 4
)

// Fixed-pattern COP0 instructions, matched by their full 32-bit encoding
// rather than field decomposition (they carry no register operands).
const (
	encodingRfe  uint32 = 0x42000010
	encodingEret uint32 = 0x42000018
)

// COP1 (opcode=17) rs/fmt field.
const (
	cop1Mf     = 0
	cop1Mt     = 4
	fmtSingle  = 16
	fmtDouble  = 17
	fmtWord    = 20
)

// COP1 funct field (arithmetic and conversion family).
const (
	fpAdd     = 0
	fpSub     = 1
	fpMul     = 2
	fpDiv     = 3
	fpSqrt    = 4
	fpAbs     = 5
	fpMov     = 6
	fpNeg     = 7
	fpRoundW  = 12
	fpTruncW  = 13
	fpCeilW   = 14
	fpFloorW  = 15
	fpMovcf   = 17
	fpMovz    = 18
	fpMovn    = 19
	fpCvtS    = 32
	fpCvtD    = 33
	fpCvtW    = 36
	fpCEq     = 0x32
	fpCLt     = 0x3C
	fpCLe     = 0x3E
)

// fields is the fully decomposed view of one 32-bit instruction word.
type fields struct {
	opcode  uint8
	rs      uint8
	rt      uint8
	rd      uint8
	shamt   uint8
	funct   uint8
	imm     uint16
	address uint32
}

func decodeFields(instr uint32) fields {
	return fields{
		opcode:  uint8(instr >> 26),
		rs:      uint8((instr >> 21) & 0x1F),
		rt:      uint8((instr >> 16) & 0x1F),
		rd:      uint8((instr >> 11) & 0x1F),
		shamt:   uint8((instr >> 6) & 0x1F),
		funct:   uint8(instr & 0x3F),
		imm:     uint16(instr & 0xFFFF),
		address: instr & 0x3FFFFFF,
	}
}

// signExtend16 widens a 16-bit immediate to a 32-bit two's-complement value.
func signExtend16(imm uint16) uint32 {
	return uint32(int32(int16(imm)))
}
