package main

import "testing"

func TestAddOverflowRaisesException(t *testing.T) {
	p := NewProcessor()
	p.instrPC = 4
	p.gpr[1] = 0x7FFFFFFF
	p.gpr[2] = 1
	p.add(3, 1, 2)

	if code := (p.cp0[cp0Cause] >> 2) & 0x1F; code != excOverflow {
		t.Fatalf("exception code = %d, want excOverflow", code)
	}
	if p.cp0[cp0EPC] != 4 {
		t.Fatalf("EPC = 0x%08X, want 0x4", p.cp0[cp0EPC])
	}
	if p.gpr[3] != 0x80000000 {
		t.Fatalf("GPR[3] = 0x%08X, want truncated 0x80000000", p.gpr[3])
	}
}

func TestAdduWrapsWithoutException(t *testing.T) {
	p := NewProcessor()
	p.gpr[1] = 0xFFFFFFFF
	p.gpr[2] = 2
	p.addu(3, 1, 2)
	if p.gpr[3] != 1 {
		t.Fatalf("GPR[3] = 0x%08X, want 1", p.gpr[3])
	}
	if p.cp0[cp0Cause] != 0 {
		t.Fatalf("Cause should be untouched, got 0x%08X", p.cp0[cp0Cause])
	}
}

func TestDivByZeroDoesNotPanic(t *testing.T) {
	p := NewProcessor()
	p.gpr[1] = 7
	p.gpr[2] = 0
	p.div(1, 2)
	if p.lo != 0 || p.hi != 7 {
		t.Fatalf("lo=%d hi=%d, want lo=0 hi=7", p.lo, p.hi)
	}
}

func TestDivuByZeroDoesNotPanic(t *testing.T) {
	p := NewProcessor()
	p.gpr[1] = 9
	p.gpr[2] = 0
	p.divu(1, 2)
	if p.lo != 0 || p.hi != 9 {
		t.Fatalf("lo=%d hi=%d, want lo=0 hi=9", p.lo, p.hi)
	}
}

func TestMultProducesSignedHiLo(t *testing.T) {
	p := NewProcessor()
	p.gpr[1] = 0xFFFFFFFE // -2
	p.gpr[2] = 3
	p.mult(1, 2)
	if int32(p.lo) != -6 || p.hi != 0xFFFFFFFF {
		t.Fatalf("lo=%d hi=0x%08X, want lo=-6 hi=0xFFFFFFFF", int32(p.lo), p.hi)
	}
}

func TestSltSigned(t *testing.T) {
	p := NewProcessor()
	p.gpr[1] = 0xFFFFFFFF // -1
	p.gpr[2] = 1
	p.slt(3, 1, 2)
	if p.gpr[3] != 1 {
		t.Fatalf("slt(-1,1) = %d, want 1", p.gpr[3])
	}
}

func TestSltuUnsigned(t *testing.T) {
	p := NewProcessor()
	p.gpr[1] = 0xFFFFFFFF // -1, huge as unsigned
	p.gpr[2] = 1
	p.sltu(3, 1, 2)
	if p.gpr[3] != 0 {
		t.Fatalf("sltu(0xFFFFFFFF,1) = %d, want 0", p.gpr[3])
	}
}

func TestLuiOriComposesConstant(t *testing.T) {
	p := NewProcessor()
	p.lui(2, 0xDEAD)
	p.ori(2, 2, 0xBEEF)
	if p.gpr[2] != 0xDEADBEEF {
		t.Fatalf("GPR[2] = 0x%08X, want 0xDEADBEEF", p.gpr[2])
	}
}

func TestGprZeroIsHardwired(t *testing.T) {
	p := NewProcessor()
	p.gprWrite(0, 0xFFFFFFFF)
	if p.gprRead(0) != 0 {
		t.Fatalf("GPR[0] = 0x%08X, want 0", p.gprRead(0))
	}
}
