package main

import "testing"

func raisedCode(p *Processor) uint8 {
	return uint8((p.cp0[cp0Cause] >> 2) & 0x1F)
}

func TestTeqTrapsOnEqual(t *testing.T) {
	p := NewProcessor()
	p.gpr[1] = 5
	p.gpr[2] = 5
	p.teq(1, 2)
	if raisedCode(p) != excCalledTrap {
		t.Fatalf("code = %d, want excCalledTrap", raisedCode(p))
	}
}

func TestTneDoesNotTrapOnEqual(t *testing.T) {
	p := NewProcessor()
	p.gpr[1] = 5
	p.gpr[2] = 5
	p.tne(1, 2)
	if raisedCode(p) != 0 {
		t.Fatalf("code = %d, want 0 (no trap)", raisedCode(p))
	}
}

// TestTgeiIsArchitecturallyCorrect checks that tgei compares with signed
// >=, not !=. rs=5, imm=5: a >= comparison traps; a != comparison would
// not (5 != 5 is false), so this distinguishes the two readings.
func TestTgeiIsArchitecturallyCorrect(t *testing.T) {
	p := NewProcessor()
	p.gpr[1] = 5
	p.tgei(1, 5)
	if raisedCode(p) != excCalledTrap {
		t.Fatal("tgei(5,5) should trap under signed >=, but did not")
	}
}

func TestTgeiDoesNotTrapWhenLess(t *testing.T) {
	p := NewProcessor()
	p.gpr[1] = 4
	p.tgei(1, 5)
	if raisedCode(p) != 0 {
		t.Fatal("tgei(4,5) should not trap")
	}
}

func TestTltuUnsignedCompare(t *testing.T) {
	p := NewProcessor()
	p.gpr[1] = 0xFFFFFFFF // -1, max unsigned
	p.gpr[2] = 1
	p.tltu(1, 2)
	if raisedCode(p) != 0 {
		t.Fatal("tltu(0xFFFFFFFF, 1) should not trap: huge as unsigned")
	}
}
