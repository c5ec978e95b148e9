package main

import "testing"

func TestMtc0Mfc0RoundTrip(t *testing.T) {
	p := NewProcessor() // boots in kernel mode
	p.gpr[1] = 0x1234
	p.mtc0(1, cp0EPC)
	p.mfc0(2, cp0EPC)
	if p.gpr[2] != 0x1234 {
		t.Fatalf("GPR[2] = 0x%08X, want 0x1234", p.gpr[2])
	}
}

func TestMtc0FromUserModePanics(t *testing.T) {
	p := NewProcessor()
	p.cp0[cp0Status] |= 0b10 // enter user mode
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mtc0 from user mode")
		}
	}()
	p.mtc0(1, cp0EPC)
}

func TestRfeShiftsModeStack(t *testing.T) {
	p := NewProcessor()
	// old=11, previous=10, current=01
	p.cp0[cp0Status] = 0b11_10_01
	p.rfe()
	// current <- old previous (10), previous <- old old (11), old unchanged
	if got := p.cp0[cp0Status] & 0b1111; got != 0b11_10 {
		t.Fatalf("previous/current after rfe = 0b%04b, want 0b1110", got)
	}
}

func TestEretRestoresPCFromEPC(t *testing.T) {
	p := NewProcessor()
	p.cp0[cp0EPC] = 0x80001234
	p.eret()
	if p.pc != 0x80001234 {
		t.Fatalf("pc = 0x%08X, want 0x80001234", p.pc)
	}
}
