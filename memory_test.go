package main

import "testing"

func TestMemoryWordRoundTrip(t *testing.T) {
	m := NewMemory(16)
	m.Write(0, 0xDEADBEEF, 4)
	if got := m.Read(0, 4); got != 0xDEADBEEF {
		t.Fatalf("Read(0,4) = 0x%08X, want 0xDEADBEEF", got)
	}
}

func TestMemoryBigEndianByteOrder(t *testing.T) {
	m := NewMemory(16)
	m.Write(0, 0xAABBCCDD, 4)
	cases := []struct {
		addr uint32
		want byte
	}{
		{0, 0xAA},
		{1, 0xBB},
		{2, 0xCC},
		{3, 0xDD},
	}
	for _, c := range cases {
		if got := byte(m.Read(c.addr, 1)); got != c.want {
			t.Errorf("byte at %d = 0x%02X, want 0x%02X", c.addr, got, c.want)
		}
	}
}

func TestMemoryHalfword(t *testing.T) {
	m := NewMemory(16)
	m.Write(4, 0xBEEF, 2)
	if got := m.Read(4, 2); got != 0xBEEF {
		t.Fatalf("Read(4,2) = 0x%04X, want 0xBEEF", got)
	}
}

func TestMemoryOutOfRangePanics(t *testing.T) {
	m := NewMemory(4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range access")
		}
	}()
	m.Read(8, 4)
}

func TestMemoryBadSizePanics(t *testing.T) {
	m := NewMemory(16)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on bad access size")
		}
	}()
	m.Read(0, 3)
}

func TestMemoryReset(t *testing.T) {
	m := NewMemory(8)
	m.Write(0, 0xFFFFFFFF, 4)
	m.Reset()
	if got := m.Read(0, 4); got != 0 {
		t.Fatalf("Read(0,4) after Reset = 0x%08X, want 0", got)
	}
}

func TestMemoryLayoutValidateRejectsOverlap(t *testing.T) {
	l := MemoryLayout{
		Program:  AddressRange{Start: 0, End: 8},
		VideoRAM: AddressRange{Start: 4, End: 16},
		Data:     AddressRange{Start: 16, End: 32},
	}
	if err := l.Validate(); err == nil {
		t.Fatal("expected overlap error, got nil")
	}
}

func TestMemoryLayoutValidateAcceptsDefault(t *testing.T) {
	if err := DefaultMemoryLayout().Validate(); err != nil {
		t.Fatalf("default layout should validate, got %v", err)
	}
}

func TestNewMemoryLayoutSizesProgramToImage(t *testing.T) {
	l := NewMemoryLayout(100, 4, 4, 1024)
	if l.Program.End != 100 {
		t.Fatalf("program end = %d, want 100", l.Program.End)
	}
	if l.VideoRAM.Start != 100 || l.VideoRAM.End != 100+4*4*4 {
		t.Fatalf("unexpected video RAM range: %+v", l.VideoRAM)
	}
	if l.Data.Start != l.VideoRAM.End || l.Data.End != 1024 {
		t.Fatalf("unexpected data range: %+v", l.Data)
	}
	if err := l.Validate(); err != nil {
		t.Fatalf("layout should validate: %v", err)
	}
}

func TestNewMemoryLayoutFloorsProgramAtFourBytes(t *testing.T) {
	l := NewMemoryLayout(0, 2, 2, 256)
	if l.Program.End != 4 {
		t.Fatalf("program end = %d, want 4 (floor for the placeholder instruction)", l.Program.End)
	}
}
