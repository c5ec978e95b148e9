package main

import (
	"context"
	"testing"
	"time"
)

func TestDriverStepServicesStoreAndLoad(t *testing.T) {
	layout := NewMemoryLayout(16, 1, 1, 1024)
	mem := NewMemory(layout.Data.End)
	cpu := NewProcessor()
	d := NewDriver(cpu, mem, layout, nil, nil)

	// addiu $1, $0, 0x55
	mem.Write(0, encodeI(opAddiu, 0, 1, 0x55), 4)
	if err := d.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if cpu.gpr[1] != 0x55 {
		t.Fatalf("GPR[1] = 0x%X, want 0x55", cpu.gpr[1])
	}

	// sw $1, 0x200($0)
	mem.Write(4, encodeI(opSw, 0, 1, 0x200), 4)
	if err := d.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got := mem.Read(0x200, 4); got != 0x55 {
		t.Fatalf("memory at 0x200 = 0x%X, want 0x55", got)
	}
}

func TestDriverRunStopsOnContextCancel(t *testing.T) {
	layout := NewMemoryLayout(16, 1, 1, 1024)
	mem := NewMemory(layout.Data.End)
	cpu := NewProcessor()
	d := NewDriver(cpu, mem, layout, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Run(ctx)
	if err != context.DeadlineExceeded {
		t.Fatalf("Run err = %v, want context.DeadlineExceeded", err)
	}
}

func TestDriverRunRecoversPanic(t *testing.T) {
	layout := NewMemoryLayout(16, 1, 1, 1024)
	mem := NewMemory(layout.Data.End) // reads past the end of memory panic
	cpu := NewProcessor()
	cpu.pc = mem.Size() // fetch immediately out of range
	d := NewDriver(cpu, mem, layout, nil, nil)

	err := d.Run(context.Background())
	if err == nil {
		t.Fatal("expected a recovered fault error, got nil")
	}
}
