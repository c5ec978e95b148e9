// driver.go - Per-cycle orchestration: tick, service bus, refresh display

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
driver.go wires a Processor to a Memory and a FramebufferPresenter. The
processor has no notion of a clock or a display; the driver supplies
both, reproducing the cadence of a reference machine implementation this
system is built from: four tick() calls make one architectural
instruction (fetch, decode/execute, writeback, interrupt-check), the bus
transaction each tick emits is serviced against Memory before the next
tick runs, and the framebuffer is swept once per instruction - never
more often, since an instruction that touches no pixels still costs a
presenter sweep otherwise.

The CPU loop and the GUI event loop run on separate goroutines. The CPU
loop runs under an errgroup.Group, generalizing the corpus's own
fire-and-forget "go cpu.Execute()" split: a panic recovered out of the CPU
goroutine here becomes a returned error instead of a silent crash. The GUI
goroutine is started by the video backend and is not part of the group.
*/

package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Driver runs a Processor against a Memory and presents its video RAM
// region through a FramebufferPresenter.
type Driver struct {
	cpu    *Processor
	mem    *Memory
	fb     *FramebufferPresenter
	irqSrc func() uint8
}

// NewDriver constructs a driver over an already-initialized Processor and
// Memory, writing the fixed placeholder instruction at the program
// segment's start so a driver that never loads a program still boots
// into a stable spin loop. irqSrc supplies the 8-bit interrupt-request
// mask sampled once per instruction; a nil irqSrc means no interrupts are
// ever requested.
func NewDriver(cpu *Processor, mem *Memory, layout MemoryLayout, fb *FramebufferPresenter, irqSrc func() uint8) *Driver {
	const resetInstruction uint32 = 0x0800_0000 // j 0
	mem.Write(layout.Program.Start, resetInstruction, 4)
	if irqSrc == nil {
		irqSrc = func() uint8 { return 0 }
	}
	return &Driver{cpu: cpu, mem: mem, fb: fb, irqSrc: irqSrc}
}

// step runs exactly one architectural instruction: four processor ticks
// with the bus transaction serviced between each pair, then one
// framebuffer refresh.
func (d *Driver) step() error {
	irq := d.irqSrc()

	buf := d.cpu.Tick(0, irq)
	instr := d.serviceBus(buf)

	buf = d.cpu.Tick(instr, irq)
	loaded := d.serviceBus(buf)

	buf = d.cpu.Tick(loaded, irq)
	d.serviceBus(buf)

	d.cpu.Tick(0, irq)

	if d.fb != nil {
		if err := d.fb.Refresh(); err != nil {
			return err
		}
	}
	return nil
}

// serviceBus carries out the memory-bus side of a MemoryBuffer: a read
// returns the loaded word for the next tick's inbound parameter, a write
// commits to Memory, and a no-transaction buffer passes 0 through
// untouched.
func (d *Driver) serviceBus(buf MemoryBuffer) uint32 {
	if buf.DataSize == 0 {
		return 0
	}
	if buf.Store {
		d.mem.Write(buf.Address, buf.Data, buf.DataSize)
		return 0
	}
	return d.mem.Read(buf.Address, buf.DataSize)
}

// Run drives the processor until ctx is canceled. It is meant to run
// inside an errgroup alongside the GUI goroutine; a panic inside step is
// recovered and returned as an error rather than unwinding the process.
func (d *Driver) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mipsphase: cpu fault: %v", r)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if stepErr := d.step(); stepErr != nil {
			return stepErr
		}
	}
}

// RunSupervised runs the CPU driver loop under an errgroup, returning as
// soon as either the loop exits or ctx is canceled. The GUI goroutine is
// not managed here: the video backend starts RunGame on its own goroutine,
// and closing the window does not cancel ctx.
func RunSupervised(ctx context.Context, d *Driver) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return d.Run(gctx)
	})
	return g.Wait()
}
