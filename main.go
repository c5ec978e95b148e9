// main.go - Command-line entry point

/*
 __  __ ___ ____  ____
|  \/  |_ _|  _ \/ ___| _ __  _ __   __ _ ___  ___
| |\/| || || |_) \___ \| '_ \| '_ \ / _` / __|/ _ \
| |  | || ||  __/ ___) | |_) | | | | (_| \__ \  __/
|_|  |_|___|_|   |____/| .__/|_| |_|\__,_|___/\___|
                        |_|

(c) 2026 the mipsphase authors
https://github.com/ninthcircuit/mipsphase
License: GPLv3 or later
*/

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

func boilerPlate() {
	fmt.Println("mipsphase - a cycle-phased 32-bit big-endian MIPS I/II emulator")
	fmt.Println("https://github.com/ninthcircuit/mipsphase")
	fmt.Println("License: GPLv3 or later")
}

const (
	defaultWidth   = 800
	defaultHeight  = 600
	defaultMemSize = 32 * 1024 * 1024
)

// run performs all fallible setup and hands control to the supervised
// CPU goroutine, returning an error instead of exiting directly
// so main stays a thin os.Exit wrapper.
//
// Usage: mipsphase [program] [width] [height] [memsize]
// program is a raw big-endian MIPS image; the three overrides are
// positional and each may be omitted only by omitting everything after it.
func run() error {
	if len(os.Args) > 5 {
		return fmt.Errorf("usage: %s [program] [width] [height] [memsize]", os.Args[0])
	}

	var programPath string
	width, height, memSize := defaultWidth, defaultHeight, defaultMemSize

	if len(os.Args) > 1 {
		programPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		v, err := strconv.Atoi(os.Args[2])
		if err != nil {
			return fmt.Errorf("width: %w", err)
		}
		width = v
	}
	if len(os.Args) > 3 {
		v, err := strconv.Atoi(os.Args[3])
		if err != nil {
			return fmt.Errorf("height: %w", err)
		}
		height = v
	}
	if len(os.Args) > 4 {
		v, err := strconv.Atoi(os.Args[4])
		if err != nil {
			return fmt.Errorf("memsize: %w", err)
		}
		memSize = v
	}

	var program []byte
	if programPath != "" {
		data, err := os.ReadFile(programPath)
		if err != nil {
			return fmt.Errorf("loading program image: %w", err)
		}
		program = data
	}

	layout := NewMemoryLayout(uint32(len(program)), width, height, uint32(memSize))
	if err := layout.Validate(); err != nil {
		return fmt.Errorf("memory layout: %w", err)
	}

	mem := NewMemory(layout.Data.End)
	cpu := NewProcessor()
	driver := NewDriver(cpu, mem, layout, nil, nil)

	if len(program) > 0 {
		for i := 0; i+4 <= len(program); i += 4 {
			word := uint32(program[i])<<24 | uint32(program[i+1])<<16 | uint32(program[i+2])<<8 | uint32(program[i+3])
			mem.Write(layout.Program.Start+uint32(i), word, 4)
		}
	}

	output, err := NewEbitenOutput()
	if err != nil {
		return fmt.Errorf("initializing video backend: %w", err)
	}
	fb, err := NewFramebufferPresenter(mem, layout.VideoRAM, width, height, output)
	if err != nil {
		return fmt.Errorf("starting framebuffer presenter: %w", err)
	}
	defer fb.Close()
	driver.fb = fb

	return RunSupervised(context.Background(), driver)
}

func main() {
	boilerPlate()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
