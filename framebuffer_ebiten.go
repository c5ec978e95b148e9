//go:build !headless

// framebuffer_ebiten.go - Ebiten-backed window presenter

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

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenOutput opens a window and blits whatever pixel buffer it is last
// handed via UpdateFrame. It implements ebiten.Game directly so RunGame
// can drive it from its own goroutine while the CPU driver ticks on this
// one.
type EbitenOutput struct {
	mu          sync.RWMutex
	width       int
	height      int
	scale       int
	frameBuffer []byte
	window      *ebiten.Image
	frameCount  uint64
	running     bool
}

func NewEbitenOutput() (VideoOutput, error) {
	return &EbitenOutput{width: 800, height: 600, scale: 1}, nil
}

func (eo *EbitenOutput) Start() error {
	if eo.running {
		return nil
	}
	eo.running = true
	ebiten.SetWindowTitle("mipsphase")
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	go func() {
		_ = ebiten.RunGame(eo)
	}()
	return nil
}

func (eo *EbitenOutput) Close() error {
	eo.running = false
	return nil
}

func (eo *EbitenOutput) SetDisplayConfig(config DisplayConfig) error {
	eo.mu.Lock()
	defer eo.mu.Unlock()

	eo.width = config.Width
	eo.height = config.Height
	eo.scale = clampScale(config.Scale)
	size := eo.width * eo.height * 4
	if len(eo.frameBuffer) != size {
		eo.frameBuffer = make([]byte, size)
	}
	ebiten.SetWindowSize(eo.width*eo.scale, eo.height*eo.scale)
	eo.window = nil
	return nil
}

func (eo *EbitenOutput) UpdateFrame(pixels []byte) error {
	eo.mu.Lock()
	defer eo.mu.Unlock()
	copy(eo.frameBuffer, pixels)
	return nil
}

func (eo *EbitenOutput) FrameCount() uint64 {
	eo.mu.RLock()
	defer eo.mu.RUnlock()
	return eo.frameCount
}

// Update satisfies ebiten.Game; all state changes happen via UpdateFrame.
func (eo *EbitenOutput) Update() error { return nil }

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	eo.mu.Lock()
	defer eo.mu.Unlock()
	if eo.window == nil {
		eo.window = ebiten.NewImage(eo.width, eo.height)
	}
	eo.window.WritePixels(eo.frameBuffer)
	screen.DrawImage(eo.window, nil)
	eo.frameCount++
}

func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	return eo.width, eo.height
}
