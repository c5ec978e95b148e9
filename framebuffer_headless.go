//go:build headless

// framebuffer_headless.go - No-op presenter for tests and CI

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

import "sync/atomic"

type EbitenOutput struct {
	config     DisplayConfig
	frameCount uint64
}

func NewEbitenOutput() (VideoOutput, error) {
	return &EbitenOutput{}, nil
}

func (h *EbitenOutput) Start() error { return nil }
func (h *EbitenOutput) Close() error { return nil }

func (h *EbitenOutput) SetDisplayConfig(config DisplayConfig) error {
	h.config = config
	return nil
}

func (h *EbitenOutput) UpdateFrame(pixels []byte) error {
	atomic.AddUint64(&h.frameCount, 1)
	return nil
}

func (h *EbitenOutput) FrameCount() uint64 {
	return atomic.LoadUint64(&h.frameCount)
}
