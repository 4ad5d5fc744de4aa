package main

import (
	"github.com/piyushrungta25/chip8-go/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

// screen renders the virtual machine's pixel buffer. Pixels are drawn
// at native 64x32 resolution into a render target which is then
// stretched over the window.
type screen struct {
	renderer *sdl.Renderer
	target   *sdl.Texture
}

func newScreen(renderer *sdl.Renderer) (*screen, error) {
	target, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB888,
		sdl.TEXTUREACCESS_TARGET,
		chip8.DisplayWidth,
		chip8.DisplayHeight)
	if err != nil {
		return nil, err
	}

	// start from a blank background rather than uninitialized texture memory
	if err := renderer.SetRenderTarget(target); err != nil {
		return nil, err
	}
	renderer.SetDrawColor(143, 145, 133, 255)
	renderer.Clear()
	renderer.SetRenderTarget(nil)

	return &screen{renderer: renderer, target: target}, nil
}

func (s *screen) close() {
	s.target.Destroy()
}

// refresh redraws the render target from the machine's display buffer
// when it changed, then stretches it over the window.
func (s *screen) refresh(vm *chip8.VM) {
	if vm.Display.Dirty() {
		if err := s.renderer.SetRenderTarget(s.target); err != nil {
			return
		}

		s.renderer.SetDrawColor(143, 145, 133, 255)
		s.renderer.Clear()

		s.renderer.SetDrawColor(17, 29, 43, 255)

		grid := vm.Display.Snapshot()
		for y := 0; y < chip8.DisplayHeight; y++ {
			for x := 0; x < chip8.DisplayWidth; x++ {
				if grid[y][x] {
					s.renderer.DrawPoint(int32(x), int32(y))
				}
			}
		}

		vm.Display.ClearDirty()
		s.renderer.SetRenderTarget(nil)
	}

	s.renderer.Copy(s.target, nil, nil)
	s.renderer.Present()
}
