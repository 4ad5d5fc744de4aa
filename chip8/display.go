package chip8

const (
	// DisplayWidth and DisplayHeight are the dimensions of the
	// monochrome pixel buffer.
	DisplayWidth  = 64
	DisplayHeight = 32

	// displayPitch is the number of bytes per scan line.
	displayPitch = DisplayWidth / 8
)

// Display is the 64x32 monochrome pixel buffer. Each bit is a single
// pixel, stored MSB first: pixel <0,0> is bit 0x80 of byte 0.
//
// Sprite blits XOR into the buffer. The base coordinate wraps modulo the
// display dimensions once at draw start; pixels that then extend past the
// right or bottom edge are clipped, never wrapped.
type Display struct {
	bits  [DisplayHeight * displayPitch]byte
	dirty bool
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.bits = [DisplayHeight * displayPitch]byte{}
	d.dirty = true
}

// Pixel reports whether the pixel at <x,y> is on. Out-of-range
// coordinates are off.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}

	return d.bits[y*displayPitch+x/8]&(0x80>>uint(x&7)) != 0
}

// Snapshot returns a copy of the pixel grid for presentation.
func (d *Display) Snapshot() [DisplayHeight][DisplayWidth]bool {
	var grid [DisplayHeight][DisplayWidth]bool

	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			grid[y][x] = d.Pixel(x, y)
		}
	}

	return grid
}

// Dirty reports whether the buffer changed since the last ClearDirty.
func (d *Display) Dirty() bool {
	return d.dirty
}

// ClearDirty acknowledges the current buffer contents.
func (d *Display) ClearDirty() {
	d.dirty = false
}

// DrawSprite XORs a sprite into the buffer at <x,y> and reports whether
// any previously-set pixel was turned off. Each sprite byte encodes one
// 8-pixel row, MSB leftmost.
func (d *Display) DrawSprite(x, y byte, sprite []byte) bool {
	// wrap the base coordinate once
	px := uint(x) % DisplayWidth
	py := uint(y) % DisplayHeight

	// byte column and bit offset within it
	col := px >> 3
	shift := px & 7

	collision := byte(0)

	for r, s := range sprite {
		row := py + uint(r)

		// clip rows past the bottom edge
		if row >= DisplayHeight {
			break
		}

		n := row*displayPitch + col
		b0 := d.bits[n]

		d.bits[n] ^= s >> shift
		collision |= b0 &^ d.bits[n]

		// pixels overlapping the next byte, clipped at the right edge
		if shift > 0 && col+1 < displayPitch {
			b1 := d.bits[n+1]

			d.bits[n+1] ^= s << (8 - shift)
			collision |= b1 &^ d.bits[n+1]
		}
	}

	d.dirty = true

	return collision != 0
}
