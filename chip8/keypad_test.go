package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypadSetKey(t *testing.T) {
	var k Keypad

	k.SetKey(5, true)
	assert.True(t, k.Pressed(5))

	k.SetKey(5, false)
	assert.False(t, k.Pressed(5))

	// out-of-range keys are ignored
	k.SetKey(16, true)
	for i := uint8(0); i < NumKeys; i++ {
		assert.False(t, k.Pressed(i))
	}
}

func TestKeypadJustPressed(t *testing.T) {
	var k Keypad

	_, ok := k.justPressed()
	assert.False(t, ok)

	k.SetKey(0xA, true)
	key, ok := k.justPressed()
	assert.True(t, ok)
	assert.Equal(t, uint8(0xA), key)

	// a held key no longer counts after the step settles
	k.settle()
	_, ok = k.justPressed()
	assert.False(t, ok)

	// releasing and pressing again is a fresh edge
	k.SetKey(0xA, false)
	k.settle()
	k.SetKey(0xA, true)
	key, ok = k.justPressed()
	assert.True(t, ok)
	assert.Equal(t, uint8(0xA), key)
}

func TestKeypadReset(t *testing.T) {
	var k Keypad

	k.SetKey(3, true)
	k.settle()
	k.reset()

	assert.False(t, k.Pressed(3))
	_, ok := k.justPressed()
	assert.False(t, ok)
}
