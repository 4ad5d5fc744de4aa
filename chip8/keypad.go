package chip8

// NumKeys is the number of keys on the hex keypad.
const NumKeys = 16

// Keypad holds the current state of the 16-key pad. The caller reflects
// physical input into it before each Step; the machine reads it
// synchronously. A snapshot of the previous step's state is kept so the
// wait-for-key instruction can detect keys transitioning to pressed
// rather than keys merely held down.
type Keypad struct {
	keys [NumKeys]bool
	prev [NumKeys]bool
}

// SetKey records the state of a key. Keys outside 0..F are ignored.
func (k *Keypad) SetKey(key uint8, down bool) {
	if key < NumKeys {
		k.keys[key] = down
	}
}

// Pressed reports whether a key is currently down. Only the low nibble
// of key is significant.
func (k *Keypad) Pressed(key uint8) bool {
	return k.keys[key&0xF]
}

// justPressed returns the lowest key that transitioned to pressed since
// the previous step.
func (k *Keypad) justPressed() (uint8, bool) {
	for i := uint8(0); i < NumKeys; i++ {
		if k.keys[i] && !k.prev[i] {
			return i, true
		}
	}

	return 0, false
}

// settle snapshots the current key state, ending the step.
func (k *Keypad) settle() {
	k.prev = k.keys
}

// reset releases every key.
func (k *Keypad) reset() {
	k.keys = [NumKeys]bool{}
	k.prev = [NumKeys]bool{}
}
