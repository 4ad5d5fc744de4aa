package chip8

// Timers holds the delay and sound countdown registers. Both decrement
// by one per Tick while above zero and floor at zero. Ticking is driven
// by the caller at a fixed 60 Hz cadence, decoupled from the instruction
// clock; the machine never self-schedules.
type Timers struct {
	delay byte
	sound byte
}

// Tick decrements each nonzero timer by one.
func (t *Timers) Tick() {
	if t.delay > 0 {
		t.delay--
	}

	if t.sound > 0 {
		t.sound--
	}
}

// Delay returns the current delay timer value.
func (t *Timers) Delay() byte {
	return t.delay
}

// SetDelay loads the delay timer.
func (t *Timers) SetDelay(b byte) {
	t.delay = b
}

// SetSound loads the sound timer.
func (t *Timers) SetSound(b byte) {
	t.sound = b
}

// SoundActive reports whether the beep should be audible, true exactly
// while the sound timer is nonzero.
func (t *Timers) SoundActive() bool {
	return t.sound > 0
}

// reset clears both timers.
func (t *Timers) reset() {
	t.delay = 0
	t.sound = 0
}
