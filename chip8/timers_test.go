package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimersTick(t *testing.T) {
	tests := []struct {
		name  string
		start byte
		ticks int
		want  byte
	}{
		{"decrements by one per tick", 10, 3, 7},
		{"floors at zero", 2, 5, 0},
		{"zero stays zero", 0, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tm Timers

			tm.SetDelay(tt.start)
			tm.SetSound(tt.start)

			for i := 0; i < tt.ticks; i++ {
				tm.Tick()
			}

			assert.Equal(t, tt.want, tm.Delay())
		})
	}
}

func TestTimersSoundActive(t *testing.T) {
	var tm Timers

	tm.SetSound(2)

	assert.True(t, tm.SoundActive())
	tm.Tick()
	assert.True(t, tm.SoundActive())
	tm.Tick()
	assert.False(t, tm.SoundActive())

	// sound active exactly while the timer is nonzero
	tm.Tick()
	assert.False(t, tm.SoundActive())
}
