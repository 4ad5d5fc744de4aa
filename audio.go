package main

import (
	"encoding/binary"
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	toneHz   = 440
	sampleHz = 44100
	volume   = 0.25

	// one 60 Hz frame worth of samples queued per update
	samplesPerFrame = sampleHz / 60
)

// beeper produces the machine's single square-wave tone through a
// queued SDL audio device, audible while the sound timer is active.
type beeper struct {
	device sdl.AudioDeviceID
	phase  float64
	buf    []byte
}

func newBeeper() (*beeper, error) {
	spec := &sdl.AudioSpec{
		Freq:     sampleHz,
		Format:   sdl.AUDIO_F32,
		Channels: 1,
		Samples:  512,
	}

	device, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, err
	}

	return &beeper{
		device: device,
		buf:    make([]byte, samplesPerFrame*4),
	}, nil
}

func (b *beeper) close() {
	sdl.CloseAudioDevice(b.device)
}

// update queues the next frame of the square wave while the beep is
// active and silences the device while it is not.
func (b *beeper) update(active bool) {
	if !active {
		sdl.PauseAudioDevice(b.device, true)
		sdl.ClearQueuedAudio(b.device)
		b.phase = 0
		return
	}

	phaseInc := float64(toneHz) / sampleHz

	for i := 0; i < samplesPerFrame; i++ {
		v := float32(volume)
		if b.phase > 0.5 {
			v = -volume
		}

		binary.LittleEndian.PutUint32(b.buf[i*4:], math.Float32bits(v))
		b.phase = math.Mod(b.phase+phaseInc, 1)
	}

	sdl.QueueAudio(b.device, b.buf)
	sdl.PauseAudioDevice(b.device, false)
}
