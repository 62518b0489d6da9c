// This file is part of Regplay.
//
// Regplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Regplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Regplay.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlaudio outputs rendered frames to an audio device using SDL. The
// frames are queued with SDL's push interface and the device plays them in
// its own thread.
package sdlaudio

import (
	"github.com/jetsetilly/regplay/curated"
	"github.com/jetsetilly/regplay/logger"
	"github.com/jetsetilly/regplay/render"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of sample frames in the device buffer. the precise value is not
// critical but a shorter buffer means less latency
const bufferLength = 1024

// the maximum number of queued bytes, expressed as a multiple of the device
// buffer. if the queue grows larger than this the player is running ahead of
// the device and the queue is cleared
const maxQueued = bufferLength * render.BytesPerSample * 8

// log tag for the sdlaudio package
const logTag = "sdlaudio"

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// number of times the queue has been cleared
	resyncs int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(sampleRate int) (*Audio, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  uint16(bufferLength),
	}

	aud := &Audio{}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	aud.spec = actualSpec

	logger.Logf(logger.Allow, logTag, "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, logTag, "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Write implements the io.Writer interface.
func (aud *Audio) Write(p []byte) (int, error) {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueued {
		sdl.ClearQueuedAudio(aud.id)
		aud.resyncs++
		logger.Logf(logger.Allow, logTag, "audio queue cleared (%d)", aud.resyncs)
	}

	if err := sdl.QueueAudio(aud.id, p); err != nil {
		return 0, curated.Errorf("sdlaudio: %v", err)
	}

	return len(p), nil
}

// Close implements the io.Closer interface.
func (aud *Audio) Close() error {
	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
