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

// Package otoaudio outputs rendered frames to an audio device using oto.
//
// Oto pulls audio from the Audio type in its own goroutine. Frames written
// by the player are held in a queue until oto asks for them. When the queue
// runs dry, silence is played.
package otoaudio

import (
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/regplay/curated"
	"github.com/jetsetilly/regplay/logger"
	"github.com/jetsetilly/regplay/render"
)

// the device buffer. shorter buffers mean less latency
const bufferSize = 50 * time.Millisecond

// log tag for the otoaudio package
const logTag = "otoaudio"

// Audio outputs sound using oto.
type Audio struct {
	ctx    *oto.Context
	player *oto.Player

	queue *Queue
}

// NewAudio is the preferred method of initialisation for the Audio type.
// Only one Audio instance can exist during the lifetime of the program.
func NewAudio(sampleRate int) (*Audio, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   bufferSize,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("otoaudio: %v", err)
	}
	<-ready

	// a quarter of a second of audio is more than enough. anything more than
	// that and the player is running ahead of the device
	aud := &Audio{
		ctx:   ctx,
		queue: NewQueue(sampleRate * render.BytesPerSample / 4),
	}

	aud.player = ctx.NewPlayer(aud.queue)
	aud.player.Play()

	logger.Logf(logger.Allow, logTag, "frequency: %d samples/sec", sampleRate)

	return aud, nil
}

// Write implements the io.Writer interface.
func (aud *Audio) Write(p []byte) (int, error) {
	return aud.queue.Write(p)
}

// Close implements the io.Closer interface.
func (aud *Audio) Close() error {
	if err := aud.player.Close(); err != nil {
		return curated.Errorf("otoaudio: %v", err)
	}
	if dropped := aud.queue.Dropped(); dropped > 0 {
		logger.Logf(logger.Allow, logTag, "%d bytes dropped", dropped)
	}
	return nil
}

// Queue is a byte queue with a fixed capacity. It is safe to write to and read
// from the queue in different goroutines.
type Queue struct {
	crit sync.Mutex
	buf  []byte
	max  int

	dropped int
	starved int
}

// NewQueue is the preferred method of initialisation for the Queue type. The
// capacity is in bytes.
func NewQueue(capacity int) *Queue {
	return &Queue{
		buf: make([]byte, 0, capacity),
		max: capacity,
	}
}

// Write implements the io.Writer interface. Data that does not fit in the
// queue is dropped and the write is short.
func (q *Queue) Write(p []byte) (int, error) {
	q.crit.Lock()
	defer q.crit.Unlock()

	n := q.max - len(q.buf)
	if n > len(p) {
		n = len(p)
	}
	q.buf = append(q.buf, p[:n]...)
	q.dropped += len(p) - n

	return n, nil
}

// Read implements the io.Reader interface. The read is always complete. If
// there is not enough data in the queue the remainder is filled with
// silence.
func (q *Queue) Read(p []byte) (int, error) {
	q.crit.Lock()
	defer q.crit.Unlock()

	n := copy(p, q.buf)
	q.buf = q.buf[:copy(q.buf, q.buf[n:])]

	if n < len(p) {
		q.starved++
		for i := n; i < len(p); i++ {
			p[i] = 0
		}
	}

	return len(p), nil
}

// Len returns the number of bytes in the queue.
func (q *Queue) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.buf)
}

// Dropped returns the number of bytes dropped because the queue was full.
func (q *Queue) Dropped() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.dropped
}

// Starved returns the number of reads that were filled out with silence.
func (q *Queue) Starved() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.starved
}
