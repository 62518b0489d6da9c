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

// Package pacer decides when the next frame is due. It does not sleep or
// block. The caller polls Due() as often as it likes with the current time
// from a monotonic clock, in microseconds, and calls Mark() when it has
// applied a frame.
//
// The frame period begins at the default and can be changed by a period
// override decoded from the register trace. Overrides are in timer ticks and
// are converted to microseconds with the tick scale. A tick scale of 1.0
// means ticks are microseconds.
//
// A period of zero is valid and means the fastest possible frame rate: every
// call to Due() will return true. Decoded overrides are not validated.
package pacer

import (
	"math"
)

// Pacer gates frames against a monotonic clock.
type Pacer struct {
	defaultPeriod int64
	period        int64
	scale         float64

	// time of the last frame
	last int64

	// the first frame after a reset is due immediately
	primed bool

	// measurement of the actual frame rate. the rate is recalculated once per
	// second of clock time
	frames       int
	measureCt    int
	measureStart int64
	rate         float64
}

// NewPacer is the preferred method of initialisation for the Pacer type. The
// default period is in microseconds. A tick scale of zero or less is treated
// as 1.0.
func NewPacer(defaultPeriod int64, scale float64) *Pacer {
	if scale <= 0.0 {
		scale = 1.0
	}
	pc := &Pacer{
		defaultPeriod: defaultPeriod,
		scale:         scale,
	}
	pc.Reset(0)
	return pc
}

// Reset restores the default period and primes the pacer so that the next
// call to Due() returns true.
func (pc *Pacer) Reset(now int64) {
	pc.period = pc.defaultPeriod
	pc.last = now
	pc.primed = true
	pc.frames = 0
	pc.measureCt = 0
	pc.measureStart = now
	pc.rate = 0
}

// Due returns true if a frame should be applied at the time now.
func (pc *Pacer) Due(now int64) bool {
	if pc.primed {
		return true
	}
	return now-pc.last >= pc.period
}

// Mark records that a frame was applied at the time now.
//
// A frame that is late by less than one period is treated as if it had been
// applied on time, so that the next frame is due one period after this one
// was due. Lateness in polling does not accumulate. A pacer that falls more
// than a period behind measures from now and the lost time is not recovered.
func (pc *Pacer) Mark(now int64) {
	late := now - pc.last - pc.period
	if pc.primed || pc.period <= 0 || late < 0 || late >= pc.period {
		pc.last = now
	} else {
		pc.last += pc.period
	}
	pc.primed = false
	pc.frames++

	pc.measureCt++
	if elapsed := now - pc.measureStart; elapsed >= 1000000 {
		pc.rate = float64(pc.measureCt) * 1000000.0 / float64(elapsed)
		pc.measureCt = 0
		pc.measureStart = now
	}
}

// Period returns the current frame period in microseconds.
func (pc *Pacer) Period() int64 {
	return pc.period
}

// SetPeriod changes the frame period. The value is in timer ticks. The new
// period is measured from the last frame, not from the time of the call.
func (pc *Pacer) SetPeriod(ticks uint16) {
	pc.period = int64(math.Round(float64(ticks) * pc.scale))
}

// Scale returns the number of microseconds in one timer tick.
func (pc *Pacer) Scale() float64 {
	return pc.scale
}

// Frames returns the number of frames marked since the last reset.
func (pc *Pacer) Frames() int {
	return pc.frames
}

// Rate returns the measured number of frames per second. Returns zero until
// at least one second of frames has been measured.
func (pc *Pacer) Rate() float64 {
	return pc.rate
}
