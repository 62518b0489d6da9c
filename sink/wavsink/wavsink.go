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

// Package wavsink allows writing of audio data to disk as a WAV file. Unlike
// a live audio sink, every frame written is kept and the file can be played
// back at any speed.
package wavsink

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/regplay/curated"
	"github.com/jetsetilly/regplay/logger"
	"github.com/jetsetilly/regplay/render"
	"github.com/jetsetilly/regplay/sink"
)

// the sink always writes stereo 16 bit PCM
const (
	numChannels = 2
	bitDepth    = 16

	// audio format for uncompressed PCM in the WAV header
	formatPCM = 1
)

// WavSink implements the io.WriteCloser interface.
type WavSink struct {
	filename string
	f        *os.File
	enc      *wav.Encoder
	buf      *audio.IntBuffer

	// number of sample frames written
	frames int
}

// New is the preferred method of initialisation for the WavSink type. The
// file is created immediately and is complete once Close() has been called.
func New(filename string, sampleRate int) (*WavSink, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("wavsink: %v", err)
	}

	ws := &WavSink{
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, sampleRate, bitDepth, numChannels, formatPCM),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: numChannels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: bitDepth,
		},
	}

	logger.Logf(logger.Allow, "wavsink", "writing audio to %s", filename)

	return ws, nil
}

// Write implements the io.Writer interface. Only whole sample frames are
// written.
func (ws *WavSink) Write(p []byte) (int, error) {
	n := len(p) - len(p)%render.BytesPerSample
	if n == 0 {
		return 0, nil
	}

	ws.buf.Data = sink.Samples(ws.buf.Data[:0], p[:n])
	if err := ws.enc.Write(ws.buf); err != nil {
		return 0, curated.Errorf("wavsink: %v", err)
	}
	ws.frames += n / render.BytesPerSample

	return n, nil
}

// Frames returns the number of sample frames written to the file.
func (ws *WavSink) Frames() int {
	return ws.frames
}

// Close implements the io.Closer interface. The WAV header is completed and
// the file is closed.
func (ws *WavSink) Close() (rerr error) {
	defer func() {
		err := ws.f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavsink: %v", err)
		}
	}()

	if err := ws.enc.Close(); err != nil {
		return curated.Errorf("wavsink: %v", err)
	}

	logger.Logf(logger.Allow, "wavsink", "%d sample frames written to %s", ws.frames, ws.filename)

	return nil
}
