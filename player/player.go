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

package player

import (
	"io"

	"github.com/jetsetilly/regplay/codec"
	"github.com/jetsetilly/regplay/curated"
	"github.com/jetsetilly/regplay/logger"
	"github.com/jetsetilly/regplay/render"
)

// log tag for the player package
const logTag = "player"

// Statistics of a Player since it was created.
type Statistics struct {
	Tracks      int
	Frames      int
	ChipWrites  int
	Overruns    int
	Corrupt     int
	ShortWrites int
}

// Player is the playback controller.
type Player struct {
	Prefs *Preferences

	selector Selector
	chip     Chip
	sink     io.Writer
	rnd      *render.Renderer

	state  State
	reason Reason
	err    error

	// the session for the current track. nil when there is no track
	session *session

	// samples per frame calculated for the most recent frame
	samplesPerFrame int

	stats Statistics
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The Player begins in the Idle state.
func NewPlayer(p *Preferences, sel Selector, chip Chip, sink io.Writer) (*Player, error) {
	rnd, err := render.NewRenderer(p.Capacity.Get().(int))
	if err != nil {
		return nil, curated.Errorf("player: %v", err)
	}

	pl := &Player{
		Prefs:    p,
		selector: sel,
		chip:     chip,
		sink:     sink,
		rnd:      rnd,
		state:    Idle,
	}

	pl.samplesPerFrame = render.SamplesPerFrame(pl.sampleRate(), codec.DefaultPeriod)

	return pl, nil
}

// AllowLogging implements the logger.Permission interface.
func (pl *Player) AllowLogging() bool {
	return pl.Prefs.Log.Get().(bool)
}

func (pl *Player) sampleRate() int {
	return pl.Prefs.SampleRate.Get().(int)
}

// State returns the current state of the Player.
func (pl *Player) State() State {
	return pl.state
}

// IsPlaying returns true if the Player is in the Playing state.
func (pl *Player) IsPlaying() bool {
	return pl.state == Playing
}

// Reason returns the reason the most recent track finished.
func (pl *Player) Reason() Reason {
	return pl.reason
}

// Overrun returns true if the most recent track finished because of an
// overrun.
func (pl *Player) Overrun() bool {
	return pl.reason == Overrun
}

// Err returns the error that caused the ErrorHalt state, or the error that
// caused the most recent track to finish early. Returns nil otherwise.
func (pl *Player) Err() error {
	return pl.err
}

// TrackName returns the name of the current track. Returns the empty string
// if there is no current track.
func (pl *Player) TrackName() string {
	if pl.session == nil {
		return ""
	}
	return pl.session.track.Name()
}

// CurrentSamplesPerFrame returns the number of sample frames rendered for the
// most recent frame. Before the first frame, it is the number for the default
// frame period.
func (pl *Player) CurrentSamplesPerFrame() int {
	return pl.samplesPerFrame
}

// Capacity returns the capacity of the output buffer in sample frames.
func (pl *Player) Capacity() int {
	return pl.rnd.Capacity()
}

// Period returns the frame period of the current track in microseconds.
func (pl *Player) Period() int64 {
	if pl.session == nil {
		return codec.DefaultPeriod
	}
	return pl.session.pacer.Period()
}

// FrameRate returns the measured frame rate of the current track.
func (pl *Player) FrameRate() float64 {
	if pl.session == nil {
		return 0
	}
	return pl.session.pacer.Rate()
}

// Statistics returns a copy of the player statistics.
func (pl *Player) Statistics() Statistics {
	return pl.stats
}

// Select starts playback by moving to the Loading state. Select() only has an
// effect in the Idle and ErrorHalt states.
func (pl *Player) Select() {
	switch pl.state {
	case Idle, ErrorHalt:
		pl.err = nil
		pl.state = Loading
	}
}

// Skip abandons the current track. It only has an effect in the Playing
// state.
func (pl *Player) Skip() {
	if pl.state == Playing {
		pl.finish(Skipped, nil)
	}
}

// Do performs the action.
func (pl *Player) Do(a Action) {
	switch a {
	case SkipTrack:
		pl.Skip()
	}
}

// Tick advances the player by one step. The time is the current time in
// microseconds from a monotonic clock.
func (pl *Player) Tick(now int64) {
	switch pl.state {
	case Idle, ErrorHalt:
		return
	case Loading:
		pl.load(now)
	case Playing:
		pl.step(now)
	case Finished:
		pl.state = Loading
	}
}

// Stop closes the current track and returns the player to the Idle state.
func (pl *Player) Stop() error {
	var err error
	if pl.session != nil {
		err = pl.session.close()
		pl.session = nil
	}
	pl.state = Idle
	return err
}

func (pl *Player) load(now int64) {
	trk, err := pl.selector.Next()
	if err != nil {
		pl.err = curated.Errorf("player: %v", err)
		pl.state = ErrorHalt
		logger.Log(logger.Allow, logTag, pl.err.Error())
		return
	}

	s, err := pl.newSession(trk, now)
	if err != nil {
		_ = trk.Close()
		pl.err = curated.Errorf("player: %v", err)
		pl.state = ErrorHalt
		logger.Log(logger.Allow, logTag, pl.err.Error())
		return
	}

	pl.session = s
	pl.reason = NotFinished
	pl.err = nil
	pl.samplesPerFrame = render.SamplesPerFrame(pl.sampleRate(), s.pacer.Period())
	pl.stats.Tracks++
	pl.state = Playing

	logger.Logf(pl, logTag, "playing %s (%s)", trk.Name(), trk.Format())
}

func (pl *Player) step(now int64) {
	s := pl.session

	if !s.pacer.Due(now) {
		return
	}
	s.pacer.Mark(now)

	f, err := s.dec.Next()
	if err != nil {
		if curated.Is(err, codec.EndOfTrack) {
			pl.finish(EndOfTrack, nil)
		} else {
			pl.finish(Corrupt, err)
		}
		return
	}

	pl.stats.ChipWrites += s.bank.Apply(f.Mode, f.Pairs)
	if f.Override {
		s.pacer.SetPeriod(f.Period)
	}

	n := render.SamplesPerFrame(pl.sampleRate(), s.pacer.Period())
	pl.samplesPerFrame = n

	buf, err := pl.rnd.Render(pl.chip, n)
	if err != nil {
		pl.finish(Overrun, err)
		return
	}

	pl.stats.Frames++

	// short writes are not retried. the sink will have to make do
	w, err := pl.sink.Write(buf)
	if err != nil || w < len(buf) {
		pl.stats.ShortWrites++
		if err != nil {
			logger.Logf(pl, logTag, "audio sink: %v", err)
		} else {
			logger.Logf(pl, logTag, "audio sink: short write (%d of %d bytes)", w, len(buf))
		}
	}
}

func (pl *Player) finish(reason Reason, err error) {
	pl.reason = reason
	pl.err = err
	pl.state = Finished

	switch reason {
	case Overrun:
		pl.stats.Overruns++
	case Corrupt:
		pl.stats.Corrupt++
	}

	if err != nil {
		logger.Logf(pl, logTag, "%s: %v", pl.session.track.Name(), err)
	} else {
		logger.Logf(pl, logTag, "%s: %s", pl.session.track.Name(), reason)
	}

	if cerr := pl.session.close(); cerr != nil {
		logger.Logf(pl, logTag, "%s: %v", pl.session.track.Name(), cerr)
	}
	pl.session = nil
}
