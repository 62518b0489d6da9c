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
	"github.com/jetsetilly/regplay/pacer"
	"github.com/jetsetilly/regplay/registers"
	"github.com/jetsetilly/regplay/render"
)

// Track is a register trace opened by the Selector.
type Track interface {
	codec.Source
	io.Closer
	Name() string
	Format() codec.Format
}

// Selector is the capability that chooses the next track to play. Wrapping
// around at the end of a list of tracks is the responsibility of the
// Selector. Returning an error means no track can be played.
type Selector interface {
	Next() (Track, error)
}

// Chip is the capability that represents the sound chip. Register writes are
// forwarded to it and it generates the audio samples.
type Chip interface {
	registers.ChipWriter
	render.Generator
}

// session is everything that lives for exactly as long as one track.
type session struct {
	track Track
	dec   codec.Decoder
	bank  *registers.Bank
	pacer *pacer.Pacer
}

func (pl *Player) newSession(trk Track, now int64) (*session, error) {
	dec, err := codec.NewDecoder(trk.Format(), trk)
	if err != nil {
		return nil, err
	}

	s := &session{
		track: trk,
		dec:   dec,
		bank:  registers.NewBank(pl.chip),
		pacer: pacer.NewPacer(codec.DefaultPeriod, pl.Prefs.TickScale.Get().(float64)),
	}
	s.pacer.Reset(now)

	return s, nil
}

func (s *session) close() error {
	return s.track.Close()
}
