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

package tracks

import (
	"fmt"
	"time"

	"github.com/jetsetilly/regplay/codec"
	"github.com/jetsetilly/regplay/curated"
	"github.com/jetsetilly/regplay/pacer"
	"github.com/jetsetilly/regplay/player"
)

// Summary of a track.
type Summary struct {
	Name   string
	Format codec.Format

	// number of frames in the track. a corrupt frame is not counted
	Frames int

	// number of frames that carry a period override
	Overrides int

	// number of register values in all frames
	Pairs int

	// playing time of the track
	Duration time.Duration

	// the error that stopped the scan early. nil if the track ended cleanly
	Err error
}

func (s Summary) String() string {
	if s.Err != nil {
		return fmt.Sprintf("%s (%s): %d frames, %d overrides, %s: %v", s.Name, s.Format, s.Frames, s.Overrides, s.Duration, s.Err)
	}
	return fmt.Sprintf("%s (%s): %d frames, %d overrides, %s", s.Name, s.Format, s.Frames, s.Overrides, s.Duration)
}

// Summarise decodes every frame in the track. The playing time is calculated
// with the tick scale in the same way that the player calculates it.
func Summarise(trk player.Track, scale float64) Summary {
	s := Summary{
		Name:   trk.Name(),
		Format: trk.Format(),
	}

	dec, err := codec.NewDecoder(trk.Format(), trk)
	if err != nil {
		s.Err = err
		return s
	}

	pc := pacer.NewPacer(codec.DefaultPeriod, scale)

	var us int64
	for {
		f, err := dec.Next()
		if err != nil {
			if !curated.Is(err, codec.EndOfTrack) {
				s.Err = err
			}
			break // for loop
		}

		if f.Override {
			s.Overrides++
			pc.SetPeriod(f.Period)
		}
		s.Frames++
		s.Pairs += len(f.Pairs)
		us += pc.Period()
	}

	s.Duration = time.Duration(us) * time.Microsecond

	return s
}
