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

package status_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/regplay/chip"
	"github.com/jetsetilly/regplay/codec"
	"github.com/jetsetilly/regplay/player"
	"github.com/jetsetilly/regplay/sink"
	"github.com/jetsetilly/regplay/status"
	"github.com/jetsetilly/regplay/test"
	"github.com/jetsetilly/regplay/tracks"
)

func TestLine(t *testing.T) {
	st := status.NewStatus(&test.Writer{})

	l := st.Line(status.Info{
		State:           player.Playing,
		Track:           "commando.dmp",
		Period:          20000,
		SamplesPerFrame: 882,
		Rate:            50.0,
		Stats:           player.Statistics{Tracks: 3, Frames: 1000, Overruns: 1},
	})

	test.ExpectSuccess(t, strings.Contains(l, "playing"))
	test.ExpectSuccess(t, strings.Contains(l, "commando.dmp"))
	test.ExpectSuccess(t, strings.Contains(l, "20000us 882 samples 50.00Hz"))
	test.ExpectSuccess(t, strings.Contains(l, "overruns 1"))
	test.ExpectFailure(t, strings.Contains(l, "corrupt"))
}

func TestUpdate(t *testing.T) {
	p, err := player.NewPreferences()
	test.DemandSuccess(t, err)
	p.Log.Set(false)

	lst := &tracks.List{Entries: []tracks.Entry{{Name: "tune", Format: codec.FormatRaw, Data: make([]byte, 50)}}}
	pl, err := player.NewPlayer(p, lst, &chip.Silent{}, &sink.Null{})
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	st := status.NewStatus(w)

	st.Update(pl)
	test.ExpectSuccess(t, strings.Contains(w.String(), "idle"))

	// no change and nothing is written
	w.Clear()
	st.Update(pl)
	test.ExpectEquality(t, w.String(), "")

	pl.Select()
	pl.Tick(0)
	st.Update(pl)
	test.ExpectSuccess(t, strings.Contains(w.String(), "tune"))

	// nothing is written when the status line is off
	st.Toggle()
	w.Clear()
	pl.Tick(0)
	st.Update(pl)
	test.ExpectEquality(t, w.String(), "")

	st.Toggle()
	st.Update(pl)
	st.End()
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "\n"))
}
