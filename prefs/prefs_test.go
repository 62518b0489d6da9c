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

package prefs_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/regplay/curated"
	"github.com/jetsetilly/regplay/prefs"
	"github.com/jetsetilly/regplay/test"
)

func TestTypes(t *testing.T) {
	b := prefs.NewBool(true)
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectSuccess(t, b.Set("FALSE"))
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectSuccess(t, b.Reset())
	test.ExpectEquality(t, b.String(), "true")
	test.ExpectFailure(t, b.Set(10))

	i := prefs.NewInt(44100)
	test.ExpectSuccess(t, i.Set(" 22050 "))
	test.ExpectEquality(t, i.Get().(int), 22050)
	test.ExpectFailure(t, i.Set("fast"))
	test.ExpectEquality(t, i.Get().(int), 22050)

	f := prefs.NewFloat(1.0)
	test.ExpectSuccess(t, f.Set("1.015"))
	test.ExpectEquality(t, f.Get().(float64), 1.015)
	test.ExpectEquality(t, f.String(), "1.015")

	s := prefs.NewString("raw")
	test.ExpectSuccess(t, s.Set(" rld "))
	test.ExpectEquality(t, s.String(), "rld")
}

func TestHooks(t *testing.T) {
	i := prefs.NewInt(8192)
	i.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("must be positive")
		}
		return nil
	})

	var post int
	i.SetHookPost(func(v prefs.Value) error {
		post = v.(int)
		return nil
	})

	test.ExpectFailure(t, i.Set(0))
	test.ExpectEquality(t, i.Get().(int), 8192)
	test.ExpectSuccess(t, i.Set(4096))
	test.ExpectEquality(t, post, 4096)
}

func TestGroup(t *testing.T) {
	g := prefs.NewGroup()
	rate := prefs.NewInt(44100)
	scale := prefs.NewFloat(1.0)
	g.Add("player.samplerate", rate)
	g.Add("player.tickscale", scale)

	test.ExpectEquality(t, g.String(), "player.samplerate::44100; player.tickscale::1")

	err := g.Set("player.volume", 10)
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownPref))

	prefs.PushCommandLineStack("player.samplerate::22050; other::value")
	test.ExpectSuccess(t, g.ApplyCommandLine())
	test.ExpectEquality(t, rate.Get().(int), 22050)

	// values not used by the group remain on the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::value")

	test.ExpectSuccess(t, g.Reset())
	test.ExpectEquality(t, rate.Get().(int), 44100)
}

func TestGroupCommandLineError(t *testing.T) {
	g := prefs.NewGroup()
	g.Add("player.capacity", prefs.NewInt(8192))

	prefs.PushCommandLineStack("player.capacity::lots")
	test.ExpectFailure(t, g.ApplyCommandLine())
	prefs.PopCommandLineStack()
}
