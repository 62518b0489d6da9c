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
	"fmt"

	"github.com/jetsetilly/regplay/codec"
	"github.com/jetsetilly/regplay/prefs"
)

// Preferences defines and collates all the preference values used by the
// player.
type Preferences struct {
	group *prefs.Group

	// output sample rate in Hz
	SampleRate *prefs.Int

	// capacity of the output buffer in bytes
	Capacity *prefs.Int

	// number of microseconds in one timer tick of a period override
	TickScale *prefs.Float

	// whether the player adds entries to the log
	Log *prefs.Bool

	// decoder to use when the track does not decide
	Format *prefs.String
}

func (p *Preferences) String() string {
	return p.group.String()
}

// Default values for the player preferences. The capacity is enough for a
// 50Hz frame at 48kHz with room to spare for CIA timed tracks.
const (
	DefaultSampleRate = 44100
	DefaultCapacity   = 8192
	DefaultTickScale  = 1.0
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values from the current command line preferences group
// are applied.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		group:      prefs.NewGroup(),
		SampleRate: prefs.NewInt(DefaultSampleRate),
		Capacity:   prefs.NewInt(DefaultCapacity),
		TickScale:  prefs.NewFloat(DefaultTickScale),
		Log:        prefs.NewBool(true),
		Format:     prefs.NewString(codec.FormatRaw.String()),
	}

	p.SampleRate.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("sample rate must be positive")
		}
		return nil
	})
	p.Capacity.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 4 {
			return fmt.Errorf("capacity must be at least one sample frame")
		}
		return nil
	})
	p.TickScale.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0.0 {
			return fmt.Errorf("tick scale must be positive")
		}
		return nil
	})

	p.group.Add("player.samplerate", p.SampleRate)
	p.group.Add("player.capacity", p.Capacity)
	p.group.Add("player.tickscale", p.TickScale)
	p.group.Add("player.log", p.Log)
	p.group.Add("player.format", p.Format)

	if err := p.group.ApplyCommandLine(); err != nil {
		return nil, err
	}

	if _, err := codec.ParseFormat(p.Format.String()); err != nil {
		return nil, err
	}

	return p, nil
}

// DefaultFormat returns the Format named by the Format preference.
func (p *Preferences) DefaultFormat() codec.Format {
	f, err := codec.ParseFormat(p.Format.String())
	if err != nil {
		return codec.FormatRaw
	}
	return f
}
