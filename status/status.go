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

// Package status prints a one line summary of the player to the terminal. The
// line is redrawn in place whenever the summary changes.
package status

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/regplay/player"
)

// ANSI Color reference
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 6	Cyan
// 7	White
// 8	Bright Black (Gray)
type styles struct {
	playing lipgloss.Style
	idle    lipgloss.Style
	err     lipgloss.Style
	track   lipgloss.Style
	detail  lipgloss.Style
}

func newStyles() styles {
	return styles{
		playing: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
		idle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(0)).Background(lipgloss.ANSIColor(3)),
		err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		track:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
	}
}

// Info is a snapshot of the player.
type Info struct {
	State           player.State
	Reason          player.Reason
	Track           string
	Period          int64
	SamplesPerFrame int
	Rate            float64
	Stats           player.Statistics
}

// NewInfo takes a snapshot of the player.
func NewInfo(pl *player.Player) Info {
	return Info{
		State:           pl.State(),
		Reason:          pl.Reason(),
		Track:           pl.TrackName(),
		Period:          pl.Period(),
		SamplesPerFrame: pl.CurrentSamplesPerFrame(),
		Rate:            pl.FrameRate(),
		Stats:           pl.Statistics(),
	}
}

// Status writes the status line.
type Status struct {
	w      io.Writer
	styles styles

	enabled bool
	last    string
}

// NewStatus is the preferred method of initialisation for the Status type.
// The status line is enabled to begin with.
func NewStatus(w io.Writer) *Status {
	return &Status{
		w:       w,
		styles:  newStyles(),
		enabled: true,
	}
}

// Toggle the status line on and off. The line is cleared when it is turned
// off.
func (st *Status) Toggle() {
	st.enabled = !st.enabled
	if !st.enabled && st.last != "" {
		fmt.Fprint(st.w, "\r\033[K")
	}
	st.last = ""
}

// Line returns the status line for the snapshot.
func (st *Status) Line(info Info) string {
	var s strings.Builder

	switch info.State {
	case player.Playing:
		s.WriteString(st.styles.playing.Render(fmt.Sprintf(" %s ", info.State)))
	case player.ErrorHalt:
		s.WriteString(st.styles.err.Render(fmt.Sprintf(" %s ", info.State)))
	default:
		s.WriteString(st.styles.idle.Render(fmt.Sprintf(" %s ", info.State)))
	}

	if info.Track != "" {
		s.WriteString(" ")
		s.WriteString(st.styles.track.Render(info.Track))
	}

	detail := fmt.Sprintf(" %dus %d samples", info.Period, info.SamplesPerFrame)
	if info.Rate > 0 {
		detail = fmt.Sprintf("%s %.2fHz", detail, info.Rate)
	}
	detail = fmt.Sprintf("%s [tracks %d frames %d", detail, info.Stats.Tracks, info.Stats.Frames)
	if info.Stats.Overruns > 0 {
		detail = fmt.Sprintf("%s overruns %d", detail, info.Stats.Overruns)
	}
	if info.Stats.Corrupt > 0 {
		detail = fmt.Sprintf("%s corrupt %d", detail, info.Stats.Corrupt)
	}
	detail += "]"
	s.WriteString(st.styles.detail.Render(detail))

	return s.String()
}

// Update redraws the status line if the player has changed since the last
// update.
func (st *Status) Update(pl *player.Player) {
	if !st.enabled {
		return
	}

	l := st.Line(NewInfo(pl))
	if l == st.last {
		return
	}
	st.last = l
	fmt.Fprintf(st.w, "\r\033[K%s", l)
}

// End leaves the status line in place and moves to the next line.
func (st *Status) End() {
	if st.enabled && st.last != "" {
		fmt.Fprintln(st.w)
	}
	st.last = ""
}
