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
	"github.com/jetsetilly/regplay/codec"
	"github.com/jetsetilly/regplay/curated"
	"github.com/jetsetilly/regplay/player"
)

// Memory is a track held in memory.
type Memory struct {
	codec.Source
	name   string
	format codec.Format
	closed bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(name string, format codec.Format, data []byte) *Memory {
	return &Memory{
		Source: codec.NewByteSource(data),
		name:   name,
		format: format,
	}
}

// Close implements the io.Closer interface.
func (trk *Memory) Close() error {
	trk.closed = true
	return nil
}

// Closed returns true if Close() has been called.
func (trk *Memory) Closed() bool {
	return trk.closed
}

// Name implements the player.Track interface.
func (trk *Memory) Name() string {
	return trk.name
}

// Format implements the player.Track interface.
func (trk *Memory) Format() codec.Format {
	return trk.format
}

// Entry is a single track in a List.
type Entry struct {
	Name   string
	Format codec.Format
	Data   []byte
}

// List selects tracks from a list of in-memory entries, wrapping around at
// the end of the list. Every selection creates a new Memory track.
type List struct {
	Entries []Entry

	// every track opened by Next() in the order they were opened
	Opened []*Memory

	idx int
}

// Next implements the player.Selector interface.
func (lst *List) Next() (player.Track, error) {
	if len(lst.Entries) == 0 {
		return nil, curated.Errorf(NoTracks, "list")
	}

	e := lst.Entries[lst.idx%len(lst.Entries)]
	lst.idx++

	trk := NewMemory(e.Name, e.Format, e.Data)
	lst.Opened = append(lst.Opened, trk)
	return trk, nil
}
