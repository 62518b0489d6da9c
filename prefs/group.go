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

package prefs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/regplay/curated"
)

// UnknownPref is returned by Group.Set() when the key has not been added to
// the group.
const UnknownPref = "prefs: unknown preference (%s)"

// Group collates a set of named preference values. Keys are conventionally
// of the form "component.name".
type Group struct {
	entries map[string]Pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]Pref),
	}
}

// Add a preference value to the group. Adding a key that already exists
// replaces the previous entry.
func (g *Group) Add(key string, p Pref) {
	g.entries[key] = p
}

// Set the value of the named preference.
func (g *Group) Set(key string, v Value) error {
	p, ok := g.entries[key]
	if !ok {
		return curated.Errorf(UnknownPref, key)
	}
	return p.Set(v)
}

// ApplyCommandLine sets every preference in the group for which there is a
// value in the current command line group. See PushCommandLineStack().
func (g *Group) ApplyCommandLine() error {
	for _, key := range g.keys() {
		if ok, v := GetCommandLinePref(key); ok {
			if err := g.entries[key].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
		}
	}
	return nil
}

// Reset all preferences in the group to their default values.
func (g *Group) Reset() error {
	for _, key := range g.keys() {
		if err := g.entries[key].Reset(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Group) keys() []string {
	keys := make([]string, 0, len(g.entries))
	for key := range g.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// String returns the group in the same "key::value; key::value" form used by
// the command line stack.
func (g *Group) String() string {
	s := strings.Builder{}
	for _, key := range g.keys() {
		s.WriteString(fmt.Sprintf("%s::%s; ", key, g.entries[key].String()))
	}
	return strings.TrimSuffix(s.String(), "; ")
}
