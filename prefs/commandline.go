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
	"maps"
	"slices"
	"strings"
)

// commandLine is one group of preferences given on the command line. Values
// are removed from the group as they are used.
type commandLine map[string]string

// parseCommandLine splits a string of the form "key::value; key::value" into
// a commandLine. Entries without the "::" separator or without a key are
// ignored.
func parseCommandLine(s string) commandLine {
	cl := make(commandLine)
	for _, entry := range strings.Split(s, ";") {
		key, value, ok := strings.Cut(entry, "::")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		cl[key] = strings.TrimSpace(value)
	}
	return cl
}

// unused returns the entries that have not been taken, in key order and in
// the same form as they are given on the command line.
func (cl commandLine) unused() string {
	entries := make([]string, 0, len(cl))
	for _, key := range slices.Sorted(maps.Keys(cl)) {
		entries = append(entries, key+"::"+cl[key])
	}
	return strings.Join(entries, "; ")
}

// the most recent group is at the end of the stack. only that group is
// consulted by GetCommandLinePref()
var commandLineStack []commandLine

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack parses a preferences string and adds it as a new group.
// For example:
//
//	player.samplerate::48000; player.tickscale::1.015
func PushCommandLineStack(prefs string) {
	commandLineStack = append(commandLineStack, parseCommandLine(prefs))
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the preferences in the group that were never
// used. A non-empty string usually means a preference was misspelled.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}
	top := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]
	return top.unused()
}

// GetCommandLinePref returns the value for the key in the most recent group.
// The value is removed from the group when it is returned.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}
	top := commandLineStack[len(commandLineStack)-1]
	v, ok := top[key]
	if !ok {
		return false, nil
	}
	delete(top, key)
	return true, v
}
