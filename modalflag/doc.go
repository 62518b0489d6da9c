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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are given to the Modes type with
// NewArgs() and then Parse() is called with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "DUMP", "ENCODE", "INFO")
//	p, err := md.Parse()
//
// The first sub-mode is the default mode. If the first non-flag argument is
// not one of the sub-modes then the default mode is selected and the
// argument is left for the next call to Parse(). After a mode has been
// selected the mode function calls NewMode() and adds the flags for that
// mode before calling Parse() again:
//
//	md.NewMode()
//	wav := md.AddString("wav", "", "record audio to wav file")
//	p, err := md.Parse()
//
// Parse() returns ParseHelp when -help has been requested. The help message
// will have been printed to the Output writer and the caller should exit
// without printing anything further.
//
// Mode() returns the most recently selected mode and Path() the sequence of
// modes selected so far, separated by a forward slash.
package modalflag
