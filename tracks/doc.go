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

// Package tracks selects the register traces to play. Directory is the
// selector used by the player when playing from disk: it plays every file in
// a directory in name order and wraps around to the first file at the end of
// the list. List is an in-memory selector.
//
// The format of a file is decided by its extension. If the extension is not
// recognised the name of the directory containing the file is tried, with
// DMP, DMP2 and DMP3 directories containing raw, timed and run-length diff
// traces respectively. Otherwise the default format of the selector is used.
package tracks
