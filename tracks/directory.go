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
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/regplay/codec"
	"github.com/jetsetilly/regplay/curated"
	"github.com/jetsetilly/regplay/logger"
	"github.com/jetsetilly/regplay/player"
)

// NoTracks is returned when there are no tracks to select.
const NoTracks = "tracks: no tracks in %s"

// log tag for the tracks package
const logTag = "tracks"

// Directory selects tracks from a directory on disk. If the path is a file
// rather than a directory then that file is the only track and it is
// selected repeatedly.
type Directory struct {
	path          string
	defaultFormat codec.Format

	files []string
	idx   int
}

// NewDirectory is the preferred method of initialisation for the Directory
// type. The directory is scanned immediately and an error is returned if it
// contains no tracks.
func NewDirectory(path string, defaultFormat codec.Format) (*Directory, error) {
	dir := &Directory{
		path:          path,
		defaultFormat: defaultFormat,
	}
	if err := dir.Rescan(); err != nil {
		return nil, err
	}
	return dir, nil
}

// Rescan the directory. The next track will be the first track in the
// directory.
func (dir *Directory) Rescan() error {
	dir.files = dir.files[:0]
	dir.idx = 0

	info, err := os.Stat(dir.path)
	if err != nil {
		return curated.Errorf(OpenError, dir.path, err)
	}

	if !info.IsDir() {
		dir.files = append(dir.files, dir.path)
		return nil
	}

	entries, err := os.ReadDir(dir.path)
	if err != nil {
		return curated.Errorf(OpenError, dir.path, err)
	}

	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		dir.files = append(dir.files, filepath.Join(dir.path, e.Name()))
	}
	sort.Strings(dir.files)

	if len(dir.files) == 0 {
		return curated.Errorf(NoTracks, dir.path)
	}

	return nil
}

// Len returns the number of tracks found by the most recent scan.
func (dir *Directory) Len() int {
	return len(dir.files)
}

// Next implements the player.Selector interface.
func (dir *Directory) Next() (player.Track, error) {
	if len(dir.files) == 0 {
		return nil, curated.Errorf(NoTracks, dir.path)
	}

	// wrap around to the start of the list. the directory is scanned again
	// in case files have been added or removed
	if dir.idx >= len(dir.files) {
		logger.Logf(logger.Allow, logTag, "end of list, returning to start of %s", dir.path)
		if err := dir.Rescan(); err != nil {
			return nil, err
		}
	}

	filename := dir.files[dir.idx]
	dir.idx++

	format, ok := FormatFromFilename(filename)
	if !ok {
		format = dir.defaultFormat
	}

	trk, err := OpenFile(filename, format)
	if err != nil {
		return nil, err
	}
	return trk, nil
}
