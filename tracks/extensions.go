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
	"path/filepath"
	"strings"

	"github.com/jetsetilly/regplay/codec"
)

// FileExtensions maps the file extensions recognised by the tracks package to
// the format of the register trace. Extensions are compared case
// insensitively.
var FileExtensions = map[string]codec.Format{
	".DMP":  codec.FormatRaw,
	".RAW":  codec.FormatRaw,
	".DMP2": codec.FormatTimed,
	".CIA":  codec.FormatTimed,
	".DMP3": codec.FormatRunLengthDiff,
	".RLD":  codec.FormatRunLengthDiff,
}

// the directory names used by the SD card layout of the hardware player
var directoryNames = map[string]codec.Format{
	"DMP":  codec.FormatRaw,
	"DMP2": codec.FormatTimed,
	"DMP3": codec.FormatRunLengthDiff,
}

// FormatFromFilename returns the format of the register trace according to
// the filename. The second return value is false if the filename does not
// decide the format.
func FormatFromFilename(filename string) (codec.Format, bool) {
	ext := strings.ToUpper(filepath.Ext(filename))
	if f, ok := FileExtensions[ext]; ok {
		return f, true
	}

	dir := strings.ToUpper(filepath.Base(filepath.Dir(filename)))
	if f, ok := directoryNames[dir]; ok {
		return f, true
	}

	return codec.FormatRaw, false
}
