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
	"bufio"
	"os"
	"path/filepath"

	"github.com/jetsetilly/regplay/codec"
	"github.com/jetsetilly/regplay/curated"
)

// OpenError is returned when a track cannot be opened.
const OpenError = "tracks: cannot open %s: %v"

// size of the read buffer for file tracks. large enough for several frames of
// the largest record
const readBufferSize = 4096

// File is a track read from disk.
type File struct {
	filename  string
	format    codec.Format
	f         *os.File
	r         *bufio.Reader
	remaining int64
}

// OpenFile opens a register trace for reading.
func OpenFile(filename string, format codec.Format) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(OpenError, filename, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, curated.Errorf(OpenError, filename, err)
	}

	return &File{
		filename:  filename,
		format:    format,
		f:         f,
		r:         bufio.NewReaderSize(f, readBufferSize),
		remaining: info.Size(),
	}, nil
}

// Read implements the io.Reader interface.
func (trk *File) Read(p []byte) (int, error) {
	n, err := trk.r.Read(p)
	trk.remaining -= int64(n)
	return n, err
}

// Available implements the codec.Source interface.
func (trk *File) Available() bool {
	return trk.remaining > 0
}

// Close implements the io.Closer interface.
func (trk *File) Close() error {
	return trk.f.Close()
}

// Name implements the player.Track interface.
func (trk *File) Name() string {
	return filepath.Base(trk.filename)
}

// Format implements the player.Track interface.
func (trk *File) Format() codec.Format {
	return trk.format
}
