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

package userinput

import (
	"os"

	"github.com/jetsetilly/regplay/curated"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// NotTerminal is returned by OpenTerminal() when standard input is not a
// terminal.
const NotTerminal = "userinput: standard input is not a terminal"

// TerminalDevice is the device opened by OpenTerminal().
const TerminalDevice = "/dev/tty"

// Terminal is the controlling terminal of the process in cbreak mode.
type Terminal struct {
	t *term.Term
}

// IsTerminal returns true if the file is a terminal.
func IsTerminal(f *os.File) bool {
	return xterm.IsTerminal(int(f.Fd()))
}

// OpenTerminal opens the terminal device and puts it into cbreak mode. The
// mode of the terminal is restored by Close().
func OpenTerminal() (*Terminal, error) {
	if !IsTerminal(os.Stdin) {
		return nil, curated.Errorf(NotTerminal)
	}

	t, err := term.Open(TerminalDevice, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf("userinput: %v", err)
	}

	return &Terminal{t: t}, nil
}

// Read implements the io.Reader interface.
func (tm *Terminal) Read(p []byte) (int, error) {
	return tm.t.Read(p)
}

// Close restores the terminal to the mode it was in when opened.
func (tm *Terminal) Close() error {
	if err := tm.t.Restore(); err != nil {
		_ = tm.t.Close()
		return curated.Errorf("userinput: %v", err)
	}
	if err := tm.t.Close(); err != nil {
		return curated.Errorf("userinput: %v", err)
	}
	return nil
}
