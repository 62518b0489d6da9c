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


package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// amended with mode information before being written to the real output.
type helpWriter struct {
	strings.Builder
}

// Help writes the collected flag usage to output. The first line of the usage
// is qualified with the mode named by banner. The sub-modes, if any, are
// listed after the flags with the default sub-mode first.
func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	usage, flags, _ := strings.Cut(hw.String(), "\n")

	var s strings.Builder
	defer func() {
		io.WriteString(output, s.String())
	}()

	if flags == "" && len(subModes) == 0 {
		s.WriteString("No help available")
		if banner != "" {
			fmt.Fprintf(&s, " for %s", banner)
		}
		s.WriteString("\n")
		return
	}

	if banner != "" {
		fmt.Fprintf(&s, "%s for %s mode\n", usage, banner)
	} else {
		fmt.Fprintf(&s, "%s\n", usage)
	}
	s.WriteString(flags)

	if len(subModes) > 0 {
		if flags != "" {
			s.WriteString("\n")
		}
		fmt.Fprintf(&s, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(&s, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(&s, "\n%s\n", additionalHelp)
	}
}
