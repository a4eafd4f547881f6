// This file is part of eg3200.
//
// eg3200 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// eg3200 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with eg3200.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"bytes"
	"io"
)

// ANSI sequences used by the colorizer.
const (
	penNormal = "\033[0m"
	penTag    = "\033[36m"
	penError  = "\033[2;31m"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is written in a different color to the detail and entries that
// mention an error are dimmed red.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	var b bytes.Buffer

	for _, l := range bytes.Split(bytes.TrimRight(p, "\n"), []byte("\n")) {
		tag, detail, ok := bytes.Cut(l, []byte(": "))
		if !ok {
			b.Write(l)
			b.WriteString("\n")
			continue
		}

		b.WriteString(penTag)
		b.Write(tag)
		b.WriteString(penNormal)
		b.WriteString(": ")
		if bytes.Contains(detail, []byte("error")) {
			b.WriteString(penError)
			b.Write(detail)
			b.WriteString(penNormal)
		} else {
			b.Write(detail)
		}
		b.WriteString("\n")
	}

	_, err := c.out.Write(b.Bytes())
	if err != nil {
		return 0, err
	}

	// report the number of bytes consumed from p rather than the number of
	// bytes written including escape sequences
	return len(p), nil
}
