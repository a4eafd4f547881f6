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

package video

import (
	"fmt"
	"strings"

	"github.com/eacaemu/eg3200/hardware/crtc"
)

// RAMSize is the amount of video memory.
const RAMSize = 0x800

// InverseBit is the bit of the video mode port that selects inverse video.
const InverseBit = 0x01

// Video is the video mode port and the text decoder.
type Video struct {
	crtc *crtc.CRTC

	// reads video memory at an offset in the range 0 to RAMSize-1
	read func(offset uint16) uint8

	inverse bool
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(c *crtc.CRTC, read func(offset uint16) uint8) *Video {
	return &Video{
		crtc: c,
		read: read,
	}
}

func (vid *Video) String() string {
	mode := "graphics"
	if vid.inverse {
		mode = "inverse"
	}
	return fmt.Sprintf("%s %s", vid.crtc.Geometry(), mode)
}

// Reset to the TRS-80 compatible mode.
func (vid *Video) Reset() {
	vid.inverse = false
}

// WriteMode is a write to the video mode port. Returns true if the mode has
// changed.
func (vid *Video) WriteMode(data uint8) bool {
	inv := data&InverseBit == InverseBit
	changed := inv != vid.inverse
	vid.inverse = inv
	return changed
}

// Inverse returns true if inverse video is selected.
func (vid *Video) Inverse() bool {
	return vid.inverse
}

// Screen decodes the display.
func (vid *Video) Screen() *Screen {
	g := vid.crtc.Geometry()
	scr := &Screen{
		Geometry: g,
		Cells:    make([][]Cell, g.Rows),
	}

	offset := vid.crtc.StartAddress()
	for row := range g.Rows {
		scr.Cells[row] = make([]Cell, g.Columns)
		for col := range g.Columns {
			scr.Cells[row][col] = Decode(vid.read(offset%RAMSize), vid.inverse)
			offset++
		}
	}

	return scr
}

// Screen is the decoded display.
type Screen struct {
	Geometry crtc.Geometry
	Cells    [][]Cell
}

// String returns the display as plain text, one line per row. Inverse
// characters are not distinguished.
func (scr *Screen) String() string {
	s := strings.Builder{}
	for _, row := range scr.Cells {
		for _, c := range row {
			s.WriteRune(c.Rune)
		}
		s.WriteString("\n")
	}
	return s.String()
}

// ANSI returns the display with inverse characters marked with ANSI reverse
// video sequences.
func (scr *Screen) ANSI() string {
	s := strings.Builder{}
	for _, row := range scr.Cells {
		inv := false
		for _, c := range row {
			if c.Inverse != inv {
				inv = c.Inverse
				if inv {
					s.WriteString("\033[7m")
				} else {
					s.WriteString("\033[0m")
				}
			}
			s.WriteRune(c.Rune)
		}
		if inv {
			s.WriteString("\033[0m")
		}
		s.WriteString("\n")
	}
	return s.String()
}

// Trimmed returns the display as plain text with trailing spaces and blank
// trailing lines removed.
func (scr *Screen) Trimmed() string {
	lines := strings.Split(scr.String(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
