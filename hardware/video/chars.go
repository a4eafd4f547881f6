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

// Sextant returns the Unicode character for the six low bits of a block
// graphics character.
func Sextant(n uint8) rune {
	n &= 0x3f
	switch n {
	case 0:
		return ' '
	case 21:
		// left column
		return '▌'
	case 42:
		// right column
		return '▐'
	case 63:
		return '█'
	}

	// the sextant block in Unicode omits the four patterns above, which are
	// available as existing block elements
	r := rune(n) - 1
	if n > 21 {
		r--
	}
	if n > 42 {
		r--
	}
	return 0x1fb00 + r
}

// Cell is a single character position of the display.
type Cell struct {
	Rune    rune
	Inverse bool

	// true if the character is block graphics
	Graphics bool
}

// Decode a byte from video memory.
func Decode(chr uint8, inverse bool) Cell {
	if chr&0x80 == 0x80 {
		if inverse {
			c := Decode(chr&0x7f, false)
			c.Inverse = true
			return c
		}
		return Cell{Rune: Sextant(chr), Graphics: true}
	}

	// the character generator shows upper case for codes below 32
	if chr < 0x20 {
		chr += 0x40
	}
	if chr == 0x7f {
		return Cell{Rune: ' '}
	}
	return Cell{Rune: rune(chr)}
}
