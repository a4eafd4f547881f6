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

package keyboard

import (
	"strings"
)

// Key is the position of a key in the matrix. Some keys are wired to more than
// one position and have more than one Key entry.
type Key struct {
	Name string
	Row  int
	Bit  uint8
}

// list of all keys. the index in the inner slice is the bit number
var matrix = [NumRows][]string{
	{"@", "A", "B", "C", "D", "E", "F", "G"},
	{"H", "I", "J", "K", "L", "M", "N", "O"},
	{"P", "Q", "R", "S", "T", "U", "V", "W"},
	{"X", "Y", "Z"},
	{"0", "1", "2", "3", "4", "5", "6", "7"},
	{"8", "9", ":", ";", ",", "-", ".", "/"},
	{"ENTER", "CLEAR", "BREAK", "UP", "DOWN", "LEFT", "RIGHT", "SPACE"},
	{"LSHIFT", "RSHIFT", "CTL", "CAPS", "F1", "F2", "F3"},
	{"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8"},
	{"KP0", "KP1", "KP2", "KP3", "KP4", "KP5", "KP6", "KP7"},
	{"KP8", "KP9", "KP00", "LOCK", "KP,", "KP-", "KP."},
}

var keys map[string][]Key

func init() {
	keys = make(map[string][]Key)
	for row, names := range matrix {
		for bit, n := range names {
			keys[n] = append(keys[n], Key{Name: n, Row: row, Bit: 0x01 << bit})
		}
	}
}

// Lookup returns the matrix positions of the named key. The name is not case
// sensitive. Returns false if there is no such key.
func Lookup(name string) ([]Key, bool) {
	k, ok := keys[strings.ToUpper(name)]
	return k, ok
}

// Names returns the name of every key in matrix order. Keys wired to more than
// one position are listed once.
func Names() []string {
	var n []string
	seen := make(map[string]bool)
	for _, names := range matrix {
		for _, k := range names {
			if !seen[k] {
				n = append(n, k)
				seen[k] = true
			}
		}
	}
	return n
}

// characters produced by the number row and punctuation keys with shift
var shifted = map[rune]string{
	'!': "1", '"': "2", '#': "3", '$': "4", '%': "5", '&': "6", '\'': "7",
	'(': "8", ')': "9", '*': ":", '+': ";", '<': ",", '=': "-", '>': ".", '?': "/",
}

// LookupRune returns the name of the key that produces the rune and whether
// shift must be held. Unshifted letters are lower case.
func LookupRune(r rune) (string, bool, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return string(r - 'a' + 'A'), false, true
	case r >= 'A' && r <= 'Z':
		return string(r), true, true
	case r >= '0' && r <= '9':
		return string(r), false, true
	case r == '\r' || r == '\n':
		return "ENTER", false, true
	case r == ' ':
		return "SPACE", false, true
	case r == '\b' || r == 0x7f:
		return "LEFT", false, true
	}

	switch r {
	case '@', ':', ';', ',', '-', '.', '/':
		return string(r), false, true
	}

	if n, ok := shifted[r]; ok {
		return n, true, true
	}

	return "", false, false
}
