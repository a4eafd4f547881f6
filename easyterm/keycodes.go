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

package easyterm

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt      = 3 // end-of-text character
	KeyBackspace      = 8
	KeyTab            = 9
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeySuspend        = 26 // substitute character
	KeyEsc            = 27
	KeyDelete         = 127
)

// list of ASCII code for characters that can follow KeyEsc
const (
	EscCursor = '['
	EscSS3    = 'O'
)

// Special keys are keys that do not produce a printable character.
type Special int

// List of valid Special values.
const (
	None Special = iota
	CursorUp
	CursorDown
	CursorForward
	CursorBackward
	Enter
	Backspace
	Escape
	Interrupt
	Function1
	Function2
	Function3
	Function4
)

var specialNames = map[Special]string{
	CursorUp:       "up",
	CursorDown:     "down",
	CursorForward:  "right",
	CursorBackward: "left",
	Enter:          "enter",
	Backspace:      "backspace",
	Escape:         "escape",
	Interrupt:      "interrupt",
	Function1:      "F1",
	Function2:      "F2",
	Function3:      "F3",
	Function4:      "F4",
}

func (s Special) String() string {
	if n, ok := specialNames[s]; ok {
		return n
	}
	return "none"
}

// Key is a single decoded keypress. Only one of Rune or Special is set.
type Key struct {
	Rune    rune
	Special Special
}

func (k Key) String() string {
	if k.Special != None {
		return k.Special.String()
	}
	return string(k.Rune)
}

// Decode the first keypress in the byte slice. Returns the key and the number
// of bytes used. A return value of zero bytes means there was nothing to
// decode.
//
// A lone escape character, or an escape sequence that is not recognised, is
// decoded as the Escape key.
func Decode(b []byte) (Key, int) {
	if len(b) == 0 {
		return Key{}, 0
	}

	switch b[0] {
	case KeyInterrupt:
		return Key{Special: Interrupt}, 1
	case KeyCarriageReturn, KeyLineFeed:
		return Key{Special: Enter}, 1
	case KeyBackspace, KeyDelete:
		return Key{Special: Backspace}, 1
	case KeyEsc:
		if len(b) < 3 {
			return Key{Special: Escape}, 1
		}
		switch b[1] {
		case EscCursor:
			switch b[2] {
			case 'A':
				return Key{Special: CursorUp}, 3
			case 'B':
				return Key{Special: CursorDown}, 3
			case 'C':
				return Key{Special: CursorForward}, 3
			case 'D':
				return Key{Special: CursorBackward}, 3
			}
		case EscSS3:
			switch b[2] {
			case 'P':
				return Key{Special: Function1}, 3
			case 'Q':
				return Key{Special: Function2}, 3
			case 'R':
				return Key{Special: Function3}, 3
			case 'S':
				return Key{Special: Function4}, 3
			}
		}
		return Key{Special: Escape}, 1
	}

	return Key{Rune: rune(b[0])}, 1
}
