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
	"fmt"
	"strings"

	"github.com/eacaemu/eg3200/curated"
)

// NumRows is the number of rows in the matrix.
const NumRows = 11

// Rows that are not part of the TRS-80 compatible matrix.
const (
	FunctionRow = 8
	NumericRow  = 9
	ExtendedRow = 10
)

// Offsets that are decoded specially by Read().
const (
	JumperOffset   = 0x30
	FunctionOffset = 0xa0
	NumericOffset  = 0xc0
	ExtendedOffset = 0xe0
)

// UnknownKey is the error pattern returned for key names that are not in the
// matrix.
const UnknownKey = "keyboard: unknown key (%s)"

// Keyboard is the state of the key matrix.
type Keyboard struct {
	rows [NumRows]uint8

	// the value read at the JumperOffset. the low three bits are the
	// configuration jumpers on the main board
	Jumpers uint8
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
func NewKeyboard(jumpers uint8) *Keyboard {
	return &Keyboard{
		Jumpers: jumpers,
	}
}

func (kb *Keyboard) String() string {
	s := strings.Builder{}
	for row := range NumRows {
		for bit, n := range matrix[row] {
			if kb.rows[row]&(0x01<<bit) != 0 {
				if s.Len() > 0 {
					s.WriteString(" ")
				}
				s.WriteString(n)
			}
		}
	}
	return s.String()
}

// Press the named key.
func (kb *Keyboard) Press(name string) error {
	k, ok := Lookup(name)
	if !ok {
		return curated.Errorf(UnknownKey, name)
	}
	for _, p := range k {
		kb.rows[p.Row] |= p.Bit
	}
	return nil
}

// Release the named key.
func (kb *Keyboard) Release(name string) error {
	k, ok := Lookup(name)
	if !ok {
		return curated.Errorf(UnknownKey, name)
	}
	for _, p := range k {
		kb.rows[p.Row] &^= p.Bit
	}
	return nil
}

// Pressed returns true if the named key is down. Unknown keys are never down.
func (kb *Keyboard) Pressed(name string) bool {
	k, ok := Lookup(name)
	if !ok {
		return false
	}
	return kb.rows[k[0].Row]&k[0].Bit != 0
}

// ReleaseAll releases every key.
func (kb *Keyboard) ReleaseAll() {
	clear(kb.rows[:])
}

// Row returns the state of a row. Each set bit is a key that is down.
func (kb *Keyboard) Row(row int) uint8 {
	if row < 0 || row >= NumRows {
		return 0
	}
	return kb.rows[row]
}

// Read the matrix at the offset from the start of the keyboard area. The
// extended rows and the jumpers are at fixed offsets. Any other offset is
// the OR of every row whose bit is set in the offset.
func (kb *Keyboard) Read(offset uint8) uint8 {
	switch offset {
	case JumperOffset:
		return kb.Jumpers
	case FunctionOffset:
		return kb.rows[FunctionRow]
	case NumericOffset:
		return kb.rows[NumericRow]
	case ExtendedOffset:
		return kb.rows[ExtendedRow]
	}

	var v uint8
	for row := range 8 {
		if offset&(0x01<<row) != 0 {
			v |= kb.rows[row]
		}
	}
	return v
}

// Describe returns a description of the keys read by an offset.
func Describe(offset uint8) string {
	switch offset {
	case JumperOffset:
		return "jumpers"
	case FunctionOffset:
		return "function keys"
	case NumericOffset:
		return "numeric block"
	case ExtendedOffset:
		return "numeric block (extended)"
	}
	var r []string
	for row := range 8 {
		if offset&(0x01<<row) != 0 {
			r = append(r, fmt.Sprintf("%d", row))
		}
	}
	if len(r) == 0 {
		return "no rows"
	}
	return fmt.Sprintf("rows %s", strings.Join(r, ","))
}
