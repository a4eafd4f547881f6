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

package keyboard_test

import (
	"testing"

	"github.com/eacaemu/eg3200/curated"
	"github.com/eacaemu/eg3200/hardware/keyboard"
	"github.com/eacaemu/eg3200/test"
)

func TestRows(t *testing.T) {
	kb := keyboard.NewKeyboard(0x04)

	test.ExpectSuccess(t, kb.Press("A"))
	test.ExpectEquality(t, kb.Read(0x01), 0x02)
	test.ExpectEquality(t, kb.Read(0x02), 0x00)

	// multiple rows are ORed
	test.ExpectSuccess(t, kb.Press("h"))
	test.ExpectEquality(t, kb.Read(0x01), 0x02)
	test.ExpectEquality(t, kb.Read(0x02), 0x01)
	test.ExpectEquality(t, kb.Read(0x03), 0x03)
	test.ExpectEquality(t, kb.Read(0xff&^0xa0), 0x03)

	test.ExpectSuccess(t, kb.Release("A"))
	test.ExpectEquality(t, kb.Read(0x03), 0x01)
	test.ExpectEquality(t, kb.String(), "H")

	kb.ReleaseAll()
	test.ExpectEquality(t, kb.Read(0x7f), 0x00)
	test.ExpectFailure(t, kb.Pressed("H"))
}

func TestSpecialOffsets(t *testing.T) {
	kb := keyboard.NewKeyboard(0x04)
	test.ExpectEquality(t, kb.Read(keyboard.JumperOffset), 0x04)

	// F1 is on the TRS-80 matrix and on the function key row
	test.ExpectSuccess(t, kb.Press("F1"))
	test.ExpectEquality(t, kb.Read(keyboard.FunctionOffset), 0x01)
	test.ExpectEquality(t, kb.Read(0x80), 0x10)
	test.ExpectSuccess(t, kb.Pressed("F1"))

	// the function key offset is not rows 5 and 7
	test.ExpectSuccess(t, kb.Press("9"))
	test.ExpectEquality(t, kb.Read(keyboard.FunctionOffset), 0x01)
	test.ExpectEquality(t, kb.Read(0x20), 0x02)

	test.ExpectSuccess(t, kb.Press("KP7"))
	test.ExpectEquality(t, kb.Read(keyboard.NumericOffset), 0x80)
	test.ExpectSuccess(t, kb.Press("LOCK"))
	test.ExpectEquality(t, kb.Read(keyboard.ExtendedOffset), 0x08)

	kb.Jumpers = 0x01
	test.ExpectEquality(t, kb.Read(keyboard.JumperOffset), 0x01)
}

func TestUnknownKey(t *testing.T) {
	kb := keyboard.NewKeyboard(0)
	err := kb.Press("F9")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, keyboard.UnknownKey))
	test.ExpectFailure(t, kb.Release("HELP"))
	test.ExpectFailure(t, kb.Pressed("HELP"))
}

func TestLookupRune(t *testing.T) {
	expect := func(r rune, name string, shift bool) {
		t.Helper()
		n, s, ok := keyboard.LookupRune(r)
		test.ExpectSuccess(t, ok, string(r))
		test.ExpectEquality(t, n, name, string(r))
		test.ExpectEquality(t, s, shift, string(r))
	}

	expect('a', "A", false)
	expect('A', "A", true)
	expect('@', "@", false)
	expect('0', "0", false)
	expect('!', "1", true)
	expect('\'', "7", true)
	expect('(', "8", true)
	expect('?', "/", true)
	expect('=', "-", true)
	expect('\r', "ENTER", false)
	expect(' ', "SPACE", false)

	_, _, ok := keyboard.LookupRune('~')
	test.ExpectFailure(t, ok)

	for _, n := range keyboard.Names() {
		_, ok := keyboard.Lookup(n)
		test.ExpectSuccess(t, ok, n)
	}
}

func TestDescribe(t *testing.T) {
	test.ExpectEquality(t, keyboard.Describe(0x30), "jumpers")
	test.ExpectEquality(t, keyboard.Describe(0x05), "rows 0,2")
	test.ExpectEquality(t, keyboard.Describe(0x00), "no rows")
}
