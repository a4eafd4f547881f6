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

package easyterm_test

import (
	"testing"

	"github.com/eacaemu/eg3200/easyterm"
	"github.com/eacaemu/eg3200/test"
)

func TestDecode(t *testing.T) {
	k, n := easyterm.Decode(nil)
	test.ExpectEquality(t, n, 0)

	k, n = easyterm.Decode([]byte("ab"))
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, k.Rune, 'a')
	test.ExpectEquality(t, k.String(), "a")

	k, n = easyterm.Decode([]byte{easyterm.KeyCarriageReturn})
	test.ExpectEquality(t, k.Special, easyterm.Enter)

	k, n = easyterm.Decode([]byte{easyterm.KeyEsc, '[', 'A', 'x'})
	test.ExpectEquality(t, n, 3)
	test.ExpectEquality(t, k.Special, easyterm.CursorUp)
	test.ExpectEquality(t, k.String(), "up")

	k, n = easyterm.Decode([]byte{easyterm.KeyEsc, 'O', 'R'})
	test.ExpectEquality(t, k.Special, easyterm.Function3)

	// unknown sequences and lone escapes
	k, n = easyterm.Decode([]byte{easyterm.KeyEsc, '[', 'Z'})
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, k.Special, easyterm.Escape)

	k, n = easyterm.Decode([]byte{easyterm.KeyEsc})
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, k.Special, easyterm.Escape)

	k, _ = easyterm.Decode([]byte{easyterm.KeyDelete})
	test.ExpectEquality(t, k.Special, easyterm.Backspace)
}
