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

package prefs_test

import (
	"testing"

	"github.com/eacaemu/eg3200/prefs"
	"github.com/eacaemu/eg3200/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("hardware.revision::pg631")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.revision::pg631")

	// single value but with additional space
	prefs.PushCommandLineStack("   hardware.revision:: pg631 ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.revision::pg631")

	// more than one key/value in the prefs string. remaining string will
	// will be sorted
	prefs.PushCommandLineStack("hardware.revision::pg631; hardware.rtc.24hour::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.revision::pg631; hardware.rtc.24hour::true")

	// check invalid prefs string
	prefs.PushCommandLineStack("hardware.revision_pg631")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// check (partically) invalid prefs string
	prefs.PushCommandLineStack("hardware.revision_pg631;hardware.rtc.24hour::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.rtc.24hour::true")

	// get prefs value that doesn't exist after pushing a parially invalid prefs string
	prefs.PushCommandLineStack("hardware.revision::pg631;hardware.rtc.24hour_true")
	ok, _ := prefs.GetCommandLinePref("hardware.rtc.24hour")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.revision::pg631")
}

func TestCommandLineStack(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("hardware.revision::pg631")

	// add another command line group
	prefs.PushCommandLineStack("hardware.rtc.24hour::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.rtc.24hour::true")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.revision::pg631")
}

func TestCommandLinePrefConsumed(t *testing.T) {
	prefs.PushCommandLineStack("hardware.motor.timeout::100; hardware.rtc.utc::true")

	ok, v := prefs.GetCommandLinePref("hardware.motor.timeout")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "100")

	// value is removed after being returned
	ok, _ = prefs.GetCommandLinePref("hardware.motor.timeout")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.rtc.utc::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
