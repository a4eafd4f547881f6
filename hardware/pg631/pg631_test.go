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

package pg631_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/eacaemu/eg3200/curated"
	"github.com/eacaemu/eg3200/environment"
	"github.com/eacaemu/eg3200/hardware/crtc"
	"github.com/eacaemu/eg3200/hardware/pg631"
	"github.com/eacaemu/eg3200/hardware/preferences"
	"github.com/eacaemu/eg3200/logger"
	"github.com/eacaemu/eg3200/test"
)

func newMachine(t *testing.T) *pg631.Machine {
	t.Helper()
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)

	rom := make([]uint8, 0x4000)
	for i := range rom {
		rom[i] = uint8(i >> 8)
	}
	m, err := pg631.NewMachine(env, rom)
	test.DemandSuccess(t, err)
	return m
}

func TestROM(t *testing.T) {
	m := newMachine(t)
	test.ExpectEquality(t, m.Read(0x0000), 0x00)
	test.ExpectEquality(t, m.Read(0x3fff), 0x3f)

	// beyond the end of a short rom
	test.ExpectEquality(t, m.Read(0x4000), 0xff)
	test.ExpectEquality(t, m.Read(0x7fff), 0xff)

	m.Write(0x0100, 0xaa)
	test.ExpectEquality(t, m.Read(0x0100), 0x01)

	_, err := pg631.NewMachine(nil, make([]uint8, pg631.ROMSize+1))
	test.ExpectSuccess(t, curated.Is(err, pg631.ROMTooLarge))
}

func TestRAM(t *testing.T) {
	m := newMachine(t)
	for _, a := range []uint16{0xe000, 0xefff, 0xf000, 0xf7ff, 0xf800, 0xf8ff} {
		m.Write(a, 0x5a)
		test.ExpectEquality(t, m.Read(a), 0x5a)
	}
	test.ExpectEquality(t, m.VideoRAM().Data()[0], 0x5a)
	test.ExpectEquality(t, m.VideoRAM().Data()[0x7ff], 0x5a)

	// the gap between the rom and the ram is not decoded
	m.Write(0x9000, 0x5a)
	test.ExpectEquality(t, m.Read(0x9000), 0xff)

	m.Reset()
	test.ExpectEquality(t, m.Read(0xe000), 0x00)
}

func TestOpenBus(t *testing.T) {
	m := newMachine(t)
	for _, a := range []uint16{0xfa00, 0xfa37, 0xfb7f, 0xfc00, 0xfdc4, 0xfe10, 0xfe7f, 0xff00, 0xfffd} {
		test.ExpectEquality(t, m.Read(a), uint8(a))
		m.Write(a, 0x00)
		test.ExpectEquality(t, m.Read(a), uint8(a))
	}
	for _, a := range []uint16{0xfb80, 0xfbff, 0xfe80, 0xfeff} {
		test.ExpectEquality(t, m.Read(a), 0xff)
	}
}

func TestPIO(t *testing.T) {
	m := newMachine(t)
	test.ExpectEquality(t, m.Read(0xf900), 0x00)

	m.Write(0xf901, 0x12)
	m.Write(0xf903, 0x34)
	test.ExpectEquality(t, m.Read(0xf901), 0x12)
	test.ExpectEquality(t, m.Read(0xf903), 0x34)

	// mirrored every eight bytes
	test.ExpectEquality(t, m.Read(0xf909), 0x12)
	test.ExpectEquality(t, m.Read(0xf9fb), 0x34)
	test.ExpectEquality(t, m.Read(0xf906), 0xff)

	m.Reset()
	test.ExpectEquality(t, m.Read(0xf901), 0x00)
}

func TestPeripherals(t *testing.T) {
	m := newMachine(t)
	logger.Clear()

	test.ExpectEquality(t, m.Read(0xfe02), 0xff)
	m.Write(0xfe05, 0x40)

	w := &test.Writer{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "8279 keyboard controller"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "write of 40 to Y2 8251 UART"))

	// peeking is silent
	logger.Clear()
	test.ExpectEquality(t, m.Peek(0xfe06), 0xff)
	w.Clear()
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestCRTC(t *testing.T) {
	m := newMachine(t)

	m.Write(0xfffe, crtc.CursorLo)
	m.Write(0xffff, 0x42)
	test.ExpectEquality(t, m.Read(0xffff), 0x42)
	test.ExpectEquality(t, m.Read(0xfffe), 0xff)
	test.ExpectEquality(t, m.CRTC.Cursor(), 0x0042)

	m.Write(0xfffe, crtc.HorizDisplayed)
	m.Write(0xffff, 80)
	test.ExpectEquality(t, m.CRTC.Geometry().Columns, 80)

	// poke has no effect on the crtc
	m.Poke(0xfffe, crtc.CursorHi)
	test.ExpectEquality(t, m.CRTC.Address(), crtc.HorizDisplayed)
}

func TestPorts(t *testing.T) {
	m := newMachine(t)
	m.Out(0x10, 0x55)
	test.ExpectEquality(t, m.In(0x10), 0xff)
}
