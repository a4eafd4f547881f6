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

package video_test

import (
	"testing"

	"github.com/eacaemu/eg3200/hardware/crtc"
	"github.com/eacaemu/eg3200/hardware/video"
	"github.com/eacaemu/eg3200/test"
)

func TestSextant(t *testing.T) {
	test.ExpectEquality(t, video.Sextant(0), ' ')
	test.ExpectEquality(t, video.Sextant(21), '▌')
	test.ExpectEquality(t, video.Sextant(42), '▐')
	test.ExpectEquality(t, video.Sextant(63), '█')

	// top left, top right and then the first pattern after each gap
	test.ExpectEquality(t, video.Sextant(1), '\U0001fb00')
	test.ExpectEquality(t, video.Sextant(2), '\U0001fb01')
	test.ExpectEquality(t, video.Sextant(20), '\U0001fb13')
	test.ExpectEquality(t, video.Sextant(22), '\U0001fb14')
	test.ExpectEquality(t, video.Sextant(43), '\U0001fb28')
	test.ExpectEquality(t, video.Sextant(62), '\U0001fb3b')

	// bits above the sixth are ignored
	test.ExpectEquality(t, video.Sextant(0xbf), '█')
}

func TestDecode(t *testing.T) {
	test.ExpectEquality(t, video.Decode('A', false), video.Cell{Rune: 'A'})
	test.ExpectEquality(t, video.Decode(0x01, false), video.Cell{Rune: 'A'})
	test.ExpectEquality(t, video.Decode(0x80, false), video.Cell{Rune: ' ', Graphics: true})
	test.ExpectEquality(t, video.Decode(0xc1, true), video.Cell{Rune: 'A', Inverse: true})
	test.ExpectEquality(t, video.Decode(0x7f, false), video.Cell{Rune: ' '})
}

func TestScreen(t *testing.T) {
	ram := make([]uint8, video.RAMSize)
	for i := range ram {
		ram[i] = ' '
	}
	copy(ram, "READY")
	ram[64] = '>'
	ram[65] = 0xbf
	ram[80] = '*'

	c := crtc.NewCRTC()
	vid := video.NewVideo(c, func(offset uint16) uint8 {
		return ram[offset]
	})

	scr := vid.Screen()
	test.ExpectEquality(t, scr.Geometry, crtc.Geometry64x16)
	test.ExpectEquality(t, len(scr.Cells), 16)
	test.ExpectEquality(t, len(scr.Cells[0]), 64)
	test.ExpectEquality(t, scr.Trimmed(), "READY\n>█              *")

	// eighty columns
	c.WriteAddress(crtc.HorizDisplayed)
	c.WriteData(80)
	scr = vid.Screen()
	test.ExpectEquality(t, len(scr.Cells[0]), 80)
	test.ExpectEquality(t, scr.Cells[1][0].Rune, '*')

	// start address wraps around the video memory
	c.WriteAddress(crtc.StartAddrHi)
	c.WriteData(0x07)
	c.WriteAddress(crtc.StartAddrLo)
	c.WriteData(0xff)
	scr = vid.Screen()
	test.ExpectEquality(t, scr.Cells[0][1].Rune, 'R')
}

func TestInverse(t *testing.T) {
	ram := make([]uint8, video.RAMSize)
	ram[0] = 'O'
	ram[1] = 'K' | 0x80

	vid := video.NewVideo(crtc.NewCRTC(), func(offset uint16) uint8 {
		return ram[offset]
	})

	test.ExpectFailure(t, vid.WriteMode(0x00))
	test.ExpectSuccess(t, vid.WriteMode(0x01))
	test.ExpectSuccess(t, vid.Inverse())
	scr := vid.Screen()
	test.ExpectEquality(t, scr.Cells[0][1], video.Cell{Rune: 'K', Inverse: true})

	ansi := scr.ANSI()
	test.ExpectEquality(t, ansi[:11], "O\033[7mK\033[0m@")

	vid.Reset()
	test.ExpectFailure(t, vid.Inverse())
	test.ExpectEquality(t, vid.Screen().Cells[0][1].Graphics, true)
}
