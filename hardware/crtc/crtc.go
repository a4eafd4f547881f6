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

package crtc

import (
	"fmt"
)

// NumRegisters is the number of registers in the 6845.
const NumRegisters = 18

// List of register indexes that are used by the rest of the emulation.
const (
	HorizTotal     = 0
	HorizDisplayed = 1
	VertDisplayed  = 6
	StartAddrHi    = 12
	StartAddrLo    = 13
	CursorHi       = 14
	CursorLo       = 15
	LightPenHi     = 16
	LightPenLo     = 17
)

// RegisterNames is the name of every register, indexed by register number.
var RegisterNames = [NumRegisters]string{
	"Horiz total",
	"Horiz displayed",
	"HSync pos",
	"HSync width",
	"Vert total",
	"Vert adjust",
	"Vert displayed",
	"VSync pos",
	"Interlace",
	"Max scan line addr",
	"Cursor start",
	"Cursor end",
	"Start addr (H)",
	"Start addr (L)",
	"Cursor (H)",
	"Cursor (L)",
	"Light pen (H)",
	"Light pen (L)",
}

// width of each register. the light pen registers are not writable
var registerMask = [NumRegisters]uint8{
	0xff, 0xff, 0xff, 0xff, 0x7f, 0x1f, 0x7f, 0x7f, 0x03,
	0x1f, 0x7f, 0x1f, 0x3f, 0xff, 0x3f, 0xff, 0x00, 0x00,
}

// RegisterName returns the name of the register or a generic description if
// the register does not exist.
func RegisterName(reg uint8) string {
	if int(reg) < NumRegisters {
		return RegisterNames[reg]
	}
	return fmt.Sprintf("reg %d", reg)
}

// Geometry is the size of the text display.
type Geometry struct {
	Columns int
	Rows    int
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Columns, g.Rows)
}

// List of geometries supported by the EG3200.
var (
	Geometry64x16 = Geometry{Columns: 64, Rows: 16}
	Geometry80x24 = Geometry{Columns: 80, Rows: 24}
	Geometry80x25 = Geometry{Columns: 80, Rows: 25}
)

// CRTC is the register file of the 6845.
type CRTC struct {
	regs    [NumRegisters]uint8
	address uint8
}

// NewCRTC is the preferred method of initialisation for the CRTC type.
func NewCRTC() *CRTC {
	crtc := &CRTC{}
	crtc.Reset()
	return crtc
}

func (crtc *CRTC) String() string {
	return fmt.Sprintf("%s start=%04x cursor=%04x", crtc.Geometry(), crtc.StartAddress(), crtc.Cursor())
}

// Reset the registers to the TRS-80 compatible display.
func (crtc *CRTC) Reset() {
	clear(crtc.regs[:])
	crtc.address = 0
	crtc.regs[HorizDisplayed] = uint8(Geometry64x16.Columns)
	crtc.regs[VertDisplayed] = uint8(Geometry64x16.Rows)
}

// WriteAddress selects the register for the next access of the data port.
// Addresses of registers that do not exist are latched and subsequent data
// writes are ignored.
func (crtc *CRTC) WriteAddress(v uint8) {
	crtc.address = v
}

// Address returns the most recently written value of the address port.
func (crtc *CRTC) Address() uint8 {
	return crtc.address
}

// WriteData stores the value in the selected register. Returns true if the
// geometry of the display has changed as a result.
func (crtc *CRTC) WriteData(v uint8) bool {
	if int(crtc.address) >= NumRegisters {
		return false
	}
	g := crtc.Geometry()
	crtc.regs[crtc.address] = v & registerMask[crtc.address]
	return g != crtc.Geometry()
}

// ReadData returns the value of the selected register if it is readable.
// Only the cursor and light pen registers are readable, all other registers
// return zero.
func (crtc *CRTC) ReadData() uint8 {
	if crtc.address < CursorHi || int(crtc.address) >= NumRegisters {
		return 0
	}
	return crtc.regs[crtc.address]
}

// Register returns the value of any register regardless of whether the
// register is readable by the CPU. Returns zero for registers that do not
// exist.
func (crtc *CRTC) Register(reg int) uint8 {
	if reg < 0 || reg >= NumRegisters {
		return 0
	}
	return crtc.regs[reg]
}

// Geometry of the display. Eighty columns are selected by writing 80 to the
// horizontal displayed register. In eighty column mode the vertical
// displayed register chooses between 24 and 25 rows.
func (crtc *CRTC) Geometry() Geometry {
	if crtc.regs[HorizDisplayed] != 80 {
		return Geometry64x16
	}
	if crtc.regs[VertDisplayed] >= 25 {
		return Geometry80x25
	}
	return Geometry80x24
}

// StartAddress is the video memory offset of the first character.
func (crtc *CRTC) StartAddress() uint16 {
	return uint16(crtc.regs[StartAddrHi])<<8 | uint16(crtc.regs[StartAddrLo])
}

// Cursor is the video memory offset of the cursor.
func (crtc *CRTC) Cursor() uint16 {
	return uint16(crtc.regs[CursorHi])<<8 | uint16(crtc.regs[CursorLo])
}
