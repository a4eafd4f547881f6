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

package floppy

// Register of the controller, as an offset from the status/command register.
type Register int

// List of valid Register values.
const (
	StatusCommand Register = iota
	Track
	Sector
	Data
	NumRegisters
)

func (r Register) String() string {
	switch r {
	case StatusCommand:
		return "status/command"
	case Track:
		return "track"
	case Sector:
		return "sector"
	case Data:
		return "data"
	}
	return "unknown register"
}

// Controller is implemented by floppy disk controller emulations. The
// register access functions are called when the CPU reads or writes the
// corresponding register. Writes that the board intercepts are not forwarded.
type Controller interface {
	Read(reg Register) uint8
	Write(reg Register, data uint8)

	// density select. true for double density (MFM)
	SetDensity(double bool)

	// the drive the controller is reading from and writing to. nil if no
	// drive is selected
	SetDrive(drv Drive)

	// the function to call when the INTRQ line changes. the function will be
	// nil if the line is not connected
	ConnectINTRQ(func(state bool))
}

// Peeker is an optional interface for controllers that can report the value
// of a register without the side effects of a CPU read.
type Peeker interface {
	Peek(reg Register) uint8
}

// Drive is implemented by floppy drive emulations.
type Drive interface {
	Motor(on bool)
	Side(side int)
}

// NoController is the Controller used when none has been attached. The
// registers read as 0xff, which is how the EG3200 ROM detects the absence of
// a controller.
type NoController struct{}

// Read implements the Controller interface.
func (NoController) Read(_ Register) uint8 {
	return 0xff
}

// Write implements the Controller interface.
func (NoController) Write(_ Register, _ uint8) {}

// SetDensity implements the Controller interface.
func (NoController) SetDensity(_ bool) {}

// SetDrive implements the Controller interface.
func (NoController) SetDrive(_ Drive) {}

// ConnectINTRQ implements the Controller interface.
func (NoController) ConnectINTRQ(_ func(bool)) {}
