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

import (
	"fmt"
	"strings"

	"github.com/eacaemu/eg3200/curated"
	"github.com/eacaemu/eg3200/hardware/revision"
)

// MaxDrives is the number of drive select bits in the drive select register.
const MaxDrives = 4

// SideBit is the bit in the drive select register that selects the side of
// the disk.
const SideBit = 0x10

// DensitySelect is the mask of a command register write that selects the
// density. Bit zero is the density.
const DensitySelect = 0xf8

// SizeSelect is the bit of a sector register write that selects the drive
// size. Bit six is the size.
const SizeSelect = 0x80

// SizeEightInch is the size select bit for 8" drives.
const SizeEightInch = 0x40

// DefaultTimeout is the number of periodic interrupts after which the motor
// is switched off.
const DefaultTimeout = 200

// Error patterns.
const (
	InvalidDrive = "floppy: drive %d is not wired"
)

// Interface is the floppy disk part of the EG3200 board.
type Interface struct {
	ctrl   Controller
	drives [MaxDrives]Drive

	// polarity of the drive select bits and the number of drives that are
	// connected
	pol   revision.Polarity
	wired int

	// the drive number selected by the most recent write to the drive select
	// register. -1 if no drive is selected
	selected int
	side     int

	double    bool
	eightInch bool

	// remaining periodic interrupts before the motor is switched off. Timeout
	// is the value the counter is reset to when a drive is selected
	timeout int
	Timeout int
	motor   bool
}

// NewInterface is the preferred method of initialisation for the Interface
// type.
func NewInterface(pol revision.Polarity, wired int) *Interface {
	fi := &Interface{
		ctrl:     NoController{},
		pol:      pol,
		wired:    min(wired, MaxDrives),
		selected: -1,
		Timeout:  DefaultTimeout,
	}
	return fi
}

func (fi *Interface) String() string {
	s := strings.Builder{}
	if fi.selected == -1 {
		s.WriteString("no drive")
	} else {
		s.WriteString(fmt.Sprintf("drive %d side %d", fi.selected, fi.side))
	}
	if fi.motor {
		s.WriteString(fmt.Sprintf(" motor on (%d)", fi.timeout))
	} else {
		s.WriteString(" motor off")
	}
	if fi.double {
		s.WriteString(" DD")
	} else {
		s.WriteString(" SD")
	}
	if fi.eightInch {
		s.WriteString(" 8\"")
	} else {
		s.WriteString(" 5.25\"")
	}
	return s.String()
}

// AttachController connects a controller. The intrq function is connected to
// the controller's INTRQ line. A nil controller detaches the current
// controller.
func (fi *Interface) AttachController(ctrl Controller, intrq func(bool)) {
	fi.ctrl.ConnectINTRQ(nil)
	if ctrl == nil {
		fi.ctrl = NoController{}
		return
	}
	fi.ctrl = ctrl
	fi.ctrl.ConnectINTRQ(intrq)
	fi.ctrl.SetDensity(fi.double)
	if fi.selected != -1 {
		fi.ctrl.SetDrive(fi.drives[fi.selected])
	}
}

// AttachDrive connects a drive to the drive select bit. A nil drive
// disconnects the drive.
func (fi *Interface) AttachDrive(n int, drv Drive) error {
	if n < 0 || n >= fi.wired {
		return curated.Errorf(InvalidDrive, n)
	}
	fi.drives[n] = drv
	return nil
}

// Reset deselects the drives and returns to single density 5.25" operation.
// The motor is switched off.
func (fi *Interface) Reset() {
	fi.motorOff()
	fi.selected = -1
	fi.side = 0
	fi.double = false
	fi.eightInch = false
	fi.timeout = 0
	fi.ctrl.SetDrive(nil)
	fi.ctrl.SetDensity(false)
}

// Selected returns the selected drive number and side. The drive number is -1
// if no drive is selected.
func (fi *Interface) Selected() (int, int) {
	return fi.selected, fi.side
}

// Motor returns true if the motor is on.
func (fi *Interface) Motor() bool {
	return fi.motor
}

// DoubleDensity returns true if double density is selected.
func (fi *Interface) DoubleDensity() bool {
	return fi.double
}

// EightInch returns true if 8" drives are selected.
func (fi *Interface) EightInch() bool {
	return fi.eightInch
}

// Read a controller register.
func (fi *Interface) Read(reg Register) uint8 {
	return fi.ctrl.Read(reg)
}

// Peek returns the value of a controller register without side effects.
// Controllers that do not implement the Peeker interface read as 0xff.
func (fi *Interface) Peek(reg Register) uint8 {
	if p, ok := fi.ctrl.(Peeker); ok {
		return p.Peek(reg)
	}
	return 0xff
}

// Write a controller register. Density and size selection writes are
// intercepted and not forwarded to the controller. Returns true if the write
// was intercepted.
func (fi *Interface) Write(reg Register, data uint8) bool {
	switch reg {
	case StatusCommand:
		if data&DensitySelect == DensitySelect {
			fi.double = data&0x01 == 0x01
			fi.ctrl.SetDensity(fi.double)
			return true
		}
	case Sector:
		if data&SizeSelect == SizeSelect {
			fi.eightInch = data&SizeEightInch == SizeEightInch
			return true
		}
	}
	fi.ctrl.Write(reg, data)
	return false
}

// SelectDrive is a write to the drive select register. Selecting a drive
// switches its motor on and restarts the motor timeout. If more than one
// drive select bit is active the highest numbered drive is selected. Bits for
// drives that are not wired are ignored.
func (fi *Interface) SelectDrive(data uint8) {
	sel := -1
	for n := range fi.wired {
		if fi.pol.Active(data&(0x01<<n) != 0) {
			sel = n
		}
	}

	if sel != fi.selected && fi.motor {
		fi.motorOff()
	}

	fi.selected = sel
	if sel == -1 {
		fi.ctrl.SetDrive(nil)
		return
	}

	fi.side = 0
	if data&SideBit == SideBit {
		fi.side = 1
	}

	drv := fi.drives[sel]
	fi.ctrl.SetDrive(drv)
	if drv != nil {
		drv.Side(fi.side)
		drv.Motor(true)
	}
	fi.motor = true
	fi.timeout = fi.Timeout
}

func (fi *Interface) motorOff() {
	if fi.selected != -1 && fi.drives[fi.selected] != nil {
		fi.drives[fi.selected].Motor(false)
	}
	fi.motor = false
}

// Tick is called on every periodic interrupt. Returns true if the motor was
// switched off by the timeout.
func (fi *Interface) Tick() bool {
	if fi.timeout == 0 {
		return false
	}
	fi.timeout--
	if fi.timeout > 0 || !fi.motor {
		return false
	}
	fi.motorOff()
	return true
}
