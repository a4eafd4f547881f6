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

package floppy_test

import (
	"testing"

	"github.com/eacaemu/eg3200/hardware/floppy"
	"github.com/eacaemu/eg3200/hardware/revision"
	"github.com/eacaemu/eg3200/test"
)

type mockController struct {
	regs   [floppy.NumRegisters]uint8
	double bool
	drive  floppy.Drive
	intrq  func(bool)
}

func (c *mockController) Read(reg floppy.Register) uint8 {
	return c.regs[reg]
}

func (c *mockController) Write(reg floppy.Register, data uint8) {
	c.regs[reg] = data
}

func (c *mockController) SetDensity(double bool) {
	c.double = double
}

func (c *mockController) SetDrive(drv floppy.Drive) {
	c.drive = drv
}

func (c *mockController) ConnectINTRQ(f func(bool)) {
	c.intrq = f
}

type mockDrive struct {
	motor bool
	side  int
}

func (d *mockDrive) Motor(on bool) {
	d.motor = on
}

func (d *mockDrive) Side(side int) {
	d.side = side
}

func TestNoController(t *testing.T) {
	fi := floppy.NewInterface(revision.ActiveHigh, 2)
	for reg := range floppy.NumRegisters {
		test.ExpectEquality(t, fi.Read(reg), 0xff)
	}
	test.ExpectFailure(t, fi.Write(floppy.Track, 0x10))
	test.ExpectEquality(t, fi.Read(floppy.Track), 0xff)

	// selecting a drive with nothing attached still runs the motor timer
	fi.SelectDrive(0x01)
	test.ExpectSuccess(t, fi.Motor())
}

func TestInterceptedWrites(t *testing.T) {
	fi := floppy.NewInterface(revision.ActiveHigh, 2)
	ctrl := &mockController{}
	fi.AttachController(ctrl, nil)

	// density select
	test.ExpectSuccess(t, fi.Write(floppy.StatusCommand, 0xf9))
	test.ExpectSuccess(t, fi.DoubleDensity())
	test.ExpectSuccess(t, ctrl.double)
	test.ExpectEquality(t, ctrl.regs[floppy.StatusCommand], 0x00)

	test.ExpectSuccess(t, fi.Write(floppy.StatusCommand, 0xf8))
	test.ExpectFailure(t, fi.DoubleDensity())
	test.ExpectFailure(t, ctrl.double)

	// a command with some but not all of the density bits
	test.ExpectFailure(t, fi.Write(floppy.StatusCommand, 0xd0))
	test.ExpectEquality(t, ctrl.regs[floppy.StatusCommand], 0xd0)

	// size select
	test.ExpectSuccess(t, fi.Write(floppy.Sector, 0xc0))
	test.ExpectSuccess(t, fi.EightInch())
	test.ExpectEquality(t, ctrl.regs[floppy.Sector], 0x00)
	test.ExpectSuccess(t, fi.Write(floppy.Sector, 0x80))
	test.ExpectFailure(t, fi.EightInch())

	test.ExpectFailure(t, fi.Write(floppy.Sector, 0x12))
	test.ExpectEquality(t, fi.Read(floppy.Sector), 0x12)

	fi.Write(floppy.StatusCommand, 0xf9)
	fi.Reset()
	test.ExpectFailure(t, ctrl.double)
}

func TestDriveSelect(t *testing.T) {
	fi := floppy.NewInterface(revision.ActiveHigh, 2)
	ctrl := &mockController{}
	fi.AttachController(ctrl, nil)

	d0 := &mockDrive{}
	d1 := &mockDrive{}
	test.ExpectSuccess(t, fi.AttachDrive(0, d0))
	test.ExpectSuccess(t, fi.AttachDrive(1, d1))
	test.ExpectFailure(t, fi.AttachDrive(2, &mockDrive{}))

	fi.SelectDrive(0x11)
	drv, side := fi.Selected()
	test.ExpectEquality(t, drv, 0)
	test.ExpectEquality(t, side, 1)
	test.ExpectSuccess(t, d0.motor)
	test.ExpectEquality(t, d0.side, 1)
	test.ExpectSuccess(t, ctrl.drive == floppy.Drive(d0))

	// the highest drive wins
	fi.SelectDrive(0x03)
	drv, side = fi.Selected()
	test.ExpectEquality(t, drv, 1)
	test.ExpectEquality(t, side, 0)
	test.ExpectFailure(t, d0.motor)
	test.ExpectSuccess(t, d1.motor)

	// drive 2 and 3 are not wired
	fi.SelectDrive(0x0c)
	drv, _ = fi.Selected()
	test.ExpectEquality(t, drv, -1)
	test.ExpectSuccess(t, ctrl.drive == nil)
	test.ExpectFailure(t, d1.motor)
}

func TestActiveLowDriveSelect(t *testing.T) {
	fi := floppy.NewInterface(revision.ActiveLow, 2)
	fi.SelectDrive(0xfe)
	drv, _ := fi.Selected()
	test.ExpectEquality(t, drv, 0)
	fi.SelectDrive(0xff)
	drv, _ = fi.Selected()
	test.ExpectEquality(t, drv, -1)
}

func TestMotorTimeout(t *testing.T) {
	fi := floppy.NewInterface(revision.ActiveHigh, 2)
	d0 := &mockDrive{}
	fi.AttachDrive(0, d0)

	fi.SelectDrive(0x01)
	for i := 1; i < floppy.DefaultTimeout; i++ {
		test.ExpectFailure(t, fi.Tick(), i)
	}
	test.ExpectSuccess(t, d0.motor)
	test.ExpectSuccess(t, fi.Tick())
	test.ExpectFailure(t, d0.motor)
	test.ExpectFailure(t, fi.Motor())

	// timer has expired
	test.ExpectFailure(t, fi.Tick())

	// reselecting restarts the timer
	fi.Timeout = 3
	fi.SelectDrive(0x01)
	test.ExpectFailure(t, fi.Tick())
	fi.SelectDrive(0x01)
	test.ExpectFailure(t, fi.Tick())
	test.ExpectFailure(t, fi.Tick())
	test.ExpectSuccess(t, d0.motor)
	test.ExpectSuccess(t, fi.Tick())
	test.ExpectFailure(t, d0.motor)
}

func TestINTRQ(t *testing.T) {
	fi := floppy.NewInterface(revision.ActiveHigh, 2)
	ctrl := &mockController{}

	var raised bool
	fi.AttachController(ctrl, func(state bool) {
		raised = state
	})
	ctrl.intrq(true)
	test.ExpectSuccess(t, raised)

	// detaching disconnects the line
	fi.AttachController(nil, nil)
	test.ExpectSuccess(t, ctrl.intrq == nil)
	test.ExpectEquality(t, fi.Read(floppy.StatusCommand), 0xff)
}

func (c *mockController) Peek(reg floppy.Register) uint8 {
	return c.regs[reg]
}

func TestPeek(t *testing.T) {
	fi := floppy.NewInterface(revision.ActiveHigh, 2)
	test.ExpectEquality(t, fi.Peek(floppy.Track), 0xff)

	ctrl := &mockController{}
	fi.AttachController(ctrl, nil)
	fi.Write(floppy.Track, 0x22)
	test.ExpectEquality(t, fi.Peek(floppy.Track), 0x22)
}
