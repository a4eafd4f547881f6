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

// Package printer implements the Centronics parallel port of the EG3200.
//
// A write to the port latches the data and pulses the strobe line. A read
// returns the status lines of the attached device:
//
//	bit 7: busy (active high)
//	bit 6: out of paper (active high)
//	bit 5: unit select (active low)
//	bit 4: held high
//
// The remaining bits read as zero.
package printer

import (
	"fmt"
	"io"
)

// Status bits.
const (
	Busy     = 0x80
	PaperOut = 0x40
	Select   = 0x20
	Fault    = 0x10
)

// Status of a Centronics device.
type Status struct {
	Busy     bool
	PaperOut bool
	Selected bool
}

// Encode returns the value read by the CPU for the status.
func (s Status) Encode() uint8 {
	v := uint8(Fault)
	if s.Busy {
		v |= Busy
	}
	if s.PaperOut {
		v |= PaperOut
	}
	if !s.Selected {
		v |= Select
	}
	return v
}

func (s Status) String() string {
	return fmt.Sprintf("busy=%v paperout=%v selected=%v", s.Busy, s.PaperOut, s.Selected)
}

// Device is implemented by anything that can be attached to the port.
type Device interface {
	// called on the rising edge of the strobe with the latched data
	Strobe(data uint8)
	Status() Status
}

// Port is the parallel port.
type Port struct {
	dev  Device
	data uint8

	// number of strobes since the port was created
	strobes int
}

// NewPort is the preferred method of initialisation for the Port type.
func NewPort() *Port {
	return &Port{}
}

func (p *Port) String() string {
	return fmt.Sprintf("data=%02x status=%02x strobes=%d", p.data, p.Read(), p.strobes)
}

// Attach a device. A nil device disconnects the current device.
func (p *Port) Attach(dev Device) {
	p.dev = dev
}

// Write latches the data and strobes the attached device.
func (p *Port) Write(data uint8) {
	p.data = data
	p.strobes++
	if p.dev != nil {
		p.dev.Strobe(data)
	}
}

// Read the status lines. With nothing attached the device is not selected.
func (p *Port) Read() uint8 {
	if p.dev == nil {
		return Status{}.Encode()
	}
	return p.dev.Status().Encode()
}

// Data returns the most recently latched value.
func (p *Port) Data() uint8 {
	return p.data
}

// Capture is a printer that writes every byte it receives to an io.Writer.
type Capture struct {
	w   io.Writer
	err error

	// translate carriage returns to newlines
	Translate bool
}

// NewCapture is the preferred method of initialisation for the Capture type.
func NewCapture(w io.Writer) *Capture {
	return &Capture{w: w}
}

// Strobe implements the Device interface. If the writer fails then the
// printer reports that it is out of paper.
func (c *Capture) Strobe(data uint8) {
	if c.err != nil {
		return
	}
	if c.Translate && data == '\r' {
		data = '\n'
	}
	_, c.err = c.w.Write([]byte{data})
}

// Status implements the Device interface.
func (c *Capture) Status() Status {
	return Status{
		PaperOut: c.err != nil,
		Selected: true,
	}
}

// Err returns the first error returned by the writer.
func (c *Capture) Err() error {
	return c.err
}
