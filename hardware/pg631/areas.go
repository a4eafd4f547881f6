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

package pg631

import (
	"fmt"

	"github.com/eacaemu/eg3200/hardware/crtc"
	"github.com/eacaemu/eg3200/logger"
)

// reads return the low byte of the address. the window entry for an open bus
// window sets the offset so that the area sees the address
type openBus struct{}

func (openBus) Label() string            { return "open bus" }
func (openBus) Size() int                { return 0x10000 }
func (openBus) Read(offset uint16) uint8 { return uint8(offset) }
func (openBus) Write(_ uint16, _ uint8)  {}

// reads return 0xff
type pullUp struct{}

func (pullUp) Label() string           { return "pull up" }
func (pullUp) Size() int               { return 0x100 }
func (pullUp) Read(_ uint16) uint8     { return 0xff }
func (pullUp) Write(_ uint16, _ uint8) {}

// i8155 is the I/O and timer part of the 8155. the RAM part is a separate
// area. the registers are mirrored every eight bytes
type i8155 struct {
	command uint8
	ports   [3]uint8
	timer   [2]uint8
}

const (
	i8155Command = iota
	i8155PortA
	i8155PortB
	i8155PortC
	i8155TimerLo
	i8155TimerHi
)

func (pio *i8155) Label() string { return "8155" }
func (pio *i8155) Size() int     { return 0x100 }

func (pio *i8155) Read(offset uint16) uint8 {
	switch r := offset & 0x07; r {
	case i8155Command:
		// status register. the timer is not emulated so the status is
		// always zero
		return 0x00
	case i8155PortA, i8155PortB, i8155PortC:
		return pio.ports[r-i8155PortA]
	case i8155TimerLo, i8155TimerHi:
		return pio.timer[r-i8155TimerLo]
	}
	return 0xff
}

func (pio *i8155) Write(offset uint16, data uint8) {
	switch r := offset & 0x07; r {
	case i8155Command:
		pio.command = data
	case i8155PortA, i8155PortB, i8155PortC:
		pio.ports[r-i8155PortA] = data
	case i8155TimerLo, i8155TimerHi:
		pio.timer[r-i8155TimerLo] = data
	}
}

func (pio *i8155) String() string {
	return fmt.Sprintf("cmd=%02x a=%02x b=%02x c=%02x timer=%02x%02x",
		pio.command, pio.ports[0], pio.ports[1], pio.ports[2], pio.timer[1], pio.timer[0])
}

// names of the outputs of the peripheral address decoder. each output covers
// two addresses
var decoderOutputs = [8]string{
	"Y0 (not connected)",
	"Y1 8279 keyboard controller",
	"Y2 8251 UART",
	"Y3 8259 interrupt controller",
	"Y4 (not connected)",
	"Y5 (not connected)",
	"Y6 (not connected)",
	"Y7 (not connected)",
}

// the peripheral chips at fe00. none of the chips are emulated
type peripherals struct {
	perm logger.Permission
}

func (per *peripherals) Label() string { return "peripherals" }
func (per *peripherals) Size() int     { return 0x10 }

func (per *peripherals) Read(offset uint16) uint8 {
	logger.Logf(per.perm, "pg631", "read of %s (fe%02x)", decoderOutputs[(offset>>1)&0x07], offset)
	return 0xff
}

func (per *peripherals) Write(offset uint16, data uint8) {
	logger.Logf(per.perm, "pg631", "write of %02x to %s (fe%02x)", data, decoderOutputs[(offset>>1)&0x07], offset)
}

func (per *peripherals) Peek(_ uint16) uint8    { return 0xff }
func (per *peripherals) Poke(_ uint16, _ uint8) {}

// the two CRTC registers at fffe and ffff
type crtcPorts struct {
	crtc *crtc.CRTC
}

func (c *crtcPorts) Label() string { return "crtc" }
func (c *crtcPorts) Size() int     { return 2 }

func (c *crtcPorts) Read(offset uint16) uint8 {
	if offset&0x01 == 0x01 {
		return c.crtc.ReadData()
	}
	return 0xff
}

func (c *crtcPorts) Write(offset uint16, data uint8) {
	if offset&0x01 == 0x01 {
		c.crtc.WriteData(data)
		return
	}
	c.crtc.WriteAddress(data)
}

func (c *crtcPorts) Peek(offset uint16) uint8 {
	return c.Read(offset)
}

func (c *crtcPorts) Poke(_ uint16, _ uint8) {}
