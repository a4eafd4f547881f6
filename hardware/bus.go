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

package hardware

import (
	"github.com/eacaemu/eg3200/hardware/crtc"
	"github.com/eacaemu/eg3200/hardware/floppy"
	"github.com/eacaemu/eg3200/hardware/keyboard"
	"github.com/eacaemu/eg3200/hardware/memory/banks"
	"github.com/eacaemu/eg3200/logger"
)

// List of I/O ports.
const (
	PortRTCAddrData = 0xe0
	PortRTCMode     = 0xe1
	PortUARTFirst   = 0xe8
	PortUARTLast    = 0xef
	PortVideoMode   = 0xf5
	PortCRTCAddress = 0xf6
	PortCRTCData    = 0xf7
	PortBankSelect  = 0xfa
	PortPrinter     = 0xfd
)

// UnmappedPort is the value returned by reads of ports with no device.
const UnmappedPort = 0xff

// Read the address as the CPU would.
func (m *Machine) Read(address uint16) uint8 {
	return m.Mem.Read(address)
}

// Write to the address as the CPU would.
func (m *Machine) Write(address uint16, data uint8) {
	m.Mem.Write(address, data)
}

// Peek reads the address without any side effects.
func (m *Machine) Peek(address uint16) uint8 {
	return m.Mem.Peek(address)
}

// Poke writes to the address without any side effects. Poking the ROM window
// when the ROM is selected changes the ROM.
func (m *Machine) Poke(address uint16, data uint8) {
	m.Mem.Poke(address, data)
}

// In reads the I/O port. Only the low eight bits of the port address are
// decoded.
func (m *Machine) In(port uint16) uint8 {
	p := uint8(port)
	switch {
	case p == PortRTCAddrData:
		return m.RTC.ReadAddrData()
	case p == PortRTCMode:
		return m.RTC.ReadMode()
	case p >= PortUARTFirst && p <= PortUARTLast:
		logger.Logf(m.env, "uart", "read of port %02x", p)
		return UnmappedPort
	case p == PortCRTCData:
		return m.CRTC.ReadData()
	case p == PortPrinter:
		return m.Printer.Read()
	}
	return UnmappedPort
}

// Out writes to the I/O port. Only the low eight bits of the port address are
// decoded.
func (m *Machine) Out(port uint16, data uint8) {
	p := uint8(port)
	switch {
	case p == PortRTCAddrData:
		m.RTC.WriteAddrData(data)
	case p == PortRTCMode:
		if m.RTC.WriteMode(data) {
			logger.Logf(m.env, "rtc", "set: %s", m.RTC)
		}
	case p >= PortUARTFirst && p <= PortUARTLast:
		logger.Logf(m.env, "uart", "write of %02x to port %02x", data, p)
	case p == PortVideoMode:
		if m.Video.WriteMode(data) {
			logger.Logf(m.env, "video", "mode: %s", m.Video)
		}
	case p == PortCRTCAddress:
		m.CRTC.WriteAddress(data)
	case p == PortCRTCData:
		if m.CRTC.WriteData(data) {
			logger.Logf(m.env, "crtc", "geometry: %s", m.CRTC.Geometry())
		}
		logger.Logf(m.env, "crtc", "%s: %02x", crtc.RegisterName(m.CRTC.Address()), data)
	case p == PortBankSelect:
		m.bankSelect(data)
	case p == PortPrinter:
		m.Printer.Write(data)
	}
}

// a write to the bank select port. the new bank state is applied before
// returning
func (m *Machine) bankSelect(data uint8) {
	if unused := data & banks.UnusedBits; unused != m.unusedBankBits {
		m.unusedBankBits = unused
		logger.Logf(m.env, "banks", "unused bits set: %02x", unused)
	}

	prev := m.Banks.State()
	s, changed := m.Banks.Write(data)
	if !changed {
		return
	}
	m.applyBanks(s)
	logger.Logf(m.env, "banks", "%02x: %s (changed %v)", data, s, banks.Changes(prev, s))
}

// the devices in the disk/keyboard window. offsets are from the origin of the
// window
type diskKeyboard struct {
	m *Machine
}

// offsets of the devices in the disk/keyboard window
const (
	dkIRQFirst     = 0xe0
	dkIRQLast      = 0xe3
	dkPrinterFirst = 0xe8
	dkPrinterLast  = 0xeb
	dkFDCFirst     = 0xec
	dkFDCLast      = 0xef
	dkKeyboard     = 0x100
	dkKeyboardLast = 0x1ff
	dkSpeaker      = 0x160
	dkSize         = 0x200
)

// Label implements the memory.Area interface.
func (dk *diskKeyboard) Label() string {
	return "dk"
}

// Size implements the memory.Area interface.
func (dk *diskKeyboard) Size() int {
	return dkSize
}

// Read implements the memory.Area interface.
func (dk *diskKeyboard) Read(offset uint16) uint8 {
	switch {
	case offset >= dkIRQFirst && offset <= dkIRQLast:
		return dk.m.irqStatus()
	case offset >= dkPrinterFirst && offset <= dkPrinterLast:
		return dk.m.Printer.Read()
	case offset >= dkFDCFirst && offset <= dkFDCLast:
		return dk.m.Floppy.Read(floppy.Register(offset - dkFDCFirst))
	case offset >= dkKeyboard && offset <= dkKeyboardLast:
		if offset == dkSpeaker {
			dk.m.Speaker.Toggle(dk.m.cycles)
		}
		return dk.m.Keyboard.Read(uint8(offset - dkKeyboard))
	}
	return dk.m.Mem.Unmapped
}

// Write implements the memory.Area interface.
func (dk *diskKeyboard) Write(offset uint16, data uint8) {
	switch {
	case offset >= dkIRQFirst && offset <= dkIRQLast:
		dk.m.Floppy.SelectDrive(data)
		logger.Logf(dk.m.env, "fdc", "drive select %02x: %s", data, dk.m.Floppy)
	case offset >= dkPrinterFirst && offset <= dkPrinterLast:
		dk.m.Printer.Write(data)
	case offset >= dkFDCFirst && offset <= dkFDCLast:
		reg := floppy.Register(offset - dkFDCFirst)
		if dk.m.Floppy.Write(reg, data) {
			logger.Logf(dk.m.env, "fdc", "%s write %02x: %s", reg, data, dk.m.Floppy)
		}
	case offset == dkSpeaker:
		dk.m.Speaker.Toggle(dk.m.cycles)
	}
}

// Peek implements the memory.Peeker interface.
func (dk *diskKeyboard) Peek(offset uint16) uint8 {
	switch {
	case offset >= dkIRQFirst && offset <= dkIRQLast:
		return dk.m.irq
	case offset >= dkPrinterFirst && offset <= dkPrinterLast:
		return dk.m.Printer.Read()
	case offset >= dkFDCFirst && offset <= dkFDCLast:
		return dk.m.Floppy.Peek(floppy.Register(offset - dkFDCFirst))
	case offset >= dkKeyboard && offset <= dkKeyboardLast:
		return dk.m.Keyboard.Read(uint8(offset - dkKeyboard))
	}
	return dk.m.Mem.Unmapped
}

// Poke implements the memory.Peeker interface. The devices cannot be poked.
func (dk *diskKeyboard) Poke(_ uint16, _ uint8) {
}

// DescribeAddress returns a description of the device at the address in the
// disk/keyboard window. Returns the empty string if there is no device.
func DescribeAddress(address uint16) string {
	if address < DiskKeyboardOrigin || address >= DiskKeyboardOrigin+dkSize {
		return ""
	}
	offset := address - DiskKeyboardOrigin
	switch {
	case offset >= dkIRQFirst && offset <= dkIRQLast:
		return "irq status / drive select"
	case offset >= dkPrinterFirst && offset <= dkPrinterLast:
		return "printer"
	case offset >= dkFDCFirst && offset <= dkFDCLast:
		return floppy.Register(offset - dkFDCFirst).String()
	case offset == dkSpeaker:
		return "speaker / keyboard " + keyboard.Describe(uint8(offset-dkKeyboard))
	case offset >= dkKeyboard && offset <= dkKeyboardLast:
		return "keyboard " + keyboard.Describe(uint8(offset-dkKeyboard))
	}
	return ""
}
