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
	"github.com/eacaemu/eg3200/curated"
	"github.com/eacaemu/eg3200/environment"
	"github.com/eacaemu/eg3200/hardware/crtc"
	"github.com/eacaemu/eg3200/hardware/memory"
	"github.com/eacaemu/eg3200/hardware/revision"
)

// Sizes of the memory areas.
const (
	ROMSize      = 0x8000
	RAMSize      = 0x1000
	VideoRAMSize = 0x800
	PIORAMSize   = 0x100
)

// ROMTooLarge is the error pattern returned when the ROM does not fit in the
// ROM window.
const ROMTooLarge = "pg631: ROM is too large (%d bytes)"

// Machine is the PG631 memory map.
type Machine struct {
	env *environment.Environment

	Revision revision.Revision
	Mem      *memory.Memory
	CRTC     *crtc.CRTC

	rom      *memory.ROM
	ram      *memory.RAM
	videoRAM *memory.RAM
	pioRAM   *memory.RAM
	pio      *i8155
}

// NewMachine creates the PG631 memory map with the supplied ROM. The revision
// in the environment preferences is ignored. The machine is reset before
// being returned.
func NewMachine(env *environment.Environment, rom []uint8) (*Machine, error) {
	if len(rom) > ROMSize {
		return nil, curated.Errorf(ROMTooLarge, len(rom))
	}

	rev, err := revision.Lookup(string(revision.PG631))
	if err != nil {
		return nil, err
	}

	m := &Machine{
		env:      env,
		Revision: rev,
		CRTC:     crtc.NewCRTC(),
		rom:      memory.NewROM("rom", padROM(rom)),
		ram:      memory.NewRAM("ram", RAMSize),
		videoRAM: memory.NewRAM("video", VideoRAMSize),
		pioRAM:   memory.NewRAM("8155 ram", PIORAMSize),
		pio:      &i8155{},
	}

	m.Mem = memory.NewMemory(rev.Unmapped)

	rd := m.Mem.AddArea(m.rom)
	ram := m.Mem.AddArea(m.ram)
	vid := m.Mem.AddArea(m.videoRAM)
	pioRAM := m.Mem.AddArea(m.pioRAM)
	pio := m.Mem.AddArea(m.pio)
	open := m.Mem.AddArea(openBus{})
	ff := m.Mem.AddArea(pullUp{})
	per := m.Mem.AddArea(&peripherals{perm: env})
	crt := m.Mem.AddArea(&crtcPorts{crtc: m.CRTC})

	// the ROM window is always the full 32K. a short ROM reads as 0xff
	// beyond its end
	romEntry := memory.Entry{Read: rd, Write: memory.NoBuffer}

	same := func(id memory.BufferID, offset uint16) memory.Entry {
		return memory.Entry{Read: id, Write: id, Offset: offset}
	}
	openAt := func(origin uint16) memory.Entry {
		return memory.Entry{Read: open, Write: memory.NoBuffer, Offset: origin}
	}

	for _, w := range []struct {
		label  string
		origin uint16
		memtop uint16
		entry  memory.Entry
	}{
		{"rom", 0x0000, 0x7fff, romEntry},
		{"ram", 0xe000, 0xefff, same(ram, 0)},
		{"video", 0xf000, 0xf7ff, same(vid, 0)},
		{"8155 ram", 0xf800, 0xf8ff, same(pioRAM, 0)},
		{"8155", 0xf900, 0xf9ff, same(pio, 0)},
		{"open", 0xfa00, 0xfb7f, openAt(0xfa00)},
		{"ff", 0xfb80, 0xfbff, memory.Entry{Read: ff, Write: memory.NoBuffer}},
		{"open", 0xfc00, 0xfdff, openAt(0xfc00)},
		{"peripherals", 0xfe00, 0xfe0f, same(per, 0)},
		{"open", 0xfe10, 0xfe7f, openAt(0xfe10)},
		{"ff", 0xfe80, 0xfeff, memory.Entry{Read: ff, Write: memory.NoBuffer}},
		{"open", 0xff00, 0xfffd, openAt(0xff00)},
		{"crtc", 0xfffe, 0xffff, same(crt, 0)},
	} {
		if _, err := m.Mem.AddWindow(w.label, w.origin, w.memtop, w.entry); err != nil {
			return nil, err
		}
	}

	m.Reset()

	return m, nil
}

// a ROM shorter than the window is padded with 0xff
func padROM(rom []uint8) []uint8 {
	p := make([]uint8, ROMSize)
	copy(p, rom)
	for i := len(rom); i < len(p); i++ {
		p[i] = 0xff
	}
	return p
}

// Reset clears or randomises the RAM according to the preferences and resets
// the CRTC.
func (m *Machine) Reset() {
	for _, r := range []*memory.RAM{m.ram, m.videoRAM, m.pioRAM} {
		if m.env.Prefs.RandomState.Get().(bool) {
			m.env.Random.Fill(r.Data())
		} else {
			r.Clear()
		}
	}
	*m.pio = i8155{}
	m.CRTC.Reset()
}

// Read the address as the CPU would.
func (m *Machine) Read(address uint16) uint8 {
	return m.Mem.Read(address)
}

// Write to the address as the CPU would.
func (m *Machine) Write(address uint16, data uint8) {
	m.Mem.Write(address, data)
}

// Peek reads the address without side effects.
func (m *Machine) Peek(address uint16) uint8 {
	return m.Mem.Peek(address)
}

// Poke writes to the address without side effects.
func (m *Machine) Poke(address uint16, data uint8) {
	m.Mem.Poke(address, data)
}

// In reads an I/O port. No I/O ports are decoded.
func (m *Machine) In(_ uint16) uint8 {
	return 0xff
}

// Out writes to an I/O port. No I/O ports are decoded.
func (m *Machine) Out(_ uint16, _ uint8) {
}

// VideoRAM returns the video memory.
func (m *Machine) VideoRAM() *memory.RAM {
	return m.videoRAM
}
