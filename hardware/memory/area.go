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

package memory

import (
	"fmt"
	"strings"
)

// Area is implemented by all backing storage of the memory system. Offsets are
// relative to the start of the area.
type Area interface {
	Label() string
	Size() int
	Read(offset uint16) uint8
	Write(offset uint16, data uint8)
}

// Peeker is implemented by areas where a normal Read() or Write() has side
// effects. Peek() and Poke() must not have side effects.
type Peeker interface {
	Peek(offset uint16) uint8
	Poke(offset uint16, data uint8)
}

// RAM is a read/write area.
type RAM struct {
	label string
	data  []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(label string, size int) *RAM {
	return &RAM{
		label: label,
		data:  make([]uint8, size),
	}
}

func (ram *RAM) String() string {
	return hexdump(ram.data, 0)
}

// Label implements the Area interface.
func (ram *RAM) Label() string {
	return ram.label
}

// Size implements the Area interface.
func (ram *RAM) Size() int {
	return len(ram.data)
}

// Read implements the Area interface.
func (ram *RAM) Read(offset uint16) uint8 {
	return ram.data[int(offset)%len(ram.data)]
}

// Write implements the Area interface.
func (ram *RAM) Write(offset uint16, data uint8) {
	ram.data[int(offset)%len(ram.data)] = data
}

// Data returns the underlying storage of the RAM. Changes to the returned
// slice are changes to the RAM.
func (ram *RAM) Data() []uint8 {
	return ram.data
}

// Clear sets every byte to zero.
func (ram *RAM) Clear() {
	clear(ram.data)
}

// ROM is a read only area. Writes are ignored but Poke() can change the
// contents.
type ROM struct {
	label string
	data  []uint8
}

// NewROM is the preferred method of initialisation for the ROM type. The data
// is copied.
func NewROM(label string, data []uint8) *ROM {
	rom := &ROM{
		label: label,
		data:  make([]uint8, len(data)),
	}
	copy(rom.data, data)
	return rom
}

// Label implements the Area interface.
func (rom *ROM) Label() string {
	return rom.label
}

// Size implements the Area interface.
func (rom *ROM) Size() int {
	return len(rom.data)
}

// Read implements the Area interface.
func (rom *ROM) Read(offset uint16) uint8 {
	if len(rom.data) == 0 {
		return 0xff
	}
	return rom.data[int(offset)%len(rom.data)]
}

// Write implements the Area interface.
func (rom *ROM) Write(_ uint16, _ uint8) {
}

// Peek implements the Peeker interface.
func (rom *ROM) Peek(offset uint16) uint8 {
	return rom.Read(offset)
}

// Poke implements the Peeker interface.
func (rom *ROM) Poke(offset uint16, data uint8) {
	if len(rom.data) == 0 {
		return
	}
	rom.data[int(offset)%len(rom.data)] = data
}

// hexdump returns the data as rows of 16 bytes. origin is added to the address
// column.
func hexdump(data []uint8, origin uint16) string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < len(data); y += 16 {
		s.WriteString(fmt.Sprintf("%04x | ", int(origin)+y))
		for x := y; x < y+16 && x < len(data); x++ {
			s.WriteString(fmt.Sprintf(" %02x", data[x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}
