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

	"github.com/eacaemu/eg3200/curated"
)

// BufferID identifies an area added to the memory with AddArea().
type BufferID int

// NoBuffer indicates that a bank does not read or does not write.
const NoBuffer BufferID = -1

// Entry is a single bank of a window. Offset is the location in the areas
// that corresponds to the origin of the window.
type Entry struct {
	Read   BufferID
	Write  BufferID
	Offset uint16
}

// Window is a range of addresses served by one of several banks.
type Window struct {
	Label  string
	Origin uint16
	Memtop uint16
	Banks  []Entry

	selected int
}

func (w *Window) String() string {
	return fmt.Sprintf("%s [bank %d of %d]", w.Label, w.selected, len(w.Banks))
}

// WindowID identifies a window added to the memory with AddWindow().
type WindowID int

// List of error patterns returned by the memory package.
const (
	OverlappingWindow = "memory: window %s overlaps window %s at %04x"
	InvalidWindow     = "memory: invalid window %s: %v"
	InvalidBank       = "memory: window %s has no bank %d"
)

// Memory is the address space of an emulated machine.
type Memory struct {
	// the value returned by reads of addresses not in any window, or by banks
	// with a Read value of NoBuffer
	Unmapped uint8

	areas   []Area
	windows []*Window

	// index into the windows list for every address. -1 if the address is
	// not in any window
	lookup [0x10000]int16
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(unmapped uint8) *Memory {
	mem := &Memory{
		Unmapped: unmapped,
	}
	for i := range mem.lookup {
		mem.lookup[i] = -1
	}
	return mem
}

// AddArea adds backing storage to the memory. The returned BufferID is used in
// the bank entries of a window.
func (mem *Memory) AddArea(a Area) BufferID {
	mem.areas = append(mem.areas, a)
	return BufferID(len(mem.areas) - 1)
}

// Area returns the area for the BufferID. Returns nil if the ID is not valid.
func (mem *Memory) Area(id BufferID) Area {
	if id < 0 || int(id) >= len(mem.areas) {
		return nil
	}
	return mem.areas[id]
}

// AddWindow adds a window to the address space. Bank zero is selected. The
// window may not overlap an existing window and every bank must refer to an
// existing area (or NoBuffer).
func (mem *Memory) AddWindow(label string, origin uint16, memtop uint16, banks ...Entry) (WindowID, error) {
	if memtop < origin {
		return 0, curated.Errorf(InvalidWindow, label, fmt.Errorf("memtop %04x is before origin %04x", memtop, origin))
	}
	if len(banks) == 0 {
		return 0, curated.Errorf(InvalidWindow, label, fmt.Errorf("no banks"))
	}
	for i, b := range banks {
		for _, id := range []BufferID{b.Read, b.Write} {
			if id != NoBuffer && mem.Area(id) == nil {
				return 0, curated.Errorf(InvalidWindow, label, fmt.Errorf("bank %d refers to unknown buffer %d", i, id))
			}
		}
	}

	for a := int(origin); a <= int(memtop); a++ {
		if idx := mem.lookup[a]; idx != -1 {
			return 0, curated.Errorf(OverlappingWindow, label, mem.windows[idx].Label, a)
		}
	}

	w := &Window{
		Label:  label,
		Origin: origin,
		Memtop: memtop,
		Banks:  banks,
	}
	mem.windows = append(mem.windows, w)
	idx := int16(len(mem.windows) - 1)
	for a := int(origin); a <= int(memtop); a++ {
		mem.lookup[a] = idx
	}

	return WindowID(idx), nil
}

// Window returns the window for the WindowID. Returns nil if the ID is not
// valid.
func (mem *Memory) Window(id WindowID) *Window {
	if id < 0 || int(id) >= len(mem.windows) {
		return nil
	}
	return mem.windows[id]
}

// Select the bank of a window. The selection is effective for the next
// access.
func (mem *Memory) Select(id WindowID, bank int) error {
	w := mem.Window(id)
	if w == nil {
		return curated.Errorf(InvalidWindow, fmt.Sprintf("%d", id), fmt.Errorf("no such window"))
	}
	if bank < 0 || bank >= len(w.Banks) {
		return curated.Errorf(InvalidBank, w.Label, bank)
	}
	w.selected = bank
	return nil
}

// Selected returns the selected bank of a window. Returns -1 if the ID is not
// valid.
func (mem *Memory) Selected(id WindowID) int {
	w := mem.Window(id)
	if w == nil {
		return -1
	}
	return w.selected
}

// MapAddress returns the window and the selected bank for the address. The
// last return value is false if the address is not in any window.
func (mem *Memory) MapAddress(address uint16) (*Window, Entry, bool) {
	idx := mem.lookup[address]
	if idx == -1 {
		return nil, Entry{}, false
	}
	w := mem.windows[idx]
	return w, w.Banks[w.selected], true
}

// resolve the area and offset for an access of the address. read selects
// either the read or the write buffer of the bank.
func (mem *Memory) resolve(address uint16, read bool) (Area, uint16) {
	w, e, ok := mem.MapAddress(address)
	if !ok {
		return nil, 0
	}
	id := e.Write
	if read {
		id = e.Read
	}
	if id == NoBuffer {
		return nil, 0
	}
	return mem.areas[id], address - w.Origin + e.Offset
}

// Read the address as the CPU would.
func (mem *Memory) Read(address uint16) uint8 {
	a, offset := mem.resolve(address, true)
	if a == nil {
		return mem.Unmapped
	}
	return a.Read(offset)
}

// Write to the address as the CPU would.
func (mem *Memory) Write(address uint16, data uint8) {
	a, offset := mem.resolve(address, false)
	if a == nil {
		return
	}
	a.Write(offset, data)
}

// Peek reads the address without triggering the side effects of device areas.
func (mem *Memory) Peek(address uint16) uint8 {
	a, offset := mem.resolve(address, true)
	if a == nil {
		return mem.Unmapped
	}
	if p, ok := a.(Peeker); ok {
		return p.Peek(offset)
	}
	return a.Read(offset)
}

// Poke writes to the address without triggering the side effects of device
// areas. Unlike Write(), Poke() to a bank that reads from ROM changes the ROM.
func (mem *Memory) Poke(address uint16, data uint8) {
	a, offset := mem.resolve(address, true)
	if a == nil {
		return
	}
	if p, ok := a.(Peeker); ok {
		p.Poke(offset, data)
		return
	}
	a.Write(offset, data)
}

// Summary returns a single multiline string detailing the current memory map.
// Each line is a window, or a gap of unmapped addresses, in address order.
func (mem *Memory) Summary() string {
	s := strings.Builder{}

	line := func(origin, memtop int, detail string) {
		s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", origin, memtop, detail))
	}

	a := 0
	for a < len(mem.lookup) {
		idx := mem.lookup[a]
		if idx == -1 {
			sa := a
			for a < len(mem.lookup) && mem.lookup[a] == -1 {
				a++
			}
			line(sa, a-1, "unmapped")
			continue
		}

		w := mem.windows[idx]
		e := w.Banks[w.selected]
		detail := w.Label
		if len(w.Banks) > 1 {
			detail = fmt.Sprintf("%s [bank %d]", detail, w.selected)
		}
		detail = fmt.Sprintf("%s\t%s", detail, mem.describe(e))
		line(int(w.Origin), int(w.Memtop), detail)
		a = int(w.Memtop) + 1
	}

	return s.String()
}

// describe the buffers of a bank entry
func (mem *Memory) describe(e Entry) string {
	label := func(id BufferID) string {
		if a := mem.Area(id); a != nil {
			return a.Label()
		}
		return "none"
	}
	if e.Read == e.Write {
		return fmt.Sprintf("%s+%04x", label(e.Read), e.Offset)
	}
	return fmt.Sprintf("read %s+%04x write %s+%04x", label(e.Read), e.Offset, label(e.Write), e.Offset)
}

// Dump returns a hexdump of the address range as seen with Peek().
func (mem *Memory) Dump(origin uint16, memtop uint16) string {
	if memtop < origin {
		return ""
	}
	data := make([]uint8, int(memtop)-int(origin)+1)
	for i := range data {
		data[i] = mem.Peek(origin + uint16(i))
	}
	return hexdump(data, origin)
}
