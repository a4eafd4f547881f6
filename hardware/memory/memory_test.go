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

package memory_test

import (
	"strings"
	"testing"

	"github.com/eacaemu/eg3200/curated"
	"github.com/eacaemu/eg3200/hardware/memory"
	"github.com/eacaemu/eg3200/test"
)

// device is an area with a read side effect
type device struct {
	reads int
	value uint8
}

func (d *device) Label() string              { return "device" }
func (d *device) Size() int                  { return 16 }
func (d *device) Read(_ uint16) uint8        { d.reads++; return d.value }
func (d *device) Write(_ uint16, data uint8) { d.value = data }
func (d *device) Peek(_ uint16) uint8        { return d.value }
func (d *device) Poke(_ uint16, data uint8)  { d.value = data }

func TestBanks(t *testing.T) {
	mem := memory.NewMemory(0x00)
	ram := memory.NewRAM("ram", 0x10000)
	rom := memory.NewROM("rom", []uint8{0xf3, 0xaf, 0xc3})
	ramID := mem.AddArea(ram)
	romID := mem.AddArea(rom)

	// reads from ROM, writes to RAM in bank 0. RAM in bank 1
	w, err := mem.AddWindow("rom", 0x0000, 0x07ff,
		memory.Entry{Read: romID, Write: ramID},
		memory.Entry{Read: ramID, Write: ramID},
	)
	test.DemandSuccess(t, err)
	_, err = mem.AddWindow("ram", 0x0800, 0xffff, memory.Entry{Read: ramID, Write: ramID, Offset: 0x0800})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, mem.Read(0x0000), 0xf3)
	test.ExpectEquality(t, mem.Read(0x0002), 0xc3)

	// write goes to the RAM underneath the ROM
	mem.Write(0x0000, 0x55)
	test.ExpectEquality(t, mem.Read(0x0000), 0xf3)
	test.ExpectEquality(t, ram.Data()[0], 0x55)

	test.ExpectSuccess(t, mem.Select(w, 1))
	test.ExpectEquality(t, mem.Selected(w), 1)
	test.ExpectEquality(t, mem.Read(0x0000), 0x55)

	test.ExpectSuccess(t, mem.Select(w, 0))
	test.ExpectEquality(t, mem.Read(0x0000), 0xf3)

	// the ram window is offset into the same buffer
	mem.Write(0x4000, 0x42)
	test.ExpectEquality(t, ram.Data()[0x4000], 0x42)

	// invalid bank
	test.ExpectSuccess(t, curated.Is(mem.Select(w, 2), memory.InvalidBank))
	test.ExpectEquality(t, mem.Selected(w), 0)
	test.ExpectEquality(t, mem.Selected(memory.WindowID(99)), -1)
}

func TestOverlap(t *testing.T) {
	mem := memory.NewMemory(0x00)
	id := mem.AddArea(memory.NewRAM("ram", 0x1000))

	_, err := mem.AddWindow("a", 0x1000, 0x1fff, memory.Entry{Read: id, Write: id})
	test.DemandSuccess(t, err)

	_, err = mem.AddWindow("b", 0x1f00, 0x2fff, memory.Entry{Read: id, Write: id})
	test.ExpectSuccess(t, curated.Is(err, memory.OverlappingWindow))

	// the failed window has not altered the map
	_, err = mem.AddWindow("c", 0x2000, 0x2fff, memory.Entry{Read: id, Write: id})
	test.ExpectSuccess(t, err)

	_, err = mem.AddWindow("d", 0x4000, 0x3fff, memory.Entry{Read: id, Write: id})
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidWindow))

	_, err = mem.AddWindow("e", 0x4000, 0x4fff, memory.Entry{Read: 5, Write: id})
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidWindow))

	_, err = mem.AddWindow("f", 0x4000, 0x4fff)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidWindow))
}

func TestUnmapped(t *testing.T) {
	mem := memory.NewMemory(0xff)
	id := mem.AddArea(memory.NewRAM("ram", 0x100))
	_, err := mem.AddWindow("ram", 0x1000, 0x10ff, memory.Entry{Read: id, Write: id})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, mem.Read(0x0fff), 0xff)
	test.ExpectEquality(t, mem.Peek(0x1100), 0xff)

	// writes to unmapped memory are ignored
	mem.Write(0x0000, 0x12)
	test.ExpectEquality(t, mem.Read(0x0000), 0xff)

	// a bank with no read buffer also reads the unmapped value
	_, err = mem.AddWindow("wo", 0x2000, 0x20ff, memory.Entry{Read: memory.NoBuffer, Write: id})
	test.DemandSuccess(t, err)
	mem.Write(0x2001, 0x34)
	test.ExpectEquality(t, mem.Read(0x2001), 0xff)
	test.ExpectEquality(t, mem.Read(0x1001), 0x34)
}

func TestPeekPoke(t *testing.T) {
	mem := memory.NewMemory(0x00)
	dev := &device{value: 0x7f}
	id := mem.AddArea(dev)
	_, err := mem.AddWindow("device", 0x37e0, 0x37ef, memory.Entry{Read: id, Write: id})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, mem.Peek(0x37e0), 0x7f)
	test.ExpectEquality(t, dev.reads, 0)
	test.ExpectEquality(t, mem.Read(0x37e0), 0x7f)
	test.ExpectEquality(t, dev.reads, 1)

	mem.Poke(0x37e1, 0x01)
	test.ExpectEquality(t, dev.value, 0x01)

	// poke changes ROM
	rom := memory.NewROM("rom", make([]uint8, 0x800))
	romID := mem.AddArea(rom)
	_, err = mem.AddWindow("rom", 0x0000, 0x07ff, memory.Entry{Read: romID, Write: romID})
	test.DemandSuccess(t, err)
	mem.Write(0x0010, 0xaa)
	test.ExpectEquality(t, mem.Read(0x0010), 0x00)
	mem.Poke(0x0010, 0xaa)
	test.ExpectEquality(t, mem.Read(0x0010), 0xaa)
}

func TestSummary(t *testing.T) {
	mem := memory.NewMemory(0x00)
	ram := mem.AddArea(memory.NewRAM("ram", 0x10000))
	rom := mem.AddArea(memory.NewROM("rom", make([]uint8, 0x800)))
	_, err := mem.AddWindow("rom", 0x0000, 0x07ff,
		memory.Entry{Read: rom, Write: ram},
		memory.Entry{Read: ram, Write: ram},
	)
	test.DemandSuccess(t, err)
	_, err = mem.AddWindow("ram", 0x0800, 0x0fff, memory.Entry{Read: ram, Write: ram, Offset: 0x0800})
	test.DemandSuccess(t, err)

	s := mem.Summary()
	lines := strings.Split(strings.TrimSpace(s), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "0000 -> 07ff\trom [bank 0]\tread rom+0000 write ram+0000")
	test.ExpectEquality(t, lines[1], "0800 -> 0fff\tram\tram+0800")
	test.ExpectEquality(t, lines[2], "1000 -> ffff\tunmapped")
}

func TestDump(t *testing.T) {
	mem := memory.NewMemory(0x00)
	id := mem.AddArea(memory.NewROM("rom", []uint8{0x01, 0x02, 0x03}))
	_, err := mem.AddWindow("rom", 0x0000, 0x0002, memory.Entry{Read: id, Write: id})
	test.DemandSuccess(t, err)

	d := strings.Split(mem.Dump(0x0000, 0x0002), "\n")
	test.DemandEquality(t, len(d), 3)
	test.ExpectEquality(t, d[2], "0000 |  01 02 03")
}
