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
	"fmt"
	"strings"
	"time"

	"github.com/eacaemu/eg3200/curated"
	"github.com/eacaemu/eg3200/environment"
	"github.com/eacaemu/eg3200/hardware/clocks"
	"github.com/eacaemu/eg3200/hardware/crtc"
	"github.com/eacaemu/eg3200/hardware/floppy"
	"github.com/eacaemu/eg3200/hardware/keyboard"
	"github.com/eacaemu/eg3200/hardware/memory"
	"github.com/eacaemu/eg3200/hardware/memory/banks"
	"github.com/eacaemu/eg3200/hardware/printer"
	"github.com/eacaemu/eg3200/hardware/revision"
	"github.com/eacaemu/eg3200/hardware/rtc"
	"github.com/eacaemu/eg3200/hardware/speaker"
	"github.com/eacaemu/eg3200/hardware/video"
	"github.com/eacaemu/eg3200/logger"
)

// Sizes of the memory areas.
const (
	RAMSize         = 0x10000
	VideoBufferSize = 0x400
	ROMPage         = 0x800
	MaxROMSize      = 0x3000
)

// Origin of the switchable windows.
const (
	DiskKeyboardOrigin = 0x3700
	Video0Origin       = 0x3c00
	Video1Origin       = 0x4000
)

// Error patterns returned by NewMachine().
const (
	UnsupportedRevision = "machine: unsupported revision (%s)"
	ROMTooLarge         = "machine: ROM is too large (%d bytes)"
)

// Machine is the main container for the emulated components of the EG3200.
type Machine struct {
	env *environment.Environment

	Revision revision.Revision

	Mem      *memory.Memory
	Banks    *banks.Decoder
	RTC      *rtc.RTC
	CRTC     *crtc.CRTC
	Video    *video.Video
	Keyboard *keyboard.Keyboard
	Floppy   *floppy.Interface
	Printer  *printer.Port
	Speaker  *speaker.Speaker

	ram    *memory.RAM
	rom    *memory.ROM
	video0 *memory.RAM
	video1 *memory.RAM

	// the window for each switchable selector
	windows [banks.NumSelectors]memory.WindowID

	// bits 4 to 7 of the most recent bank select write
	unusedBankBits uint8

	// the interrupt status register and the host's interrupt line
	irq  uint8
	line func(asserted bool)

	// CPU cycles since reset and the cycle of the next periodic interrupt
	cycles        uint64
	nextInterrupt uint64
}

// NewMachine creates a new EG3200 with the supplied ROM. The hardware revision
// is taken from the environment's preferences. The machine is reset before
// being returned.
func NewMachine(env *environment.Environment, rom []uint8) (*Machine, error) {
	rev, err := env.Prefs.HardwareRevision()
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}
	if rev.ID == revision.PG631 {
		return nil, curated.Errorf(UnsupportedRevision, rev.ID)
	}
	if len(rom) > MaxROMSize {
		return nil, curated.Errorf(ROMTooLarge, len(rom))
	}

	m := &Machine{
		env:      env,
		Revision: rev,
		Banks:    banks.NewDecoder(rev.BankSelect),
		RTC:      rtc.NewRTC(rev.RTCRead, rev.RTCWrite),
		CRTC:     crtc.NewCRTC(),
		Keyboard: keyboard.NewKeyboard(0),
		Floppy:   floppy.NewInterface(rev.DriveSelect, rev.DriveCount),
		Printer:  printer.NewPort(),
		Speaker:  speaker.NewSpeaker(),
		ram:      memory.NewRAM("ram", RAMSize),
		rom:      memory.NewROM("rom", rom),
		video0:   memory.NewRAM("video0", VideoBufferSize),
		video1:   memory.NewRAM("video1", VideoBufferSize),
	}
	m.Video = video.NewVideo(m.CRTC, m.readVideo)
	m.env.Random.SetCycles(m)

	if err := m.buildMemory(len(rom)); err != nil {
		return nil, err
	}

	m.Reset()

	return m, nil
}

// the memory map of the EG3200
func (m *Machine) buildMemory(romSize int) error {
	m.Mem = memory.NewMemory(m.Revision.Unmapped)

	ram := m.Mem.AddArea(m.ram)
	rom := m.Mem.AddArea(m.rom)
	video0 := m.Mem.AddArea(m.video0)
	video1 := m.Mem.AddArea(m.video1)
	dk := m.Mem.AddArea(&diskKeyboard{m: m})

	plain := func(origin uint16) memory.Entry {
		return memory.Entry{Read: ram, Write: ram, Offset: origin}
	}

	// the ROM window covers the ROM in 2K pages. writes go to the RAM
	// underneath
	romTop := uint16((max(romSize, 1)+ROMPage-1)/ROMPage*ROMPage - 1)

	type window struct {
		label   string
		origin  uint16
		memtop  uint16
		sel     banks.Selector
		entries []memory.Entry
	}

	for _, w := range []window{
		{"rom", 0x0000, romTop, banks.ROM, []memory.Entry{
			{Read: rom, Write: ram}, plain(0),
		}},
		{"ram", romTop + 1, DiskKeyboardOrigin - 1, banks.NumSelectors, []memory.Entry{
			plain(romTop + 1),
		}},
		{"dk", DiskKeyboardOrigin, 0x38ff, banks.DiskKeyboard, []memory.Entry{
			{Read: dk, Write: dk}, plain(DiskKeyboardOrigin),
		}},
		{"ram", 0x3900, Video0Origin - 1, banks.NumSelectors, []memory.Entry{
			plain(0x3900),
		}},
		{"video0", Video0Origin, Video1Origin - 1, banks.Video0, []memory.Entry{
			{Read: video0, Write: video0}, plain(Video0Origin),
		}},
		{"video1", Video1Origin, 0x43ff, banks.Video1, []memory.Entry{
			{Read: video1, Write: video1}, plain(Video1Origin),
		}},
		{"ram", 0x4400, 0xffff, banks.NumSelectors, []memory.Entry{
			plain(0x4400),
		}},
	} {
		id, err := m.Mem.AddWindow(w.label, w.origin, w.memtop, w.entries...)
		if err != nil {
			return err
		}
		if w.sel != banks.NumSelectors {
			m.windows[w.sel] = id
		}
	}

	return nil
}

func (m *Machine) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s\n", m.Revision))
	s.WriteString(fmt.Sprintf("cycles: %d\n", m.cycles))
	s.WriteString(fmt.Sprintf("banks: %s\n", m.Banks))
	s.WriteString(fmt.Sprintf("irq: %02x\n", m.irq))
	s.WriteString(fmt.Sprintf("rtc: %s\n", m.RTC))
	s.WriteString(fmt.Sprintf("crtc: %s\n", m.CRTC))
	s.WriteString(fmt.Sprintf("video: %s\n", m.Video))
	s.WriteString(fmt.Sprintf("floppy: %s\n", m.Floppy))
	s.WriteString(fmt.Sprintf("printer: %s\n", m.Printer))
	s.WriteString(fmt.Sprintf("speaker: %s\n", m.Speaker))
	return s.String()
}

// Reset the machine to the power on state. The RTC is seeded from the
// environment's clock and the RAM is cleared or randomised according to the
// preferences.
func (m *Machine) Reset() {
	m.cycles = 0
	m.nextInterrupt = clocks.CyclesPerInterrupt

	m.Banks.Reset()
	m.applyBanks(banks.PowerOn())
	m.unusedBankBits = 0

	if m.env.Prefs.RandomState.Get().(bool) {
		m.env.Random.Fill(m.ram.Data())
		m.env.Random.Fill(m.video0.Data())
		m.env.Random.Fill(m.video1.Data())
	} else {
		m.ram.Clear()
		m.video0.Clear()
		m.video1.Clear()
	}

	m.RTC.Reset()
	now := m.env.Now()
	if m.env.Prefs.RTCUTC.Get().(bool) {
		now = now.UTC()
	} else {
		now = now.In(time.Local)
	}
	m.RTC.Seed(now, m.env.Prefs.RTC24Hour.Get().(bool))

	m.CRTC.Reset()
	m.Video.Reset()
	m.Keyboard.ReleaseAll()
	m.Keyboard.Jumpers = uint8(m.env.Prefs.KeyboardJumpers.Get().(int))
	m.Floppy.Timeout = m.env.Prefs.MotorTimeout.Get().(int)
	m.Floppy.Reset()
	m.Speaker.Reset()

	m.irq = 0
	m.setLine(false)

	logger.Logf(m.env, "machine", "reset: rtc %s", m.RTC)
}

// apply the bank state to the memory windows
func (m *Machine) applyBanks(s banks.State) {
	for k := range banks.NumSelectors {
		// the window IDs and bank numbers are fixed so an error is not
		// possible
		_ = m.Mem.Select(m.windows[k], s[k])
	}
}

// Cycles implements the random.Cycles interface. It returns the number of CPU
// cycles since reset.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

// ROM returns the ROM area. Changes to the ROM should be made with Poke().
func (m *Machine) ROM() *memory.ROM {
	return m.rom
}

// RAM returns the main RAM area.
func (m *Machine) RAM() *memory.RAM {
	return m.ram
}

// VideoBuffers returns the two video memory areas.
func (m *Machine) VideoBuffers() (*memory.RAM, *memory.RAM) {
	return m.video0, m.video1
}

// the video memory as seen by the CRTC
func (m *Machine) readVideo(offset uint16) uint8 {
	offset %= video.RAMSize
	if offset < VideoBufferSize {
		return m.video0.Read(offset)
	}
	return m.video1.Read(offset - VideoBufferSize)
}

// AttachController connects a floppy disk controller. A nil controller
// disconnects the current controller.
func (m *Machine) AttachController(ctrl floppy.Controller) {
	m.Floppy.AttachController(ctrl, m.intrq)
}

// AttachDrive connects a floppy drive to the drive select bit.
func (m *Machine) AttachDrive(n int, drv floppy.Drive) error {
	return m.Floppy.AttachDrive(n, drv)
}

// AttachPrinter connects a device to the parallel port. A nil device
// disconnects the current device.
func (m *Machine) AttachPrinter(dev printer.Device) {
	m.Printer.Attach(dev)
}

// AttachInterruptLine connects the host CPU's maskable interrupt line. The
// function is called with the new state of the line whenever it changes.
func (m *Machine) AttachInterruptLine(line func(asserted bool)) {
	m.line = line
	m.setLine(m.irq != 0)
}
