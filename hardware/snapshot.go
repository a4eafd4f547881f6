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
	"github.com/eacaemu/eg3200/hardware/keyboard"
	"github.com/eacaemu/eg3200/hardware/memory/banks"
	"github.com/eacaemu/eg3200/hardware/rtc"
)

// State stores the internal state of the machine. It is produced by the
// Snapshot() function and can be restored with the Plumb() function.
//
// Note in particular that external devices (the floppy controller, the drives
// and the printer) are not part of the snapshot. Nor is the speaker history.
type State struct {
	RAM    []uint8
	Video0 []uint8
	Video1 []uint8

	Banks    banks.State
	RTC      rtc.RTC
	CRTC     crtc.CRTC
	Keyboard keyboard.Keyboard
	Inverse  bool

	IRQ           uint8
	Cycles        uint64
	NextInterrupt uint64
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	n := *s
	n.RAM = clone(s.RAM)
	n.Video0 = clone(s.Video0)
	n.Video1 = clone(s.Video1)
	return &n
}

func clone(b []uint8) []uint8 {
	c := make([]uint8, len(b))
	copy(c, b)
	return c
}

// Snapshot the state of the machine.
func (m *Machine) Snapshot() *State {
	return &State{
		RAM:           clone(m.ram.Data()),
		Video0:        clone(m.video0.Data()),
		Video1:        clone(m.video1.Data()),
		Banks:         m.Banks.State(),
		RTC:           *m.RTC,
		CRTC:          *m.CRTC,
		Keyboard:      *m.Keyboard,
		Inverse:       m.Video.Inverse(),
		IRQ:           m.irq,
		Cycles:        m.cycles,
		NextInterrupt: m.nextInterrupt,
	}
}

// Plumb a previously snapshotted state into the machine. The state is copied
// so that the machine does not change the stored snapshot.
func (m *Machine) Plumb(state *State) {
	if state == nil {
		panic("machine: cannot plumb in a nil state")
	}

	copy(m.ram.Data(), state.RAM)
	copy(m.video0.Data(), state.Video0)
	copy(m.video1.Data(), state.Video1)

	m.Banks.Write(banks.Encode(state.Banks, m.Banks.Polarity()))
	m.applyBanks(m.Banks.State())

	*m.RTC = state.RTC
	*m.CRTC = state.CRTC
	*m.Keyboard = state.Keyboard
	if state.Inverse {
		m.Video.WriteMode(0x01)
	} else {
		m.Video.WriteMode(0x00)
	}

	m.irq = state.IRQ
	m.cycles = state.Cycles
	m.nextInterrupt = state.NextInterrupt
	m.setLine(m.irq != 0)
}
