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
	"github.com/eacaemu/eg3200/hardware/clocks"
	"github.com/eacaemu/eg3200/logger"
)

// Bits of the interrupt status register.
const (
	IRQFloppy   = 0x40
	IRQPeriodic = 0x80
)

func (m *Machine) setLine(asserted bool) {
	if m.line != nil {
		m.line(asserted)
	}
}

// IRQStatus returns the interrupt status register without clearing it.
func (m *Machine) IRQStatus() uint8 {
	return m.irq
}

// a CPU read of the interrupt status register. the register is cleared and
// the interrupt line deasserted
func (m *Machine) irqStatus() uint8 {
	v := m.irq
	m.irq = 0
	m.setLine(false)
	return v
}

// connected to the INTRQ line of the floppy controller
func (m *Machine) intrq(state bool) {
	if !state {
		return
	}
	m.irq |= IRQFloppy
	m.setLine(true)
}

// PeriodicInterrupt is the 40Hz interrupt. The interrupt status is set and the
// host interrupt line asserted before the RTC and floppy motor are ticked.
func (m *Machine) PeriodicInterrupt() {
	m.irq |= IRQPeriodic
	m.setLine(true)

	if m.Floppy.Tick() {
		logger.Logf(m.env, "fdc", "motor timeout: %s", m.Floppy)
	}
	m.RTC.Tick()
}

// Advance the machine by a number of CPU cycles. The periodic interrupt is
// raised for every interrupt period that completes. Returns the number of
// periodic interrupts raised.
func (m *Machine) Advance(cycles uint64) int {
	n := 0
	m.cycles += cycles
	for m.cycles >= m.nextInterrupt {
		m.nextInterrupt += clocks.CyclesPerInterrupt
		m.PeriodicInterrupt()
		n++
	}
	return n
}
