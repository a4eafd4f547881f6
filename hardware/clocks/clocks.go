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

// Package clocks defines the constant values that define the speed of the main
// clock and the periodic interrupt of the EG3200.
//
// The Z80 can be switched between a slow (TRS-80 compatible) and a fast
// clock. The periodic interrupt is derived from the 4MHz crystal.
package clocks

// CPU clock speeds in MHz.
const (
	Fast = 4.0
	Slow = 1.77
)

// MainClock is the crystal frequency in Hz.
const MainClock = 4000000

// CyclesPerInterrupt is the number of main clock cycles between periodic
// interrupts.
const CyclesPerInterrupt = 100000

// InterruptRate is the frequency of the periodic interrupt in Hz (25ms).
const InterruptRate = MainClock / CyclesPerInterrupt

// InterruptsPerSecond is the number of periodic interrupts counted by the
// RTC before it advances by one second.
const InterruptsPerSecond = InterruptRate
