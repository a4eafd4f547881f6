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

// Package rtc implements the MSM832 style real time clock of the EG3200.
//
// The clock has 13 four-bit registers holding the time and date as BCD
// digits. Some registers have status flags in the bits not required by the
// digit:
//
//	R0, R1   seconds (ones, tens)
//	R2, R3   minutes (ones, tens)
//	R4, R5   hours (ones, tens in bits 0-1). R5 bit 2 is PM. bit 3 is 24 hour mode
//	R6       weekday 0-6
//	R7, R8   day of month (ones, tens in bits 0-1). R8 bit 2 is the leap year flag
//	R9, R10  month 1-12 (ones, tens)
//	R11, R12 year 00-99 (ones, tens)
//
// The CPU accesses the clock through two ports. A write to the address/data
// port latches a register address in the high nibble and a data value in the
// low nibble. The latched value is stored in the register only on the falling
// edge of the write bit of the mode port. A read of the address/data port
// returns the register at the latched address if the read bit of the mode
// port is set.
//
// The clock advances one second for every 40 periodic interrupts, by way of
// Tick(). It free-runs with the emulation and is not synchronised to the host
// clock after being seeded.
package rtc
