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

// Package script runs Lua scripts against an EG3200 machine. Scripts drive the
// machine through the bus, the ports and the keyboard, in the same way that a
// program running on the CPU would.
//
// The following functions are available to scripts. Addresses, ports and
// values are numbers.
//
//	read(address)          value, with side effects
//	write(address, value)
//	peek(address)          value, without side effects
//	poke(address, value)
//	inp(port)              value
//	out(port, value)
//	advance(cycles)        number of periodic interrupts raised
//	interrupt()            raise the periodic interrupt
//	irq()                  interrupt status, without clearing it
//	cycles()               cycle count
//	reset()
//	clock()                the RTC as a string
//	press(key)             see the keyboard package for key names
//	release(key)
//	releaseall()
//	screen()               the text of the screen
//	toggles()              number of speaker toggles
//	snapshot()             id of a new snapshot
//	restore(id)
//	log(message)
//
// The print() function writes to the output given to NewScript().
package script
