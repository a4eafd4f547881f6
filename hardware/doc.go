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

// Package hardware is the base package for the EG3200 emulation. The Machine
// type collects the memory, the bank switching and the peripheral chips and
// presents them to a host as a memory bus, an I/O port bus and a periodic
// interrupt.
//
// The CPU is not part of the emulation. A host drives the machine by calling
// Read() and Write() for memory accesses, In() and Out() for port accesses
// and Advance() as CPU cycles pass. Advance() raises the 40Hz periodic
// interrupt at the correct cycle. Hosts with their own timer can call
// PeriodicInterrupt() directly instead.
//
// The floppy controller, the floppy drives and the printer are external
// devices and are connected with AttachController(), AttachDrive() and
// AttachPrinter(). The host CPU's interrupt line is connected with
// AttachInterruptLine().
package hardware
