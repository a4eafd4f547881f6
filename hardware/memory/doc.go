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

// Package memory implements the address decoding of the emulated machines.
//
// Backing storage is divided into areas (RAM, ROM, video buffers and device
// areas), each identified by a BufferID. The address space is divided into
// windows. Each window has one or more banks and each bank names the area to
// read from and the area to write to:
//
//	CPU ---- address ---- window ---- selected bank ---- area
//
// Lookup of the window for an address uses a flat table of every address in
// the 64K address space, so bank switching is nothing more than changing the
// selected bank of a window. The change takes effect for the very next
// access.
//
// Read() and Write() are the operations used by the CPU. Peek() and Poke()
// are for debugging and avoid the side effects of device areas that
// implement the Peeker interface.
package memory
