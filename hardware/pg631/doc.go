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

// Package pg631 is the memory map of the Siemens PG631 programming unit. The
// PG631 shares the 6845 CRTC with the EG3200 but is otherwise a different
// machine built around an 8085.
//
// Only the memory map is modelled. The peripheral chips behind the address
// decoder at FE00 are stubs that log their accesses.
//
//	0000-7fff  ROM (sixteen 2716 EPROMs)
//	e000-efff  RAM
//	f000-f7ff  video RAM
//	f800-f8ff  8155 RAM
//	f900-f9ff  8155 ports and timer
//	fa00-fb7f  open bus
//	fb80-fbff  reads 0xff
//	fc00-fdff  open bus
//	fe00-fe0f  peripheral decoder (8279, 8251, 8259)
//	fe10-fe7f  open bus
//	fe80-feff  reads 0xff
//	ff00-fffd  open bus
//	fffe-ffff  6845 CRTC address and data registers
//
// Open bus reads return the low byte of the address. Any other address reads
// as 0xff.
package pg631
