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

// Package crtc is a register model of the 6845 CRT controller. The controller
// is not clocked: the registers are stored and the display geometry is
// derived from them on demand.
//
// The CPU selects a register by writing to the address port and then writes
// the value to the data port. Only the cursor and light pen registers can be
// read back.
package crtc
