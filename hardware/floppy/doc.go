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

// Package floppy connects an external floppy disk controller and drives to
// the EG3200. The controller chip itself (an FD1771 for single density and an
// FD1793 for double density) is not emulated by this package: a host supplies
// an implementation of the Controller interface and of the Drive interface.
//
// The Interface type decodes the writes that the EG3200 board intercepts
// before they reach the controller: the density select written to the command
// register, the drive size written to the sector register and the drive
// select/motor register. It also runs the motor timeout, which is counted
// down by the periodic interrupt.
//
// With nothing attached the interface behaves as if no controller is fitted.
package floppy
