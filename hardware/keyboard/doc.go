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

// Package keyboard implements the key matrix of the EG3200.
//
// The first eight rows are laid out as the TRS-80 Model I keyboard. The CPU
// selects rows with the low byte of the address and the result is the OR of
// every selected row. Three further rows hold the function keys and the
// numeric block. They are selected by specific addresses rather than by a bit
// in the address.
//
// Keys are identified by name. Runes can be translated to a key and whether
// shift is needed with LookupRune().
package keyboard
