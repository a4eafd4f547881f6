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

// Package easyterm is a wrapper for "github.com/pkg/term". It opens the
// controlling terminal in cbreak mode and decodes the bytes read from it into
// keypresses.
//
// Decoding is separate from the terminal so that it can be used on any byte
// stream:
//
//	k, n := easyterm.Decode([]byte{27, '[', 'A'})
//	// k.Special == easyterm.CursorUp, n == 3
package easyterm
