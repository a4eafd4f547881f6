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

// Package cmdfile parses and loads TRS-80 style /CMD files. A /CMD file is a
// sequence of records, each starting with a type byte and a length byte:
//
//	01  object code. a two byte little endian load address followed by
//	    length-2 bytes of data. a length of 2 means 256 bytes of data
//	02  transfer address. two bytes, little endian. the end of the file
//	05  load module header. the name of the program
//	1f  copyright block
//
// Records of any other type are skipped. For record types other than object
// code the length byte is the number of bytes that follow, with zero meaning
// 256.
//
// Parse() reads the file into a File value, which can then be loaded into a
// machine with the Load() function. Loading writes every byte through the
// machine's normal write path, so bytes that land on ROM are lost exactly as
// they would be on the real machine.
package cmdfile
