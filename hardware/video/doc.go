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

// Package video decodes the EG3200 video memory into a text view of the
// display. Pixel rendering is not attempted: characters are translated to
// runes and block graphics to the equivalent Unicode sextant characters.
//
// The EG3200 has 2K of video memory, presented to the CPU as two 1K windows.
// The CRTC start address register gives the offset of the first character and
// the CRTC geometry gives the number of rows and columns.
//
// The video mode port selects how characters with bit 7 set are displayed.
// Normally they are block graphics, a two by three grid of pixels where bit
// 0 is the top left pixel and bit 5 the bottom right. With inverse video
// selected they are shown as the inverse of the character in the low seven
// bits.
package video
