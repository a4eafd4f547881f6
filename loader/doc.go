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

// Package loader reads ROM images and /CMD files from local files or over
// HTTP.
//
// The kind of data is decided by the filename extension when the loader is
// created:
//
//	ld := loader.NewLoader("roms/eg3200.rom")
//	if err := ld.Load(); err != nil {
//		...
//	}
//
// After a successful Load() the Hash field is the SHA1 of the data. Setting
// the Hash field before loading makes Load() fail if the data does not match.
package loader
