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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// Errorf() function with a specific pattern. For example:
//
//	e := curated.Errorf("cmdfile: truncated block at %#04x", offset)
//
//	if curated.Is(e, "cmdfile: truncated block at %#04x") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("rom: %v", curated.Errorf(NoROM))
//
//	if curated.Has(e, NoROM) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). In other words, whether the error is 'expected' or
// 'unexpected'.
//
// The Error() function normalises the error chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": ", so a chain of
//
//	quickload: quickload: truncated file
//
// is reported as
//
//	quickload: truncated file
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented, in the package that creates them.
package curated
