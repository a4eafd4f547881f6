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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect* functions record a test failure and allow the test to continue.
// The Demand* functions are the same but the failure is fatal. Demand should
// be used when the value being tested is used by later parts of the test and
// so must be correct. For example, testing that the lengths of two slices are
// equal before iterating over them in unison.
//
// ExpectSuccess and ExpectFailure test for success and failure under generic
// conditions. The documentation for those functions describe the currently
// supported types.
//
// It is worth describing how the success/failure functions handle the nil
// type because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This is because of how errors usually work (nil to indicate no error).
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
//
// All functions accept optional tags which are prefixed to the failure
// message. Useful when a test is run in a loop.
package test
