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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different flags
// for each mode.
//
// Arguments are given with NewArgs() and then parsed with Parse(), which takes
// no arguments. This allows the same argument list to be parsed in layers:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MAP", "CLOCK", "SCRIPT")
//	logEcho := md.AddBool("log", false, "echo log to stdout")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After the first Parse() the selected mode is returned by Mode(). The mode
// can then add its own flags and sub-modes after a call to NewMode():
//
//	switch md.Mode() {
//	case "CLOCK":
//		md.NewMode()
//		seconds := md.AddInt("seconds", 60, "number of seconds to run the clock")
//		md.Parse()
//		runClock(*seconds, md.RemainingArgs())
//	}
//
// The first sub-mode in the list is the default and is selected if the first
// non-flag argument is not a sub-mode. Sub-mode comparisons are case
// insensitive.
package modalflag
