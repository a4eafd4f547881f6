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

// Package prefs facilitates the storage of preferential values in the eg3200
// system. It is a way of storing values between sessions.
//
// To create a new preference value, create an instance of the required type
// and add it to a Disk instance, along with a key name:
//
//	var timeout prefs.Int
//	dsk, _ := prefs.NewDisk("/home/user/.eg3200/preferences")
//	dsk.Add("hardware.motor.timeout", &timeout)
//
// A call to Load() sets the value from the file. A call to Save() writes every
// value added to the Disk instance, along with values in the file that are not
// added to that instance.
//
// Hooks can be registered with SetHookPre() and SetHookPost(), which is useful
// for values that must be forwarded to the emulation when they change.
//
// The command line stack allows values to be set for a single session:
//
//	prefs.PushCommandLineStack("hardware.rtc.24hour::true; hardware.revision::pg631")
//
// Values on the top of the stack are consumed as each key is added to a Disk
// or loaded from file.
package prefs
