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

// Package revision describes the differences between the hardware variants
// supported by the emulation. Some signals differ in polarity between
// variants and are recorded here rather than being hardcoded in the device
// emulation.
package revision

import (
	"fmt"
	"strings"

	"github.com/eacaemu/eg3200/curated"
)

// Polarity of a control bit.
type Polarity int

// List of valid Polarity values.
const (
	// a bit value of 0 enables the function
	ActiveLow Polarity = iota

	// a bit value of 1 enables the function
	ActiveHigh
)

func (p Polarity) String() string {
	switch p {
	case ActiveLow:
		return "active low"
	case ActiveHigh:
		return "active high"
	}
	return "unknown polarity"
}

// Active returns true if the bit value enables the function.
func (p Polarity) Active(bit bool) bool {
	if p == ActiveHigh {
		return bit
	}
	return !bit
}

// Invert returns the opposite polarity.
func (p Polarity) Invert() Polarity {
	if p == ActiveHigh {
		return ActiveLow
	}
	return ActiveHigh
}

// ID identifies a hardware revision.
type ID string

// List of supported revisions.
const (
	EG3200 ID = "eg3200"
	Genie3 ID = "genie3"
	PG631  ID = "pg631"
)

// Revision details the hardware differences of a variant.
type Revision struct {
	ID          ID
	Description string

	// polarity of the bits written to the bank select port. with ActiveLow a
	// zero bit selects the bank (ROM, video buffer or devices) and a one bit
	// selects the underlying RAM
	BankSelect Polarity

	// polarity of the drive select bits in the motor register
	DriveSelect Polarity

	// number of drives connected to the floppy controller
	DriveCount int

	// bits in the RTC mode port for the read and write lines
	RTCRead  uint8
	RTCWrite uint8

	// value returned by reads of unmapped memory
	Unmapped uint8
}

func (r Revision) String() string {
	return fmt.Sprintf("%s (%s)", r.ID, r.Description)
}

// SwapRTCBits exchanges the read and write bits of the RTC mode port.
func (r *Revision) SwapRTCBits() {
	r.RTCRead, r.RTCWrite = r.RTCWrite, r.RTCRead
}

var eg3200 = Revision{
	ID:          EG3200,
	Description: "EACA EG3200",
	BankSelect:  ActiveLow,
	DriveSelect: ActiveHigh,
	DriveCount:  2,
	RTCRead:     0x40,
	RTCWrite:    0x80,
	Unmapped:    0x00,
}

// List of all supported revisions.
var List = []Revision{
	eg3200,
	func() Revision {
		r := eg3200
		r.ID = Genie3
		r.Description = "TCS Video Genie III"
		return r
	}(),
	{
		ID:          PG631,
		Description: "Siemens PG631",
		Unmapped:    0xff,
	},
}

// UnknownRevision is the error pattern returned by Lookup().
const UnknownRevision = "revision: unknown revision (%s)"

// Lookup the revision by name. The lookup is case insensitive.
func Lookup(name string) (Revision, error) {
	id := ID(strings.ToLower(strings.TrimSpace(name)))
	for _, r := range List {
		if r.ID == id {
			return r, nil
		}
	}
	return Revision{}, curated.Errorf(UnknownRevision, name)
}
