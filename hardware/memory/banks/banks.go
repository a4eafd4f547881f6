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

// Package banks decodes the value written to the bank select port of the
// EG3200 into the selected bank of each switchable window.
//
// Each of the low four bits of the port controls one window. Bank zero of a
// window is the device (ROM, video buffer or disk/keyboard devices) and bank
// one is the RAM underneath. With the EG3200 the bits are active low: a zero
// bit enables the device.
package banks

import (
	"fmt"
	"strings"

	"github.com/eacaemu/eg3200/hardware/revision"
)

// Selector identifies a switchable window.
type Selector int

// List of valid Selector values. The value of the selector is the bit
// position in the bank select port.
const (
	ROM Selector = iota
	Video0
	Video1
	DiskKeyboard
	NumSelectors
)

func (s Selector) String() string {
	switch s {
	case ROM:
		return "rom"
	case Video0:
		return "video0"
	case Video1:
		return "video1"
	case DiskKeyboard:
		return "dk"
	}
	return "unknown selector"
}

// Bank indexes of a switchable window.
const (
	Device = 0
	RAM    = 1
)

// UnusedBits is the mask of the bank select bits that do not control a
// window.
const UnusedBits = 0xf0

// State is the selected bank for every switchable window.
type State [NumSelectors]int

// PowerOn returns the state of the windows after a reset: ROM visible, video
// bank 0 active, video bank 1 switched out and the disk/keyboard devices
// visible.
func PowerOn() State {
	return State{
		ROM:          Device,
		Video0:       Device,
		Video1:       RAM,
		DiskKeyboard: Device,
	}
}

func (s State) String() string {
	b := strings.Builder{}
	for i := range NumSelectors {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%s=%d", i, s[i]))
	}
	return b.String()
}

// Decode the bank select value. Bits 4 to 7 are ignored.
func Decode(v uint8, pol revision.Polarity) State {
	var s State
	for k := range NumSelectors {
		if pol.Active((v>>k)&0x01 == 0x01) {
			s[k] = Device
		} else {
			s[k] = RAM
		}
	}
	return s
}

// Encode is the inverse of Decode(). Bits 4 to 7 of the result are zero.
func Encode(s State, pol revision.Polarity) uint8 {
	var v uint8
	for k := range NumSelectors {
		// the bit value that enables the device
		dev := pol == revision.ActiveHigh
		if (s[k] == Device) == dev {
			v |= 0x01 << k
		}
	}
	return v
}

// Decoder tracks the state of the bank select port.
type Decoder struct {
	pol   revision.Polarity
	state State
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// The decoder starts in the power on state.
func NewDecoder(pol revision.Polarity) *Decoder {
	return &Decoder{
		pol:   pol,
		state: PowerOn(),
	}
}

func (d *Decoder) String() string {
	return d.state.String()
}

// Reset to the power on state.
func (d *Decoder) Reset() {
	d.state = PowerOn()
}

// Polarity of the decoder.
func (d *Decoder) Polarity() revision.Polarity {
	return d.pol
}

// State returns the current state.
func (d *Decoder) State() State {
	return d.state
}

// Write a value to the bank select port. Returns the new state and whether
// the state has changed. Writing the same value repeatedly reports a change
// at most once.
func (d *Decoder) Write(v uint8) (State, bool) {
	s := Decode(v, d.pol)
	changed := s != d.state
	d.state = s
	return s, changed
}

// Changes returns the selectors that differ between two states.
func Changes(from State, to State) []Selector {
	var c []Selector
	for k := range NumSelectors {
		if from[k] != to[k] {
			c = append(c, k)
		}
	}
	return c
}
