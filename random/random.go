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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Cycles is implemented by the emulation so that random numbers are sensitive
// to the time within the emulation rather than the time on the host.
type Cycles interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	cycles Cycles

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. A
// nil Cycles source is allowed and is treated as cycle zero.
func NewRandom(cycles Cycles) *Random {
	return &Random{
		cycles: cycles,
	}
}

// SetCycles changes the source of the emulation time.
func (rnd *Random) SetCycles(cycles Cycles) {
	rnd.cycles = cycles
}

func (rnd *Random) rand(salt uint64) *rand.Rand {
	var c uint64
	if rnd.cycles != nil {
		c = rnd.cycles.Cycles()
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewPCG(c, salt))
	}
	return rand.New(rand.NewPCG(baseSeed+c, salt))
}

// IntN returns a random number in the range [0,n). The result for a given n
// is the same for every call made at the same emulation time.
func (rnd *Random) IntN(n int) int {
	return rnd.rand(uint64(n)).IntN(n)
}

// Fill the slice with random bytes. Used to randomise the contents of RAM on
// reset.
func (rnd *Random) Fill(b []uint8) {
	r := rnd.rand(uint64(len(b)))
	for i := range b {
		b[i] = uint8(r.UintN(256))
	}
}
