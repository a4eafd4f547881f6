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

package random_test

import (
	"testing"

	"github.com/eacaemu/eg3200/random"
	"github.com/eacaemu/eg3200/test"
)

type clock struct {
	cycles uint64
}

func (c *clock) Cycles() uint64 {
	return c.cycles
}

func TestRandom(t *testing.T) {
	c := &clock{cycles: 100000}
	a := random.NewRandom(c)
	b := random.NewRandom(c)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.IntN(i), b.IntN(i))
	}

	// results stay in range
	for i := 1; i < 256; i++ {
		v := a.IntN(i)
		test.ExpectSuccess(t, v >= 0 && v < i)
	}
}

func TestFill(t *testing.T) {
	c := &clock{}
	a := random.NewRandom(c)
	a.ZeroSeed = true

	x := make([]uint8, 1024)
	y := make([]uint8, 1024)
	a.Fill(x)
	a.Fill(y)
	test.ExpectEquality(t, string(x), string(y))

	// different emulation time gives different contents
	c.cycles = 4000000
	a.Fill(y)
	test.ExpectInequality(t, string(x), string(y))
}

func TestNilCycles(t *testing.T) {
	a := random.NewRandom(nil)
	a.ZeroSeed = true
	b := random.NewRandom(nil)
	b.ZeroSeed = true
	test.ExpectEquality(t, a.IntN(1000), b.IntN(1000))
}
