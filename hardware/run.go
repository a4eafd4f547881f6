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

package hardware

import (
	"time"

	"github.com/eacaemu/eg3200/hardware/clocks"
)

// Govern is the value returned by the continueCheck function of Run().
type Govern int

// List of valid Govern values.
const (
	Running Govern = iota
	Ending
)

// InterruptPeriod is the host time between periodic interrupts.
const InterruptPeriod = time.Second / clocks.InterruptsPerSecond

// Run advances the machine one interrupt period at a time. The continueCheck
// function is called after every period and the machine stops when it
// returns Ending or an error.
//
// Run does not sleep. If the machine should run in real time then the
// continueCheck function should wait until the period has passed.
func (m *Machine) Run(continueCheck func() (Govern, error)) error {
	if continueCheck == nil {
		continueCheck = func() (Govern, error) { return Running, nil }
	}

	for {
		m.Advance(m.nextInterrupt - m.cycles)

		state, err := continueCheck()
		if err != nil {
			return err
		}
		if state == Ending {
			return nil
		}
	}
}

// RealTime returns a continueCheck function for Run() that paces the machine
// to the host clock. The done function is checked after every period and
// the machine stops when it returns true.
func RealTime(done func() bool) func() (Govern, error) {
	next := time.Now()
	return func() (Govern, error) {
		next = next.Add(InterruptPeriod)
		if d := time.Until(next); d > 0 {
			time.Sleep(d)
		}
		if done != nil && done() {
			return Ending, nil
		}
		return Running, nil
	}
}
