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

// Package speaker records the clicks of the loudspeaker in the EG3200
// keyboard unit. Every access to the speaker address toggles the speaker
// cone. The toggles are recorded with the CPU cycle at which they happened
// and can be rendered to PCM samples.
package speaker

import (
	"fmt"
	"io"

	"github.com/eacaemu/eg3200/wavwriter"
)

// MaxToggles is the default maximum number of toggles recorded. Older
// toggles are discarded when the limit is reached.
const MaxToggles = 1 << 20

// Sample values for the two cone positions.
const (
	High = 0xc0
	Low  = 0x40
)

// Speaker is the state of the loudspeaker.
type Speaker struct {
	level bool

	// level at the time of the first entry in the toggles list
	initial bool
	toggles []uint64

	limit int
}

// NewSpeaker is the preferred method of initialisation for the Speaker type.
func NewSpeaker() *Speaker {
	return &Speaker{
		limit: MaxToggles,
	}
}

func (spk *Speaker) String() string {
	return fmt.Sprintf("level=%v toggles=%d", spk.level, len(spk.toggles))
}

// Reset the speaker to the low position and forget all toggles.
func (spk *Speaker) Reset() {
	spk.level = false
	spk.Clear()
}

// Clear forgets all toggles. The current level is kept.
func (spk *Speaker) Clear() {
	spk.initial = spk.level
	spk.toggles = spk.toggles[:0]
}

// SetLimit changes the maximum number of toggles that are recorded.
func (spk *Speaker) SetLimit(limit int) {
	spk.limit = max(1, limit)
	spk.trim()
}

func (spk *Speaker) trim() {
	if len(spk.toggles) <= spk.limit {
		return
	}
	n := len(spk.toggles) - spk.limit
	if n%2 == 1 {
		spk.initial = !spk.initial
	}
	spk.toggles = spk.toggles[n:]
}

// Toggle the speaker at the CPU cycle. Cycle values must not decrease.
func (spk *Speaker) Toggle(cycle uint64) {
	spk.level = !spk.level
	spk.toggles = append(spk.toggles, cycle)
	spk.trim()
}

// Level returns true if the speaker is in the high position.
func (spk *Speaker) Level() bool {
	return spk.level
}

// Toggles returns the CPU cycles of every recorded toggle.
func (spk *Speaker) Toggles() []uint64 {
	return spk.toggles
}

// Render the recorded toggles as unsigned 8-bit samples. The samples cover the
// CPU cycles from the first toggle to the end cycle. clock is the CPU clock
// in Hz.
func (spk *Speaker) Render(clock float64, sampleRate int, end uint64) []uint8 {
	if len(spk.toggles) == 0 || clock <= 0 || sampleRate <= 0 {
		return nil
	}

	start := spk.toggles[0]
	if end <= start {
		return nil
	}

	cyclesPerSample := clock / float64(sampleRate)
	n := int(float64(end-start) / cyclesPerSample)
	samples := make([]uint8, n)

	level := spk.initial
	t := 0
	for i := range samples {
		c := start + uint64(float64(i)*cyclesPerSample)
		for t < len(spk.toggles) && spk.toggles[t] <= c {
			level = !level
			t++
		}
		if level {
			samples[i] = High
		} else {
			samples[i] = Low
		}
	}

	return samples
}

// WriteWAV renders the recorded toggles and writes them as a WAV stream.
func (spk *Speaker) WriteWAV(ws io.WriteSeeker, clock float64, sampleRate int, end uint64) error {
	samples := spk.Render(clock, sampleRate, end)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	return wavwriter.Encode(ws, sampleRate, data)
}
