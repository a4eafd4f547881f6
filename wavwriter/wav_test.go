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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eacaemu/eg3200/test"
	"github.com/eacaemu/eg3200/wavwriter"
	"github.com/go-audio/wav"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.wav")

	aw, err := wavwriter.New(fn, 8000)
	test.DemandSuccess(t, err)

	samples := make([]uint8, 800)
	for i := range samples {
		if (i/10)%2 == 0 {
			samples[i] = 0xc0
		} else {
			samples[i] = 0x40
		}
	}
	aw.SetAudio(samples)
	test.ExpectEquality(t, aw.Len(), 800)
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, dec.SampleRate, 8000)
	test.ExpectEquality(t, dec.NumChans, 1)
	test.ExpectEquality(t, dec.BitDepth, wavwriter.BitDepth)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), 800)
}

func TestBadSampleRate(t *testing.T) {
	_, err := wavwriter.New("unused.wav", 0)
	test.ExpectFailure(t, err)
}
