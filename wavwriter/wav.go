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

// Package wavwriter writes 8-bit mono audio to a WAV file. Audio data is
// buffered in memory in its entirety and written to disk when EndMixing() is
// called. It is therefore only suitable for short recordings.
package wavwriter

import (
	"io"
	"os"

	"github.com/eacaemu/eg3200/curated"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// BitDepth of the WAV data.
const BitDepth = 8

// WavWriter buffers audio and writes it to a file.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample rate must be positive")
	}
	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0),
	}
	return aw, nil
}

// SetAudio adds unsigned 8-bit samples to the buffer.
func (aw *WavWriter) SetAudio(samples []uint8) {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
}

// Len returns the number of buffered samples.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// EndMixing writes the buffered audio to the file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	return Encode(f, aw.sampleRate, aw.buffer)
}

// Encode writes unsigned 8-bit mono samples as a WAV stream.
func Encode(ws io.WriteSeeker, sampleRate int, samples []int) error {
	enc := wav.NewEncoder(ws, sampleRate, BitDepth, 1, 1)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           samples,
		SourceBitDepth: BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	return nil
}
