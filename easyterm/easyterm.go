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

//go:build !windows

package easyterm

import (
	"errors"
	"io"
	"time"

	"github.com/eacaemu/eg3200/curated"
	"github.com/pkg/term"
)

// TerminalError is the error pattern for problems with the terminal.
const TerminalError = "easyterm: %v"

// Terminal is the controlling terminal in cbreak mode.
type Terminal struct {
	t   *term.Term
	buf []byte
}

// Open the controlling terminal and put it into cbreak mode. Reads time out
// after the duration so that the caller can do other work between keypresses.
func Open(timeout time.Duration) (*Terminal, error) {
	t, err := term.Open("/dev/tty", term.CBreakMode, term.ReadTimeout(timeout))
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	return &Terminal{t: t}, nil
}

// CleanUp restores the terminal to the mode it was in before Open() and closes
// it.
func (pt *Terminal) CleanUp() error {
	if err := pt.t.Restore(); err != nil {
		pt.t.Close()
		return curated.Errorf(TerminalError, err)
	}
	if err := pt.t.Close(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// ReadKey returns the next keypress. The boolean is false if the read timed
// out with no keypress.
func (pt *Terminal) ReadKey() (Key, bool, error) {
	if len(pt.buf) == 0 {
		b := make([]byte, 16)
		n, err := pt.t.Read(b)
		if errors.Is(err, io.EOF) {
			return Key{}, false, nil
		}
		if err != nil {
			return Key{}, false, curated.Errorf(TerminalError, err)
		}
		pt.buf = b[:n]
	}

	k, n := Decode(pt.buf)
	pt.buf = pt.buf[n:]
	return k, n > 0, nil
}
