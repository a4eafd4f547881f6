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

package easyterm

import (
	"fmt"
	"time"

	"github.com/eacaemu/eg3200/curated"
)

// TerminalError is the error pattern for problems with the terminal.
const TerminalError = "easyterm: %v"

// Terminal is not supported on windows.
type Terminal struct{}

// Open always fails on windows.
func Open(_ time.Duration) (*Terminal, error) {
	return nil, curated.Errorf(TerminalError, fmt.Errorf("not supported on windows"))
}

// CleanUp does nothing on windows.
func (pt *Terminal) CleanUp() error {
	return nil
}

// ReadKey does nothing on windows.
func (pt *Terminal) ReadKey() (Key, bool, error) {
	return Key{}, false, nil
}
