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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. The function does not test for this.
//
// Used to generate filenames for speaker recordings and printer captures.
// Format of returned string is:
//
//	prepend_name_YYYYMMDD_HHMMSS.ext
//
// If name is empty the name section is omitted. If ext is empty there is no
// extension.
func UniqueFilename(prepend string, name string, ext string, now time.Time) string {
	fn := []string{prepend}
	if n := strings.TrimSpace(name); n != "" {
		fn = append(fn, n)
	}
	fn = append(fn, now.Format("20060102_150405"))

	s := strings.Join(fn, "_")
	if ext != "" {
		s = fmt.Sprintf("%s.%s", s, strings.TrimPrefix(ext, "."))
	}
	return s
}
