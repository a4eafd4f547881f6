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

// Package paths contains functions to prepare paths to eg3200 resources, such
// as the preferences file and speaker recordings.
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// For development builds the base path is ".eg3200" in the current working
// directory. Release builds (build tag "release") use the eg3200 directory in
// the user's config directory. The package uses os.UserConfigDir() from the Go
// standard library for this.
package paths
