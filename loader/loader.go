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

package loader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/eacaemu/eg3200/curated"
)

// Kind is the type of data being loaded.
type Kind int

// List of valid Kind values.
const (
	ROM Kind = iota
	CMD
)

func (k Kind) String() string {
	switch k {
	case ROM:
		return "ROM"
	case CMD:
		return "CMD"
	}
	return "unknown"
}

// FileExtensions is the list of file extensions recognised by the loader.
var FileExtensions = [...]string{".ROM", ".BIN", ".CMD"}

// List of error patterns returned by the loader package.
const (
	LoadError         = "loader: %v"
	UnsupportedScheme = "loader: unsupported URL scheme (%s)"
	UnexpectedHash    = "loader: unexpected hash value (%s)"
)

// Loader is used to specify the file to load.
type Loader struct {
	Filename string
	Kind     Kind

	// expected hash of the data. empty string indicates that the hash is
	// unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
// Files with the .CMD extension are loaded as CMD. Everything else is a ROM.
func NewLoader(filename string) Loader {
	ld := Loader{
		Filename: filename,
		Kind:     ROM,
	}
	if strings.ToUpper(filepath.Ext(filename)) == ".CMD" {
		ld.Kind = CMD
	}
	return ld
}

// ShortName returns the filename without the path or extension.
func (ld Loader) ShortName() string {
	s := filepath.Base(ld.Filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the data. Filenames with an http or https scheme are fetched over the
// network. Loading an already loaded Loader does nothing.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []uint8

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, fmt.Errorf("%s: %s", ld.Filename, resp.Status))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		var err error
		data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		// single letter schemes are windows drive letters
		if len(scheme) == 1 {
			var err error
			data, err = os.ReadFile(ld.Filename)
			if err != nil {
				return curated.Errorf(LoadError, err)
			}
			break
		}
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}
