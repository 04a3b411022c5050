// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/monitor6502/curated"
	"github.com/jetsetilly/monitor6502/hardware/memory"
	"github.com/jetsetilly/monitor6502/logger"
)

// LoadError is the pattern of all errors returned by the programloader
// package.
const LoadError = "programloader: %v"

// Loader is used to specify the program image to load into memory.
type Loader struct {
	// filename of program to load. can be a http or https URL
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns a shortened version of the Loader filename.
func (pl Loader) ShortName() string {
	shortName := path.Base(pl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(pl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (pl Loader) HasLoaded() bool {
	return len(pl.Data) > 0
}

// Load the program data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (pl *Loader) Load() error {
	if len(pl.Data) > 0 {
		return nil
	}

	if pl.Filename == "" {
		return curated.Errorf(LoadError, "no program specified")
	}

	scheme := "file"

	url, err := url.Parse(pl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(pl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, fmt.Sprintf("unexpected response (%s)", resp.Status))
		}

		pl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		fallthrough

	case "":
		pl.Data, err = os.ReadFile(pl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		// a single letter scheme is probably a windows drive letter
		if len(scheme) == 1 {
			pl.Data, err = os.ReadFile(pl.Filename)
			if err != nil {
				return curated.Errorf(LoadError, err)
			}
			break // switch
		}
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(pl.Data) == 0 {
		return curated.Errorf(LoadError, "program is empty")
	}

	if len(pl.Data) > memory.Size {
		pl.Data = nil
		return curated.Errorf(LoadError, fmt.Sprintf("program is larger than memory (%d bytes)", memory.Size))
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(pl.Data))

	// check for hash consistency
	if pl.Hash != "" && pl.Hash != hash {
		pl.Data = nil
		return curated.Errorf(LoadError, "unexpected hash value")
	}

	pl.Hash = hash

	logger.Logf(logger.Allow, "programloader", "%s: %d bytes (sha1 %s)", pl.ShortName(), len(pl.Data), pl.Hash)

	return nil
}

// Attach loads the program if necessary and copies it into memory at
// address zero. The size of the image is recorded by the memory.
func (pl *Loader) Attach(mem *memory.Memory) error {
	err := pl.Load()
	if err != nil {
		return err
	}

	err = mem.Load(pl.Data, 0)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	return nil
}
