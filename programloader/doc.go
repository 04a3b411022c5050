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

// Package programloader is used to specify the program image that is to be
// loaded into the memory of the emulated 6502.
//
// A program image is a flat binary of 6502 machine code. It has no header and
// is loaded at address zero.
//
// When the program is ready to be loaded the Load() function should be used.
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	pl := programloader.Loader{
//		Filename: "programs/fib.bin",
//	}
//
// It is preferred however that the NewLoader() function is used.
package programloader
