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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function checks whether an error was created with a specific
// pattern. Packages export the patterns they use as constants so that callers
// can test for them. For example, the cpu package:
//
//	const UnknownOpcode = "cpu: unknown opcode (%#02x) at (%#04x)"
//
//	if curated.Is(err, cpu.UnknownOpcode) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("loader: %v", err)
//	f := curated.Errorf("monitor: %v", e)
//
//	curated.Has(f, "loader: %v") == true
//	curated.Is(f, "loader: %v") == false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors.
//
// The Error() implementation normalises the error chain such that it does not
// contain duplicate adjacent parts. Parts of a chain are separated by the
// sub-string ": ". This means that wrapping an error with the same prefix more
// than once does not result in a stuttering message:
//
//	monitor: monitor: breakpoint condition
//
// is printed as:
//
//	monitor: breakpoint condition
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library see any error values used as placeholder values.
package curated
