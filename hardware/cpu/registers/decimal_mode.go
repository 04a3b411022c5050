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

package registers

// conversion tables between packed BCD and binary. every byte value has an
// entry in bcdToBinary, even those that are not valid BCD, with the high
// nibble contributing tens and the low nibble contributing units
var bcdToBinary [256]int
var binaryToBCD [100]uint8

func init() {
	for i := range bcdToBinary {
		bcdToBinary[i] = (i>>4)*10 + (i & 0x0f)
	}
	for i := range binaryToBCD {
		binaryToBCD[i] = uint8((i/10)<<4 | (i % 10))
	}
}

// AddDecimal adds value to register as though both are decimal
// representations. Returns new carry state, zero, overflow, sign bit
// information.
//
// The zero and sign flags are computed from the binary intermediate result
// and not from the packed BCD result. Overflow is computed in the same way as
// for binary addition but using the intermediate result.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry bool, zero bool, overflow bool, sign bool) {
	a := r.value

	v := bcdToBinary[a] + bcdToBinary[val]
	if carry {
		v++
	}

	rcarry = v > 99

	t := uint8(v)
	zero = t == 0
	sign = t&0x80 == 0x80
	overflow = (^(a ^ val) & (a ^ t) & 0x80) != 0

	r.value = binaryToBCD[v%100]

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both are decimal
// representations. Returns new carry state, zero, overflow, sign bit
// information. As with binary subtraction, the carry has the meaning of "not
// borrow".
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry bool, zero bool, overflow bool, sign bool) {
	a := r.value

	v := bcdToBinary[a] - bcdToBinary[val]
	if !carry {
		v--
	}

	rcarry = v >= 0

	t := uint8(v)
	zero = t == 0
	sign = t&0x80 == 0x80
	overflow = ((a ^ val) & (a ^ t) & 0x80) != 0

	r.value = binaryToBCD[((v%100)+100)%100]

	return rcarry, zero, overflow, sign
}
