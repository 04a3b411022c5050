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

package commandline

import (
	"strings"
	"unicode"
)

// Tokens represents tokenised input. This can be used to walk through the
// input string (using Get()) for eas(ier) parsing.
type Tokens struct {
	input  string
	tokens []string

	// position of each token in the input string
	offsets []int

	curr int
}

// IsEnd returns true if we're at the end of the token list.
func (tk Tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Remainder returns the input from the next token onwards. Spacing between
// the remaining tokens is kept as it was in the input.
func (tk Tokens) Remainder() string {
	if tk.curr >= len(tk.tokens) {
		return ""
	}
	return tk.input[tk.offsets[tk.curr]:]
}

// Get returns the next token in the list, and a success boolean. If the end
// of the token list has been reached, the function returns false instead of
// true.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Peek returns the next token in the list (without advancing the list), and a
// success boolean. If the end of the token list has been reached, the
// function returns false instead of true.
func (tk Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// TokeniseInput creates and returns a new Tokens instance.
func TokeniseInput(input string) *Tokens {
	// remove leading/trailing space
	input = strings.TrimSpace(input)

	tokens, offsets := tokeniseInput(input)
	return &Tokens{
		input:   input,
		tokens:  tokens,
		offsets: offsets,
	}
}

// tokeniseInput is the "raw" tokenising function (without wrapping everything
// up in a Tokens instance). used by TokeniseInput and anywhere else where we
// need to divide input into tokens (eg. TabCompletion.Complete()). the second
// return value is the byte offset of each token in the input
func tokeniseInput(input string) ([]string, []int) {
	var tokens []string
	var offsets []int

	start := -1
	for i, r := range input {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, input[start:i])
				offsets = append(offsets, start)
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, input[start:])
		offsets = append(offsets, start)
	}

	return tokens, offsets
}
