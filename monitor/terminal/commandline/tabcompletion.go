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
	"sort"
	"strings"
)

// TabCompletion keeps track of the most recent tab completion attempt. It
// implements the terminal.TabCompletion interface.
//
// Completion options for the first word of the input are the command names.
// Completion options for the second word depend on the command in the first
// word.
type TabCompletion struct {
	commands  []string
	arguments map[string][]string

	options    []string
	lastOption int

	// lastGuess is the last string generated and returned by the Complete()
	// function. we use it to help decide whether to start a new completion
	// session
	lastGuess string
}

// NewTabCompletion is the preferred method of initialisation for
// TabCompletion. The arguments map is keyed by upper case command name.
func NewTabCompletion(commands []string, arguments map[string][]string) *TabCompletion {
	tc := &TabCompletion{
		commands:  make([]string, len(commands)),
		arguments: make(map[string][]string),
	}

	for i, c := range commands {
		tc.commands[i] = strings.ToUpper(c)
	}
	sort.Strings(tc.commands)

	for k, v := range arguments {
		a := make([]string, len(v))
		for i := range v {
			a[i] = strings.ToUpper(v[i])
		}
		sort.Strings(a)
		tc.arguments[strings.ToUpper(k)] = a
	}

	return tc
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the closest match in the list of allowed strings. Calling
// Complete() again with the returned string cycles through the other
// options.
func (tc *TabCompletion) Complete(input string) string {
	// split input into words
	p, _ := tokeniseInput(input)
	if len(p) == 0 {
		return input
	}

	// a trailing space means we're completing a new, empty word
	if strings.HasSuffix(input, " ") && input != tc.lastGuess {
		p = append(p, "")
	}

	if input == tc.lastGuess {
		// if there was only one option in the option list then return
		// immediately
		if len(tc.options) <= 1 {
			return input
		}

		// step to next option
		tc.lastOption++
		if tc.lastOption >= len(tc.options) {
			tc.lastOption = 0
		}
	} else {
		// this is a new tabcompletion session
		tc.options = tc.options[:0]
		tc.lastOption = 0

		var candidates []string
		switch len(p) {
		case 1:
			candidates = tc.commands
		case 2:
			candidates = tc.arguments[strings.ToUpper(p[0])]
		}

		trigger := strings.ToUpper(p[len(p)-1])
		for _, c := range candidates {
			if strings.HasPrefix(c, trigger) {
				tc.options = append(tc.options, c)
			}
		}

		// no completion options. return input unchanged
		if len(tc.options) == 0 {
			return input
		}
	}

	// change the last word in the supplied input to the chosen option
	p[len(p)-1] = tc.options[tc.lastOption]

	// rejoin all parts of the input along with the altered last word
	tc.lastGuess = strings.Join(p, " ") + " "

	return tc.lastGuess
}

// Reset is used to clear an outstanding completion session.
func (tc *TabCompletion) Reset() {
	tc.lastGuess = ""
}
