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

package colorterm

import (
	"io"
	"unicode"

	"github.com/jetsetilly/monitor6502/curated"
	"github.com/jetsetilly/monitor6502/monitor/terminal"
	"github.com/jetsetilly/monitor6502/monitor/terminal/colorterm/easyterm"
	"github.com/jetsetilly/monitor6502/monitor/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	var input []rune
	cursor := 0
	history := len(ct.commandHistory)

	// the latest input is stored while we scroll through history. we don't
	// want to lose what we've typed in case the user wants to resume where we
	// left off
	var buffInput []rune

	// the method for cursor placement is as follows:
	//	1. for each iteration in the loop
	//	2. store current cursor position
	//	3. clear the current line
	//	4. output the prompt
	//	5. output the input buffer
	//	6. restore the cursor position
	//
	// for this to work we need to place the cursor in its initial position
	p := prompt.String()
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(ansi.CursorMove(len(p)))

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint("\r")
		if prompt.Type == terminal.PromptTypeHalted {
			ct.EasyTerm.TermPrint(ansi.PenColor["red"])
		} else {
			ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
		}
		ct.EasyTerm.TermPrint(p)
		ct.EasyTerm.TermPrint(ansi.NormalPen)
		ct.EasyTerm.TermPrint(string(input))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		// any key other than tab ends the current tab completion session
		if r != easyterm.KeyTab && ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := []rune(ct.tabCompletion.Complete(string(input[:cursor])))

				// append everything after the cursor to the completed string
				d := len(s) - cursor
				input = append(s, input[cursor:]...)

				// advance cursor to end of completed word
				ct.EasyTerm.TermPrint(ansi.CursorMove(d))
				cursor += d
			}

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeySuspend:
			ct.EasyTerm.TermPrint("\r\n")
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyEndOfTransmit:
			if len(input) == 0 {
				ct.EasyTerm.TermPrint("\r\n")
				return "", io.EOF
			}

		case easyterm.KeyCarriageReturn:
			ct.addHistory(input)
			ct.EasyTerm.TermPrint("\r\n")
			return string(input), nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue // for loop
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				// move up through command history
				if history > 0 {
					// if we're at the end of the command history then store
					// the current input for possible later editing
					if history == len(ct.commandHistory) {
						buffInput = append(buffInput[:0], input...)
					}
					history--
					input = append([]rune{}, ct.commandHistory[history].input...)
					ct.EasyTerm.TermPrint(ansi.CursorMove(len(input) - cursor))
					cursor = len(input)
				}

			case easyterm.CursorDown:
				// move down through command history
				if history < len(ct.commandHistory) {
					history++
					if history == len(ct.commandHistory) {
						input = append([]rune{}, buffInput...)
					} else {
						input = append([]rune{}, ct.commandHistory[history].input...)
					}
					ct.EasyTerm.TermPrint(ansi.CursorMove(len(input) - cursor))
					cursor = len(input)
				}

			case easyterm.CursorForward:
				if cursor < len(input) {
					ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
					cursor--
				}

			case easyterm.CursorHome:
				ct.EasyTerm.TermPrint(ansi.CursorMove(-cursor))
				cursor = 0

			case easyterm.CursorEnd:
				ct.EasyTerm.TermPrint(ansi.CursorMove(len(input) - cursor))
				cursor = len(input)

			case easyterm.EscDelete:
				// delete key sends a trailing tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < len(input) {
					input = append(input[:cursor], input[cursor+1:]...)
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyCtrlBackspace:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursor--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input[:cursor], append([]rune{r}, input[cursor:]...)...)
				ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
				cursor++
				history = len(ct.commandHistory)
			}
		}
	}
}

// add input to history if it is not the same as the last history entry
func (ct *ColorTerminal) addHistory(input []rune) {
	if len(input) == 0 {
		return
	}

	if len(ct.commandHistory) > 0 {
		last := ct.commandHistory[len(ct.commandHistory)-1].input
		if string(last) == string(input) {
			return
		}
	}

	ct.commandHistory = append(ct.commandHistory, command{input: append([]rune{}, input...)})
}
