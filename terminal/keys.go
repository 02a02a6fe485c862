// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package terminal

import (
	"unicode"

	"github.com/jetsetilly/gopherdmg/terminal/easyterm"
)

// the names of special keys. the names match those used by SDL
const (
	keyInterrupt = "Interrupt"
	keyUp        = "Up"
	keyDown      = "Down"
	keyRight     = "Right"
	keyLeft      = "Left"
	keySpace     = "Space"
	keyF12       = "F12"
)

// decodeKeys converts terminal input into key names. Escape sequences that
// are not recognised are discarded.
func decodeKeys(b []byte) []string {
	var keys []string

	for i := 0; i < len(b); i++ {
		switch b[i] {
		case easyterm.KeyInterrupt:
			keys = append(keys, keyInterrupt)

		case ' ':
			keys = append(keys, keySpace)

		case easyterm.KeyEsc:
			if i+2 >= len(b) || (b[i+1] != easyterm.EscCursor && b[i+1] != easyterm.EscSS3) {
				continue
			}
			i += 2
			switch b[i] {
			case easyterm.CursorUp:
				keys = append(keys, keyUp)
			case easyterm.CursorDown:
				keys = append(keys, keyDown)
			case easyterm.CursorForward:
				keys = append(keys, keyRight)
			case easyterm.CursorBackward:
				keys = append(keys, keyLeft)
			default:
				// sequences of the form ESC [ n ~ or ESC [ n n ~
				j := i
				for j < len(b) && b[j] >= '0' && b[j] <= '9' {
					j++
				}
				if j < len(b) && b[j] == '~' {
					if string(b[i:j]) == "24" {
						keys = append(keys, keyF12)
					}
					i = j
				}
			}

		default:
			r := rune(b[i])
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				keys = append(keys, string(unicode.ToUpper(r)))
			}
		}
	}

	return keys
}
