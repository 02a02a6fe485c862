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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// a group of key/value pairs from a single prefs string.
type group map[string]Value

// the stack of groups pushed by PushCommandLineStack(). only the group at the
// top of the stack is consulted.
var commandLineStack []group

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack parses a prefs string and adds it as a new group. A
// prefs string is a list of key/value pairs separated by semi-colons. The key
// and value are separated by a double colon:
//
//	gameboy.postboot::true; display.scale::3
//
// Invalid entries are ignored.
func PushCommandLineStack(prefs string) {
	g := make(group)
	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			g[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	commandLineStack = append(commandLineStack, g)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the entries of the group that have not been used, as a prefs string
// with the keys in sorted order.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped))
	for k := range popped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	unused := make([]string, len(keys))
	for i, k := range keys {
		unused[i] = fmt.Sprintf("%s::%v", k, popped[k])
	}

	return strings.Join(unused, "; ")
}

// GetCommandLinePref returns the value for the key from the group at the top
// of the stack. The entry is deleted when it is returned.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	g := commandLineStack[len(commandLineStack)-1]
	if v, ok := g[key]; ok {
		delete(g, key)
		return true, v
	}

	return false, nil
}
