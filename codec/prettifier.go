// prettifier.go
/*
fixwire — FIX protocol wire codec
Copyright (C) 2025 Steve Clarke <stephenlclarke@mac.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

In accordance with section 13 of the AGPL, if you modify this program,
your modified version must prominently offer all users interacting with it
remotely through a computer network an opportunity to receive the source
code of your version.
*/
package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// renderFields prints a field range as tag=value pairs separated by the
// printable '|' stand-in for SOH.
func renderFields(buf []byte, fields []fieldRef) string {
	var sb strings.Builder
	for _, r := range fields {
		sb.WriteString(strconv.FormatUint(uint64(r.tag), 10))
		sb.WriteByte(keyValueSeparator)
		sb.Write(buf[r.start:r.end])
		sb.WriteByte(fieldSeparatorDisplay)
	}
	return sb.String()
}

// Prettify renders a message one field per line for log inspection:
//
//	   8 (BeginString): FIX.4.2
//	  35 (MsgType): D
//
// names maps tags to display names; pass nil to print bare tag numbers.
// Values are printed as-is, so binary field contents end up verbatim in
// the output.
func Prettify(m *Message, names func(Tag) string) string {
	var sb strings.Builder

	for f := range m.Fields() {
		if names != nil {
			fmt.Fprintf(&sb, "%4d (%s): %s\n", f.Tag, names(f.Tag), f.Value)
		} else {
			fmt.Fprintf(&sb, "%4d: %s\n", f.Tag, f.Value)
		}
	}

	return sb.String()
}
