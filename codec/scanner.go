// scanner.go
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

import "bytes"

// maxTag guards the uint32 conversion in parseTag.
const maxTag = 1<<32 - 1

// appendFields tokenizes buf into tag=value pairs and appends one fieldRef
// per field to dst. bytes.IndexByte is the hot-path primitive here: it is
// the assembly-accelerated memchr of the Go runtime, so neither delimiter
// scan walks bytes one at a time.
//
// buf must be a complete frame: every field, including the last, terminated
// by SOH. The returned slice aliases dst's backing array (grown if needed).
func appendFields(dst []fieldRef, buf []byte) ([]fieldRef, error) {
	if len(buf) == 0 {
		return dst, ErrEmptyInput
	}
	if buf[len(buf)-1] != fieldSeparator {
		return dst, ErrMissingTrailingDelimiter
	}

	pos := 0
	for pos < len(buf) {
		// The trailing-SOH check above guarantees this scan succeeds.
		soh := bytes.IndexByte(buf[pos:], fieldSeparator) + pos

		eq := bytes.IndexByte(buf[pos:soh], keyValueSeparator)
		if eq < 0 {
			return dst, ErrMalformedField
		}
		if eq == 0 {
			return dst, ErrEmptyTag
		}

		tag, err := parseTag(buf[pos : pos+eq])
		if err != nil {
			return dst, err
		}

		dst = append(dst, fieldRef{
			tag:   tag,
			start: uint32(pos + eq + 1),
			end:   uint32(soh),
		})
		pos = soh + 1
	}

	return dst, nil
}

// parseTag converts ASCII decimal tag bytes to a Tag. Anything but digits,
// including sign characters and whitespace, is rejected; so is overflow
// past 32 bits.
func parseTag(b []byte) (Tag, error) {
	var n uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, ErrInvalidTag
		}
		n = n*10 + uint64(c-'0')
		if n > maxTag {
			return 0, ErrInvalidTag
		}
	}
	return Tag(n), nil
}
