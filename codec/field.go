// field.go
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

// Tag is a numeric FIX tag. The practical range fits 16 bits but 32-bit
// leaves headroom for vendor extensions.
type Tag uint32

const (
	fieldSeparator        = 0x01 // SOH, terminates every tag=value pair
	fieldSeparatorDisplay = '|'  // printable stand-in, debug output only
	keyValueSeparator     = '='
)

// Framing tags every wire message must carry.
const (
	tagBeginString Tag = 8
	tagBodyLength  Tag = 9
	tagCheckSum    Tag = 10
)

// Field is one tag=value pair. Value is a sub-slice of the decoded input
// buffer — it is valid only while that buffer and the owning Decoder are.
// The trailing SOH is not part of Value.
type Field struct {
	Tag   Tag
	Value []byte
}

// fieldRef locates one field's value inside the input buffer. Storing byte
// offsets instead of slices keeps the scratch entries pointer-free.
type fieldRef struct {
	tag   Tag
	start uint32 // first byte of the value (after '=')
	end   uint32 // the terminating SOH, exclusive
}
