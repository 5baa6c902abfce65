// errors.go
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
	"errors"
	"fmt"
)

// Tokenizer errors.
var (
	ErrEmptyInput               = errors.New("fixwire: empty input")
	ErrMissingTrailingDelimiter = errors.New("fixwire: input does not end with SOH")
	ErrMalformedField           = errors.New("fixwire: field has no '=' separator")
	ErrEmptyTag                 = errors.New("fixwire: field has an empty tag")
	ErrInvalidTag               = errors.New("fixwire: tag is not an unsigned decimal integer")
)

// Structural framing errors, raised by Decode.
var (
	ErrMissingBeginString = errors.New("fixwire: first field is not BeginString (8)")
	ErrMissingBodyLength  = errors.New("fixwire: second field is not BodyLength (9)")
	ErrMissingCheckSum    = errors.New("fixwire: last field is not CheckSum (10)")
)

// Group resolution errors.
var (
	ErrMalformedGroupCount   = errors.New("fixwire: group count value is not a non-negative integer")
	ErrMissingGroupDelimiter = errors.New("fixwire: group count is not followed by the delimiter tag")
)

// GroupCountMismatchError reports fewer group instances than the count tag
// declared. Declared is the value carried by the count tag; Found is the
// number of instances actually extracted before a non-member tag or the end
// of the enclosing view terminated the group.
type GroupCountMismatchError struct {
	Declared int
	Found    int
}

func (e *GroupCountMismatchError) Error() string {
	return fmt.Sprintf("fixwire: group declared %d instances, found %d", e.Declared, e.Found)
}

// BodyLengthMismatchError reports a BodyLength (9) value that does not match
// the byte count computed from the message body. Declared is -1 when the
// tag-9 value could not be parsed as an integer.
type BodyLengthMismatchError struct {
	Declared int
	Computed int
}

func (e *BodyLengthMismatchError) Error() string {
	return fmt.Sprintf("fixwire: BodyLength declares %d bytes, body is %d", e.Declared, e.Computed)
}

// CheckSumMismatchError reports a CheckSum (10) value that does not match
// the modulo-256 byte sum of the message. Declared is -1 when the tag-10
// value could not be parsed as a 0–255 integer.
type CheckSumMismatchError struct {
	Declared int
	Computed int
}

func (e *CheckSumMismatchError) Error() string {
	return fmt.Sprintf("fixwire: CheckSum declares %03d, computed %03d", e.Declared, e.Computed)
}
