// encoder.go
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

import "strconv"

// defaultBodyCapacity covers the body of most FIX messages without growing
// the scratch buffer.
const defaultBodyCapacity = 512

// Encoder serializes Message views back to wire format.
//
// By default BodyLength (9) and CheckSum (10) are recomputed from the
// emitted bytes, so a view whose framing was wrong on the way in comes out
// corrected. Disable either recomputation to copy the view's values
// verbatim — with both disabled, Encode(Decode(b)) reproduces b byte for
// byte.
//
// The encoder owns a body scratch buffer reused across calls; it never
// mutates the input view. Not safe for concurrent use.
type Encoder struct {
	body           []byte
	autoBodyLength bool
	autoCheckSum   bool
}

// NewEncoder returns an encoder with the default body-scratch capacity and
// both recomputations enabled.
func NewEncoder() *Encoder {
	return NewEncoderCapacity(defaultBodyCapacity)
}

// NewEncoderCapacity returns an encoder whose body scratch is pre-sized to
// n bytes.
func NewEncoderCapacity(n int) *Encoder {
	if n < 0 {
		n = 0
	}
	return &Encoder{
		body:           make([]byte, 0, n),
		autoBodyLength: true,
		autoCheckSum:   true,
	}
}

// SetAutoBodyLength toggles BodyLength (9) recomputation. When disabled,
// the view's tag-9 value is copied verbatim in its wire position.
func (e *Encoder) SetAutoBodyLength(enabled bool) {
	e.autoBodyLength = enabled
}

// SetAutoCheckSum toggles CheckSum (10) recomputation. When disabled, the
// view's tag-10 value is copied verbatim.
func (e *Encoder) SetAutoCheckSum(enabled bool) {
	e.autoCheckSum = enabled
}

// Encode appends msg's wire bytes to out and returns the extended slice,
// strconv.Append style. Reuse out across calls to stay allocation-free
// once it has grown to a steady-state capacity.
func (e *Encoder) Encode(msg *Message, out []byte) ([]byte, error) {
	start := len(out)

	if e.autoBodyLength {
		out = e.encodeFramed(msg, out)
	} else {
		// Verbatim view order, tag 10 excluded (handled below).
		for i := 0; i < msg.Len()-1; i++ {
			out = appendField(out, msg.Field(i))
		}
	}

	last := msg.Field(msg.Len() - 1)
	if e.autoCheckSum {
		out = appendCheckSum(out, computeCheckSum(out[start:]))
	} else {
		out = appendField(out, last)
	}
	return out, nil
}

// encodeFramed emits BeginString, a recomputed BodyLength, then the body:
// every field except tags 8, 9 and 10, in view order. The body is staged
// in the reusable scratch so its byte length is known before tag 9 is
// written.
func (e *Encoder) encodeFramed(msg *Message, out []byte) []byte {
	body := e.body[:0]
	for i := 2; i < msg.Len()-1; i++ {
		f := msg.Field(i)
		switch f.Tag {
		case tagBeginString, tagBodyLength, tagCheckSum:
			continue
		}
		body = appendField(body, f)
	}
	e.body = body // keep any grown capacity

	out = appendField(out, msg.Field(0)) // 8=<BeginString>
	out = append(out, '9', keyValueSeparator)
	out = strconv.AppendInt(out, int64(len(body)), 10)
	out = append(out, fieldSeparator)
	return append(out, body...)
}

func appendField(out []byte, f Field) []byte {
	out = strconv.AppendUint(out, uint64(f.Tag), 10)
	out = append(out, keyValueSeparator)
	out = append(out, f.Value...)
	return append(out, fieldSeparator)
}

// appendCheckSum emits 10=<ddd> with the mandatory three-digit zero
// padding.
func appendCheckSum(out []byte, sum byte) []byte {
	out = append(out, '1', '0', keyValueSeparator)
	out = append(out, '0'+sum/100, '0'+sum/10%10, '0'+sum%10)
	return append(out, fieldSeparator)
}
