// decoder.go
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

// defaultFieldCapacity covers ~95% of FIX messages without growing the
// scratch slice.
const defaultFieldCapacity = 32

// Decoder parses raw FIX frames into Message views.
//
// The decoder owns a scratch slice of field offsets that is allocated once
// and refilled on every Decode call; while the field count stays within
// capacity no allocation happens per message. A Decoder is not safe for
// concurrent use, and the Message returned by Decode borrows the scratch:
// it is invalidated by the next Decode on the same Decoder.
type Decoder struct {
	scratch []fieldRef
	msg     Message
}

// NewDecoder returns a decoder pre-sized for 32 fields.
func NewDecoder() *Decoder {
	return NewDecoderCapacity(defaultFieldCapacity)
}

// NewDecoderCapacity returns a decoder pre-sized for n fields. Use a larger
// n when messages consistently exceed 32 fields (e.g. market data
// snapshots); a message that spills past the capacity still decodes, and
// the scratch keeps the grown capacity for later calls.
func NewDecoderCapacity(n int) *Decoder {
	if n < 1 {
		n = 1
	}
	return &Decoder{scratch: make([]fieldRef, 0, n)}
}

// Decode parses buf into a Message view over buf.
//
// The input must be a complete, structurally well-formed frame:
// BeginString (8) first, BodyLength (9) second, CheckSum (10) last, every
// field SOH-terminated. Checksum and body-length values are NOT verified
// here — upstream systems sometimes send mismatched framing on purpose, so
// that decision belongs to the caller via Message.ValidateBodyLength and
// Message.ValidateCheckSum.
//
// No partial view is returned on error. The returned Message borrows both
// buf and the decoder's scratch; drop it before the next Decode, and do not
// mutate buf while it is live.
func (d *Decoder) Decode(buf []byte) (*Message, error) {
	refs, err := appendFields(d.scratch[:0], buf)
	d.scratch = refs // keep any grown capacity
	if err != nil {
		return nil, err
	}

	if refs[0].tag != tagBeginString {
		return nil, ErrMissingBeginString
	}
	if len(refs) < 2 || refs[1].tag != tagBodyLength {
		return nil, ErrMissingBodyLength
	}
	if refs[len(refs)-1].tag != tagCheckSum {
		return nil, ErrMissingCheckSum
	}

	// Recycle the previous view's index storage; the view itself is dead
	// from this point on.
	index := d.msg.index[:0]
	d.msg = Message{buf: buf, fields: refs, index: index}
	return &d.msg, nil
}
