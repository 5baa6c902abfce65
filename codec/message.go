// message.go
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
	"iter"
	"sort"
)

// Message is a zero-copy view over one decoded FIX frame.
//
// Fields are exposed in wire order. Every Field.Value is a sub-slice of the
// input buffer passed to Decode; nothing is copied. The view also borrows
// the decoder's scratch, so it is only valid until the owning Decoder's
// next Decode call.
//
// A Message is read-only but not safe for concurrent use: Find builds its
// sorted tag index lazily on first call.
type Message struct {
	buf    []byte
	fields []fieldRef

	// index holds positions into fields, sorted by (tag, position). It is
	// built by the first Find call; iteration-only workloads never pay for
	// the sort. len(index) > 0 means built.
	index []int32
}

// Len returns the number of fields in the message.
func (m *Message) Len() int {
	return len(m.fields)
}

// Field returns the field at position i in wire order.
// Panics if i is out of range.
func (m *Message) Field(i int) Field {
	r := m.fields[i]
	return Field{Tag: r.tag, Value: m.buf[r.start:r.end]}
}

// Fields iterates the fields in wire order. Each step is O(1) and
// allocation-free.
func (m *Message) Fields() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for _, r := range m.fields {
			if !yield(Field{Tag: r.tag, Value: m.buf[r.start:r.end]}) {
				return
			}
		}
	}
}

// BeginString returns the value of tag 8, e.g. "FIX.4.2" or "FIX.4.4".
// Decode guarantees the field exists and is first.
func (m *Message) BeginString() []byte {
	r := m.fields[0]
	return m.buf[r.start:r.end]
}

// Find returns the first field carrying tag, in wire order.
//
// The first call sorts a position index — a stable O(n log n) ordering by
// (tag, position) so duplicate tags resolve to the earliest occurrence —
// and every later call is an O(log n) binary search over it. Break-even
// against a linear scan is two to three lookups on a typical message.
func (m *Message) Find(tag Tag) (Field, bool) {
	if len(m.index) == 0 {
		m.buildIndex()
	}

	n := len(m.index)
	i := sort.Search(n, func(i int) bool {
		return m.fields[m.index[i]].tag >= tag
	})
	if i == n || m.fields[m.index[i]].tag != tag {
		return Field{}, false
	}
	return m.Field(int(m.index[i])), true
}

func (m *Message) buildIndex() {
	if cap(m.index) < len(m.fields) {
		m.index = make([]int32, len(m.fields))
	} else {
		m.index = m.index[:len(m.fields)]
	}
	for i := range m.index {
		m.index[i] = int32(i)
	}

	fields := m.fields
	sort.Slice(m.index, func(a, b int) bool {
		ta, tb := fields[m.index[a]].tag, fields[m.index[b]].tag
		if ta != tb {
			return ta < tb
		}
		return m.index[a] < m.index[b]
	})
}

// Groups returns a lazy iterator over the instances of the repeating group
// described by spec, resolved against this message's flat field sequence.
//
//	it := msg.Groups(&fix.MDEntries)
//	for it.Next() {
//	    entry := it.Group()
//	    ...
//	}
//	if err := it.Err(); err != nil { ... }
//
// An absent count tag is not an error: the iterator just yields nothing.
func (m *Message) Groups(spec *GroupSpec) GroupIter {
	return newGroupIter(m.buf, m.fields, spec)
}

// tagStart returns the byte offset of field i's first tag digit. Works for
// any i >= 1 (the previous field's SOH immediately precedes the tag).
func (m *Message) tagStart(i int) int {
	return int(m.fields[i-1].end) + 1
}

// ValidateBodyLength checks the BodyLength (9) value against the actual
// body: every byte between the SOH terminating tag 9 and the first tag
// digit of tag 10. Decode never performs this check.
//
// On mismatch the returned error is a *BodyLengthMismatchError carrying
// both values; Declared is -1 when the tag-9 value is not numeric.
func (m *Message) ValidateBodyLength() error {
	bodyStart := int(m.fields[1].end) + 1
	checkSumStart := m.tagStart(len(m.fields) - 1)
	computed := checkSumStart - bodyStart

	declared, ok := parseDecimal(m.Field(1).Value)
	if !ok {
		return &BodyLengthMismatchError{Declared: -1, Computed: computed}
	}
	if declared != computed {
		return &BodyLengthMismatchError{Declared: declared, Computed: computed}
	}
	return nil
}

// ValidateCheckSum checks the CheckSum (10) value against the modulo-256
// sum of every byte preceding the tag-10 field. Decode never performs this
// check.
//
// On mismatch the returned error is a *CheckSumMismatchError carrying both
// values; Declared is -1 when the tag-10 value is not a 0–255 decimal.
func (m *Message) ValidateCheckSum() error {
	checkSumStart := m.tagStart(len(m.fields) - 1)
	computed := int(computeCheckSum(m.buf[:checkSumStart]))

	declared, ok := parseDeclaredCheckSum(m.Field(len(m.fields) - 1).Value)
	if !ok {
		return &CheckSumMismatchError{Declared: -1, Computed: computed}
	}
	if declared != computed {
		return &CheckSumMismatchError{Declared: declared, Computed: computed}
	}
	return nil
}

// String renders the message with '|' in place of SOH. Debug output only —
// use Encoder to produce wire bytes.
func (m *Message) String() string {
	return renderFields(m.buf, m.fields)
}
