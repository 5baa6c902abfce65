// decoder_test.go
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
	"bytes"
	"errors"
	"fmt"
	"testing"
)

// raw converts "tag=value|..." notation into wire bytes, '|' standing in
// for SOH.
func raw(s string) []byte {
	b := []byte(s)
	for i, c := range b {
		if c == '|' {
			b[i] = fieldSeparator
		}
	}
	return b
}

func decodeOK(t *testing.T, s string) *Message {
	t.Helper()
	msg, err := NewDecoder().Decode(raw(s))
	if err != nil {
		t.Fatalf("Decode(%q) failed: %v", s, err)
	}
	return msg
}

func TestDecodeMinimalMessage(t *testing.T) {
	msg := decodeOK(t, "8=FIX.4.2|9=5|35=D|10=181|")

	if msg.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", msg.Len())
	}

	want := []Field{
		{Tag: 8, Value: []byte("FIX.4.2")},
		{Tag: 9, Value: []byte("5")},
		{Tag: 35, Value: []byte("D")},
		{Tag: 10, Value: []byte("181")},
	}
	for i, w := range want {
		got := msg.Field(i)
		if got.Tag != w.Tag || !bytes.Equal(got.Value, w.Value) {
			t.Errorf("Field(%d) = %d=%q, want %d=%q", i, got.Tag, got.Value, w.Tag, w.Value)
		}
	}
}

func TestDecodeNewOrderSingle(t *testing.T) {
	// A realistic FIX 4.2 NewOrderSingle with fourteen fields and correct
	// framing values.
	msg := decodeOK(t, "8=FIX.4.2|9=96|35=D|49=CLIENT|56=BROKER|34=1|"+
		"52=20240101-12:00:00|11=ORD001|55=AAPL|54=1|38=100|44=150.00|40=2|10=028|")

	if msg.Len() != 14 {
		t.Fatalf("Len() = %d, want 14", msg.Len())
	}
	if f, ok := msg.Find(55); !ok || string(f.Value) != "AAPL" {
		t.Errorf("Find(55) = %q, %v; want AAPL, true", f.Value, ok)
	}
	if got := string(msg.BeginString()); got != "FIX.4.2" {
		t.Errorf("BeginString() = %q, want FIX.4.2", got)
	}
	if err := msg.ValidateBodyLength(); err != nil {
		t.Errorf("ValidateBodyLength() = %v, want nil", err)
	}
	if err := msg.ValidateCheckSum(); err != nil {
		t.Errorf("ValidateCheckSum() = %v, want nil", err)
	}
}

func TestDecodePreservesFieldOrderAndDuplicates(t *testing.T) {
	msg := decodeOK(t, "8=FIX.4.2|9=0|58=first|58=second|10=000|")

	var got []string
	for f := range msg.Fields() {
		got = append(got, fmt.Sprintf("%d=%s", f.Tag, f.Value))
	}
	want := []string{"8=FIX.4.2", "9=0", "58=first", "58=second", "10=000"}
	if len(got) != len(want) {
		t.Fatalf("fields = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDecodeEmptyValuePreserved(t *testing.T) {
	msg := decodeOK(t, "8=FIX.4.2|9=0|58=|10=000|")
	f := msg.Field(2)
	if f.Tag != 58 || len(f.Value) != 0 {
		t.Errorf("Field(2) = %d=%q, want 58 with empty value", f.Tag, f.Value)
	}
}

func TestDecodeValueContainingEquals(t *testing.T) {
	msg := decodeOK(t, "8=FIX.4.2|9=0|58=price=100|10=000|")
	if got := string(msg.Field(2).Value); got != "price=100" {
		t.Errorf("Field(2).Value = %q, want price=100", got)
	}
}

func TestDecodeBinaryValue(t *testing.T) {
	// Values may contain arbitrary non-SOH bytes (e.g. RawData tag 96).
	buf := raw("8=FIX.4.2|9=0|96=")
	buf = append(buf, 0x02, 0x03, 0x04, fieldSeparator)
	buf = append(buf, raw("10=000|")...)

	msg, err := NewDecoder().Decode(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(msg.Field(2).Value, []byte{0x02, 0x03, 0x04}) {
		t.Errorf("Field(2).Value = %v, want [2 3 4]", msg.Field(2).Value)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty input", "", ErrEmptyInput},
		{"no trailing SOH", "8=FIX.4.2|9=5|35=D|10=181", ErrMissingTrailingDelimiter},
		{"field without equals", "8=FIX.4.2|9=0|BADFIELD|10=000|", ErrMalformedField},
		{"empty tag", "8=FIX.4.2|9=0|=value|10=000|", ErrEmptyTag},
		{"alpha tag", "8=FIX.4.2|9=0|abc=1|10=000|", ErrInvalidTag},
		{"signed tag", "8=FIX.4.2|9=0|-5=1|10=000|", ErrInvalidTag},
		{"tag with space", "8=FIX.4.2|9=0|3 5=1|10=000|", ErrInvalidTag},
		{"tag overflow", "8=FIX.4.2|9=0|4294967296=1|10=000|", ErrInvalidTag},
		{"first field not 8", "35=D|9=5|10=181|", ErrMissingBeginString},
		{"second field not 9", "8=FIX.4.2|35=D|10=181|", ErrMissingBodyLength},
		{"single field", "8=FIX.4.2|", ErrMissingBodyLength},
		{"last field not 10", "8=FIX.4.2|9=5|35=D|", ErrMissingCheckSum},
		{"two fields only", "8=FIX.4.2|9=5|", ErrMissingCheckSum},
		{"bare SOH", "|", ErrMalformedField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder().Decode(raw(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode(%q) err = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestDecodeTagAtUint32Max(t *testing.T) {
	msg := decodeOK(t, "8=FIX.4.2|9=0|4294967295=v|10=000|")
	if msg.Field(2).Tag != 4294967295 {
		t.Errorf("Field(2).Tag = %d, want 4294967295", msg.Field(2).Tag)
	}
}

func TestDecoderReuse(t *testing.T) {
	dec := NewDecoder()

	msg, err := dec.Decode(raw("8=FIX.4.2|9=5|35=D|10=181|"))
	if err != nil {
		t.Fatalf("first Decode failed: %v", err)
	}
	if msg.Field(2).Tag != 35 {
		t.Fatalf("Field(2).Tag = %d, want 35", msg.Field(2).Tag)
	}

	msg2, err := dec.Decode(raw("8=FIX.4.4|9=7|35=8|39=2|10=000|"))
	if err != nil {
		t.Fatalf("second Decode failed: %v", err)
	}
	if got := string(msg2.BeginString()); got != "FIX.4.4" {
		t.Errorf("BeginString() = %q, want FIX.4.4", got)
	}
	if msg2.Len() != 5 {
		t.Errorf("Len() = %d, want 5", msg2.Len())
	}
}

func TestDecoderReuseManyIterationsStable(t *testing.T) {
	dec := NewDecoder()
	buf := raw("8=FIX.4.2|9=5|35=D|10=181|")
	for i := 0; i < 1000; i++ {
		msg, err := dec.Decode(buf)
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		if msg.Len() != 4 {
			t.Fatalf("iteration %d: Len() = %d", i, msg.Len())
		}
	}
}

func TestDecoderScratchGrowthPastCapacity(t *testing.T) {
	// 40 body fields exceeds both the requested capacity of 1 and the
	// default of 32; the scratch must grow and stay correct.
	dec := NewDecoderCapacity(1)

	var buf []byte
	buf = append(buf, raw("8=FIX.4.2|9=0|")...)
	for i := 0; i < 40; i++ {
		buf = append(buf, raw(fmt.Sprintf("58=note%d|", i))...)
	}
	buf = append(buf, raw("10=000|")...)

	msg, err := dec.Decode(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if msg.Len() != 43 {
		t.Fatalf("Len() = %d, want 43", msg.Len())
	}
	if got := string(msg.Field(42).Value); got != "000" {
		t.Errorf("last field value = %q, want 000", got)
	}

	// A small message decodes fine afterwards.
	msg2, err := dec.Decode(raw("8=FIX.4.2|9=5|35=D|10=181|"))
	if err != nil {
		t.Fatalf("Decode after growth failed: %v", err)
	}
	if msg2.Len() != 4 {
		t.Errorf("Len() = %d, want 4", msg2.Len())
	}
}
