// obfuscator.go
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
package fix

import (
	"fmt"
	"io"
	"maps"
	"strconv"
	"sync"

	"github.com/stephenlclarke/fixwire/codec"
)

// Obfuscator replaces values of sensitive FIX tags with stable aliases so
// decoded messages can be captured or shared without leaking accounts,
// counterparties or client order IDs. The same tag=value pair always maps
// to the same alias. It is safe for concurrent use.
type Obfuscator struct {
	enabled  bool                 // global enable/disable flag
	tags     map[codec.Tag]string // tag -> alias prefix
	mu       sync.Mutex           // protects aliasMap and counter
	aliasMap map[string]string    // "tag=value" -> alias
	counter  map[codec.Tag]int    // per-tag, for zero-padded suffixes
}

// NewObfuscator constructs an Obfuscator using the given tag map. The map
// value is the alias prefix, e.g. {Account: "ACCT"} turns account "X123"
// into "ACCT0001". If enabled is false, Message re-encodes without
// substituting anything.
func NewObfuscator(tags map[codec.Tag]string, enabled bool) *Obfuscator {
	cp := make(map[codec.Tag]string, len(tags))
	maps.Copy(cp, tags)

	return &Obfuscator{
		enabled:  enabled,
		tags:     cp,
		aliasMap: make(map[string]string),
		counter:  make(map[codec.Tag]int),
	}
}

// alias returns the stable alias for a sensitive tag=value pair, minting
// one on first sight. stderr, when non-nil, receives a first-use note per
// minted alias.
func (o *Obfuscator) alias(tag codec.Tag, value []byte, stderr io.Writer) string {
	name := o.tags[tag]
	key := strconv.FormatUint(uint64(tag), 10) + "=" + string(value)

	o.mu.Lock()
	defer o.mu.Unlock()

	alias, exists := o.aliasMap[key]
	if !exists {
		o.counter[tag]++
		alias = fmt.Sprintf("%s%04d", name, o.counter[tag])
		o.aliasMap[key] = alias

		if stderr != nil {
			fmt.Fprintf(stderr, "first use: tag %d value [%s] → [%s]\n", tag, value, alias)
		}
	}
	return alias
}

// Message re-encodes m with every sensitive value replaced by its alias,
// appending the wire bytes to out. Aliasing changes value lengths, so
// BodyLength and CheckSum are always recomputed; the output is a
// well-formed frame that decodes cleanly.
func (o *Obfuscator) Message(m *codec.Message, out []byte, stderr io.Writer) []byte {
	msgStart := len(out)

	var body []byte
	for i := 0; i < m.Len(); i++ {
		f := m.Field(i)
		switch f.Tag {
		case BeginString, BodyLength, CheckSum:
			continue
		}

		value := f.Value
		if o.enabled {
			if _, sensitive := o.tags[f.Tag]; sensitive {
				value = []byte(o.alias(f.Tag, f.Value, stderr))
			}
		}
		body = appendRawField(body, f.Tag, value)
	}

	out = appendRawField(out, BeginString, m.BeginString())
	out = append(out, '9', '=')
	out = strconv.AppendInt(out, int64(len(body)), 10)
	out = append(out, 0x01)
	out = append(out, body...)

	var sum byte
	for _, c := range out[msgStart:] {
		sum += c
	}
	out = append(out, '1', '0', '=', '0'+sum/100, '0'+sum/10%10, '0'+sum%10, 0x01)
	return out
}

func appendRawField(out []byte, tag codec.Tag, value []byte) []byte {
	out = strconv.AppendUint(out, uint64(tag), 10)
	out = append(out, '=')
	out = append(out, value...)
	return append(out, 0x01)
}
