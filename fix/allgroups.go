// allgroups.go
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
	"bytes"

	"github.com/stephenlclarke/fixwire/codec"
)

// GroupMatch pairs a catalog spec with the iterator over its instances in
// a particular message.
type GroupMatch struct {
	Spec      *codec.GroupSpec
	Instances codec.GroupIter
}

// AllGroups discovers every built-in repeating group present in m with a
// non-zero declared count. The catalog scanned follows the BeginString:
// FIX.4.4 messages get the full FIX44Groups set, everything else the
// FIX 4.2 subset. Matches come back in catalog order, not wire order.
func AllGroups(m *codec.Message) []GroupMatch {
	specs := FIX42Groups
	if bytes.Equal(m.BeginString(), []byte("FIX.4.4")) {
		specs = FIX44Groups
	}

	var out []GroupMatch
	for _, spec := range specs {
		f, ok := m.Find(spec.CountTag)
		if !ok {
			continue
		}
		if len(f.Value) > 0 && len(bytes.TrimLeft(f.Value, "0")) == 0 {
			continue
		}
		out = append(out, GroupMatch{Spec: spec, Instances: m.Groups(spec)})
	}
	return out
}
