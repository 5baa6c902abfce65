// allgroups_test.go
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
	"testing"

	"github.com/stephenlclarke/fixwire/codec"
)

func TestAllGroupsNoGroupTags(t *testing.T) {
	msg := decodeWire(t, "8=FIX.4.2|9=5|35=D|10=181|")
	if got := AllGroups(msg); len(got) != 0 {
		t.Errorf("AllGroups = %d matches, want 0", len(got))
	}
}

func TestAllGroupsSingleGroup(t *testing.T) {
	msg := decodeWire(t, "8=FIX.4.2|9=0|35=J|136=1|137=7.00|138=USD|139=2|10=000|")

	matches := AllGroups(msg)
	if len(matches) != 1 {
		t.Fatalf("AllGroups = %d matches, want 1", len(matches))
	}
	if matches[0].Spec.CountTag != NoMiscFees {
		t.Errorf("match count tag = %d, want %d", matches[0].Spec.CountTag, NoMiscFees)
	}

	fees, err := matches[0].Instances.Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(fees) != 1 {
		t.Fatalf("got %d instances, want 1", len(fees))
	}
	if f, _ := fees[0].Find(MiscFeeAmt); string(f.Value) != "7.00" {
		t.Errorf("fee amount = %q, want 7.00", f.Value)
	}
}

func TestAllGroupsTwoGroupsPresent(t *testing.T) {
	msg := decodeWire(t, "8=FIX.4.2|9=0|35=D|215=2|216=1|217=ROUTE_A|216=2|217=ROUTE_B|"+
		"136=1|137=1.00|138=USD|139=3|10=000|")

	found := make(map[codec.Tag]bool)
	for _, m := range AllGroups(msg) {
		found[m.Spec.CountTag] = true
	}
	if len(found) != 2 || !found[NoMiscFees] || !found[NoRoutingIDs] {
		t.Errorf("found = %v, want {%d, %d}", found, NoMiscFees, NoRoutingIDs)
	}
}

func TestAllGroupsZeroCountSkipped(t *testing.T) {
	msg := decodeWire(t, "8=FIX.4.2|9=0|35=J|136=0|10=000|")
	if got := AllGroups(msg); len(got) != 0 {
		t.Errorf("AllGroups = %d matches, want 0 for zero count", len(got))
	}
}

func TestAllGroupsUsesVersionCatalog(t *testing.T) {
	// NoPartyIDs is a FIX 4.4 group; a FIX 4.2 BeginString must not match
	// it, a FIX 4.4 one must.
	body := "9=0|35=8|453=1|448=BROKER|447=D|452=1|10=000|"

	msg42 := decodeWire(t, "8=FIX.4.2|"+body)
	for _, m := range AllGroups(msg42) {
		if m.Spec.CountTag == NoPartyIDs {
			t.Error("FIX 4.2 scan matched a FIX 4.4 group")
		}
	}

	msg44 := decodeWire(t, "8=FIX.4.4|"+body)
	var matched bool
	for _, m := range AllGroups(msg44) {
		if m.Spec.CountTag == NoPartyIDs {
			matched = true
		}
	}
	if !matched {
		t.Error("FIX 4.4 scan did not match NoPartyIDs")
	}
}
