// group_test.go
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
	"testing"
)

// Local specs mirroring the market-data and party groups; the full
// catalog lives in the fix package, which cannot be imported here.
var (
	testPartySubIDs = GroupSpec{
		CountTag:     802,
		DelimiterTag: 523,
		MemberTags:   []Tag{523, 803},
	}
	testPartyIDs = GroupSpec{
		CountTag:     453,
		DelimiterTag: 448,
		MemberTags:   []Tag{448, 447, 452},
		NestedSpecs:  []*GroupSpec{&testPartySubIDs},
	}
	testMDEntries = GroupSpec{
		CountTag:     268,
		DelimiterTag: 269,
		MemberTags:   []Tag{269, 270, 271},
	}
)

func collectGroups(t *testing.T, it GroupIter) []Group {
	t.Helper()
	groups, err := it.Collect()
	if err != nil {
		t.Fatalf("group resolution failed: %v", err)
	}
	return groups
}

func TestGroupsMarketDataSnapshot(t *testing.T) {
	msg := decodeOK(t, "8=FIX.4.2|9=0|35=W|49=SERVER|56=CLIENT|268=2|"+
		"269=0|270=150.25|271=500|269=1|270=150.30|271=300|10=000|")

	entries := collectGroups(t, msg.Groups(&testMDEntries))
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if f, ok := entries[0].Find(270); !ok || string(f.Value) != "150.25" {
		t.Errorf("entry 0 Find(270) = %q, %v; want 150.25, true", f.Value, ok)
	}
	if f, ok := entries[1].Find(270); !ok || string(f.Value) != "150.30" {
		t.Errorf("entry 1 Find(270) = %q, %v; want 150.30, true", f.Value, ok)
	}
	if entries[0].Len() != 3 || entries[1].Len() != 3 {
		t.Errorf("entry lengths = %d, %d; want 3, 3", entries[0].Len(), entries[1].Len())
	}
}

func TestGroupsFieldIterationWithinInstance(t *testing.T) {
	msg := decodeOK(t, "8=FIX.4.2|9=0|268=1|269=0|270=99.5|271=1000|10=000|")

	entries := collectGroups(t, msg.Groups(&testMDEntries))
	var tags []Tag
	for f := range entries[0].Fields() {
		tags = append(tags, f.Tag)
	}
	want := []Tag{269, 270, 271}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %d, want %d", i, tags[i], want[i])
		}
	}
}

func TestGroupsAbsentCountTag(t *testing.T) {
	msg := decodeOK(t, "8=FIX.4.2|9=5|35=D|10=181|")

	it := msg.Groups(&testMDEntries)
	if it.Next() {
		t.Error("Next() = true for absent group, want false")
	}
	if err := it.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestGroupsCountZero(t *testing.T) {
	// Count of zero followed by a non-delimiter tag: empty sequence, no
	// error.
	msg := decodeOK(t, "8=FIX.4.2|9=0|268=0|58=no entries|10=000|")

	it := msg.Groups(&testMDEntries)
	if it.Next() {
		t.Error("Next() = true for empty group, want false")
	}
	if err := it.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestGroupsMalformedCount(t *testing.T) {
	msg := decodeOK(t, "8=FIX.4.2|9=0|268=abc|269=0|10=000|")

	it := msg.Groups(&testMDEntries)
	if it.Next() {
		t.Error("Next() = true, want false")
	}
	if !errors.Is(it.Err(), ErrMalformedGroupCount) {
		t.Errorf("Err() = %v, want ErrMalformedGroupCount", it.Err())
	}
}

func TestGroupsMissingDelimiter(t *testing.T) {
	// A member tag between the count tag and the first delimiter is a
	// malformed group.
	msg := decodeOK(t, "8=FIX.4.2|9=0|268=2|270=1.0|269=0|10=000|")

	it := msg.Groups(&testMDEntries)
	if it.Next() {
		t.Error("Next() = true, want false")
	}
	if !errors.Is(it.Err(), ErrMissingGroupDelimiter) {
		t.Errorf("Err() = %v, want ErrMissingGroupDelimiter", it.Err())
	}
}

func TestGroupsCountMismatch(t *testing.T) {
	// Declares three instances, carries two.
	msg := decodeOK(t, "8=FIX.4.2|9=0|268=3|269=0|270=1|269=1|270=2|10=000|")

	it := msg.Groups(&testMDEntries)
	found := 0
	for it.Next() {
		found++
	}
	if found != 2 {
		t.Fatalf("extracted %d instances, want 2", found)
	}

	var mismatch *GroupCountMismatchError
	if !errors.As(it.Err(), &mismatch) {
		t.Fatalf("Err() = %v, want *GroupCountMismatchError", it.Err())
	}
	if mismatch.Declared != 3 || mismatch.Found != 2 {
		t.Errorf("mismatch = {Declared: %d, Found: %d}, want {3, 2}", mismatch.Declared, mismatch.Found)
	}
}

func TestGroupsStrayDelimiterBeyondDeclaredCount(t *testing.T) {
	// A third delimiter after count=2 belongs to the enclosing view, not
	// the group.
	msg := decodeOK(t, "8=FIX.4.2|9=0|268=2|269=0|270=1|269=1|270=2|269=9|10=000|")

	it := msg.Groups(&testMDEntries)
	found := 0
	for it.Next() {
		found++
	}
	if found != 2 {
		t.Errorf("extracted %d instances, want 2", found)
	}
	if err := it.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestGroupsNonMemberTagTerminatesInstance(t *testing.T) {
	// Tag 58 is not an MD-entry member: the group ends before it even
	// though more fields follow.
	msg := decodeOK(t, "8=FIX.4.2|9=0|268=1|269=0|270=1.5|58=tail|10=000|")

	entries := collectGroups(t, msg.Groups(&testMDEntries))
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Len() != 2 {
		t.Errorf("entry Len() = %d, want 2", entries[0].Len())
	}
	// The terminating field is still reachable on the message.
	if f, ok := msg.Find(58); !ok || string(f.Value) != "tail" {
		t.Errorf("Find(58) = %q, %v; want tail, true", f.Value, ok)
	}
}

func TestGroupsRepeatedMemberTagWithinInstance(t *testing.T) {
	// Duplicate member tags inside one instance are legal; Find returns
	// the first.
	msg := decodeOK(t, "8=FIX.4.2|9=0|268=1|269=0|270=1.5|270=2.5|10=000|")

	entries := collectGroups(t, msg.Groups(&testMDEntries))
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if f, _ := entries[0].Find(270); string(f.Value) != "1.5" {
		t.Errorf("Find(270) = %q, want 1.5", f.Value)
	}
}

func TestGroupsNestedParties(t *testing.T) {
	// Two outer parties; the first carries one nested PartySubIDs entry.
	msg := decodeOK(t, "8=FIX.4.4|9=0|35=8|453=2|"+
		"448=BROKER1|447=D|452=1|802=1|523=DESK-A|803=26|"+
		"448=BROKER2|447=D|452=3|10=000|")

	parties := collectGroups(t, msg.Groups(&testPartyIDs))
	if len(parties) != 2 {
		t.Fatalf("got %d parties, want 2", len(parties))
	}

	// The nested region is absorbed into the first instance.
	if f, ok := parties[0].Find(448); !ok || string(f.Value) != "BROKER1" {
		t.Errorf("party 0 Find(448) = %q, %v", f.Value, ok)
	}
	if f, ok := parties[1].Find(448); !ok || string(f.Value) != "BROKER2" {
		t.Errorf("party 1 Find(448) = %q, %v", f.Value, ok)
	}

	subs := collectGroups(t, parties[0].Groups(&testPartySubIDs))
	if len(subs) != 1 {
		t.Fatalf("party 0 sub IDs = %d, want 1", len(subs))
	}
	if f, ok := subs[0].Find(523); !ok || string(f.Value) != "DESK-A" {
		t.Errorf("sub Find(523) = %q, %v", f.Value, ok)
	}
	if f, ok := subs[0].Find(803); !ok || string(f.Value) != "26" {
		t.Errorf("sub Find(803) = %q, %v", f.Value, ok)
	}

	// The second party has no nested entries.
	it := parties[1].Groups(&testPartySubIDs)
	if it.Next() {
		t.Error("party 1 nested Next() = true, want false")
	}
	if err := it.Err(); err != nil {
		t.Errorf("party 1 nested Err() = %v, want nil", err)
	}
}

func TestGroupsNestedBoundariesAcrossParents(t *testing.T) {
	// Two parties, each with its own nested entries: sub-resolution must
	// not leak across parent instances.
	msg := decodeOK(t, "8=FIX.4.4|9=0|453=2|"+
		"448=A|447=D|802=1|523=S1|803=1|"+
		"448=B|447=D|802=2|523=S2|803=2|523=S3|803=3|10=000|")

	parties := collectGroups(t, msg.Groups(&testPartyIDs))
	if len(parties) != 2 {
		t.Fatalf("got %d parties, want 2", len(parties))
	}

	subsA := collectGroups(t, parties[0].Groups(&testPartySubIDs))
	if len(subsA) != 1 {
		t.Fatalf("party A subs = %d, want 1", len(subsA))
	}
	if f, _ := subsA[0].Find(523); string(f.Value) != "S1" {
		t.Errorf("party A sub = %q, want S1", f.Value)
	}

	subsB := collectGroups(t, parties[1].Groups(&testPartySubIDs))
	if len(subsB) != 2 {
		t.Fatalf("party B subs = %d, want 2", len(subsB))
	}
	if f, _ := subsB[0].Find(523); string(f.Value) != "S2" {
		t.Errorf("party B sub 0 = %q, want S2", f.Value)
	}
	if f, _ := subsB[1].Find(523); string(f.Value) != "S3" {
		t.Errorf("party B sub 1 = %q, want S3", f.Value)
	}
}

func TestGroupsRemaining(t *testing.T) {
	msg := decodeOK(t, "8=FIX.4.2|9=0|268=2|269=0|270=1|269=1|270=2|10=000|")

	it := msg.Groups(&testMDEntries)
	if it.Remaining() != 2 {
		t.Errorf("Remaining() = %d, want 2", it.Remaining())
	}
	it.Next()
	if it.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", it.Remaining())
	}
	it.Next()
	it.Next()
	if it.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", it.Remaining())
	}
}

func TestGroupString(t *testing.T) {
	msg := decodeOK(t, "8=FIX.4.2|9=0|268=1|269=0|270=1.5|10=000|")
	entries := collectGroups(t, msg.Groups(&testMDEntries))
	if got := entries[0].String(); got != "269=0|270=1.5|" {
		t.Errorf("String() = %q, want 269=0|270=1.5|", got)
	}
}
