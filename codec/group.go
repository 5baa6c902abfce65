// group.go
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

import "iter"

// GroupSpec describes one repeating group.
//
// FIX does not delimit the end of a group on the wire; termination is
// inferred from "the next tag that is not a member". MemberTags must
// therefore list every tag that may legally appear inside an instance.
// Tags belonging to NestedSpecs (their count, delimiter and member tags)
// are treated as members of the enclosing instance automatically — the
// nested region is absorbed during outer extraction and only split out
// when the caller resolves it.
type GroupSpec struct {
	// CountTag is the NO_* tag whose value declares the instance count.
	CountTag Tag
	// DelimiterTag is the first tag of every instance; its reappearance
	// starts the next instance.
	DelimiterTag Tag
	// MemberTags are the tags that may appear inside an instance,
	// including the delimiter tag itself.
	MemberTags []Tag
	// NestedSpecs are the repeating groups that may appear inside an
	// instance.
	NestedSpecs []*GroupSpec
}

// member reports whether t may appear inside an instance of s, counting
// the count/delimiter/member tags of nested specs at any depth. Member
// lists are short static slices, so a linear scan beats building per-spec
// lookup structures at runtime.
func (s *GroupSpec) member(t Tag) bool {
	for _, m := range s.MemberTags {
		if m == t {
			return true
		}
	}
	for _, ns := range s.NestedSpecs {
		if t == ns.CountTag || t == ns.DelimiterTag || ns.member(t) {
			return true
		}
	}
	return false
}

// Group is a zero-copy view over one repeating-group instance: a
// contiguous subrange of the parent view's fields. It presents the same
// interface as Message minus framing validation, and lives no longer than
// the Message that produced it.
type Group struct {
	buf    []byte
	fields []fieldRef
}

// Len returns the number of fields in this instance.
func (g Group) Len() int {
	return len(g.fields)
}

// Field returns the field at position i within the instance.
// Panics if i is out of range.
func (g Group) Field(i int) Field {
	r := g.fields[i]
	return Field{Tag: r.tag, Value: g.buf[r.start:r.end]}
}

// Fields iterates the instance's fields in wire order.
func (g Group) Fields() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for _, r := range g.fields {
			if !yield(Field{Tag: r.tag, Value: g.buf[r.start:r.end]}) {
				return
			}
		}
	}
}

// Find returns the first field carrying tag within this instance. Group
// instances are small, so this is a plain forward scan — no lazy index.
func (g Group) Find(tag Tag) (Field, bool) {
	for _, r := range g.fields {
		if r.tag == tag {
			return Field{Tag: r.tag, Value: g.buf[r.start:r.end]}, true
		}
	}
	return Field{}, false
}

// Groups resolves a repeating group nested inside this instance. The
// instance's field range is already bounded, so the nested iterator cannot
// leak into sibling instances of the parent group.
func (g Group) Groups(spec *GroupSpec) GroupIter {
	return newGroupIter(g.buf, g.fields, spec)
}

// String renders the instance with '|' in place of SOH. Debug output only.
func (g Group) String() string {
	return renderFields(g.buf, g.fields)
}

// GroupIter walks the instances of one repeating group, bufio.Scanner
// style:
//
//	it := msg.Groups(&fix.MDEntries)
//	for it.Next() {
//	    g := it.Group()
//	}
//	if err := it.Err(); err != nil { ... }
//
// Resolution is lazy: instance boundaries are discovered as Next advances,
// and a count/instance disagreement surfaces through Err only once the
// shortfall is reached.
type GroupIter struct {
	buf      []byte
	rest     []fieldRef // unconsumed fields, starting at the next delimiter
	spec     *GroupSpec
	declared int
	emitted  int
	cur      Group
	err      error
	done     bool
}

// newGroupIter positions an iterator just after spec's count tag within
// fields, validating the count value and the leading delimiter up front.
func newGroupIter(buf []byte, fields []fieldRef, spec *GroupSpec) GroupIter {
	it := GroupIter{buf: buf, spec: spec}

	countAt := -1
	for i, r := range fields {
		if r.tag == spec.CountTag {
			countAt = i
			break
		}
	}
	if countAt < 0 {
		// The group is simply not present. Legal, not an error.
		it.done = true
		return it
	}

	c := fields[countAt]
	count, ok := parseDecimal(buf[c.start:c.end])
	if !ok {
		it.done = true
		it.err = ErrMalformedGroupCount
		return it
	}
	it.declared = count
	if count == 0 {
		it.done = true
		return it
	}

	rest := fields[countAt+1:]
	if len(rest) == 0 || rest[0].tag != spec.DelimiterTag {
		// Covers both a missing delimiter and a member tag smuggled in
		// between the count tag and the first instance.
		it.done = true
		it.err = ErrMissingGroupDelimiter
		return it
	}
	it.rest = rest
	return it
}

// Next advances to the next instance. It returns false when the declared
// count has been produced, the group terminated early, or resolution
// failed; consult Err to tell the last two apart.
func (it *GroupIter) Next() bool {
	if it.done {
		return false
	}
	if it.emitted == it.declared {
		// Anything beyond the declared count — even another delimiter —
		// belongs to the enclosing view.
		it.done = true
		return false
	}
	if len(it.rest) == 0 || it.rest[0].tag != it.spec.DelimiterTag {
		it.done = true
		it.err = &GroupCountMismatchError{Declared: it.declared, Found: it.emitted}
		return false
	}

	// The instance runs from the delimiter through every consecutive
	// member tag. Nested-group tags count as members here; the nested
	// region is split out lazily by Group.Groups.
	end := 1
	for end < len(it.rest) {
		t := it.rest[end].tag
		if t == it.spec.DelimiterTag || !it.spec.member(t) {
			break
		}
		end++
	}

	it.cur = Group{buf: it.buf, fields: it.rest[:end]}
	it.rest = it.rest[end:]
	it.emitted++
	return true
}

// Group returns the instance produced by the last successful Next call.
func (it *GroupIter) Group() Group {
	return it.cur
}

// Err returns the resolution error, if any. It is nil after a complete,
// well-formed walk — including the empty walk over an absent group.
func (it *GroupIter) Err() error {
	return it.err
}

// Remaining returns how many declared instances have not been produced
// yet. Useful for pre-sizing caller-side storage.
func (it *GroupIter) Remaining() int {
	if it.done {
		return 0
	}
	return it.declared - it.emitted
}

// Collect drains the iterator into a slice. Convenience for callers that
// want all instances at once and don't mind one allocation; hot paths
// should loop over Next instead.
func (it *GroupIter) Collect() ([]Group, error) {
	var out []Group
	if n := it.Remaining(); n > 0 {
		out = make([]Group, 0, n)
	}
	for it.Next() {
		out = append(out, it.Group())
	}
	if it.err != nil {
		return nil, it.err
	}
	return out, nil
}
