// dictionary.go
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
	"encoding/xml"
	"fmt"
	"io"

	"github.com/stephenlclarke/fixwire/codec"
	"golang.org/x/net/html/charset"
)

// The built-in catalog covers the standard FIX 4.2/4.4 groups; venues that
// ship custom repeating groups publish them as QuickFIX-style XML data
// dictionaries. ParseDictionary turns such a file into codec.GroupSpec
// values mechanically, so the catalog never has to be hand-extended.

type rawDictionary struct {
	XMLName    xml.Name       `xml:"fix"`
	Major      string         `xml:"major,attr"`
	Minor      string         `xml:"minor,attr"`
	Fields     []rawField     `xml:"fields>field"`
	Messages   []rawContainer `xml:"messages>message"`
	Components []rawContainer `xml:"components>component"`
	Header     rawContainer   `xml:"header"`
	Trailer    rawContainer   `xml:"trailer"`
}

type rawField struct {
	Name   string `xml:"name,attr"`
	Number int    `xml:"number,attr"`
	Type   string `xml:"type,attr"`
}

type rawContainer struct {
	Name       string     `xml:"name,attr"`
	Fields     []rawRef   `xml:"field"`
	Groups     []rawGroup `xml:"group"`
	Components []rawRef   `xml:"component"`
}

type rawGroup struct {
	Name       string     `xml:"name,attr"`
	Fields     []rawRef   `xml:"field"`
	Groups     []rawGroup `xml:"group"`
	Components []rawRef   `xml:"component"`
}

type rawRef struct {
	Name string `xml:"name,attr"`
}

// Dictionary is a parsed FIX data dictionary: field name/tag maps plus one
// generated GroupSpec per distinct repeating group.
type Dictionary struct {
	Version string

	fieldByName map[string]codec.Tag
	nameByTag   map[codec.Tag]string
	typeByTag   map[codec.Tag]string
	groups      map[codec.Tag]*codec.GroupSpec
}

// ParseDictionary reads a QuickFIX-style XML data dictionary. Dictionary
// files in the wild are not always UTF-8, so the decoder accepts any
// charset the XML prolog declares.
func ParseDictionary(r io.Reader) (*Dictionary, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var raw rawDictionary
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("fix: parsing dictionary: %w", err)
	}

	d := &Dictionary{
		Version:     raw.Major + "." + raw.Minor,
		fieldByName: make(map[string]codec.Tag, len(raw.Fields)),
		nameByTag:   make(map[codec.Tag]string, len(raw.Fields)),
		typeByTag:   make(map[codec.Tag]string, len(raw.Fields)),
		groups:      make(map[codec.Tag]*codec.GroupSpec),
	}

	for _, f := range raw.Fields {
		if f.Number <= 0 {
			continue
		}
		tag := codec.Tag(f.Number)
		d.fieldByName[f.Name] = tag
		d.nameByTag[tag] = f.Name
		d.typeByTag[tag] = f.Type
	}

	comps := make(map[string]rawContainer, len(raw.Components))
	for _, c := range raw.Components {
		comps[c.Name] = c
	}

	containers := make([]rawContainer, 0, len(raw.Messages)+len(raw.Components)+2)
	containers = append(containers, raw.Header, raw.Trailer)
	containers = append(containers, raw.Messages...)
	containers = append(containers, raw.Components...)
	for _, c := range containers {
		d.collectGroups(c.Groups, comps)
	}

	return d, nil
}

// collectGroups builds one GroupSpec per <group> element, recursing into
// nested groups and expanding component references so that MemberTags is
// the exhaustive set the resolver needs to infer group termination.
func (d *Dictionary) collectGroups(groups []rawGroup, comps map[string]rawContainer) {
	for _, g := range groups {
		spec := d.buildGroupSpec(g, comps)
		if spec == nil {
			continue
		}
		// First definition wins: the same group can appear under several
		// messages with an identical shape.
		if _, seen := d.groups[spec.CountTag]; !seen {
			d.groups[spec.CountTag] = spec
		}
		d.collectGroups(g.Groups, comps)
	}
}

func (d *Dictionary) buildGroupSpec(g rawGroup, comps map[string]rawContainer) *codec.GroupSpec {
	countTag, ok := d.fieldByName[g.Name]
	if !ok {
		return nil
	}

	spec := &codec.GroupSpec{CountTag: countTag}
	d.appendGroupMembers(spec, g.Fields, g.Groups, g.Components, comps)
	if len(spec.MemberTags) == 0 {
		return nil
	}
	spec.DelimiterTag = spec.MemberTags[0]
	return spec
}

// appendGroupMembers flattens field refs, nested groups and component
// refs, in document order so the first member stays the delimiter.
func (d *Dictionary) appendGroupMembers(spec *codec.GroupSpec, fields []rawRef, groups []rawGroup, components []rawRef, comps map[string]rawContainer) {
	for _, ref := range fields {
		if tag, ok := d.fieldByName[ref.Name]; ok {
			spec.MemberTags = append(spec.MemberTags, tag)
		}
	}
	for _, ng := range groups {
		if nested := d.buildGroupSpec(ng, comps); nested != nil {
			spec.NestedSpecs = append(spec.NestedSpecs, nested)
		}
	}
	for _, cref := range components {
		comp, ok := comps[cref.Name]
		if !ok {
			continue
		}
		d.appendGroupMembers(spec, comp.Fields, comp.Groups, comp.Components, comps)
	}
}

// GroupSpec returns the generated spec whose count tag is countTag, or nil.
func (d *Dictionary) GroupSpec(countTag codec.Tag) *codec.GroupSpec {
	return d.groups[countTag]
}

// GroupSpecs returns every generated spec, keyed by count tag.
func (d *Dictionary) GroupSpecs() map[codec.Tag]*codec.GroupSpec {
	return d.groups
}

// FieldTag resolves a field name to its tag number.
func (d *Dictionary) FieldTag(name string) (codec.Tag, bool) {
	tag, ok := d.fieldByName[name]
	return tag, ok
}

// FieldName resolves a tag number to its dictionary name; the decimal tag
// string is returned for unknown tags, which makes it directly usable as
// the names callback of codec.Prettify.
func (d *Dictionary) FieldName(tag codec.Tag) string {
	if n, ok := d.nameByTag[tag]; ok {
		return n
	}
	return fmt.Sprintf("%d", tag)
}

// FieldType returns the dictionary type of tag (INT, PRICE, STRING, …), or
// "" when unknown.
func (d *Dictionary) FieldType(tag codec.Tag) string {
	return d.typeByTag[tag]
}
