// Package types defines the resume document model shared by the
// tailoring engine, the HTTP API, and the CLI.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Layout identifies how a section's content is rendered.
// The value is display-only; content shape is determined by the
// JSON/YAML shape itself, not by the layout tag.
type Layout string

// Known layout values. Other values are passed through untouched.
const (
	LayoutText     Layout = "text"
	LayoutList     Layout = "list"
	LayoutListPane Layout = "list-pane"
	LayoutTop      Layout = "top"
)

// ResumeDocument is the unit of state passed through the whole
// pipeline: the canonical resume loaded from configuration, and the
// tailored copy produced per request.
type ResumeDocument struct {
	Profile        Profile   `json:"profile"`
	Sections       []Section `json:"sections"`
	SkillsTaxonomy Taxonomy  `json:"skills_taxonomy"`
}

// Taxonomy is a second document of sections holding the full skills
// breakdown, separate from the display sections.
type Taxonomy struct {
	Sections []Section `json:"sections"`
}

// Profile holds the header information of the resume.
type Profile struct {
	Name             string    `json:"name"`
	Title            string    `json:"title"`
	Emails           EmailList `json:"email,omitempty"`
	Website          string    `json:"website,omitempty"`
	GitHubUsername   string    `json:"github_username,omitempty"`
	LinkedInUsername string    `json:"linkedin_username,omitempty"`
	About            string    `json:"about"`
}

// EmailList accepts either a single address or a list of addresses on
// the wire. A single element marshals back to a bare string.
type EmailList []string

// UnmarshalJSON implements json.Unmarshaler.
func (e *EmailList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*e = nil
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*e = EmailList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return fmt.Errorf("email must be a string or a list of strings: %w", err)
	}
	*e = EmailList(list)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (e EmailList) MarshalJSON() ([]byte, error) {
	if len(e) == 1 {
		return json.Marshal(e[0])
	}
	return json.Marshal([]string(e))
}

// Section is a named, laid-out block of resume content.
type Section struct {
	Title       string         `json:"title"`
	Layout      Layout         `json:"layout,omitempty"`
	Description string         `json:"description,omitempty"`
	Content     SectionContent `json:"content"`
}

// SectionContent is a closed set of content variants: markdown text,
// an ordered item list, or an opaque raw value kept for forward
// compatibility. Exactly one variant is populated; the wire shape
// (string vs array vs anything else) selects the variant.
type SectionContent struct {
	Text  string
	Items []Item
	Raw   json.RawMessage
}

// TextContent returns a text-variant content value.
func TextContent(text string) SectionContent {
	return SectionContent{Text: text}
}

// ItemsContent returns an item-list-variant content value. A nil
// slice is normalized to an empty list so the variant stays selected.
func ItemsContent(items []Item) SectionContent {
	if items == nil {
		items = []Item{}
	}
	return SectionContent{Items: items}
}

// IsZero reports whether no variant is populated.
func (c SectionContent) IsZero() bool {
	return c.Text == "" && c.Items == nil && len(c.Raw) == 0
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *SectionContent) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*c = SectionContent{}
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*c = SectionContent{Text: s}
	case '[':
		var items []Item
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*c = ItemsContent(items)
	default:
		*c = SectionContent{Raw: append(json.RawMessage(nil), trimmed...)}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c SectionContent) MarshalJSON() ([]byte, error) {
	switch {
	case c.Items != nil:
		return json.Marshal(c.Items)
	case c.Text != "":
		return json.Marshal(c.Text)
	case len(c.Raw) > 0:
		return append([]byte(nil), c.Raw...), nil
	default:
		return []byte("null"), nil
	}
}

// Item is one entry within a section. The shape is identical whether
// the item represents a job, a degree, a certification, or a skill;
// the owning section's title determines the semantic meaning.
type Item struct {
	Title       string `json:"title"`
	SubTitle    string `json:"sub_title,omitempty"`
	Caption     string `json:"caption,omitempty"`
	Description string `json:"description,omitempty"`
	Set         string `json:"set,omitempty"`
}

// UnmarshalJSON accepts either an item object or a bare string, which
// is treated as a title-only item. Models asked for skill lists
// frequently reply with plain strings.
func (it *Item) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*it = Item{Title: s}
		return nil
	}
	type plain Item
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*it = Item(p)
	return nil
}

// Section returns the first section with the given title, or nil.
// Titles are treated as unique by all consumers; first match wins.
func (d *ResumeDocument) Section(title string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Title == title {
			return &d.Sections[i]
		}
	}
	return nil
}

// SectionItems returns the item list of the named section. A missing
// section, or one holding non-list content, degrades to an empty
// list, never an error.
func (d *ResumeDocument) SectionItems(title string) []Item {
	if sec := d.Section(title); sec != nil && sec.Content.Items != nil {
		return sec.Content.Items
	}
	return []Item{}
}

// Clone returns a deep copy of the document. Tailoring always
// operates on a clone; the canonical document is never mutated.
func (d *ResumeDocument) Clone() *ResumeDocument {
	out := &ResumeDocument{
		Profile:  d.Profile,
		Sections: cloneSections(d.Sections),
		SkillsTaxonomy: Taxonomy{
			Sections: cloneSections(d.SkillsTaxonomy.Sections),
		},
	}
	out.Profile.Emails = append(EmailList(nil), d.Profile.Emails...)
	return out
}

func cloneSections(sections []Section) []Section {
	if sections == nil {
		return nil
	}
	out := make([]Section, len(sections))
	for i, sec := range sections {
		out[i] = sec
		if sec.Content.Items != nil {
			out[i].Content.Items = append([]Item(nil), sec.Content.Items...)
		}
		if len(sec.Content.Raw) > 0 {
			out[i].Content.Raw = append(json.RawMessage(nil), sec.Content.Raw...)
		}
	}
	return out
}
