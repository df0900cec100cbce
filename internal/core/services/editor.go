package services

import "strings"

// Editor is the in-memory tag/organization working set. It is local
// until a submission or edit commits its payload; it never talks to
// the network.
//
// Tags have set semantics (adding a present tag is a no-op) but keep
// insertion order for display.
type Editor struct {
	tags         []string
	organization string
}

// NewEditor creates an empty working set.
func NewEditor() *Editor {
	return &Editor{}
}

// AddTag adds a tag to the working set. Blank tags and duplicates are
// no-ops.
func (e *Editor) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	for _, t := range e.tags {
		if t == tag {
			return
		}
	}
	e.tags = append(e.tags, tag)
}

// RemoveTag filters a tag out of the working set.
func (e *Editor) RemoveTag(tag string) {
	kept := e.tags[:0]
	for _, t := range e.tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	e.tags = kept
}

// SetTags replaces the working set, dropping blanks and duplicates.
func (e *Editor) SetTags(tags []string) {
	e.tags = nil
	for _, t := range tags {
		e.AddTag(t)
	}
}

// Tags returns the working set in display order.
func (e *Editor) Tags() []string {
	out := make([]string, len(e.tags))
	copy(out, e.tags)
	return out
}

// SelectOrganization records the organization selection. The value
// comes from the fetched picklist or a locally created organization
// after its round-trip completed.
func (e *Editor) SelectOrganization(id string) {
	e.organization = id
}

// Organization returns the current selection, empty for none.
func (e *Editor) Organization() string {
	return e.organization
}

// Payload returns the {organization, tags} pair consumed by the job
// and mutation controllers.
func (e *Editor) Payload() (string, []string) {
	return e.organization, e.Tags()
}

// Reset clears the working set.
func (e *Editor) Reset() {
	e.tags = nil
	e.organization = ""
}
