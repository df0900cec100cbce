package domain

import "time"

// Record is a persisted clip result.
// Identity is ID, immutable once created. Title, Tags and Organization
// may change after creation; everything else is fixed by the clip job.
type Record struct {
	// ID is the opaque identifier assigned by the server.
	ID string

	// Title is the human-readable title extracted from the source.
	Title string

	// SourceURL is the URL the clip was taken from.
	SourceURL string

	// CreatedAt is when the clip was produced.
	CreatedAt time.Time

	// Organization is the owning organization, empty if unassigned.
	Organization string

	// Tags are display-ordered labels with set semantics.
	Tags []string

	// MarkdownPath is the server-side path of the markdown artifact, if any.
	MarkdownPath string

	// PDFPath is the server-side path of the PDF artifact, if any.
	PDFPath string
}

// HasTag reports whether the record carries the given tag.
func (r Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RecordPatch describes a partial update to a record.
// Nil fields are left untouched by the server.
type RecordPatch struct {
	// Title replaces the record title when non-nil.
	Title *string

	// Tags replaces the full tag set when non-nil.
	Tags *[]string

	// Organization reassigns the record when non-nil.
	Organization *string
}

// IsZero reports whether the patch would change nothing.
func (p RecordPatch) IsZero() bool {
	return p.Title == nil && p.Tags == nil && p.Organization == nil
}
