// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/clipworks/clipctl/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewClips is the paginated clip listing with search.
	ViewClips
	// ViewSubmit is the new-clip submission form.
	ViewSubmit
	// ViewPreview shows a single record's rendered content.
	ViewPreview
	// ViewOrgs is the organization management view.
	ViewOrgs
	// ViewStats is the service statistics view.
	ViewStats
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewClips:
		return "clips"
	case ViewSubmit:
		return "submit"
	case ViewPreview:
		return "preview"
	case ViewOrgs:
		return "orgs"
	case ViewStats:
		return "stats"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SearchDebounceElapsed fires when the search quiescence window for a
// particular query generation has passed. Handlers must compare the
// generation against the list controller's current one: a stale timer
// means more keystrokes arrived and a newer timer is pending.
type SearchDebounceElapsed struct {
	Generation uint64
}

// ClipsLoaded carries one fetched page back to the model. The
// generation ties the response to the query that requested it.
type ClipsLoaded struct {
	Generation uint64
	Page       domain.ListPage
	Err        error
}

// JobCompleted signals that a clip submission finished.
type JobCompleted struct {
	Job domain.Job
	Err error
}

// RecordUpdated signals that a record mutation finished.
type RecordUpdated struct {
	Record domain.Record
	Err    error
}

// RecordDeleted signals that a record deletion finished.
type RecordDeleted struct {
	ID  string
	Err error
}

// PreviewLoaded carries one record's rendered preview HTML.
type PreviewLoaded struct {
	RecordID string
	HTML     string
	Err      error
}

// MarkdownLoaded carries one record's markdown artifact for terminal
// rendering.
type MarkdownLoaded struct {
	RecordID string
	Markdown string
	Err      error
}

// OrganizationsLoaded carries the organization picklist.
type OrganizationsLoaded struct {
	Organizations []domain.Organization
	Err           error
}

// OrganizationCreated signals an organization was created.
type OrganizationCreated struct {
	Organization domain.Organization
	Err          error
}

// OrganizationDeleted signals an organization was deleted.
type OrganizationDeleted struct {
	ID  string
	Err error
}

// TagsLoaded carries the known tag list for the submission form.
type TagsLoaded struct {
	Tags []string
	Err  error
}

// StatsLoaded carries the service-wide dashboard summary.
type StatsLoaded struct {
	Stats domain.Stats
	Err   error
}

// RecordSelected signals a record was chosen for the preview view.
type RecordSelected struct {
	Record domain.Record
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
