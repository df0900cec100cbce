package domain

// OrgFilterAll is the sentinel organization filter meaning "no filter".
const OrgFilterAll = "all"

// DefaultPerPage is the page size used when none is configured.
const DefaultPerPage = 10

// ListQuery is the canonical query for the paginated record list.
type ListQuery struct {
	// SearchTerm filters records by title and source URL substring.
	SearchTerm string

	// Organization filters records to one organization.
	// OrgFilterAll disables the filter.
	Organization string

	// Page is the 1-indexed page number.
	Page int

	// PerPage is the fixed page size.
	PerPage int
}

// NewListQuery returns an unfiltered first-page query.
func NewListQuery(perPage int) ListQuery {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return ListQuery{
		Organization: OrgFilterAll,
		Page:         1,
		PerPage:      perPage,
	}
}

// Filtered reports whether any filter is active.
func (q ListQuery) Filtered() bool {
	return q.SearchTerm != "" || (q.Organization != "" && q.Organization != OrgFilterAll)
}

// ListPage is a server-computed, point-in-time view of one page of
// records. It is always replaced wholesale, never patched in place.
type ListPage struct {
	// Items are the records on this page, in server order.
	Items []Record

	// TotalPages is the number of pages for the current filters.
	TotalPages int

	// Page is the 1-indexed page this view represents.
	Page int

	// PerPage is the page size the server applied.
	PerPage int
}

// ListPhase tracks the read-path state per query generation.
type ListPhase int

const (
	// ListIdle means no fetch has been requested yet.
	ListIdle ListPhase = iota

	// ListLoading means a fetch for the current generation is pending.
	ListLoading

	// ListLoaded means the current generation's page has been applied.
	ListLoaded

	// ListErrored means the current generation's fetch failed; any
	// previously loaded page is retained for display.
	ListErrored
)

// String returns the phase name.
func (p ListPhase) String() string {
	switch p {
	case ListIdle:
		return "idle"
	case ListLoading:
		return "loading"
	case ListLoaded:
		return "loaded"
	case ListErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// FetchPlan is the token handed out for one read-path fetch.
// Generation identifies the query version the fetch belongs to; a
// response is applied only while its generation is still current.
type FetchPlan struct {
	// Generation is the monotonic query version.
	Generation uint64

	// Query is the query to send.
	Query ListQuery

	// Debounced marks plans that must wait out the quiescence window
	// before being issued (search term edits).
	Debounced bool
}
