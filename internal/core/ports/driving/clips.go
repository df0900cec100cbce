package driving

import (
	"context"
	"time"

	"github.com/clipworks/clipctl/internal/core/domain"
)

// ListService is the read path over the record collection.
//
// It owns the canonical ListQuery, the monotonic generation counter,
// and the current ListPage, and is the page's single writer. Intent
// methods (SetSearch, SetOrganization, SetPage, Invalidate) bump the
// generation and return a FetchPlan; the caller issues the fetch and
// feeds the outcome back through Apply, which silently discards
// responses whose generation is no longer current.
type ListService interface {
	// Query returns the current canonical query.
	Query() domain.ListQuery

	// Phase returns the read-path phase for the current generation.
	Phase() domain.ListPhase

	// Page returns the last successfully applied page, or nil.
	// A failed refresh retains the previous page.
	Page() *domain.ListPage

	// Err returns the retained error while Phase is ListErrored.
	Err() error

	// Generation returns the current query generation.
	Generation() uint64

	// Debounce returns the search quiescence window.
	Debounce() time.Duration

	// SetSearch updates the search term, resets the page to 1, and
	// returns a debounced fetch plan.
	SetSearch(term string) domain.FetchPlan

	// SetOrganization updates the organization filter, resets the
	// page to 1, and returns an immediate fetch plan.
	SetOrganization(org string) domain.FetchPlan

	// SetPage moves to the given page without touching the filters
	// and returns an immediate fetch plan.
	SetPage(page int) domain.FetchPlan

	// Invalidate forces a refetch of the current query, e.g. after a
	// successful mutation.
	Invalidate() domain.FetchPlan

	// PlanCurrent returns a plan for the current generation and query
	// without bumping the generation.
	PlanCurrent() domain.FetchPlan

	// Run performs the plan's fetch without applying it. Callers in
	// event loops apply the outcome separately via Apply.
	Run(ctx context.Context, plan domain.FetchPlan) (domain.ListPage, error)

	// Apply records a fetch outcome. It returns false, changing
	// nothing, when the plan's generation is stale.
	Apply(generation uint64, page domain.ListPage, err error) bool

	// Fetch runs the plan and applies the outcome in one step, for
	// synchronous callers.
	Fetch(ctx context.Context, plan domain.FetchPlan) error
}
