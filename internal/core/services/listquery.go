package services

import (
	"context"
	"time"

	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driven"
	"github.com/clipworks/clipctl/internal/core/ports/driving"
	"github.com/clipworks/clipctl/internal/logger"
)

// Ensure ListController implements the interface.
var _ driving.ListService = (*ListController)(nil)

// DefaultDebounce is the search quiescence window used when none is
// configured.
const DefaultDebounce = 300 * time.Millisecond

// ListController owns the read path over the record collection: the
// canonical query, the generation counter, and the current page.
//
// Responses are applied in generation order: Apply discards any
// response whose generation is no longer current, so a slow fetch can
// never overwrite the result of a newer one. Search-term edits are
// debounced by the caller using the Debounced flag on the returned
// plan; organization and page changes fetch immediately.
//
// The controller is not safe for concurrent use. The TUI event loop
// serialises access; the CLI is single-shot.
type ListController struct {
	api driven.API

	query      domain.ListQuery
	generation uint64
	phase      domain.ListPhase
	page       *domain.ListPage
	err        error
	debounce   time.Duration
}

// NewListController creates a list controller with the given page size
// and search debounce window.
func NewListController(api driven.API, perPage int, debounce time.Duration) *ListController {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &ListController{
		api:      api,
		query:    domain.NewListQuery(perPage),
		phase:    domain.ListIdle,
		debounce: debounce,
	}
}

// Query returns the current canonical query.
func (c *ListController) Query() domain.ListQuery {
	return c.query
}

// Phase returns the read-path phase for the current generation.
func (c *ListController) Phase() domain.ListPhase {
	return c.phase
}

// Page returns the last successfully applied page, or nil.
func (c *ListController) Page() *domain.ListPage {
	return c.page
}

// Err returns the retained error while the phase is ListErrored.
func (c *ListController) Err() error {
	return c.err
}

// Generation returns the current query generation.
func (c *ListController) Generation() uint64 {
	return c.generation
}

// Debounce returns the search quiescence window.
func (c *ListController) Debounce() time.Duration {
	return c.debounce
}

// bump invalidates all in-flight fetches and plans a new one for the
// current query.
func (c *ListController) bump() domain.FetchPlan {
	c.generation++
	c.phase = domain.ListLoading
	return domain.FetchPlan{Generation: c.generation, Query: c.query}
}

// SetSearch updates the search term and resets the page to 1.
// The returned plan is debounced.
func (c *ListController) SetSearch(term string) domain.FetchPlan {
	c.query.SearchTerm = term
	c.query.Page = 1
	plan := c.bump()
	plan.Debounced = true
	return plan
}

// SetOrganization updates the organization filter and resets the page
// to 1. An empty filter is normalised to the all-organizations
// sentinel.
func (c *ListController) SetOrganization(org string) domain.FetchPlan {
	if org == "" {
		org = domain.OrgFilterAll
	}
	c.query.Organization = org
	c.query.Page = 1
	return c.bump()
}

// SetPage moves to the given page. The filters are untouched.
func (c *ListController) SetPage(page int) domain.FetchPlan {
	if page < 1 {
		page = 1
	}
	c.query.Page = page
	return c.bump()
}

// Invalidate forces a refetch of the current query.
func (c *ListController) Invalidate() domain.FetchPlan {
	return c.bump()
}

// PlanCurrent returns a plan for the current generation and query
// without invalidating anything.
func (c *ListController) PlanCurrent() domain.FetchPlan {
	return domain.FetchPlan{Generation: c.generation, Query: c.query}
}

// Run performs the plan's fetch without applying it.
func (c *ListController) Run(ctx context.Context, plan domain.FetchPlan) (domain.ListPage, error) {
	return c.api.ListRecords(ctx, plan.Query)
}

// Apply records a fetch outcome. Responses for superseded generations
// are discarded silently; that is the stale-response guard, not an
// error condition. A failed fetch keeps the previously loaded page so
// a broken refresh does not blank the list.
func (c *ListController) Apply(generation uint64, page domain.ListPage, err error) bool {
	if generation != c.generation {
		logger.Debug("discarding stale list response (generation %d, current %d)", generation, c.generation)
		return false
	}
	if err != nil {
		c.phase = domain.ListErrored
		c.err = err
		return true
	}
	c.phase = domain.ListLoaded
	c.err = nil
	c.page = &page
	return true
}

// Fetch runs the plan and applies the outcome in one step.
func (c *ListController) Fetch(ctx context.Context, plan domain.FetchPlan) error {
	page, err := c.Run(ctx, plan)
	c.Apply(plan.Generation, page, err)
	return err
}
