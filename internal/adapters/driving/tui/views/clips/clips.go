// Package clips provides the paginated clip listing view for the TUI.
package clips

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clipworks/clipctl/internal/adapters/driving/tui/components/cliplist"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/components/input"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/components/status"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/keymap"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/messages"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/styles"
	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driving"
)

// View is the clip listing with debounced search, organization
// filtering, and pagination.
//
// Typing in the search box bumps the list controller's generation and
// arms a timer per keystroke. When a timer fires, its generation is
// compared against the controller's current one: a mismatch means more
// keystrokes arrived and a newer timer is pending, so the elapsed one
// is dropped. Fetch responses are tied to a generation the same way;
// the controller discards any that are stale by the time they return.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	search    *input.Field
	list      *cliplist.ClipList
	statusbar *status.Bar

	listService driving.ListService
	mutations   driving.MutationService
	directory   driving.DirectoryService
	ctx         context.Context

	// orgs is the organization filter cycle: "all" first, then each
	// fetched organization.
	orgs     []string
	orgIndex int

	// pendingDelete is the record awaiting delete confirmation, nil
	// when no confirmation is open.
	pendingDelete *domain.Record

	width       int
	height      int
	ready       bool
	focusSearch bool
	err         error
}

// NewView creates the clip listing view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	listService driving.ListService,
	mutations driving.MutationService,
	directory driving.DirectoryService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:      s,
		keymap:      km,
		search:      input.NewField(s, "Search", "Filter clips..."),
		list:        cliplist.NewClipList(s),
		statusbar:   status.NewBar(s, km),
		listService: listService,
		mutations:   mutations,
		directory:   directory,
		ctx:         context.Background(),
		orgs:        []string{domain.OrgFilterAll},
		width:       80,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init refetches the listing and the organization picklist.
func (v *View) Init() tea.Cmd {
	v.statusbar.SetState(status.StateLoading)
	return tea.Batch(
		v.fetchCmd(v.listService.Invalidate()),
		v.loadOrgsCmd(),
	)
}

// Update handles messages for the clips view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchDebounceElapsed:
		// Stale timer: a newer keystroke armed a newer timer.
		if msg.Generation != v.listService.Generation() {
			return v, nil
		}
		return v, v.fetchCmd(v.listService.PlanCurrent())

	case messages.ClipsLoaded:
		v.handleClipsLoaded(msg)
		return v, nil

	case messages.OrganizationsLoaded:
		if msg.Err == nil {
			v.orgs = v.orgs[:1]
			for _, org := range msg.Organizations {
				v.orgs = append(v.orgs, org.Name)
			}
			if v.orgIndex >= len(v.orgs) {
				v.orgIndex = 0
			}
		}
		return v, nil

	case messages.RecordDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(domain.UserMessage(msg.Err))
			return v, nil
		}
		v.statusbar.SetState(status.StateMessage)
		v.statusbar.SetMessage("Deleted " + msg.ID)
		// The deletion invalidated the listing; fetch the bumped
		// generation.
		return v, v.fetchCmd(v.listService.PlanCurrent())

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(domain.UserMessage(msg.Err))
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.pendingDelete != nil {
		return v.handleConfirmKey(msg)
	}

	if v.focusSearch {
		return v.handleSearchKey(msg)
	}

	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if msg.Type == tea.KeyEnter {
		if rec := v.list.SelectedRecord(); rec != nil {
			selected := *rec
			return v, func() tea.Msg {
				return messages.RecordSelected{Record: selected}
			}
		}
		return v, nil
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Search):
		v.focusSearch = true
		return v, v.search.Focus()

	case keymap.Matches(msg.String(), v.keymap.FilterOrg):
		return v, v.cycleOrgFilter()

	case keymap.Matches(msg.String(), v.keymap.NextPage):
		return v, v.changePage(1)

	case keymap.Matches(msg.String(), v.keymap.PrevPage):
		return v, v.changePage(-1)

	case keymap.Matches(msg.String(), v.keymap.Refresh):
		v.statusbar.SetState(status.StateLoading)
		return v, v.fetchCmd(v.listService.Invalidate())

	case keymap.Matches(msg.String(), v.keymap.Delete):
		if rec := v.list.SelectedRecord(); rec != nil {
			pending := *rec
			v.pendingDelete = &pending
		}
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Preview):
		if rec := v.list.SelectedRecord(); rec != nil {
			selected := *rec
			return v, func() tea.Msg {
				return messages.RecordSelected{Record: selected}
			}
		}
		return v, nil
	}

	// Navigation keys go to the list component.
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// handleSearchKey processes keys while the search input has focus.
func (v *View) handleSearchKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.focusSearch = false
		v.search.Blur()
		return v, nil

	case tea.KeyEnter:
		// Flush: skip the remaining quiescence window. The bump
		// supersedes any armed debounce timer, so its elapsed tick is
		// dropped instead of issuing a second fetch.
		v.focusSearch = false
		v.search.Blur()
		return v, v.fetchCmd(v.listService.Invalidate())
	}

	before := v.search.Value()
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	term := v.search.Value()
	if term == before {
		return v, cmd
	}

	// Every keystroke bumps the generation and arms a fresh timer.
	plan := v.listService.SetSearch(term)
	v.statusbar.SetState(status.StateLoading)
	tick := tea.Tick(v.listService.Debounce(), func(time.Time) tea.Msg {
		return messages.SearchDebounceElapsed{Generation: plan.Generation}
	})
	return v, tea.Batch(cmd, tick)
}

// handleConfirmKey processes keys while a delete confirmation is open.
func (v *View) handleConfirmKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		rec := v.pendingDelete
		v.pendingDelete = nil
		return v, v.deleteCmd(rec.ID)
	case "n", "N", "esc":
		v.pendingDelete = nil
		return v, nil
	}
	return v, nil
}

// cycleOrgFilter advances the organization filter and refetches.
func (v *View) cycleOrgFilter() tea.Cmd {
	if len(v.orgs) == 0 {
		return nil
	}
	v.orgIndex = (v.orgIndex + 1) % len(v.orgs)
	v.statusbar.SetState(status.StateLoading)
	return v.fetchCmd(v.listService.SetOrganization(v.orgs[v.orgIndex]))
}

// changePage moves by delta pages, staying within bounds.
func (v *View) changePage(delta int) tea.Cmd {
	page := v.listService.Query().Page + delta
	if page < 1 {
		return nil
	}
	if current := v.listService.Page(); current != nil && page > current.TotalPages {
		return nil
	}
	v.statusbar.SetState(status.StateLoading)
	return v.fetchCmd(v.listService.SetPage(page))
}

// fetchCmd runs the plan's fetch off the event loop. The outcome comes
// back as a ClipsLoaded message carrying the plan's generation.
func (v *View) fetchCmd(plan domain.FetchPlan) tea.Cmd {
	return func() tea.Msg {
		page, err := v.listService.Run(v.ctx, plan)
		return messages.ClipsLoaded{Generation: plan.Generation, Page: page, Err: err}
	}
}

// loadOrgsCmd fetches the organization picklist.
func (v *View) loadOrgsCmd() tea.Cmd {
	return func() tea.Msg {
		orgs, err := v.directory.Organizations(v.ctx)
		return messages.OrganizationsLoaded{Organizations: orgs, Err: err}
	}
}

// deleteCmd removes a record. The confirmation already happened in the
// overlay, so the predicate approves unconditionally.
func (v *View) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := v.mutations.Remove(v.ctx, id, func() bool { return true })
		return messages.RecordDeleted{ID: id, Err: err}
	}
}

// handleClipsLoaded feeds a fetch outcome into the controller and
// refreshes the list when it was applied.
func (v *View) handleClipsLoaded(msg messages.ClipsLoaded) {
	if !v.listService.Apply(msg.Generation, msg.Page, msg.Err) {
		return
	}

	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(domain.UserMessage(msg.Err))
		return
	}

	v.err = nil
	v.list.SetPage(v.listService.Page())
	v.statusbar.Clear()
}

// View renders the clips view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	sections = append(sections, v.styles.Title.Render("Clips"), "")
	sections = append(sections, v.search.View(), "")

	if v.orgIndex > 0 {
		filter := v.styles.Subtitle.Render("Organization: " + v.orgs[v.orgIndex])
		sections = append(sections, filter, "")
	}

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+domain.UserMessage(v.err)), "")
	}

	sections = append(sections, v.list.View())

	if v.pendingDelete != nil {
		box := v.styles.Border.Padding(0, 1).Render(
			"Delete \"" + v.pendingDelete.Title + "\"? [y/n]",
		)
		sections = append(sections, "", box)
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.search.SetWidth(width)
	v.list.SetDimensions(width, height-10)
	v.statusbar.SetWidth(width)
}

// Reset returns the view to its unfocused state. The query and page
// survive so re-entering the view keeps the user's place.
func (v *View) Reset() {
	v.focusSearch = false
	v.search.Blur()
	v.pendingDelete = nil
	v.err = nil
	v.statusbar.Clear()
}

// SearchFocused reports whether the search input has focus.
func (v *View) SearchFocused() bool {
	return v.focusSearch
}

// PendingDelete returns the record awaiting confirmation, or nil.
func (v *View) PendingDelete() *domain.Record {
	return v.pendingDelete
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// SelectedRecord returns the list's current selection.
func (v *View) SelectedRecord() *domain.Record {
	return v.list.SelectedRecord()
}
