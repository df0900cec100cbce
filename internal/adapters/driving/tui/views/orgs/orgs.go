// Package orgs provides the organization management view for the TUI.
package orgs

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clipworks/clipctl/internal/adapters/driving/tui/components/input"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/keymap"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/messages"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/styles"
	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driving"
)

// View lists organizations and supports creating and deleting them.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	directory driving.DirectoryService
	mutations driving.MutationService
	ctx       context.Context

	orgs     []domain.Organization
	selected int

	// creating is true while the name input is open.
	creating  bool
	nameInput *input.Field

	// pendingDelete is the organization awaiting confirmation, nil
	// when no confirmation is open.
	pendingDelete *domain.Organization

	width   int
	height  int
	ready   bool
	loading bool
	message string
	err     error
}

// NewView creates the organization view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	directory driving.DirectoryService,
	mutations driving.MutationService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		directory: directory,
		mutations: mutations,
		ctx:       context.Background(),
		nameInput: input.NewField(s, "Name", "New organization name..."),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the organization list.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadCmd()
}

// loadCmd fetches the organization list.
func (v *View) loadCmd() tea.Cmd {
	return func() tea.Msg {
		orgs, err := v.directory.Organizations(v.ctx)
		return messages.OrganizationsLoaded{Organizations: orgs, Err: err}
	}
}

// createCmd creates an organization.
func (v *View) createCmd(name string) tea.Cmd {
	return func() tea.Msg {
		org, err := v.mutations.CreateOrganization(v.ctx, name, "")
		return messages.OrganizationCreated{Organization: org, Err: err}
	}
}

// deleteCmd removes an organization. The confirmation already happened
// in the overlay.
func (v *View) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := v.mutations.DeleteOrganization(v.ctx, id, func() bool { return true })
		return messages.OrganizationDeleted{ID: id, Err: err}
	}
}

// Update handles messages for the organization view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.OrganizationsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.orgs = msg.Organizations
		if v.selected >= len(v.orgs) {
			v.selected = 0
		}
		return v, nil

	case messages.OrganizationCreated:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.message = "Created " + msg.Organization.Name
		return v, v.loadCmd()

	case messages.OrganizationDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.message = "Deleted organization"
		return v, v.loadCmd()
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.creating {
		switch msg.Type {
		case tea.KeyEsc:
			v.creating = false
			v.nameInput.Blur()
			return v, nil
		case tea.KeyEnter:
			name := strings.TrimSpace(v.nameInput.Value())
			v.creating = false
			v.nameInput.Blur()
			v.nameInput.SetValue("")
			if name == "" {
				return v, nil
			}
			return v, v.createCmd(name)
		}
		var cmd tea.Cmd
		v.nameInput, cmd = v.nameInput.Update(msg)
		return v, cmd
	}

	if v.pendingDelete != nil {
		switch msg.String() {
		case "y", "Y":
			org := v.pendingDelete
			v.pendingDelete = nil
			return v, v.deleteCmd(org.ID)
		case "n", "N", "esc":
			v.pendingDelete = nil
			return v, nil
		}
		return v, nil
	}

	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(msg.String(), v.keymap.Down):
		if v.selected < len(v.orgs)-1 {
			v.selected++
		}
	case keymap.Matches(msg.String(), v.keymap.New):
		v.creating = true
		v.message = ""
		return v, v.nameInput.Focus()
	case keymap.Matches(msg.String(), v.keymap.Delete):
		if v.selected < len(v.orgs) {
			pending := v.orgs[v.selected]
			v.pendingDelete = &pending
		}
	case keymap.Matches(msg.String(), v.keymap.Refresh):
		v.loading = true
		return v, v.loadCmd()
	}

	return v, nil
}

// View renders the organization view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("Organizations"), "")

	switch {
	case v.loading:
		sections = append(sections, v.styles.Muted.Render("Loading..."))
	case len(v.orgs) == 0:
		sections = append(sections, v.styles.Muted.Render("No organizations"))
	default:
		for i, org := range v.orgs {
			indicator := "  "
			line := v.styles.Normal.Render(org.Name)
			if i == v.selected {
				indicator = "> "
				line = v.styles.Selected.Render(org.Name)
			}
			detail := ""
			if org.Description != "" {
				detail = "  " + v.styles.Muted.Render(org.Description)
			}
			sections = append(sections, indicator+line+detail)
			sections = append(sections, v.styles.Muted.Render(
				fmt.Sprintf("    %d members", org.MemberCount),
			))
		}
	}

	if v.creating {
		sections = append(sections, "", v.nameInput.View())
	}

	if v.pendingDelete != nil {
		box := v.styles.Border.Padding(0, 1).Render(
			"Delete organization \"" + v.pendingDelete.Name + "\"? [y/n]",
		)
		sections = append(sections, "", box)
	}

	if v.err != nil {
		sections = append(sections, "", v.styles.Error.Render("Error: "+domain.UserMessage(v.err)))
	} else if v.message != "" {
		sections = append(sections, "", v.styles.Success.Render(v.message))
	}

	sections = append(sections, "",
		v.styles.Muted.Render("[n] new  [d] delete  [r] refresh  [esc] back"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.nameInput.SetWidth(width)
}

// Reset closes any open overlay.
func (v *View) Reset() {
	v.creating = false
	v.nameInput.Blur()
	v.nameInput.SetValue("")
	v.pendingDelete = nil
	v.message = ""
	v.err = nil
}

// Organizations returns the loaded organizations.
func (v *View) Organizations() []domain.Organization {
	return v.orgs
}

// Selected returns the selected index.
func (v *View) Selected() int {
	return v.selected
}

// Creating reports whether the create input is open.
func (v *View) Creating() bool {
	return v.creating
}

// PendingDelete returns the organization awaiting confirmation, or nil.
func (v *View) PendingDelete() *domain.Organization {
	return v.pendingDelete
}
