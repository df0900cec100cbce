// Package stats provides the service statistics view for the TUI.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clipworks/clipctl/internal/adapters/driving/tui/messages"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/styles"
	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driving"
)

// View shows the service-wide dashboard summary.
type View struct {
	styles    *styles.Styles
	directory driving.DirectoryService
	ctx       context.Context

	stats   domain.Stats
	loaded  bool
	loading bool
	width   int
	height  int
	ready   bool
	err     error
}

// NewView creates the stats view.
func NewView(s *styles.Styles, directory driving.DirectoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:    s,
		directory: directory,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// Init loads the stats.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return func() tea.Msg {
		stats, err := v.directory.Stats(v.ctx)
		return messages.StatsLoaded{Stats: stats, Err: err}
	}
}

// Update handles messages for the stats view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc || msg.String() == "q" {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		if msg.String() == "r" {
			return v, v.Init()
		}
		return v, nil

	case messages.StatsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.stats = msg.Stats
		v.loaded = true
		return v, nil
	}

	return v, nil
}

// View renders the stats.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Stats"))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + domain.UserMessage(v.err)))
	case v.loading && !v.loaded:
		b.WriteString(v.styles.Muted.Render("Loading..."))
	default:
		rows := []struct {
			label string
			value string
		}{
			{"Total clips", fmt.Sprintf("%d", v.stats.TotalClips)},
			{"Organizations", fmt.Sprintf("%d", v.stats.TotalOrganizations)},
			{"Active projects", fmt.Sprintf("%d", v.stats.ActiveProjects)},
			{"Storage used", fmt.Sprintf("%.2f GB", v.stats.StorageUsedGB)},
		}
		for _, row := range rows {
			b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%-16s", row.label)))
			b.WriteString(v.styles.Normal.Render(row.value))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("[r] refresh  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Stats returns the loaded stats.
func (v *View) Stats() domain.Stats {
	return v.stats
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
