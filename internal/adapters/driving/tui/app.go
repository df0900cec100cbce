package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clipworks/clipctl/internal/adapters/driving/tui/messages"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/styles"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/views/clips"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/views/menu"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/views/orgs"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/views/preview"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/views/stats"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/views/submit"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// All controller state lives in the core services; the single Update
// loop is their only writer while the TUI runs. Commands only perform
// network calls and report back as messages.
type App struct {
	ports *Ports
	ctx   context.Context

	styles *styles.Styles

	menuView    *menu.View
	clipsView   *clips.View
	submitView  *submit.View
	previewView *preview.View
	orgsView    *orgs.View
	statsView   *stats.View

	currentView messages.ViewType
	err         error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s),
		clipsView:   clips.NewView(s, nil, ports.List, ports.Mutations, ports.Directory),
		submitView:  submit.NewView(s, nil, ports.Jobs, ports.Directory),
		previewView: preview.NewView(s, ports.Preview, ports.API),
		orgsView:    orgs.NewView(s, nil, ports.Directory, ports.Mutations),
		statsView:   stats.NewView(s, ports.Directory),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.clipsView.WithContext(ctx)
	a.submitView.WithContext(ctx)
	a.previewView.WithContext(ctx)
	a.orgsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("clipctl"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.clipsView.SetDimensions(msg.Width, msg.Height)
		a.submitView.SetDimensions(msg.Width, msg.Height)
		a.previewView.SetDimensions(msg.Width, msg.Height)
		a.orgsView.SetDimensions(msg.Width, msg.Height)
		a.statsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewClips:
			a.clipsView, cmd = a.clipsView.Update(msg)
		case messages.ViewSubmit:
			a.submitView, cmd = a.submitView.Update(msg)
		case messages.ViewPreview:
			a.previewView, cmd = a.previewView.Update(msg)
		case messages.ViewOrgs:
			a.orgsView, cmd = a.orgsView.Update(msg)
		case messages.ViewStats:
			a.statsView, cmd = a.statsView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "q" {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewClips:
			a.clipsView.Reset()
			return a, a.clipsView.Init()
		case messages.ViewSubmit:
			return a, a.submitView.Init()
		case messages.ViewOrgs:
			a.orgsView.Reset()
			return a, a.orgsView.Init()
		case messages.ViewStats:
			return a, a.statsView.Init()
		case messages.ViewMenu, messages.ViewPreview, messages.ViewHelp:
			// No initialisation needed.
		}
		return a, nil

	case messages.RecordSelected:
		a.currentView = messages.ViewPreview
		return a, a.previewView.SetRecord(msg.Record)

	case messages.JobCompleted:
		// The submit view already recorded the outcome; nothing to
		// route. The listing refetches on next entry.
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewClips:
			a.clipsView, cmd = a.clipsView.Update(msg)
		case messages.ViewPreview:
			a.previewView, cmd = a.previewView.Update(msg)
		case messages.ViewMenu, messages.ViewSubmit, messages.ViewOrgs,
			messages.ViewStats, messages.ViewHelp:
			// Other views surface errors through their own messages.
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view. Preview loads keep
	// flowing to the preview view even when it is not active, so its
	// per-record slots stay accurate.
	switch msg.(type) {
	case messages.PreviewLoaded, messages.MarkdownLoaded:
		a.previewView, cmd = a.previewView.Update(msg)
		return a, cmd
	}

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewClips:
		a.clipsView, cmd = a.clipsView.Update(msg)
	case messages.ViewSubmit:
		a.submitView, cmd = a.submitView.Update(msg)
	case messages.ViewPreview:
		a.previewView, cmd = a.previewView.Update(msg)
	case messages.ViewOrgs:
		a.orgsView, cmd = a.orgsView.Update(msg)
	case messages.ViewStats:
		a.statsView, cmd = a.statsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't handle other messages.
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewClips:
		return a.clipsView.View()
	case messages.ViewSubmit:
		return a.submitView.View()
	case messages.ViewPreview:
		return a.previewView.View()
	case messages.ViewOrgs:
		return a.orgsView.View()
	case messages.ViewStats:
		return a.statsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Clips:
  /           Focus search (debounced as you type)
  o           Cycle organization filter
  ←/→, h/l    Previous / next page
  enter, p    Preview selected clip
  d           Delete selected clip
  r           Refresh

Submit:
  tab         Switch field
  ctrl+o      Cycle organization
  enter       Submit

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.clipsView.SetDimensions(width, height)
}
