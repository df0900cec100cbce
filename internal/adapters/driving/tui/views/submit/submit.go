// Package submit provides the new-clip submission view for the TUI.
package submit

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clipworks/clipctl/internal/adapters/driving/tui/components/input"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/components/status"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/keymap"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/messages"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/styles"
	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driving"
	"github.com/clipworks/clipctl/internal/core/services"
)

// jobRan carries the raw network outcome back to the event loop, where
// Complete records it. Keeping Complete on the loop preserves the
// controller's single-writer discipline.
type jobRan struct {
	res domain.JobResult
	err error
}

// View is the new-clip submission form: an input for the URL, sitemap,
// or file path, a tag field, and an organization picker. At most one
// submission is in flight at a time; the job controller rejects a
// second enter while one is running.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	urlInput  *input.Field
	tagInput  *input.Field
	statusbar *status.Bar

	jobs      driving.JobService
	directory driving.DirectoryService
	editor    *services.Editor
	ctx       context.Context

	// orgs is the picker cycle: "" (none) first, then each fetched
	// organization name.
	orgs     []string
	orgIndex int

	focusIndex int // 0 = url, 1 = tags
	width      int
	height     int
	ready      bool
	submitting bool
	err        error
}

// NewView creates the submission view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	jobs driving.JobService,
	directory driving.DirectoryService,
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
		urlInput:  input.NewField(s, "Input", "URL, sitemap, or file path..."),
		tagInput:  input.NewField(s, "Tags", "comma,separated,tags"),
		statusbar: status.NewBar(s, km),
		jobs:      jobs,
		directory: directory,
		editor:    services.NewEditor(),
		ctx:       context.Background(),
		orgs:      []string{""},
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init focuses the URL input and fetches the organization picklist.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.urlInput.Focus(), v.loadOrgsCmd())
}

// Update handles messages for the submission view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

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

	case jobRan:
		job := v.jobs.Complete(msg.res, msg.err)
		v.submitting = false
		return v.handleJobFinished(job)
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case tea.KeyTab:
		v.focusIndex = (v.focusIndex + 1) % 2
		if v.focusIndex == 0 {
			v.tagInput.Blur()
			return v, v.urlInput.Focus()
		}
		v.urlInput.Blur()
		return v, v.tagInput.Focus()

	case tea.KeyEnter:
		return v, v.submit()

	case tea.KeyCtrlO:
		v.orgIndex = (v.orgIndex + 1) % len(v.orgs)
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusIndex == 0 {
		v.urlInput, cmd = v.urlInput.Update(msg)
	} else {
		v.tagInput, cmd = v.tagInput.Update(msg)
	}
	return v, cmd
}

// submit begins the job and runs the network call off the event loop.
func (v *View) submit() tea.Cmd {
	v.editor.SetTags(strings.Split(v.tagInput.Value(), ","))
	v.editor.SelectOrganization(v.orgs[v.orgIndex])
	org, tags := v.editor.Payload()

	req := domain.ClipRequest{
		Input:        v.urlInput.Value(),
		Organization: org,
		Tags:         tags,
	}

	job, err := v.jobs.Begin(req)
	if err != nil {
		v.err = err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(domain.UserMessage(err))
		return nil
	}

	v.err = nil
	v.submitting = true
	v.statusbar.SetState(status.StateSubmitting)
	v.statusbar.SetMessage(job.Kind.ProgressMessage())

	return func() tea.Msg {
		res, err := v.jobs.Run(v.ctx, job)
		return jobRan{res: res, err: err}
	}
}

// handleJobFinished reports the terminal phase and re-arms on success.
func (v *View) handleJobFinished(job domain.Job) (*View, tea.Cmd) {
	if job.Phase == domain.JobFailed {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(job.ErrorMessage)
		return v, func() tea.Msg {
			return messages.JobCompleted{Job: job}
		}
	}

	v.statusbar.SetState(status.StateMessage)
	v.statusbar.SetMessage("Clipped: " + job.ResultTitle)
	v.urlInput.SetValue("")
	// Tags and organization survive for the next submission.
	v.jobs.Acknowledge()

	return v, func() tea.Msg {
		return messages.JobCompleted{Job: job}
	}
}

// View renders the submission form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	sections = append(sections, v.styles.Title.Render("New clip"), "")
	sections = append(sections, v.urlInput.View(), "")
	sections = append(sections, v.tagInput.View(), "")

	orgLabel := v.orgs[v.orgIndex]
	if orgLabel == "" {
		orgLabel = "(none)"
	}
	sections = append(sections,
		v.styles.Subtitle.Render("Organization: ")+v.styles.Normal.Render(orgLabel),
		v.styles.Muted.Render("[tab] switch field  [ctrl+o] cycle organization  [enter] submit  [esc] back"),
	)

	if v.err != nil {
		sections = append(sections, "", v.styles.Error.Render("Error: "+domain.UserMessage(v.err)))
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.urlInput.SetWidth(width)
	v.tagInput.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Reset clears the form and the working set.
func (v *View) Reset() {
	v.urlInput.SetValue("")
	v.tagInput.SetValue("")
	v.editor.Reset()
	v.orgIndex = 0
	v.focusIndex = 0
	v.submitting = false
	v.err = nil
	v.statusbar.Clear()
}

// Submitting reports whether a submission is in flight.
func (v *View) Submitting() bool {
	return v.submitting
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// loadOrgsCmd fetches the organization picklist.
func (v *View) loadOrgsCmd() tea.Cmd {
	return func() tea.Msg {
		orgs, err := v.directory.Organizations(v.ctx)
		return messages.OrganizationsLoaded{Organizations: orgs, Err: err}
	}
}
