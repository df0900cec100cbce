// Package preview provides the record preview view for the TUI.
package preview

import (
	"bytes"
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/clipworks/clipctl/internal/adapters/driving/tui/messages"
	"github.com/clipworks/clipctl/internal/adapters/driving/tui/styles"
	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driven"
	"github.com/clipworks/clipctl/internal/core/ports/driving"
	"github.com/clipworks/clipctl/internal/render"
)

// View shows one record's content. The markdown artifact is rendered
// for the terminal when available; the server's preview HTML is the
// fallback. Loads for different records go through per-record preview
// slots, so flipping between records never shows mixed content.
type View struct {
	styles  *styles.Styles
	preview driving.PreviewService
	api     driven.API
	ctx     context.Context

	record       *domain.Record
	rendered     string
	html         string
	lines        []string
	scrollOffset int
	width        int
	height       int
	ready        bool
	loading      bool
	err          error
}

// NewView creates a preview view.
func NewView(s *styles.Styles, preview driving.PreviewService, api driven.API) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		preview: preview,
		api:     api,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetRecord switches the view to a record and starts both loads.
func (v *View) SetRecord(rec domain.Record) tea.Cmd {
	v.record = &rec
	v.rendered = ""
	v.html = ""
	v.lines = nil
	v.scrollOffset = 0
	v.err = nil
	v.loading = true

	cmds := []tea.Cmd{v.loadMarkdownCmd(rec.ID)}
	if v.preview.Begin(rec.ID) {
		cmds = append(cmds, v.loadPreviewCmd(rec.ID))
	}
	return tea.Batch(cmds...)
}

// loadPreviewCmd fetches the server-rendered preview HTML.
func (v *View) loadPreviewCmd(id string) tea.Cmd {
	return func() tea.Msg {
		html, err := v.preview.Run(v.ctx, id)
		return messages.PreviewLoaded{RecordID: id, HTML: html, Err: err}
	}
}

// loadMarkdownCmd downloads the markdown artifact.
func (v *View) loadMarkdownCmd(id string) tea.Cmd {
	return func() tea.Msg {
		var buf bytes.Buffer
		err := v.api.Download(v.ctx, id, "markdown", &buf)
		return messages.MarkdownLoaded{RecordID: id, Markdown: buf.String(), Err: err}
	}
}

// Update handles messages for the preview view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.rebuildLines()
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.PreviewLoaded:
		// Record the outcome in the record's slot even when the view
		// has moved on; the slot keeps it for the next visit.
		v.preview.Complete(msg.RecordID, msg.HTML, msg.Err)
		if v.record == nil || msg.RecordID != v.record.ID {
			return v, nil
		}
		if msg.Err != nil {
			if v.rendered == "" {
				v.err = msg.Err
			}
			v.loading = v.rendered == "" && v.html == ""
			return v, nil
		}
		v.html = msg.HTML
		v.loading = false
		v.rebuildLines()
		return v, nil

	case messages.MarkdownLoaded:
		if v.record == nil || msg.RecordID != v.record.ID {
			return v, nil
		}
		if msg.Err != nil {
			// The preview HTML load may still succeed.
			return v, nil
		}
		v.rendered = renderMarkdown(msg.Markdown, v.width)
		v.loading = false
		v.err = nil
		v.rebuildLines()
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles scrolling and navigation.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewClips}
		}
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "pgup", "ctrl+u":
		v.scrollOffset -= v.visibleLines()
		if v.scrollOffset < 0 {
			v.scrollOffset = 0
		}
	case "pgdown", "ctrl+d":
		v.scrollOffset += v.visibleLines()
		if max := v.maxScrollOffset(); v.scrollOffset > max {
			v.scrollOffset = max
		}
	case "g":
		v.scrollOffset = 0
	case "G":
		v.scrollOffset = v.maxScrollOffset()
	}
	return v, nil
}

// rebuildLines re-wraps the active content for the current width.
func (v *View) rebuildLines() {
	content := v.rendered
	if content == "" {
		content = render.HTMLText(v.html)
	}
	if content == "" {
		v.lines = nil
		return
	}
	v.lines = strings.Split(content, "\n")
	if v.scrollOffset > v.maxScrollOffset() {
		v.scrollOffset = v.maxScrollOffset()
	}
}

func (v *View) visibleLines() int {
	visible := v.height - 6
	if visible < 1 {
		visible = 1
	}
	return visible
}

func (v *View) maxScrollOffset() int {
	max := len(v.lines) - v.visibleLines()
	if max < 0 {
		max = 0
	}
	return max
}

// View renders the preview.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	title := "(Untitled)"
	if v.record != nil && v.record.Title != "" {
		title = v.record.Title
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")

	if v.record != nil {
		meta := make([]string, 0, 3)
		if v.record.Organization != "" {
			meta = append(meta, v.record.Organization)
		}
		if len(v.record.Tags) > 0 {
			meta = append(meta, strings.Join(v.record.Tags, ", "))
		}
		if v.record.SourceURL != "" {
			meta = append(meta, v.record.SourceURL)
		}
		b.WriteString(v.styles.Muted.Render(strings.Join(meta, " · ")))
	}
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + domain.UserMessage(v.err)))
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading preview..."))
	case len(v.lines) == 0:
		b.WriteString(v.styles.Muted.Render("No content"))
	default:
		start := v.scrollOffset
		end := start + v.visibleLines()
		if end > len(v.lines) {
			end = len(v.lines)
		}
		b.WriteString(strings.Join(v.lines[start:end], "\n"))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("[j/k] scroll  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Record returns the displayed record, or nil.
func (v *View) Record() *domain.Record {
	return v.record
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// renderMarkdown renders markdown for the terminal. The raw text comes
// back unchanged when the renderer cannot start.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
