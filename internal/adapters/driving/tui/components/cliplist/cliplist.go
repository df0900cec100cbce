// Package cliplist provides the navigable record list for the TUI.
package cliplist

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clipworks/clipctl/internal/adapters/driving/tui/styles"
	"github.com/clipworks/clipctl/internal/core/domain"
)

// ClipList displays one page of records in a navigable list.
type ClipList struct {
	page     *domain.ListPage
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewClipList creates a clip list component.
func NewClipList(s *styles.Styles) *ClipList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ClipList{
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the clip list.
func (c *ClipList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (c *ClipList) Update(msg tea.Msg) (*ClipList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			c.MoveUp()
		case tea.KeyDown:
			c.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			c.MoveUp()
		case "j":
			c.MoveDown()
		}
	}
	return c, nil
}

// View renders the clip list with a pagination footer.
func (c *ClipList) View() string {
	if c.page == nil || len(c.page.Items) == 0 {
		return c.styles.Muted.Render("No clips")
	}

	items := c.page.Items
	lines := make([]string, 0, len(items)*2+3)

	header := c.styles.Subtitle.Render(fmt.Sprintf("Clips (page %d/%d)", c.page.Page, c.page.TotalPages))
	lines = append(lines, header, "")

	// Each record takes two lines: title and metadata.
	visibleCount := (c.height - 5) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if c.selected >= visibleCount {
		start = c.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(items) {
		end = len(items)
	}

	for i := start; i < end; i++ {
		lines = append(lines, c.renderRecord(i, &items[i]))
	}

	return strings.Join(lines, "\n")
}

// renderRecord formats a single record entry.
func (c *ClipList) renderRecord(index int, rec *domain.Record) string {
	indicator := "  "
	if index == c.selected {
		indicator = "> "
	}

	title := rec.Title
	if title == "" {
		title = "(Untitled)"
	}

	maxTitleLen := c.width - 6
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	var titleLine string
	if index == c.selected {
		titleLine = c.styles.Selected.Render(indicator + title)
	} else {
		titleLine = c.styles.Normal.Render(indicator + title)
	}

	meta := make([]string, 0, 3)
	if rec.Organization != "" {
		meta = append(meta, rec.Organization)
	}
	if len(rec.Tags) > 0 {
		meta = append(meta, strings.Join(rec.Tags, ", "))
	}
	if rec.SourceURL != "" {
		meta = append(meta, rec.SourceURL)
	}

	metaText := strings.Join(meta, " · ")
	maxMetaLen := c.width - 6
	if maxMetaLen < 20 {
		maxMetaLen = 20
	}
	if len(metaText) > maxMetaLen {
		metaText = metaText[:maxMetaLen-3] + "..."
	}

	metaLine := c.styles.Muted.Render("    " + metaText)

	return titleLine + "\n" + metaLine
}

// SetPage replaces the displayed page and resets the selection.
func (c *ClipList) SetPage(page *domain.ListPage) {
	c.page = page
	c.selected = 0
}

// Page returns the displayed page.
func (c *ClipList) Page() *domain.ListPage {
	return c.page
}

// Selected returns the index of the selected record.
func (c *ClipList) Selected() int {
	return c.selected
}

// SelectedRecord returns the currently selected record, or nil.
func (c *ClipList) SelectedRecord() *domain.Record {
	if c.page == nil || len(c.page.Items) == 0 {
		return nil
	}
	if c.selected < 0 || c.selected >= len(c.page.Items) {
		return nil
	}
	return &c.page.Items[c.selected]
}

// MoveUp moves the selection up.
func (c *ClipList) MoveUp() {
	if c.selected > 0 {
		c.selected--
	}
}

// MoveDown moves the selection down.
func (c *ClipList) MoveDown() {
	if c.page != nil && c.selected < len(c.page.Items)-1 {
		c.selected++
	}
}

// SetDimensions sets the component dimensions.
func (c *ClipList) SetDimensions(width, height int) {
	c.width = width
	c.height = height
}

// Count returns the number of records on the page.
func (c *ClipList) Count() int {
	if c.page == nil {
		return 0
	}
	return len(c.page.Items)
}

// IsEmpty returns whether the list is empty.
func (c *ClipList) IsEmpty() bool {
	return c.Count() == 0
}
