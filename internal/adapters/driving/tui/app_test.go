package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipworks/clipctl/internal/adapters/driving/tui/messages"
	"github.com/clipworks/clipctl/internal/core/domain"
)

func TestNewApp_Success(t *testing.T) {
	ports := newTestPorts()

	app, err := NewApp(ports)

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := newTestPorts()
	ports.List = nil

	app, err := NewApp(ports)

	assert.ErrorIs(t, err, ErrMissingListService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_CtrlCQuits(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_ViewChanged(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewClips})

	assert.Equal(t, messages.ViewClips, app.CurrentView())
	// Entering the clips view triggers a fetch.
	assert.NotNil(t, cmd)
}

func TestApp_Update_RecordSelectedOpensPreview(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)

	_, cmd := app.Update(messages.RecordSelected{
		Record: domain.Record{ID: "rec-1", Title: "Example"},
	})

	assert.Equal(t, messages.ViewPreview, app.CurrentView())
	assert.NotNil(t, cmd)
}

func TestApp_Update_EscFromHelpReturnsToMenu(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_View_Help(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	view := app.View()

	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "debounced")
}
