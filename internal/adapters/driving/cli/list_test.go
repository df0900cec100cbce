package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipworks/clipctl/internal/core/domain"
)

func TestListCmd_Use(t *testing.T) {
	assert.Equal(t, "list [search]", listCmd.Use)
}

func TestListCmd_HasPageFlag(t *testing.T) {
	flag := listCmd.Flags().Lookup("page")
	require.NotNil(t, flag, "page flag should exist")
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "1", flag.DefValue)
}

func TestListCmd_PrintsRecords(t *testing.T) {
	cleanup := setupTestServices(&fakeAPI{
		records: []domain.Record{
			{ID: "rec-1", Title: "First Clip", SourceURL: "https://example.com/a", Organization: "docs", Tags: []string{"go", "http"}},
			{ID: "rec-2", Title: "Second Clip"},
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "First Clip")
	assert.Contains(t, buf.String(), "Second Clip")
	assert.Contains(t, buf.String(), "go, http")
	assert.Contains(t, buf.String(), "Page 1 of 1")
}

func TestListCmd_EmptyListing(t *testing.T) {
	cleanup := setupTestServices(&fakeAPI{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No records found.")
}

func TestListCmd_SearchTermSetsQuery(t *testing.T) {
	cleanup := setupTestServices(&fakeAPI{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"list", "kubernetes"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "kubernetes", listService.Query().SearchTerm)
}

func TestListCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices(&fakeAPI{
		records: []domain.Record{{ID: "rec-1", Title: "First Clip"}},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"list", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		listJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"TotalPages": 1`)
	assert.Contains(t, buf.String(), "First Clip")
}
