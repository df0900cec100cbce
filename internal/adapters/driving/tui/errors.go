package tui

import "errors"

// ErrMissingListService is returned when the list service is not provided.
var ErrMissingListService = errors.New("tui: list service is required")

// ErrMissingJobService is returned when the job service is not provided.
var ErrMissingJobService = errors.New("tui: job service is required")

// ErrMissingMutationService is returned when the mutation service is not provided.
var ErrMissingMutationService = errors.New("tui: mutation service is required")

// ErrMissingPreviewService is returned when the preview service is not provided.
var ErrMissingPreviewService = errors.New("tui: preview service is required")

// ErrMissingDirectoryService is returned when the directory service is not provided.
var ErrMissingDirectoryService = errors.New("tui: directory service is required")
