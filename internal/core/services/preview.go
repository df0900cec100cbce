package services

import (
	"context"
	"fmt"

	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driven"
	"github.com/clipworks/clipctl/internal/core/ports/driving"
)

// Ensure PreviewLoader implements the interface.
var _ driving.PreviewService = (*PreviewLoader)(nil)

// PreviewLoader fetches rendered previews on demand. Each record id
// owns its own state slot, so two previews somehow in flight at once
// never overwrite each other.
type PreviewLoader struct {
	api   driven.API
	slots map[string]domain.Preview
}

// NewPreviewLoader creates an empty preview loader.
func NewPreviewLoader(api driven.API) *PreviewLoader {
	return &PreviewLoader{
		api:   api,
		slots: make(map[string]domain.Preview),
	}
}

// State returns the slot for a record.
func (l *PreviewLoader) State(id string) domain.Preview {
	if p, ok := l.slots[id]; ok {
		return p
	}
	return domain.Preview{RecordID: id, Phase: domain.PreviewNotRequested}
}

// Begin moves a record's slot to Loading. A load already in flight for
// the same record is left alone and Begin returns false.
func (l *PreviewLoader) Begin(id string) bool {
	if l.slots[id].Phase == domain.PreviewLoading {
		return false
	}
	l.slots[id] = domain.Preview{RecordID: id, Phase: domain.PreviewLoading}
	return true
}

// Run performs the network fetch for a begun load.
func (l *PreviewLoader) Run(ctx context.Context, id string) (string, error) {
	return l.api.FetchPreview(ctx, id)
}

// Complete records a load outcome in the record's slot.
func (l *PreviewLoader) Complete(id, html string, err error) domain.Preview {
	p := domain.Preview{RecordID: id}
	if err != nil {
		p.Phase = domain.PreviewFailed
		p.Err = err
	} else {
		p.Phase = domain.PreviewLoaded
		p.HTML = html
	}
	l.slots[id] = p
	return p
}

// Fetch is Begin + Run + Complete for synchronous callers.
func (l *PreviewLoader) Fetch(ctx context.Context, id string) (domain.Preview, error) {
	if id == "" {
		return domain.Preview{}, &domain.ValidationError{Reason: "record id is required"}
	}
	if !l.Begin(id) {
		return l.State(id), domain.ErrBusy
	}

	html, err := l.Run(ctx, id)
	p := l.Complete(id, html, err)
	if err != nil {
		return p, fmt.Errorf("fetching preview for %s: %w", id, err)
	}
	return p, nil
}
