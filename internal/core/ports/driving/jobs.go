package driving

import (
	"context"

	"github.com/clipworks/clipctl/internal/core/domain"
)

// JobService owns the single in-flight clip submission.
//
// At most one job may be Submitting at a time; Begin rejects a new
// submission with domain.ErrBusy while one is in flight. Event-loop
// callers use Begin/Run/Complete; synchronous callers use Submit.
type JobService interface {
	// Job returns the current job state.
	Job() domain.Job

	// Begin validates the request and moves the job to Submitting.
	// Empty input fails with a *domain.ValidationError without
	// contacting the network; a submission already in flight fails
	// with domain.ErrBusy.
	Begin(req domain.ClipRequest) (domain.Job, error)

	// Run performs the network submission for a begun job.
	Run(ctx context.Context, job domain.Job) (domain.JobResult, error)

	// Complete records the submission outcome, fires the list
	// invalidation on success, and returns the new job state.
	Complete(res domain.JobResult, err error) domain.Job

	// Submit is Begin + Run + Complete for synchronous callers.
	Submit(ctx context.Context, req domain.ClipRequest) (domain.Job, error)

	// Acknowledge re-arms the controller from Succeeded or Failed
	// back to Idle. The working set is preserved so the user can
	// retry without re-entering metadata.
	Acknowledge()
}
