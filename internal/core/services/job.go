package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driven"
	"github.com/clipworks/clipctl/internal/core/ports/driving"
	"github.com/clipworks/clipctl/internal/logger"
)

// Ensure JobController implements the interface.
var _ driving.JobService = (*JobController)(nil)

// statusFailed is the server's status value for a rejected clip.
const statusFailed = "failed"

// JobController owns the single in-flight clip submission.
//
// The at-most-one guard is the phase check in Begin: a submission
// while another is Submitting is rejected with domain.ErrBusy and no
// network call is made. Disabling input while busy is a presentation
// concern and not handled here.
//
// Not safe for concurrent use; see ListController.
type JobController struct {
	api        driven.API
	invalidate func()

	job domain.Job
}

// NewJobController creates a job controller. invalidate is called
// exactly once per successful submission so the list view refetches;
// it may be nil when no list view is attached.
func NewJobController(api driven.API, invalidate func()) *JobController {
	return &JobController{api: api, invalidate: invalidate}
}

// Job returns the current job state.
func (c *JobController) Job() domain.Job {
	return c.job
}

// Begin validates the request and moves the job to Submitting.
func (c *JobController) Begin(req domain.ClipRequest) (domain.Job, error) {
	if c.job.Phase == domain.JobSubmitting {
		// Rejected, not queued; the in-flight job is untouched.
		return c.job, domain.ErrBusy
	}

	input := strings.TrimSpace(req.Input)
	if input == "" {
		verr := &domain.ValidationError{Reason: "nothing to clip: provide a URL, sitemap URL, or file"}
		c.job = domain.Job{
			Request:      req,
			Phase:        domain.JobFailed,
			ErrorMessage: verr.Error(),
		}
		return c.job, verr
	}

	req.Input = input
	c.job = domain.Job{
		Request: req,
		Kind:    domain.ClassifyInput(input),
		Phase:   domain.JobSubmitting,
	}
	logger.Info("submitting %s clip: %s", c.job.Kind.ProgressMessage(), input)
	return c.job, nil
}

// Run performs the network submission for a begun job. Local files are
// uploaded first; the clip request then references the uploaded name.
func (c *JobController) Run(ctx context.Context, job domain.Job) (domain.JobResult, error) {
	req := job.Request

	if job.Kind == domain.InputFile {
		f, err := os.Open(req.Input)
		if err != nil {
			return domain.JobResult{}, &domain.ValidationError{Reason: fmt.Sprintf("cannot read %s: %v", req.Input, err)}
		}
		defer f.Close()

		uploaded, err := c.api.UploadFile(ctx, filepath.Base(req.Input), f)
		if err != nil {
			return domain.JobResult{}, fmt.Errorf("uploading file: %w", err)
		}
		req.Input = uploaded
	}

	return c.api.SubmitClip(ctx, req)
}

// Complete records the submission outcome. The tags/organization
// working set lives in the Editor and survives a failure, so the user
// can retry without re-entering metadata.
func (c *JobController) Complete(res domain.JobResult, err error) domain.Job {
	if err != nil {
		c.job.Phase = domain.JobFailed
		c.job.ErrorMessage = domain.UserMessage(err)
		return c.job
	}

	if res.Status == statusFailed {
		c.job.Phase = domain.JobFailed
		c.job.ErrorMessage = res.Error
		if c.job.ErrorMessage == "" {
			c.job.ErrorMessage = "clip failed"
		}
		return c.job
	}

	c.job.Phase = domain.JobSucceeded
	c.job.ResultRecordID = res.ID
	c.job.ResultTitle = res.Title
	c.job.ResultPreview = res.Preview
	c.job.ErrorMessage = ""

	if c.invalidate != nil {
		c.invalidate()
	}
	return c.job
}

// Submit is Begin + Run + Complete for synchronous callers.
func (c *JobController) Submit(ctx context.Context, req domain.ClipRequest) (domain.Job, error) {
	job, err := c.Begin(req)
	if err != nil {
		return job, err
	}

	res, runErr := c.Run(ctx, job)
	job = c.Complete(res, runErr)
	if runErr != nil {
		return job, runErr
	}
	if job.Phase == domain.JobFailed {
		return job, errors.New(job.ErrorMessage)
	}
	return job, nil
}

// Acknowledge re-arms the controller from a terminal phase back to
// Idle. The last request is kept for retry.
func (c *JobController) Acknowledge() {
	if c.job.Phase == domain.JobSucceeded || c.job.Phase == domain.JobFailed {
		c.job = domain.Job{
			Request: c.job.Request,
			Kind:    c.job.Kind,
			Phase:   domain.JobIdle,
		}
	}
}
