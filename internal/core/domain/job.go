package domain

import (
	"os"
	"strings"
)

// JobPhase tracks the lifecycle of a clip submission.
type JobPhase int

const (
	// JobIdle means no submission is in flight and none has completed.
	JobIdle JobPhase = iota

	// JobSubmitting means a submission is in flight.
	JobSubmitting

	// JobSucceeded means the last submission completed and produced a record.
	JobSucceeded

	// JobFailed means the last submission was rejected or errored.
	JobFailed
)

// String returns the phase name.
func (p JobPhase) String() string {
	switch p {
	case JobIdle:
		return "idle"
	case JobSubmitting:
		return "submitting"
	case JobSucceeded:
		return "succeeded"
	case JobFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// InputKind classifies what the user handed to the clipper.
// The classification only drives progress messaging; request semantics
// are identical for all kinds.
type InputKind int

const (
	// InputURL is a plain page URL.
	InputURL InputKind = iota

	// InputSitemap is a sitemap URL or local sitemap file; clipping one
	// crawls every page it lists, which takes noticeably longer.
	InputSitemap

	// InputFile is a local file to upload.
	InputFile
)

// sitemapSuffix identifies sitemap inputs by name.
const sitemapSuffix = "sitemap.xml"

// ClassifyInput determines the kind of a raw input string.
// A path that exists locally is a file; anything ending in sitemap.xml
// is a sitemap; everything else is treated as a page URL.
func ClassifyInput(input string) InputKind {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "http") {
		if _, err := os.Stat(input); err == nil {
			return InputFile
		}
	}
	if strings.HasSuffix(input, sitemapSuffix) {
		return InputSitemap
	}
	return InputURL
}

// ProgressMessage returns the advisory message shown while a submission
// of this kind is in flight.
func (k InputKind) ProgressMessage() string {
	switch k {
	case InputSitemap:
		return "Clipping sitemap, this crawls every listed page and may take a while..."
	case InputFile:
		return "Uploading file..."
	default:
		return "Clipping page..."
	}
}

// ClipRequest is the payload of one clip submission.
type ClipRequest struct {
	// Input is the URL, sitemap URL, or local file path to clip.
	Input string

	// Organization assigns the resulting record, empty for none.
	Organization string

	// Tags label the resulting record, in display order.
	Tags []string
}

// JobResult is the server's answer to a completed clip submission.
type JobResult struct {
	// ID is the identifier of the created record.
	ID string

	// Title is the extracted title.
	Title string

	// URL is the clipped source URL.
	URL string

	// Status is "completed" or "failed".
	Status string

	// Preview is a short excerpt of the clipped content, if provided.
	Preview string

	// Error carries the server-side failure reason when Status is "failed".
	Error string

	// MarkdownPath is the path of the generated markdown artifact.
	MarkdownPath string

	// PDFPath is the path of the generated PDF artifact.
	PDFPath string
}

// Job is the single client-side clip submission and its lifecycle.
// Exactly one job is live per session; a new submission while one is
// Submitting is rejected, not queued.
type Job struct {
	// Request is the submitted payload.
	Request ClipRequest

	// Kind is the classification of Request.Input.
	Kind InputKind

	// Phase is the current lifecycle phase.
	Phase JobPhase

	// ResultRecordID is the created record's ID after success.
	ResultRecordID string

	// ResultTitle is the created record's title after success.
	ResultTitle string

	// ResultPreview is the content excerpt after success, if any.
	ResultPreview string

	// ErrorMessage is the user-displayable failure reason after failure.
	ErrorMessage string
}
