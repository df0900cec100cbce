package domain

// PreviewPhase tracks one record's preview load.
type PreviewPhase int

const (
	// PreviewNotRequested means no preview has been asked for.
	PreviewNotRequested PreviewPhase = iota

	// PreviewLoading means a fetch is in flight.
	PreviewLoading

	// PreviewLoaded means the rendered content is available.
	PreviewLoaded

	// PreviewFailed means the fetch errored.
	PreviewFailed
)

// String returns the phase name.
func (p PreviewPhase) String() string {
	switch p {
	case PreviewNotRequested:
		return "not requested"
	case PreviewLoading:
		return "loading"
	case PreviewLoaded:
		return "loaded"
	case PreviewFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Preview is the per-record preview state slot.
type Preview struct {
	// RecordID keys the slot.
	RecordID string

	// Phase is the load lifecycle state.
	Phase PreviewPhase

	// HTML is the rendered content after a successful load.
	HTML string

	// Err is the failure after an unsuccessful load.
	Err error
}
