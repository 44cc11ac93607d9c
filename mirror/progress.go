package mirror

import "time"

// ProgressEvent reports progress during a sync.
type ProgressEvent struct {
	Type       ProgressType
	DocumentID string
	Edition    string
	Index      int // zero-based position among pending editions
	Total      int // number of pending editions
	Delay      time.Duration
	Error      error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	EditionStarted ProgressType = iota
	EditionCommitted
	CooldownStarted
	DocumentFailed
)

// ProgressFunc is a callback for reporting sync progress.
type ProgressFunc func(event ProgressEvent)

func (f ProgressFunc) emit(event ProgressEvent) {
	if f != nil {
		f(event)
	}
}
