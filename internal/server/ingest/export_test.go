package ingest

import "time"

var (
	ErrServiceClosed = errServiceClosed
)

// WithMaxDegradedDuration sets how long Run waits for the second service once the first stopped.
func WithMaxDegradedDuration(d time.Duration) Option {
	return func(o *options) {
		o.maxDegradedDuration = d
	}
}
