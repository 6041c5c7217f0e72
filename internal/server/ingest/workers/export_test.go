package workers

import (
	"slices"
	"time"
)

type (
	DConfigManager = dConfigManager
	DProcessor     = dProcessor
)

// WithDebounce sets the delay before configuration changes are applied.
func WithDebounce(d time.Duration) Options {
	return func(o *options) {
		o.debounce = d
	}
}

// WithBackoff sets the bounds of the delay after a failed processing round.
func WithBackoff(base, maxBackoff time.Duration) Options {
	return func(o *options) {
		o.baseBackoff = base
		o.maxBackoff = maxBackoff
	}
}

// WorkerNames returns the sorted receivers of active workers.
func (m *Pool) WorkerNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.workers))
	for name := range m.workers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
