package sync

import (
	"time"

	"github.com/0xPolygon/swaplayer/log"
)

// RetryHandler throttles the retries of a worker loop after errors
type RetryHandler struct {
	RetryAfterErrorPeriod time.Duration
	// MaxRetryAttemptsAfterError below zero means unlimited retries
	MaxRetryAttemptsAfterError int
}

// Handle sleeps RetryAfterErrorPeriod, or stops the process once attempts reaches the max
func (h *RetryHandler) Handle(funcName string, attempts int) {
	if h.MaxRetryAttemptsAfterError > -1 && attempts >= h.MaxRetryAttemptsAfterError {
		log.Fatalf(
			"%s failed too many times (%d)",
			funcName, h.MaxRetryAttemptsAfterError,
		)
	}
	time.Sleep(h.RetryAfterErrorPeriod)
}
