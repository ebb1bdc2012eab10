package interview

import "time"

// taskHandle is a cancellable delayed task. Cancellation is idempotent and
// nil-safe; because the underlying timer may already have fired, callers gate
// any state change behind their own generation check.
type taskHandle struct {
	timer *time.Timer
}

func schedule(d time.Duration, fn func()) *taskHandle {
	return &taskHandle{timer: time.AfterFunc(d, fn)}
}

func (h *taskHandle) cancel() {
	if h == nil || h.timer == nil {
		return
	}
	h.timer.Stop()
}
