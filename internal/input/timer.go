package input

import "time"

// Timer is a cancellable, restartable one-shot delay. The parser arms it
// when a chain match is ambiguous and stops it as soon as a further key
// event changes the accumulated keystring.
//
// Implementations may invoke the callback concurrently with parser calls;
// the parser serializes against that internally. The wall-clock default is
// used unless a Config injects a replacement (tests inject a manual one).
type Timer interface {
	// Start arms the timer to invoke fn after d, replacing any pending
	// deadline.
	Start(d time.Duration, fn func())

	// Stop cancels the pending deadline, if any. A callback that already
	// started running may still complete; callers must tolerate that.
	Stop()
}

// wallTimer implements Timer on time.AfterFunc.
type wallTimer struct {
	t *time.Timer
}

// NewWallTimer creates the default wall-clock timer.
func NewWallTimer() Timer {
	return &wallTimer{}
}

// Start implements Timer.
func (w *wallTimer) Start(d time.Duration, fn func()) {
	w.Stop()
	w.t = time.AfterFunc(d, fn)
}

// Stop implements Timer.
func (w *wallTimer) Stop() {
	if w.t != nil {
		w.t.Stop()
		w.t = nil
	}
}
