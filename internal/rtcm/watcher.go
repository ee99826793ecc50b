// Package rtcm watches an RTCM3 correction stream and reports whether it is
// currently live, for annotating published fixes with the CORRECTION bit.
// It is adapted from internal/rtk's frame-parsing loop, narrowed from full
// solution computation down to presence detection.
package rtcm

import (
	"sync"
	"time"

	"github.com/go-gnss/rtcm/rtcm3"
)

// CorrectionSetter is satisfied by *gnss.Receiver.
type CorrectionSetter interface {
	SetCorrectionActive(active bool)
}

// Watcher parses bytes from a correction stream and tells a CorrectionSetter
// whether a live stream is present. A stream that stops delivering valid
// frames for longer than the configured timeout is declared inactive.
type Watcher struct {
	mu      sync.Mutex
	parser  *rtcm3.Parser
	target  CorrectionSetter
	timeout time.Duration
	timer   *time.Timer
}

// NewWatcher constructs a Watcher reporting to target. timeout bounds how
// long a silent stream is still considered active.
func NewWatcher(target CorrectionSetter, timeout time.Duration) *Watcher {
	return &Watcher{
		parser:  rtcm3.NewParser(),
		target:  target,
		timeout: timeout,
	}
}

// Feed appends stream bytes and re-arms the activity timeout whenever a
// structurally valid RTCM3 message is found.
func (w *Watcher) Feed(data []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.parser.Write(data)

	sawMessage := false
	for {
		frame, err := w.parser.NextFrame()
		if err != nil {
			break
		}
		if _, err := rtcm3.DeserializeMessage(frame.Data); err == nil {
			sawMessage = true
		}
	}

	if !sawMessage {
		return
	}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.target.SetCorrectionActive(true)
	w.timer = time.AfterFunc(w.timeout, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.target.SetCorrectionActive(false)
	})
}

// Stop cancels any pending timeout without reporting inactivity, for clean
// shutdown.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}
