package rtcm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSetter struct {
	calls []bool
}

func (f *fakeSetter) SetCorrectionActive(active bool) {
	f.calls = append(f.calls, active)
}

func TestWatcherIgnoresGarbageBytes(t *testing.T) {
	setter := &fakeSetter{}
	w := NewWatcher(setter, time.Minute)

	w.Feed([]byte{0x00, 0x01, 0x02, 0x03})

	assert.Empty(t, setter.calls)
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	setter := &fakeSetter{}
	w := NewWatcher(setter, time.Minute)

	w.Stop()
	w.Stop()

	assert.Empty(t, setter.calls)
}
