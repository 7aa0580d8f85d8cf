package sessions

import (
	"sync"
	"time"
)

// Debouncer coalesces the save-on-every-keystroke stream into one trailing
// write per quiet period. There is one logical writer per session, so
// last-write-wins is fine.
type Debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	timers map[string]*time.Timer
	fire   func(sessionID string)
}

// NewDebouncer constructs a Debouncer that calls fire after delay of
// inactivity per session id. A non-positive delay fires synchronously.
func NewDebouncer(delay time.Duration, fire func(sessionID string)) *Debouncer {
	return &Debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
		fire:   fire,
	}
}

// Schedule arms (or re-arms) the trailing write for a session.
func (d *Debouncer) Schedule(sessionID string) {
	if d.delay <= 0 {
		d.fire(sessionID)
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[sessionID]; ok {
		t.Stop()
	}
	d.timers[sessionID] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, sessionID)
		d.mu.Unlock()
		d.fire(sessionID)
	})
}

// Flush fires the pending write immediately, if one is armed.
func (d *Debouncer) Flush(sessionID string) {
	d.mu.Lock()
	t, ok := d.timers[sessionID]
	if ok {
		t.Stop()
		delete(d.timers, sessionID)
	}
	d.mu.Unlock()
	if ok {
		d.fire(sessionID)
	}
}

// Cancel drops any pending write without firing it.
func (d *Debouncer) Cancel(sessionID string) {
	d.mu.Lock()
	if t, ok := d.timers[sessionID]; ok {
		t.Stop()
		delete(d.timers, sessionID)
	}
	d.mu.Unlock()
}
