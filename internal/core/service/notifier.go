package service

import (
	"sync"
	"time"

	"github.com/Aayush01055/File-tracking-system/internal/core/domain"
)

// DefaultNotifyTTL is how long a notification stays visible unless replaced.
const DefaultNotifyTTL = 3 * time.Second

// Notifier implements ports.Notifier: a single transient message with a
// cancellable expiry task. Showing a new message invalidates the pending
// expiry so the newest message always gets the full display duration.
type Notifier struct {
	ttl time.Duration

	mu       sync.Mutex
	current  *domain.Notification
	timer    *time.Timer
	seq      uint64
	onChange func()
}

func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotifyTTL
	}
	return &Notifier{ttl: ttl}
}

// OnChange registers a callback invoked after every show, clear and expiry.
func (n *Notifier) OnChange(fn func()) {
	n.mu.Lock()
	n.onChange = fn
	n.mu.Unlock()
}

// Show replaces the live notification and restarts the expiry clock.
func (n *Notifier) Show(message string, kind domain.NotificationKind) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = &domain.Notification{Message: message, Kind: kind}
	n.seq++
	seq := n.seq
	n.timer = time.AfterFunc(n.ttl, func() { n.expire(seq) })
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (n *Notifier) Success(message string) { n.Show(message, domain.NotifySuccess) }
func (n *Notifier) Error(message string)   { n.Show(message, domain.NotifyError) }

// Clear drops the live notification and cancels its pending expiry.
func (n *Notifier) Clear() {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
	n.seq++
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Current returns the live notification, if any.
func (n *Notifier) Current() (domain.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return domain.Notification{}, false
	}
	return *n.current, true
}

// expire clears the notification the timer was scheduled for. The sequence
// check discards timers that lost the race against a newer Show or Clear.
func (n *Notifier) expire(seq uint64) {
	n.mu.Lock()
	if n.seq != seq {
		n.mu.Unlock()
		return
	}
	n.current = nil
	n.timer = nil
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn()
	}
}
