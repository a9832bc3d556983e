package store

import (
	"sync"
	"time"
)

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyWarning NotificationKind = "warning"
	NotifyInfo    NotificationKind = "info"
)

// DefaultNotificationTTL matches the original's fixed 5-second dismiss
// window. All kinds share the same TTL.
const DefaultNotificationTTL = 5 * time.Second

type Notification struct {
	ID        int64            `json:"id"`
	Kind      NotificationKind `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"timestamp"`
}

// Notifier holds at most one notification. Showing a new one replaces
// the current one and re-arms the auto-dismiss timer; the old timer is
// cancelled first so it can never dismiss the newer notification early.
type Notifier struct {
	mu      sync.Mutex
	current *Notification
	timer   *time.Timer
	ttl     time.Duration
	seq     int64
	signal
}

func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{ttl: ttl}
}

// Show replaces any current notification. Newest wins; there is no
// queue.
func (n *Notifier) Show(kind NotificationKind, title, message string) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	id := n.seq
	n.current = &Notification{
		ID:        id,
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
	n.timer = time.AfterFunc(n.ttl, func() { n.expire(id) })
	n.mu.Unlock()
	n.emit()
}

// Dismiss clears immediately and cancels the pending timer.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	changed := n.current != nil
	n.current = nil
	n.mu.Unlock()
	if changed {
		n.emit()
	}
}

// Current returns a copy of the active notification, or nil.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	cp := *n.current
	return &cp
}

// expire is the timer callback. The id guard drops stale fires from a
// timer that lost the Stop race with a newer Show.
func (n *Notifier) expire(id int64) {
	n.mu.Lock()
	if n.current == nil || n.current.ID != id {
		n.mu.Unlock()
		return
	}
	n.current = nil
	n.timer = nil
	n.mu.Unlock()
	n.emit()
}
