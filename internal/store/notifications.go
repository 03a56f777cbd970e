package store

import (
	"sync"
	"time"

	"github.com/akyairhashvil/coachtrack/internal/models"
	"github.com/akyairhashvil/coachtrack/internal/util"
)

// Queue is the transient toast list. Entries carry no persistence and the
// queue itself owns no timers: the shell schedules an expiry command per
// push and calls Dismiss when it fires, so a toast dismissed manually
// before its timer is simply absent by then (a safe no-op).
type Queue struct {
	mu      sync.Mutex
	now     func() time.Time
	entries []models.Notification
}

// NewQueue builds an empty queue.
func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// Push prepends a new toast and returns it so the caller can schedule its
// expiry. There is no cap on concurrent entries.
func (q *Queue) Push(kind models.NotificationKind, title, message string) models.Notification {
	n := models.Notification{
		ID:        util.ShortID(9),
		Kind:      kind,
		Title:     title,
		Message:   message,
		Timestamp: q.now(),
	}
	q.mu.Lock()
	q.entries = append([]models.Notification{n}, q.entries...)
	q.mu.Unlock()
	return n
}

// Dismiss removes the entry with the given id. Removing an absent id is a
// no-op.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.entries {
		if q.entries[i].ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return
		}
	}
}

// Active returns a copy of the visible entries, newest first.
func (q *Queue) Active() []models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]models.Notification, len(q.entries))
	copy(out, q.entries)
	return out
}

// Len reports the number of visible entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}
