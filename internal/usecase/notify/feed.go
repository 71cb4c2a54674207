package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notification is one user-visible event ready for rendering. The
// presentation layer renders these as-is; it never re-derives
// approval state itself.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	OrderID   string    `json:"order_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

const KindOrderApproved = "order_approved"

// Feed is a FIFO hand-off between the watcher and the presentation
// layer. Drain returns each notification exactly once, so however
// many views poll the feed, a transition is announced a single time.
type Feed struct {
	mu      sync.Mutex
	pending []Notification
}

func NewFeed() *Feed {
	return &Feed{}
}

func (f *Feed) Push(n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, n)
}

func (f *Feed) Drain() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.pending
	f.pending = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}
