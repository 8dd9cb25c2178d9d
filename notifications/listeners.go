package notifications

import (
	"sync"

	"github.com/appditto/survey-push-server/models"
	"github.com/google/uuid"
)

type ResponseCallback func(response *models.NotificationResponse)

type Subscription struct {
	id uuid.UUID
	cb ResponseCallback
}

// Listeners fans notification responses out to subscribers, in
// subscription order
type Listeners struct {
	mu   sync.Mutex
	subs []*Subscription
}

func (l *Listeners) Add(cb ResponseCallback) *Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()
	sub := &Subscription{id: uuid.New(), cb: cb}
	l.subs = append(l.subs, sub)
	return sub
}

// Remove is a no-op for unknown or already removed subscriptions
func (l *Listeners) Remove(sub *Subscription) {
	if sub == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, s := range l.subs {
		if s.id == sub.id {
			l.subs = append(l.subs[:i], l.subs[i+1:]...)
			return
		}
	}
}

func (l *Listeners) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}

// Dispatch calls every subscriber outside the lock, so callbacks may
// subscribe or unsubscribe
func (l *Listeners) Dispatch(response *models.NotificationResponse) {
	l.mu.Lock()
	subs := make([]*Subscription, len(l.subs))
	copy(subs, l.subs)
	l.mu.Unlock()
	for _, s := range subs {
		s.cb(response)
	}
}
