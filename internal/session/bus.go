// Package session publishes session lifecycle events so that consumers
// (the CLI today, anything embedding the client tomorrow) learn about a
// forced logout no matter which in-flight call tripped the 401.
package session

import (
	"sync"

	gookitEvent "github.com/gookit/event"

	"github.com/sgzs6721/lessonctl/internal/shared/logger"
)

// Event names fired on the bus.
const (
	EventExpired   = "session.expired"
	EventLoggedIn  = "session.logged_in"
	EventLoggedOut = "session.logged_out"
)

// Bus wraps gookit/event with typed publish/subscribe helpers. Publishing
// is synchronous: the 401 handler publishes Expired before the error is
// returned to the caller, so listeners always observe the expiry first.
type Bus struct {
	manager *gookitEvent.Manager
	logger  *logger.Logger
	mu      sync.Mutex
	closed  bool
}

// New creates a session bus.
func New(log *logger.Logger) *Bus {
	if log == nil {
		log = logger.NewDevelopment("session")
	}
	return &Bus{
		manager: gookitEvent.NewManager("lessonctl"),
		logger:  log,
	}
}

// PublishExpired announces that the server rejected the session (HTTP 401)
// and the stored credentials have been cleared.
func (b *Bus) PublishExpired(reason string) {
	b.publish(EventExpired, gookitEvent.M{"reason": reason})
}

// PublishLoggedIn announces a successful login for the given phone number.
func (b *Bus) PublishLoggedIn(phone string) {
	b.publish(EventLoggedIn, gookitEvent.M{"phone": phone})
}

// PublishLoggedOut announces a user-initiated logout.
func (b *Bus) PublishLoggedOut() {
	b.publish(EventLoggedOut, gookitEvent.M{})
}

func (b *Bus) publish(name string, payload gookitEvent.M) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.mu.Unlock()

	err, _ := b.manager.Fire(name, payload)
	if err != nil {
		b.logger.Warn("session event listener failed", "event", name, "error", err)
	}
}

// OnExpired registers a listener for session expiry. The reason string
// carries the server's message when one was present.
func (b *Bus) OnExpired(fn func(reason string)) {
	b.manager.On(EventExpired, gookitEvent.ListenerFunc(func(e gookitEvent.Event) error {
		reason, _ := e.Get("reason").(string)
		fn(reason)
		return nil
	}), gookitEvent.Normal)
}

// OnLoggedIn registers a listener for successful logins.
func (b *Bus) OnLoggedIn(fn func(phone string)) {
	b.manager.On(EventLoggedIn, gookitEvent.ListenerFunc(func(e gookitEvent.Event) error {
		phone, _ := e.Get("phone").(string)
		fn(phone)
		return nil
	}), gookitEvent.Normal)
}

// OnLoggedOut registers a listener for user-initiated logouts.
func (b *Bus) OnLoggedOut(fn func()) {
	b.manager.On(EventLoggedOut, gookitEvent.ListenerFunc(func(e gookitEvent.Event) error {
		fn()
		return nil
	}), gookitEvent.Normal)
}

// Close shuts the bus down; later publishes are dropped.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	b.manager.Clear()
	return nil
}
