package events

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Bus is an in-memory publish/subscribe hub for StudentChanged notifications.
// Dispatch is synchronous and happens after the producing operation has
// committed; handler errors are logged and swallowed.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
	logger   zerolog.Logger
}

// NewBus creates a notification bus.
func NewBus(logger zerolog.Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscribe registers a handler for every published notification.
func (b *Bus) Subscribe(handler Handler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// Publish delivers the notification to every subscriber.
func (b *Bus) Publish(evt StudentChanged) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	eventID := uuid.NewString()
	b.logger.Debug().
		Str("eventId", eventID).
		Int64("studentId", int64(evt.StudentID)).
		Int64("courseId", int64(evt.CourseID)).
		Msg("Publishing student change notification")

	for _, handler := range handlers {
		if err := handler(evt); err != nil {
			b.logger.Error().
				Err(err).
				Str("eventId", eventID).
				Int64("studentId", int64(evt.StudentID)).
				Msg("Notification handler failed")
		}
	}
}
