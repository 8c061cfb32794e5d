package page

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// EventKind names a page lifecycle or input event.
type EventKind string

const (
	EventReady       EventKind = "page_ready"
	EventKeyAccepted EventKind = "key_accepted"
	EventKeyDropped  EventKind = "key_dropped"
)

// Event captures one thing that happened in a page session.
type Event struct {
	Kind      EventKind
	SessionID string
	At        time.Time
	KeyCode   int
	Rotated   bool
	Angle     float64
	Fields    map[string]any
}

// Observer receives page session events.
type Observer interface {
	ObserveEvent(ctx context.Context, event Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveEvent(context.Context, Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes page events to w as structured text lines.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func (o *logObserver) ObserveEvent(ctx context.Context, event Event) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs, "session", event.SessionID)
	switch event.Kind {
	case EventKeyAccepted:
		attrs = append(attrs, "key", event.KeyCode, "rotated", event.Rotated, "angle", event.Angle)
	case EventKeyDropped:
		attrs = append(attrs, "key", event.KeyCode)
	}
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Kind == EventKeyDropped {
		o.logger.DebugContext(ctx, string(event.Kind), attrs...)
		return
	}
	o.logger.InfoContext(ctx, string(event.Kind), attrs...)
}
