// Package page runs a single wheel page: it renders once when the page
// becomes ready and turns the wheel on throttled key presses.
package page

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/timewheel/internal/clock"
	"github.com/alexanderramin/timewheel/internal/dom"
	"github.com/alexanderramin/timewheel/internal/domain"
	"github.com/alexanderramin/timewheel/internal/throttle"
	"github.com/alexanderramin/timewheel/internal/wheel"
	"github.com/google/uuid"
)

// Session is one page's worth of state: the document, the rotation
// controller and the throttle in front of it. All methods are expected
// to be called from a single event loop.
type Session struct {
	ID string

	doc      *dom.HTMLDocument
	layout   domain.Layout
	renderer *wheel.Renderer
	rotation *wheel.RotationController
	keys     *throttle.Throttle[int]
	clock    clock.Clock
	observer Observer
	ready    bool
}

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	clock     clock.Clock
	window    time.Duration
	tickLines bool
	observer  Observer
}

// WithClock sets the time source used by the key throttle.
func WithClock(c clock.Clock) Option {
	return func(cfg *sessionConfig) { cfg.clock = c }
}

// WithThrottleWindow sets the minimum spacing between accepted key presses.
func WithThrottleWindow(d time.Duration) Option {
	return func(cfg *sessionConfig) { cfg.window = d }
}

// WithTickLines draws tick lines next to the hour labels.
func WithTickLines(enabled bool) Option {
	return func(cfg *sessionConfig) { cfg.tickLines = enabled }
}

// WithObserver sets the event observer.
func WithObserver(o Observer) Option {
	return func(cfg *sessionConfig) {
		if o != nil {
			cfg.observer = o
		}
	}
}

// NewSession builds the page skeleton for layout. Nothing is drawn
// until Ready is called.
func NewSession(layout domain.Layout, opts ...Option) *Session {
	if layout.Radius <= 0 {
		layout.Radius = domain.DefaultRadius
	}
	return NewSessionWithDocument(dom.NewWheelPage(layout.Radius), layout, opts...)
}

// NewSessionWithDocument runs a session against an existing document.
// The document must contain the wheel containers by the time Ready runs;
// the rotation target is looked up again there.
func NewSessionWithDocument(doc *dom.HTMLDocument, layout domain.Layout, opts ...Option) *Session {
	cfg := sessionConfig{
		clock:    clock.Real{},
		window:   throttle.DefaultWindow,
		observer: NoopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Session{
		ID:       uuid.New().String(),
		doc:      doc,
		layout:   layout,
		renderer: wheel.NewRenderer(doc, layout.Radius, wheel.WithTickLines(cfg.tickLines)),
		rotation: wheel.NewRotationController(doc.GetElementByID(dom.WheelID)),
		keys:     throttle.New[int](throttle.WithClock(cfg.clock), throttle.WithWindow(cfg.window)),
		clock:    cfg.clock,
		observer: cfg.observer,
	}
}

// Ready renders the layout. It fires once; later calls do nothing.
func (s *Session) Ready(ctx context.Context) error {
	if s.ready {
		return nil
	}
	if err := s.renderer.Render(s.layout); err != nil {
		return fmt.Errorf("rendering wheel: %w", err)
	}
	s.rotation.SetTarget(s.doc.GetElementByID(dom.WheelID))
	s.ready = true
	s.observer.ObserveEvent(ctx, Event{
		Kind:      EventReady,
		SessionID: s.ID,
		At:        s.clock.Now(),
		Fields: map[string]any{
			"slices":    len(s.layout.Slices),
			"locations": len(s.layout.Locations),
			"radius":    s.layout.Radius,
		},
	})
	return nil
}

// KeyDown feeds a key press through the throttle to the rotation
// handler. Every key, arrow or not, consumes the throttle window.
// It reports whether the press got past the throttle.
func (s *Session) KeyDown(ctx context.Context, code int) bool {
	var rotated bool
	accepted := s.keys.Call(func(c int) {
		rotated = s.rotation.HandleKey(c)
	}, code)

	ev := Event{SessionID: s.ID, At: s.clock.Now(), KeyCode: code}
	if accepted {
		ev.Kind = EventKeyAccepted
		ev.Rotated = rotated
		ev.Angle = s.rotation.Angle()
	} else {
		ev.Kind = EventKeyDropped
	}
	s.observer.ObserveEvent(ctx, ev)
	return accepted
}

// Document returns the page being drawn into.
func (s *Session) Document() *dom.HTMLDocument { return s.doc }

// Layout returns the layout the session renders.
func (s *Session) Layout() domain.Layout { return s.layout }

// Rotation returns the wheel's rotation controller.
func (s *Session) Rotation() *wheel.RotationController { return s.rotation }

// IsReady reports whether the page-ready render has run.
func (s *Session) IsReady() bool { return s.ready }
