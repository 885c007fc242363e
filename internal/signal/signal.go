// Package signal carries navigation and notification events from the session
// and onboarding layers to whatever presentation layer is subscribed.
package signal

import (
	"context"
	"govconnect/pkg/logger"
	"sync"

	"go.uber.org/zap"
)

// Route is a presentation layer location.
type Route string

const (
	RouteLogin              Route = "/login"
	RouteDashboard          Route = "/dashboard"
	RouteOnboardingStart    Route = "/onboarding/start"
	RouteOnboardingIndustry Route = "/onboarding/industry"
	RouteOnboardingValue    Route = "/onboarding/value"
	RouteOnboardingRegion   Route = "/onboarding/region"
)

// Kind tells navigation and notification signals apart.
type Kind string

const (
	KindNavigate Kind = "navigate"
	KindNotify   Kind = "notify"
)

// Level is the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Signal is one event pushed to subscribers.
type Signal struct {
	Kind    Kind   `json:"kind"`
	Route   Route  `json:"route,omitempty"`
	Level   Level  `json:"level,omitempty"`
	Message string `json:"message,omitempty"`
}

// subscriberBuffer bounds how far a slow subscriber may lag before signals
// addressed to it are dropped.
const subscriberBuffer = 32

// Hub fans signals out to every subscriber. Publishing never blocks.
type Hub struct {
	mu          sync.Mutex
	subscribers map[chan Signal]struct{}
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[chan Signal]struct{})}
}

// Subscribe registers a subscriber. The returned function unregisters it and
// closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe() (<-chan Signal, func()) {
	ch := make(chan Signal, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Navigate asks the presentation layer to show route.
func (h *Hub) Navigate(ctx context.Context, route Route) {
	h.publish(ctx, Signal{Kind: KindNavigate, Route: route})
}

// Notify shows a transient message.
func (h *Hub) Notify(ctx context.Context, level Level, message string) {
	h.publish(ctx, Signal{Kind: KindNotify, Level: level, Message: message})
}

func (h *Hub) publish(ctx context.Context, s Signal) {
	h.mu.Lock()
	defer h.mu.Unlock()

	logger.Debug(ctx, "publishing signal",
		zap.String("kind", string(s.Kind)),
		zap.String("route", string(s.Route)),
		zap.String("message", s.Message),
		zap.Int("subscribers", len(h.subscribers)))

	for ch := range h.subscribers {
		select {
		case ch <- s:
		default:
			logger.Warn(ctx, "dropping signal for slow subscriber", zap.String("kind", string(s.Kind)))
		}
	}
}
