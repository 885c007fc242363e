package session

import (
	"govconnect/internal/signal"
	"govconnect/pkg/domain"
)

// State is the authentication state derived from the current user.
type State string

const (
	StateUnauthenticated   State = "UNAUTHENTICATED"
	StateProfileIncomplete State = "PROFILE_INCOMPLETE"
	StateProfileComplete   State = "PROFILE_COMPLETE"
)

func stateOf(user *domain.User) State {
	switch {
	case user == nil:
		return StateUnauthenticated
	case user.ProfileCompleted:
		return StateProfileComplete
	default:
		return StateProfileIncomplete
	}
}

// Route is where the presentation layer belongs in the given state.
func (s State) Route() signal.Route {
	switch s {
	case StateProfileComplete:
		return signal.RouteDashboard
	case StateProfileIncomplete:
		return signal.RouteOnboardingStart
	default:
		return signal.RouteLogin
	}
}

// Snapshot is a consistent view of the session at one instant.
type Snapshot struct {
	User    *domain.User `json:"user,omitempty"`
	State   State        `json:"state"`
	Loading bool         `json:"loading"`
	Route   signal.Route `json:"route"`
}
