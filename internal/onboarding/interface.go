// Package onboarding drives the four step wizard that collects a new user's
// business profile and marks their account complete.
//
//go:generate mockgen -package mockonboarding -source=interface.go -destination=mock/mockonboarding.go *
package onboarding

import (
	"context"
	"govconnect/pkg/domain"
)

// Controller is the onboarding flow as seen by the HTTP layer. Every method
// returns the flow state after it ran, also when it fails.
type Controller interface {
	State(ctx context.Context) State

	// SetDescription edits the draft on step 1.
	SetDescription(ctx context.Context, description string) (State, error)
	// ToggleIndustryCode selects or deselects a code on step 2.
	ToggleIndustryCode(ctx context.Context, code string) (State, error)
	// AddIndustryCode adds a custom code on step 2. Empty input and duplicates
	// are ignored.
	AddIndustryCode(ctx context.Context, code string) (State, error)
	RemoveIndustryCode(ctx context.Context, code string) (State, error)
	// SetValueRange edits the draft on step 3.
	SetValueRange(ctx context.Context, valueRange domain.ValueRange) (State, error)
	// SetRegion edits the draft on step 4.
	SetRegion(ctx context.Context, region string) (State, error)

	// Next advances one step once the current step is complete.
	Next(ctx context.Context) (State, error)
	// Back returns to the previous step keeping the draft.
	Back(ctx context.Context) (State, error)
	// Finish commits the profile and completes the account. Only valid on the
	// last step with an active session.
	Finish(ctx context.Context) (*domain.BusinessProfile, error)
	// Restart abandons the draft.
	Restart(ctx context.Context) State
}
