// Package profile lets a user read and edit the business profile collected
// during onboarding.
//
//go:generate mockgen -package mockprofile -source=profile.go -destination=mock/mockprofile.go *
package profile

import (
	"context"
	"fmt"
	"govconnect/internal/config"
	"govconnect/internal/matcher"
	"govconnect/internal/session"
	"govconnect/internal/signal"
	"govconnect/pkg/domain"
	"govconnect/pkg/logger"
	"govconnect/pkg/serrors"
	"govconnect/pkg/storage"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// MsgUpdated is notified after a successful Update.
const MsgUpdated = "Profile updated successfully"

// Editor reads and edits the current user's business profile.
type Editor interface {
	Get(ctx context.Context) (*domain.BusinessProfile, error)
	// Update replaces the profile and schedules a new tender match. It never
	// touches the account's completion flag.
	Update(ctx context.Context, profile domain.BusinessProfile) (*domain.BusinessProfile, error)
}

type Options struct {
	StrictIndustryCodes bool
	MatchMaxAttempts    int
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		StrictIndustryCodes: cfg.Onboarding.StrictIndustryCodes,
		MatchMaxAttempts:    cfg.Worker.MatchMaxAttempts,
	}
}

type editor struct {
	storage storage.Storage
	session session.Manager
	signals session.Signals
	options Options
}

func New(s storage.Storage, sessions session.Manager, signals session.Signals, options Options) Editor {
	return &editor{
		storage: s,
		session: sessions,
		signals: signals,
		options: options,
	}
}

func (e *editor) Get(ctx context.Context) (*domain.BusinessProfile, error) {
	user, ok := e.session.Current()
	if !ok {
		return nil, serrors.KindOnly(serrors.ErrUnauthorized)
	}

	profile, err := e.storage.ProfileByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get profile: %w", err)
	}
	if profile == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Business profile not found")
	}

	return profile, nil
}

func (e *editor) Update(ctx context.Context, profile domain.BusinessProfile) (*domain.BusinessProfile, error) {
	user, ok := e.session.Current()
	if !ok {
		return nil, serrors.KindOnly(serrors.ErrUnauthorized)
	}

	profile, err := e.normalize(profile)
	if err != nil {
		return nil, err
	}
	profile.UserID = user.ID

	var saved *domain.BusinessProfile
	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		saved, err = tx.StoreProfile(ctx, profile)
		if err != nil {
			return fmt.Errorf("could not store profile: %w", err)
		}

		if _, err := tx.AddJob(ctx, matcher.NewJobArgs(*saved, e.options.MatchMaxAttempts), nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update profile: %w", err)
	}

	logger.Info(ctx, "profile updated", logger.UserID(user.ID.String()), zap.String("region", string(saved.Region)))
	e.signals.Notify(ctx, signal.LevelSuccess, MsgUpdated)

	return saved, nil
}

// normalize trims and dedupes the codes, then validates the profile.
func (e *editor) normalize(p domain.BusinessProfile) (domain.BusinessProfile, error) {
	codes := make([]string, 0, len(p.IndustryCodes))
	for _, c := range p.IndustryCodes {
		if strings.TrimSpace(c) == "" {
			continue
		}
		code, err := domain.NormalizeIndustryCode(c, e.options.StrictIndustryCodes)
		if err != nil {
			return p, serrors.Wrap(serrors.ErrBadRequest, err, "Industry codes are 2 to 6 digits")
		}
		if !slices.Contains(codes, code) {
			codes = append(codes, code)
		}
	}
	p.IndustryCodes = codes

	if err := p.Validate(e.options.StrictIndustryCodes); err != nil {
		return p, serrors.Wrap(serrors.ErrBadRequest, err, "%s", err.Error())
	}

	return p, nil
}
