// Package matcher scores the tender catalog against a user's business profile.
//
//go:generate mockgen -package mockmatcher -source=matcher.go -destination=mock/mockmatcher.go *
package matcher

import (
	"context"
	"errors"
	"fmt"
	"govconnect/pkg/domain"
	"govconnect/pkg/logger"
	"govconnect/pkg/serrors"
	"govconnect/pkg/storage"

	"go.uber.org/zap"
)

// ErrSuperseded is returned by Match when the profile changed after the
// requested revision; the job queued for the newer revision does the work.
var ErrSuperseded = errors.New("profile changed since matching was queued")

// Matcher recomputes match scores.
type Matcher interface {
	// Match scores every tender for userID and returns how many matched at all.
	// serrors.ErrNotFound is returned when the user has no profile. A zero
	// revision scores whatever profile is stored.
	Match(ctx context.Context, userID domain.UserID, revision int64) (int, error)
}

type matcher struct {
	storage storage.Storage
}

func New(s storage.Storage) Matcher {
	return &matcher{storage: s}
}

func (m *matcher) Match(ctx context.Context, userID domain.UserID, revision int64) (int, error) {
	matched := 0

	err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		profile, err := tx.ProfileByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not get profile: %w", err)
		}
		if profile == nil {
			return serrors.With(serrors.ErrNotFound, "user %s has no business profile", userID)
		}
		if revision != 0 && Revision(profile.UpdatedAt) > revision {
			return ErrSuperseded
		}

		tenders, err := tx.Tenders(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not list tenders: %w", err)
		}

		scores := make(map[domain.TenderID]float64, len(tenders))
		for _, tender := range tenders {
			score := domain.ScoreTender(*profile, tender)
			if score > 0 {
				scores[tender.ID] = score
				matched++
			}
		}

		if err := tx.StoreMatchScores(ctx, userID, scores); err != nil {
			return fmt.Errorf("could not store match scores: %w", err)
		}

		logger.Debug(ctx, "tenders scored",
			zap.Int("tenders", len(tenders)),
			zap.Int("matched", matched))

		return nil
	})
	if err != nil {
		return 0, err
	}

	return matched, nil
}
