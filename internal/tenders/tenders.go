// Package tenders serves the dashboard lists of procurement opportunities and
// the user's save and ignore decisions.
//
//go:generate mockgen -package mocktenders -source=tenders.go -destination=mock/mocktenders.go *
package tenders

import (
	"cmp"
	"context"
	"fmt"
	"govconnect/internal/session"
	"govconnect/internal/signal"
	"govconnect/pkg/domain"
	"govconnect/pkg/logger"
	"govconnect/pkg/serrors"
	"govconnect/pkg/storage"
	"io"
	"slices"

	"go.uber.org/zap"
)

// Notification messages of Mark.
const (
	MsgSaved    = "Tender saved"
	MsgIgnored  = "Tender ignored"
	MsgRestored = "Tender moved back to new matches"
)

// Catalog is the current user's view of the tenders.
type Catalog interface {
	// List returns the tenders of a dashboard tab. New matches are sorted by
	// match score, best first; the other tabs by deadline.
	List(ctx context.Context, category domain.TenderCategory) ([]domain.Tender, error)
	Get(ctx context.Context, id domain.TenderID) (*domain.Tender, error)
	// Mark saves or ignores a tender. TenderMarkNone clears the decision.
	Mark(ctx context.Context, id domain.TenderID, mark domain.TenderMark) (*domain.Tender, error)
	// ExportSaved writes the saved tenders as an XLSX workbook.
	ExportSaved(ctx context.Context, w io.Writer) error
}

type catalog struct {
	storage storage.TenderStorage
	session session.Manager
	signals session.Signals
}

func New(s storage.TenderStorage, sessions session.Manager, signals session.Signals) Catalog {
	return &catalog{
		storage: s,
		session: sessions,
		signals: signals,
	}
}

func (c *catalog) List(ctx context.Context, category domain.TenderCategory) ([]domain.Tender, error) {
	user, err := c.user()
	if err != nil {
		return nil, err
	}

	all, err := c.storage.Tenders(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("could not list tenders: %w", err)
	}

	return filter(all, category), nil
}

func (c *catalog) Get(ctx context.Context, id domain.TenderID) (*domain.Tender, error) {
	user, err := c.user()
	if err != nil {
		return nil, err
	}

	tender, err := c.storage.TenderByID(ctx, user.ID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get tender: %w", err)
	}
	if tender == nil {
		return nil, serrors.With(serrors.ErrNotFound, "tender not found")
	}

	return tender, nil
}

func (c *catalog) Mark(ctx context.Context, id domain.TenderID, mark domain.TenderMark) (*domain.Tender, error) {
	var msg string
	switch mark {
	case domain.TenderMarkSaved:
		msg = MsgSaved
	case domain.TenderMarkIgnored:
		msg = MsgIgnored
	case domain.TenderMarkNone:
		msg = MsgRestored
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown mark %q", mark)
	}

	tender, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	user, err := c.user()
	if err != nil {
		return nil, err
	}

	if err := c.storage.SetTenderMark(ctx, user.ID, id, mark); err != nil {
		return nil, fmt.Errorf("could not mark tender: %w", err)
	}
	tender.Mark = mark

	logger.Debug(ctx, "tender marked",
		logger.UserID(user.ID.String()),
		zap.String("tender_id", string(id)),
		zap.String("mark", string(mark)))
	c.signals.Notify(ctx, signal.LevelInfo, msg)

	return tender, nil
}

func (c *catalog) ExportSaved(ctx context.Context, w io.Writer) error {
	saved, err := c.List(ctx, domain.TenderCategorySaved)
	if err != nil {
		return err
	}

	return writeWorkbook(w, saved)
}

func (c *catalog) user() (domain.User, error) {
	user, ok := c.session.Current()
	if !ok {
		return domain.User{}, serrors.KindOnly(serrors.ErrUnauthorized)
	}

	return user, nil
}

func filter(all []domain.Tender, category domain.TenderCategory) []domain.Tender {
	var mark domain.TenderMark
	switch category {
	case domain.TenderCategorySaved:
		mark = domain.TenderMarkSaved
	case domain.TenderCategoryIgnored:
		mark = domain.TenderMarkIgnored
	default:
		mark = domain.TenderMarkNone
	}

	res := make([]domain.Tender, 0, len(all))
	for _, t := range all {
		if t.Mark == mark {
			res = append(res, t)
		}
	}

	byDeadline := func(a, b domain.Tender) int { return a.Deadline.Compare(b.Deadline) }
	if mark == domain.TenderMarkNone {
		slices.SortStableFunc(res, func(a, b domain.Tender) int {
			return cmp.Or(cmp.Compare(b.MatchScore, a.MatchScore), byDeadline(a, b))
		})
	} else {
		slices.SortStableFunc(res, byDeadline)
	}

	return res
}
