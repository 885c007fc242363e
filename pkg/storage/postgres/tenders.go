package postgres

import (
	"context"
	"fmt"
	"govconnect/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	tendersTable       = "tenders"
	tenderMarksTable   = "tender_marks"
	tenderMatchesTable = "tender_matches"
)

// userTenders selects the catalog joined with the user's marks and scores.
func (p *PgSQL) userTenders(userID domain.UserID, where ...exp.Expression) *goqu.SelectDataset {
	uid := uuid.UUID(userID)

	return p.Builder.From(goqu.T(tendersTable).As("t")).
		LeftJoin(goqu.T(tenderMarksTable).As("m"), goqu.On(
			goqu.I("m.tender_id").Eq(goqu.I("t.id")),
			goqu.I("m.user_id").Eq(uid),
		)).
		LeftJoin(goqu.T(tenderMatchesTable).As("s"), goqu.On(
			goqu.I("s.tender_id").Eq(goqu.I("t.id")),
			goqu.I("s.user_id").Eq(uid),
		)).
		Select(
			goqu.I("t.id"),
			goqu.I("t.title"),
			goqu.I("t.department"),
			goqu.I("t.buyer"),
			goqu.I("t.description"),
			goqu.I("t.deadline"),
			goqu.I("t.closing_date"),
			goqu.I("t.naics_codes"),
			goqu.I("t.tags"),
			goqu.I("t.value_min"),
			goqu.I("t.value_max"),
			goqu.COALESCE(goqu.I("m.mark"), "").As("mark"),
			goqu.COALESCE(goqu.I("s.score"), 0).As("match_score"),
		).
		Where(where...).
		Order(goqu.I("t.id").Asc())
}

func (p *PgSQL) Tenders(ctx context.Context, userID domain.UserID) ([]domain.Tender, error) {
	var rows []PgTender
	if err := p.userTenders(userID).ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list tenders from pg: %w", err)
	}

	return pgTendersToDomain(rows)
}

func (p *PgSQL) TenderByID(ctx context.Context, userID domain.UserID, id domain.TenderID) (*domain.Tender, error) {
	var row PgTender
	found, err := p.userTenders(userID, goqu.I("t.id").Eq(string(id))).ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get tender from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SetTenderMark upserts the user's mark on a tender, or deletes it when mark
// is domain.TenderMarkNone.
func (p *PgSQL) SetTenderMark(ctx context.Context,
	userID domain.UserID,
	id domain.TenderID,
	mark domain.TenderMark) error {
	if mark == domain.TenderMarkNone {
		_, err := p.Builder.Delete(tenderMarksTable).Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("tender_id").Eq(string(id)),
		).Executor().ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("could not clear tender mark in pg: %w", err)
		}

		return nil
	}

	_, err := p.Builder.Insert(tenderMarksTable).
		Rows(goqu.Record{
			"user_id":   uuid.UUID(userID),
			"tender_id": string(id),
			"mark":      string(mark),
		}).
		OnConflict(goqu.DoUpdate("user_id, tender_id", goqu.Record{
			"mark":       goqu.I("excluded.mark"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store tender mark in pg: %w", err)
	}

	return nil
}

// StoreMatchScores replaces every stored score of the user. Call it inside a
// transaction so readers never observe a partially replaced set.
func (p *PgSQL) StoreMatchScores(ctx context.Context, userID domain.UserID, scores map[domain.TenderID]float64) error {
	uid := uuid.UUID(userID)

	_, err := p.Builder.Delete(tenderMatchesTable).
		Where(goqu.I("user_id").Eq(uid)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not clear match scores in pg: %w", err)
	}
	if len(scores) == 0 {
		return nil
	}

	rows := make([]interface{}, 0, len(scores))
	for id, score := range scores {
		rows = append(rows, goqu.Record{
			"user_id":   uid,
			"tender_id": string(id),
			"score":     score,
		})
	}

	_, err = p.Builder.Insert(tenderMatchesTable).Rows(rows...).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store match scores into pg: %w", err)
	}

	return nil
}
