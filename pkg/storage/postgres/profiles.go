package postgres

import (
	"context"
	"fmt"
	"govconnect/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	profilesTable = "business_profiles"
)

// StoreProfile upserts the business profile of profile.UserID.
func (p *PgSQL) StoreProfile(ctx context.Context, profile domain.BusinessProfile) (*domain.BusinessProfile, error) {
	var row PgBusinessProfile
	if err := row.FromDomain(profile); err != nil {
		return nil, err
	}

	var result PgBusinessProfile
	if _, err := p.Builder.Insert(profilesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"description":    goqu.I("excluded.description"),
			"industry_codes": goqu.I("excluded.industry_codes"),
			"value_min":      goqu.I("excluded.value_min"),
			"value_max":      goqu.I("excluded.value_max"),
			"region":         goqu.I("excluded.region"),
			"updated_at":     goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgBusinessProfile{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store profile into pg: %w", err)
	}

	return result.ToDomain()
}

func (p *PgSQL) ProfileByUserID(ctx context.Context, userID domain.UserID) (*domain.BusinessProfile, error) {
	var row PgBusinessProfile
	found, err := p.Builder.From(profilesTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get profile from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
