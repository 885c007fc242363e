package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"govconnect/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgAccount struct {
	ID               uuid.UUID `db:"id"`
	Name             string    `db:"name"`
	Email            string    `db:"email"`
	PasswordHash     string    `db:"password_hash"`
	ProfileCompleted bool      `db:"profile_completed"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgAccount) ToDomain() *domain.Account {
	return &domain.Account{
		User: domain.User{
			ID:               domain.UserID(p.ID),
			Name:             p.Name,
			Email:            p.Email,
			ProfileCompleted: p.ProfileCompleted,
		},
		PasswordHash: p.PasswordHash,
	}
}

func (p *PgAccount) FromDomain(account domain.Account) {
	*p = PgAccount{
		ID:               uuid.UUID(account.ID),
		Name:             account.Name,
		Email:            account.Email,
		PasswordHash:     account.PasswordHash,
		ProfileCompleted: account.ProfileCompleted,
	}
}

type PgBusinessProfile struct {
	UserID        uuid.UUID `db:"user_id"`
	Description   string    `db:"description"`
	IndustryCodes string    `db:"industry_codes"`
	ValueMin      int64     `db:"value_min"`
	ValueMax      int64     `db:"value_max"`
	Region        string    `db:"region"`
	UpdatedAt     time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgBusinessProfile) ToDomain() (*domain.BusinessProfile, error) {
	codes, err := decodeStrings(p.IndustryCodes)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal industry codes: %w", err)
	}

	return &domain.BusinessProfile{
		UserID:        domain.UserID(p.UserID),
		Description:   p.Description,
		IndustryCodes: codes,
		ValueRange:    domain.ValueRange{Min: p.ValueMin, Max: p.ValueMax},
		Region:        domain.Region(p.Region),
		UpdatedAt:     p.UpdatedAt,
	}, nil
}

func (p *PgBusinessProfile) FromDomain(profile domain.BusinessProfile) error {
	codes, err := encodeStrings(profile.IndustryCodes)
	if err != nil {
		return fmt.Errorf("could not marshal industry codes: %w", err)
	}

	*p = PgBusinessProfile{
		UserID:        uuid.UUID(profile.UserID),
		Description:   profile.Description,
		IndustryCodes: codes,
		ValueMin:      profile.ValueRange.Min,
		ValueMax:      profile.ValueRange.Max,
		Region:        string(profile.Region),
	}

	return nil
}

// PgTender is a catalog row joined with the requesting user's mark and score.
type PgTender struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Department  string    `db:"department"`
	Buyer       string    `db:"buyer"`
	Description string    `db:"description"`
	Deadline    time.Time `db:"deadline"`
	ClosingDate time.Time `db:"closing_date"`
	NAICSCodes  string    `db:"naics_codes"`
	Tags        string    `db:"tags"`
	ValueMin    int64     `db:"value_min"`
	ValueMax    int64     `db:"value_max"`

	Mark       string  `db:"mark"`
	MatchScore float64 `db:"match_score"`
}

func (p *PgTender) ToDomain() (*domain.Tender, error) {
	codes, err := decodeStrings(p.NAICSCodes)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal naics codes: %w", err)
	}
	tags, err := decodeStrings(p.Tags)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal tags: %w", err)
	}

	return &domain.Tender{
		ID:          domain.TenderID(p.ID),
		Title:       p.Title,
		Department:  p.Department,
		Buyer:       p.Buyer,
		Description: p.Description,
		Deadline:    p.Deadline,
		ClosingDate: p.ClosingDate,
		NAICSCodes:  codes,
		Tags:        tags,
		Value:       domain.ValueRange{Min: p.ValueMin, Max: p.ValueMax},
		MatchScore:  p.MatchScore,
		Mark:        domain.TenderMark(p.Mark),
	}, nil
}

func pgTendersToDomain(tenders []PgTender) ([]domain.Tender, error) {
	out := make([]domain.Tender, 0, len(tenders))
	for _, tender := range tenders {
		d, err := tender.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return string(b), nil
}

func decodeStrings(raw string) ([]string, error) {
	out := []string{}
	if raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return out, nil
}
