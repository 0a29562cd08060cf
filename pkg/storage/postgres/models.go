package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"weaver/pkg/domain"
)

// PgLadder is the row layout of the ladders table.
type PgLadder struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Start  string          `db:"start_word"`
	Target string          `db:"target_word"`
	Status string          `db:"status"`
	Result json.RawMessage `db:"result"      goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgLadder) ToDomain() (*domain.Ladder, error) {
	var result domain.Solution
	if len(p.Result) > 0 {
		if err := json.Unmarshal(p.Result, &result); err != nil {
			return nil, fmt.Errorf("could not unmarshal ladder result: %w", err)
		}
	}

	return &domain.Ladder{
		ID:        domain.LadderID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Start:     p.Start,
		Target:    p.Target,
		Status:    domain.LadderStatus(p.Status),
		Result:    result,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgLadder) FromDomain(ladder domain.Ladder) error {
	result, err := json.Marshal(ladder.Result)
	if err != nil {
		return fmt.Errorf("could not marshal ladder result: %w", err)
	}

	*p = PgLadder{
		ID:       uuid.UUID(ladder.ID),
		UserID:   uuid.UUID(ladder.UserID),
		Start:    ladder.Start,
		Target:   ladder.Target,
		Status:   string(ladder.Status),
		Result:   result,
		Attempts: ladder.Attempts,
		LastError: sql.NullString{
			String: ladder.LastError,
			Valid:  ladder.LastError != "",
		},
		CreatedAt: ladder.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  ladder.UpdatedAt,
			Valid: !ladder.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  ladder.DeletedAt,
			Valid: !ladder.DeletedAt.IsZero(),
		},
	}

	return nil
}

func domainLaddersToPg(ladders []domain.Ladder) ([]PgLadder, error) {
	out := make([]PgLadder, len(ladders))
	for i := range out {
		if err := out[i].FromDomain(ladders[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgLaddersToDomain(ladders []PgLadder) ([]domain.Ladder, error) {
	out := make([]domain.Ladder, 0, len(ladders))
	for _, l := range ladders {
		d, err := l.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

// PgWord is the row layout of the words table.
type PgWord struct {
	Word   string `db:"word"`
	Length int    `db:"length"`
}
