package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"weaver/pkg/domain"
	"weaver/pkg/storage"
)

const (
	laddersTable = "ladders"
)

func (p *PgSQL) StoreLadders(ctx context.Context, ladders ...domain.Ladder) ([]domain.Ladder, error) {
	if len(ladders) == 0 {
		return nil, nil
	}

	pgLadders, err := domainLaddersToPg(ladders)
	if err != nil {
		return nil, err
	}

	var result []PgLadder
	if err := p.Builder.Insert(laddersTable).
		Rows(pgLadders).
		Returning(&PgLadder{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store ladders into pg: %w", err)
	}

	return pgLaddersToDomain(result)
}

// updateRecord builds the SET clause shared by ladder updates. Attempts is
// always incremented and updated_at refreshed.
func updateRecord(updates storage.LadderUpdates) (goqu.Record, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}

	switch {
	case updates.Status == domain.LadderStatusFailed && updates.MaxAttempts > 0:
		// stay pending until the retries are used up
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts, string(domain.LadderStatusFailed))
	case updates.Status != "":
		rec["status"] = string(updates.Status)
	}

	if updates.Result != nil {
		b, err := json.Marshal(updates.Result)
		if err != nil {
			return nil, fmt.Errorf("could not marshal result: %w", err)
		}

		rec["result"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	return rec, nil
}

// UpdatePendingLadders updates every pending ladder for the start/target pair.
func (p *PgSQL) UpdatePendingLadders(ctx context.Context, start, target string, updates storage.LadderUpdates) error {
	rec, err := updateRecord(updates)
	if err != nil {
		return err
	}

	_, err = p.Builder.Update(laddersTable).
		Set(rec).Where(
		goqu.I("start_word").Eq(start),
		goqu.I("target_word").Eq(target),
		goqu.I("status").Eq(string(domain.LadderStatusPending)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update pending ladders in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) PendingLadderCount(ctx context.Context, start, target string) (int64, error) {
	count, err := p.Builder.From(laddersTable).
		Where(
			goqu.I("start_word").Eq(start),
			goqu.I("target_word").Eq(target),
			goqu.I("status").Eq(string(domain.LadderStatusPending)),
			goqu.I("deleted_at").IsNull(),
		).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending ladders in pg: %w", err)
	}

	return count, nil
}

func (p *PgSQL) UpdateLadderByID(ctx context.Context,
	id domain.LadderID,
	updates storage.LadderUpdates) (*domain.Ladder, error) {
	rec, err := updateRecord(updates)
	if err != nil {
		return nil, err
	}

	var row PgLadder
	found, err := p.Builder.Update(laddersTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgLadder{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update ladder in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteLadder soft-deletes by setting deleted_at and returns the deleted row.
func (p *PgSQL) DeleteLadder(ctx context.Context, userID domain.UserID, id domain.LadderID) (*domain.Ladder, error) {
	var row PgLadder
	found, err := p.Builder.Update(laddersTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgLadder{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete ladder in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserLadders returns a page ordered by created_at DESC, id DESC.
func (p *PgSQL) UserLadders(ctx context.Context,
	userID domain.UserID,
	status domain.LadderStatus,
	cursor time.Time,
	limit uint) (storage.UserLadders, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// one extra row tells whether there is a next page
	ds := p.Builder.From(laddersTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgLadder
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserLadders{}, fmt.Errorf("could not fetch user ladders from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if len(rows) > 0 {
			nextCursor = &rows[len(rows)-1].CreatedAt
		}
	}

	domainRows, err := pgLaddersToDomain(rows)
	if err != nil {
		return storage.UserLadders{}, err
	}

	return storage.UserLadders{
		Ladders:    domainRows,
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) LadderByID(ctx context.Context, userID domain.UserID, id domain.LadderID) (*domain.Ladder, error) {
	var row PgLadder
	found, err := p.Builder.From(laddersTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch ladder by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) LastCompletedLadder(ctx context.Context, start, target, fingerprint string) (*domain.Ladder, error) {
	var row PgLadder
	found, err := p.Builder.From(laddersTable).
		Where(
			goqu.I("start_word").Eq(start),
			goqu.I("target_word").Eq(target),
			goqu.I("status").Eq(string(domain.LadderStatusCompleted)),
			goqu.L("result->>'fingerprint'").Eq(fingerprint),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("updated_at").Desc().NullsLast(), goqu.I("created_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last completed ladder: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
