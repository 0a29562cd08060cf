package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"weaver/pkg/domain"
	"weaver/pkg/storage"
)

func pending(userID domain.UserID, start, target string) domain.Ladder {
	return domain.Ladder{UserID: userID, Start: start, Target: target, Status: domain.LadderStatusPending}
}

func TestPgSQL_StoreLadders(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	res, err := pgSQL.StoreLadders(ctx, pending(userID, "COLD", "WARM"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, "COLD", res[0].Start)
	require.Equal(t, "WARM", res[0].Target)
	require.NotEqual(t, uuid.Nil, uuid.UUID(res[0].ID))
	require.False(t, res[0].CreatedAt.IsZero())
	require.False(t, res[0].Result.Found)

	res, err = pgSQL.StoreLadders(ctx, pending(userID, "COLD", "WARM"), pending(userID, "HEAD", "TAIL"))
	require.NoError(t, err)
	require.Len(t, res, 2)

	res, err = pgSQL.StoreLadders(ctx)
	require.NoError(t, err)
	require.Empty(t, res)
}

func TestPgSQL_UpdatePendingLadders(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	completed := pending(userID, "COLD", "WARM")
	completed.Status = domain.LadderStatusCompleted
	ins, err := pgSQL.StoreLadders(ctx,
		pending(userID, "COLD", "WARM"),
		pending(userID, "COLD", "WARM"),
		completed,
		pending(userID, "HEAD", "TAIL"),
	)
	require.NoError(t, err)
	require.Len(t, ins, 4)

	count, err := pgSQL.PendingLadderCount(ctx, "COLD", "WARM")
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	empty := ""
	solution := domain.Solution{
		Start:       "COLD",
		Target:      "WARM",
		Path:        []string{"COLD", "CORD", "WORD", "WARD", "WARM"},
		Found:       true,
		Fingerprint: "fp1",
	}
	require.NoError(t, pgSQL.UpdatePendingLadders(ctx, "COLD", "WARM", storage.LadderUpdates{
		Status:    domain.LadderStatusCompleted,
		Result:    &solution,
		LastError: &empty,
	}))

	page, err := pgSQL.UserLadders(ctx, userID, "", time.Time{}, 50)
	require.NoError(t, err)

	byID := map[domain.LadderID]domain.Ladder{}
	for _, l := range page.Ladders {
		byID[l.ID] = l
	}

	for i := range 2 {
		l := byID[ins[i].ID]
		require.Equal(t, domain.LadderStatusCompleted, l.Status)
		require.EqualValues(t, 1, l.Attempts)
		require.False(t, l.UpdatedAt.IsZero())
		require.Empty(t, l.LastError)
		require.Equal(t, solution, l.Result)
	}
	require.EqualValues(t, 0, byID[ins[2].ID].Attempts)
	require.Equal(t, domain.LadderStatusPending, byID[ins[3].ID].Status)

	count, err = pgSQL.PendingLadderCount(ctx, "COLD", "WARM")
	require.NoError(t, err)
	require.Zero(t, count)

	last, err := pgSQL.LastCompletedLadder(ctx, "COLD", "WARM", "fp1")
	require.NoError(t, err)
	require.NotNil(t, last)
	require.Equal(t, solution.Path, last.Result.Path)
	require.Equal(t, "fp1", last.Result.Fingerprint)

	// a result over another word list is never reused
	other, err := pgSQL.LastCompletedLadder(ctx, "COLD", "WARM", "fp2")
	require.NoError(t, err)
	require.Nil(t, other)

	none, err := pgSQL.LastCompletedLadder(ctx, "HEAD", "TAIL", "fp1")
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestPgSQL_UpdatePendingLadders_MaxAttempts(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	ins, err := pgSQL.StoreLadders(ctx, pending(userID, "LOVE", "HATE"))
	require.NoError(t, err)

	msg := "solve timed out"
	failed := storage.LadderUpdates{Status: domain.LadderStatusFailed, LastError: &msg, MaxAttempts: 2}

	require.NoError(t, pgSQL.UpdatePendingLadders(ctx, "LOVE", "HATE", failed))
	l, err := pgSQL.LadderByID(ctx, userID, ins[0].ID)
	require.NoError(t, err)
	require.Equal(t, domain.LadderStatusPending, l.Status, "first failure keeps the ladder pending")
	require.EqualValues(t, 1, l.Attempts)
	require.Equal(t, msg, l.LastError)

	require.NoError(t, pgSQL.UpdatePendingLadders(ctx, "LOVE", "HATE", failed))
	l, err = pgSQL.LadderByID(ctx, userID, ins[0].ID)
	require.NoError(t, err)
	require.Equal(t, domain.LadderStatusFailed, l.Status)
	require.EqualValues(t, 2, l.Attempts)
}

func TestPgSQL_UpdateLadderByID(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	ins, err := pgSQL.StoreLadders(ctx, pending(userID, "COLD", "COLD"))
	require.NoError(t, err)

	updated, err := pgSQL.UpdateLadderByID(ctx, ins[0].ID, storage.LadderUpdates{
		Status: domain.LadderStatusCompleted,
		Result: &domain.Solution{Start: "COLD", Target: "COLD", Path: []string{"COLD"}, Found: true},
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, domain.LadderStatusCompleted, updated.Status)
	require.Equal(t, []string{"COLD"}, updated.Result.Path)

	missing, err := pgSQL.UpdateLadderByID(ctx, domain.LadderID(uuid.New()), storage.LadderUpdates{
		Status: domain.LadderStatusCompleted,
	})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_DeleteLadder(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	stored, err := pgSQL.StoreLadders(ctx, pending(userID, "MILK", "WINE"))
	require.NoError(t, err)
	id := stored[0].ID

	deleted, err := pgSQL.DeleteLadder(ctx, userID, id)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, id, deleted.ID)

	got, err := pgSQL.LadderByID(ctx, userID, id)
	require.NoError(t, err)
	require.Nil(t, got)

	page, err := pgSQL.UserLadders(ctx, userID, "", time.Time{}, 10)
	require.NoError(t, err)
	require.Empty(t, page.Ladders)

	count, err := pgSQL.PendingLadderCount(ctx, "MILK", "WINE")
	require.NoError(t, err)
	require.Zero(t, count, "deleted ladders are not pending work")

	again, err := pgSQL.DeleteLadder(ctx, userID, id)
	require.NoError(t, err)
	require.Nil(t, again)
}

func TestPgSQL_UserLadders_Pagination(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	ladders := make([]domain.Ladder, 0, 5)
	for range 5 {
		ladders = append(ladders, pending(userID, "COLD", "WARM"))
	}
	stored, err := pgSQL.StoreLadders(ctx, ladders...)
	require.NoError(t, err)
	require.Len(t, stored, 5)

	// spread created_at so the order is deterministic, last stored is newest
	now := time.Now().UTC()
	for i, l := range stored {
		created := now.Add(-time.Duration(4-i) * time.Minute)
		_, err := pgSQL.DB.ExecContext(ctx, "UPDATE ladders SET created_at = $1 WHERE id = $2", created, uuid.UUID(l.ID))
		require.NoError(t, err)
	}

	p1, err := pgSQL.UserLadders(ctx, userID, "", time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, p1.Ladders, 2)
	require.Equal(t, stored[4].ID, p1.Ladders[0].ID)
	require.NotNil(t, p1.NextCursor)

	p2, err := pgSQL.UserLadders(ctx, userID, "", *p1.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p2.Ladders, 2)
	require.NotNil(t, p2.NextCursor)

	p3, err := pgSQL.UserLadders(ctx, userID, "", *p2.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p3.Ladders, 1)
	require.Nil(t, p3.NextCursor)
	require.Equal(t, stored[0].ID, p3.Ladders[0].ID)

	// status filter
	_, err = pgSQL.DB.ExecContext(ctx, "UPDATE ladders SET status = 'COMPLETED' WHERE id = $1", uuid.UUID(stored[1].ID))
	require.NoError(t, err)
	done, err := pgSQL.UserLadders(ctx, userID, domain.LadderStatusCompleted, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, done.Ladders, 1)
	require.Equal(t, stored[1].ID, done.Ladders[0].ID)
}

func TestPgSQL_LadderByID_OtherUser(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userA := domain.UserID(uuid.New())
	userB := domain.UserID(uuid.New())
	storedA, err := pgSQL.StoreLadders(ctx, pending(userA, "COLD", "WARM"))
	require.NoError(t, err)

	got, err := pgSQL.LadderByID(ctx, userA, storedA[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	other, err := pgSQL.LadderByID(ctx, userB, storedA[0].ID)
	require.NoError(t, err)
	require.Nil(t, other)
}
