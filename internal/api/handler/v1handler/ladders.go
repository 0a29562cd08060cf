package v1handler

import (
	"context"

	"github.com/google/uuid"

	"weaver/internal/api/specs/v1specs"
	"weaver/pkg/domain"
)

const DefaultLimit = 20

// DomainLadderToV1Specs maps a ladder to its API representation.
func DomainLadderToV1Specs(in *domain.Ladder) *v1specs.Ladder {
	updatedAt := v1specs.OptDateTime{}
	if !in.UpdatedAt.IsZero() {
		updatedAt.SetTo(in.UpdatedAt)
	}

	return &v1specs.Ladder{
		ID:        uuid.UUID(in.ID),
		Start:     in.Start,
		Target:    in.Target,
		Status:    v1specs.LadderStatus(in.Status),
		Result:    *DomainSolutionToV1Specs(&in.Result),
		Attempts:  int(in.Attempts), //nolint: gosec
		CreatedAt: in.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

// CreateLadder queues a ladder request for the authenticated user.
func (h Handler) CreateLadder(ctx context.Context, req *v1specs.CreateLadderRequest) (*v1specs.Ladder, error) {
	l, err := h.deps.Weaver.Enqueue(ctx, GetUserIDFromContext(ctx), req.Start, req.Target)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainLadderToV1Specs(l), nil
}

// DeleteLadder deletes a ladder by ID.
func (h Handler) DeleteLadder(ctx context.Context, params v1specs.DeleteLadderParams) error {
	return h.deps.Weaver.Delete(ctx, GetUserIDFromContext(ctx), domain.LadderID(params.ID)) //nolint: wrapcheck
}

// GetLadder returns a ladder by ID.
func (h Handler) GetLadder(ctx context.Context, params v1specs.GetLadderParams) (*v1specs.Ladder, error) {
	l, err := h.deps.Weaver.Result(ctx, GetUserIDFromContext(ctx), domain.LadderID(params.ID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainLadderToV1Specs(l), nil
}

// ListLadders returns a paginated list of ladders.
func (h Handler) ListLadders(ctx context.Context, params v1specs.ListLaddersParams) (*v1specs.LadderList, error) {
	ladders, nextCursor, err := h.deps.Weaver.UserLadders(ctx,
		GetUserIDFromContext(ctx),
		domain.LadderStatus(params.Status.Value),
		params.Cursor.Value,
		uint(params.Limit.Or(DefaultLimit))) //nolint: gosec
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	items := make([]v1specs.Ladder, 0, len(ladders))
	for i := range ladders {
		items = append(items, *DomainLadderToV1Specs(&ladders[i]))
	}

	var cursorOpt v1specs.OptNilString
	if nextCursor != "" {
		cursorOpt = v1specs.NewOptNilString(nextCursor)
	}

	return &v1specs.LadderList{
		Items:      items,
		NextCursor: cursorOpt,
	}, nil
}
