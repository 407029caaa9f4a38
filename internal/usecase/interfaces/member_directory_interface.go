package interfaces

import (
	"context"
	"socis_remeses/internal/domain/entities"
)

// IMemberDirectory is the remote member directory (the association's webhook).
// Implementations must validate the payload and fail with
// entities.ErrInvalidDocument instead of returning an empty list.
type IMemberDirectory interface {
	FetchMembers(ctx context.Context) ([]entities.Member, error)
}
