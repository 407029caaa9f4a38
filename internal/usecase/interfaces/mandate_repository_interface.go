package interfaces

import (
	"context"
	"socis_remeses/internal/domain/entities"
)

// IMandateRepository abstracts persistence for Mandate.
//
// The repository enforces the unique mandate reference and rejects with
// ErrConflict (field "active") a write that would leave a member with two
// active mandates. The use case checks the same rule first for a clearer error.

type IMandateRepository interface {
	Create(ctx context.Context, m entities.Mandate) (entities.Mandate, error)
	Update(ctx context.Context, m entities.Mandate) (entities.Mandate, error)
	GetByID(ctx context.Context, id string) (entities.Mandate, error)
	GetByReference(ctx context.Context, reference string) (entities.Mandate, error)
	ListByMemberID(ctx context.Context, memberID string) ([]entities.Mandate, error)
	GetActiveByMemberID(ctx context.Context, memberID string) (entities.Mandate, error)
}
