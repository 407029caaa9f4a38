package interfaces

import (
	"context"
	"socis_remeses/internal/domain/entities"
)

// IMemberRepository abstracts persistence for Member.
//
// Lookups return the zero Member (empty ID) when nothing matches. Create and
// Update return entities.ErrConflict when the email is already taken.

type IMemberRepository interface {
	Create(ctx context.Context, m entities.Member) (entities.Member, error)
	Update(ctx context.Context, m entities.Member) (entities.Member, error)
	GetByID(ctx context.Context, id string) (entities.Member, error)
	GetByEmail(ctx context.Context, email string) (entities.Member, error)
	List(ctx context.Context, filter entities.MemberFilter) ([]entities.Member, error)
}
