package interfaces

import (
	"context"
	"socis_remeses/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for Quote, including the atomic claim
// used by the remittance builder.
//
//   - Create returns entities.ErrConflict when (member, period, concept) exists.
//   - UpdateState is a compare-and-set on the state; it returns the zero Quote when
//     the quote is missing or its state is not `from`.
//   - Claim marks every quote as belonging to remittanceID, requiring each to be
//     pending and unclaimed. It is all-or-nothing: on failure no quote stays
//     claimed and the error wraps entities.ErrAlreadyInRemittance (or ErrNotFound).
//   - Release drops the claim of remittanceID on the given quotes.
//   - MarkSubmitted moves every quote claimed by remittanceID from pending to
//     submitted, all-or-nothing.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListPendingByPeriod(ctx context.Context, period string) ([]entities.Quote, error)
	ListByMemberID(ctx context.Context, memberID string) ([]entities.Quote, error)
	UpdateState(ctx context.Context, id string, from, to entities.QuoteState) (entities.Quote, error)
	Claim(ctx context.Context, remittanceID string, quoteIDs []string) error
	Release(ctx context.Context, remittanceID string, quoteIDs []string) error
	MarkSubmitted(ctx context.Context, remittanceID string, quoteIDs []string) error
}
