package interfaces

import (
	"context"
	"socis_remeses/internal/domain/entities"
)

// IRemittanceRepository abstracts persistence for Remittance and the lines it
// owns.
//
//   - UpdateState is a compare-and-set: it writes r only when the stored state
//     equals `from`, otherwise returns entities.ErrInvalidTransition.
//   - ReplaceLines and Delete only apply to drafts.
//   - ListLinesByMandateID returns the lines of every stored (non-cancelled)
//     remittance that used the mandate.

type IRemittanceRepository interface {
	Create(ctx context.Context, r entities.Remittance, lines []entities.RemittanceLine) (entities.Remittance, error)
	GetByID(ctx context.Context, id string) (entities.Remittance, error)
	List(ctx context.Context) ([]entities.Remittance, error)
	ListLines(ctx context.Context, remittanceID string) ([]entities.RemittanceLine, error)
	ListLinesByMandateID(ctx context.Context, mandateID string) ([]entities.RemittanceLine, error)
	ReplaceLines(ctx context.Context, r entities.Remittance, lines []entities.RemittanceLine) (entities.Remittance, error)
	UpdateState(ctx context.Context, r entities.Remittance, from entities.RemittanceState) (entities.Remittance, error)
	Delete(ctx context.Context, id string) error
}
