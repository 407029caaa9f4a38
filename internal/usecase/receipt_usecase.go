package usecase

import (
	"context"
	"sort"
	"strings"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase/interfaces"
)

// ReceiptFilter narrows the receipts (rebuts) listing.
type ReceiptFilter struct {
	RemittanceID string
	Status       entities.QuoteState
	Search       string
}

type IReceiptUseCase interface {
	List(ctx context.Context, filter ReceiptFilter) ([]entities.Receipt, error)
}

// ReceiptUseCase joins remittance lines with their members and quotes.
type ReceiptUseCase struct {
	remittances interfaces.IRemittanceRepository
	quotes      interfaces.IQuoteRepository
	members     interfaces.IMemberRepository
}

var _ IReceiptUseCase = (*ReceiptUseCase)(nil)

func NewReceiptUseCase(remittances interfaces.IRemittanceRepository, quotes interfaces.IQuoteRepository, members interfaces.IMemberRepository) *ReceiptUseCase {
	return &ReceiptUseCase{remittances: remittances, quotes: quotes, members: members}
}

func (u *ReceiptUseCase) List(ctx context.Context, filter ReceiptFilter) ([]entities.Receipt, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, entities.InvalidInput("receipt", "status", "unknown status filter")
	}

	var rems []entities.Remittance
	if id := strings.TrimSpace(filter.RemittanceID); id != "" {
		rem, err := u.remittances.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if rem.ID == "" {
			return nil, entities.NotFound("remittance", id)
		}
		rems = []entities.Remittance{rem}
	} else {
		all, err := u.remittances.List(ctx)
		if err != nil {
			return nil, err
		}
		rems = all
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	names := make(map[string]string)
	out := make([]entities.Receipt, 0)
	for _, rem := range rems {
		lines, err := u.remittances.ListLines(ctx, rem.ID)
		if err != nil {
			return nil, err
		}
		for _, l := range lines {
			q, err := u.quotes.GetByID(ctx, l.QuoteID)
			if err != nil {
				return nil, err
			}
			name, ok := names[l.MemberID]
			if !ok {
				m, err := u.members.GetByID(ctx, l.MemberID)
				if err != nil {
					return nil, err
				}
				name = m.FullName()
				if name == "" {
					name = l.DebtorName
				}
				names[l.MemberID] = name
			}
			r := entities.Receipt{
				LineID:        l.ID,
				RemittanceID:  rem.ID,
				MemberID:      l.MemberID,
				MemberName:    name,
				QuoteID:       l.QuoteID,
				AmountCents:   l.AmountCents,
				Status:        q.State,
				Reference:     l.EndToEndID,
				Concept:       l.Concept,
				ExecutionDate: rem.ExecutionDate,
			}
			if filter.Status != "" && r.Status != filter.Status {
				continue
			}
			if search != "" && !strings.Contains(strings.ToLower(r.MemberName), search) && !strings.Contains(strings.ToLower(r.Reference), search) {
				continue
			}
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ExecutionDate.Equal(out[j].ExecutionDate) {
			return out[i].ExecutionDate.After(out[j].ExecutionDate)
		}
		return out[i].Reference < out[j].Reference
	})
	return out, nil
}
