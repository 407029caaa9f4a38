package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase/interfaces"
)

// QuoteRepository guards the whole quote table with one mutex, which makes Claim
// and MarkSubmitted atomic over the candidate set.
type QuoteRepository struct {
	mu    sync.RWMutex
	byID  map[string]entities.Quote
	byKey map[string]string
	now   func() time.Time
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{
		byID:  make(map[string]entities.Quote),
		byKey: make(map[string]string),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *QuoteRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if err := ctx.Err(); err != nil {
		return entities.Quote{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[q.ID]; ok {
		return entities.Quote{}, entities.Conflict("quote", q.ID, "id", "already exists")
	}
	if _, ok := r.byKey[q.UniqueKey()]; ok {
		return entities.Quote{}, entities.Conflict("quote", q.ID, "period", "member already has this concept for the period")
	}
	r.byID[q.ID] = q
	r.byKey[q.UniqueKey()] = q.ID
	return q, nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	if err := ctx.Err(); err != nil {
		return entities.Quote{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *QuoteRepository) ListPendingByPeriod(ctx context.Context, period string) ([]entities.Quote, error) {
	return r.list(ctx, func(q entities.Quote) bool {
		return q.Period == period && q.State == entities.QuoteStatePending && q.RemittanceID == ""
	})
}

func (r *QuoteRepository) ListByMemberID(ctx context.Context, memberID string) ([]entities.Quote, error) {
	return r.list(ctx, func(q entities.Quote) bool { return q.MemberID == memberID })
}

func (r *QuoteRepository) list(ctx context.Context, keep func(entities.Quote) bool) ([]entities.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entities.Quote
	for _, q := range r.byID {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Period != out[j].Period {
			return out[i].Period < out[j].Period
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *QuoteRepository) UpdateState(ctx context.Context, id string, from, to entities.QuoteState) (entities.Quote, error) {
	if err := ctx.Err(); err != nil {
		return entities.Quote{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.byID[id]
	if !ok || q.State != from {
		return entities.Quote{}, nil
	}
	q.State = to
	q.UpdatedAt = r.now()
	r.byID[id] = q
	return q, nil
}

func (r *QuoteRepository) Claim(ctx context.Context, remittanceID string, quoteIDs []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range quoteIDs {
		q, ok := r.byID[id]
		if !ok {
			return entities.NotFound("quote", id)
		}
		if q.State != entities.QuoteStatePending || q.RemittanceID != "" {
			return &entities.Error{Kind: entities.ErrAlreadyInRemittance, Entity: "quote", ID: id, Field: "remittance_id", Detail: q.RemittanceID}
		}
	}
	now := r.now()
	for _, id := range quoteIDs {
		q := r.byID[id]
		q.RemittanceID = remittanceID
		q.UpdatedAt = now
		r.byID[id] = q
	}
	return nil
}

func (r *QuoteRepository) Release(ctx context.Context, remittanceID string, quoteIDs []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for _, id := range quoteIDs {
		q, ok := r.byID[id]
		if !ok || q.RemittanceID != remittanceID || q.State != entities.QuoteStatePending {
			continue
		}
		q.RemittanceID = ""
		q.UpdatedAt = now
		r.byID[id] = q
	}
	return nil
}

func (r *QuoteRepository) MarkSubmitted(ctx context.Context, remittanceID string, quoteIDs []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range quoteIDs {
		q, ok := r.byID[id]
		if !ok {
			return entities.NotFound("quote", id)
		}
		if q.RemittanceID != remittanceID || q.State != entities.QuoteStatePending {
			return &entities.Error{Kind: entities.ErrAlreadyInRemittance, Entity: "quote", ID: id, Field: "state", Detail: string(q.State)}
		}
	}
	now := r.now()
	for _, id := range quoteIDs {
		q := r.byID[id]
		q.State = entities.QuoteStateSubmitted
		q.UpdatedAt = now
		r.byID[id] = q
	}
	return nil
}
