package memory

import (
	"context"
	"sort"
	"sync"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase/interfaces"
)

type RemittanceRepository struct {
	mu          sync.RWMutex
	remittances map[string]entities.Remittance
	lines       map[string][]entities.RemittanceLine
}

var _ interfaces.IRemittanceRepository = (*RemittanceRepository)(nil)

func NewRemittanceRepository() *RemittanceRepository {
	return &RemittanceRepository{
		remittances: make(map[string]entities.Remittance),
		lines:       make(map[string][]entities.RemittanceLine),
	}
}

func (r *RemittanceRepository) Create(ctx context.Context, rem entities.Remittance, lines []entities.RemittanceLine) (entities.Remittance, error) {
	if err := ctx.Err(); err != nil {
		return entities.Remittance{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.remittances[rem.ID]; ok {
		return entities.Remittance{}, entities.Conflict("remittance", rem.ID, "id", "already exists")
	}
	r.remittances[rem.ID] = cloneRemittance(rem)
	r.lines[rem.ID] = append([]entities.RemittanceLine(nil), lines...)
	return rem, nil
}

func (r *RemittanceRepository) GetByID(ctx context.Context, id string) (entities.Remittance, error) {
	if err := ctx.Err(); err != nil {
		return entities.Remittance{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneRemittance(r.remittances[id]), nil
}

func (r *RemittanceRepository) List(ctx context.Context) ([]entities.Remittance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Remittance, 0, len(r.remittances))
	for _, rem := range r.remittances {
		out = append(out, cloneRemittance(rem))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ExecutionDate.Equal(out[j].ExecutionDate) {
			return out[i].ExecutionDate.After(out[j].ExecutionDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *RemittanceRepository) ListLines(ctx context.Context, remittanceID string) ([]entities.RemittanceLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.RemittanceLine(nil), r.lines[remittanceID]...), nil
}

func (r *RemittanceRepository) ListLinesByMandateID(ctx context.Context, mandateID string) ([]entities.RemittanceLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entities.RemittanceLine
	for _, lines := range r.lines {
		for _, l := range lines {
			if l.MandateID == mandateID {
				out = append(out, l)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndToEndID < out[j].EndToEndID })
	return out, nil
}

func (r *RemittanceRepository) ReplaceLines(ctx context.Context, rem entities.Remittance, lines []entities.RemittanceLine) (entities.Remittance, error) {
	if err := ctx.Err(); err != nil {
		return entities.Remittance{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.remittances[rem.ID]
	if !ok {
		return entities.Remittance{}, entities.NotFound("remittance", rem.ID)
	}
	if stored.State != entities.RemittanceStateDraft {
		return entities.Remittance{}, entities.InvalidTransition("remittance", rem.ID, string(stored.State), string(entities.RemittanceStateDraft))
	}
	r.remittances[rem.ID] = cloneRemittance(rem)
	r.lines[rem.ID] = append([]entities.RemittanceLine(nil), lines...)
	return rem, nil
}

func (r *RemittanceRepository) UpdateState(ctx context.Context, rem entities.Remittance, from entities.RemittanceState) (entities.Remittance, error) {
	if err := ctx.Err(); err != nil {
		return entities.Remittance{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.remittances[rem.ID]
	if !ok {
		return entities.Remittance{}, entities.NotFound("remittance", rem.ID)
	}
	if stored.State != from {
		return entities.Remittance{}, entities.InvalidTransition("remittance", rem.ID, string(stored.State), string(rem.State))
	}
	r.remittances[rem.ID] = cloneRemittance(rem)
	return rem, nil
}

func (r *RemittanceRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.remittances[id]
	if !ok {
		return entities.NotFound("remittance", id)
	}
	if stored.State != entities.RemittanceStateDraft {
		return entities.InvalidTransition("remittance", id, string(stored.State), "cancelled")
	}
	delete(r.remittances, id)
	delete(r.lines, id)
	return nil
}

func cloneRemittance(rem entities.Remittance) entities.Remittance {
	rem.QuoteIDs = append([]string(nil), rem.QuoteIDs...)
	return rem
}
