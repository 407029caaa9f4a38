package memory

import (
	"context"
	"sort"
	"sync"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase/interfaces"
)

type MandateRepository struct {
	mu          sync.RWMutex
	byID        map[string]entities.Mandate
	byReference map[string]string
}

var _ interfaces.IMandateRepository = (*MandateRepository)(nil)

func NewMandateRepository() *MandateRepository {
	return &MandateRepository{
		byID:        make(map[string]entities.Mandate),
		byReference: make(map[string]string),
	}
}

func (r *MandateRepository) Create(ctx context.Context, m entities.Mandate) (entities.Mandate, error) {
	if err := ctx.Err(); err != nil {
		return entities.Mandate{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[m.ID]; ok {
		return entities.Mandate{}, entities.Conflict("mandate", m.ID, "id", "already exists")
	}
	if _, ok := r.byReference[m.Reference]; ok {
		return entities.Mandate{}, entities.Conflict("mandate", m.ID, "mandate_reference", "already used")
	}
	if err := r.checkActive(m); err != nil {
		return entities.Mandate{}, err
	}
	r.byID[m.ID] = m
	r.byReference[m.Reference] = m.ID
	return m, nil
}

// Update rewrites a mandate. The reference and owner are immutable once created.
func (r *MandateRepository) Update(ctx context.Context, m entities.Mandate) (entities.Mandate, error) {
	if err := ctx.Err(); err != nil {
		return entities.Mandate{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.byID[m.ID]
	if !ok {
		return entities.Mandate{}, nil
	}
	m.Reference = prev.Reference
	m.MemberID = prev.MemberID
	if err := r.checkActive(m); err != nil {
		return entities.Mandate{}, err
	}
	r.byID[m.ID] = m
	return m, nil
}

// checkActive keeps at most one active mandate per member. Callers hold mu.
func (r *MandateRepository) checkActive(m entities.Mandate) error {
	if !m.Active {
		return nil
	}
	for _, other := range r.byID {
		if other.ID != m.ID && other.MemberID == m.MemberID && other.Active {
			return entities.Conflict("mandate", other.ID, "active", "member already has an active mandate")
		}
	}
	return nil
}

func (r *MandateRepository) GetByID(ctx context.Context, id string) (entities.Mandate, error) {
	if err := ctx.Err(); err != nil {
		return entities.Mandate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *MandateRepository) GetByReference(ctx context.Context, reference string) (entities.Mandate, error) {
	if err := ctx.Err(); err != nil {
		return entities.Mandate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[r.byReference[reference]], nil
}

func (r *MandateRepository) ListByMemberID(ctx context.Context, memberID string) ([]entities.Mandate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entities.Mandate
	for _, m := range r.byID {
		if m.MemberID == memberID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SignatureDate.Before(out[j].SignatureDate) })
	return out, nil
}

func (r *MandateRepository) GetActiveByMemberID(ctx context.Context, memberID string) (entities.Mandate, error) {
	if err := ctx.Err(); err != nil {
		return entities.Mandate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.byID {
		if m.MemberID == memberID && m.Active {
			return m, nil
		}
	}
	return entities.Mandate{}, nil
}
