// Package memory keeps entities in process memory. It is the default store and
// the one used by tests; every repository is safe for concurrent use.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase/interfaces"
)

type MemberRepository struct {
	mu      sync.RWMutex
	byID    map[string]entities.Member
	byEmail map[string]string
}

var _ interfaces.IMemberRepository = (*MemberRepository)(nil)

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{
		byID:    make(map[string]entities.Member),
		byEmail: make(map[string]string),
	}
}

func (r *MemberRepository) Create(ctx context.Context, m entities.Member) (entities.Member, error) {
	if err := ctx.Err(); err != nil {
		return entities.Member{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[m.ID]; ok {
		return entities.Member{}, entities.Conflict("member", m.ID, "id", "already exists")
	}
	email := strings.ToLower(m.Email)
	if _, ok := r.byEmail[email]; ok {
		return entities.Member{}, entities.Conflict("member", m.ID, "email", "already registered")
	}
	r.byID[m.ID] = m
	r.byEmail[email] = m.ID
	return m, nil
}

func (r *MemberRepository) Update(ctx context.Context, m entities.Member) (entities.Member, error) {
	if err := ctx.Err(); err != nil {
		return entities.Member{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.byID[m.ID]
	if !ok {
		return entities.Member{}, nil
	}
	email := strings.ToLower(m.Email)
	if owner, ok := r.byEmail[email]; ok && owner != m.ID {
		return entities.Member{}, entities.Conflict("member", m.ID, "email", "already registered")
	}
	delete(r.byEmail, strings.ToLower(prev.Email))
	r.byEmail[email] = m.ID
	r.byID[m.ID] = m
	return m, nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (entities.Member, error) {
	if err := ctx.Err(); err != nil {
		return entities.Member{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (entities.Member, error) {
	if err := ctx.Err(); err != nil {
		return entities.Member{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[r.byEmail[strings.ToLower(email)]], nil
}

func (r *MemberRepository) List(ctx context.Context, filter entities.MemberFilter) ([]entities.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Member, 0, len(r.byID))
	for _, m := range r.byID {
		if filter.Matches(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
