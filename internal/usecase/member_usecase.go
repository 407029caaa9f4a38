package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/infrastructure/cache"
	"socis_remeses/internal/observability/metrics"
	"socis_remeses/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrDirectoryNotConfigured = errors.New("member directory not configured")

const directoryCacheKey = "directory"

var validate = validator.New()

// MemberInput carries the editable member fields (socis form).
type MemberInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string
	DNI        string
	Status     entities.MemberStatus
	JoinDate   time.Time
	Notes      string
}

// SyncResult summarises a directory synchronisation.
type SyncResult struct {
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// MemberStats feeds the dashboard: member counts per status and the most
// recent joiners, newest first.
type MemberStats struct {
	Total    int
	Active   int
	Inactive int
	Pending  int
	Recent   []entities.Member
}

// IMemberUseCase manages members (socis).
//
// Listings go through a read-through cache keyed by the filter; every write
// invalidates the member listings.

type IMemberUseCase interface {
	Create(ctx context.Context, in MemberInput) (entities.Member, error)
	Update(ctx context.Context, id string, in MemberInput) (entities.Member, error)
	ChangeStatus(ctx context.Context, id string, status entities.MemberStatus) (entities.Member, error)
	GetByID(ctx context.Context, id string) (entities.Member, error)
	List(ctx context.Context, filter entities.MemberFilter) ([]entities.Member, error)
	Directory(ctx context.Context) ([]entities.Member, error)
	SyncDirectory(ctx context.Context) (SyncResult, error)
	Stats(ctx context.Context, recent int) (MemberStats, error)
}

type MemberUseCase struct {
	repo      interfaces.IMemberRepository
	directory interfaces.IMemberDirectory
	listCache *cache.QueryCache[[]entities.Member]
	dirCache  *cache.QueryCache[[]entities.Member]
	log       *zap.Logger
	now       func() time.Time
}

var _ IMemberUseCase = (*MemberUseCase)(nil)

// NewMemberUseCase wires the member use case. directory may be nil when no
// remote directory is configured.
func NewMemberUseCase(repo interfaces.IMemberRepository, directory interfaces.IMemberDirectory, listTTL, directoryTTL time.Duration, log *zap.Logger) *MemberUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &MemberUseCase{
		repo:      repo,
		directory: directory,
		listCache: cache.New[[]entities.Member](listTTL),
		dirCache:  cache.New[[]entities.Member](directoryTTL),
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *MemberUseCase) Create(ctx context.Context, in MemberInput) (entities.Member, error) {
	in, err := normalizeMemberInput(in)
	if err != nil {
		return entities.Member{}, err
	}
	if existing, err := u.repo.GetByEmail(ctx, in.Email); err != nil {
		return entities.Member{}, err
	} else if existing.ID != "" {
		return entities.Member{}, entities.Conflict("member", existing.ID, "email", "already registered")
	}

	now := u.now()
	m := applyMemberInput(entities.Member{ID: uuid.NewString(), CreatedAt: now}, in)
	m.UpdatedAt = now
	if m.JoinDate.IsZero() {
		m.JoinDate = dateOnly(now)
	}
	created, err := u.repo.Create(ctx, m)
	if err != nil {
		return entities.Member{}, err
	}
	u.listCache.InvalidateAll()
	u.log.Info("member: created", zap.String("member_id", created.ID))
	return created, nil
}

func (u *MemberUseCase) Update(ctx context.Context, id string, in MemberInput) (entities.Member, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Member{}, err
	}
	in, err = normalizeMemberInput(in)
	if err != nil {
		return entities.Member{}, err
	}
	m := applyMemberInput(current, in)
	if m.JoinDate.IsZero() {
		m.JoinDate = current.JoinDate
	}
	m.UpdatedAt = u.now()
	return u.save(ctx, m)
}

func (u *MemberUseCase) ChangeStatus(ctx context.Context, id string, status entities.MemberStatus) (entities.Member, error) {
	if !status.Valid() {
		return entities.Member{}, entities.InvalidInput("member", "status", "must be active, inactive or pending")
	}
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Member{}, err
	}
	m.Status = status
	m.UpdatedAt = u.now()
	return u.save(ctx, m)
}

func (u *MemberUseCase) save(ctx context.Context, m entities.Member) (entities.Member, error) {
	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Member{}, err
	}
	if updated.ID == "" {
		return entities.Member{}, entities.NotFound("member", m.ID)
	}
	u.listCache.InvalidateAll()
	return updated, nil
}

func (u *MemberUseCase) GetByID(ctx context.Context, id string) (entities.Member, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Member{}, entities.InvalidInput("member", "id", "required")
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Member{}, err
	}
	if m.ID == "" {
		return entities.Member{}, entities.NotFound("member", id)
	}
	return m, nil
}

func (u *MemberUseCase) List(ctx context.Context, filter entities.MemberFilter) ([]entities.Member, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, entities.InvalidInput("member", "status", "unknown status filter")
	}
	key := "members?status=" + string(filter.Status) + "&q=" + strings.ToLower(strings.TrimSpace(filter.Search))
	return u.listCache.Get(ctx, key, func(ctx context.Context) ([]entities.Member, error) {
		return u.repo.List(ctx, filter)
	})
}

// Stats counts members by status and returns up to recent members ordered by
// join date, newest first. It reads the cached unfiltered listing.
func (u *MemberUseCase) Stats(ctx context.Context, recent int) (MemberStats, error) {
	if recent < 0 {
		return MemberStats{}, entities.InvalidInput("member", "recent", "must not be negative")
	}
	members, err := u.List(ctx, entities.MemberFilter{})
	if err != nil {
		return MemberStats{}, err
	}
	stats := MemberStats{Total: len(members)}
	for _, m := range members {
		switch m.Status {
		case entities.MemberStatusActive:
			stats.Active++
		case entities.MemberStatusInactive:
			stats.Inactive++
		case entities.MemberStatusPending:
			stats.Pending++
		}
	}

	// the listing is shared with the cache
	sorted := append([]entities.Member(nil), members...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.JoinDate.Equal(b.JoinDate) {
			return a.JoinDate.After(b.JoinDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	stats.Recent = sorted[:min(recent, len(sorted))]
	return stats, nil
}

// Directory lists the members published by the remote directory, cached.
func (u *MemberUseCase) Directory(ctx context.Context) ([]entities.Member, error) {
	if u.directory == nil {
		return nil, ErrDirectoryNotConfigured
	}
	return u.dirCache.Get(ctx, directoryCacheKey, u.directory.FetchMembers)
}

// SyncDirectory refetches the remote directory and upserts its members by id.
func (u *MemberUseCase) SyncDirectory(ctx context.Context) (res SyncResult, err error) {
	defer func() { metrics.IncDirectorySync(metrics.Result(err)) }()

	u.dirCache.Invalidate(directoryCacheKey)
	remote, err := u.Directory(ctx)
	if err != nil {
		u.log.Warn("member: directory fetch failed", zap.Error(err))
		return SyncResult{}, err
	}
	res.Fetched = len(remote)

	now := u.now()
	for _, rm := range remote {
		current, err := u.repo.GetByID(ctx, rm.ID)
		if err != nil {
			return res, err
		}
		if current.ID == "" {
			rm.CreatedAt, rm.UpdatedAt = now, now
			if rm.JoinDate.IsZero() {
				rm.JoinDate = dateOnly(now)
			}
			if _, err := u.repo.Create(ctx, rm); err != nil {
				return res, err
			}
			res.Created++
			continue
		}
		current.FirstName, current.LastName = rm.FirstName, rm.LastName
		current.Email, current.Phone, current.Status = rm.Email, rm.Phone, rm.Status
		current.UpdatedAt = now
		if _, err := u.repo.Update(ctx, current); err != nil {
			return res, err
		}
		res.Updated++
	}
	u.listCache.InvalidateAll()
	u.log.Info("member: directory synced", zap.Int("fetched", res.Fetched), zap.Int("created", res.Created), zap.Int("updated", res.Updated))
	return res, nil
}

func normalizeMemberInput(in MemberInput) (MemberInput, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.DNI = strings.ToUpper(strings.TrimSpace(in.DNI))
	if in.FirstName == "" {
		return in, entities.InvalidInput("member", "first_name", "required")
	}
	if err := validate.Var(in.Email, "required,email,max=254"); err != nil {
		return in, entities.InvalidInput("member", "email", "invalid email address")
	}
	if in.Status == "" {
		in.Status = entities.MemberStatusActive
	}
	if !in.Status.Valid() {
		return in, entities.InvalidInput("member", "status", "must be active, inactive or pending")
	}
	return in, nil
}

func applyMemberInput(m entities.Member, in MemberInput) entities.Member {
	m.FirstName = in.FirstName
	m.LastName = in.LastName
	m.Email = in.Email
	m.Phone = in.Phone
	m.Address = strings.TrimSpace(in.Address)
	m.City = strings.TrimSpace(in.City)
	m.PostalCode = strings.TrimSpace(in.PostalCode)
	m.DNI = in.DNI
	m.Status = in.Status
	if !in.JoinDate.IsZero() {
		m.JoinDate = dateOnly(in.JoinDate)
	}
	m.Notes = strings.TrimSpace(in.Notes)
	return m
}
