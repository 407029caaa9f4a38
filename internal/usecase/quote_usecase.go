package usecase

import (
	"context"
	"strings"
	"time"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/observability/metrics"
	"socis_remeses/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateQuoteCommand creates one billable charge for one member and period.
type CreateQuoteCommand struct {
	MemberID    string
	AmountCents int64
	Concept     string
	Period      string
}

// IQuoteUseCase manages quotes and accepts the bank's feedback on them.
//
// RecordOutcome is the entry point for collected/returned notifications; it
// refreshes the derived sequence of the mandate the quote was collected under.

type IQuoteUseCase interface {
	Create(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListPendingByPeriod(ctx context.Context, period string) ([]entities.Quote, error)
	ListByMemberID(ctx context.Context, memberID string) ([]entities.Quote, error)
	RecordOutcome(ctx context.Context, id string, outcome entities.QuoteState) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	members     interfaces.IMemberRepository
	remittances interfaces.IRemittanceRepository
	sequencer   *MandateSequencer
	log         *zap.Logger
	now         func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, members interfaces.IMemberRepository, mandates interfaces.IMandateRepository, remittances interfaces.IRemittanceRepository, log *zap.Logger) *QuoteUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteUseCase{
		repo:        repo,
		members:     members,
		remittances: remittances,
		sequencer:   NewMandateSequencer(mandates, remittances, repo),
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuoteUseCase) Create(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error) {
	memberID := strings.TrimSpace(cmd.MemberID)
	if memberID == "" {
		return entities.Quote{}, entities.InvalidInput("quote", "member_id", "required")
	}
	if cmd.AmountCents <= 0 {
		return entities.Quote{}, entities.InvalidInput("quote", "amount_cents", "must be positive")
	}
	if cmd.AmountCents > entities.MaxAmountCents {
		return entities.Quote{}, entities.InvalidInput("quote", "amount_cents", "exceeds 999999999.99")
	}
	concept := strings.TrimSpace(cmd.Concept)
	if concept == "" || len(concept) > 140 {
		return entities.Quote{}, entities.InvalidInput("quote", "concept", "1-140 characters required")
	}
	period := strings.TrimSpace(cmd.Period)
	if !entities.ValidPeriod(period) {
		return entities.Quote{}, entities.InvalidInput("quote", "period", "expected YYYY-MM")
	}

	member, err := u.members.GetByID(ctx, memberID)
	if err != nil {
		return entities.Quote{}, err
	}
	if member.ID == "" {
		return entities.Quote{}, entities.NotFound("member", memberID)
	}

	now := u.now()
	q := entities.Quote{
		ID:          uuid.NewString(),
		MemberID:    memberID,
		AmountCents: cmd.AmountCents,
		Concept:     concept,
		Period:      period,
		State:       entities.QuoteStatePending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	u.log.Debug("quote: created", zap.String("quote_id", created.ID), zap.String("member_id", memberID), zap.String("period", period))
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, entities.InvalidInput("quote", "id", "required")
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, entities.NotFound("quote", id)
	}
	return q, nil
}

func (u *QuoteUseCase) ListPendingByPeriod(ctx context.Context, period string) ([]entities.Quote, error) {
	period = strings.TrimSpace(period)
	if !entities.ValidPeriod(period) {
		return nil, entities.InvalidInput("quote", "period", "expected YYYY-MM")
	}
	return u.repo.ListPendingByPeriod(ctx, period)
}

func (u *QuoteUseCase) ListByMemberID(ctx context.Context, memberID string) ([]entities.Quote, error) {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return nil, entities.InvalidInput("quote", "member_id", "required")
	}
	return u.repo.ListByMemberID(ctx, memberID)
}

func (u *QuoteUseCase) RecordOutcome(ctx context.Context, id string, outcome entities.QuoteState) (entities.Quote, error) {
	if outcome != entities.QuoteStateCollected && outcome != entities.QuoteStateReturned {
		return entities.Quote{}, entities.InvalidInput("quote", "state", "outcome must be collected or returned")
	}
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !q.State.CanTransition(outcome) {
		return entities.Quote{}, entities.InvalidTransition("quote", q.ID, string(q.State), string(outcome))
	}
	updated, err := u.repo.UpdateState(ctx, q.ID, q.State, outcome)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, entities.InvalidTransition("quote", q.ID, string(q.State), string(outcome))
	}
	metrics.IncQuoteOutcome(string(outcome))
	u.log.Info("quote: outcome recorded", zap.String("quote_id", q.ID), zap.String("state", string(outcome)))

	if err := u.refreshMandate(ctx, updated); err != nil {
		u.log.Warn("quote: refresh mandate sequence", zap.String("quote_id", q.ID), zap.Error(err))
	}
	return updated, nil
}

func (u *QuoteUseCase) refreshMandate(ctx context.Context, q entities.Quote) error {
	if q.RemittanceID == "" {
		return nil
	}
	lines, err := u.remittances.ListLines(ctx, q.RemittanceID)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if l.QuoteID == q.ID {
			_, err := u.sequencer.Refresh(ctx, l.MandateID)
			return err
		}
	}
	return nil
}
