package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/domain/sepa"
	"socis_remeses/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SEPA restricts mandate references to the Latin character set, max 35 chars.
var mandateReferencePattern = regexp.MustCompile(`^[A-Za-z0-9/\-?:().,'+ ]{1,35}$`)

// CreateMandateCommand registers a signed mandate. The sequence type is derived,
// never supplied.
type CreateMandateCommand struct {
	MemberID      string
	IBAN          string
	BIC           string
	Reference     string
	SignatureDate time.Time
	Active        bool
	SingleUse     bool
}

// IMandateUseCase manages SEPA mandates. A member may hold several mandates but
// at most one active at a time.

type IMandateUseCase interface {
	Create(ctx context.Context, cmd CreateMandateCommand) (entities.Mandate, error)
	GetByID(ctx context.Context, id string) (entities.Mandate, error)
	ListByMemberID(ctx context.Context, memberID string) ([]entities.Mandate, error)
	Activate(ctx context.Context, id string) (entities.Mandate, error)
	Deactivate(ctx context.Context, id string) (entities.Mandate, error)
	MarkFinal(ctx context.Context, id string) (entities.Mandate, error)
}

type MandateUseCase struct {
	repo      interfaces.IMandateRepository
	members   interfaces.IMemberRepository
	sequencer *MandateSequencer
	log       *zap.Logger
	now       func() time.Time
}

var _ IMandateUseCase = (*MandateUseCase)(nil)

func NewMandateUseCase(repo interfaces.IMandateRepository, members interfaces.IMemberRepository, remittances interfaces.IRemittanceRepository, quotes interfaces.IQuoteRepository, log *zap.Logger) *MandateUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &MandateUseCase{
		repo:      repo,
		members:   members,
		sequencer: NewMandateSequencer(repo, remittances, quotes),
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *MandateUseCase) Create(ctx context.Context, cmd CreateMandateCommand) (entities.Mandate, error) {
	memberID := strings.TrimSpace(cmd.MemberID)
	if memberID == "" {
		return entities.Mandate{}, entities.InvalidInput("mandate", "member_id", "required")
	}
	iban := sepa.NormalizeIBAN(cmd.IBAN)
	if err := sepa.ValidateIBAN(iban); err != nil {
		return entities.Mandate{}, entities.InvalidInput("mandate", "iban", err.Error())
	}
	bic := strings.ToUpper(strings.TrimSpace(cmd.BIC))
	if bic != "" {
		if err := sepa.ValidateBIC(bic); err != nil {
			return entities.Mandate{}, entities.InvalidInput("mandate", "bic", err.Error())
		}
	}
	ref := strings.TrimSpace(cmd.Reference)
	if !mandateReferencePattern.MatchString(ref) {
		return entities.Mandate{}, entities.InvalidInput("mandate", "mandate_reference", "1-35 SEPA characters required")
	}
	now := u.now()
	if cmd.SignatureDate.IsZero() || cmd.SignatureDate.After(now) {
		return entities.Mandate{}, entities.InvalidInput("mandate", "sign_date", "required and not in the future")
	}

	member, err := u.members.GetByID(ctx, memberID)
	if err != nil {
		return entities.Mandate{}, err
	}
	if member.ID == "" {
		return entities.Mandate{}, entities.NotFound("member", memberID)
	}
	if cmd.Active {
		if err := u.ensureNoOtherActive(ctx, memberID, ""); err != nil {
			return entities.Mandate{}, err
		}
	}

	seq := entities.SequenceFirst
	if cmd.SingleUse {
		seq = entities.SequenceOneOff
	}
	m := entities.Mandate{
		ID:            uuid.NewString(),
		MemberID:      memberID,
		IBAN:          iban,
		BIC:           bic,
		Reference:     ref,
		SignatureDate: dateOnly(cmd.SignatureDate),
		Sequence:      seq,
		Active:        cmd.Active,
		SingleUse:     cmd.SingleUse,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, m)
	if err != nil {
		return entities.Mandate{}, err
	}
	u.log.Info("mandate: created", zap.String("mandate_id", created.ID), zap.String("member_id", memberID), zap.Bool("active", created.Active))
	return created, nil
}

func (u *MandateUseCase) GetByID(ctx context.Context, id string) (entities.Mandate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Mandate{}, entities.InvalidInput("mandate", "id", "required")
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Mandate{}, err
	}
	if m.ID == "" {
		return entities.Mandate{}, entities.NotFound("mandate", id)
	}
	return m, nil
}

func (u *MandateUseCase) ListByMemberID(ctx context.Context, memberID string) ([]entities.Mandate, error) {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return nil, entities.InvalidInput("mandate", "member_id", "required")
	}
	return u.repo.ListByMemberID(ctx, memberID)
}

func (u *MandateUseCase) Activate(ctx context.Context, id string) (entities.Mandate, error) {
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Mandate{}, err
	}
	if m.Active {
		return m, nil
	}
	if err := u.ensureNoOtherActive(ctx, m.MemberID, m.ID); err != nil {
		return entities.Mandate{}, err
	}
	m.Active = true
	return u.save(ctx, m)
}

func (u *MandateUseCase) Deactivate(ctx context.Context, id string) (entities.Mandate, error) {
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Mandate{}, err
	}
	if !m.Active {
		return m, nil
	}
	m.Active = false
	return u.save(ctx, m)
}

// MarkFinal flags the mandate's next collection as its last one (FNAL once the
// recurring relationship is established).
func (u *MandateUseCase) MarkFinal(ctx context.Context, id string) (entities.Mandate, error) {
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Mandate{}, err
	}
	if !m.Active {
		return entities.Mandate{}, &entities.Error{Kind: entities.ErrNoActiveMandate, Entity: "mandate", ID: m.ID, Field: "active"}
	}
	if m.SingleUse {
		return entities.Mandate{}, entities.InvalidInput("mandate", "final_collection", "single-use mandates have no final collection")
	}
	m.FinalCollection = true
	if _, err := u.save(ctx, m); err != nil {
		return entities.Mandate{}, err
	}
	return u.sequencer.Refresh(ctx, m.ID)
}

func (u *MandateUseCase) save(ctx context.Context, m entities.Mandate) (entities.Mandate, error) {
	m.UpdatedAt = u.now()
	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Mandate{}, err
	}
	if updated.ID == "" {
		return entities.Mandate{}, entities.NotFound("mandate", m.ID)
	}
	u.log.Info("mandate: updated", zap.String("mandate_id", updated.ID), zap.Bool("active", updated.Active), zap.Bool("final", updated.FinalCollection))
	return updated, nil
}

func (u *MandateUseCase) ensureNoOtherActive(ctx context.Context, memberID, exceptID string) error {
	active, err := u.repo.GetActiveByMemberID(ctx, memberID)
	if err != nil {
		return err
	}
	if active.ID != "" && active.ID != exceptID {
		return entities.Conflict("mandate", active.ID, "active", "member already has an active mandate")
	}
	return nil
}
