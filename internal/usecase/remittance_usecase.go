package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/domain/sepa"
	"socis_remeses/internal/observability/metrics"
	"socis_remeses/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// lineNamespace derives stable line ids from end-to-end ids.
var lineNamespace = uuid.MustParse("5b0c7c52-6f1e-4d8a-9a57-1f3f4e8b2c10")

// BuildRemittanceCommand is the input of the remittance builder.
type BuildRemittanceCommand struct {
	Creditor      entities.Creditor
	ExecutionDate time.Time
	QuoteIDs      []string
}

// IRemittanceUseCase assembles, finalizes and archives SEPA remittances (remeses).
//
//   - Build claims pending quotes into a new draft, all-or-nothing.
//   - Rebuild recomputes a draft over the same quotes; end-to-end ids are stable.
//   - Generate finalizes a draft: pain.008 file, quotes -> submitted.
//   - MarkSubmitted records that the file was handed to the bank.
//   - Cancel deletes a draft and releases its quotes.

type IRemittanceUseCase interface {
	Build(ctx context.Context, cmd BuildRemittanceCommand) (entities.RemittanceDocument, error)
	Rebuild(ctx context.Context, id string) (entities.RemittanceDocument, error)
	Generate(ctx context.Context, id string) (entities.RemittanceDocument, error)
	MarkSubmitted(ctx context.Context, id string) (entities.Remittance, error)
	Cancel(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.RemittanceDocument, error)
	List(ctx context.Context) ([]entities.Remittance, error)
	Document(ctx context.Context, id string) ([]byte, error)
	Verify(ctx context.Context, data []byte) (entities.RemittanceDocument, error)
}

type RemittanceUseCase struct {
	remittances interfaces.IRemittanceRepository
	quotes      interfaces.IQuoteRepository
	members     interfaces.IMemberRepository
	mandates    interfaces.IMandateRepository
	sequencer   *MandateSequencer
	codec       interfaces.IRemittanceCodec
	documents   interfaces.IDocumentStore
	log         *zap.Logger
	now         func() time.Time
	newSuffix   func() string
}

var _ IRemittanceUseCase = (*RemittanceUseCase)(nil)

func NewRemittanceUseCase(
	remittances interfaces.IRemittanceRepository,
	quotes interfaces.IQuoteRepository,
	members interfaces.IMemberRepository,
	mandates interfaces.IMandateRepository,
	codec interfaces.IRemittanceCodec,
	documents interfaces.IDocumentStore,
	log *zap.Logger,
) *RemittanceUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &RemittanceUseCase{
		remittances: remittances,
		quotes:      quotes,
		members:     members,
		mandates:    mandates,
		sequencer:   NewMandateSequencer(mandates, remittances, quotes),
		codec:       codec,
		documents:   documents,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
		newSuffix:   func() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:8] },
	}
}

func (u *RemittanceUseCase) Build(ctx context.Context, cmd BuildRemittanceCommand) (doc entities.RemittanceDocument, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveRemittanceBuild(metrics.Result(err), time.Since(start))
	}()

	creditor, err := normalizeCreditor(cmd.Creditor)
	if err != nil {
		return entities.RemittanceDocument{}, err
	}
	if cmd.ExecutionDate.IsZero() {
		return entities.RemittanceDocument{}, entities.InvalidInput("remittance", "execution_date", "required")
	}
	quoteIDs := normalizeIDs(cmd.QuoteIDs)
	if len(quoteIDs) == 0 {
		return entities.RemittanceDocument{}, entities.InvalidInput("remittance", "quote_ids", "at least one quote is required")
	}

	execDate := dateOnly(cmd.ExecutionDate)
	now := u.now()
	rem := entities.Remittance{
		ID:            "R" + execDate.Format("20060102") + "-" + u.newSuffix(),
		ExecutionDate: execDate,
		Creditor:      creditor,
		State:         entities.RemittanceStateDraft,
		QuoteIDs:      quoteIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	u.log.Debug("remittance: build start", zap.String("remittance_id", rem.ID), zap.Int("quotes", len(quoteIDs)))

	lines, err := u.assemble(ctx, rem, false)
	if err != nil {
		u.log.Info("remittance: build rejected", zap.String("remittance_id", rem.ID), zap.Error(err))
		return entities.RemittanceDocument{}, err
	}
	rem.TotalCents = entities.SumLines(lines)

	if err := u.quotes.Claim(ctx, rem.ID, quoteIDs); err != nil {
		u.log.Info("remittance: quote claim failed", zap.String("remittance_id", rem.ID), zap.Error(err))
		return entities.RemittanceDocument{}, err
	}
	created, err := u.remittances.Create(ctx, rem, lines)
	if err != nil {
		if relErr := u.quotes.Release(ctx, rem.ID, quoteIDs); relErr != nil {
			u.log.Error("remittance: release after failed create", zap.String("remittance_id", rem.ID), zap.Error(relErr))
		}
		return entities.RemittanceDocument{}, err
	}
	u.log.Info("remittance: draft built",
		zap.String("remittance_id", created.ID),
		zap.Int("lines", len(lines)),
		zap.Int64("total_cents", created.TotalCents),
	)
	return entities.RemittanceDocument{Remittance: created, Lines: lines}, nil
}

func (u *RemittanceUseCase) Rebuild(ctx context.Context, id string) (entities.RemittanceDocument, error) {
	rem, err := u.getDraft(ctx, id, "rebuild")
	if err != nil {
		return entities.RemittanceDocument{}, err
	}
	return u.rebuild(ctx, rem)
}

func (u *RemittanceUseCase) rebuild(ctx context.Context, rem entities.Remittance) (entities.RemittanceDocument, error) {
	lines, err := u.assemble(ctx, rem, true)
	if err != nil {
		return entities.RemittanceDocument{}, err
	}
	rem.TotalCents = entities.SumLines(lines)
	rem.UpdatedAt = u.now()
	saved, err := u.remittances.ReplaceLines(ctx, rem, lines)
	if err != nil {
		return entities.RemittanceDocument{}, err
	}
	return entities.RemittanceDocument{Remittance: saved, Lines: lines}, nil
}

// Generate finalizes a draft. The steps after the document is stored are
// compensated on failure so the draft and its quotes are left as they were.
func (u *RemittanceUseCase) Generate(ctx context.Context, id string) (doc entities.RemittanceDocument, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveRemittanceGenerate(metrics.Result(err), time.Since(start))
	}()

	rem, err := u.getDraft(ctx, id, string(entities.RemittanceStateGenerated))
	if err != nil {
		return entities.RemittanceDocument{}, err
	}
	doc, err = u.rebuild(ctx, rem)
	if err != nil {
		return entities.RemittanceDocument{}, err
	}
	rem = doc.Remittance

	now := u.now()
	rem.MessageID = rem.ID
	xmlDoc, err := u.codec.Encode(entities.RemittanceDocument{Remittance: rem, Lines: doc.Lines}, now)
	if err != nil {
		u.log.Error("remittance: encode failed", zap.String("remittance_id", rem.ID), zap.Error(err))
		return entities.RemittanceDocument{}, err
	}
	// One object per attempt; a failed attempt only discards its own.
	ref, err := u.documents.Put(ctx, rem.ID+"-"+u.newSuffix()+".xml", "application/xml", xmlDoc)
	if err != nil {
		u.log.Error("remittance: store document failed", zap.String("remittance_id", rem.ID), zap.Error(err))
		return entities.RemittanceDocument{}, err
	}

	if err := u.quotes.MarkSubmitted(ctx, rem.ID, rem.QuoteIDs); err != nil {
		u.log.Info("remittance: mark quotes submitted failed", zap.String("remittance_id", rem.ID), zap.Error(err))
		u.discardDocument(ctx, rem.ID, ref)
		return entities.RemittanceDocument{}, err
	}
	closed, err := u.closeFinalMandates(ctx, doc.Lines)
	if err != nil {
		u.revertSubmitted(ctx, rem)
		u.reopenMandates(ctx, closed)
		u.discardDocument(ctx, rem.ID, ref)
		return entities.RemittanceDocument{}, err
	}

	rem.State = entities.RemittanceStateGenerated
	rem.FileRef = ref
	rem.GeneratedAt = now
	rem.UpdatedAt = now
	saved, err := u.remittances.UpdateState(ctx, rem, entities.RemittanceStateDraft)
	if err != nil {
		u.revertSubmitted(ctx, rem)
		u.reopenMandates(ctx, closed)
		u.discardDocument(ctx, rem.ID, ref)
		return entities.RemittanceDocument{}, err
	}

	u.refreshMandates(ctx, doc.Lines)
	for _, seq := range entities.SequenceOrder {
		n := 0
		for _, l := range doc.Lines {
			if l.Sequence == seq {
				n++
			}
		}
		metrics.AddRemittanceLines(string(seq), n)
	}
	u.log.Info("remittance: generated",
		zap.String("remittance_id", saved.ID),
		zap.String("file_ref", ref),
		zap.Int("lines", len(doc.Lines)),
		zap.Int64("total_cents", saved.TotalCents),
	)
	return entities.RemittanceDocument{Remittance: saved, Lines: doc.Lines}, nil
}

func (u *RemittanceUseCase) MarkSubmitted(ctx context.Context, id string) (entities.Remittance, error) {
	rem, err := u.get(ctx, id)
	if err != nil {
		return entities.Remittance{}, err
	}
	if rem.State.Next() != entities.RemittanceStateSubmitted {
		return entities.Remittance{}, entities.InvalidTransition("remittance", rem.ID, string(rem.State), string(entities.RemittanceStateSubmitted))
	}
	now := u.now()
	rem.State = entities.RemittanceStateSubmitted
	rem.SubmittedAt = now
	rem.UpdatedAt = now
	saved, err := u.remittances.UpdateState(ctx, rem, entities.RemittanceStateGenerated)
	if err != nil {
		return entities.Remittance{}, err
	}
	u.log.Info("remittance: submitted", zap.String("remittance_id", saved.ID))
	return saved, nil
}

func (u *RemittanceUseCase) Cancel(ctx context.Context, id string) error {
	rem, err := u.getDraft(ctx, id, "cancelled")
	if err != nil {
		return err
	}
	if err := u.quotes.Release(ctx, rem.ID, rem.QuoteIDs); err != nil {
		return err
	}
	if err := u.remittances.Delete(ctx, rem.ID); err != nil {
		if claimErr := u.quotes.Claim(ctx, rem.ID, rem.QuoteIDs); claimErr != nil {
			u.log.Error("remittance: reclaim after failed delete", zap.String("remittance_id", rem.ID), zap.Error(claimErr))
		}
		return err
	}
	u.log.Info("remittance: draft cancelled", zap.String("remittance_id", rem.ID))
	return nil
}

func (u *RemittanceUseCase) GetByID(ctx context.Context, id string) (entities.RemittanceDocument, error) {
	rem, err := u.get(ctx, id)
	if err != nil {
		return entities.RemittanceDocument{}, err
	}
	lines, err := u.remittances.ListLines(ctx, rem.ID)
	if err != nil {
		return entities.RemittanceDocument{}, err
	}
	return entities.RemittanceDocument{Remittance: rem, Lines: lines}, nil
}

func (u *RemittanceUseCase) List(ctx context.Context) ([]entities.Remittance, error) {
	return u.remittances.List(ctx)
}

func (u *RemittanceUseCase) Document(ctx context.Context, id string) ([]byte, error) {
	rem, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rem.FileRef == "" {
		return nil, entities.NotFound("document", rem.ID)
	}
	return u.documents.Get(ctx, rem.FileRef)
}

func (u *RemittanceUseCase) Verify(_ context.Context, data []byte) (entities.RemittanceDocument, error) {
	if len(data) == 0 {
		return entities.RemittanceDocument{}, entities.InvalidDocument("Document", "empty document")
	}
	return u.codec.Decode(data)
}

// assemble turns the remittance's candidate quotes into lines. When rebuilding,
// the quotes must still be claimed by rem and the draft's own lines are left out
// of the mandate history.
func (u *RemittanceUseCase) assemble(ctx context.Context, rem entities.Remittance, rebuilding bool) ([]entities.RemittanceLine, error) {
	period := entities.PeriodOf(rem.ExecutionDate)
	exclude := ""
	if rebuilding {
		exclude = rem.ID
	}

	usedInBatch := make(map[string]entities.SequenceType)
	lines := make([]entities.RemittanceLine, 0, len(rem.QuoteIDs))
	var total int64
	for i, quoteID := range rem.QuoteIDs {
		q, err := u.quotes.GetByID(ctx, quoteID)
		if err != nil {
			return nil, err
		}
		if q.ID == "" {
			return nil, entities.NotFound("quote", quoteID)
		}
		claimedElsewhere := q.RemittanceID != "" && q.RemittanceID != exclude
		if q.State != entities.QuoteStatePending || claimedElsewhere || (rebuilding && q.RemittanceID != rem.ID) {
			return nil, &entities.Error{Kind: entities.ErrAlreadyInRemittance, Entity: "quote", ID: q.ID, Field: "remittance_id", Detail: strings.TrimSpace(q.RemittanceID + " " + string(q.State))}
		}
		if q.Period > period {
			return nil, &entities.Error{Kind: entities.ErrInvalidInput, Entity: "quote", ID: q.ID, Field: "period", Detail: q.Period + " is after execution month " + period}
		}
		// Both operands are within [1, MaxAmountCents], so the comparison cannot overflow.
		if q.AmountCents <= 0 || q.AmountCents > entities.MaxAmountCents {
			return nil, &entities.Error{Kind: entities.ErrInvalidInput, Entity: "quote", ID: q.ID, Field: "amount_cents", Detail: "amount out of range"}
		}
		if total > entities.MaxAmountCents-q.AmountCents {
			return nil, &entities.Error{Kind: entities.ErrInvalidInput, Entity: "remittance", ID: rem.ID, Field: "amount_cents", Detail: "total exceeds 999999999.99"}
		}
		total += q.AmountCents

		member, err := u.members.GetByID(ctx, q.MemberID)
		if err != nil {
			return nil, err
		}
		if member.ID == "" {
			return nil, entities.NotFound("member", q.MemberID)
		}
		mandate, err := u.mandates.GetActiveByMemberID(ctx, member.ID)
		if err != nil {
			return nil, err
		}
		if mandate.ID == "" {
			return nil, &entities.Error{Kind: entities.ErrNoActiveMandate, Entity: "quote", ID: q.ID, Field: "member_id", Detail: member.ID}
		}

		seq, err := u.sequencer.Next(ctx, mandate, exclude)
		if err != nil {
			return nil, err
		}
		if prev, ok := usedInBatch[mandate.ID]; ok && (prev == entities.SequenceOneOff || prev == entities.SequenceFinal) {
			return nil, &entities.Error{Kind: entities.ErrMandateExhausted, Entity: "mandate", ID: mandate.ID, Field: "sequence", Detail: string(prev) + " allows a single collection per remittance"}
		}
		usedInBatch[mandate.ID] = seq

		e2e := entities.EndToEndID(rem.ID, i)
		lines = append(lines, entities.RemittanceLine{
			ID:                   uuid.NewSHA1(lineNamespace, []byte(e2e)).String(),
			RemittanceID:         rem.ID,
			MemberID:             member.ID,
			QuoteID:              q.ID,
			MandateID:            mandate.ID,
			AmountCents:          q.AmountCents,
			EndToEndID:           e2e,
			Sequence:             seq,
			MandateReference:     mandate.Reference,
			MandateSignatureDate: mandate.SignatureDate,
			DebtorName:           member.FullName(),
			DebtorIBAN:           mandate.IBAN,
			DebtorBIC:            mandate.BIC,
			Concept:              q.Concept,
		})
	}
	return lines, nil
}

func (u *RemittanceUseCase) closeFinalMandates(ctx context.Context, lines []entities.RemittanceLine) ([]entities.Mandate, error) {
	var closed []entities.Mandate
	for _, l := range lines {
		if l.Sequence != entities.SequenceFinal {
			continue
		}
		m, err := u.mandates.GetByID(ctx, l.MandateID)
		if err != nil {
			return closed, err
		}
		if m.ID == "" || !m.Active {
			continue
		}
		m.Active = false
		m.UpdatedAt = u.now()
		if _, err := u.mandates.Update(ctx, m); err != nil {
			return closed, err
		}
		closed = append(closed, m)
	}
	return closed, nil
}

func (u *RemittanceUseCase) reopenMandates(ctx context.Context, closed []entities.Mandate) {
	for _, m := range closed {
		m.Active = true
		if _, err := u.mandates.Update(ctx, m); err != nil {
			u.log.Error("remittance: reopen mandate", zap.String("mandate_id", m.ID), zap.Error(err))
		}
	}
}

func (u *RemittanceUseCase) revertSubmitted(ctx context.Context, rem entities.Remittance) {
	for _, id := range rem.QuoteIDs {
		if _, err := u.quotes.UpdateState(ctx, id, entities.QuoteStateSubmitted, entities.QuoteStatePending); err != nil {
			u.log.Error("remittance: revert quote", zap.String("remittance_id", rem.ID), zap.String("quote_id", id), zap.Error(err))
		}
	}
}

// discardDocument removes a stored file the remittance never came to reference.
func (u *RemittanceUseCase) discardDocument(ctx context.Context, id, ref string) {
	if err := u.documents.Delete(ctx, ref); err != nil {
		u.log.Error("remittance: orphaned document", zap.String("remittance_id", id), zap.String("file_ref", ref), zap.Error(err))
		return
	}
	u.log.Info("remittance: discarded document", zap.String("remittance_id", id), zap.String("file_ref", ref))
}

func (u *RemittanceUseCase) refreshMandates(ctx context.Context, lines []entities.RemittanceLine) {
	seen := make(map[string]bool)
	for _, l := range lines {
		if seen[l.MandateID] {
			continue
		}
		seen[l.MandateID] = true
		if _, err := u.sequencer.Refresh(ctx, l.MandateID); err != nil {
			u.log.Warn("remittance: refresh mandate sequence", zap.String("mandate_id", l.MandateID), zap.Error(err))
		}
	}
}

func (u *RemittanceUseCase) get(ctx context.Context, id string) (entities.Remittance, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Remittance{}, entities.InvalidInput("remittance", "id", "required")
	}
	rem, err := u.remittances.GetByID(ctx, id)
	if err != nil {
		return entities.Remittance{}, err
	}
	if rem.ID == "" {
		return entities.Remittance{}, entities.NotFound("remittance", id)
	}
	return rem, nil
}

func (u *RemittanceUseCase) getDraft(ctx context.Context, id, to string) (entities.Remittance, error) {
	rem, err := u.get(ctx, id)
	if err != nil {
		return entities.Remittance{}, err
	}
	if rem.State.Next() != entities.RemittanceStateGenerated {
		return entities.Remittance{}, entities.InvalidTransition("remittance", rem.ID, string(rem.State), to)
	}
	return rem, nil
}

func normalizeCreditor(c entities.Creditor) (entities.Creditor, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.IBAN = sepa.NormalizeIBAN(c.IBAN)
	c.BIC = strings.ToUpper(strings.TrimSpace(c.BIC))
	c.ID = sepa.NormalizeIBAN(c.ID)
	if c.Name == "" {
		return c, entities.InvalidInput("creditor", "name", "required")
	}
	if err := sepa.ValidateIBAN(c.IBAN); err != nil {
		return c, entities.InvalidInput("creditor", "iban", err.Error())
	}
	if c.BIC != "" {
		if err := sepa.ValidateBIC(c.BIC); err != nil {
			return c, entities.InvalidInput("creditor", "bic", err.Error())
		}
	}
	if err := sepa.ValidateCreditorID(c.ID); err != nil {
		return c, entities.InvalidInput("creditor", "creditor_id", err.Error())
	}
	return c, nil
}

// normalizeIDs trims, de-duplicates and sorts ids. The sorted order fixes the
// line index of every quote and therefore its end-to-end id.
func normalizeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
