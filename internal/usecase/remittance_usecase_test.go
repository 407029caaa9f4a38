package usecase

import (
	"context"
	"errors"
	"math"
	"os"
	"strings"
	"sync"
	"testing"

	"socis_remeses/internal/adapter/persistence/memory"
	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/infrastructure/storage"

	"go.uber.org/zap"
)

func TestRemittanceUseCase_Build(t *testing.T) {
	ctx := context.Background()

	t.Run("total is the exact sum of lines", func(t *testing.T) {
		f := newFixture(t)
		var ids []string
		for i, cents := range []int64{1500, 2599, 1, 10000} {
			m := f.addMember(t, string(rune('A'+i)))
			f.addMandate(t, m.ID, nil)
			ids = append(ids, f.addQuote(t, m.ID, "2024-02", cents).ID)
		}

		doc := f.build(t, day(2024, 2, 5), ids...)
		if doc.Remittance.TotalCents != 14100 {
			t.Fatalf("expected total 14100, got %d", doc.Remittance.TotalCents)
		}
		if doc.Remittance.TotalCents != entities.SumLines(doc.Lines) {
			t.Fatalf("total does not match lines")
		}
		if doc.Remittance.State != entities.RemittanceStateDraft {
			t.Fatalf("expected draft, got %s", doc.Remittance.State)
		}
		if !strings.HasPrefix(doc.Remittance.ID, "R20240205-") {
			t.Fatalf("unexpected remittance id %s", doc.Remittance.ID)
		}
		for i, l := range doc.Lines {
			if l.EndToEndID != entities.EndToEndID(doc.Remittance.ID, i) || len(l.EndToEndID) > 35 {
				t.Fatalf("unexpected end-to-end id %s at %d", l.EndToEndID, i)
			}
			if l.Sequence != entities.SequenceFirst {
				t.Fatalf("expected FRST, got %s", l.Sequence)
			}
			q := f.quote(t, l.QuoteID)
			if q.State != entities.QuoteStatePending || q.RemittanceID != doc.Remittance.ID {
				t.Fatalf("quote %s should be pending and claimed, got %s/%s", q.ID, q.State, q.RemittanceID)
			}
			if q.AmountCents != l.AmountCents {
				t.Fatalf("line amount differs from quote")
			}
		}
	})

	t.Run("validations", func(t *testing.T) {
		f := newFixture(t)
		m := f.addMember(t, "Anna")
		f.addMandate(t, m.ID, nil)
		q := f.addQuote(t, m.ID, "2024-02", 1500)

		badCreditor := testCreditor
		badCreditor.IBAN = "ES9121000418450200051333"
		cases := []struct {
			name string
			cmd  BuildRemittanceCommand
		}{
			{name: "no quotes", cmd: BuildRemittanceCommand{Creditor: testCreditor, ExecutionDate: day(2024, 2, 5), QuoteIDs: []string{" "}}},
			{name: "no execution date", cmd: BuildRemittanceCommand{Creditor: testCreditor, QuoteIDs: []string{q.ID}}},
			{name: "creditor iban", cmd: BuildRemittanceCommand{Creditor: badCreditor, ExecutionDate: day(2024, 2, 5), QuoteIDs: []string{q.ID}}},
			{name: "quote after execution month", cmd: BuildRemittanceCommand{Creditor: testCreditor, ExecutionDate: day(2024, 1, 31), QuoteIDs: []string{q.ID}}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := f.uc.Build(ctx, tc.cmd)
				if !errors.Is(err, entities.ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				if f.quote(t, q.ID).RemittanceID != "" {
					t.Fatalf("quote must stay unclaimed")
				}
			})
		}
	})

	t.Run("unknown quote", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Build(ctx, BuildRemittanceCommand{Creditor: testCreditor, ExecutionDate: day(2024, 2, 5), QuoteIDs: []string{"nope"}})
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("member without active mandate", func(t *testing.T) {
		f := newFixture(t)
		ok := f.addMember(t, "Anna")
		f.addMandate(t, ok.ID, nil)
		qOK := f.addQuote(t, ok.ID, "2024-02", 1500)
		without := f.addMember(t, "Joan")
		f.addMandate(t, without.ID, func(m *entities.Mandate) { m.Active = false })
		qBad := f.addQuote(t, without.ID, "2024-02", 1500)

		_, err := f.uc.Build(ctx, BuildRemittanceCommand{Creditor: testCreditor, ExecutionDate: day(2024, 2, 5), QuoteIDs: []string{qOK.ID, qBad.ID}})
		if !errors.Is(err, entities.ErrNoActiveMandate) {
			t.Fatalf("expected ErrNoActiveMandate, got %v", err)
		}
		var e *entities.Error
		if !errors.As(err, &e) || e.ID != qBad.ID {
			t.Fatalf("expected the offending quote id, got %v", err)
		}
		if f.quote(t, qOK.ID).RemittanceID != "" {
			t.Fatalf("failed build must not claim any quote")
		}
	})

	t.Run("already in remittance leaves the first untouched", func(t *testing.T) {
		f := newFixture(t)
		m1 := f.addMember(t, "Anna")
		f.addMandate(t, m1.ID, nil)
		q1 := f.addQuote(t, m1.ID, "2024-02", 1500)
		m2 := f.addMember(t, "Joan")
		f.addMandate(t, m2.ID, nil)
		q2 := f.addQuote(t, m2.ID, "2024-02", 2000)

		first := f.build(t, day(2024, 2, 5), q1.ID)

		_, err := f.uc.Build(ctx, BuildRemittanceCommand{Creditor: testCreditor, ExecutionDate: day(2024, 2, 6), QuoteIDs: []string{q2.ID, q1.ID}})
		if !errors.Is(err, entities.ErrAlreadyInRemittance) {
			t.Fatalf("expected ErrAlreadyInRemittance, got %v", err)
		}

		after, err := f.uc.GetByID(ctx, first.Remittance.ID)
		if err != nil {
			t.Fatalf("get first: %v", err)
		}
		if after.Remittance.TotalCents != first.Remittance.TotalCents || len(after.Lines) != 1 || after.Lines[0] != first.Lines[0] {
			t.Fatalf("first remittance changed: %+v", after)
		}
		if f.quote(t, q1.ID).RemittanceID != first.Remittance.ID {
			t.Fatalf("q1 claim changed")
		}
		if f.quote(t, q2.ID).RemittanceID != "" {
			t.Fatalf("q2 must stay unclaimed")
		}
		list, _ := f.uc.List(ctx)
		if len(list) != 1 {
			t.Fatalf("expected a single remittance, got %d", len(list))
		}
	})

	t.Run("total beyond the control sum range", func(t *testing.T) {
		cases := []struct {
			name  string
			cents []int64
		}{
			{name: "sum wraps int64", cents: []int64{math.MaxInt64, 10}},
			{name: "two maximum amounts", cents: []int64{entities.MaxAmountCents, entities.MaxAmountCents}},
			{name: "stored amount above maximum", cents: []int64{entities.MaxAmountCents + 1}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				var ids []string
				for i, cents := range tc.cents {
					m := f.addMember(t, string(rune('A'+i)))
					f.addMandate(t, m.ID, nil)
					ids = append(ids, f.addQuote(t, m.ID, "2024-02", cents).ID)
				}
				_, err := f.uc.Build(ctx, BuildRemittanceCommand{Creditor: testCreditor, ExecutionDate: day(2024, 2, 5), QuoteIDs: ids})
				var e *entities.Error
				if !errors.As(err, &e) || e.Kind != entities.ErrInvalidInput || e.Field != "amount_cents" {
					t.Fatalf("expected ErrInvalidInput on amount_cents, got %v", err)
				}
				for _, id := range ids {
					if f.quote(t, id).RemittanceID != "" {
						t.Fatalf("quote %s must stay unclaimed", id)
					}
				}
				if list, _ := f.uc.List(ctx); len(list) != 0 {
					t.Fatalf("expected no remittance, got %d", len(list))
				}
			})
		}
	})

	t.Run("largest total still builds", func(t *testing.T) {
		f := newFixture(t)
		m1 := f.addMember(t, "Anna")
		f.addMandate(t, m1.ID, nil)
		m2 := f.addMember(t, "Joan")
		f.addMandate(t, m2.ID, nil)
		doc := f.build(t, day(2024, 2, 5),
			f.addQuote(t, m1.ID, "2024-02", entities.MaxAmountCents-1).ID,
			f.addQuote(t, m2.ID, "2024-02", 1).ID,
		)
		if doc.Remittance.TotalCents != entities.MaxAmountCents {
			t.Fatalf("expected total %d, got %d", entities.MaxAmountCents, doc.Remittance.TotalCents)
		}
	})

	t.Run("two one-off lines on the same mandate", func(t *testing.T) {
		f := newFixture(t)
		m := f.addMember(t, "Anna")
		f.addMandate(t, m.ID, func(m *entities.Mandate) { m.SingleUse = true })
		q1 := f.addQuote(t, m.ID, "2024-01", 1500)
		q2 := f.addQuote(t, m.ID, "2024-02", 1500)

		_, err := f.uc.Build(ctx, BuildRemittanceCommand{Creditor: testCreditor, ExecutionDate: day(2024, 2, 5), QuoteIDs: []string{q1.ID, q2.ID}})
		if !errors.Is(err, entities.ErrMandateExhausted) {
			t.Fatalf("expected ErrMandateExhausted, got %v", err)
		}
	})
}

func TestRemittanceUseCase_ConcurrentBuild(t *testing.T) {
	ctx := context.Background()
	const builders = 8

	for round := 0; round < 5; round++ {
		f := newFixture(t)
		shared := func() entities.Quote {
			m := f.addMember(t, "Shared")
			f.addMandate(t, m.ID, nil)
			return f.addQuote(t, m.ID, "2024-02", 1500)
		}()
		own := make([]entities.Quote, builders)
		for i := range own {
			m := f.addMember(t, string(rune('A'+i)))
			f.addMandate(t, m.ID, nil)
			own[i] = f.addQuote(t, m.ID, "2024-02", int64(1000+i))
		}

		var (
			wg   sync.WaitGroup
			docs = make([]entities.RemittanceDocument, builders)
			errs = make([]error, builders)
		)
		for i := 0; i < builders; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				docs[i], errs[i] = f.uc.Build(ctx, BuildRemittanceCommand{
					Creditor:      testCreditor,
					ExecutionDate: day(2024, 2, 5),
					QuoteIDs:      []string{own[i].ID, shared.ID},
				})
			}(i)
		}
		wg.Wait()

		winner := -1
		for i, err := range errs {
			switch {
			case err == nil:
				if winner != -1 {
					t.Fatalf("round %d: builders %d and %d both succeeded", round, winner, i)
				}
				winner = i
			case !errors.Is(err, entities.ErrAlreadyInRemittance):
				t.Fatalf("round %d: builder %d expected ErrAlreadyInRemittance, got %v", round, i, err)
			}
		}
		if winner == -1 {
			t.Fatalf("round %d: no builder succeeded", round)
		}

		remID := docs[winner].Remittance.ID
		if got := f.quote(t, shared.ID).RemittanceID; got != remID {
			t.Fatalf("round %d: shared quote claimed by %q, want %q", round, got, remID)
		}
		for i, q := range own {
			got := f.quote(t, q.ID).RemittanceID
			if i == winner && got != remID {
				t.Fatalf("round %d: winner quote claimed by %q", round, got)
			}
			if i != winner && got != "" {
				t.Fatalf("round %d: losing builder %d left a claim on %s", round, i, q.ID)
			}
		}
		if list, _ := f.uc.List(ctx); len(list) != 1 {
			t.Fatalf("round %d: expected a single remittance, got %d", round, len(list))
		}
	}
}

type failingSubmitQuotes struct {
	*memory.QuoteRepository
}

func (failingSubmitQuotes) MarkSubmitted(context.Context, string, []string) error {
	return errors.New("quotes unavailable")
}

type failingStateRemittances struct {
	*memory.RemittanceRepository
}

func (failingStateRemittances) UpdateState(context.Context, entities.Remittance, entities.RemittanceState) (entities.Remittance, error) {
	return entities.Remittance{}, errors.New("remittances unavailable")
}

func TestRemittanceUseCase_GenerateFailureDiscardsDocument(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		wire func(f *fixture, dir string) *RemittanceUseCase
	}{
		{name: "quotes cannot be marked", wire: func(f *fixture, dir string) *RemittanceUseCase {
			docs, _ := storage.NewLocalStore(dir)
			return NewRemittanceUseCase(f.remittances, failingSubmitQuotes{f.quotes}, f.members, f.mandates, f.codec, docs, zap.NewNop())
		}},
		{name: "state cannot be saved", wire: func(f *fixture, dir string) *RemittanceUseCase {
			docs, _ := storage.NewLocalStore(dir)
			return NewRemittanceUseCase(failingStateRemittances{f.remittances}, f.quotes, f.members, f.mandates, f.codec, docs, zap.NewNop())
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			m := f.addMember(t, "Anna")
			f.addMandate(t, m.ID, nil)
			q := f.addQuote(t, m.ID, "2024-02", 1500)
			draft := f.build(t, day(2024, 2, 5), q.ID)

			dir := t.TempDir()
			uc := tc.wire(f, dir)
			if _, err := uc.Generate(ctx, draft.Remittance.ID); err == nil {
				t.Fatalf("expected generate to fail")
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatalf("read dir: %v", err)
			}
			if len(entries) != 0 {
				t.Fatalf("expected no stored documents, found %s", entries[0].Name())
			}
			rem, err := f.uc.GetByID(ctx, draft.Remittance.ID)
			if err != nil || rem.Remittance.State != entities.RemittanceStateDraft || rem.Remittance.FileRef != "" {
				t.Fatalf("remittance should stay a draft without a file: %+v %v", rem.Remittance, err)
			}
			if got := f.quote(t, q.ID); got.State != entities.QuoteStatePending {
				t.Fatalf("quote should be pending again, got %s", got.State)
			}
		})
	}
}

func TestRemittanceUseCase_Rebuild(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	var ids []string
	for i := 0; i < 3; i++ {
		m := f.addMember(t, string(rune('A'+i)))
		f.addMandate(t, m.ID, nil)
		ids = append(ids, f.addQuote(t, m.ID, "2024-02", int64(1000+i)).ID)
	}
	// input order and duplicates do not matter
	doc := f.build(t, day(2024, 2, 5), ids[2], ids[0], ids[1], ids[0])

	first, err := f.uc.Rebuild(ctx, doc.Remittance.ID)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	second, err := f.uc.Rebuild(ctx, doc.Remittance.ID)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if len(first.Lines) != 3 || len(second.Lines) != 3 {
		t.Fatalf("expected 3 lines")
	}
	for i := range doc.Lines {
		if doc.Lines[i].EndToEndID != first.Lines[i].EndToEndID || first.Lines[i].EndToEndID != second.Lines[i].EndToEndID {
			t.Fatalf("end-to-end ids changed across rebuilds")
		}
		if doc.Lines[i].ID != second.Lines[i].ID || doc.Lines[i].QuoteID != second.Lines[i].QuoteID {
			t.Fatalf("line identity changed across rebuilds")
		}
	}
	if second.Remittance.TotalCents != doc.Remittance.TotalCents {
		t.Fatalf("total changed across rebuilds")
	}
}

func TestRemittanceUseCase_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("finalizes and round trips", func(t *testing.T) {
		f := newFixture(t)
		var ids []string
		for i, cents := range []int64{1500, 2599} {
			m := f.addMember(t, string(rune('A'+i)))
			f.addMandate(t, m.ID, nil)
			ids = append(ids, f.addQuote(t, m.ID, "2024-02", cents).ID)
		}
		draft := f.build(t, day(2024, 2, 5), ids...)

		gen, err := f.uc.Generate(ctx, draft.Remittance.ID)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if gen.Remittance.State != entities.RemittanceStateGenerated || gen.Remittance.FileRef == "" || gen.Remittance.MessageID != gen.Remittance.ID {
			t.Fatalf("unexpected generated remittance %+v", gen.Remittance)
		}
		for _, id := range ids {
			if q := f.quote(t, id); q.State != entities.QuoteStateSubmitted {
				t.Fatalf("quote %s expected submitted, got %s", id, q.State)
			}
		}

		data, err := f.uc.Document(ctx, gen.Remittance.ID)
		if err != nil {
			t.Fatalf("document: %v", err)
		}
		parsed, err := f.uc.Verify(ctx, data)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if parsed.Remittance.TotalCents != gen.Remittance.TotalCents || len(parsed.Lines) != len(gen.Lines) {
			t.Fatalf("round trip mismatch")
		}
		for i, l := range gen.Lines {
			p := parsed.Lines[i]
			if p.EndToEndID != l.EndToEndID || p.AmountCents != l.AmountCents || p.DebtorIBAN != l.DebtorIBAN || p.Sequence != l.Sequence || p.MandateReference != l.MandateReference {
				t.Fatalf("line %d mismatch: %+v vs %+v", i, p, l)
			}
		}

		if _, err := f.uc.Rebuild(ctx, gen.Remittance.ID); !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition on rebuild, got %v", err)
		}
		if err := f.uc.Cancel(ctx, gen.Remittance.ID); !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition on cancel, got %v", err)
		}

		sub, err := f.uc.MarkSubmitted(ctx, gen.Remittance.ID)
		if err != nil || sub.State != entities.RemittanceStateSubmitted {
			t.Fatalf("mark submitted: %+v %v", sub, err)
		}
		if _, err := f.uc.MarkSubmitted(ctx, gen.Remittance.ID); !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("draft cannot be submitted", func(t *testing.T) {
		f := newFixture(t)
		m := f.addMember(t, "Anna")
		f.addMandate(t, m.ID, nil)
		draft := f.build(t, day(2024, 2, 5), f.addQuote(t, m.ID, "2024-02", 1500).ID)
		if _, err := f.uc.MarkSubmitted(ctx, draft.Remittance.ID); !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		if _, err := f.uc.Document(ctx, draft.Remittance.ID); !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for a draft document, got %v", err)
		}
	})

	t.Run("final collection deactivates the mandate", func(t *testing.T) {
		f := newFixture(t)
		m := f.addMember(t, "Anna")
		mandate := f.addMandate(t, m.ID, nil)
		q1 := f.addQuote(t, m.ID, "2024-01", 1500)
		r1 := f.build(t, day(2024, 1, 5), q1.ID)
		if _, err := f.uc.Generate(ctx, r1.Remittance.ID); err != nil {
			t.Fatalf("generate: %v", err)
		}
		if _, err := f.quoteUC.RecordOutcome(ctx, q1.ID, entities.QuoteStateCollected); err != nil {
			t.Fatalf("outcome: %v", err)
		}

		stored, _ := f.mandates.GetByID(ctx, mandate.ID)
		stored.FinalCollection = true
		if _, err := f.mandates.Update(ctx, stored); err != nil {
			t.Fatalf("update mandate: %v", err)
		}

		q2 := f.addQuote(t, m.ID, "2024-02", 1500)
		r2 := f.build(t, day(2024, 2, 5), q2.ID)
		if r2.Lines[0].Sequence != entities.SequenceFinal {
			t.Fatalf("expected FNAL, got %s", r2.Lines[0].Sequence)
		}
		if _, err := f.uc.Generate(ctx, r2.Remittance.ID); err != nil {
			t.Fatalf("generate: %v", err)
		}
		after, _ := f.mandates.GetByID(ctx, mandate.ID)
		if after.Active {
			t.Fatalf("mandate must be deactivated after its final collection")
		}

		q3 := f.addQuote(t, m.ID, "2024-03", 1500)
		if _, err := f.uc.Build(ctx, BuildRemittanceCommand{Creditor: testCreditor, ExecutionDate: day(2024, 3, 5), QuoteIDs: []string{q3.ID}}); !errors.Is(err, entities.ErrNoActiveMandate) {
			t.Fatalf("expected ErrNoActiveMandate, got %v", err)
		}
	})

	t.Run("single use mandate is exhausted after generation", func(t *testing.T) {
		f := newFixture(t)
		m := f.addMember(t, "Anna")
		f.addMandate(t, m.ID, func(m *entities.Mandate) { m.SingleUse = true; m.Sequence = entities.SequenceOneOff })
		q1 := f.addQuote(t, m.ID, "2024-02", 1500)
		r1 := f.build(t, day(2024, 2, 5), q1.ID)
		if r1.Lines[0].Sequence != entities.SequenceOneOff {
			t.Fatalf("expected OOFF, got %s", r1.Lines[0].Sequence)
		}
		if _, err := f.uc.Generate(ctx, r1.Remittance.ID); err != nil {
			t.Fatalf("generate: %v", err)
		}
		q2 := f.addQuote(t, m.ID, "2024-03", 1500)
		_, err := f.uc.Build(ctx, BuildRemittanceCommand{Creditor: testCreditor, ExecutionDate: day(2024, 3, 5), QuoteIDs: []string{q2.ID}})
		if !errors.Is(err, entities.ErrMandateExhausted) {
			t.Fatalf("expected ErrMandateExhausted, got %v", err)
		}
	})
}

func TestRemittanceUseCase_Cancel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	m := f.addMember(t, "Anna")
	f.addMandate(t, m.ID, nil)
	q := f.addQuote(t, m.ID, "2024-02", 1500)
	draft := f.build(t, day(2024, 2, 5), q.ID)

	if err := f.uc.Cancel(ctx, draft.Remittance.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := f.uc.GetByID(ctx, draft.Remittance.ID); !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after cancel, got %v", err)
	}
	if got := f.quote(t, q.ID); got.RemittanceID != "" || got.State != entities.QuoteStatePending {
		t.Fatalf("quote must be released, got %+v", got)
	}
	again := f.build(t, day(2024, 2, 6), q.ID)
	if again.Lines[0].Sequence != entities.SequenceFirst {
		t.Fatalf("cancelled draft must not count as history")
	}
}

// Member M, Mandate A signed 2024-01-10: a returned first collection does not
// establish the recurring relationship.
func TestRemittanceUseCase_ReturnedFirstCollectionScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	member := f.addMember(t, "M")
	mandateA := f.addMandate(t, member.ID, nil)

	q1 := f.addQuote(t, member.ID, "2024-02", 1500)
	r := f.build(t, day(2024, 2, 5), q1.ID)
	if r.Lines[0].Sequence != entities.SequenceFirst || r.Remittance.TotalCents != 1500 {
		t.Fatalf("expected FRST and total 1500, got %s %d", r.Lines[0].Sequence, r.Remittance.TotalCents)
	}
	if _, err := f.uc.Generate(ctx, r.Remittance.ID); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := f.quoteUC.RecordOutcome(ctx, q1.ID, entities.QuoteStateReturned); err != nil {
		t.Fatalf("returned: %v", err)
	}

	q2 := f.addQuote(t, member.ID, "2024-03", 1500)
	r2 := f.build(t, day(2024, 3, 5), q2.ID)
	if r2.Lines[0].Sequence != entities.SequenceFirst {
		t.Fatalf("expected FRST after a returned first collection, got %s", r2.Lines[0].Sequence)
	}
	stored, _ := f.mandates.GetByID(ctx, mandateA.ID)
	if stored.Sequence != entities.SequenceFirst {
		t.Fatalf("stored mandate sequence expected FRST, got %s", stored.Sequence)
	}

	// once the retry is collected the mandate moves to RCUR
	if _, err := f.uc.Generate(ctx, r2.Remittance.ID); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := f.quoteUC.RecordOutcome(ctx, q2.ID, entities.QuoteStateCollected); err != nil {
		t.Fatalf("collected: %v", err)
	}
	stored, _ = f.mandates.GetByID(ctx, mandateA.ID)
	if stored.Sequence != entities.SequenceRecurring {
		t.Fatalf("stored mandate sequence expected RCUR, got %s", stored.Sequence)
	}
	q3 := f.addQuote(t, member.ID, "2024-04", 1500)
	r3 := f.build(t, day(2024, 4, 5), q3.ID)
	if r3.Lines[0].Sequence != entities.SequenceRecurring {
		t.Fatalf("expected RCUR, got %s", r3.Lines[0].Sequence)
	}
}

func TestRemittanceUseCase_Verify(t *testing.T) {
	f := newFixture(t)
	if _, err := f.uc.Verify(context.Background(), nil); !errors.Is(err, entities.ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
	if _, err := f.uc.Verify(context.Background(), []byte("<nope/>")); !errors.Is(err, entities.ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}
