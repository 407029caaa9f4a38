package usecase

import (
	"context"
	"errors"
	"testing"

	"socis_remeses/internal/domain/entities"
	mock_interfaces "socis_remeses/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_Create(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	m := f.addMember(t, "Anna")

	q, err := f.quoteUC.Create(ctx, CreateQuoteCommand{MemberID: m.ID, AmountCents: 1500, Concept: " Quota febrer ", Period: "2024-02"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if q.State != entities.QuoteStatePending || q.Concept != "Quota febrer" || q.RemittanceID != "" {
		t.Fatalf("unexpected quote %+v", q)
	}

	t.Run("unique per member period and concept", func(t *testing.T) {
		_, err := f.quoteUC.Create(ctx, CreateQuoteCommand{MemberID: m.ID, AmountCents: 900, Concept: "Quota febrer", Period: "2024-02"})
		if !errors.Is(err, entities.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("validations", func(t *testing.T) {
		for name, cmd := range map[string]CreateQuoteCommand{
			"zero amount":  {MemberID: m.ID, AmountCents: 0, Concept: "x", Period: "2024-02"},
			"bad period":   {MemberID: m.ID, AmountCents: 100, Concept: "x", Period: "2024-13"},
			"no concept":   {MemberID: m.ID, AmountCents: 100, Concept: " ", Period: "2024-02"},
			"no member id": {AmountCents: 100, Concept: "x", Period: "2024-02"},
			"over maximum": {MemberID: m.ID, AmountCents: entities.MaxAmountCents + 1, Concept: "x", Period: "2024-02"},
		} {
			if _, err := f.quoteUC.Create(ctx, cmd); !errors.Is(err, entities.ErrInvalidInput) {
				t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
			}
		}
		if _, err := f.quoteUC.Create(ctx, CreateQuoteCommand{MemberID: "ghost", AmountCents: 100, Concept: "x", Period: "2024-02"}); !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("largest amount the scheme carries", func(t *testing.T) {
		q, err := f.quoteUC.Create(ctx, CreateQuoteCommand{MemberID: m.ID, AmountCents: entities.MaxAmountCents, Concept: "Derrama", Period: "2024-02"})
		if err != nil || q.AmountCents != entities.MaxAmountCents {
			t.Fatalf("create: %+v %v", q, err)
		}
	})

	t.Run("pending listing skips claimed quotes", func(t *testing.T) {
		f.addMandate(t, m.ID, nil)
		other := f.addQuote(t, m.ID, "2024-02", 700)
		pending, err := f.quoteUC.ListPendingByPeriod(ctx, "2024-02")
		if err != nil || len(pending) != 2 {
			t.Fatalf("expected 2 pending, got %d %v", len(pending), err)
		}
		f.build(t, day(2024, 2, 5), other.ID)
		pending, _ = f.quoteUC.ListPendingByPeriod(ctx, "2024-02")
		if len(pending) != 1 || pending[0].ID != q.ID {
			t.Fatalf("expected only the unclaimed quote, got %+v", pending)
		}
		byMember, _ := f.quoteUC.ListByMemberID(ctx, m.ID)
		if len(byMember) != 2 {
			t.Fatalf("expected 2 quotes for member, got %d", len(byMember))
		}
	})
}

func TestQuoteUseCase_RecordOutcome(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	m := f.addMember(t, "Anna")
	f.addMandate(t, m.ID, nil)
	q := f.addQuote(t, m.ID, "2024-02", 1500)

	if _, err := f.quoteUC.RecordOutcome(ctx, q.ID, entities.QuoteStateCollected); !errors.Is(err, entities.ErrInvalidTransition) {
		t.Fatalf("pending quote cannot be collected, got %v", err)
	}
	if _, err := f.quoteUC.RecordOutcome(ctx, q.ID, entities.QuoteStateSubmitted); !errors.Is(err, entities.ErrInvalidInput) {
		t.Fatalf("submitted is not an outcome, got %v", err)
	}

	r := f.build(t, day(2024, 2, 5), q.ID)
	if _, err := f.uc.Generate(ctx, r.Remittance.ID); err != nil {
		t.Fatalf("generate: %v", err)
	}
	got, err := f.quoteUC.RecordOutcome(ctx, q.ID, entities.QuoteStateCollected)
	if err != nil || got.State != entities.QuoteStateCollected {
		t.Fatalf("collected: %+v %v", got, err)
	}
	// late return after collection
	got, err = f.quoteUC.RecordOutcome(ctx, q.ID, entities.QuoteStateReturned)
	if err != nil || got.State != entities.QuoteStateReturned {
		t.Fatalf("returned: %+v %v", got, err)
	}
	if _, err := f.quoteUC.RecordOutcome(ctx, q.ID, entities.QuoteStateCollected); !errors.Is(err, entities.ErrInvalidTransition) {
		t.Fatalf("returned is terminal, got %v", err)
	}
}

func TestQuoteUseCase_RecordOutcome_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(repo, nil, nil, nil, nil)

	submitted := entities.Quote{ID: "q-1", State: entities.QuoteStateSubmitted}
	repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(submitted, nil)
	repo.EXPECT().UpdateState(gomock.Any(), "q-1", entities.QuoteStateSubmitted, entities.QuoteStateReturned).Return(entities.Quote{}, nil)

	if _, err := uc.RecordOutcome(context.Background(), "q-1", entities.QuoteStateReturned); !errors.Is(err, entities.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
