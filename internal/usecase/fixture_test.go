package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"socis_remeses/internal/adapter/persistence/memory"
	"socis_remeses/internal/adapter/sepaxml"
	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/infrastructure/storage"

	"go.uber.org/zap"
)

var testCreditor = entities.Creditor{
	Name: "Associacio Cultural",
	IBAN: "ES9121000418450200051332",
	BIC:  "CAIXESBBXXX",
	ID:   "ES26000G12345678",
}

var debtorIBANs = []string{"DE89370400440532013000", "GB82WEST12345698765432", "ES9121000418450200051332"}

type fixture struct {
	members     *memory.MemberRepository
	mandates    *memory.MandateRepository
	quotes      *memory.QuoteRepository
	remittances *memory.RemittanceRepository
	codec       *sepaxml.Codec
	uc          *RemittanceUseCase
	quoteUC     *QuoteUseCase
	seq         int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	docs, err := storage.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("local store: %v", err)
	}
	f := &fixture{
		members:     memory.NewMemberRepository(),
		mandates:    memory.NewMandateRepository(),
		quotes:      memory.NewQuoteRepository(),
		remittances: memory.NewRemittanceRepository(),
		codec:       sepaxml.NewCodec(),
	}
	f.uc = NewRemittanceUseCase(f.remittances, f.quotes, f.members, f.mandates, f.codec, docs, zap.NewNop())
	f.quoteUC = NewQuoteUseCase(f.quotes, f.members, f.mandates, f.remittances, zap.NewNop())
	return f
}

func (f *fixture) next() int {
	f.seq++
	return f.seq
}

func (f *fixture) addMember(t *testing.T, name string) entities.Member {
	t.Helper()
	n := f.next()
	m, err := f.members.Create(context.Background(), entities.Member{
		ID:        fmt.Sprintf("member-%d", n),
		FirstName: name,
		LastName:  "Soci",
		Email:     fmt.Sprintf("soci%d@example.org", n),
		Status:    entities.MemberStatusActive,
	})
	if err != nil {
		t.Fatalf("create member: %v", err)
	}
	return m
}

func (f *fixture) addMandate(t *testing.T, memberID string, edit func(*entities.Mandate)) entities.Mandate {
	t.Helper()
	n := f.next()
	m := entities.Mandate{
		ID:            fmt.Sprintf("mandate-%d", n),
		MemberID:      memberID,
		IBAN:          debtorIBANs[n%len(debtorIBANs)],
		Reference:     fmt.Sprintf("MND-%04d", n),
		SignatureDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Sequence:      entities.SequenceFirst,
		Active:        true,
	}
	if edit != nil {
		edit(&m)
	}
	created, err := f.mandates.Create(context.Background(), m)
	if err != nil {
		t.Fatalf("create mandate: %v", err)
	}
	return created
}

func (f *fixture) addQuote(t *testing.T, memberID, period string, cents int64) entities.Quote {
	t.Helper()
	q, err := f.quotes.Create(context.Background(), entities.Quote{
		ID:          fmt.Sprintf("quote-%03d", f.next()),
		MemberID:    memberID,
		AmountCents: cents,
		Concept:     "Quota " + period,
		Period:      period,
		State:       entities.QuoteStatePending,
	})
	if err != nil {
		t.Fatalf("create quote: %v", err)
	}
	return q
}

func (f *fixture) build(t *testing.T, exec time.Time, quoteIDs ...string) entities.RemittanceDocument {
	t.Helper()
	doc, err := f.uc.Build(context.Background(), BuildRemittanceCommand{Creditor: testCreditor, ExecutionDate: exec, QuoteIDs: quoteIDs})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return doc
}

func (f *fixture) quote(t *testing.T, id string) entities.Quote {
	t.Helper()
	q, err := f.quotes.GetByID(context.Background(), id)
	if err != nil || q.ID == "" {
		t.Fatalf("get quote %s: %v", id, err)
	}
	return q
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
