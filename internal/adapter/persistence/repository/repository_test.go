package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"socis_remeses/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records writes and serves GetItem from a fixed set of items.
// Unset hooks fall through to the embedded nil interface and panic.
type fakeDynamo struct {
	DynamoAPI

	items     map[string]map[string]types.AttributeValue
	transacts [][]types.TransactWriteItem
	updates   []*dynamodb.UpdateItemInput
	puts      []*dynamodb.PutItemInput
	batches   []*dynamodb.BatchWriteItemInput

	transactErr func(call int) error
	putErr      error
	unprocessed int
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	for _, v := range in.Key {
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			return &dynamodb.GetItemOutput{Item: f.items[s.Value]}, nil
		}
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transacts = append(f.transacts, in.TransactItems)
	if f.transactErr != nil {
		if err := f.transactErr(len(f.transacts) - 1); err != nil {
			return nil, err
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.batches = append(f.batches, in)
	out := &dynamodb.BatchWriteItemOutput{}
	if f.unprocessed > 0 {
		f.unprocessed--
		for table, reqs := range in.RequestItems {
			out.UnprocessedItems = map[string][]types.WriteRequest{table: reqs[:1]}
		}
	}
	return out, nil
}

func cancelled(codes ...string) error {
	reasons := make([]types.CancellationReason, len(codes))
	for i, c := range codes {
		reasons[i] = types.CancellationReason{Code: aws.String(c)}
	}
	return &types.TransactionCanceledException{Message: aws.String("cancelled"), CancellationReasons: reasons}
}

func quoteIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("q-%03d", i)
	}
	return ids
}

func TestQuoteDynamoRepository_Claim(t *testing.T) {
	t.Run("splits into transactions of 100", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewQuoteDynamoRepository(ddb)

		if err := repo.Claim(context.Background(), "R1", quoteIDs(150)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ddb.transacts) != 2 || len(ddb.transacts[0]) != 100 || len(ddb.transacts[1]) != 50 {
			t.Fatalf("unexpected transaction sizes: %d", len(ddb.transacts))
		}
		if cond := aws.ToString(ddb.transacts[0][0].Update.ConditionExpression); cond == "" {
			t.Fatalf("expected a conditional update")
		}
	})

	t.Run("failing chunk releases the committed ones", func(t *testing.T) {
		taken, _ := attributevalue.MarshalMap(quoteItem{ID: "q-120", State: "pending", RemittanceID: "R0"})
		ddb := &fakeDynamo{
			items: map[string]map[string]types.AttributeValue{"q-120": taken},
			transactErr: func(call int) error {
				if call == 1 {
					codes := make([]string, 50)
					for i := range codes {
						codes[i] = "None"
					}
					codes[20] = "ConditionalCheckFailed"
					return cancelled(codes...)
				}
				return nil
			},
		}
		repo := NewQuoteDynamoRepository(ddb)

		err := repo.Claim(context.Background(), "R1", quoteIDs(150))
		if !errors.Is(err, entities.ErrAlreadyInRemittance) {
			t.Fatalf("expected ErrAlreadyInRemittance, got %v", err)
		}
		var de *entities.Error
		if !errors.As(err, &de) || de.ID != "q-120" || de.Detail != "R0" {
			t.Fatalf("unexpected error detail: %#v", de)
		}
		if len(ddb.updates) != 100 {
			t.Fatalf("expected 100 releases, got %d", len(ddb.updates))
		}
	})

	t.Run("missing quote is not found", func(t *testing.T) {
		ddb := &fakeDynamo{transactErr: func(int) error { return cancelled("ConditionalCheckFailed") }}
		repo := NewQuoteDynamoRepository(ddb)

		err := repo.Claim(context.Background(), "R1", []string{"ghost"})
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if len(ddb.updates) != 0 {
			t.Fatalf("nothing to release, got %d updates", len(ddb.updates))
		}
	})
}

func TestQuoteDynamoRepository_MarkSubmittedRevertsOnFailure(t *testing.T) {
	pending, _ := attributevalue.MarshalMap(quoteItem{ID: "q-130", State: "pending", RemittanceID: "R9"})
	ddb := &fakeDynamo{
		items: map[string]map[string]types.AttributeValue{"q-130": pending},
		transactErr: func(call int) error {
			if call == 1 {
				codes := make([]string, 50)
				for i := range codes {
					codes[i] = "None"
				}
				codes[30] = "ConditionalCheckFailed"
				return cancelled(codes...)
			}
			return nil
		},
	}
	repo := NewQuoteDynamoRepository(ddb)

	err := repo.MarkSubmitted(context.Background(), "R1", quoteIDs(150))
	if !errors.Is(err, entities.ErrAlreadyInRemittance) {
		t.Fatalf("expected ErrAlreadyInRemittance, got %v", err)
	}
	// submit 100, fail 50, revert 100
	if len(ddb.transacts) != 3 || len(ddb.transacts[2]) != 100 {
		t.Fatalf("expected a reverting transaction, got %d calls", len(ddb.transacts))
	}
	vals := ddb.transacts[2][0].Update.ExpressionAttributeValues
	if to := vals[":to"].(*types.AttributeValueMemberS).Value; to != string(entities.QuoteStatePending) {
		t.Fatalf("expected revert to pending, got %s", to)
	}
}

func TestMemberDynamoRepository_CreateConflicts(t *testing.T) {
	m := entities.Member{ID: "m-1", FirstName: "Anna", LastName: "Puig", Email: "Anna@Example.org", Status: entities.MemberStatusActive}

	t.Run("email taken", func(t *testing.T) {
		ddb := &fakeDynamo{transactErr: func(int) error { return cancelled("None", "ConditionalCheckFailed") }}
		_, err := NewMemberDynamoRepository(ddb).Create(context.Background(), m)

		var de *entities.Error
		if !errors.As(err, &de) || !errors.Is(err, entities.ErrConflict) || de.Field != "email" {
			t.Fatalf("expected email conflict, got %v", err)
		}
	})

	t.Run("reserves the lower-cased email", func(t *testing.T) {
		ddb := &fakeDynamo{}
		if _, err := NewMemberDynamoRepository(ddb).Create(context.Background(), m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var u uniqueItem
		if err := attributevalue.UnmarshalMap(ddb.transacts[0][1].Put.Item, &u); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if u.PK != "member#email#anna@example.org" || u.Owner != "m-1" {
			t.Fatalf("unexpected reservation: %+v", u)
		}
	})
}

func TestRemittanceDynamoRepository_UpdateState(t *testing.T) {
	rem := entities.Remittance{ID: "R1", State: entities.RemittanceStateSubmitted}

	t.Run("stale state is an invalid transition", func(t *testing.T) {
		stored, _ := attributevalue.MarshalMap(remittanceItem{ID: "R1", State: "draft"})
		ddb := &fakeDynamo{
			items:  map[string]map[string]types.AttributeValue{"R1": stored},
			putErr: &types.ConditionalCheckFailedException{Message: aws.String("failed")},
		}
		_, err := NewRemittanceDynamoRepository(ddb).UpdateState(context.Background(), rem, entities.RemittanceStateGenerated)
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("missing remittance is not found", func(t *testing.T) {
		ddb := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{Message: aws.String("failed")}}
		_, err := NewRemittanceDynamoRepository(ddb).UpdateState(context.Background(), rem, entities.RemittanceStateGenerated)
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRemittanceDynamoRepository_CreateWritesLinesInBatches(t *testing.T) {
	rem := entities.Remittance{ID: "R1", State: entities.RemittanceStateDraft, ExecutionDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)}
	lines := make([]entities.RemittanceLine, 30)
	for i := range lines {
		lines[i] = entities.RemittanceLine{RemittanceID: "R1", EndToEndID: entities.EndToEndID("R1", i), AmountCents: 100}
	}
	ddb := &fakeDynamo{unprocessed: 1}

	if _, err := NewRemittanceDynamoRepository(ddb).Create(context.Background(), rem, lines); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 25 + retry of 1 unprocessed + 5
	if len(ddb.batches) != 3 {
		t.Fatalf("expected 3 batch calls, got %d", len(ddb.batches))
	}
	if len(ddb.puts) != 1 || aws.ToString(ddb.puts[0].ConditionExpression) != "attribute_not_exists(#id)" {
		t.Fatalf("expected one conditional header put")
	}
}

func TestItemConversionKeepsTimes(t *testing.T) {
	signed := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	m := entities.Mandate{ID: "md-1", MemberID: "m-1", Reference: "MND-1", SignatureDate: signed, Sequence: entities.SequenceRecurring, Active: true}

	got := fromMandateItem(toMandateItem(m))
	if !got.SignatureDate.Equal(signed) || got.Sequence != entities.SequenceRecurring || !got.Active {
		t.Fatalf("unexpected mandate: %+v", got)
	}
	if !fromMandateItem(mandateItem{}).SignatureDate.IsZero() {
		t.Fatalf("empty date must stay zero")
	}
}

func TestMandateDynamoRepository_ActiveReservation(t *testing.T) {
	ctx := context.Background()
	m := entities.Mandate{ID: "md-1", MemberID: "m-1", Reference: "MND-1", Sequence: entities.SequenceFirst, Active: true}

	reservation := func(t *testing.T, item types.TransactWriteItem) uniqueItem {
		t.Helper()
		if item.Put == nil {
			t.Fatalf("expected a reservation put, got %+v", item)
		}
		var u uniqueItem
		if err := attributevalue.UnmarshalMap(item.Put.Item, &u); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		return u
	}
	stored := func(t *testing.T, m entities.Mandate) map[string]map[string]types.AttributeValue {
		t.Helper()
		av, err := attributevalue.MarshalMap(toMandateItem(m))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return map[string]map[string]types.AttributeValue{m.ID: av}
	}

	t.Run("create reserves the member slot", func(t *testing.T) {
		ddb := &fakeDynamo{}
		if _, err := NewMandateDynamoRepository(ddb).Create(ctx, m); err != nil {
			t.Fatalf("create: %v", err)
		}
		items := ddb.transacts[0]
		if len(items) != 3 {
			t.Fatalf("expected 3 transaction items, got %d", len(items))
		}
		if u := reservation(t, items[2]); u.PK != "mandate#active#m-1" || u.Owner != "md-1" {
			t.Fatalf("unexpected reservation: %+v", u)
		}
	})

	t.Run("inactive create reserves nothing", func(t *testing.T) {
		ddb := &fakeDynamo{}
		idle := m
		idle.Active = false
		if _, err := NewMandateDynamoRepository(ddb).Create(ctx, idle); err != nil {
			t.Fatalf("create: %v", err)
		}
		if len(ddb.transacts[0]) != 2 {
			t.Fatalf("expected 2 transaction items, got %d", len(ddb.transacts[0]))
		}
	})

	t.Run("create while another is active", func(t *testing.T) {
		ddb := &fakeDynamo{transactErr: func(int) error { return cancelled("None", "None", "ConditionalCheckFailed") }}
		_, err := NewMandateDynamoRepository(ddb).Create(ctx, m)
		var de *entities.Error
		if !errors.As(err, &de) || de.Kind != entities.ErrConflict || de.Field != "active" {
			t.Fatalf("expected active conflict, got %v", err)
		}
	})

	t.Run("activation reserves and conflicts", func(t *testing.T) {
		prev := m
		prev.Active = false
		ddb := &fakeDynamo{items: stored(t, prev), transactErr: func(int) error { return cancelled("None", "ConditionalCheckFailed") }}
		_, err := NewMandateDynamoRepository(ddb).Update(ctx, m)
		var de *entities.Error
		if !errors.As(err, &de) || de.Kind != entities.ErrConflict || de.Field != "active" {
			t.Fatalf("expected active conflict, got %v", err)
		}
		items := ddb.transacts[0]
		if len(items) != 2 || items[0].Update == nil {
			t.Fatalf("unexpected transaction %+v", items)
		}
		if u := reservation(t, items[1]); u.PK != "mandate#active#m-1" || u.Owner != "md-1" {
			t.Fatalf("unexpected reservation: %+v", u)
		}
	})

	t.Run("deactivation releases", func(t *testing.T) {
		ddb := &fakeDynamo{items: stored(t, m)}
		idle := m
		idle.Active = false
		got, err := NewMandateDynamoRepository(ddb).Update(ctx, idle)
		if err != nil || got.Active || got.Reference != "MND-1" {
			t.Fatalf("update: %+v %v", got, err)
		}
		items := ddb.transacts[0]
		if len(items) != 2 || items[1].Delete == nil {
			t.Fatalf("expected a release, got %+v", items)
		}
		pk, _ := items[1].Delete.Key["pk"].(*types.AttributeValueMemberS)
		if pk == nil || pk.Value != "mandate#active#m-1" {
			t.Fatalf("unexpected release key %+v", items[1].Delete.Key)
		}
	})

	t.Run("unchanged flag touches only the mandate", func(t *testing.T) {
		ddb := &fakeDynamo{items: stored(t, m)}
		moved := m
		moved.IBAN = "DE89370400440532013000"
		moved.MemberID = "m-2"
		got, err := NewMandateDynamoRepository(ddb).Update(ctx, moved)
		if err != nil || got.MemberID != "m-1" || got.IBAN != moved.IBAN {
			t.Fatalf("update: %+v %v", got, err)
		}
		if len(ddb.transacts[0]) != 1 {
			t.Fatalf("expected a single item, got %d", len(ddb.transacts[0]))
		}
	})

	t.Run("missing mandate", func(t *testing.T) {
		ddb := &fakeDynamo{}
		got, err := NewMandateDynamoRepository(ddb).Update(ctx, m)
		if err != nil || got.ID != "" || len(ddb.transacts) != 0 {
			t.Fatalf("expected zero value, got %+v %v", got, err)
		}
	})
}
