package repository

import (
	"context"
	"log"
	"sort"
	"time"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesPeriodIndex      = "period-index"
	quotesMemberIDIndex    = "member_id-index"
	uniqueQuoteKey         = "quote#key"
)

type quoteItem struct {
	ID           string `dynamodbav:"id"`
	MemberID     string `dynamodbav:"member_id"`
	AmountCents  int64  `dynamodbav:"amount_cents"`
	Concept      string `dynamodbav:"concept"`
	Period       string `dynamodbav:"period"`
	State        string `dynamodbav:"state"`
	RemittanceID string `dynamodbav:"remittance_id,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: period-index (PK: period)
//   - GSI: member_id-index (PK: member_id)
//
// Claim and MarkSubmitted run as transactions of up to 100 quotes. Larger sets
// span several transactions; a failing one undoes the ones already committed.
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	uniques   uniques
	now       func() time.Time
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		uniques:   newUniques(ddb),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}
	key, err := r.uniques.reserve(uniqueQuoteKey, q.UniqueKey(), q.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			key,
		},
	})
	if reasons := cancellationReasons(err); reasons != nil {
		if len(reasons) > 1 && reasons[1] == "ConditionalCheckFailed" {
			return entities.Quote{}, entities.Conflict("quote", q.ID, "period", "member already has this concept for the period")
		}
		return entities.Quote{}, entities.Conflict("quote", q.ID, "id", "already exists")
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	it, ok, err := getItem[quoteItem](ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || !ok {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListPendingByPeriod(ctx context.Context, period string) ([]entities.Quote, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesPeriodIndex),
		KeyConditionExpression: aws.String("#period = :period"),
		FilterExpression:       aws.String("#state = :pending AND attribute_not_exists(#rid)"),
		ExpressionAttributeNames: map[string]string{
			"#period": "period",
			"#state":  "state",
			"#rid":    "remittance_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":period":  &types.AttributeValueMemberS{Value: period},
			":pending": &types.AttributeValueMemberS{Value: string(entities.QuoteStatePending)},
		},
	})
}

func (r *QuoteDynamoRepository) ListByMemberID(ctx context.Context, memberID string) ([]entities.Quote, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesMemberIDIndex),
		KeyConditionExpression: aws.String("member_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: memberID},
		},
	})
}

func (r *QuoteDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.Quote, error) {
	items, err := queryAll[quoteItem](ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuoteItem(it))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Period != out[j].Period {
			return out[i].Period < out[j].Period
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// UpdateState is a compare-and-set on state. A missing quote or a state other
// than from yields the zero Quote.
func (r *QuoteDynamoRepository) UpdateState(ctx context.Context, id string, from, to entities.QuoteState) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      stringKey("id", id),
		ConditionExpression:      aws.String("attribute_exists(#id) AND #state = :from"),
		UpdateExpression:         aws.String("SET #state = :to, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#state": "state", "#updated_at": "updated_at"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":now":  &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Claim(ctx context.Context, remittanceID string, quoteIDs []string) error {
	var done []string
	for _, chunk := range chunks(quoteIDs, maxTransactItems) {
		items := make([]types.TransactWriteItem, 0, len(chunk))
		for _, id := range chunk {
			items = append(items, r.claimItem(remittanceID, id))
		}
		if err := r.transact(ctx, items, chunk, remittanceID); err != nil {
			if len(done) > 0 {
				if rerr := r.Release(ctx, remittanceID, done); rerr != nil {
					log.Printf("[quote][repository] claim compensation failed remittance_id=%s err=%v", remittanceID, rerr)
				}
			}
			return err
		}
		done = append(done, chunk...)
	}
	return nil
}

// Release clears the claim on every quote still pending for remittanceID; the
// others are left untouched.
func (r *QuoteDynamoRepository) Release(ctx context.Context, remittanceID string, quoteIDs []string) error {
	for _, id := range quoteIDs {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                aws.String(r.tableName),
			Key:                      stringKey("id", id),
			ConditionExpression:      aws.String("#rid = :rid AND #state = :pending"),
			UpdateExpression:         aws.String("REMOVE #rid SET #updated_at = :now"),
			ExpressionAttributeNames: map[string]string{"#rid": "remittance_id", "#state": "state", "#updated_at": "updated_at"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":rid":     &types.AttributeValueMemberS{Value: remittanceID},
				":pending": &types.AttributeValueMemberS{Value: string(entities.QuoteStatePending)},
				":now":     &types.AttributeValueMemberS{Value: formatTime(r.now())},
			},
		})
		if err != nil && !isConditionFailed(err) {
			return err
		}
	}
	return nil
}

func (r *QuoteDynamoRepository) MarkSubmitted(ctx context.Context, remittanceID string, quoteIDs []string) error {
	var done []string
	for _, chunk := range chunks(quoteIDs, maxTransactItems) {
		items := make([]types.TransactWriteItem, 0, len(chunk))
		for _, id := range chunk {
			items = append(items, r.moveItem(remittanceID, id, entities.QuoteStatePending, entities.QuoteStateSubmitted))
		}
		if err := r.transact(ctx, items, chunk, remittanceID); err != nil {
			if err := r.revertSubmitted(ctx, remittanceID, done); err != nil {
				log.Printf("[quote][repository] submit compensation failed remittance_id=%s err=%v", remittanceID, err)
			}
			return err
		}
		done = append(done, chunk...)
	}
	return nil
}

func (r *QuoteDynamoRepository) revertSubmitted(ctx context.Context, remittanceID string, quoteIDs []string) error {
	for _, chunk := range chunks(quoteIDs, maxTransactItems) {
		items := make([]types.TransactWriteItem, 0, len(chunk))
		for _, id := range chunk {
			items = append(items, r.moveItem(remittanceID, id, entities.QuoteStateSubmitted, entities.QuoteStatePending))
		}
		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
			return err
		}
	}
	return nil
}

func (r *QuoteDynamoRepository) claimItem(remittanceID, id string) types.TransactWriteItem {
	return types.TransactWriteItem{Update: &types.Update{
		TableName:                aws.String(r.tableName),
		Key:                      stringKey("id", id),
		ConditionExpression:      aws.String("attribute_exists(#id) AND #state = :pending AND attribute_not_exists(#rid)"),
		UpdateExpression:         aws.String("SET #rid = :rid, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#state": "state", "#rid": "remittance_id", "#updated_at": "updated_at"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.QuoteStatePending)},
			":rid":     &types.AttributeValueMemberS{Value: remittanceID},
			":now":     &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
	}}
}

func (r *QuoteDynamoRepository) moveItem(remittanceID, id string, from, to entities.QuoteState) types.TransactWriteItem {
	return types.TransactWriteItem{Update: &types.Update{
		TableName:                aws.String(r.tableName),
		Key:                      stringKey("id", id),
		ConditionExpression:      aws.String("#rid = :rid AND #state = :from"),
		UpdateExpression:         aws.String("SET #state = :to, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{"#state": "state", "#rid": "remittance_id", "#updated_at": "updated_at"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid":  &types.AttributeValueMemberS{Value: remittanceID},
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":now":  &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
	}}
}

// transact runs one chunk and turns a cancelled transaction into the error of
// the first quote whose condition failed.
func (r *QuoteDynamoRepository) transact(ctx context.Context, items []types.TransactWriteItem, ids []string, remittanceID string) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	reasons := cancellationReasons(err)
	if reasons == nil {
		return err
	}
	for i, code := range reasons {
		if code != "ConditionalCheckFailed" || i >= len(ids) {
			continue
		}
		q, gerr := r.GetByID(ctx, ids[i])
		if gerr != nil {
			return gerr
		}
		if q.ID == "" {
			return entities.NotFound("quote", ids[i])
		}
		detail := q.RemittanceID
		if q.RemittanceID == remittanceID {
			detail = string(q.State)
		}
		return &entities.Error{Kind: entities.ErrAlreadyInRemittance, Entity: "quote", ID: ids[i], Field: "remittance_id", Detail: detail}
	}
	return err
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:           q.ID,
		MemberID:     q.MemberID,
		AmountCents:  q.AmountCents,
		Concept:      q.Concept,
		Period:       q.Period,
		State:        string(q.State),
		RemittanceID: q.RemittanceID,
		CreatedAt:    formatTime(q.CreatedAt),
		UpdatedAt:    formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:           it.ID,
		MemberID:     it.MemberID,
		AmountCents:  it.AmountCents,
		Concept:      it.Concept,
		Period:       it.Period,
		State:        entities.QuoteState(it.State),
		RemittanceID: it.RemittanceID,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
