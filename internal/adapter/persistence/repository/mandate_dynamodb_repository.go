package repository

import (
	"context"
	"sort"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMandatesTableName = "mandates"
	mandatesMemberIDIndex    = "member_id-index"
	uniqueMandateReference   = "mandate#reference"
	uniqueMandateActive      = "mandate#active"
)

type mandateItem struct {
	ID              string `dynamodbav:"id"`
	MemberID        string `dynamodbav:"member_id"`
	IBAN            string `dynamodbav:"iban"`
	BIC             string `dynamodbav:"bic,omitempty"`
	Reference       string `dynamodbav:"mandate_reference"`
	SignatureDate   string `dynamodbav:"sign_date"`
	Sequence        string `dynamodbav:"sequence"`
	Active          bool   `dynamodbav:"active"`
	SingleUse       bool   `dynamodbav:"single_use"`
	FinalCollection bool   `dynamodbav:"final_collection"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// MandateDynamoRepository persists Mandate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: member_id-index (PK: member_id)
//   - uniques table (PK: pk) holds the mandate#reference reservations and
//     one mandate#active#<member_id> reservation per member with an active mandate

type MandateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	uniques   uniques
}

var _ interfaces.IMandateRepository = (*MandateDynamoRepository)(nil)

func NewMandateDynamoRepository(ddb DynamoAPI) *MandateDynamoRepository {
	return &MandateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MANDATES_TABLE", defaultMandatesTableName),
		uniques:   newUniques(ddb),
	}
}

func (r *MandateDynamoRepository) Create(ctx context.Context, m entities.Mandate) (entities.Mandate, error) {
	av, err := attributevalue.MarshalMap(toMandateItem(m))
	if err != nil {
		return entities.Mandate{}, err
	}
	ref, err := r.uniques.reserve(uniqueMandateReference, m.Reference, m.ID)
	if err != nil {
		return entities.Mandate{}, err
	}
	items := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		ref,
	}
	if m.Active {
		active, err := r.uniques.reserve(uniqueMandateActive, m.MemberID, m.ID)
		if err != nil {
			return entities.Mandate{}, err
		}
		items = append(items, active)
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if reasons := cancellationReasons(err); reasons != nil {
		switch {
		case len(reasons) > 1 && reasons[1] == "ConditionalCheckFailed":
			return entities.Mandate{}, entities.Conflict("mandate", m.ID, "mandate_reference", "already used")
		case len(reasons) > 2 && reasons[2] == "ConditionalCheckFailed":
			return entities.Mandate{}, entities.Conflict("mandate", m.ID, "active", "member already has an active mandate")
		}
		return entities.Mandate{}, entities.Conflict("mandate", m.ID, "id", "already exists")
	}
	if err != nil {
		return entities.Mandate{}, err
	}
	return m, nil
}

// Update rewrites the mutable fields. The reference and owner are fixed at
// creation. Turning the active flag on or off moves the member's active
// reservation in the same transaction.
func (r *MandateDynamoRepository) Update(ctx context.Context, m entities.Mandate) (entities.Mandate, error) {
	prev, ok, err := getItem[mandateItem](ctx, r.ddb, r.tableName, stringKey("id", m.ID))
	if err != nil {
		return entities.Mandate{}, err
	}
	if !ok {
		return entities.Mandate{}, nil
	}
	m.MemberID = prev.MemberID
	m.Reference = prev.Reference
	m.CreatedAt = parseTime(prev.CreatedAt)

	items := []types.TransactWriteItem{{Update: &types.Update{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", m.ID),
		ConditionExpression: aws.String("attribute_exists(#id) AND #active = :prev_active"),
		UpdateExpression: aws.String("SET #iban = :iban, #bic = :bic, #sequence = :sequence, #active = :active, " +
			"#single_use = :single_use, #final_collection = :final_collection, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":               "id",
			"#iban":             "iban",
			"#bic":              "bic",
			"#sequence":         "sequence",
			"#active":           "active",
			"#single_use":       "single_use",
			"#final_collection": "final_collection",
			"#updated_at":       "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prev_active":      &types.AttributeValueMemberBOOL{Value: prev.Active},
			":iban":             &types.AttributeValueMemberS{Value: m.IBAN},
			":bic":              &types.AttributeValueMemberS{Value: m.BIC},
			":sequence":         &types.AttributeValueMemberS{Value: string(m.Sequence)},
			":active":           &types.AttributeValueMemberBOOL{Value: m.Active},
			":single_use":       &types.AttributeValueMemberBOOL{Value: m.SingleUse},
			":final_collection": &types.AttributeValueMemberBOOL{Value: m.FinalCollection},
			":updated_at":       &types.AttributeValueMemberS{Value: formatTime(m.UpdatedAt)},
		},
	}}}
	switch {
	case m.Active && !prev.Active:
		reserve, err := r.uniques.reserve(uniqueMandateActive, m.MemberID, m.ID)
		if err != nil {
			return entities.Mandate{}, err
		}
		items = append(items, reserve)
	case !m.Active && prev.Active:
		items = append(items, r.uniques.release(uniqueMandateActive, m.MemberID, m.ID))
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if reasons := cancellationReasons(err); reasons != nil {
		if m.Active && !prev.Active && len(reasons) > 1 && reasons[1] == "ConditionalCheckFailed" {
			return entities.Mandate{}, entities.Conflict("mandate", m.ID, "active", "member already has an active mandate")
		}
		return entities.Mandate{}, entities.Conflict("mandate", m.ID, "updated_at", "concurrent update")
	}
	if err != nil {
		return entities.Mandate{}, err
	}
	return m, nil
}

func (r *MandateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Mandate, error) {
	it, ok, err := getItem[mandateItem](ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || !ok {
		return entities.Mandate{}, err
	}
	return fromMandateItem(it), nil
}

func (r *MandateDynamoRepository) GetByReference(ctx context.Context, reference string) (entities.Mandate, error) {
	owner, err := r.uniques.owner(ctx, uniqueMandateReference, reference)
	if err != nil || owner == "" {
		return entities.Mandate{}, err
	}
	return r.GetByID(ctx, owner)
}

func (r *MandateDynamoRepository) ListByMemberID(ctx context.Context, memberID string) ([]entities.Mandate, error) {
	items, err := queryAll[mandateItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(mandatesMemberIDIndex),
		KeyConditionExpression: aws.String("member_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: memberID},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Mandate, 0, len(items))
	for _, it := range items {
		out = append(out, fromMandateItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SignatureDate.Before(out[j].SignatureDate) })
	return out, nil
}

func (r *MandateDynamoRepository) GetActiveByMemberID(ctx context.Context, memberID string) (entities.Mandate, error) {
	mandates, err := r.ListByMemberID(ctx, memberID)
	if err != nil {
		return entities.Mandate{}, err
	}
	for _, m := range mandates {
		if m.Active {
			// GSI reads are eventually consistent; confirm on the base table.
			return r.GetByID(ctx, m.ID)
		}
	}
	return entities.Mandate{}, nil
}

func toMandateItem(m entities.Mandate) mandateItem {
	return mandateItem{
		ID:              m.ID,
		MemberID:        m.MemberID,
		IBAN:            m.IBAN,
		BIC:             m.BIC,
		Reference:       m.Reference,
		SignatureDate:   formatTime(m.SignatureDate),
		Sequence:        string(m.Sequence),
		Active:          m.Active,
		SingleUse:       m.SingleUse,
		FinalCollection: m.FinalCollection,
		CreatedAt:       formatTime(m.CreatedAt),
		UpdatedAt:       formatTime(m.UpdatedAt),
	}
}

func fromMandateItem(it mandateItem) entities.Mandate {
	return entities.Mandate{
		ID:              it.ID,
		MemberID:        it.MemberID,
		IBAN:            it.IBAN,
		BIC:             it.BIC,
		Reference:       it.Reference,
		SignatureDate:   parseTime(it.SignatureDate),
		Sequence:        entities.SequenceType(it.Sequence),
		Active:          it.Active,
		SingleUse:       it.SingleUse,
		FinalCollection: it.FinalCollection,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
