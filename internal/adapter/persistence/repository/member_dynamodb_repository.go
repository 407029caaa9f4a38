package repository

import (
	"context"
	"sort"
	"strings"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMembersTableName = "members"
	uniqueMemberEmail       = "member#email"
)

type memberItem struct {
	ID         string `dynamodbav:"id"`
	FirstName  string `dynamodbav:"first_name"`
	LastName   string `dynamodbav:"last_name"`
	Email      string `dynamodbav:"email"`
	Phone      string `dynamodbav:"phone,omitempty"`
	Address    string `dynamodbav:"address,omitempty"`
	City       string `dynamodbav:"city,omitempty"`
	PostalCode string `dynamodbav:"postal_code,omitempty"`
	DNI        string `dynamodbav:"dni,omitempty"`
	Status     string `dynamodbav:"status"`
	JoinDate   string `dynamodbav:"join_date,omitempty"`
	Notes      string `dynamodbav:"notes,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// MemberDynamoRepository persists Member entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - uniques table (PK: pk) holds the member#email reservations

type MemberDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	uniques   uniques
}

var _ interfaces.IMemberRepository = (*MemberDynamoRepository)(nil)

func NewMemberDynamoRepository(ddb DynamoAPI) *MemberDynamoRepository {
	return &MemberDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MEMBERS_TABLE", defaultMembersTableName),
		uniques:   newUniques(ddb),
	}
}

func (r *MemberDynamoRepository) Create(ctx context.Context, m entities.Member) (entities.Member, error) {
	av, err := attributevalue.MarshalMap(toMemberItem(m))
	if err != nil {
		return entities.Member{}, err
	}
	email, err := r.uniques.reserve(uniqueMemberEmail, strings.ToLower(m.Email), m.ID)
	if err != nil {
		return entities.Member{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			email,
		},
	})
	if reasons := cancellationReasons(err); reasons != nil {
		if len(reasons) > 1 && reasons[1] == "ConditionalCheckFailed" {
			return entities.Member{}, entities.Conflict("member", m.ID, "email", "already registered")
		}
		return entities.Member{}, entities.Conflict("member", m.ID, "id", "already exists")
	}
	if err != nil {
		return entities.Member{}, err
	}
	return m, nil
}

func (r *MemberDynamoRepository) Update(ctx context.Context, m entities.Member) (entities.Member, error) {
	prev, ok, err := getItem[memberItem](ctx, r.ddb, r.tableName, stringKey("id", m.ID))
	if err != nil {
		return entities.Member{}, err
	}
	if !ok {
		return entities.Member{}, nil
	}
	av, err := attributevalue.MarshalMap(toMemberItem(m))
	if err != nil {
		return entities.Member{}, err
	}
	put := types.TransactWriteItem{Put: &types.Put{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       aws.String("attribute_exists(#id) AND #email = :prev_email"),
		ExpressionAttributeNames:  map[string]string{"#id": "id", "#email": "email"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":prev_email": &types.AttributeValueMemberS{Value: prev.Email}},
	}}

	items := []types.TransactWriteItem{put}
	newEmail, oldEmail := strings.ToLower(m.Email), strings.ToLower(prev.Email)
	if newEmail != oldEmail {
		reserve, err := r.uniques.reserve(uniqueMemberEmail, newEmail, m.ID)
		if err != nil {
			return entities.Member{}, err
		}
		items = append(items, reserve, r.uniques.release(uniqueMemberEmail, oldEmail, m.ID))
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if reasons := cancellationReasons(err); reasons != nil {
		if len(reasons) > 1 && reasons[1] == "ConditionalCheckFailed" {
			return entities.Member{}, entities.Conflict("member", m.ID, "email", "already registered")
		}
		return entities.Member{}, entities.Conflict("member", m.ID, "updated_at", "concurrent update")
	}
	if err != nil {
		return entities.Member{}, err
	}
	return m, nil
}

func (r *MemberDynamoRepository) GetByID(ctx context.Context, id string) (entities.Member, error) {
	it, ok, err := getItem[memberItem](ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || !ok {
		return entities.Member{}, err
	}
	return fromMemberItem(it), nil
}

func (r *MemberDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Member, error) {
	owner, err := r.uniques.owner(ctx, uniqueMemberEmail, strings.ToLower(email))
	if err != nil || owner == "" {
		return entities.Member{}, err
	}
	return r.GetByID(ctx, owner)
}

// List scans the table; member counts of an association fit comfortably.
func (r *MemberDynamoRepository) List(ctx context.Context, filter entities.MemberFilter) ([]entities.Member, error) {
	items, err := scanAll[memberItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Member, 0, len(items))
	for _, it := range items {
		if m := fromMemberItem(it); filter.Matches(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func toMemberItem(m entities.Member) memberItem {
	return memberItem{
		ID:         m.ID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Email:      m.Email,
		Phone:      m.Phone,
		Address:    m.Address,
		City:       m.City,
		PostalCode: m.PostalCode,
		DNI:        m.DNI,
		Status:     string(m.Status),
		JoinDate:   formatTime(m.JoinDate),
		Notes:      m.Notes,
		CreatedAt:  formatTime(m.CreatedAt),
		UpdatedAt:  formatTime(m.UpdatedAt),
	}
}

func fromMemberItem(it memberItem) entities.Member {
	return entities.Member{
		ID:         it.ID,
		FirstName:  it.FirstName,
		LastName:   it.LastName,
		Email:      it.Email,
		Phone:      it.Phone,
		Address:    it.Address,
		City:       it.City,
		PostalCode: it.PostalCode,
		DNI:        it.DNI,
		Status:     entities.MemberStatus(it.Status),
		JoinDate:   parseTime(it.JoinDate),
		Notes:      it.Notes,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
