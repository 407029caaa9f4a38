package repository

import (
	"context"
	"log"
	"sort"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRemittancesTableName     = "remittances"
	defaultRemittanceLinesTableName = "remittance_lines"
	linesMandateIDIndex             = "mandate_id-index"
)

type remittanceItem struct {
	ID            string   `dynamodbav:"id"`
	ExecutionDate string   `dynamodbav:"execution_date"`
	CreditorName  string   `dynamodbav:"creditor_name"`
	CreditorIBAN  string   `dynamodbav:"creditor_iban"`
	CreditorBIC   string   `dynamodbav:"creditor_bic,omitempty"`
	CreditorID    string   `dynamodbav:"creditor_id"`
	TotalCents    int64    `dynamodbav:"total_cents"`
	State         string   `dynamodbav:"state"`
	QuoteIDs      []string `dynamodbav:"quote_ids"`
	MessageID     string   `dynamodbav:"message_id,omitempty"`
	FileRef       string   `dynamodbav:"xml_url,omitempty"`
	CreatedAt     string   `dynamodbav:"created_at"`
	GeneratedAt   string   `dynamodbav:"generated_at,omitempty"`
	SubmittedAt   string   `dynamodbav:"submitted_at,omitempty"`
	UpdatedAt     string   `dynamodbav:"updated_at"`
}

type remittanceLineItem struct {
	RemittanceID         string `dynamodbav:"remittance_id"`
	EndToEndID           string `dynamodbav:"end_to_end_id"`
	ID                   string `dynamodbav:"id"`
	MemberID             string `dynamodbav:"member_id"`
	QuoteID              string `dynamodbav:"quote_id"`
	MandateID            string `dynamodbav:"mandate_id"`
	AmountCents          int64  `dynamodbav:"amount_cents"`
	Sequence             string `dynamodbav:"sequence"`
	MandateReference     string `dynamodbav:"mandate_reference"`
	MandateSignatureDate string `dynamodbav:"mandate_sign_date"`
	DebtorName           string `dynamodbav:"debtor_name"`
	DebtorIBAN           string `dynamodbav:"debtor_iban"`
	DebtorBIC            string `dynamodbav:"debtor_bic,omitempty"`
	Concept              string `dynamodbav:"concept"`
}

// RemittanceDynamoRepository persists remittances and their lines.
//
// Table requirements:
//   - remittances: PK id (string)
//   - remittance_lines: PK remittance_id, SK end_to_end_id
//   - remittance_lines GSI: mandate_id-index (PK: mandate_id)
//
// The header is the source of truth for state. Line writes follow the header
// write and are undone with it when they fail.
type RemittanceDynamoRepository struct {
	ddb        DynamoAPI
	tableName  string
	linesTable string
}

var _ interfaces.IRemittanceRepository = (*RemittanceDynamoRepository)(nil)

func NewRemittanceDynamoRepository(ddb DynamoAPI) *RemittanceDynamoRepository {
	return &RemittanceDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("REMITTANCES_TABLE", defaultRemittancesTableName),
		linesTable: getenvDefault("REMITTANCE_LINES_TABLE", defaultRemittanceLinesTableName),
	}
}

func (r *RemittanceDynamoRepository) Create(ctx context.Context, rem entities.Remittance, lines []entities.RemittanceLine) (entities.Remittance, error) {
	av, err := attributevalue.MarshalMap(toRemittanceItem(rem))
	if err != nil {
		return entities.Remittance{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if isConditionFailed(err) {
		return entities.Remittance{}, entities.Conflict("remittance", rem.ID, "id", "already exists")
	}
	if err != nil {
		return entities.Remittance{}, err
	}

	if err := r.putLines(ctx, lines); err != nil {
		r.rollback(ctx, rem.ID, lines)
		return entities.Remittance{}, err
	}
	return rem, nil
}

func (r *RemittanceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Remittance, error) {
	it, ok, err := getItem[remittanceItem](ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || !ok {
		return entities.Remittance{}, err
	}
	return fromRemittanceItem(it), nil
}

func (r *RemittanceDynamoRepository) List(ctx context.Context) ([]entities.Remittance, error) {
	items, err := scanAll[remittanceItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Remittance, 0, len(items))
	for _, it := range items {
		out = append(out, fromRemittanceItem(it))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ExecutionDate.Equal(out[j].ExecutionDate) {
			return out[i].ExecutionDate.After(out[j].ExecutionDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *RemittanceDynamoRepository) ListLines(ctx context.Context, remittanceID string) ([]entities.RemittanceLine, error) {
	return r.queryLines(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.linesTable),
		KeyConditionExpression: aws.String("remittance_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: remittanceID},
		},
		ConsistentRead: aws.Bool(true),
	})
}

func (r *RemittanceDynamoRepository) ListLinesByMandateID(ctx context.Context, mandateID string) ([]entities.RemittanceLine, error) {
	return r.queryLines(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.linesTable),
		IndexName:              aws.String(linesMandateIDIndex),
		KeyConditionExpression: aws.String("mandate_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: mandateID},
		},
	})
}

func (r *RemittanceDynamoRepository) queryLines(ctx context.Context, in *dynamodb.QueryInput) ([]entities.RemittanceLine, error) {
	items, err := queryAll[remittanceLineItem](ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	out := make([]entities.RemittanceLine, 0, len(items))
	for _, it := range items {
		out = append(out, fromRemittanceLineItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndToEndID < out[j].EndToEndID })
	return out, nil
}

func (r *RemittanceDynamoRepository) ReplaceLines(ctx context.Context, rem entities.Remittance, lines []entities.RemittanceLine) (entities.Remittance, error) {
	if err := r.putHeader(ctx, rem, entities.RemittanceStateDraft); err != nil {
		return entities.Remittance{}, err
	}

	old, err := r.ListLines(ctx, rem.ID)
	if err != nil {
		return entities.Remittance{}, err
	}
	keep := make(map[string]bool, len(lines))
	for _, l := range lines {
		keep[l.EndToEndID] = true
	}
	var stale []entities.RemittanceLine
	for _, l := range old {
		if !keep[l.EndToEndID] {
			stale = append(stale, l)
		}
	}
	if err := r.deleteLines(ctx, stale); err != nil {
		return entities.Remittance{}, err
	}
	if err := r.putLines(ctx, lines); err != nil {
		return entities.Remittance{}, err
	}
	return rem, nil
}

func (r *RemittanceDynamoRepository) UpdateState(ctx context.Context, rem entities.Remittance, from entities.RemittanceState) (entities.Remittance, error) {
	if err := r.putHeader(ctx, rem, from); err != nil {
		return entities.Remittance{}, err
	}
	return rem, nil
}

func (r *RemittanceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      stringKey("id", id),
		ConditionExpression:      aws.String("attribute_exists(#id) AND #state = :draft"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#state": "state"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":draft": &types.AttributeValueMemberS{Value: string(entities.RemittanceStateDraft)},
		},
	})
	if isConditionFailed(err) {
		return r.stateError(ctx, id, "cancelled")
	}
	if err != nil {
		return err
	}
	lines, err := r.ListLines(ctx, id)
	if err != nil {
		return err
	}
	return r.deleteLines(ctx, lines)
}

// putHeader overwrites the header only while the stored state equals from.
func (r *RemittanceDynamoRepository) putHeader(ctx context.Context, rem entities.Remittance, from entities.RemittanceState) error {
	av, err := attributevalue.MarshalMap(toRemittanceItem(rem))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id) AND #state = :from"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#state": "state"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
		},
	})
	if isConditionFailed(err) {
		return r.stateError(ctx, rem.ID, string(rem.State))
	}
	return err
}

func (r *RemittanceDynamoRepository) stateError(ctx context.Context, id, to string) error {
	stored, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if stored.ID == "" {
		return entities.NotFound("remittance", id)
	}
	return entities.InvalidTransition("remittance", id, string(stored.State), to)
}

func (r *RemittanceDynamoRepository) putLines(ctx context.Context, lines []entities.RemittanceLine) error {
	reqs := make([]types.WriteRequest, 0, len(lines))
	for _, l := range lines {
		av, err := attributevalue.MarshalMap(toRemittanceLineItem(l))
		if err != nil {
			return err
		}
		reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	return batchWrite(ctx, r.ddb, r.linesTable, reqs)
}

func (r *RemittanceDynamoRepository) deleteLines(ctx context.Context, lines []entities.RemittanceLine) error {
	reqs := make([]types.WriteRequest, 0, len(lines))
	for _, l := range lines {
		reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: lineKey(l)}})
	}
	return batchWrite(ctx, r.ddb, r.linesTable, reqs)
}

func (r *RemittanceDynamoRepository) rollback(ctx context.Context, id string, lines []entities.RemittanceLine) {
	if err := r.deleteLines(ctx, lines); err != nil {
		log.Printf("[remittance][repository] rollback lines failed remittance_id=%s err=%v", id, err)
	}
	if _, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("id", id),
	}); err != nil {
		log.Printf("[remittance][repository] rollback header failed remittance_id=%s err=%v", id, err)
	}
}

func lineKey(l entities.RemittanceLine) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"remittance_id": &types.AttributeValueMemberS{Value: l.RemittanceID},
		"end_to_end_id": &types.AttributeValueMemberS{Value: l.EndToEndID},
	}
}

func toRemittanceItem(rem entities.Remittance) remittanceItem {
	return remittanceItem{
		ID:            rem.ID,
		ExecutionDate: formatTime(rem.ExecutionDate),
		CreditorName:  rem.Creditor.Name,
		CreditorIBAN:  rem.Creditor.IBAN,
		CreditorBIC:   rem.Creditor.BIC,
		CreditorID:    rem.Creditor.ID,
		TotalCents:    rem.TotalCents,
		State:         string(rem.State),
		QuoteIDs:      rem.QuoteIDs,
		MessageID:     rem.MessageID,
		FileRef:       rem.FileRef,
		CreatedAt:     formatTime(rem.CreatedAt),
		GeneratedAt:   formatTime(rem.GeneratedAt),
		SubmittedAt:   formatTime(rem.SubmittedAt),
		UpdatedAt:     formatTime(rem.UpdatedAt),
	}
}

func fromRemittanceItem(it remittanceItem) entities.Remittance {
	return entities.Remittance{
		ID:            it.ID,
		ExecutionDate: parseTime(it.ExecutionDate),
		Creditor: entities.Creditor{
			Name: it.CreditorName,
			IBAN: it.CreditorIBAN,
			BIC:  it.CreditorBIC,
			ID:   it.CreditorID,
		},
		TotalCents:  it.TotalCents,
		State:       entities.RemittanceState(it.State),
		QuoteIDs:    it.QuoteIDs,
		MessageID:   it.MessageID,
		FileRef:     it.FileRef,
		CreatedAt:   parseTime(it.CreatedAt),
		GeneratedAt: parseTime(it.GeneratedAt),
		SubmittedAt: parseTime(it.SubmittedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func toRemittanceLineItem(l entities.RemittanceLine) remittanceLineItem {
	return remittanceLineItem{
		RemittanceID:         l.RemittanceID,
		EndToEndID:           l.EndToEndID,
		ID:                   l.ID,
		MemberID:             l.MemberID,
		QuoteID:              l.QuoteID,
		MandateID:            l.MandateID,
		AmountCents:          l.AmountCents,
		Sequence:             string(l.Sequence),
		MandateReference:     l.MandateReference,
		MandateSignatureDate: formatTime(l.MandateSignatureDate),
		DebtorName:           l.DebtorName,
		DebtorIBAN:           l.DebtorIBAN,
		DebtorBIC:            l.DebtorBIC,
		Concept:              l.Concept,
	}
}

func fromRemittanceLineItem(it remittanceLineItem) entities.RemittanceLine {
	return entities.RemittanceLine{
		ID:                   it.ID,
		RemittanceID:         it.RemittanceID,
		MemberID:             it.MemberID,
		QuoteID:              it.QuoteID,
		MandateID:            it.MandateID,
		AmountCents:          it.AmountCents,
		EndToEndID:           it.EndToEndID,
		Sequence:             entities.SequenceType(it.Sequence),
		MandateReference:     it.MandateReference,
		MandateSignatureDate: parseTime(it.MandateSignatureDate),
		DebtorName:           it.DebtorName,
		DebtorIBAN:           it.DebtorIBAN,
		DebtorBIC:            it.DebtorBIC,
		Concept:              it.Concept,
	}
}
