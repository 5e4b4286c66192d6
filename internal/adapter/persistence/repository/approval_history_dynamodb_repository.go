package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"tripbudget/internal/domain/entities"
	"tripbudget/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultApprovalHistoryTableName = "approval_history"
	approvalHistoryBudgetIDIndex    = "budget_id-index"
)

type approvalHistoryItem struct {
	TransitionID string `dynamodbav:"id"`
	BudgetID     string `dynamodbav:"budget_id"`
	FromState    string `dynamodbav:"from_state"`
	ToState      string `dynamodbav:"to_state"`
	Role         string `dynamodbav:"role"`
	UserID       string `dynamodbav:"user_id"`
	Comment      string `dynamodbav:"comment,omitempty"`
	IssuesRaw    string `dynamodbav:"issues_raw,omitempty"`
	Timestamp    string `dynamodbav:"timestamp"`
}

// ApprovalHistoryDynamoRepository stores the append-only approval audit
// trail.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)

type ApprovalHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApprovalHistoryRepository = (*ApprovalHistoryDynamoRepository)(nil)

func NewApprovalHistoryDynamoRepository(ddb *dynamodb.Client) *ApprovalHistoryDynamoRepository {
	return &ApprovalHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPROVAL_HISTORY_TABLE", defaultApprovalHistoryTableName),
	}
}

func (r *ApprovalHistoryDynamoRepository) Append(ctx context.Context, h entities.ApprovalHistory) error {
	it, err := toApprovalHistoryItem(h)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *ApprovalHistoryDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.ApprovalHistory, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(approvalHistoryBudgetIDIndex),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: budgetID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.ApprovalHistory, 0, len(out.Items))
	for _, raw := range out.Items {
		var it approvalHistoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		h, err := fromApprovalHistoryItem(it)
		if err != nil {
			return nil, err
		}
		records = append(records, h)
	}

	sort.SliceStable(records, func(a, b int) bool {
		return records[a].Timestamp.Before(records[b].Timestamp)
	})
	return records, nil
}

func toApprovalHistoryItem(h entities.ApprovalHistory) (approvalHistoryItem, error) {
	it := approvalHistoryItem{
		TransitionID: h.TransitionID,
		BudgetID:     h.BudgetID,
		FromState:    string(h.FromState),
		ToState:      string(h.ToState),
		Role:         string(h.Role),
		UserID:       h.UserID,
		Comment:      h.Comment,
		Timestamp:    h.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	if len(h.Issues) > 0 {
		raw, err := json.Marshal(h.Issues)
		if err != nil {
			return approvalHistoryItem{}, err
		}
		it.IssuesRaw = string(raw)
	}
	return it, nil
}

func fromApprovalHistoryItem(it approvalHistoryItem) (entities.ApprovalHistory, error) {
	var issues []entities.ValidationIssue
	if it.IssuesRaw != "" {
		if err := json.Unmarshal([]byte(it.IssuesRaw), &issues); err != nil {
			return entities.ApprovalHistory{}, err
		}
	}
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.ApprovalHistory{
		TransitionID: it.TransitionID,
		BudgetID:     it.BudgetID,
		FromState:    entities.ApprovalState(it.FromState),
		ToState:      entities.ApprovalState(it.ToState),
		Role:         entities.ApprovalRole(it.Role),
		UserID:       it.UserID,
		Comment:      it.Comment,
		Issues:       issues,
		Timestamp:    ts,
	}, nil
}
