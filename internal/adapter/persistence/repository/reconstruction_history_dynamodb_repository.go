package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"tripbudget/internal/domain/entities"
	"tripbudget/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReconstructionHistoryTableName = "reconstruction_history"
	reconstructionHistoryBudgetIDIndex    = "budget_id-index"
)

type reconstructionHistoryItem struct {
	ID             string `dynamodbav:"id"`
	BudgetID       string `dynamodbav:"budget_id"`
	Success        bool   `dynamodbav:"success"`
	StrategyUsed   string `dynamodbav:"strategy_used"`
	ChangesRaw     string `dynamodbav:"changes_raw,omitempty"`
	StabilityScore string `dynamodbav:"stability_score"`
	Error          string `dynamodbav:"error,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// ReconstructionHistoryDynamoRepository stores the append-only log of
// reconstruction attempts.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)
//
// The accepted candidate budget is not duplicated here; it lives in the
// budgets table. History rows only carry what changed and the verdict.

type ReconstructionHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReconstructionHistoryRepository = (*ReconstructionHistoryDynamoRepository)(nil)

func NewReconstructionHistoryDynamoRepository(ddb *dynamodb.Client) *ReconstructionHistoryDynamoRepository {
	return &ReconstructionHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECONSTRUCTION_HISTORY_TABLE", defaultReconstructionHistoryTableName),
	}
}

func (r *ReconstructionHistoryDynamoRepository) Append(ctx context.Context, res entities.ReconstructionResult) error {
	it, err := toReconstructionHistoryItem(res)
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

func (r *ReconstructionHistoryDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.ReconstructionResult, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reconstructionHistoryBudgetIDIndex),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: budgetID},
		},
	})
	if err != nil {
		return nil, err
	}

	results := make([]entities.ReconstructionResult, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reconstructionHistoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		res, err := fromReconstructionHistoryItem(it)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	// The GSI has no sort key; order attempts oldest first.
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].CreatedAt.Before(results[b].CreatedAt)
	})
	return results, nil
}

func toReconstructionHistoryItem(res entities.ReconstructionResult) (reconstructionHistoryItem, error) {
	changesRaw, err := json.Marshal(res.ChangesApplied)
	if err != nil {
		return reconstructionHistoryItem{}, err
	}
	return reconstructionHistoryItem{
		ID:             res.ID,
		BudgetID:       res.BudgetID,
		Success:        res.Success,
		StrategyUsed:   string(res.StrategyUsed),
		ChangesRaw:     string(changesRaw),
		StabilityScore: floatToString(res.StabilityScore),
		Error:          res.Error,
		CreatedAt:      res.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromReconstructionHistoryItem(it reconstructionHistoryItem) (entities.ReconstructionResult, error) {
	var changes []entities.ItemChange
	if it.ChangesRaw != "" {
		if err := json.Unmarshal([]byte(it.ChangesRaw), &changes); err != nil {
			return entities.ReconstructionResult{}, err
		}
	}
	score, _ := strconv.ParseFloat(it.StabilityScore, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ReconstructionResult{
		ID:             it.ID,
		BudgetID:       it.BudgetID,
		Success:        it.Success,
		StrategyUsed:   entities.StrategyName(it.StrategyUsed),
		ChangesApplied: changes,
		StabilityScore: score,
		Error:          it.Error,
		CreatedAt:      createdAt,
	}, nil
}
