package repository

import (
	"context"
	"encoding/json"
	"time"

	"tripbudget/internal/domain/entities"
	"tripbudget/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetsTableName = "budgets"
	budgetsSellerIDIndex    = "seller_id-index"
)

type budgetItem struct {
	ID             string            `dynamodbav:"id"`
	SellerID       string            `dynamodbav:"seller_id"`
	ItemsRaw       string            `dynamodbav:"items_raw"`
	SearchCriteria map[string]string `dynamodbav:"search_criteria,omitempty"`
	Currency       string            `dynamodbav:"currency"`
	Status         string            `dynamodbav:"status"`
	ApprovalState  string            `dynamodbav:"approval_state"`
	ValidFrom      string            `dynamodbav:"valid_from,omitempty"`
	ValidUntil     string            `dynamodbav:"valid_until,omitempty"`
	Metadata       map[string]string `dynamodbav:"metadata,omitempty"`
	CreatedAt      string            `dynamodbav:"created_at"`
	UpdatedAt      string            `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: seller_id-index (PK: seller_id)
//
// Items travel as a JSON document in a single attribute: the item list is
// always read and written whole, never queried per-field.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it, err := toBudgetItem(b)
	if err != nil {
		return entities.Budget{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

func (r *BudgetDynamoRepository) ListBySellerID(ctx context.Context, sellerID string) ([]entities.Budget, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetsSellerIDIndex),
		KeyConditionExpression: aws.String("seller_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sellerID},
		},
	})
	if err != nil {
		return nil, err
	}

	budgets := make([]entities.Budget, 0, len(out.Items))
	for _, raw := range out.Items {
		var it budgetItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		b, err := fromBudgetItem(it)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, nil
}

// Save overwrites the full budget document. The caller has already decided
// the write is legal; there is no optimistic locking at this layer.
func (r *BudgetDynamoRepository) Save(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	b.UpdatedAt = time.Now().UTC()
	it, err := toBudgetItem(b)
	if err != nil {
		return entities.Budget{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) UpdateApprovalState(ctx context.Context, id string, state entities.ApprovalState) (entities.Budget, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #approval_state = :state, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":state":      &types.AttributeValueMemberS{Value: string(state)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#approval_state": "approval_state",
			"#updated_at":     "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}
	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

func toBudgetItem(b entities.Budget) (budgetItem, error) {
	itemsRaw, err := json.Marshal(b.Items)
	if err != nil {
		return budgetItem{}, err
	}
	it := budgetItem{
		ID:             b.ID,
		SellerID:       b.SellerID,
		ItemsRaw:       string(itemsRaw),
		SearchCriteria: b.SearchCriteria,
		Currency:       b.Currency,
		Status:         string(b.Status),
		ApprovalState:  string(b.ApprovalState),
		Metadata:       b.Metadata,
		CreatedAt:      b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !b.ValidFrom.IsZero() {
		it.ValidFrom = b.ValidFrom.UTC().Format(time.RFC3339Nano)
	}
	if !b.ValidUntil.IsZero() {
		it.ValidUntil = b.ValidUntil.UTC().Format(time.RFC3339Nano)
	}
	return it, nil
}

func fromBudgetItem(it budgetItem) (entities.Budget, error) {
	var items []entities.BudgetItem
	if it.ItemsRaw != "" {
		if err := json.Unmarshal([]byte(it.ItemsRaw), &items); err != nil {
			return entities.Budget{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	validFrom, _ := time.Parse(time.RFC3339Nano, it.ValidFrom)
	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	return entities.Budget{
		ID:             it.ID,
		SellerID:       it.SellerID,
		Items:          items,
		SearchCriteria: it.SearchCriteria,
		Currency:       it.Currency,
		Status:         entities.BudgetStatus(it.Status),
		ApprovalState:  entities.ApprovalState(it.ApprovalState),
		ValidFrom:      validFrom,
		ValidUntil:     validUntil,
		Metadata:       it.Metadata,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}
