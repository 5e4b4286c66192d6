package repository

import (
	"context"
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
	defaultDepositsTableName = "deposits"
	depositsBudgetIDIndex    = "budget_id-index"
)

type depositItem struct {
	ID                string `dynamodbav:"id"`
	BudgetID          string `dynamodbav:"budget_id"`
	Amount            string `dynamodbav:"amount"`
	Currency          string `dynamodbav:"currency"`
	Date              string `dynamodbav:"date"`
	Status            string `dynamodbav:"status"`
	GatewayPaymentID  string `dynamodbav:"gateway_payment_id,omitempty"`
	GatewayPayloadRaw string `dynamodbav:"gateway_payload_raw,omitempty"`
	GatewayResponse   string `dynamodbav:"gateway_response,omitempty"`
}

// DepositDynamoRepository persists Deposit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)

type DepositDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDepositRepository = (*DepositDynamoRepository)(nil)

func NewDepositDynamoRepository(ddb *dynamodb.Client) *DepositDynamoRepository {
	return &DepositDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEPOSITS_TABLE", defaultDepositsTableName),
	}
}

func (r *DepositDynamoRepository) Create(ctx context.Context, d entities.Deposit) (entities.Deposit, error) {
	av, err := attributevalue.MarshalMap(toDepositItem(d))
	if err != nil {
		return entities.Deposit{}, err
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
		return entities.Deposit{}, err
	}
	return d, nil
}

func (r *DepositDynamoRepository) GetByID(ctx context.Context, id string) (entities.Deposit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Deposit{}, err
	}
	if len(out.Item) == 0 {
		return entities.Deposit{}, nil
	}

	var it depositItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Deposit{}, err
	}
	return fromDepositItem(it), nil
}

func (r *DepositDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Deposit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(depositsBudgetIDIndex),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: budgetID},
		},
	})
	if err != nil {
		return nil, err
	}

	deposits := make([]entities.Deposit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it depositItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		deposits = append(deposits, fromDepositItem(it))
	}
	return deposits, nil
}

func toDepositItem(d entities.Deposit) depositItem {
	return depositItem{
		ID:                d.ID,
		BudgetID:          d.BudgetID,
		Amount:            floatToString(d.Amount),
		Currency:          d.Currency,
		Date:              d.Date.UTC().Format(time.RFC3339Nano),
		Status:            string(d.Status),
		GatewayPaymentID:  d.GatewayPaymentID,
		GatewayPayloadRaw: string(d.GatewayPayloadRaw),
		GatewayResponse:   string(d.GatewayResponse),
	}
}

func fromDepositItem(it depositItem) entities.Deposit {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.Deposit{
		ID:                it.ID,
		BudgetID:          it.BudgetID,
		Amount:            amount,
		Currency:          it.Currency,
		Date:              date,
		Status:            entities.DepositStatus(it.Status),
		GatewayPaymentID:  it.GatewayPaymentID,
		GatewayPayloadRaw: []byte(it.GatewayPayloadRaw),
		GatewayResponse:   []byte(it.GatewayResponse),
	}
}
