package repository

import (
	"context"

	"webpay_billing/internal/domain/entities"
	"webpay_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultPaymentTransactionsTableName = "payment_transactions"
	transactionsAuthorizationIndex      = "authorization-index"
)

type paymentTransactionItem struct {
	ID            string         `dynamodbav:"id"`
	Action        string         `dynamodbav:"action"`
	SourceID      string         `dynamodbav:"source_id,omitempty"`
	Amount        int64          `dynamodbav:"amount"`
	Authorization string         `dynamodbav:"authorization,omitempty"`
	Success       bool           `dynamodbav:"success"`
	Message       string         `dynamodbav:"message"`
	Test          bool           `dynamodbav:"test"`
	CVVCode       string         `dynamodbav:"cvv_code,omitempty"`
	CreatedAt     string         `dynamodbav:"created_at"`
	Params        map[string]any `dynamodbav:"params,omitempty"`
	ParamsRaw     string         `dynamodbav:"params_raw,omitempty"`
}

// PaymentTransactionDynamoRepository persists the gateway call log in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: authorization-index (PK: authorization)
//
// Transactions without an authorization (e.g. a declined token) are kept but
// are not reachable through the index.

type PaymentTransactionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentTransactionRepository = (*PaymentTransactionDynamoRepository)(nil)

func NewPaymentTransactionDynamoRepository(ddb DynamoAPI, tableName string) *PaymentTransactionDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentTransactionsTableName
	}
	return &PaymentTransactionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentTransactionDynamoRepository) Create(ctx context.Context, t entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	av, err := attributevalue.MarshalMap(toPaymentTransactionItem(t))
	if err != nil {
		return entities.PaymentTransaction{}, err
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
		return entities.PaymentTransaction{}, err
	}
	return t, nil
}

// ListByAuthorization follows LastEvaluatedKey until the index is exhausted.
func (r *PaymentTransactionDynamoRepository) ListByAuthorization(ctx context.Context, authorization string) ([]entities.PaymentTransaction, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsAuthorizationIndex),
		KeyConditionExpression: aws.String("#authorization = :auth"),
		ExpressionAttributeNames: map[string]string{
			"#authorization": "authorization",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":auth": &types.AttributeValueMemberS{Value: authorization},
		},
	})

	items := make([]entities.PaymentTransaction, 0)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentTransactionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPaymentTransactionItem(it))
		}
	}
	return items, nil
}

func toPaymentTransactionItem(t entities.PaymentTransaction) paymentTransactionItem {
	return paymentTransactionItem{
		ID:            t.ID,
		Action:        string(t.Action),
		SourceID:      t.SourceID,
		Amount:        t.Amount,
		Authorization: t.Authorization,
		Success:       t.Success,
		Message:       t.Message,
		Test:          t.Test,
		CVVCode:       t.CVVCode,
		CreatedAt:     formatTime(t.CreatedAt),
		Params:        t.Params,
		ParamsRaw:     string(t.ParamsRaw),
	}
}

func fromPaymentTransactionItem(it paymentTransactionItem) entities.PaymentTransaction {
	return entities.PaymentTransaction{
		ID:            it.ID,
		Action:        entities.PaymentAction(it.Action),
		SourceID:      it.SourceID,
		Amount:        it.Amount,
		Authorization: it.Authorization,
		Success:       it.Success,
		Message:       it.Message,
		Test:          it.Test,
		CVVCode:       it.CVVCode,
		CreatedAt:     parseTime(it.CreatedAt),
		Params:        it.Params,
		ParamsRaw:     []byte(it.ParamsRaw),
	}
}
