package repository

import (
	"context"
	"errors"
	"time"

	"webpay_billing/internal/domain/entities"
	"webpay_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultPaymentSourcesTableName = "payment_sources"

type paymentSourceItem struct {
	ID                       string `dynamodbav:"id"`
	Brand                    string `dynamodbav:"brand"`
	GatewayPaymentProfileID  string `dynamodbav:"gateway_payment_profile_id"`
	GatewayCustomerProfileID string `dynamodbav:"gateway_customer_profile_id"`
	CreatedAt                string `dynamodbav:"created_at"`
	UpdatedAt                string `dynamodbav:"updated_at"`
}

// PaymentSourceDynamoRepository persists PaymentSource entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PaymentSourceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentSourceRepository = (*PaymentSourceDynamoRepository)(nil)

func NewPaymentSourceDynamoRepository(ddb DynamoAPI, tableName string) *PaymentSourceDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentSourcesTableName
	}
	return &PaymentSourceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentSourceDynamoRepository) Create(ctx context.Context, s entities.PaymentSource) (entities.PaymentSource, error) {
	av, err := attributevalue.MarshalMap(toPaymentSourceItem(s))
	if err != nil {
		return entities.PaymentSource{}, err
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
		return entities.PaymentSource{}, err
	}
	return s, nil
}

func (r *PaymentSourceDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentSource, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentSource{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentSource{}, nil
	}

	var it paymentSourceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentSource{}, err
	}
	return fromPaymentSourceItem(it), nil
}

// UpdateGatewayProfile stores both gateway profile ids of s. A zero source is
// returned when the item does not exist.
func (r *PaymentSourceDynamoRepository) UpdateGatewayProfile(ctx context.Context, s entities.PaymentSource) (entities.PaymentSource, error) {
	now := formatTime(time.Now())
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: s.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #payment_profile = :payment_profile, #customer_profile = :customer_profile, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payment_profile":  &types.AttributeValueMemberS{Value: s.GatewayPaymentProfileID},
			":customer_profile": &types.AttributeValueMemberS{Value: s.GatewayCustomerProfileID},
			":updated_at":       &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#payment_profile":  "gateway_payment_profile_id",
			"#customer_profile": "gateway_customer_profile_id",
			"#updated_at":       "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentSource{}, nil
		}
		return entities.PaymentSource{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentSource{}, nil
	}
	var it paymentSourceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentSource{}, err
	}
	return fromPaymentSourceItem(it), nil
}

func toPaymentSourceItem(s entities.PaymentSource) paymentSourceItem {
	return paymentSourceItem{
		ID:                       s.ID,
		Brand:                    s.Brand,
		GatewayPaymentProfileID:  s.GatewayPaymentProfileID,
		GatewayCustomerProfileID: s.GatewayCustomerProfileID,
		CreatedAt:                formatTime(s.CreatedAt),
		UpdatedAt:                formatTime(s.UpdatedAt),
	}
}

func fromPaymentSourceItem(it paymentSourceItem) entities.PaymentSource {
	return entities.PaymentSource{
		ID:                       it.ID,
		Brand:                    it.Brand,
		GatewayPaymentProfileID:  it.GatewayPaymentProfileID,
		GatewayCustomerProfileID: it.GatewayCustomerProfileID,
		CreatedAt:                parseTime(it.CreatedAt),
		UpdatedAt:                parseTime(it.UpdatedAt),
	}
}
