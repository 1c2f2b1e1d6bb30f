package repository

import (
	"context"
	"strconv"
	"time"

	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName      = "payments"
	defaultPaymentOrdersTableName = "payment_orders"
)

type paymentItem struct {
	ID                string `dynamodbav:"id"`
	BookingID         string `dynamodbav:"booking_id"`
	Amount            string `dynamodbav:"amount"`
	Provider          string `dynamodbav:"provider"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	Status            string `dynamodbav:"status"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

type paymentOrderItem struct {
	ID        string `dynamodbav:"id"`
	PaymentID string `dynamodbav:"payment_id"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - payments, PK: id (string)
//   - payment_orders, PK: id (string, the provider order id) -> payment_id
//
// The booking item's payment_id is the one-payment-per-booking guard, so every
// multi-row write below goes through TransactWriteItems.

type PaymentDynamoRepository struct {
	ddb           DynamoAPI
	tableName     string
	ordersTable   string
	bookingsTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		ordersTable:   getenvDefault("PAYMENT_ORDERS_TABLE", defaultPaymentOrdersTableName),
		bookingsTable: bookingsTable(),
	}
}

func (r *PaymentDynamoRepository) CreateForBooking(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Update: &types.Update{
				TableName:           aws.String(r.bookingsTable),
				Key:                 idKey(p.BookingID),
				ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#payment_id)"),
				UpdateExpression:    aws.String("SET #payment_id = :payment_id, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#payment_id": "payment_id",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":payment_id": str(p.ID),
					":updated_at": str(nowString()),
				},
			}},
		},
	})
	if err != nil {
		return entities.Payment{}, conditionErr(err)
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var it paymentItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByBookingID(ctx context.Context, bookingID string) (entities.Payment, error) {
	var b bookingItem
	found, err := getItem(ctx, r.ddb, r.bookingsTable, bookingID, &b)
	if err != nil || !found || b.PaymentID == "" {
		return entities.Payment{}, err
	}
	return r.GetByID(ctx, b.PaymentID)
}

func (r *PaymentDynamoRepository) GetByProviderPaymentID(ctx context.Context, providerPaymentID string) (entities.Payment, error) {
	var o paymentOrderItem
	found, err := getItem(ctx, r.ddb, r.ordersTable, providerPaymentID, &o)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return r.GetByID(ctx, o.PaymentID)
}

func (r *PaymentDynamoRepository) AttachProviderOrder(ctx context.Context, paymentID string, providerPaymentID string) (entities.Payment, error) {
	now := nowString()
	order, err := attributevalue.MarshalMap(paymentOrderItem{ID: providerPaymentID, PaymentID: paymentID, CreatedAt: now})
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName:           aws.String(r.tableName),
				Key:                 idKey(paymentID),
				ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#order) AND #status = :pending"),
				UpdateExpression:    aws.String("SET #order = :order, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#order":      "provider_payment_id",
					"#status":     "status",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":order":      str(providerPaymentID),
					":pending":    str(string(entities.PaymentStatusPending)),
					":updated_at": str(now),
				},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.ordersTable),
				Item:                     order,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		return entities.Payment{}, conditionErr(err)
	}
	return r.GetByID(ctx, paymentID)
}

func (r *PaymentDynamoRepository) MarkSucceeded(ctx context.Context, paymentID string, bookingID string) error {
	now := nowString()
	writes := []types.TransactWriteItem{
		{Update: &types.Update{
			TableName:           aws.String(r.tableName),
			Key:                 idKey(paymentID),
			ConditionExpression: aws.String("attribute_exists(#id) AND #status IN (:pending, :success)"),
			UpdateExpression:    aws.String("SET #status = :success, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending":    str(string(entities.PaymentStatusPending)),
				":success":    str(string(entities.PaymentStatusSuccess)),
				":updated_at": str(now),
			},
		}},
	}
	if bookingID != "" {
		writes = append(writes, types.TransactWriteItem{Update: &types.Update{
			TableName:           aws.String(r.bookingsTable),
			Key:                 idKey(bookingID),
			ConditionExpression: aws.String("attribute_exists(#id) AND #status IN (:pending, :confirmed)"),
			UpdateExpression:    aws.String("SET #status = :confirmed, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending":    str(string(entities.BookingStatusPending)),
				":confirmed":  str(string(entities.BookingStatusConfirmed)),
				":updated_at": str(now),
			},
		}})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	return conditionErr(err)
}

func (r *PaymentDynamoRepository) ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.Payment, error) {
	items, err := scanAll[paymentItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": str(string(status)),
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		out = append(out, fromPaymentItem(it))
	}
	sortByTime(out, func(p entities.Payment) time.Time { return p.CreatedAt })
	return out, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		BookingID:         p.BookingID,
		Amount:            floatToString(p.Amount),
		Provider:          p.Provider,
		ProviderPaymentID: p.ProviderPaymentID,
		Status:            string(p.Status),
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Payment{
		ID:                it.ID,
		BookingID:         it.BookingID,
		Amount:            amount,
		Provider:          it.Provider,
		ProviderPaymentID: it.ProviderPaymentID,
		Status:            entities.PaymentStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
