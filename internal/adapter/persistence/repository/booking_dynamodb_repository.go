package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	bookingsUserIDIndex      = "user_id-index"
	bookingsPanditIDIndex    = "pandit_id-index"
)

type bookingItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	PanditID    string `dynamodbav:"pandit_id,omitempty"`
	PujaTypeID  string `dynamodbav:"puja_type_id"`
	ScheduledAt string `dynamodbav:"scheduled_at"`
	Address     string `dynamodbav:"address,omitempty"`
	Price       string `dynamodbav:"price"`
	StreamURL   string `dynamodbav:"stream_url,omitempty"`
	Status      string `dynamodbav:"status"`
	PaymentID   string `dynamodbav:"payment_id,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: pandit_id-index (PK: pandit_id)
//
// pandit_id is a GSI key and may not be stored empty, so an unassigned booking
// simply has no pandit_id attribute.

type BookingDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb DynamoAPI) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: bookingsTable(),
	}
}

func bookingsTable() string {
	return getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName)
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, conditionErr(err)
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	var it bookingItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error) {
	return r.queryIndex(ctx, bookingsUserIDIndex, "user_id", userID)
}

func (r *BookingDynamoRepository) ListByPanditID(ctx context.Context, panditID string) ([]entities.Booking, error) {
	return r.queryIndex(ctx, bookingsPanditIDIndex, "pandit_id", panditID)
}

func (r *BookingDynamoRepository) List(ctx context.Context) ([]entities.Booking, error) {
	items, err := scanAll[bookingItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return fromBookingItems(items), nil
}

func (r *BookingDynamoRepository) Update(ctx context.Context, b entities.Booking, expected entities.BookingStatus) (entities.Booking, error) {
	cond := "#status = :expected"
	return r.update(ctx, b.ID, cond, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #scheduled_at = :scheduled_at, #stream_url = :stream_url, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":expected":     str(string(expected)),
			":status":       str(string(b.Status)),
			":scheduled_at": str(formatTime(b.ScheduledAt)),
			":stream_url":   str(b.StreamURL),
			":updated_at":   str(now),
		}
		names := map[string]string{
			"#status":       "status",
			"#scheduled_at": "scheduled_at",
			"#stream_url":   "stream_url",
			"#updated_at":   "updated_at",
			"#pandit_id":    "pandit_id",
		}
		if b.PanditID != "" {
			expr = strings.Replace(expr, "SET ", "SET #pandit_id = :pandit_id, ", 1)
			vals[":pandit_id"] = str(b.PanditID)
		} else {
			expr += " REMOVE #pandit_id"
		}
		return expr, vals, names
	})
}

func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, to entities.BookingStatus, from []entities.BookingStatus) (entities.Booking, error) {
	if len(from) == 0 {
		return entities.Booking{}, interfaces.ErrConditionFailed
	}
	cond, fromVals := statusIn("#status", ":from", from)
	return r.update(ctx, id, cond, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     str(string(to)),
			":updated_at": str(now),
		}
		for k, v := range fromVals {
			vals[k] = v
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// update applies a conditional UpdateItem. cond is ANDed with the item existing;
// a failed condition returns interfaces.ErrConditionFailed.
func (r *BookingDynamoRepository) update(
	ctx context.Context,
	id string,
	cond string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Booking, error) {
	updateExpr, values, names := build(nowString())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Booking{}, conditionErr(err)
	}
	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Booking, error) {
	items, err := queryAll[bookingItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": str(value),
		},
	})
	if err != nil {
		return nil, err
	}
	return fromBookingItems(items), nil
}

// statusIn builds "<name> IN (:p0, :p1, ...)" with its placeholder values.
func statusIn(name, prefix string, statuses []entities.BookingStatus) (string, map[string]types.AttributeValue) {
	keys := make([]string, 0, len(statuses))
	vals := make(map[string]types.AttributeValue, len(statuses))
	for i, s := range statuses {
		k := prefix + strconv.Itoa(i)
		keys = append(keys, k)
		vals[k] = str(string(s))
	}
	return fmt.Sprintf("%s IN (%s)", name, strings.Join(keys, ", ")), vals
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:          b.ID,
		UserID:      b.UserID,
		PanditID:    b.PanditID,
		PujaTypeID:  b.PujaTypeID,
		ScheduledAt: formatTime(b.ScheduledAt),
		Address:     b.Address,
		Price:       floatToString(b.Price),
		StreamURL:   b.StreamURL,
		Status:      string(b.Status),
		PaymentID:   b.PaymentID,
		CreatedAt:   formatTime(b.CreatedAt),
		UpdatedAt:   formatTime(b.UpdatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Booking{
		ID:          it.ID,
		UserID:      it.UserID,
		PanditID:    it.PanditID,
		PujaTypeID:  it.PujaTypeID,
		ScheduledAt: parseTime(it.ScheduledAt),
		Address:     it.Address,
		Price:       price,
		StreamURL:   it.StreamURL,
		Status:      entities.BookingStatus(it.Status),
		PaymentID:   it.PaymentID,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func fromBookingItems(items []bookingItem) []entities.Booking {
	out := make([]entities.Booking, 0, len(items))
	for _, it := range items {
		out = append(out, fromBookingItem(it))
	}
	sortByTime(out, func(b entities.Booking) time.Time { return b.CreatedAt })
	return out
}
