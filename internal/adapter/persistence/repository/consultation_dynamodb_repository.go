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
	defaultConsultationsTableName   = "consultations"
	defaultVirtualSessionsTableName = "virtual_sessions"
	consultationsPanditIDIndex      = "pandit_id-index"
)

type consultationItem struct {
	ID               string `dynamodbav:"id"`
	UserID           string `dynamodbav:"user_id"`
	PanditID         string `dynamodbav:"pandit_id"`
	ConsultationDate string `dynamodbav:"consultation_date"`
	Price            string `dynamodbav:"price"`
	Status           string `dynamodbav:"status"`
	Notes            string `dynamodbav:"notes,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
}

type virtualSessionItem struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	StreamURL   string `dynamodbav:"stream_url"`
	ScheduledAt string `dynamodbav:"scheduled_at"`
	PujaTypeID  string `dynamodbav:"puja_type_id,omitempty"`
	IsActive    bool   `dynamodbav:"is_active"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ConsultationDynamoRepository persists Consultation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: pandit_id-index (PK: pandit_id)

type ConsultationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IConsultationRepository = (*ConsultationDynamoRepository)(nil)

func NewConsultationDynamoRepository(ddb DynamoAPI) *ConsultationDynamoRepository {
	return &ConsultationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONSULTATIONS_TABLE", defaultConsultationsTableName),
	}
}

func (r *ConsultationDynamoRepository) Create(ctx context.Context, c entities.Consultation) (entities.Consultation, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toConsultationItem(c)); err != nil {
		return entities.Consultation{}, err
	}
	return c, nil
}

func (r *ConsultationDynamoRepository) ListByPanditID(ctx context.Context, panditID string) ([]entities.Consultation, error) {
	items, err := queryAll[consultationItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(consultationsPanditIDIndex),
		KeyConditionExpression: aws.String("pandit_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": str(panditID),
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Consultation, 0, len(items))
	for _, it := range items {
		out = append(out, fromConsultationItem(it))
	}
	sortByTime(out, func(c entities.Consultation) time.Time { return c.CreatedAt })
	return out, nil
}

// VirtualSessionDynamoRepository persists VirtualSession entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type VirtualSessionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IVirtualSessionRepository = (*VirtualSessionDynamoRepository)(nil)

func NewVirtualSessionDynamoRepository(ddb DynamoAPI) *VirtualSessionDynamoRepository {
	return &VirtualSessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VIRTUAL_SESSIONS_TABLE", defaultVirtualSessionsTableName),
	}
}

func (r *VirtualSessionDynamoRepository) Create(ctx context.Context, s entities.VirtualSession) (entities.VirtualSession, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toVirtualSessionItem(s)); err != nil {
		return entities.VirtualSession{}, err
	}
	return s, nil
}

func (r *VirtualSessionDynamoRepository) ListActive(ctx context.Context) ([]entities.VirtualSession, error) {
	items, err := scanAll[virtualSessionItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("#active = :active"),
		ExpressionAttributeNames: map[string]string{"#active": "is_active"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.VirtualSession, 0, len(items))
	for _, it := range items {
		out = append(out, fromVirtualSessionItem(it))
	}
	sortByTime(out, func(v entities.VirtualSession) time.Time { return v.ScheduledAt })
	return out, nil
}

// putNew stores item under a fresh id.
func putNew(ctx context.Context, ddb DynamoAPI, table string, item interface{}) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return conditionErr(err)
}

func toConsultationItem(c entities.Consultation) consultationItem {
	return consultationItem{
		ID:               c.ID,
		UserID:           c.UserID,
		PanditID:         c.PanditID,
		ConsultationDate: formatTime(c.ConsultationDate),
		Price:            floatToString(c.Price),
		Status:           string(c.Status),
		Notes:            c.Notes,
		CreatedAt:        formatTime(c.CreatedAt),
	}
}

func fromConsultationItem(it consultationItem) entities.Consultation {
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Consultation{
		ID:               it.ID,
		UserID:           it.UserID,
		PanditID:         it.PanditID,
		ConsultationDate: parseTime(it.ConsultationDate),
		Price:            price,
		Status:           entities.BookingStatus(it.Status),
		Notes:            it.Notes,
		CreatedAt:        parseTime(it.CreatedAt),
	}
}

func toVirtualSessionItem(s entities.VirtualSession) virtualSessionItem {
	return virtualSessionItem{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		StreamURL:   s.StreamURL,
		ScheduledAt: formatTime(s.ScheduledAt),
		PujaTypeID:  s.PujaTypeID,
		IsActive:    s.IsActive,
		CreatedAt:   formatTime(s.CreatedAt),
	}
}

func fromVirtualSessionItem(it virtualSessionItem) entities.VirtualSession {
	return entities.VirtualSession{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		StreamURL:   it.StreamURL,
		ScheduledAt: parseTime(it.ScheduledAt),
		PujaTypeID:  it.PujaTypeID,
		IsActive:    it.IsActive,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
