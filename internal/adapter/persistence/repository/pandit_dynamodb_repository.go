package repository

import (
	"context"
	"time"

	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPanditsTableName = "pandits"
	panditsUserIDIndex      = "user_id-index"
	panditOwnerKeyPrefix    = "user#"
)

type panditItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	City      string `dynamodbav:"city"`
	State     string `dynamodbav:"state"`
	PhotoURL  string `dynamodbav:"photo_url,omitempty"`
	Bio       string `dynamodbav:"bio,omitempty"`
	Approved  bool   `dynamodbav:"approved"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PanditDynamoRepository persists Pandit profiles in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// A GSI cannot enforce uniqueness, so every profile is written together with an
// owner item keyed "user#<user_id>". The owner item carries no user_id and is
// therefore invisible to the index and filtered out of scans.

type PanditDynamoRepository struct {
	ddb        DynamoAPI
	tableName  string
	usersTable string
}

var _ interfaces.IPanditRepository = (*PanditDynamoRepository)(nil)

func NewPanditDynamoRepository(ddb DynamoAPI) *PanditDynamoRepository {
	return &PanditDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("PANDITS_TABLE", defaultPanditsTableName),
		usersTable: usersTable(),
	}
}

func (r *PanditDynamoRepository) Create(ctx context.Context, p entities.Pandit) (entities.Pandit, error) {
	av, err := attributevalue.MarshalMap(toPanditItem(p))
	if err != nil {
		return entities.Pandit{}, err
	}
	notExists := aws.String("attribute_not_exists(#id)")
	names := map[string]string{"#id": "id"}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      notExists,
				ExpressionAttributeNames: names,
			}},
			{Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item: map[string]types.AttributeValue{
					"id":        str(panditOwnerKeyPrefix + p.UserID),
					"pandit_id": str(p.ID),
				},
				ConditionExpression:      notExists,
				ExpressionAttributeNames: names,
			}},
		},
	})
	if err != nil {
		return entities.Pandit{}, conditionErr(err)
	}
	return p, nil
}

func (r *PanditDynamoRepository) GetByID(ctx context.Context, id string) (entities.Pandit, error) {
	var it panditItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found || it.UserID == "" {
		return entities.Pandit{}, err
	}
	return fromPanditItem(it), nil
}

func (r *PanditDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Pandit, error) {
	items, err := queryAll[panditItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(panditsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": str(userID),
		},
	})
	if err != nil || len(items) == 0 {
		return entities.Pandit{}, err
	}
	return fromPanditItem(items[0]), nil
}

func (r *PanditDynamoRepository) List(ctx context.Context, approvedOnly bool) ([]entities.Pandit, error) {
	in := &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("attribute_exists(#user_id)"),
		ExpressionAttributeNames: map[string]string{"#user_id": "user_id"},
	}
	if approvedOnly {
		in.FilterExpression = aws.String("attribute_exists(#user_id) AND #approved = :approved")
		in.ExpressionAttributeNames["#approved"] = "approved"
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":approved": &types.AttributeValueMemberBOOL{Value: true},
		}
	}
	items, err := scanAll[panditItem](ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	pandits := make([]entities.Pandit, 0, len(items))
	for _, it := range items {
		pandits = append(pandits, fromPanditItem(it))
	}
	sortByTime(pandits, func(p entities.Pandit) time.Time { return p.CreatedAt })
	return pandits, nil
}

// SetApproval writes the approval flag and, when promoteUserID is set, moves that
// user from role "user" to "pandit" in the same transaction.
func (r *PanditDynamoRepository) SetApproval(ctx context.Context, id string, approved bool, promoteUserID string) (entities.Pandit, error) {
	writes := []types.TransactWriteItem{
		{Update: &types.Update{
			TableName:           aws.String(r.tableName),
			Key:                 idKey(id),
			ConditionExpression: aws.String("attribute_exists(#id) AND attribute_exists(#user_id)"),
			UpdateExpression:    aws.String("SET #approved = :approved"),
			ExpressionAttributeNames: map[string]string{
				"#id":       "id",
				"#user_id":  "user_id",
				"#approved": "approved",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":approved": &types.AttributeValueMemberBOOL{Value: approved},
			},
		}},
	}
	if promoteUserID != "" {
		writes = append(writes, types.TransactWriteItem{Update: &types.Update{
			TableName:           aws.String(r.usersTable),
			Key:                 idKey(promoteUserID),
			ConditionExpression: aws.String("attribute_exists(#id) AND #role = :from"),
			UpdateExpression:    aws.String("SET #role = :to"),
			ExpressionAttributeNames: map[string]string{
				"#id":   "id",
				"#role": "role",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":from": str(string(entities.UserRoleUser)),
				":to":   str(string(entities.UserRolePandit)),
			},
		}})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
		return entities.Pandit{}, conditionErr(err)
	}
	return r.GetByID(ctx, id)
}

func toPanditItem(p entities.Pandit) panditItem {
	return panditItem{
		ID:        p.ID,
		UserID:    p.UserID,
		City:      p.City,
		State:     p.State,
		PhotoURL:  p.PhotoURL,
		Bio:       p.Bio,
		Approved:  p.Approved,
		CreatedAt: formatTime(p.CreatedAt),
	}
}

func fromPanditItem(it panditItem) entities.Pandit {
	return entities.Pandit{
		ID:        it.ID,
		UserID:    it.UserID,
		City:      it.City,
		State:     it.State,
		PhotoURL:  it.PhotoURL,
		Bio:       it.Bio,
		Approved:  it.Approved,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
