package repository

import (
	"context"
	"errors"
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
	defaultPujaTypesTableName = "puja_types"
	pujaTypeUpdateExpr        = "SET #name_local = :name_local, #name_en = :name_en, #description = :description, " +
		"#detailed_description = :detailed_description, #benefits = :benefits, #image_url = :image_url, " +
		"#duration = :duration, #default_price = :default_price, #min_price = :min_price, #max_price = :max_price, " +
		"#is_virtual = :is_virtual"
)

type pujaTypeItem struct {
	ID                  string `dynamodbav:"id"`
	NameLocal           string `dynamodbav:"name_local"`
	NameEN              string `dynamodbav:"name_en"`
	Description         string `dynamodbav:"description,omitempty"`
	DetailedDescription string `dynamodbav:"detailed_description,omitempty"`
	Benefits            string `dynamodbav:"benefits,omitempty"`
	ImageURL            string `dynamodbav:"image_url,omitempty"`
	DurationMins        int    `dynamodbav:"duration_minutes"`
	DefaultPrice        string `dynamodbav:"default_price"`
	MinPrice            string `dynamodbav:"min_price"`
	MaxPrice            string `dynamodbav:"max_price"`
	IsVirtual           bool   `dynamodbav:"is_virtual"`
	CreatedAt           string `dynamodbav:"created_at"`
}

// PujaTypeDynamoRepository persists the puja catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PujaTypeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPujaTypeRepository = (*PujaTypeDynamoRepository)(nil)

func NewPujaTypeDynamoRepository(ddb DynamoAPI) *PujaTypeDynamoRepository {
	return &PujaTypeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PUJA_TYPES_TABLE", defaultPujaTypesTableName),
	}
}

func (r *PujaTypeDynamoRepository) Create(ctx context.Context, p entities.PujaType) (entities.PujaType, error) {
	av, err := attributevalue.MarshalMap(toPujaTypeItem(p))
	if err != nil {
		return entities.PujaType{}, err
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
		return entities.PujaType{}, conditionErr(err)
	}
	return p, nil
}

func (r *PujaTypeDynamoRepository) GetByID(ctx context.Context, id string) (entities.PujaType, error) {
	var it pujaTypeItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.PujaType{}, err
	}
	return fromPujaTypeItem(it), nil
}

func (r *PujaTypeDynamoRepository) List(ctx context.Context) ([]entities.PujaType, error) {
	items, err := scanAll[pujaTypeItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.PujaType, 0, len(items))
	for _, it := range items {
		out = append(out, fromPujaTypeItem(it))
	}
	sortByTime(out, func(p entities.PujaType) time.Time { return p.CreatedAt })
	return out, nil
}

// Update overwrites every catalog field. It returns a zero PujaType when the id does not exist.
func (r *PujaTypeDynamoRepository) Update(ctx context.Context, p entities.PujaType) (entities.PujaType, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(p.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String(pujaTypeUpdateExpr),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name_local":           str(p.NameLocal),
			":name_en":              str(p.NameEN),
			":description":          str(p.Description),
			":detailed_description": str(p.DetailedDescription),
			":benefits":             str(p.Benefits),
			":image_url":            str(p.ImageURL),
			":duration":             &types.AttributeValueMemberN{Value: strconv.Itoa(p.DurationMins)},
			":default_price":        str(floatToString(p.DefaultPrice)),
			":min_price":            str(floatToString(p.MinPrice)),
			":max_price":            str(floatToString(p.MaxPrice)),
			":is_virtual":           &types.AttributeValueMemberBOOL{Value: p.IsVirtual},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":                   "id",
			"#name_local":           "name_local",
			"#name_en":              "name_en",
			"#description":          "description",
			"#detailed_description": "detailed_description",
			"#benefits":             "benefits",
			"#image_url":            "image_url",
			"#duration":             "duration_minutes",
			"#default_price":        "default_price",
			"#min_price":            "min_price",
			"#max_price":            "max_price",
			"#is_virtual":           "is_virtual",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if errors.Is(conditionErr(err), interfaces.ErrConditionFailed) {
			return entities.PujaType{}, nil
		}
		return entities.PujaType{}, err
	}
	var it pujaTypeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PujaType{}, err
	}
	return fromPujaTypeItem(it), nil
}

func toPujaTypeItem(p entities.PujaType) pujaTypeItem {
	return pujaTypeItem{
		ID:                  p.ID,
		NameLocal:           p.NameLocal,
		NameEN:              p.NameEN,
		Description:         p.Description,
		DetailedDescription: p.DetailedDescription,
		Benefits:            p.Benefits,
		ImageURL:            p.ImageURL,
		DurationMins:        p.DurationMins,
		DefaultPrice:        floatToString(p.DefaultPrice),
		MinPrice:            floatToString(p.MinPrice),
		MaxPrice:            floatToString(p.MaxPrice),
		IsVirtual:           p.IsVirtual,
		CreatedAt:           formatTime(p.CreatedAt),
	}
}

func fromPujaTypeItem(it pujaTypeItem) entities.PujaType {
	def, _ := strconv.ParseFloat(it.DefaultPrice, 64)
	minPrice, _ := strconv.ParseFloat(it.MinPrice, 64)
	maxPrice, _ := strconv.ParseFloat(it.MaxPrice, 64)
	return entities.PujaType{
		ID:                  it.ID,
		NameLocal:           it.NameLocal,
		NameEN:              it.NameEN,
		Description:         it.Description,
		DetailedDescription: it.DetailedDescription,
		Benefits:            it.Benefits,
		ImageURL:            it.ImageURL,
		DurationMins:        it.DurationMins,
		DefaultPrice:        def,
		MinPrice:            minPrice,
		MaxPrice:            maxPrice,
		IsVirtual:           it.IsVirtual,
		CreatedAt:           parseTime(it.CreatedAt),
	}
}
