package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/uni-match-api/internal/domain"
)

// UniversityRepo provides typed DynamoDB operations for the universities table.
type UniversityRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewUniversityRepo(client *dynamodb.Client, tableName string) *UniversityRepo {
	return &UniversityRepo{client: client, tableName: tableName}
}

func (r *UniversityRepo) Put(ctx context.Context, u *domain.University) error {
	item, err := attributevalue.MarshalMap(u)
	if err != nil {
		return fmt.Errorf("marshal university: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *UniversityRepo) Get(ctx context.Context, universityID string) (*domain.University, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("university_id", universityID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("university not found: %w", domain.ErrNotFound)
	}
	var u domain.University
	if err := attributevalue.UnmarshalMap(out.Item, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UniversityRepo) Scan(ctx context.Context) ([]domain.University, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var universities []domain.University
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &universities); err != nil {
		return nil, err
	}
	return universities, nil
}
