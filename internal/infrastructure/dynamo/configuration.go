package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/uni-match-api/internal/domain"
)

// ConfigurationRepo reads the catalog configuration tables: intent options,
// weight presets and verification flags. These are operator-managed and
// change rarely, so plain scans are fine.
type ConfigurationRepo struct {
	client       *dynamodb.Client
	intentsTable string
	presetsTable string
	flagsTable   string
}

func NewConfigurationRepo(client *dynamodb.Client, intentsTable, presetsTable, flagsTable string) *ConfigurationRepo {
	return &ConfigurationRepo{
		client:       client,
		intentsTable: intentsTable,
		presetsTable: presetsTable,
		flagsTable:   flagsTable,
	}
}

func (r *ConfigurationRepo) GetCatalogConfiguration(ctx context.Context) (*domain.CatalogConfiguration, error) {
	var cfg domain.CatalogConfiguration

	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.intentsTable)})
	if err != nil {
		return nil, fmt.Errorf("scan intent options: %w", err)
	}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &cfg.Intents); err != nil {
		return nil, err
	}

	out, err = r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.presetsTable)})
	if err != nil {
		return nil, fmt.Errorf("scan weight presets: %w", err)
	}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &cfg.WeightPresets); err != nil {
		return nil, err
	}

	out, err = r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.flagsTable)})
	if err != nil {
		return nil, fmt.Errorf("scan verification flags: %w", err)
	}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &cfg.VerificationFlags); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (r *ConfigurationRepo) PutIntentOption(ctx context.Context, o *domain.IntentOption) error {
	item, err := attributevalue.MarshalMap(o)
	if err != nil {
		return fmt.Errorf("marshal intent option: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(r.intentsTable), Item: item})
	return err
}

func (r *ConfigurationRepo) PutWeightPreset(ctx context.Context, p *domain.WeightPreset) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal weight preset: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(r.presetsTable), Item: item})
	return err
}

func (r *ConfigurationRepo) PutVerificationFlag(ctx context.Context, f *domain.VerificationFlag) error {
	item, err := attributevalue.MarshalMap(f)
	if err != nil {
		return fmt.Errorf("marshal verification flag: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(r.flagsTable), Item: item})
	return err
}
