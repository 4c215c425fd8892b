package tokencache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbTypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of the DynamoDB client used by DynamoDB.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, opts ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type cacheItem struct {
	Key       string `dynamodbav:"PK"`
	Value     string `dynamodbav:"value"`
	ExpiresAt int64  `dynamodbav:"ttl"`
}

// DynamoDB stores entries in a single-key table. The "ttl" attribute is
// meant to be registered as the table's TTL attribute; because DynamoDB
// deletes expired items lazily, Get also checks expiry itself.
type DynamoDB struct {
	table   string
	cli     DynamoAPI
	nowFunc func() time.Time
}

// DynamoOption configures a DynamoDB cache.
type DynamoOption func(*DynamoDB)

// WithDynamoNowFunc overrides the time function for testing.
func WithDynamoNowFunc(f func() time.Time) DynamoOption {
	return func(d *DynamoDB) {
		d.nowFunc = f
	}
}

// NewDynamoDB creates a DynamoDB-backed cache on table.
func NewDynamoDB(table string, cli DynamoAPI, opts ...DynamoOption) *DynamoDB {
	d := &DynamoDB{table: table, cli: cli, nowFunc: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// EnsureTable creates the table if it does not exist yet.
func (d *DynamoDB) EnsureTable(ctx context.Context) error {
	_, err := d.cli.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(d.table),
		AttributeDefinitions: []ddbTypes.AttributeDefinition{
			{AttributeName: aws.String("PK"), AttributeType: ddbTypes.ScalarAttributeTypeS},
		},
		KeySchema: []ddbTypes.KeySchemaElement{
			{AttributeName: aws.String("PK"), KeyType: ddbTypes.KeyTypeHash},
		},
		BillingMode: ddbTypes.BillingModePayPerRequest,
	})
	var inUse *ddbTypes.ResourceInUseException
	if err != nil && !errors.As(err, &inUse) {
		return fmt.Errorf("creating dynamodb table %s: %w", d.table, err)
	}
	return nil
}

// Get implements Cache.
func (d *DynamoDB) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := d.cli.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.table),
		ConsistentRead: aws.Bool(true),
		Key: map[string]ddbTypes.AttributeValue{
			"PK": &ddbTypes.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return "", false, fmt.Errorf("dynamodb get %s: %w", key, err)
	}
	if out.Item == nil {
		return "", false, nil
	}

	var item cacheItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return "", false, fmt.Errorf("decoding dynamodb item %s: %w", key, err)
	}
	if d.nowFunc().Unix() >= item.ExpiresAt {
		return "", false, nil
	}
	return item.Value, true, nil
}

// Set implements Cache.
func (d *DynamoDB) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	av, err := attributevalue.MarshalMap(cacheItem{
		Key:       key,
		Value:     value,
		ExpiresAt: d.nowFunc().Add(ttl).Unix(),
	})
	if err != nil {
		return fmt.Errorf("encoding dynamodb item %s: %w", key, err)
	}

	if _, err := d.cli.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("dynamodb put %s: %w", key, err)
	}
	return nil
}

// Delete implements Cache.
func (d *DynamoDB) Delete(ctx context.Context, key string) error {
	if _, err := d.cli.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.table),
		Key: map[string]ddbTypes.AttributeValue{
			"PK": &ddbTypes.AttributeValueMemberS{Value: key},
		},
	}); err != nil {
		return fmt.Errorf("dynamodb delete %s: %w", key, err)
	}
	return nil
}
