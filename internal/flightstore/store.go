// Package flightstore reads flight records from the DynamoDB flights table.
//
// Table structure:
//   - Primary key: flight_id (String)
//
// The table is the source of truth for the record schema; this package does
// not validate or type any field beyond the key.
package flightstore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Record is a schema-less flight item keyed by flight_id. Fields beyond the
// key (origin, destination, price, times, seats) are passed through
// unmodified.
type Record map[string]interface{}

// DynamoDBAPI is the subset of the DynamoDB client the store uses.
type DynamoDBAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// Store performs read-only lookups against the flights table. A single Store
// is created per process and reused across invocations.
type Store struct {
	client    DynamoDBAPI
	tableName string
}

// New connects to DynamoDB using the default credential chain.
func New(ctx context.Context, tableName string) (*Store, error) {
	awsConfig, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	return &Store{
		client:    dynamodb.NewFromConfig(awsConfig),
		tableName: tableName,
	}, nil
}

// NewWithClient builds a store around an existing client.
func NewWithClient(client DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
	}
}

// ListFlights reads the whole table in one unbounded scan, keeping the order
// DynamoDB returned. No pagination yet; large tables will need it.
func (s *Store) ListFlights(ctx context.Context) ([]Record, error) {
	response, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.tableName),
	})
	if err != nil {
		return nil, err
	}

	records := []Record{}
	err = attributevalue.UnmarshalListOfMaps(response.Items, &records)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// GetFlight looks up a single record by its primary key. A nil record with a
// nil error means no item matched.
func (s *Store) GetFlight(ctx context.Context, flightID string) (Record, error) {
	key, err := attributevalue.Marshal(flightID)
	if err != nil {
		return nil, err
	}

	response, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"flight_id": key,
		},
	})
	if err != nil {
		return nil, err
	}

	if response.Item == nil {
		return nil, nil
	}

	record := Record{}
	err = attributevalue.UnmarshalMap(response.Item, &record)
	if err != nil {
		return nil, err
	}

	return record, nil
}
