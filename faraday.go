// Package faraday is a client-side layer for DynamoDB. It converts
// native Go values to and from the service's tagged attribute-value
// union, builds per-operation request inputs from native items and key
// conditions, and normalizes the heterogeneous response shapes back
// into native structures with pagination cursors.
//
// The package performs no I/O of its own: every operation builds a
// fully-formed request input and consumes a fully-formed response
// output. The network round trip belongs to a client handle satisfying
// the narrow interfaces below; construct one with [NewClient] (or any
// *dynamodb.Client) and thread it explicitly through each Execute call.
package faraday

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is a wire-shaped item: attribute name to tagged attribute value.
type Item = map[string]types.AttributeValue

// Getter implements the dynamodb Get API.
type Getter interface {
	GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// Putter implements the dynamodb Put API.
type Putter interface {
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Deleter implements the dynamodb Delete API.
type Deleter interface {
	DeleteItem(context.Context, *dynamodb.DeleteItemInput, ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Querier implements the dynamodb Query API.
type Querier interface {
	Query(context.Context, *dynamodb.QueryInput, ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Scanner implements the dynamodb Scan API.
type Scanner interface {
	Scan(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// BatchGetter implements the dynamodb Batch Get API.
type BatchGetter interface {
	BatchGetItem(context.Context, *dynamodb.BatchGetItemInput, ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
}

// BatchWriter implements the dynamodb Batch Write API.
type BatchWriter interface {
	BatchWriteItem(context.Context, *dynamodb.BatchWriteItemInput, ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// TableDescriber implements the dynamodb Describe Table API.
type TableDescriber interface {
	DescribeTable(context.Context, *dynamodb.DescribeTableInput, ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}
