package operation

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/barkanido/faraday"
	"github.com/barkanido/faraday/keycond"
)

// Query functions generate dynamodb query input data given some context.
type Query func(context.Context) (*dynamodb.QueryInput, error)

// QueryItems builds a query against the table's hash attribute. The
// hash condition is always equality with exactly one value; narrow the
// result with [WithRangeCondition] and the other query modifiers.
func QueryItems(table string, hashAttr string, hashValue any, modifiers ...QueryModifier) Query {
	op := Query(func(ctx context.Context) (*dynamodb.QueryInput, error) {
		hash, err := keycond.Hash(hashAttr, hashValue)
		if err != nil {
			return nil, fmt.Errorf("query table %q: %w", table, err)
		}
		return &dynamodb.QueryInput{
			TableName:     aws.String(table),
			KeyConditions: hash,
		}, nil
	})
	if len(modifiers) > 0 {
		op = op.Modify(modifiers...)
	}
	return op
}

// WithRangeCondition adds a comparison on the table's range attribute.
// The operator symbol is normalized through [keycond.Normalize]; see
// [keycond.Range] for the end-value rules.
func WithRangeCondition(attr string, operator string, value any, end ...any) QueryModifier {
	return QueryModifierFunc(func(ctx context.Context, input *dynamodb.QueryInput) error {
		rng, err := keycond.Range(attr, operator, value, end...)
		if err != nil {
			return err
		}
		input.KeyConditions = keycond.Merge(input.KeyConditions, rng)
		return nil
	})
}

// WithDescending reverses the traversal order of the range attribute.
// The default order is ascending.
func WithDescending() QueryModifier {
	return QueryModifierFunc(func(ctx context.Context, input *dynamodb.QueryInput) error {
		input.ScanIndexForward = aws.Bool(false)
		return nil
	})
}

// WithConsistentRead requests a strongly consistent read.
func WithConsistentRead(consistent bool) QueryModifier {
	return QueryModifierFunc(func(ctx context.Context, input *dynamodb.QueryInput) error {
		input.ConsistentRead = aws.Bool(consistent)
		return nil
	})
}

// WithAttributes projects the result down to the named attributes.
func WithAttributes(names ...string) QueryModifier {
	return QueryModifierFunc(func(ctx context.Context, input *dynamodb.QueryInput) error {
		input.AttributesToGet = names
		return nil
	})
}

// WithIndex targets the named secondary index instead of the table.
func WithIndex(name string) QueryModifier {
	return QueryModifierFunc(func(ctx context.Context, input *dynamodb.QueryInput) error {
		input.IndexName = aws.String(name)
		return nil
	})
}

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (q Query) Invoke(ctx context.Context) (*dynamodb.QueryInput, error) {
	return q(ctx)
}

// QueryModifier makes modifications to the input before the operation is executed.
type QueryModifier interface {
	// ModifyQueryInput is invoked when this modifier is applied to the provided input.
	ModifyQueryInput(context.Context, *dynamodb.QueryInput) error
}

// QueryModifierFunc is a function that implements QueryModifier.
type QueryModifierFunc modifier[dynamodb.QueryInput]

func (q QueryModifierFunc) ModifyQueryInput(ctx context.Context, input *dynamodb.QueryInput) error {
	return q(ctx, input)
}

// Modify adds modifying functions to the operation, transforming the
// input before it is executed.
func (q Query) Modify(modifiers ...QueryModifier) Query {
	mapper := func(ctx context.Context, input *dynamodb.QueryInput, mod QueryModifier) error {
		return mod.ModifyQueryInput(ctx, input)
	}
	return func(ctx context.Context) (*dynamodb.QueryInput, error) {
		return modify[dynamodb.QueryInput](ctx, q, newModifierGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (q Query) Execute(ctx context.Context,
	querier faraday.Querier, options ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if input, err := q.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return querier.Query(ctx, input, options...)
	}
}

// PageQueryCallback is invoked with each retrieved page. Return false
// to halt further page calls.
type PageQueryCallback = func(context.Context, *dynamodb.QueryOutput) bool

// WithPagination creates an executor that exhaustively retrieves pages
// from the initial operation, feeding each response to the callback.
// The loop is caller-driven through the callback; no request is retried.
func (q Query) WithPagination(callback PageQueryCallback) QueryExecutor {
	return func(ctx context.Context, querier faraday.Querier, options ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
		input, err := q.Invoke(ctx)
		if err != nil {
			return nil, err
		}
		for {
			if output, err := querier.Query(ctx, input, options...); err != nil {
				return nil, err
			} else if ok := callback(ctx, output); !ok {
				return output, nil
			} else if output.LastEvaluatedKey == nil {
				return output, nil
			} else {
				input.ExclusiveStartKey = output.LastEvaluatedKey
			}
		}
	}
}

// QueryExecutor functions execute the dynamodb query items API.
type QueryExecutor func(context.Context, faraday.Querier, ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)

// Execute invokes the query items API using the provided querier and options.
func (q QueryExecutor) Execute(ctx context.Context,
	querier faraday.Querier, options ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return q(ctx, querier, options...)
}
