package operation

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/barkanido/faraday"
)

// Scan functions generate dynamodb scan input data given some context.
type Scan func(context.Context) (*dynamodb.ScanInput, error)

// ScanItems builds a full-table scan. Narrow the page size with
// [WithLimit] and resume from a prior page with [WithStartKey] or
// [WithStartToken].
func ScanItems(table string, modifiers ...ScanModifier) Scan {
	op := Scan(func(ctx context.Context) (*dynamodb.ScanInput, error) {
		return &dynamodb.ScanInput{
			TableName: aws.String(table),
		}, nil
	})
	if len(modifiers) > 0 {
		op = op.Modify(modifiers...)
	}
	return op
}

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (s Scan) Invoke(ctx context.Context) (*dynamodb.ScanInput, error) {
	return s(ctx)
}

// ScanModifier makes modifications to the scan input before the operation is executed.
type ScanModifier interface {
	// ModifyScanInput is invoked when this modifier is applied to the provided input.
	ModifyScanInput(context.Context, *dynamodb.ScanInput) error
}

// ScanModifierFunc is a function that implements ScanModifier.
type ScanModifierFunc modifier[dynamodb.ScanInput]

func (s ScanModifierFunc) ModifyScanInput(ctx context.Context, input *dynamodb.ScanInput) error {
	return s(ctx, input)
}

// Modify adds modifying functions to the operation, transforming the
// input before it is executed.
func (s Scan) Modify(modifiers ...ScanModifier) Scan {
	mapper := func(ctx context.Context, input *dynamodb.ScanInput, mod ScanModifier) error {
		return mod.ModifyScanInput(ctx, input)
	}
	return func(ctx context.Context) (*dynamodb.ScanInput, error) {
		return modify[dynamodb.ScanInput](ctx, s, newModifierGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (s Scan) Execute(ctx context.Context,
	scanner faraday.Scanner, options ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if input, err := s.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return scanner.Scan(ctx, input, options...)
	}
}

// PageScanCallback is invoked with each retrieved page. Return false
// to halt further page calls.
type PageScanCallback = func(context.Context, *dynamodb.ScanOutput) bool

// WithPagination creates an executor that exhaustively retrieves pages
// from the initial operation, feeding each response to the callback.
// The loop is caller-driven through the callback; no request is retried.
func (s Scan) WithPagination(callback PageScanCallback) ScanExecutor {
	return func(ctx context.Context, scanner faraday.Scanner, options ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
		input, err := s.Invoke(ctx)
		if err != nil {
			return nil, err
		}
		for {
			if output, err := scanner.Scan(ctx, input, options...); err != nil {
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

// ScanExecutor functions execute the dynamodb scan items API.
type ScanExecutor func(context.Context, faraday.Scanner, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)

// Execute invokes the scan items API using the provided scanner and options.
func (s ScanExecutor) Execute(ctx context.Context,
	scanner faraday.Scanner, options ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return s(ctx, scanner, options...)
}
