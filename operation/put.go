package operation

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/barkanido/faraday"
	"github.com/barkanido/faraday/attrval"
)

// Put functions generate dynamodb put input data given some context.
type Put func(context.Context) (*dynamodb.PutItemInput, error)

// PutItem builds a write of the provided native item. If the write
// carries an expectation (see [WithExpected]) and the service finds it
// unmet, the call fails with the service's conditional-check error,
// which passes through to the caller unchanged.
func PutItem(table string, item map[string]any, modifiers ...PutModifier) Put {
	op := Put(func(ctx context.Context) (*dynamodb.PutItemInput, error) {
		wire, err := attrval.EncodeItem(item)
		if err != nil {
			return nil, fmt.Errorf("put into table %q: %w", table, err)
		}
		return &dynamodb.PutItemInput{
			TableName: aws.String(table),
			Item:      wire,
		}, nil
	})
	if len(modifiers) > 0 {
		op = op.Modify(modifiers...)
	}
	return op
}

// WithExpected attaches a conditional expectation to the put. A native
// value of false means the attribute must currently be absent; any
// other value means the attribute must currently equal its encoding.
func WithExpected(expected map[string]any) PutModifier {
	return PutModifierFunc(func(ctx context.Context, input *dynamodb.PutItemInput) error {
		if len(expected) == 0 {
			return nil
		}
		if input.Expected == nil {
			input.Expected = make(map[string]types.ExpectedAttributeValue, len(expected))
		}
		for attr, value := range expected {
			if value == false {
				input.Expected[attr] = types.ExpectedAttributeValue{
					Exists: aws.Bool(false),
				}
				continue
			}
			encoded, err := attrval.Encode(value)
			if err != nil {
				return fmt.Errorf("expected attribute %q: %w", attr, err)
			}
			input.Expected[attr] = types.ExpectedAttributeValue{
				Value: encoded,
			}
		}
		return nil
	})
}

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (p Put) Invoke(ctx context.Context) (*dynamodb.PutItemInput, error) {
	return p(ctx)
}

// PutModifier makes modifications to the input before the operation is executed.
type PutModifier interface {
	// ModifyPutItemInput is invoked when this modifier is applied to the provided input.
	ModifyPutItemInput(context.Context, *dynamodb.PutItemInput) error
}

// PutModifierFunc is a function that implements PutModifier.
type PutModifierFunc modifier[dynamodb.PutItemInput]

func (p PutModifierFunc) ModifyPutItemInput(ctx context.Context, input *dynamodb.PutItemInput) error {
	return p(ctx, input)
}

// Modify adds modifying functions to the operation, transforming the
// input before it is executed.
func (p Put) Modify(modifiers ...PutModifier) Put {
	mapper := func(ctx context.Context, input *dynamodb.PutItemInput, mod PutModifier) error {
		return mod.ModifyPutItemInput(ctx, input)
	}
	return func(ctx context.Context) (*dynamodb.PutItemInput, error) {
		return modify[dynamodb.PutItemInput](ctx, p, newModifierGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (p Put) Execute(ctx context.Context,
	putter faraday.Putter, options ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if input, err := p.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return putter.PutItem(ctx, input, options...)
	}
}

// ModifyBatchWriteItemInput implements the BatchWriteModifier
// interface, folding this write into a batch write request. Any
// conditional expectation is dropped: batch writes carry none.
func (p Put) ModifyBatchWriteItemInput(ctx context.Context, input *dynamodb.BatchWriteItemInput) error {
	if input.RequestItems == nil {
		input.RequestItems = make(map[string][]types.WriteRequest)
	}
	put, err := p.Invoke(ctx)
	if err != nil {
		return err
	}
	if put.TableName == nil {
		return fmt.Errorf("put operation missing table name; cannot modify batch write input")
	}
	input.RequestItems[*put.TableName] = append(input.RequestItems[*put.TableName], types.WriteRequest{
		PutRequest: &types.PutRequest{Item: put.Item},
	})
	return nil
}
