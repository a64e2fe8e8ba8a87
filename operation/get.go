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

// Get functions generate dynamodb get input data given some context.
type Get func(context.Context) (*dynamodb.GetItemInput, error)

// GetItem builds a point read for the item under the provided native
// key.
func GetItem(table string, key map[string]any) Get {
	return func(ctx context.Context) (*dynamodb.GetItemInput, error) {
		wire, err := attrval.EncodeKey(key)
		if err != nil {
			return nil, fmt.Errorf("get from table %q: %w", table, err)
		}
		return &dynamodb.GetItemInput{
			TableName: aws.String(table),
			Key:       wire,
		}, nil
	}
}

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (g Get) Invoke(ctx context.Context) (*dynamodb.GetItemInput, error) {
	return g(ctx)
}

// GetModifier makes modifications to the input before the operation is executed.
type GetModifier interface {
	// ModifyGetItemInput is invoked when this modifier is applied to the provided input.
	ModifyGetItemInput(context.Context, *dynamodb.GetItemInput) error
}

// GetModifierFunc is a function that implements GetModifier.
type GetModifierFunc modifier[dynamodb.GetItemInput]

func (g GetModifierFunc) ModifyGetItemInput(ctx context.Context, input *dynamodb.GetItemInput) error {
	return g(ctx, input)
}

// Modify adds modifying functions to the operation, transforming the
// input before it is executed.
func (g Get) Modify(modifiers ...GetModifier) Get {
	mapper := func(ctx context.Context, input *dynamodb.GetItemInput, mod GetModifier) error {
		return mod.ModifyGetItemInput(ctx, input)
	}
	return func(ctx context.Context) (*dynamodb.GetItemInput, error) {
		return modify[dynamodb.GetItemInput](ctx, g, newModifierGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (g Get) Execute(ctx context.Context,
	getter faraday.Getter, options ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if input, err := g.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return getter.GetItem(ctx, input, options...)
	}
}

// ModifyBatchGetItemInput implements the BatchGetModifier interface,
// folding this point read into a batch get request.
func (g Get) ModifyBatchGetItemInput(ctx context.Context, input *dynamodb.BatchGetItemInput) error {
	if input.RequestItems == nil {
		input.RequestItems = map[string]types.KeysAndAttributes{}
	}
	get, err := g.Invoke(ctx)
	if err != nil {
		return err
	}
	if get.TableName == nil {
		return fmt.Errorf("get operation missing table name; cannot modify batch get input")
	}
	requests := input.RequestItems[*get.TableName]
	requests.Keys = append(requests.Keys, get.Key)
	input.RequestItems[*get.TableName] = requests
	return nil
}
