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

// Delete functions generate dynamodb delete input data given some context.
type Delete func(context.Context) (*dynamodb.DeleteItemInput, error)

// DeleteItem builds a point delete of the item under the provided
// native key.
func DeleteItem(table string, key map[string]any) Delete {
	return func(ctx context.Context) (*dynamodb.DeleteItemInput, error) {
		wire, err := attrval.EncodeKey(key)
		if err != nil {
			return nil, fmt.Errorf("delete from table %q: %w", table, err)
		}
		return &dynamodb.DeleteItemInput{
			TableName: aws.String(table),
			Key:       wire,
		}, nil
	}
}

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (d Delete) Invoke(ctx context.Context) (*dynamodb.DeleteItemInput, error) {
	return d(ctx)
}

// DeleteModifier makes modifications to the input before the operation is executed.
type DeleteModifier interface {
	// ModifyDeleteItemInput is invoked when this modifier is applied to the provided input.
	ModifyDeleteItemInput(context.Context, *dynamodb.DeleteItemInput) error
}

// DeleteModifierFunc is a function that implements DeleteModifier.
type DeleteModifierFunc modifier[dynamodb.DeleteItemInput]

func (d DeleteModifierFunc) ModifyDeleteItemInput(ctx context.Context, input *dynamodb.DeleteItemInput) error {
	return d(ctx, input)
}

// Modify adds modifying functions to the operation, transforming the
// input before it is executed.
func (d Delete) Modify(modifiers ...DeleteModifier) Delete {
	mapper := func(ctx context.Context, input *dynamodb.DeleteItemInput, mod DeleteModifier) error {
		return mod.ModifyDeleteItemInput(ctx, input)
	}
	return func(ctx context.Context) (*dynamodb.DeleteItemInput, error) {
		return modify[dynamodb.DeleteItemInput](ctx, d, newModifierGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (d Delete) Execute(ctx context.Context,
	deleter faraday.Deleter, options ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if input, err := d.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return deleter.DeleteItem(ctx, input, options...)
	}
}

// ModifyBatchWriteItemInput implements the BatchWriteModifier
// interface, folding this delete into a batch write request.
func (d Delete) ModifyBatchWriteItemInput(ctx context.Context, input *dynamodb.BatchWriteItemInput) error {
	if input.RequestItems == nil {
		input.RequestItems = make(map[string][]types.WriteRequest)
	}
	del, err := d.Invoke(ctx)
	if err != nil {
		return err
	}
	if del.TableName == nil {
		return fmt.Errorf("delete operation missing table name; cannot modify batch write input")
	}
	input.RequestItems[*del.TableName] = append(input.RequestItems[*del.TableName], types.WriteRequest{
		DeleteRequest: &types.DeleteRequest{Key: del.Key},
	})
	return nil
}
