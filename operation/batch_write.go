package operation

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/barkanido/faraday"
	"github.com/barkanido/faraday/attrval"
)

// WriteEntry is one write in a batch: a put of a native item or a
// delete of a native key, against the named table. Exactly one of Put
// and Delete must be set.
type WriteEntry struct {
	Table  string
	Put    map[string]any
	Delete map[string]any
}

func (w WriteEntry) writeRequest() (types.WriteRequest, error) {
	var zero types.WriteRequest
	if w.Table == "" {
		return zero, fmt.Errorf("batch write entry missing table name")
	}
	switch {
	case w.Put != nil && w.Delete != nil:
		return zero, fmt.Errorf("batch write entry for table %q sets both put and delete", w.Table)
	case w.Put != nil:
		item, err := attrval.EncodeItem(w.Put)
		if err != nil {
			return zero, fmt.Errorf("batch write put into table %q: %w", w.Table, err)
		}
		return types.WriteRequest{PutRequest: &types.PutRequest{Item: item}}, nil
	case w.Delete != nil:
		key, err := attrval.EncodeKey(w.Delete)
		if err != nil {
			return zero, fmt.Errorf("batch write delete from table %q: %w", w.Table, err)
		}
		return types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: key}}, nil
	default:
		return zero, fmt.Errorf("batch write entry for table %q sets neither put nor delete", w.Table)
	}
}

// BatchWrite functions generate dynamodb batch write input data given some context.
type BatchWrite func(context.Context) (*dynamodb.BatchWriteItemInput, error)

// BatchWriteItems builds a batch write from the provided entries,
// grouping them by table and preserving each table's relative order.
// The batch provides no atomicity; unprocessed entries in the response
// are the caller's to resubmit, and no chunking against service limits
// is performed here.
func BatchWriteItems(entries ...WriteEntry) BatchWrite {
	return func(ctx context.Context) (*dynamodb.BatchWriteItemInput, error) {
		input := &dynamodb.BatchWriteItemInput{
			RequestItems: make(map[string][]types.WriteRequest),
		}
		for _, entry := range entries {
			request, err := entry.writeRequest()
			if err != nil {
				return nil, err
			}
			input.RequestItems[entry.Table] = append(input.RequestItems[entry.Table], request)
		}
		return input, nil
	}
}

// BatchWriteOf builds a batch write by folding the provided put and
// delete operations into one request.
func BatchWriteOf(ops ...BatchWriteModifier) BatchWrite {
	op := BatchWrite(func(ctx context.Context) (*dynamodb.BatchWriteItemInput, error) {
		return &dynamodb.BatchWriteItemInput{
			RequestItems: make(map[string][]types.WriteRequest),
		}, nil
	})
	return op.Modify(ops...)
}

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (b BatchWrite) Invoke(ctx context.Context) (*dynamodb.BatchWriteItemInput, error) {
	return b(ctx)
}

// BatchWriteModifier makes modifications to the input before the operation is executed.
type BatchWriteModifier interface {
	// ModifyBatchWriteItemInput is invoked when this modifier is applied to the provided input.
	ModifyBatchWriteItemInput(context.Context, *dynamodb.BatchWriteItemInput) error
}

// Modify adds modifying functions to the operation, transforming the
// input before it is executed.
func (b BatchWrite) Modify(modifiers ...BatchWriteModifier) BatchWrite {
	mapper := func(ctx context.Context, input *dynamodb.BatchWriteItemInput, mod BatchWriteModifier) error {
		return mod.ModifyBatchWriteItemInput(ctx, input)
	}
	return func(ctx context.Context) (*dynamodb.BatchWriteItemInput, error) {
		return modify[dynamodb.BatchWriteItemInput](ctx, b, newModifierGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (b BatchWrite) Execute(ctx context.Context,
	writer faraday.BatchWriter, options ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	if input, err := b.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return writer.BatchWriteItem(ctx, input, options...)
	}
}
