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

// TableGet describes the keys requested from one table in a batch get.
// Keys are given either as bare hash-key scalars in Values, keyed under
// KeyAttr, or as full native keys in Keys; both may be combined.
type TableGet struct {
	// KeyAttr is the hash attribute name the Values are keyed under.
	// Required when Values is non-empty.
	KeyAttr string
	// Values holds bare hash-key scalars.
	Values []any
	// Keys holds full native keys, e.g. hash and range pairs.
	Keys []map[string]any
	// Attributes optionally projects results down to the named attributes.
	Attributes []string
	// ConsistentRead requests a strongly consistent read for this table.
	ConsistentRead bool
}

func (t TableGet) keysAndAttributes(table string) (types.KeysAndAttributes, error) {
	var zero types.KeysAndAttributes
	if len(t.Values) == 0 && len(t.Keys) == 0 {
		return zero, fmt.Errorf("batch get table %q: no keys requested", table)
	}
	if len(t.Values) > 0 && t.KeyAttr == "" {
		return zero, fmt.Errorf("batch get table %q: key values require a key attribute name", table)
	}

	keys := make([]map[string]types.AttributeValue, 0, len(t.Values)+len(t.Keys))
	for _, value := range t.Values {
		key, err := attrval.EncodeKey(map[string]any{t.KeyAttr: value})
		if err != nil {
			return zero, fmt.Errorf("batch get table %q: %w", table, err)
		}
		keys = append(keys, key)
	}
	for _, native := range t.Keys {
		key, err := attrval.EncodeKey(native)
		if err != nil {
			return zero, fmt.Errorf("batch get table %q: %w", table, err)
		}
		keys = append(keys, key)
	}

	bundle := types.KeysAndAttributes{
		Keys:            keys,
		AttributesToGet: t.Attributes,
	}
	if t.ConsistentRead {
		bundle.ConsistentRead = aws.Bool(true)
	}
	return bundle, nil
}

// BatchGet functions generate dynamodb batch get input data given some context.
type BatchGet func(context.Context) (*dynamodb.BatchGetItemInput, error)

// BatchGetItems builds a batch read from per-table key specs. The
// service may answer with a subset and report the remainder as
// unprocessed keys; resubmission is the caller's loop. No validation
// against service item or size limits is performed here.
func BatchGetItems(specs map[string]TableGet) BatchGet {
	return func(ctx context.Context) (*dynamodb.BatchGetItemInput, error) {
		input := &dynamodb.BatchGetItemInput{
			RequestItems: make(map[string]types.KeysAndAttributes, len(specs)),
		}
		for table, spec := range specs {
			bundle, err := spec.keysAndAttributes(table)
			if err != nil {
				return nil, err
			}
			input.RequestItems[table] = bundle
		}
		return input, nil
	}
}

// BatchGetOf builds a batch read by folding the provided point reads
// into one request.
func BatchGetOf(gets ...Get) BatchGet {
	op := BatchGet(func(ctx context.Context) (*dynamodb.BatchGetItemInput, error) {
		return &dynamodb.BatchGetItemInput{
			RequestItems: make(map[string]types.KeysAndAttributes),
		}, nil
	})
	modifiers := make([]BatchGetModifier, 0, len(gets))
	for _, get := range gets {
		modifiers = append(modifiers, get)
	}
	return op.Modify(modifiers...)
}

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (b BatchGet) Invoke(ctx context.Context) (*dynamodb.BatchGetItemInput, error) {
	return b(ctx)
}

// BatchGetModifier makes modifications to the input before the operation is executed.
type BatchGetModifier interface {
	// ModifyBatchGetItemInput is invoked when this modifier is applied to the provided input.
	ModifyBatchGetItemInput(context.Context, *dynamodb.BatchGetItemInput) error
}

// Modify adds modifying functions to the operation, transforming the
// input before it is executed.
func (b BatchGet) Modify(modifiers ...BatchGetModifier) BatchGet {
	mapper := func(ctx context.Context, input *dynamodb.BatchGetItemInput, mod BatchGetModifier) error {
		return mod.ModifyBatchGetItemInput(ctx, input)
	}
	return func(ctx context.Context) (*dynamodb.BatchGetItemInput, error) {
		return modify[dynamodb.BatchGetItemInput](ctx, b, newModifierGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (b BatchGet) Execute(ctx context.Context,
	getter faraday.BatchGetter, options ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	if input, err := b.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return getter.BatchGetItem(ctx, input, options...)
	}
}
