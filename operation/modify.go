package operation

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/barkanido/faraday"
	"github.com/barkanido/faraday/attrval"
)

type invoker[T any] interface {
	Invoke(context.Context) (*T, error)
}

type modifier[T any] func(context.Context, *T) error

type modifierGroup[T any] []modifier[T]

func (m modifierGroup[T]) Join() modifier[T] {
	return func(ctx context.Context, t *T) error {
		for _, mod := range m {
			if err := mod(ctx, t); err != nil {
				return err
			}
		}
		return nil
	}
}

func newModifierGroup[T any, U any](items []U, mapper func(context.Context, *T, U) error) modifierGroup[T] {
	group := make(modifierGroup[T], 0, len(items))
	for _, item := range items {
		item := item // capture per iteration; the go directive predates Go 1.22 loop semantics
		group = append(group, func(ctx context.Context, t *T) error {
			return mapper(ctx, t, item)
		})
	}
	return group
}

func modify[T any](ctx context.Context, invoker invoker[T], modifier modifier[T]) (*T, error) {
	if input, err := invoker.Invoke(ctx); err != nil {
		return nil, err
	} else if err := modifier(ctx, input); err != nil {
		return nil, err
	} else {
		return input, nil
	}
}

type withLimit int32

// ModifyQueryInput implements QueryModifier.
func (w withLimit) ModifyQueryInput(ctx context.Context, input *dynamodb.QueryInput) error {
	input.Limit = w.value()
	return nil
}

// ModifyScanInput implements ScanModifier.
func (w withLimit) ModifyScanInput(ctx context.Context, input *dynamodb.ScanInput) error {
	input.Limit = w.value()
	return nil
}

func (w withLimit) value() *int32 {
	value := int32(w)
	if value <= 0 {
		return nil
	}
	return aws.Int32(value)
}

// WithLimit caps the number of items returned by a query or scan page.
// Non-positive values are ignored.
func WithLimit(value int) withLimit {
	return withLimit(value)
}

type withStartKey map[string]any

// ModifyQueryInput implements QueryModifier.
func (w withStartKey) ModifyQueryInput(ctx context.Context, input *dynamodb.QueryInput) error {
	key, err := w.encode()
	if err != nil {
		return err
	}
	input.ExclusiveStartKey = key
	return nil
}

// ModifyScanInput implements ScanModifier.
func (w withStartKey) ModifyScanInput(ctx context.Context, input *dynamodb.ScanInput) error {
	key, err := w.encode()
	if err != nil {
		return err
	}
	input.ExclusiveStartKey = key
	return nil
}

func (w withStartKey) encode() (faraday.StartKey, error) {
	if len(w) == 0 {
		return nil, nil
	}
	return attrval.EncodeKey(w)
}

// WithStartKey resumes a query or scan from a prior page's last key.
// The native key is encoded as the exclusive start key; an empty key
// starts the operation from the beginning.
func WithStartKey(key map[string]any) withStartKey {
	return withStartKey(key)
}

type withStartToken struct {
	provider faraday.StartKeyProvider
	token    string
}

// ModifyQueryInput implements QueryModifier.
func (w withStartToken) ModifyQueryInput(ctx context.Context, input *dynamodb.QueryInput) error {
	key, err := faraday.GetStartKey(ctx, w.provider, w.token)
	if err != nil {
		return err
	}
	input.ExclusiveStartKey = key
	return nil
}

// ModifyScanInput implements ScanModifier.
func (w withStartToken) ModifyScanInput(ctx context.Context, input *dynamodb.ScanInput) error {
	key, err := faraday.GetStartKey(ctx, w.provider, w.token)
	if err != nil {
		return err
	}
	input.ExclusiveStartKey = key
	return nil
}

// WithStartToken resumes a query or scan from an opaque pagination
// token resolved through the provider.
func WithStartToken(token string, provider faraday.StartKeyProvider) withStartToken {
	return withStartToken{token: token, provider: provider}
}
