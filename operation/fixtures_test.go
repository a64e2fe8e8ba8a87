package operation_test

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ErrMock = errors.New("mock error")

type getter struct {
	output       dynamodb.GetItemOutput
	returnsError bool
}

func (g getter) GetItem(ctx context.Context, input *dynamodb.GetItemInput, options ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if g.returnsError {
		return nil, ErrMock
	}
	return &g.output, nil
}

type putter struct {
	input        *dynamodb.PutItemInput
	returnsError bool
}

func (p *putter) PutItem(ctx context.Context, input *dynamodb.PutItemInput, options ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if p.returnsError {
		return nil, ErrMock
	}
	p.input = input
	return &dynamodb.PutItemOutput{}, nil
}

type deleter struct {
	input        *dynamodb.DeleteItemInput
	returnsError bool
}

func (d *deleter) DeleteItem(ctx context.Context, input *dynamodb.DeleteItemInput, options ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if d.returnsError {
		return nil, ErrMock
	}
	d.input = input
	return &dynamodb.DeleteItemOutput{}, nil
}

type querier struct {
	output       dynamodb.QueryOutput
	returnsError bool
}

func (q querier) Query(ctx context.Context, input *dynamodb.QueryInput, options ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if q.returnsError {
		return nil, ErrMock
	}
	return &q.output, nil
}

// pagedScanner serves the provided pages in order, recording the
// exclusive start key of each request. The keys are captured per call
// because the pagination loop mutates one input in place.
type pagedScanner struct {
	pages     []*dynamodb.ScanOutput
	startKeys []map[string]types.AttributeValue
	calls     int
}

func (s *pagedScanner) Scan(ctx context.Context, input *dynamodb.ScanInput, options ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if s.calls >= len(s.pages) {
		return nil, ErrMock
	}
	s.startKeys = append(s.startKeys, input.ExclusiveStartKey)
	page := s.pages[s.calls]
	s.calls++
	return page, nil
}

type batchGetter struct {
	output       dynamodb.BatchGetItemOutput
	returnsError bool
}

func (b batchGetter) BatchGetItem(ctx context.Context, input *dynamodb.BatchGetItemInput, options ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	if b.returnsError {
		return nil, ErrMock
	}
	return &b.output, nil
}

type batchWriter struct {
	input        *dynamodb.BatchWriteItemInput
	returnsError bool
}

func (b *batchWriter) BatchWriteItem(ctx context.Context, input *dynamodb.BatchWriteItemInput, options ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	if b.returnsError {
		return nil, ErrMock
	}
	b.input = input
	return &dynamodb.BatchWriteItemOutput{}, nil
}
