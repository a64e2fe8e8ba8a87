// Package result normalizes the per-operation response shapes into
// native structures. Each known output kind has its own constructor;
// adding a kind is a compile-time addition here, not a registration.
// Values embedded in a response decode through the attrval codec.
package result

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/barkanido/faraday/attrval"
	"github.com/barkanido/faraday/internal/xslices"
)

// ItemFrom decodes a point-read response into a native item. A miss is
// not an error: the returned item is nil when no item exists under the
// requested key.
func ItemFrom(output *dynamodb.GetItemOutput) (map[string]any, error) {
	if output == nil || output.Item == nil {
		return nil, nil
	}
	return attrval.DecodeItem(output.Item)
}

// Page is one page of query or scan results. LastKey is the native key
// to resume from; a nil LastKey marks the final page.
type Page struct {
	Items   []map[string]any
	Count   int32
	LastKey map[string]any
}

// Into unmarshals the page's raw items into a slice of typed records
// using the reflection unmarshaler.
func (p Page) Into(out any) error {
	items, err := xslices.MapSliceErr(p.Items, func(item map[string]any) (map[string]types.AttributeValue, error) {
		return attributevalue.MarshalMap(item)
	})
	if err != nil {
		return fmt.Errorf("remarshal page items: %w", err)
	}
	return attributevalue.UnmarshalListOfMaps(items, out)
}

// PageFrom normalizes a query response into a [Page].
func PageFrom(output *dynamodb.QueryOutput) (Page, error) {
	return page(output.Items, output.Count, output.LastEvaluatedKey)
}

// PageFromScan normalizes a scan response into a [Page]. Query and
// scan pages share one shape so callers paginate either the same way.
func PageFromScan(output *dynamodb.ScanOutput) (Page, error) {
	return page(output.Items, output.Count, output.LastEvaluatedKey)
}

func page(items []map[string]types.AttributeValue, count int32, lastKey map[string]types.AttributeValue) (Page, error) {
	decoded, err := xslices.MapSliceErr(items, attrval.DecodeItem)
	if err != nil {
		return Page{}, fmt.Errorf("decode page items: %w", err)
	}
	p := Page{Items: decoded, Count: count}
	if len(lastKey) > 0 {
		key, err := attrval.DecodeItem(lastKey)
		if err != nil {
			return Page{}, fmt.Errorf("decode last evaluated key: %w", err)
		}
		p.LastKey = key
	}
	return p, nil
}

// BatchGetResult is the normalized batch-read response: decoded items
// per table, plus the keys the service left unprocessed, grouped by
// table for caller-driven resubmission.
type BatchGetResult struct {
	Items       map[string][]map[string]any
	Unprocessed map[string][]map[string]any
}

// BatchGetFrom normalizes a batch-read response.
func BatchGetFrom(output *dynamodb.BatchGetItemOutput) (BatchGetResult, error) {
	result := BatchGetResult{
		Items:       make(map[string][]map[string]any, len(output.Responses)),
		Unprocessed: make(map[string][]map[string]any),
	}
	for table, items := range output.Responses {
		decoded, err := xslices.MapSliceErr(items, attrval.DecodeItem)
		if err != nil {
			return BatchGetResult{}, fmt.Errorf("decode batch get items for table %q: %w", table, err)
		}
		result.Items[table] = decoded
	}
	for table, bundle := range output.UnprocessedKeys {
		keys, err := xslices.MapSliceErr(bundle.Keys, attrval.DecodeItem)
		if err != nil {
			return BatchGetResult{}, fmt.Errorf("decode unprocessed keys for table %q: %w", table, err)
		}
		result.Unprocessed[table] = keys
	}
	return result, nil
}

// WriteOp is one unprocessed write from a batch response: a put of a
// native item or a delete of a native key.
type WriteOp struct {
	Put    map[string]any
	Delete map[string]any
}

// BatchWriteFrom normalizes a batch-write response into the writes the
// service left unprocessed, grouped by table with each table's relative
// order preserved. An empty map means every write was applied.
func BatchWriteFrom(output *dynamodb.BatchWriteItemOutput) (map[string][]WriteOp, error) {
	unprocessed := make(map[string][]WriteOp, len(output.UnprocessedItems))
	for table, requests := range output.UnprocessedItems {
		ops := make([]WriteOp, 0, len(requests))
		for _, request := range requests {
			switch {
			case request.PutRequest != nil:
				item, err := attrval.DecodeItem(request.PutRequest.Item)
				if err != nil {
					return nil, fmt.Errorf("decode unprocessed put for table %q: %w", table, err)
				}
				ops = append(ops, WriteOp{Put: item})
			case request.DeleteRequest != nil:
				key, err := attrval.DecodeItem(request.DeleteRequest.Key)
				if err != nil {
					return nil, fmt.Errorf("decode unprocessed delete for table %q: %w", table, err)
				}
				ops = append(ops, WriteOp{Delete: key})
			default:
				return nil, fmt.Errorf("unprocessed write for table %q carries neither put nor delete", table)
			}
		}
		unprocessed[table] = ops
	}
	return unprocessed, nil
}
