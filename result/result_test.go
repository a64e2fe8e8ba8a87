package result_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/barkanido/faraday/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemFrom(t *testing.T) {
	t.Run("decodes the item", func(t *testing.T) {
		item, err := result.ItemFrom(&dynamodb.GetItemOutput{
			Item: map[string]types.AttributeValue{
				"id":  &types.AttributeValueMemberS{Value: "123"},
				"age": &types.AttributeValueMemberN{Value: "30"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": "123", "age": int64(30)}, item)
	})

	t.Run("a miss is a nil item, not an error", func(t *testing.T) {
		item, err := result.ItemFrom(&dynamodb.GetItemOutput{})
		require.NoError(t, err)
		assert.Nil(t, item)
	})
}

func TestPageFrom(t *testing.T) {
	t.Run("truncated page carries the native last key", func(t *testing.T) {
		page, err := result.PageFrom(&dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{
				{"id": &types.AttributeValueMemberS{Value: "a"}},
				{"id": &types.AttributeValueMemberS{Value: "b"}},
			},
			Count: 2,
			LastEvaluatedKey: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: "b"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, int32(2), page.Count)
		assert.Equal(t, []map[string]any{{"id": "a"}, {"id": "b"}}, page.Items)
		assert.Equal(t, map[string]any{"id": "b"}, page.LastKey)
	})

	t.Run("final page has no last key", func(t *testing.T) {
		page, err := result.PageFrom(&dynamodb.QueryOutput{Count: 0})
		require.NoError(t, err)
		assert.Nil(t, page.LastKey)
		assert.Empty(t, page.Items)
	})
}

func TestPageFromScanSharesTheShape(t *testing.T) {
	page, err := result.PageFromScan(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{
			{"id": &types.AttributeValueMemberS{Value: "a"}},
		},
		Count: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, result.Page{
		Items: []map[string]any{{"id": "a"}},
		Count: 1,
	}, page)
}

func TestPageInto(t *testing.T) {
	type event struct {
		ID string `dynamodbav:"id"`
		TS int64  `dynamodbav:"ts"`
	}

	page, err := result.PageFrom(&dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{
			{
				"id": &types.AttributeValueMemberS{Value: "a"},
				"ts": &types.AttributeValueMemberN{Value: "100"},
			},
		},
		Count: 1,
	})
	require.NoError(t, err)

	var events []event
	require.NoError(t, page.Into(&events))
	assert.Equal(t, []event{{ID: "a", TS: 100}}, events)
}

func TestBatchGetFrom(t *testing.T) {
	output := &dynamodb.BatchGetItemOutput{
		Responses: map[string][]map[string]types.AttributeValue{
			"customers": {
				{"id": &types.AttributeValueMemberS{Value: "123"}},
			},
		},
		UnprocessedKeys: map[string]types.KeysAndAttributes{
			"events": {
				Keys: []map[string]types.AttributeValue{
					{"id": &types.AttributeValueMemberS{Value: "a"}},
				},
			},
		},
	}

	got, err := result.BatchGetFrom(output)
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"id": "123"}}, got.Items["customers"])
	assert.Equal(t, []map[string]any{{"id": "a"}}, got.Unprocessed["events"])
}

func TestBatchWriteFrom(t *testing.T) {
	t.Run("unprocessed writes decode per table in order", func(t *testing.T) {
		output := &dynamodb.BatchWriteItemOutput{
			UnprocessedItems: map[string][]types.WriteRequest{
				"A": {
					{PutRequest: &types.PutRequest{Item: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: "i1"},
					}}},
					{DeleteRequest: &types.DeleteRequest{Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: "k1"},
					}}},
				},
			},
		}

		unprocessed, err := result.BatchWriteFrom(output)
		require.NoError(t, err)
		require.Len(t, unprocessed["A"], 2)
		assert.Equal(t, map[string]any{"id": "i1"}, unprocessed["A"][0].Put)
		assert.Equal(t, map[string]any{"id": "k1"}, unprocessed["A"][1].Delete)
	})

	t.Run("fully applied batch yields an empty map", func(t *testing.T) {
		unprocessed, err := result.BatchWriteFrom(&dynamodb.BatchWriteItemOutput{})
		require.NoError(t, err)
		assert.Empty(t, unprocessed)
	})
}
