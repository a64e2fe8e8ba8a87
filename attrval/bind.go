package attrval

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MarshalRecord converts a typed record into a wire-shaped item using
// the reflection marshaler and its `dynamodbav` struct tags. Use this
// for callers with typed models; [EncodeItem] remains the path for
// untyped native items and enforces the strict scalar/set taxonomy.
func MarshalRecord(record any) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(record)
}

// UnmarshalRecord fills a typed record from a wire-shaped item.
func UnmarshalRecord(item map[string]types.AttributeValue, out any) error {
	return attributevalue.UnmarshalMap(item, out)
}
