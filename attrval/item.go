package attrval

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// EncodeItem applies [Encode] across a native item, producing the
// wire-shaped attribute map. Attribute names pass through unchanged.
func EncodeItem(item map[string]any) (map[string]types.AttributeValue, error) {
	encoded := make(map[string]types.AttributeValue, len(item))
	for name, value := range item {
		av, err := Encode(value)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		encoded[name] = av
	}
	return encoded, nil
}

// EncodeKey encodes the key subset of an item. Keys share the item
// encoding; the separate name marks call sites that carry only the
// hash attribute (and range attribute, if the table declares one).
func EncodeKey(key map[string]any) (map[string]types.AttributeValue, error) {
	return EncodeItem(key)
}

// DecodeItem applies [Decode] across a wire-shaped attribute map. A nil
// or empty input decodes to an empty native item, not an error.
func DecodeItem(item map[string]types.AttributeValue) (map[string]any, error) {
	decoded := make(map[string]any, len(item))
	for name, av := range item {
		value, err := Decode(av)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		decoded[name] = value
	}
	return decoded, nil
}
