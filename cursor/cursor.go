// Package cursor turns query and scan start keys into opaque tokens.
// [Encoded] derives the token from the key itself; [Store] persists the
// key remotely and hands out a short identifier. Both satisfy the
// provider contracts in the root package, so either plugs into
// operation.WithStartToken.
package cursor

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/barkanido/faraday"
)

// wireAttr is the JSON form of one tagged attribute value, mirroring
// the wire union so tokens round-trip without loss.
type wireAttr struct {
	S  *string  `json:"S,omitempty"`
	N  *string  `json:"N,omitempty"`
	B  []byte   `json:"B,omitempty"`
	SS []string `json:"SS,omitempty"`
	NS []string `json:"NS,omitempty"`
	BS [][]byte `json:"BS,omitempty"`
}

func marshalStartKey(key faraday.StartKey) ([]byte, error) {
	attrs := make(map[string]wireAttr, len(key))
	for name, value := range key {
		switch v := value.(type) {
		case *types.AttributeValueMemberS:
			attrs[name] = wireAttr{S: &v.Value}
		case *types.AttributeValueMemberN:
			attrs[name] = wireAttr{N: &v.Value}
		case *types.AttributeValueMemberB:
			attrs[name] = wireAttr{B: v.Value}
		case *types.AttributeValueMemberSS:
			attrs[name] = wireAttr{SS: v.Value}
		case *types.AttributeValueMemberNS:
			attrs[name] = wireAttr{NS: v.Value}
		case *types.AttributeValueMemberBS:
			attrs[name] = wireAttr{BS: v.Value}
		default:
			return nil, fmt.Errorf("start key attribute %q: cannot tokenize value of type %T", name, value)
		}
	}
	return json.Marshal(attrs)
}

func unmarshalStartKey(data []byte) (faraday.StartKey, error) {
	attrs := map[string]wireAttr{}
	if err := json.Unmarshal(data, &attrs); err != nil {
		return nil, fmt.Errorf("unmarshal start key: %w", err)
	}
	key := make(faraday.StartKey, len(attrs))
	for name, attr := range attrs {
		switch {
		case attr.S != nil:
			key[name] = &types.AttributeValueMemberS{Value: *attr.S}
		case attr.N != nil:
			key[name] = &types.AttributeValueMemberN{Value: *attr.N}
		case attr.B != nil:
			key[name] = &types.AttributeValueMemberB{Value: attr.B}
		case attr.SS != nil:
			key[name] = &types.AttributeValueMemberSS{Value: attr.SS}
		case attr.NS != nil:
			key[name] = &types.AttributeValueMemberNS{Value: attr.NS}
		case attr.BS != nil:
			key[name] = &types.AttributeValueMemberBS{Value: attr.BS}
		default:
			return nil, fmt.Errorf("start key attribute %q: no variant populated", name)
		}
	}
	return key, nil
}

// Encoded is a stateless token provider: the token is the start key
// itself, serialized and base64-encoded. Tokens are as long as the key
// but need no storage anywhere.
type Encoded struct{}

var (
	_ faraday.StartKeyProvider      = Encoded{}
	_ faraday.StartKeyTokenProvider = Encoded{}
)

// GetStartKeyToken implements faraday.StartKeyTokenProvider.
func (Encoded) GetStartKeyToken(_ context.Context, startKey faraday.StartKey) (string, error) {
	if len(startKey) == 0 {
		return "", nil
	}
	data, err := marshalStartKey(startKey)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// GetStartKey implements faraday.StartKeyProvider.
func (Encoded) GetStartKey(_ context.Context, token string) (faraday.StartKey, error) {
	if token == "" {
		return nil, nil
	}
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("decode start key token: %w", err)
	}
	return unmarshalStartKey(data)
}
