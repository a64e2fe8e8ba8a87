package faraday

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// StartKey is the key of the last item evaluated by a query or scan
// page. Passed back as the exclusive start key, it resumes the
// operation on the following page.
type StartKey = map[string]types.AttributeValue

// StartKeyTokenProvider converts an evaluated start key into an
// opaque token suitable for handing to external callers.
type StartKeyTokenProvider interface {
	// GetStartKeyToken gets the opaque token for the provided [StartKey].
	GetStartKeyToken(context.Context, StartKey) (string, error)
}

// GetStartKeyToken gets the opaque token for the provided [StartKey].
// A nil start key returns an empty token.
func GetStartKeyToken(ctx context.Context, provider StartKeyTokenProvider, startKey StartKey) (string, error) {
	if startKey == nil {
		return "", nil
	}
	return provider.GetStartKeyToken(ctx, startKey)
}

// StartKeyProvider converts an opaque token back into a [StartKey].
type StartKeyProvider interface {
	// GetStartKey gets the start key from the provided token.
	GetStartKey(ctx context.Context, token string) (StartKey, error)
}

// GetStartKey gets the last evaluated key from the provided token.
// An empty token returns a nil start key.
func GetStartKey(ctx context.Context, provider StartKeyProvider, token string) (StartKey, error) {
	if token == "" {
		return nil, nil
	}
	return provider.GetStartKey(ctx, token)
}
