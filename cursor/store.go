package cursor

import (
	"context"
	"fmt"

	"github.com/barkanido/faraday"
	"github.com/barkanido/faraday/operation"
	"github.com/barkanido/faraday/result"
	"github.com/oklog/ulid/v2"
)

const (
	tokenAttr    = "token"
	startKeyAttr = "startKey"
)

// Client is the transport surface the stored provider needs.
type Client interface {
	faraday.Getter
	faraday.Putter
}

// Store hands out short ULID tokens and persists each start key as an
// item in a designated table, keyed by the token under the "token"
// attribute. Tokens stay compact no matter how wide the key is, at the
// cost of one extra round trip per page boundary.
type Store struct {
	table   string
	client  Client
	newULID func() string
}

var (
	_ faraday.StartKeyProvider      = Store{}
	_ faraday.StartKeyTokenProvider = Store{}
)

// NewStore returns a stored token provider writing to the named table.
func NewStore(table string, client Client) Store {
	return Store{
		table:   table,
		client:  client,
		newULID: func() string { return ulid.Make().String() },
	}
}

// GetStartKeyToken implements faraday.StartKeyTokenProvider.
func (s Store) GetStartKeyToken(ctx context.Context, startKey faraday.StartKey) (string, error) {
	if len(startKey) == 0 {
		return "", nil
	}
	data, err := marshalStartKey(startKey)
	if err != nil {
		return "", err
	}
	token := s.newULID()
	_, err = operation.PutItem(s.table, map[string]any{
		tokenAttr:    token,
		startKeyAttr: data,
	}).Execute(ctx, s.client)
	if err != nil {
		return "", fmt.Errorf("store start key for token %q: %w", token, err)
	}
	return token, nil
}

// GetStartKey implements faraday.StartKeyProvider. An unknown token
// resolves to a nil start key, restarting the operation from the top.
func (s Store) GetStartKey(ctx context.Context, token string) (faraday.StartKey, error) {
	if token == "" {
		return nil, nil
	}
	output, err := operation.GetItem(s.table, map[string]any{tokenAttr: token}).Execute(ctx, s.client)
	if err != nil {
		return nil, fmt.Errorf("resolve start key token %q: %w", token, err)
	}
	item, err := result.ItemFrom(output)
	if err != nil {
		return nil, fmt.Errorf("resolve start key token %q: %w", token, err)
	}
	if item == nil {
		return nil, nil
	}
	data, ok := item[startKeyAttr].([]byte)
	if !ok {
		return nil, fmt.Errorf("token %q: stored start key is not binary", token)
	}
	return unmarshalStartKey(data)
}
