// Package keycond builds key conditions for query operations: an
// equality condition on the hash attribute, an optional comparison on
// the range attribute, and the merge of both into the request's
// key-condition map.
package keycond

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/barkanido/faraday/attrval"
)

// Conditions maps an attribute name to its comparison condition. A
// query carries one entry for the hash attribute and at most one more
// for the range attribute, so merging never collides.
type Conditions = map[string]types.Condition

// operators maps comparison symbols to their wire operators. Symbols
// outside the table are upper-cased and passed through unchanged, which
// admits service-level operators such as BEGINS_WITH without this
// package enumerating them.
var operators = map[string]types.ComparisonOperator{
	">":  types.ComparisonOperatorGt,
	">=": types.ComparisonOperatorGe,
	"<":  types.ComparisonOperatorLt,
	"<=": types.ComparisonOperatorLe,
	"=":  types.ComparisonOperatorEq,
}

// Normalize converts a comparison symbol into its wire operator.
func Normalize(symbol string) types.ComparisonOperator {
	if op, ok := operators[symbol]; ok {
		return op
	}
	return types.ComparisonOperator(strings.ToUpper(symbol))
}

func normalized(op types.ComparisonOperator) bool {
	for _, known := range operators {
		if op == known {
			return true
		}
	}
	return false
}

// Hash builds the hash-key condition: equality against exactly one
// encoded value.
func Hash(attr string, value any) (Conditions, error) {
	encoded, err := attrval.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("hash condition %q: %w", attr, err)
	}
	return Conditions{
		attr: {
			ComparisonOperator: types.ComparisonOperatorEq,
			AttributeValueList: []types.AttributeValue{encoded},
		},
	}, nil
}

// Range builds the range-key condition. The operator symbol is run
// through [Normalize]. At most one end value is accepted, and only
// alongside a passthrough operator: this package composes no BETWEEN
// semantics, so an end value paired with one of the five comparison
// operators is a caller error rather than a guess.
func Range(attr string, operator string, value any, end ...any) (Conditions, error) {
	if len(end) > 1 {
		return nil, fmt.Errorf("range condition %q: at most one end value, got %d", attr, len(end))
	}

	op := Normalize(operator)
	if len(end) == 1 && normalized(op) {
		return nil, fmt.Errorf("range condition %q: operator %s takes a single value", attr, op)
	}

	values := make([]types.AttributeValue, 0, 1+len(end))
	encoded, err := attrval.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("range condition %q: %w", attr, err)
	}
	values = append(values, encoded)

	for _, v := range end {
		encoded, err := attrval.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("range condition %q: %w", attr, err)
		}
		values = append(values, encoded)
	}

	return Conditions{
		attr: {
			ComparisonOperator: op,
			AttributeValueList: values,
		},
	}, nil
}

// Merge combines the hash condition with an optional range condition.
// A nil range condition yields the hash condition alone.
func Merge(hash Conditions, rng Conditions) Conditions {
	if len(rng) == 0 {
		return hash
	}
	merged := make(Conditions, len(hash)+len(rng))
	for attr, cond := range hash {
		merged[attr] = cond
	}
	for attr, cond := range rng {
		merged[attr] = cond
	}
	return merged
}
