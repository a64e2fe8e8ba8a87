// Package attrval converts native Go values to and from the tagged
// attribute-value union used on the wire (S, N, B, SS, NS, BS).
//
// Supported native values are strings, integers of any width, floats,
// byte slices, and non-empty homogeneous [Set] values of those scalars.
// Numbers travel as decimal text; whether a number decodes back to an
// int64 or a float64 is decided solely by the presence of a decimal
// point in the stored text, so Encode never emits a point for integral
// values and always emits one for floats. Decode(Encode(x)) == x for
// every accepted x.
package attrval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Set is a set of scalar members. Member order is insignificant; the
// service neither stores nor returns it. All members must share one
// scalar kind (string, number, or binary).
type Set []any

// NewSet returns a Set of the provided members.
func NewSet(members ...any) Set {
	return Set(members)
}

type scalarKind int

const (
	kindInvalid scalarKind = iota
	kindString
	kindNumber
	kindBinary
)

// Encode converts a native value into its tagged wire variant.
func Encode(value any) (types.AttributeValue, error) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil, ErrEmptyString
		}
		return &types.AttributeValueMemberS{Value: v}, nil
	case []byte:
		return &types.AttributeValueMemberB{Value: v}, nil
	case Set:
		return encodeSet(v)
	default:
		if n, ok := formatNumber(value); ok {
			return &types.AttributeValueMemberN{Value: n}, nil
		}
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

// Decode converts a tagged wire variant back into its native value.
// Numbers without a decimal point decode to int64, with one to float64;
// set variants decode to [Set].
func Decode(value types.AttributeValue) (any, error) {
	switch v := value.(type) {
	case *types.AttributeValueMemberS:
		return v.Value, nil
	case *types.AttributeValueMemberN:
		return parseNumber(v.Value)
	case *types.AttributeValueMemberB:
		return v.Value, nil
	case *types.AttributeValueMemberSS:
		set := make(Set, 0, len(v.Value))
		for _, member := range v.Value {
			set = append(set, member)
		}
		return set, nil
	case *types.AttributeValueMemberNS:
		set := make(Set, 0, len(v.Value))
		for _, member := range v.Value {
			n, err := parseNumber(member)
			if err != nil {
				return nil, err
			}
			set = append(set, n)
		}
		return set, nil
	case *types.AttributeValueMemberBS:
		set := make(Set, 0, len(v.Value))
		for _, member := range v.Value {
			set = append(set, member)
		}
		return set, nil
	default:
		return nil, fmt.Errorf("cannot decode attribute value of type %T", value)
	}
}

func encodeSet(set Set) (types.AttributeValue, error) {
	if len(set) == 0 {
		return nil, ErrEmptySet
	}

	kind := kindInvalid
	for _, member := range set {
		k, err := kindOf(member)
		if err != nil {
			return nil, err
		}
		if kind == kindInvalid {
			kind = k
		} else if k != kind {
			return nil, ErrHeterogeneousSet
		}
	}

	switch kind {
	case kindString:
		members := make([]string, 0, len(set))
		for _, member := range set {
			s := member.(string)
			if s == "" {
				return nil, fmt.Errorf("%w: set member", ErrEmptyString)
			}
			members = append(members, s)
		}
		return &types.AttributeValueMemberSS{Value: members}, nil
	case kindNumber:
		members := make([]string, 0, len(set))
		for _, member := range set {
			n, _ := formatNumber(member)
			members = append(members, n)
		}
		return &types.AttributeValueMemberNS{Value: members}, nil
	default:
		members := make([][]byte, 0, len(set))
		for _, member := range set {
			members = append(members, member.([]byte))
		}
		return &types.AttributeValueMemberBS{Value: members}, nil
	}
}

func kindOf(member any) (scalarKind, error) {
	switch member.(type) {
	case string:
		return kindString, nil
	case []byte:
		return kindBinary, nil
	default:
		if _, ok := formatNumber(member); ok {
			return kindNumber, nil
		}
		return kindInvalid, fmt.Errorf("%w: set member %T", ErrUnsupportedType, member)
	}
}

// formatNumber renders a numeric value in the minimal decimal text form
// that round-trips: integers never carry a decimal point, floats always
// carry one.
func formatNumber(value any) (string, bool) {
	switch v := value.(type) {
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return formatFloat(float64(v), 32), true
	case float64:
		return formatFloat(v, 64), true
	default:
		return "", false
	}
}

func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'f', -1, bits)
	// Integral floats still need the point so they decode back as floats.
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func parseNumber(text string) (any, error) {
	if strings.Contains(text, ".") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("parse number %q: %w", text, err)
		}
		return f, nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse number %q: %w", text, err)
	}
	return n, nil
}
