package attrval_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/barkanido/faraday/attrval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeScalars(t *testing.T) {
	type testcase struct {
		name  string
		value any
		want  types.AttributeValue
	}

	for _, tc := range []testcase{
		{
			name:  "string",
			value: "hello",
			want:  &types.AttributeValueMemberS{Value: "hello"},
		},
		{
			name:  "int",
			value: 42,
			want:  &types.AttributeValueMemberN{Value: "42"},
		},
		{
			name:  "negative int64",
			value: int64(-7),
			want:  &types.AttributeValueMemberN{Value: "-7"},
		},
		{
			name:  "uint",
			value: uint(7),
			want:  &types.AttributeValueMemberN{Value: "7"},
		},
		{
			name:  "float",
			value: 3.14,
			want:  &types.AttributeValueMemberN{Value: "3.14"},
		},
		{
			name:  "integral float keeps the point",
			value: 2.0,
			want:  &types.AttributeValueMemberN{Value: "2.0"},
		},
		{
			name:  "bytes",
			value: []byte{0x1, 0x2},
			want:  &types.AttributeValueMemberB{Value: []byte{0x1, 0x2}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := attrval.Encode(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	type testcase struct {
		name    string
		value   any
		wantErr error
	}

	for _, tc := range []testcase{
		{
			name:    "empty string",
			value:   "",
			wantErr: attrval.ErrEmptyString,
		},
		{
			name:    "empty set",
			value:   attrval.NewSet(),
			wantErr: attrval.ErrEmptySet,
		},
		{
			name:    "heterogeneous set",
			value:   attrval.NewSet("a", 1),
			wantErr: attrval.ErrHeterogeneousSet,
		},
		{
			name:    "unsupported type",
			value:   struct{}{},
			wantErr: attrval.ErrUnsupportedType,
		},
		{
			name:    "bool is unsupported",
			value:   true,
			wantErr: attrval.ErrUnsupportedType,
		},
		{
			name:    "unsupported set member",
			value:   attrval.NewSet(true),
			wantErr: attrval.ErrUnsupportedType,
		},
		{
			name:    "empty string inside set",
			value:   attrval.NewSet("a", ""),
			wantErr: attrval.ErrEmptyString,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := attrval.Encode(tc.value)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestEncodeSets(t *testing.T) {
	t.Run("string set", func(t *testing.T) {
		got, err := attrval.Encode(attrval.NewSet("a", "b"))
		require.NoError(t, err)
		ss, ok := got.(*types.AttributeValueMemberSS)
		require.True(t, ok)
		assert.ElementsMatch(t, []string{"a", "b"}, ss.Value)
	})

	t.Run("number set", func(t *testing.T) {
		got, err := attrval.Encode(attrval.NewSet(1, 2, 3))
		require.NoError(t, err)
		ns, ok := got.(*types.AttributeValueMemberNS)
		require.True(t, ok)
		assert.ElementsMatch(t, []string{"1", "2", "3"}, ns.Value)
	})

	t.Run("binary set", func(t *testing.T) {
		got, err := attrval.Encode(attrval.NewSet([]byte{0x1}, []byte{0x2}))
		require.NoError(t, err)
		bs, ok := got.(*types.AttributeValueMemberBS)
		require.True(t, ok)
		assert.ElementsMatch(t, [][]byte{{0x1}, {0x2}}, bs.Value)
	})

	t.Run("mixed number widths share the number kind", func(t *testing.T) {
		got, err := attrval.Encode(attrval.NewSet(int32(1), int64(2), 3.5))
		require.NoError(t, err)
		ns, ok := got.(*types.AttributeValueMemberNS)
		require.True(t, ok)
		assert.ElementsMatch(t, []string{"1", "2", "3.5"}, ns.Value)
	})
}

func TestDecode(t *testing.T) {
	type testcase struct {
		name  string
		value types.AttributeValue
		want  any
	}

	for _, tc := range []testcase{
		{
			name:  "string",
			value: &types.AttributeValueMemberS{Value: "hello"},
			want:  "hello",
		},
		{
			name:  "number without point decodes to integer",
			value: &types.AttributeValueMemberN{Value: "42"},
			want:  int64(42),
		},
		{
			name:  "number with point decodes to float",
			value: &types.AttributeValueMemberN{Value: "3.14"},
			want:  3.14,
		},
		{
			name:  "integral float stays a float",
			value: &types.AttributeValueMemberN{Value: "2.0"},
			want:  2.0,
		},
		{
			name:  "bytes",
			value: &types.AttributeValueMemberB{Value: []byte{0x1}},
			want:  []byte{0x1},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := attrval.Decode(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("malformed number", func(t *testing.T) {
		_, err := attrval.Decode(&types.AttributeValueMemberN{Value: "abc"})
		assert.Error(t, err)
	})

	t.Run("variant outside the model", func(t *testing.T) {
		_, err := attrval.Decode(&types.AttributeValueMemberBOOL{Value: true})
		assert.Error(t, err)
	})
}

func TestRoundTrip(t *testing.T) {
	type testcase struct {
		name  string
		value any
	}

	for _, tc := range []testcase{
		{name: "string", value: "hello"},
		{name: "integer", value: int64(42)},
		{name: "negative integer", value: int64(-1)},
		{name: "float", value: 3.14},
		{name: "integral float", value: 100.0},
		{name: "bytes", value: []byte("raw")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := attrval.Encode(tc.value)
			require.NoError(t, err)
			decoded, err := attrval.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tc.value, decoded)
		})
	}

	t.Run("number set membership survives regardless of order", func(t *testing.T) {
		encoded, err := attrval.Encode(attrval.NewSet(int64(3), int64(1), int64(2)))
		require.NoError(t, err)
		decoded, err := attrval.Decode(encoded)
		require.NoError(t, err)
		set, ok := decoded.(attrval.Set)
		require.True(t, ok)
		assert.ElementsMatch(t, attrval.Set{int64(1), int64(2), int64(3)}, set)
	})

	t.Run("string set", func(t *testing.T) {
		encoded, err := attrval.Encode(attrval.NewSet("b", "a"))
		require.NoError(t, err)
		decoded, err := attrval.Decode(encoded)
		require.NoError(t, err)
		assert.ElementsMatch(t, attrval.Set{"a", "b"}, decoded)
	})
}
