package sqlexec

import (
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeValuePrimitivesUnchanged(t *testing.T) {
	cases := []any{
		nil,
		"hello",
		true,
		false,
		int(7),
		int16(7),
		int32(7),
		int64(7),
		float32(1.5),
		float64(1.5),
	}

	for _, input := range cases {
		assert.Equal(t, input, SerializeValue(input))
	}
}

func TestSerializeValueBytesBecomeString(t *testing.T) {
	assert.Equal(t, "raw", SerializeValue([]byte("raw")))
}

func TestSerializeValueTimeRoundTrips(t *testing.T) {
	ts := time.Date(2024, 3, 17, 9, 30, 15, 123456000, time.UTC)

	out, ok := SerializeValue(ts).(string)
	require.True(t, ok)

	parsed, err := time.Parse(time.RFC3339Nano, out)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}

func TestSerializeValueNumericToFloat(t *testing.T) {
	n := pgtype.Numeric{Int: big.NewInt(12345), Exp: -2, Valid: true}

	out, ok := SerializeValue(n).(float64)
	require.True(t, ok)
	assert.InDelta(t, 123.45, out, 1e-9)
}

func TestSerializeValueUUIDCanonicalString(t *testing.T) {
	id := uuid.New()

	assert.Equal(t, id.String(), SerializeValue([16]byte(id)))
}

func TestSerializeValueFallbackStringifies(t *testing.T) {
	type odd struct{ A int }

	out, ok := SerializeValue(odd{A: 1}).(string)
	require.True(t, ok)
	assert.Equal(t, "{1}", out)
}

func TestSerializeRowKeySetMatchesColumns(t *testing.T) {
	columns := []string{"id", "name", "created_at"}
	values := []any{int64(1), []byte("analytics"), time.Now()}

	row := SerializeRow(columns, values)

	require.Len(t, row, len(columns))
	for _, col := range columns {
		assert.Contains(t, row, col)
	}
	assert.Equal(t, int64(1), row["id"])
	assert.Equal(t, "analytics", row["name"])
}

func TestSerializeRowMissingValuesBecomeNull(t *testing.T) {
	row := SerializeRow([]string{"a", "b"}, []any{int64(1)})

	require.Len(t, row, 2)
	assert.Equal(t, int64(1), row["a"])
	assert.Nil(t, row["b"])
}
