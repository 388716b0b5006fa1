package sqlexec

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// SerializeValue converts a raw database value into a JSON-safe primitive
// (nil, string, integer, float or bool). The checks run in order; anything
// unrecognized falls back to its string representation, so the function
// never fails.
func SerializeValue(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case string, bool,
		int, int8, int16, int32, int64,
		float32, float64:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case pgtype.Numeric:
		// Converted to float64, accepting potential precision loss.
		if f, err := v.Float64Value(); err == nil && f.Valid {
			return f.Float64
		}
		return fmt.Sprint(value)
	case [16]byte:
		return uuid.UUID(v).String()
	default:
		return fmt.Sprint(value)
	}
}

// SerializeRow builds a row map keyed exactly by columns, each value passed
// through SerializeValue. Column order on the wire is carried by the result's
// columns slice; the map itself is unordered.
func SerializeRow(columns []string, values []any) map[string]any {
	row := make(map[string]any, len(columns))
	for i, col := range columns {
		var value any
		if i < len(values) {
			value = values[i]
		}
		row[col] = SerializeValue(value)
	}
	return row
}
