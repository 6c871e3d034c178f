package record

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Row is one unit of input data: field name -> untyped scalar.
type Row map[string]any

// Lookup returns the raw value for key and whether the key is present.
func (r Row) Lookup(key string) (any, bool) {
	if r == nil {
		return nil, false
	}

	v, ok := r[key]

	return v, ok
}

// Has returns true if the row contains key, even when its value is nil.
func (r Row) Has(key string) bool {
	_, ok := r.Lookup(key)
	return ok
}

// IsNull returns true if key is absent or holds nil.
func (r Row) IsNull(key string) bool {
	v, ok := r.Lookup(key)
	return !ok || v == nil
}

// String returns the stringified value for key, or "" when null.
func (r Row) String(key string) string {
	v, _ := r.Lookup(key)
	return Stringify(v)
}

// StringPtr returns the stringified value for key, or nil when null.
func (r Row) StringPtr(key string) *string {
	v, ok := r.Lookup(key)
	if !ok || v == nil {
		return nil
	}

	s := Stringify(v)

	return &s
}

// Stringify renders a scalar row value. nil renders as "".
// Floats use the shortest representation that round-trips.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case decimal.Decimal:
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
