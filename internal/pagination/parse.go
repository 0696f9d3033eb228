package pagination

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Build is the loosely typed entry point for callers holding raw input
// (decoded JSON, query values, maps). Numeric parameters may be Go numbers,
// json.Number or numeric strings; pageResults may be any slice or array.
// A nil pageSize selects DefaultPageSize. Validation order and errors match New.
func Build(pageResults, currentPage, totalResultCount, pageSize any) (Result[any], error) {
	items, ok := toSequence(pageResults)
	if !ok {
		return Result[any]{}, invalid(FieldPageResults)
	}

	page, ok := coerceInt(currentPage)
	if !ok || !isPositiveInteger(page, false) {
		return Result[any]{}, invalid(FieldCurrentPage)
	}

	if totalResultCount == nil {
		return Result[any]{}, invalid(FieldTotalResultCount)
	}
	total, ok := coerceInt(totalResultCount)
	if !ok || !isPositiveInteger(total, true) {
		return Result[any]{}, invalid(FieldTotalResultCount)
	}

	var opts []Option
	if pageSize != nil {
		// unparseable sizes become 0 so New reports them after the count checks
		size, _ := coerceInt(pageSize)
		opts = append(opts, WithPageSize(size))
	}

	return New(items, page, total, opts...)
}

// toSequence copies a slice or array into []any. Nil slices and non-sequence
// values (maps, strings, scalars) are rejected.
func toSequence(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if items, ok := v.([]any); ok {
		return items, items != nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil, false
		}
	case reflect.Array:
	default:
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// decimalForm matches plain decimal and exponent notation. Hex, octal,
// binary and digit separators do not match.
var decimalForm = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// maxExactFloat is the largest magnitude below which every integer has an
// exact float64 representation.
const maxExactFloat = 1 << 53

// coerceInt converts v to an int if it holds an integral number.
// Integer kinds are range checked without a float round trip. Strings parse as
// base-10 integers first and only then as decimal floats.
// Fractions, NaN, infinities and non-numeric values fail.
func coerceInt(v any) (int, bool) {
	switch x := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		return parseIntString(x)
	case json.Number:
		return parseIntString(x.String())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n > math.MaxInt || n < math.MinInt {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	default:
		return 0, false
	}
}

func parseIntString(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if !decimalForm.MatchString(s) {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 0); err == nil {
		return int(n), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return floatToInt(f)
}

// floatToInt accepts only integral values small enough to be exact.
func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if math.Abs(f) > maxExactFloat {
		return 0, false
	}
	return int(f), true
}
