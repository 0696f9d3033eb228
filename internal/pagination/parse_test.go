package pagination_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/series-catalog-service/internal/pagination"
)

func TestBuild_ExampleScenarios(t *testing.T) {
	t.Run("three items of twenty three", func(t *testing.T) {
		res, err := pagination.Build([]string{"a", "b", "c"}, 1, 23, 10)
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b", "c"}, res.PageResults())
		assert.Equal(t, 1, res.CurrentPage())
		assert.Equal(t, 23, res.TotalResultCount())
		assert.Equal(t, 10, res.PageSize())
		assert.Equal(t, 3, res.TotalPageCount())
	})

	t.Run("empty with default size", func(t *testing.T) {
		res, err := pagination.Build([]any{}, 1, 0, nil)
		require.NoError(t, err)
		assert.Empty(t, res.PageResults())
		assert.Equal(t, 1, res.CurrentPage())
		assert.Equal(t, 0, res.TotalResultCount())
		assert.Equal(t, 10, res.PageSize())
		assert.Equal(t, 1, res.TotalPageCount())
	})

	t.Run("default size participates in ceiling", func(t *testing.T) {
		res, err := pagination.Build([]int{1}, 1, 31, nil)
		require.NoError(t, err)
		assert.Equal(t, 4, res.TotalPageCount())
	})
}

func TestBuild_NumericInputsAreEquivalent(t *testing.T) {
	want, err := pagination.Build([]int{1, 2}, 2, 23, 10)
	require.NoError(t, err)

	cases := []struct {
		name  string
		page  any
		total any
		size  any
	}{
		{"numeric strings", "2", "23", "10"},
		{"padded strings", " 2 ", "23\n", "10"},
		{"floats", 2.0, float32(23), 10.0},
		{"sized ints", int64(2), uint8(23), int16(10)},
		{"json numbers", json.Number("2"), json.Number("23"), json.Number("10")},
		{"decimal forms", "2.0", "2.3e1", "1e1"},
		{"signed and padded zeros", "+2", "023", "10.000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pagination.Build([]int{1, 2}, tc.page, tc.total, tc.size)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestBuild_LargeIntegersKeepPrecision(t *testing.T) {
	const big = 9007199254740993 // 2^53 + 1, not exact as float64

	cases := []struct {
		name  string
		total any
	}{
		{"int64", int64(big)},
		{"uint64", uint64(big)},
		{"string", "9007199254740993"},
		{"json number", json.Number("9007199254740993")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := pagination.Build([]int{}, 1, tc.total, 1)
			require.NoError(t, err)
			assert.Equal(t, big, res.TotalResultCount())
			assert.Equal(t, big, res.TotalPageCount())
		})
	}

	t.Run("page", func(t *testing.T) {
		res, err := pagination.Build([]int{}, int64(big), 10, nil)
		require.NoError(t, err)
		assert.Equal(t, big, res.CurrentPage())
	})
}

func TestBuild_AcceptsArrays(t *testing.T) {
	res, err := pagination.Build([2]string{"x", "y"}, 1, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []any{"x", "y"}, res.PageResults())
	assert.Equal(t, 2, res.TotalPageCount())
}

func TestBuild_ValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		items   any
		page    any
		total   any
		size    any
		wantMsg string
	}{
		{"nil results", nil, 1, 0, nil, "invalid pageResults"},
		{"nil typed slice", []int(nil), 1, 0, nil, "invalid pageResults"},
		{"map results", map[string]int{"a": 1}, 1, 1, nil, "invalid pageResults"},
		{"string results", "abc", 1, 3, nil, "invalid pageResults"},
		{"scalar results", 42, 1, 1, nil, "invalid pageResults"},

		{"page zero", []int{}, 0, 0, nil, "invalid currentPage"},
		{"page negative", []int{}, -1, 0, nil, "invalid currentPage"},
		{"page fraction", []int{}, 2.5, 0, nil, "invalid currentPage"},
		{"page fraction string", []int{}, "2.5", 0, nil, "invalid currentPage"},
		{"page non-numeric", []int{}, "abc", 0, nil, "invalid currentPage"},
		{"page empty string", []int{}, "", 0, nil, "invalid currentPage"},
		{"page nil", []int{}, nil, 0, nil, "invalid currentPage"},
		{"page bool", []int{}, true, 0, nil, "invalid currentPage"},
		{"page digit separator", []int{}, "1_0", 0, nil, "invalid currentPage"},
		{"page hex float", []int{}, "0x1p4", 0, nil, "invalid currentPage"},
		{"page hex int", []int{}, "0x10", 0, nil, "invalid currentPage"},
		{"page infinity", []int{}, "Inf", 0, nil, "invalid currentPage"},
		{"page float beyond exact range", []int{}, 9007199254740994.0, 0, nil, "invalid currentPage"},
		{"page float string beyond exact range", []int{}, "9007199254740993.0", 0, nil, "invalid currentPage"},
		{"page uint overflow", []int{}, uint64(math.MaxUint64), 0, nil, "invalid currentPage"},

		{"total nil", []int{}, 1, nil, nil, "invalid totalResultCount"},
		{"total negative", []int{}, 1, -4, nil, "invalid totalResultCount"},
		{"total fraction", []int{}, 1, 3.5, nil, "invalid totalResultCount"},
		{"total non-numeric", []int{}, 1, "many", nil, "invalid totalResultCount"},
		{"total digit separator", []int{}, 1, "1_000", nil, "invalid totalResultCount"},
		{"total below length", []int{1, 2, 3, 4, 5}, 1, 3, nil,
			"inconsistent state: totalResultCount < pageResults length (3/5)"},
		{"total string below length", []int{1, 2, 3, 4, 5}, 1, "3", nil,
			"inconsistent state: totalResultCount < pageResults length (3/5)"},

		{"size zero", []int{}, 1, 0, 0, "invalid pageSize"},
		{"size negative", []int{}, 1, 0, -5, "invalid pageSize"},
		{"size fraction", []int{}, 1, 0, 2.5, "invalid pageSize"},
		{"size non-numeric", []int{}, 1, 0, "ten", "invalid pageSize"},
		{"size binary literal", []int{}, 1, 0, "0b101", "invalid pageSize"},
		{"size checked last", []int{1, 2}, 1, 1, "ten",
			"inconsistent state: totalResultCount < pageResults length (1/2)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pagination.Build(tc.items, tc.page, tc.total, tc.size)
			require.Error(t, err)
			assert.ErrorIs(t, err, pagination.ErrValidation)
			assert.EqualError(t, err, tc.wantMsg)
		})
	}
}

func TestParseRequest(t *testing.T) {
	cases := []struct {
		name       string
		page, size string
		def        int
		want       pagination.Request
		wantField  string
	}{
		{"defaults", "", "", 25, pagination.Request{Page: 1, PageSize: 25}, ""},
		{"fallback default", "", "", 0, pagination.Request{Page: 1, PageSize: pagination.DefaultPageSize}, ""},
		{"explicit", "3", "20", 10, pagination.Request{Page: 3, PageSize: 20}, ""},
		{"page zero", "0", "", 10, pagination.Request{}, pagination.FieldCurrentPage},
		{"page fraction", "1.5", "", 10, pagination.Request{}, pagination.FieldCurrentPage},
		{"page text", "first", "", 10, pagination.Request{}, pagination.FieldCurrentPage},
		{"size zero", "1", "0", 10, pagination.Request{}, pagination.FieldPageSize},
		{"size negative", "1", "-3", 10, pagination.Request{}, pagination.FieldPageSize},
		{"offset overflow", "9223372036854775807", "100", 10, pagination.Request{}, pagination.FieldCurrentPage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pagination.ParseRequest(tc.page, tc.size, tc.def)
			if tc.wantField != "" {
				ve, ok := pagination.AsValidationError(err)
				require.True(t, ok, "expected validation error, got %v", err)
				assert.Equal(t, tc.wantField, ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRequest_LimitOffset(t *testing.T) {
	r := pagination.Request{Page: 3, PageSize: 20}
	assert.Equal(t, 20, r.Limit())
	assert.Equal(t, 40, r.Offset())
}
