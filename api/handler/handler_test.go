package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/catalog/api/transport"
	"github.com/fastygo/catalog/domain"
)

func TestParsePage(t *testing.T) {
	cases := map[string]int{
		"":     1,
		"1":    1,
		"2":    2,
		" 3 ":  3,
		"0":    1,
		"-4":   1,
		"abc":  1,
		"2.5":  2,
		"2abc": 2,
		"+2":   2,
		"-0":   1,
		"-":    1,
		"99":   99,
		"9e99": 9,
	}
	for in, want := range cases {
		assert.Equal(t, want, parsePage(in), "input %q", in)
	}

	assert.Equal(t, math.MaxInt, parsePage("99999999999999999999999"))
	assert.Equal(t, 1, parsePage("-99999999999999999999999"))
}

func TestDecodeBody(t *testing.T) {
	var req transport.DishRequest
	require.NoError(t, decodeBody(nil, &req))
	require.NoError(t, decodeBody([]byte("  \n"), &req))
	assert.Nil(t, req.Name)

	require.NoError(t, decodeBody([]byte(`{"name":"Flan","price":4}`), &req))
	assert.Equal(t, "Flan", req.Name)
	assert.Equal(t, float64(4), req.Price)

	err := decodeBody([]byte(`[1,2`), &req)
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestMapError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.NewFieldError("name", "bad"), http.StatusBadRequest, "INVALID"},
		{fmt.Errorf("add dish: %w", domain.ErrRestaurantNotFound), http.StatusNotFound, "NOT_FOUND"},
		{errors.New("disk full"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tt := range tests {
		status, code := mapError(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.code, code, tt.err.Error())
	}
}
