package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastygo/catalog/domain"
)

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid), "want INVALID, got %v", err)
	require.Equal(t, field, domain.FieldOf(err))
}

func TestParseRestaurant(t *testing.T) {
	in, err := ParseRestaurant("  Casa Lucio  ")
	require.NoError(t, err)
	require.Equal(t, "Casa Lucio", in.Name)

	for name, raw := range map[string]any{
		"missing":    nil,
		"empty":      "",
		"blank":      "   \t",
		"number":     42.0,
		"bool":       true,
		"collection": []any{"a"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRestaurant(raw)
			requireFieldError(t, err, "name")
		})
	}
}

func TestParseDish(t *testing.T) {
	in, err := ParseDish(" Tortilla ", 7.5)
	require.NoError(t, err)
	require.Equal(t, DishInput{Name: "Tortilla", Price: 7.5}, in)

	free, err := ParseDish("Agua", 0.0)
	require.NoError(t, err)
	require.Zero(t, free.Price)

	tests := []struct {
		name  string
		dish  any
		price any
		field string
	}{
		{"missing name", nil, 1.0, "name"},
		{"blank name", "  ", 1.0, "name"},
		{"numeric name", 3.0, 1.0, "name"},
		{"missing price", "Tortilla", nil, "price"},
		{"string price", "Tortilla", "7.5", "price"},
		{"negative price", "Tortilla", -1.0, "price"},
		{"nan price", "Tortilla", math.NaN(), "price"},
		{"infinite price", "Tortilla", math.Inf(1), "price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDish(tt.dish, tt.price)
			requireFieldError(t, err, tt.field)
		})
	}
}

func TestValidateID(t *testing.T) {
	id, err := ValidateID("restaurant", "  abc  ")
	require.NoError(t, err)
	require.Equal(t, "abc", id)

	_, err = ValidateID("restaurant", "")
	requireFieldError(t, err, "restaurant")

	_, err = ValidateID("restaurantId", "   ")
	requireFieldError(t, err, "restaurantId")
}

func TestNewValidator(t *testing.T) {
	require.NotPanics(t, func() { newValidator() })

	v := newValidator()
	require.NoError(t, v.Struct(DishInput{Name: "Flan", Price: 4}))
	require.Error(t, v.Struct(DishInput{Name: "Flan", Price: math.Inf(1)}))
}

func TestCheckStruct_NotAStruct(t *testing.T) {
	err := checkStruct(nil)
	require.ErrorIs(t, err, domain.ErrInvalidPayload)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	require.Empty(t, domain.FieldOf(err))
}
