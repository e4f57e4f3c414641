package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastygo/catalog/domain"
)

func TestEncodeDecodeSnapshot(t *testing.T) {
	snapshot := domain.NewSnapshot()
	snapshot.Restaurants = append(snapshot.Restaurants, domain.Restaurant{ID: "r1", Name: "Casa", CreatedAt: 1})
	snapshot.Dishes = append(snapshot.Dishes, domain.Dish{ID: "d1", Name: "Paella", Price: 9.5, RestaurantID: "r1", CreatedAt: 2})

	raw, err := EncodeSnapshot(snapshot)
	require.NoError(t, err)
	require.Contains(t, string(raw), "\n  \"restaurants\"")

	decoded, err := DecodeSnapshot(raw)
	require.NoError(t, err)
	require.Equal(t, snapshot, decoded)
}

func TestEncodeSnapshot_Nil(t *testing.T) {
	_, err := EncodeSnapshot(nil)
	require.ErrorIs(t, err, ErrNilSnapshot)
}

func TestDecodeSnapshot_NormalizesMissingCollections(t *testing.T) {
	decoded, err := DecodeSnapshot([]byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, domain.NewSnapshot(), decoded)
}

func TestDecodeSnapshot_Malformed(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"restaurants": [`))
	require.Error(t, err)
}
