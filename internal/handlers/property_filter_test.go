package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePropertyFilterEmpty(t *testing.T) {
	req := httptest.NewRequest("GET", "/properties", nil)

	filter, err := parsePropertyFilter(req)

	require.NoError(t, err)
	assert.Zero(t, filter.PriceMin)
	assert.Zero(t, filter.Beds)
	assert.Empty(t, filter.PropertyType)
	assert.False(t, filter.HasGeo)
}

func TestParsePropertyFilterFull(t *testing.T) {
	req := httptest.NewRequest("GET",
		"/properties?priceMin=500&priceMax=2000&beds=2&baths=1.5&squareFeetMin=400"+
			"&squareFeetMax=1200&propertyType=Apartment&amenities=Gym&amenities=Pool"+
			"&availableFrom=2025-07-01&latitude=40.7&longitude=-74.0&radiusKm=25", nil)

	filter, err := parsePropertyFilter(req)

	require.NoError(t, err)
	assert.Equal(t, 500.0, filter.PriceMin)
	assert.Equal(t, 2000.0, filter.PriceMax)
	assert.Equal(t, 2, filter.Beds)
	assert.Equal(t, 1.5, filter.Baths)
	assert.Equal(t, 400, filter.SquareFeetMin)
	assert.Equal(t, 1200, filter.SquareFeetMax)
	assert.Equal(t, "Apartment", filter.PropertyType)
	assert.Equal(t, []string{"Gym", "Pool"}, filter.Amenities)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), filter.AvailableFrom)
	assert.True(t, filter.HasGeo)
	assert.Equal(t, 40.7, filter.Latitude)
	assert.Equal(t, -74.0, filter.Longitude)
	assert.Equal(t, 25.0, filter.RadiusKm)
}

func TestParsePropertyFilterBadNumber(t *testing.T) {
	req := httptest.NewRequest("GET", "/properties?priceMin=cheap", nil)

	_, err := parsePropertyFilter(req)
	assert.Error(t, err)
}

func TestParsePropertyFilterBadDate(t *testing.T) {
	req := httptest.NewRequest("GET", "/properties?availableFrom=July", nil)

	_, err := parsePropertyFilter(req)
	assert.Error(t, err)
}

func TestParsePropertyFilterPartialGeo(t *testing.T) {
	req := httptest.NewRequest("GET", "/properties?latitude=40.7", nil)

	_, err := parsePropertyFilter(req)
	assert.Error(t, err)
}
