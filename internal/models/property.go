package models

import "time"

type Property struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	PricePerMonth     float64   `json:"price_per_month"`
	SecurityDeposit   float64   `json:"security_deposit"`
	ApplicationFee    float64   `json:"application_fee"`
	Beds              int       `json:"beds"`
	Baths             float64   `json:"baths"`
	SquareFeet        int       `json:"square_feet"`
	PropertyType      string    `json:"property_type"`
	Amenities         []string  `json:"amenities"`
	Highlights        []string  `json:"highlights"`
	IsPetsAllowed     bool      `json:"is_pets_allowed"`
	IsParkingIncluded bool      `json:"is_parking_included"`
	PhotoURLs         []string  `json:"photo_urls"`
	AverageRating     float64   `json:"average_rating"`
	NumberOfReviews   int       `json:"number_of_reviews"`
	PostedDate        time.Time `json:"posted_date"`
	ManagerID         int       `json:"manager_id"`
	LocationID        int       `json:"location_id"`
	Location          *Location `json:"location,omitempty"`
}

// PropertyFilter holds the optional query parameters for listing properties.
// Zero values mean "not filtered".
type PropertyFilter struct {
	PriceMin      float64
	PriceMax      float64
	Beds          int
	Baths         float64
	SquareFeetMin int
	SquareFeetMax int
	PropertyType  string
	Amenities     []string
	AvailableFrom time.Time
	Latitude      float64
	Longitude     float64
	RadiusKm      float64
	HasGeo        bool
}

// CreatePropertyRequest represents the multipart form fields for creating a property
type CreatePropertyRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	PricePerMonth     float64  `json:"price_per_month"`
	SecurityDeposit   float64  `json:"security_deposit"`
	ApplicationFee    float64  `json:"application_fee"`
	Beds              int      `json:"beds"`
	Baths             float64  `json:"baths"`
	SquareFeet        int      `json:"square_feet"`
	PropertyType      string   `json:"property_type"`
	Amenities         []string `json:"amenities"`
	Highlights        []string `json:"highlights"`
	IsPetsAllowed     bool     `json:"is_pets_allowed"`
	IsParkingIncluded bool     `json:"is_parking_included"`
	Address           string   `json:"address"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Country           string   `json:"country"`
	PostalCode        string   `json:"postal_code"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
}

// UpdatePropertyRequest represents the request body for updating a property
type UpdatePropertyRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	PricePerMonth     float64  `json:"price_per_month"`
	SecurityDeposit   float64  `json:"security_deposit"`
	ApplicationFee    float64  `json:"application_fee"`
	Beds              int      `json:"beds"`
	Baths             float64  `json:"baths"`
	SquareFeet        int      `json:"square_feet"`
	PropertyType      string   `json:"property_type"`
	Amenities         []string `json:"amenities"`
	Highlights        []string `json:"highlights"`
	IsPetsAllowed     bool     `json:"is_pets_allowed"`
	IsParkingIncluded bool     `json:"is_parking_included"`
}
