package models

// Location is the geocoded address attached to a property. Coordinates are
// persisted as a Postgres point in (longitude, latitude) order and resolved
// back to separate numeric fields for API responses.
type Location struct {
	ID         int     `json:"id"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
	Longitude  float64 `json:"longitude"`
	Latitude   float64 `json:"latitude"`
}
