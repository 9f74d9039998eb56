package repositories

import (
	"context"
	"fmt"
	"strings"

	"estate-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PropertyRepository struct {
	DB *pgxpool.Pool
}

func NewPropertyRepository(db *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

const propertySelectColumns = `
	p.id, p.name, p.description, p.price_per_month, p.security_deposit, p.application_fee,
	p.beds, p.baths, p.square_feet, p.property_type, p.amenities, p.highlights,
	p.is_pets_allowed, p.is_parking_included, p.photo_urls, p.average_rating,
	p.number_of_reviews, p.posted_date, p.manager_id, p.location_id,
	l.id, l.address, l.city, l.state, l.country, l.postal_code,
	l.coordinates[0] AS longitude, l.coordinates[1] AS latitude`

func scanProperty(row pgx.Row) (*models.Property, error) {
	p := &models.Property{Location: &models.Location{}}
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.PricePerMonth, &p.SecurityDeposit, &p.ApplicationFee,
		&p.Beds, &p.Baths, &p.SquareFeet, &p.PropertyType, &p.Amenities, &p.Highlights,
		&p.IsPetsAllowed, &p.IsParkingIncluded, &p.PhotoURLs, &p.AverageRating,
		&p.NumberOfReviews, &p.PostedDate, &p.ManagerID, &p.LocationID,
		&p.Location.ID, &p.Location.Address, &p.Location.City, &p.Location.State,
		&p.Location.Country, &p.Location.PostalCode,
		&p.Location.Longitude, &p.Location.Latitude,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns properties matching the filter, joined with their location.
// The radius filter uses spherical haversine distance over the stored
// longitude/latitude pair, so results stay correct near the poles and the
// date line.
func (r *PropertyRepository) List(ctx context.Context, filter *models.PropertyFilter) ([]*models.Property, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if filter.PriceMin > 0 {
		conditions = append(conditions, fmt.Sprintf("p.price_per_month >= $%d", argNum))
		args = append(args, filter.PriceMin)
		argNum++
	}
	if filter.PriceMax > 0 {
		conditions = append(conditions, fmt.Sprintf("p.price_per_month <= $%d", argNum))
		args = append(args, filter.PriceMax)
		argNum++
	}
	if filter.Beds > 0 {
		conditions = append(conditions, fmt.Sprintf("p.beds >= $%d", argNum))
		args = append(args, filter.Beds)
		argNum++
	}
	if filter.Baths > 0 {
		conditions = append(conditions, fmt.Sprintf("p.baths >= $%d", argNum))
		args = append(args, filter.Baths)
		argNum++
	}
	if filter.SquareFeetMin > 0 {
		conditions = append(conditions, fmt.Sprintf("p.square_feet >= $%d", argNum))
		args = append(args, filter.SquareFeetMin)
		argNum++
	}
	if filter.SquareFeetMax > 0 {
		conditions = append(conditions, fmt.Sprintf("p.square_feet <= $%d", argNum))
		args = append(args, filter.SquareFeetMax)
		argNum++
	}
	if filter.PropertyType != "" {
		conditions = append(conditions, fmt.Sprintf("p.property_type = $%d", argNum))
		args = append(args, filter.PropertyType)
		argNum++
	}
	if len(filter.Amenities) > 0 {
		conditions = append(conditions, fmt.Sprintf("p.amenities @> $%d::text[]", argNum))
		args = append(args, filter.Amenities)
		argNum++
	}
	if !filter.AvailableFrom.IsZero() {
		conditions = append(conditions, fmt.Sprintf(
			"NOT EXISTS (SELECT 1 FROM leases le WHERE le.property_id = p.id AND $%d BETWEEN le.start_date AND le.end_date)", argNum))
		args = append(args, filter.AvailableFrom)
		argNum++
	}
	if filter.HasGeo && filter.RadiusKm > 0 {
		// geodesic distance in km between the query point and the stored point
		conditions = append(conditions, fmt.Sprintf(`
			6371 * 2 * asin(sqrt(
				pow(sin(radians((l.coordinates[1] - $%d) / 2)), 2) +
				cos(radians($%d)) * cos(radians(l.coordinates[1])) *
				pow(sin(radians((l.coordinates[0] - $%d) / 2)), 2)
			)) <= $%d`, argNum, argNum, argNum+1, argNum+2))
		args = append(args, filter.Latitude, filter.Longitude, filter.RadiusKm)
		argNum += 3
	}

	query := "SELECT " + propertySelectColumns + `
		FROM properties p
		JOIN locations l ON p.location_id = l.id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.posted_date DESC"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (r *PropertyRepository) Get(ctx context.Context, id int) (*models.Property, error) {
	query := "SELECT " + propertySelectColumns + `
		FROM properties p
		JOIN locations l ON p.location_id = l.id
		WHERE p.id = $1`
	return scanProperty(r.DB.QueryRow(ctx, query, id))
}

func (r *PropertyRepository) GetByManager(ctx context.Context, managerID int) ([]*models.Property, error) {
	query := "SELECT " + propertySelectColumns + `
		FROM properties p
		JOIN locations l ON p.location_id = l.id
		WHERE p.manager_id = $1
		ORDER BY p.posted_date DESC`

	rows, err := r.DB.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

// Create inserts the location and the property in one transaction so a
// property never exists without its geocoded address.
func (r *PropertyRepository) Create(ctx context.Context, property *models.Property, location *models.Location) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO locations (address, city, state, country, postal_code, coordinates)
		 VALUES ($1, $2, $3, $4, $5, point($6, $7))
		 RETURNING id`,
		location.Address, location.City, location.State, location.Country,
		location.PostalCode, location.Longitude, location.Latitude,
	).Scan(&location.ID)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO properties (
			name, description, price_per_month, security_deposit, application_fee,
			beds, baths, square_feet, property_type, amenities, highlights,
			is_pets_allowed, is_parking_included, photo_urls, manager_id, location_id
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		 RETURNING id, posted_date`,
		property.Name, property.Description, property.PricePerMonth,
		property.SecurityDeposit, property.ApplicationFee,
		property.Beds, property.Baths, property.SquareFeet, property.PropertyType,
		property.Amenities, property.Highlights,
		property.IsPetsAllowed, property.IsParkingIncluded, property.PhotoURLs,
		property.ManagerID, location.ID,
	).Scan(&property.ID, &property.PostedDate)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	property.LocationID = location.ID
	property.Location = location
	return tx.Commit(ctx)
}

func (r *PropertyRepository) Update(ctx context.Context, id int, req *models.UpdatePropertyRequest) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE properties SET
			name = $1, description = $2, price_per_month = $3, security_deposit = $4,
			application_fee = $5, beds = $6, baths = $7, square_feet = $8,
			property_type = $9, amenities = $10, highlights = $11,
			is_pets_allowed = $12, is_parking_included = $13
		 WHERE id = $14`,
		req.Name, req.Description, req.PricePerMonth, req.SecurityDeposit,
		req.ApplicationFee, req.Beds, req.Baths, req.SquareFeet,
		req.PropertyType, req.Amenities, req.Highlights,
		req.IsPetsAllowed, req.IsParkingIncluded, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes the property and its location. Hard delete; dependent
// leases and applications cascade.
func (r *PropertyRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var locationID int
	err = tx.QueryRow(ctx, "SELECT location_id FROM properties WHERE id = $1", id).Scan(&locationID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, "DELETE FROM properties WHERE id = $1", id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "DELETE FROM locations WHERE id = $1", locationID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
