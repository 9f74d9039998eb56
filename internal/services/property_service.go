package services

import (
	"context"
	"encoding/json"
	"errors"

	"estate-backend/internal/cache"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
	"estate-backend/internal/storage"
)

// ErrNotOwner rejects property writes by a manager who does not own the
// property.
var ErrNotOwner = errors.New("property is owned by another manager")

type PropertyService struct {
	repo     *repositories.PropertyRepository
	uploader *storage.Uploader
}

func NewPropertyService(repo *repositories.PropertyRepository, uploader *storage.Uploader) *PropertyService {
	return &PropertyService{repo: repo, uploader: uploader}
}

// List returns filtered properties. The unfiltered listing is served from
// the Redis cache when possible.
func (s *PropertyService) List(ctx context.Context, filter *models.PropertyFilter) ([]*models.Property, error) {
	if isEmptyFilter(filter) {
		if data, ok := cache.GetPropertyList(ctx); ok {
			var properties []*models.Property
			if err := json.Unmarshal(data, &properties); err == nil {
				return properties, nil
			}
		}
	}

	properties, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if isEmptyFilter(filter) {
		if data, err := json.Marshal(properties); err == nil {
			cache.SetPropertyList(ctx, data)
		}
	}
	return properties, nil
}

func isEmptyFilter(f *models.PropertyFilter) bool {
	return f.PriceMin == 0 && f.PriceMax == 0 && f.Beds == 0 && f.Baths == 0 &&
		f.SquareFeetMin == 0 && f.SquareFeetMax == 0 && f.PropertyType == "" &&
		len(f.Amenities) == 0 && f.AvailableFrom.IsZero() && !f.HasGeo
}

func (s *PropertyService) Get(ctx context.Context, id int) (*models.Property, error) {
	return s.repo.Get(ctx, id)
}

func (s *PropertyService) GetByManager(ctx context.Context, managerID int) ([]*models.Property, error) {
	return s.repo.GetByManager(ctx, managerID)
}

// Create geocodes nothing itself: the client supplies coordinates with the
// address, and both rows are written atomically. Photos are uploaded to
// object storage when it is configured.
func (s *PropertyService) Create(ctx context.Context, managerID int, req *models.CreatePropertyRequest, photos [][]byte, photoTypes []string) (*models.Property, error) {
	var photoURLs []string
	if s.uploader != nil {
		for i, photo := range photos {
			url, err := s.uploader.UploadPhoto(ctx, photo, photoTypes[i])
			if err != nil {
				return nil, err
			}
			photoURLs = append(photoURLs, url)
		}
	}

	property := &models.Property{
		Name:              req.Name,
		Description:       req.Description,
		PricePerMonth:     req.PricePerMonth,
		SecurityDeposit:   req.SecurityDeposit,
		ApplicationFee:    req.ApplicationFee,
		Beds:              req.Beds,
		Baths:             req.Baths,
		SquareFeet:        req.SquareFeet,
		PropertyType:      req.PropertyType,
		Amenities:         req.Amenities,
		Highlights:        req.Highlights,
		IsPetsAllowed:     req.IsPetsAllowed,
		IsParkingIncluded: req.IsParkingIncluded,
		PhotoURLs:         photoURLs,
		ManagerID:         managerID,
	}
	if property.Amenities == nil {
		property.Amenities = []string{}
	}
	if property.Highlights == nil {
		property.Highlights = []string{}
	}
	if property.PhotoURLs == nil {
		property.PhotoURLs = []string{}
	}
	location := &models.Location{
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		Longitude:  req.Longitude,
		Latitude:   req.Latitude,
	}

	if err := s.repo.Create(ctx, property, location); err != nil {
		return nil, err
	}
	cache.InvalidatePropertyList(ctx)
	return property, nil
}

func (s *PropertyService) Update(ctx context.Context, id, managerID int, req *models.UpdatePropertyRequest) (*models.Property, error) {
	if err := s.checkOwner(ctx, id, managerID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, err
	}
	cache.InvalidatePropertyList(ctx)
	return s.repo.Get(ctx, id)
}

func (s *PropertyService) Delete(ctx context.Context, id, managerID int) error {
	if err := s.checkOwner(ctx, id, managerID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidatePropertyList(ctx)
	return nil
}

func (s *PropertyService) checkOwner(ctx context.Context, id, managerID int) error {
	property, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if property.ManagerID != managerID {
		return ErrNotOwner
	}
	return nil
}
