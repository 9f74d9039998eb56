package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"estate-backend/internal/middleware"
	"estate-backend/internal/models"
	"estate-backend/internal/services"
	"estate-backend/pkg/utils"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

const maxUploadSize = 32 << 20

type PropertyHandler struct {
	Service *services.PropertyService
	Leases  *services.LeaseService
}

func NewPropertyHandler(service *services.PropertyService, leases *services.LeaseService) *PropertyHandler {
	return &PropertyHandler{Service: service, Leases: leases}
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePropertyFilter(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	properties, err := h.Service.List(r.Context(), filter)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list properties")
		return
	}
	utils.JSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	property, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Property not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch property")
		return
	}
	utils.JSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	req, err := parseCreatePropertyForm(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	var photos [][]byte
	var photoTypes []string
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["photos"] {
			file, err := header.Open()
			if err != nil {
				utils.Error(w, http.StatusBadRequest, "Failed to read photo upload")
				return
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				utils.Error(w, http.StatusBadRequest, "Failed to read photo upload")
				return
			}
			photos = append(photos, data)
			photoTypes = append(photoTypes, header.Header.Get("Content-Type"))
		}
	}

	property, err := h.Service.Create(r.Context(), managerID, req, photos, photoTypes)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to create property")
		return
	}
	utils.JSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid property ID")
		return
	}
	managerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req models.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, err := h.Service.Update(r.Context(), id, managerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			utils.Error(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, services.ErrNotOwner):
			utils.Error(w, http.StatusForbidden, "Property belongs to another manager")
		default:
			utils.Error(w, http.StatusInternalServerError, "Failed to update property")
		}
		return
	}
	utils.JSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid property ID")
		return
	}
	managerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	if err := h.Service.Delete(r.Context(), id, managerID); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			utils.Error(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, services.ErrNotOwner):
			utils.Error(w, http.StatusForbidden, "Property belongs to another manager")
		default:
			utils.Error(w, http.StatusInternalServerError, "Failed to delete property")
		}
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Property deleted"})
}

func (h *PropertyHandler) ListLeases(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	leases, err := h.Leases.ListByProperty(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list leases")
		return
	}
	utils.JSON(w, http.StatusOK, leases)
}

func parsePropertyFilter(r *http.Request) (*models.PropertyFilter, error) {
	q := r.URL.Query()
	filter := &models.PropertyFilter{}

	var err error
	if filter.PriceMin, err = floatParam(q.Get("priceMin")); err != nil {
		return nil, errors.New("Invalid priceMin")
	}
	if filter.PriceMax, err = floatParam(q.Get("priceMax")); err != nil {
		return nil, errors.New("Invalid priceMax")
	}
	if filter.Beds, err = intParam(q.Get("beds")); err != nil {
		return nil, errors.New("Invalid beds")
	}
	if filter.Baths, err = floatParam(q.Get("baths")); err != nil {
		return nil, errors.New("Invalid baths")
	}
	if filter.SquareFeetMin, err = intParam(q.Get("squareFeetMin")); err != nil {
		return nil, errors.New("Invalid squareFeetMin")
	}
	if filter.SquareFeetMax, err = intParam(q.Get("squareFeetMax")); err != nil {
		return nil, errors.New("Invalid squareFeetMax")
	}
	filter.PropertyType = q.Get("propertyType")
	if amenities := q["amenities"]; len(amenities) > 0 {
		filter.Amenities = amenities
	}
	if raw := q.Get("availableFrom"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, errors.New("Invalid availableFrom, expected YYYY-MM-DD")
		}
		filter.AvailableFrom = t
	}

	lat, lng, radius := q.Get("latitude"), q.Get("longitude"), q.Get("radiusKm")
	if lat != "" || lng != "" || radius != "" {
		if lat == "" || lng == "" || radius == "" {
			return nil, errors.New("latitude, longitude and radiusKm must be provided together")
		}
		if filter.Latitude, err = floatParam(lat); err != nil {
			return nil, errors.New("Invalid latitude")
		}
		if filter.Longitude, err = floatParam(lng); err != nil {
			return nil, errors.New("Invalid longitude")
		}
		if filter.RadiusKm, err = floatParam(radius); err != nil {
			return nil, errors.New("Invalid radiusKm")
		}
		filter.HasGeo = true
	}
	return filter, nil
}

func parseCreatePropertyForm(r *http.Request) (*models.CreatePropertyRequest, error) {
	req := &models.CreatePropertyRequest{
		Name:         r.FormValue("name"),
		Description:  r.FormValue("description"),
		PropertyType: r.FormValue("property_type"),
		Address:      r.FormValue("address"),
		City:         r.FormValue("city"),
		State:        r.FormValue("state"),
		Country:      r.FormValue("country"),
		PostalCode:   r.FormValue("postal_code"),
	}
	if req.Name == "" || req.Address == "" || req.City == "" {
		return nil, errors.New("Name, address and city are required")
	}

	var err error
	if req.PricePerMonth, err = floatParam(r.FormValue("price_per_month")); err != nil {
		return nil, errors.New("Invalid price_per_month")
	}
	if req.SecurityDeposit, err = floatParam(r.FormValue("security_deposit")); err != nil {
		return nil, errors.New("Invalid security_deposit")
	}
	if req.ApplicationFee, err = floatParam(r.FormValue("application_fee")); err != nil {
		return nil, errors.New("Invalid application_fee")
	}
	if req.Beds, err = intParam(r.FormValue("beds")); err != nil {
		return nil, errors.New("Invalid beds")
	}
	if req.Baths, err = floatParam(r.FormValue("baths")); err != nil {
		return nil, errors.New("Invalid baths")
	}
	if req.SquareFeet, err = intParam(r.FormValue("square_feet")); err != nil {
		return nil, errors.New("Invalid square_feet")
	}
	if req.Latitude, err = floatParam(r.FormValue("latitude")); err != nil {
		return nil, errors.New("Invalid latitude")
	}
	if req.Longitude, err = floatParam(r.FormValue("longitude")); err != nil {
		return nil, errors.New("Invalid longitude")
	}
	req.IsPetsAllowed = r.FormValue("is_pets_allowed") == "true"
	req.IsParkingIncluded = r.FormValue("is_parking_included") == "true"
	req.Amenities = r.Form["amenities"]
	req.Highlights = r.Form["highlights"]
	return req, nil
}

func floatParam(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
