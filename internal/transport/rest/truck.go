package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/streetbite/foodtruck-backend/internal/domain"
	"github.com/streetbite/foodtruck-backend/internal/service/truck"
)

// truckService defines the minimal interface needed by TruckHandler.
type truckService interface {
	List(ctx context.Context) ([]domain.Truck, error)
	Get(ctx context.Context, id int64) (*domain.Truck, error)
	SearchByName(ctx context.Context, needle string) ([]domain.Truck, error)
	SearchByItems(ctx context.Context, needle string) ([]domain.Truck, error)
	SearchByLocation(ctx context.Context, input truck.SearchByLocationInput) ([]domain.Truck, error)
	Create(ctx context.Context, input truck.TruckInput) (*domain.Truck, error)
	Upsert(ctx context.Context, id int64, input truck.TruckInput) (*domain.Truck, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*domain.CollectionStats, error)
}

// TruckHandler serves the registry REST endpoints.
type TruckHandler struct {
	svc truckService
	log *slog.Logger
}

// NewTruckHandler creates a TruckHandler.
func NewTruckHandler(svc truckService, logger *slog.Logger) *TruckHandler {
	return &TruckHandler{svc: svc, log: logger.With("handler", "truck")}
}

type truckRequest struct {
	Name      *string  `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	DaysHours *string  `json:"days_hours"`
	FoodItems *string  `json:"food_items"`
}

// toInput rejects missing fields here so the service input stays plain
// values; wrong-typed fields are already rejected by the JSON decoder.
func (req truckRequest) toInput() (truck.TruckInput, error) {
	var errs []domain.FieldError
	if req.Name == nil {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if req.Latitude == nil {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "required"})
	}
	if req.Longitude == nil {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "required"})
	}
	if req.DaysHours == nil {
		errs = append(errs, domain.FieldError{Field: "days_hours", Message: "required"})
	}
	if req.FoodItems == nil {
		errs = append(errs, domain.FieldError{Field: "food_items", Message: "required"})
	}
	if len(errs) > 0 {
		return truck.TruckInput{}, &domain.ValidationError{Errors: errs}
	}
	return truck.TruckInput{
		Name:      *req.Name,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		DaysHours: *req.DaysHours,
		FoodItems: *req.FoodItems,
	}, nil
}

type truckResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	DaysHours string  `json:"days_hours"`
	FoodItems string  `json:"food_items"`
	OwnerID   *string `json:"owner_id,omitempty"`
}

type truckListResponse struct {
	Foodtrucks []truckResponse `json:"foodtrucks"`
}

func toTruckResponse(t *domain.Truck) truckResponse {
	resp := truckResponse{
		ID:        t.ID,
		Name:      t.Name,
		Latitude:  t.Latitude,
		Longitude: t.Longitude,
		DaysHours: t.DaysHours,
		FoodItems: t.FoodItems,
	}
	if t.OwnerID != nil {
		owner := t.OwnerID.String()
		resp.OwnerID = &owner
	}
	return resp
}

func toTruckListResponse(trucks []domain.Truck) truckListResponse {
	items := make([]truckResponse, 0, len(trucks))
	for i := range trucks {
		items = append(items, toTruckResponse(&trucks[i]))
	}
	return truckListResponse{Foodtrucks: items}
}

// List handles GET /foodtrucks.
func (h *TruckHandler) List(w http.ResponseWriter, r *http.Request) {
	trucks, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTruckListResponse(trucks))
}

// Get handles GET /foodtrucks/{id}. An absent id yields an empty object with
// 200, not a 404: reads never fail on identity.
func (h *TruckHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusOK, struct{}{})
			return
		}
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTruckResponse(t))
}

// SearchByName handles GET /foodtrucks/name/{needle}.
func (h *TruckHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	trucks, err := h.svc.SearchByName(r.Context(), r.PathValue("needle"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTruckListResponse(trucks))
}

// SearchByItems handles GET /foodtrucks/items/{needle}.
func (h *TruckHandler) SearchByItems(w http.ResponseWriter, r *http.Request) {
	trucks, err := h.svc.SearchByItems(r.Context(), r.PathValue("needle"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTruckListResponse(trucks))
}

// SearchByLocation handles GET /foodtrucks/location.
// Query: latitude, longitude (required), radius, name, item (optional).
func (h *TruckHandler) SearchByLocation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := truck.SearchByLocationInput{}

	lat, err := parseFloatParam(q.Get("latitude"), "latitude")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	lon, err := parseFloatParam(q.Get("longitude"), "longitude")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input.Latitude = lat
	input.Longitude = lon

	if raw := q.Get("radius"); raw != "" {
		radius, err := parseFloatParam(raw, "radius")
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		input.RadiusMeters = &radius
	}
	if name := q.Get("name"); name != "" {
		input.Name = &name
	}
	if item := q.Get("item"); item != "" {
		input.Items = &item
	}

	trucks, err := h.svc.SearchByLocation(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTruckListResponse(trucks))
}

// Create handles POST /foodtrucks.
func (h *TruckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req truckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTruckResponse(created))
}

// Upsert handles PUT /foodtrucks/{id}.
func (h *TruckHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req truckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Upsert(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTruckResponse(result))
}

// Delete handles DELETE /foodtrucks/{id}. Success regardless of whether the
// id existed.
func (h *TruckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Entry deleted"})
}

type metaResponse struct {
	Entries int64    `json:"entries"`
	MinLat  *float64 `json:"min_latitude"`
	MaxLat  *float64 `json:"max_latitude"`
	MinLon  *float64 `json:"min_longitude"`
	MaxLon  *float64 `json:"max_longitude"`
}

// Meta handles GET /: entry count plus the bounding box of all coordinates.
func (h *TruckHandler) Meta(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, metaResponse{
		Entries: stats.Entries,
		MinLat:  stats.MinLatitude,
		MaxLat:  stats.MaxLatitude,
		MinLon:  stats.MinLongitude,
		MaxLon:  stats.MaxLongitude,
	})
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}

func parseFloatParam(raw, field string) (float64, error) {
	if raw == "" {
		return 0, domain.NewValidationError(field, "required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domain.NewValidationError(field, "must be a number")
	}
	return v, nil
}
