package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

// AvailabilityFinder is the fleet-search slice of the availability engine.
// Satisfied by *availability.Checker.
type AvailabilityFinder interface {
	FindAvailable(ctx context.Context, from, to time.Time) ([]domain.Car, error)
}

// CatalogHandler exposes the fleet catalog: brands, models, categories, cars
// and the availability search.
type CatalogHandler struct {
	catalogSvc service.CatalogService
	finder     AvailabilityFinder
}

func NewCatalogHandler(catalogSvc service.CatalogService, finder AvailabilityFinder) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc, finder: finder}
}

func (h *CatalogHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var brand domain.Brand
	if err := decodeBody(r, &brand); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.catalogSvc.CreateBrand(r.Context(), &brand); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, brand)
}

func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalogSvc.ListBrands(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

func (h *CatalogHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.catalogSvc.DeleteBrand(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) CreateModel(w http.ResponseWriter, r *http.Request) {
	var model domain.Model
	if err := decodeBody(r, &model); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.catalogSvc.CreateModel(r.Context(), &model); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, model)
}

func (h *CatalogHandler) ListModelsByBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	models, err := h.catalogSvc.ListModelsByBrand(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models)
}

func (h *CatalogHandler) DeleteModel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.catalogSvc.DeleteModel(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := decodeBody(r, &category); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.catalogSvc.CreateCategory(r.Context(), &category); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	category, err := h.catalogSvc.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogSvc.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var category domain.Category
	if err := decodeBody(r, &category); err != nil {
		writeError(w, r, err)
		return
	}
	category.ID = id
	if err := h.catalogSvc.UpdateCategory(r.Context(), &category); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.catalogSvc.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var car domain.Car
	if err := decodeBody(r, &car); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.catalogSvc.CreateCar(r.Context(), &car); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (h *CatalogHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	car, err := h.catalogSvc.GetCar(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CatalogHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.catalogSvc.ListCars(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *CatalogHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var car domain.Car
	if err := decodeBody(r, &car); err != nil {
		writeError(w, r, err)
		return
	}
	car.ID = id
	if err := h.catalogSvc.UpdateCar(r.Context(), &car); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CatalogHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.catalogSvc.DeleteCar(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// FindAvailableCars answers GET /api/cars/available?from=&to= with the cars
// bookable for the half-open window [from, to). Timestamps are RFC 3339.
func (h *CatalogHandler) FindAvailableCars(w http.ResponseWriter, r *http.Request) {
	from, err := queryTime(r, "from")
	if err != nil {
		writeError(w, r, err)
		return
	}
	to, err := queryTime(r, "to")
	if err != nil {
		writeError(w, r, err)
		return
	}

	cars, err := h.finder.FindAvailable(r.Context(), from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func queryTime(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, name)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be RFC 3339", domain.ErrInvalidInput, name)
	}
	return t, nil
}
