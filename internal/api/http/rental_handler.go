package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

// RentalHandler exposes the rental lifecycle over REST.
type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	CustomerID   int32           `json:"customer_id"`
	CarID        int32           `json:"car_id"`
	RateType     domain.RateType `json:"rate_type"`
	StartAt      time.Time       `json:"start_at"`
	PlannedEndAt time.Time       `json:"planned_end_at"`
	Notes        string          `json:"notes"`
}

type previewPriceRequest struct {
	CarID        int32           `json:"car_id"`
	RateType     domain.RateType `json:"rate_type"`
	StartAt      time.Time       `json:"start_at"`
	PlannedEndAt time.Time       `json:"planned_end_at"`
}

type extendRentalRequest struct {
	PlannedEndAt time.Time `json:"planned_end_at"`
}

type returnRentalRequest struct {
	ActualReturnAt time.Time `json:"actual_return_at"`
	Notes          string    `json:"notes"`
}

// rentalResponse projects the stored rental for clients: the status field
// carries the observed status, so an active rental past its planned end
// reads as OVERDUE.
type rentalResponse struct {
	domain.Rental
	Status domain.RentalStatus `json:"status"`
}

func toRentalResponse(rt *domain.Rental, now time.Time) rentalResponse {
	return rentalResponse{Rental: *rt, Status: rt.StatusAt(now)}
}

func toRentalResponses(rentals []domain.Rental, now time.Time) []rentalResponse {
	out := make([]rentalResponse, 0, len(rentals))
	for i := range rentals {
		out = append(out, toRentalResponse(&rentals[i], now))
	}
	return out
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	rental, err := h.rentalSvc.Create(r.Context(), req.CustomerID, req.CarID, req.RateType, req.StartAt, req.PlannedEndAt, req.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRentalResponse(rental, time.Now()))
}

func (h *RentalHandler) PreviewPrice(w http.ResponseWriter, r *http.Request) {
	var req previewPriceRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	quote, err := h.rentalSvc.PreviewPrice(r.Context(), req.CarID, req.RateType, req.StartAt, req.PlannedEndAt)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	rental, err := h.rentalSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponse(rental, time.Now()))
}

// List returns all rentals, optionally filtered by ?status=. The OVERDUE
// filter selects active rentals past their planned end.
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	var rentals []domain.Rental
	var err error
	if status := r.URL.Query().Get("status"); status != "" {
		rentals, err = h.rentalSvc.ListByStatus(r.Context(), domain.RentalStatus(status))
	} else {
		rentals, err = h.rentalSvc.List(r.Context())
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponses(rentals, time.Now()))
}

// ListOverdue returns active rentals already past their planned end.
func (h *RentalHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	rentals, err := h.rentalSvc.ListOverdue(r.Context(), now)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponses(rentals, now))
}

func (h *RentalHandler) Extend(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req extendRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	rental, err := h.rentalSvc.Extend(r.Context(), id, req.PlannedEndAt)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponse(rental, time.Now()))
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req returnRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	rental, err := h.rentalSvc.Return(r.Context(), id, req.ActualReturnAt, req.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponse(rental, time.Now()))
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	rental, err := h.rentalSvc.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponse(rental, time.Now()))
}

func (h *RentalHandler) ListByCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	rentals, err := h.rentalSvc.ListByCar(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponses(rentals, time.Now()))
}

func (h *RentalHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	rentals, err := h.rentalSvc.ListByCustomer(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponses(rentals, time.Now()))
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a numeric id", domain.ErrInvalidInput, name)
	}
	return int32(id), nil
}
