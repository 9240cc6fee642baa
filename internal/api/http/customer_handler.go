package http

import (
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

// CustomerHandler exposes the customer registry.
type CustomerHandler struct {
	customerSvc service.CustomerService
}

func NewCustomerHandler(customerSvc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := decodeBody(r, &customer); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.customerSvc.Create(r.Context(), &customer); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	customer, err := h.customerSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerSvc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var customer domain.Customer
	if err := decodeBody(r, &customer); err != nil {
		writeError(w, r, err)
		return
	}
	customer.ID = id
	if err := h.customerSvc.Update(r.Context(), &customer); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.customerSvc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ActivityReport answers the back-office view of per-customer rental counts
// and last rental ends.
func (h *CustomerHandler) ActivityReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.customerSvc.ActivityReport(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
