package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"carrental-backend/internal/service"
)

// NewRouter wires every REST route behind the request-ID and logging
// middleware. Static paths register before parameterized ones so
// /api/cars/available is never captured as a car id.
func NewRouter(
	rentalSvc service.RentalService,
	catalogSvc service.CatalogService,
	customerSvc service.CustomerService,
	finder AvailabilityFinder,
) http.Handler {
	rentals := NewRentalHandler(rentalSvc)
	catalog := NewCatalogHandler(catalogSvc, finder)
	customers := NewCustomerHandler(customerSvc)

	r := mux.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Rentals
	api.HandleFunc("/rentals", rentals.Create).Methods(http.MethodPost)
	api.HandleFunc("/rentals", rentals.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals/preview", rentals.PreviewPrice).Methods(http.MethodPost)
	api.HandleFunc("/rentals/overdue", rentals.ListOverdue).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id:[0-9]+}", rentals.Get).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id:[0-9]+}/extend", rentals.Extend).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/return", rentals.Return).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/cancel", rentals.Cancel).Methods(http.MethodPost)

	// Fleet catalog
	api.HandleFunc("/brands", catalog.CreateBrand).Methods(http.MethodPost)
	api.HandleFunc("/brands", catalog.ListBrands).Methods(http.MethodGet)
	api.HandleFunc("/brands/{id:[0-9]+}", catalog.DeleteBrand).Methods(http.MethodDelete)
	api.HandleFunc("/brands/{id:[0-9]+}/models", catalog.ListModelsByBrand).Methods(http.MethodGet)
	api.HandleFunc("/models", catalog.CreateModel).Methods(http.MethodPost)
	api.HandleFunc("/models/{id:[0-9]+}", catalog.DeleteModel).Methods(http.MethodDelete)
	api.HandleFunc("/categories", catalog.CreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories", catalog.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id:[0-9]+}", catalog.GetCategory).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id:[0-9]+}", catalog.UpdateCategory).Methods(http.MethodPut)
	api.HandleFunc("/categories/{id:[0-9]+}", catalog.DeleteCategory).Methods(http.MethodDelete)

	api.HandleFunc("/cars", catalog.CreateCar).Methods(http.MethodPost)
	api.HandleFunc("/cars", catalog.ListCars).Methods(http.MethodGet)
	api.HandleFunc("/cars/available", catalog.FindAvailableCars).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id:[0-9]+}", catalog.GetCar).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id:[0-9]+}", catalog.UpdateCar).Methods(http.MethodPut)
	api.HandleFunc("/cars/{id:[0-9]+}", catalog.DeleteCar).Methods(http.MethodDelete)
	api.HandleFunc("/cars/{id:[0-9]+}/rentals", rentals.ListByCar).Methods(http.MethodGet)

	// Customers
	api.HandleFunc("/customers", customers.Create).Methods(http.MethodPost)
	api.HandleFunc("/customers", customers.List).Methods(http.MethodGet)
	api.HandleFunc("/customers/activity-report", customers.ActivityReport).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", customers.Get).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", customers.Update).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id:[0-9]+}", customers.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/customers/{id:[0-9]+}/rentals", rentals.ListByCustomer).Methods(http.MethodGet)

	return r
}
