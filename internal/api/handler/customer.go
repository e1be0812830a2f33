package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/edvin/customerservice/internal/api/response"
	"github.com/edvin/customerservice/internal/core"
	_ "github.com/edvin/customerservice/internal/model" // imported for swag
)

type Customer struct {
	svc *core.CustomerService
}

func NewCustomer(svc *core.CustomerService) *Customer {
	return &Customer{svc: svc}
}

// List returns every stored customer.
//
//	@Summary      List customers
//	@Description  Returns all customers. Requires the USER authority.
//	@Tags         Customers
//	@Produce      json
//	@Success      200  {array}   model.Customer
//	@Failure      401  {object}  response.ErrorResponse
//	@Failure      403  {object}  response.ErrorResponse
//	@Security     BearerAuth
//	@Router       /customers/ [get]
func (h *Customer) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.FindAll(r.Context())
	if err != nil {
		response.WriteServiceError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, customers)
}

// Get returns a single customer. An unknown ID yields 200 with a null body.
//
//	@Summary      Get customer
//	@Description  Returns the customer with the given ID, or null when it does not exist
//	@Tags         Customers
//	@Produce      json
//	@Param        id   path      int  true  "Customer ID"
//	@Success      200  {object}  model.Customer
//	@Failure      400  {object}  response.ErrorResponse
//	@Router       /customers/{id} [get]
func (h *Customer) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid customer ID")
		return
	}

	customer, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		response.WriteServiceError(w, r, err)
		return
	}

	// customer is nil when absent and encodes as null.
	response.WriteJSON(w, http.StatusOK, customer)
}
