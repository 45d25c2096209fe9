package api

import (
	"net/http"

	"posadmin/m/internal/service"
)

// Customer handlers

type customerRequest struct {
	FirstName *string `json:"firstFName"`
	LastName  *string `json:"lastLName"`
}

func (req customerRequest) input() service.PersonInput {
	return service.PersonInput{FirstName: req.FirstName, LastName: req.LastName}
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Customers.List(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	customer, err := h.Customers.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	customer, err := h.Customers.Create(r.Context(), req.input())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	var req customerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	customer, err := h.Customers.Update(r.Context(), id, req.input())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if err := h.Customers.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondMessage(w, "Customer deleted successfully")
}

// Cashier handlers

type cashierRequest struct {
	FirstName *string `json:"cashierFName"`
	LastName  *string `json:"cashierLName"`
}

func (req cashierRequest) input() service.PersonInput {
	return service.PersonInput{FirstName: req.FirstName, LastName: req.LastName}
}

func (h *Handler) listCashiers(w http.ResponseWriter, r *http.Request) {
	cashiers, err := h.Cashiers.List(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cashiers)
}

func (h *Handler) getCashier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	cashier, err := h.Cashiers.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cashier)
}

func (h *Handler) createCashier(w http.ResponseWriter, r *http.Request) {
	var req cashierRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	cashier, err := h.Cashiers.Create(r.Context(), req.input())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cashier)
}

func (h *Handler) updateCashier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	var req cashierRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	cashier, err := h.Cashiers.Update(r.Context(), id, req.input())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cashier)
}

func (h *Handler) deleteCashier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if err := h.Cashiers.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondMessage(w, "Cashier deleted successfully")
}
