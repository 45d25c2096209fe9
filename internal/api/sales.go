package api

import (
	"fmt"
	"net/http"

	"posadmin/m/internal/service"
)

type saleItemRequest struct {
	ProductID number `json:"productID"`
	Quantity  number `json:"quantity"`
	UnitPrice number `json:"unitPrice"`
}

type saleRequest struct {
	CustomerID number            `json:"custID"`
	CashierID  number            `json:"cashierID"`
	SalesDate  *string           `json:"salesDate"`
	Status     string            `json:"status"`
	Items      []saleItemRequest `json:"items"`
}

// input coerces the wire fields. Any failure is reported as an internal error.
func (req saleRequest) input() (service.SaleInput, error) {
	var (
		in  service.SaleInput
		err error
	)
	if in.CustomerID, err = req.CustomerID.int64("custID"); err != nil {
		return service.SaleInput{}, service.Internal(err)
	}
	if in.CashierID, err = req.CashierID.int64("cashierID"); err != nil {
		return service.SaleInput{}, service.Internal(err)
	}
	if in.SalesDate, err = parseDate(req.SalesDate); err != nil {
		return service.SaleInput{}, service.Internal(err)
	}
	in.Status = req.Status

	for i, item := range req.Items {
		var out service.SaleItemInput
		if out.ProductID, err = item.ProductID.int64(fmt.Sprintf("items[%d].productID", i)); err != nil {
			return service.SaleInput{}, service.Internal(err)
		}
		if out.Quantity, err = item.Quantity.int64(fmt.Sprintf("items[%d].quantity", i)); err != nil {
			return service.SaleInput{}, service.Internal(err)
		}
		if out.UnitPrice, err = item.UnitPrice.decimal(fmt.Sprintf("items[%d].unitPrice", i)); err != nil {
			return service.SaleInput{}, service.Internal(err)
		}
		in.Items = append(in.Items, out)
	}
	return in, nil
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Sales.List(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, sales)
}

func (h *Handler) getSale(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	sale, err := h.Sales.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, sale)
}

func (h *Handler) createSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	in, err := req.input()
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	sale, err := h.Sales.Create(r.Context(), in)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.metrics.saleItems.Observe(float64(len(sale.Items)))
	respondJSON(w, http.StatusOK, sale)
}

func (h *Handler) updateSale(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	var req saleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	in, err := req.input()
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	sale, err := h.Sales.Update(r.Context(), id, in)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, sale)
}

func (h *Handler) deleteSale(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if err := h.Sales.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondMessage(w, "Sale status updated to Inactive")
}
