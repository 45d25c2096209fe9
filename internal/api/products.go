package api

import (
	"fmt"
	"net/http"

	"posadmin/m/internal/service"
)

type productRequest struct {
	Description *string  `json:"ProdDesc"`
	SupplierIDs []number `json:"supplierIDs"`
}

func (req productRequest) input() (service.ProductInput, error) {
	in := service.ProductInput{Description: req.Description}
	for i, raw := range req.SupplierIDs {
		id, err := raw.int64(fmt.Sprintf("supplierIDs[%d]", i))
		if err != nil {
			return service.ProductInput{}, service.Internal(err)
		}
		in.SupplierIDs = append(in.SupplierIDs, id)
	}
	return in, nil
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.List(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	product, err := h.Products.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	in, err := req.input()
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	product, err := h.Products.Create(r.Context(), in)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	in, err := req.input()
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	product, err := h.Products.Update(r.Context(), id, in)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if err := h.Products.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondMessage(w, "Product deleted successfully")
}
