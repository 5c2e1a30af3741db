// Package compat exposes the legacy storefront wire contract: one endpoint
// selected by a `route` query parameter, exactly as the original PHP
// backend behaved, so existing front-end builds keep working unmodified.
package compat

import (
	"encoding/json"
	"errors"
	"net/http"

	"dokan/gateway"
	"dokan/models"
	"dokan/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	GW gateway.Gateway
}

func NewHandler(gw gateway.Gateway) *Handler {
	return &Handler{GW: gw}
}

// Serve dispatches on method + route. List routes return a bare array;
// write routes return {"status":"success"} or a non-2xx {"error": ...}.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	route := r.URL.Query().Get("route")

	switch r.Method {
	case http.MethodGet:
		switch route {
		case "products":
			h.listProducts(w, r)
		case "orders":
			h.listOrders(w, r)
		default:
			utils.RespondWithError(w, http.StatusNotFound, "Unknown route")
		}
	case http.MethodPost:
		switch route {
		case "add_product":
			h.addProduct(w, r)
		case "delete_product":
			h.deleteProduct(w, r)
		case "place_order":
			h.placeOrder(w, r)
		case "update_order_status":
			h.updateOrderStatus(w, r)
		case "delete_order":
			h.deleteOrder(w, r)
		default:
			utils.RespondWithError(w, http.StatusNotFound, "Unknown route")
		}
	default:
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	list, err := h.GW.ListProducts(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	if list == nil {
		list = []models.Product{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.GW.ListOrders(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if list == nil {
		list = []models.Order{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product data")
		return
	}
	if err := h.GW.UpsertProduct(r.Context(), p); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save product")
		return
	}
	success(w)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if err := h.GW.DeleteProduct(r.Context(), input.ID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	success(w)
}

// placeOrder inserts the order as submitted; the legacy client owns id,
// status and timestamp. A duplicate id is a hard failure, never an
// overwrite.
func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var o models.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order data")
		return
	}
	if err := h.GW.PlaceOrder(r.Context(), o); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to place order")
		return
	}
	success(w)
}

// updateOrderStatus mirrors the legacy behavior of reporting success even
// when no row matches.
func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ID     string             `json:"id"`
		Status models.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	err := h.GW.UpdateOrderStatus(r.Context(), input.ID, input.Status)
	if err != nil && !errors.Is(err, gateway.ErrNotFound) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}
	success(w)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if err := h.GW.DeleteOrder(r.Context(), input.ID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}
	success(w)
}

func success(w http.ResponseWriter) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
