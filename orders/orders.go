package orders

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"dokan/feed"
	"dokan/gateway"
	"dokan/models"
	"dokan/mq"
	"dokan/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	GW  gateway.Gateway
	Hub *feed.Hub
}

func NewHandler(gw gateway.Gateway, hub *feed.Hub) *Handler {
	return &Handler{GW: gw, Hub: hub}
}

// PlaceOrder is the storefront checkout. The client supplies customer info
// and item snapshots; the server owns id, status and timestamp. Every order
// starts pending, no exceptions.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var o models.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order data")
		return
	}

	if o.CustomerName == "" || o.CustomerPhone == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Customer name and phone are required")
		return
	}
	if len(o.Items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Order must contain at least one item")
		return
	}
	for _, it := range o.Items {
		if it.Quantity <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Item quantity must be positive")
			return
		}
	}

	total := models.ItemsTotal(o.Items)
	if o.TotalPrice == 0 {
		o.TotalPrice = total
	} else if o.TotalPrice != total {
		utils.RespondWithError(w, http.StatusBadRequest, "Total price does not match items")
		return
	}

	if o.OrderID == "" {
		o.OrderID = utils.GetUUID()
	}
	o.Status = models.StatusPending
	o.CreatedAt = time.Now().UTC()

	if err := h.GW.PlaceOrder(r.Context(), o); err != nil {
		if errors.Is(err, gateway.ErrDuplicateOrder) {
			utils.RespondWithError(w, http.StatusConflict, "Order already exists")
			return
		}
		log.Printf("place order %s: %v", o.OrderID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to place order")
		return
	}

	h.Hub.Broadcast(feed.OrderEvent{Action: "placed", OrderID: o.OrderID, Status: o.Status})
	go mq.Emit("order-placed", mq.Event{EntityType: "order", EntityID: o.OrderID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"status": "success",
		"data":   o,
	})
}

// GetOrders returns all orders newest-first.
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	list, err := h.GW.ListOrders(r.Context())
	if err != nil {
		log.Printf("list orders: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if list == nil {
		list = []models.Order{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// UpdateOrderStatus moves a pending order to completed or cancelled.
// Terminal orders never move again.
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("orderid")

	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !body.Status.Valid() {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	current, ok := h.findOrder(r, id)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if !current.Status.CanTransition(body.Status) {
		utils.RespondWithError(w, http.StatusConflict, "Invalid status transition")
		return
	}

	if err := h.GW.UpdateOrderStatus(r.Context(), id, body.Status); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		log.Printf("update order %s: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	h.Hub.Broadcast(feed.OrderEvent{Action: "status", OrderID: id, Status: body.Status})
	go mq.Emit("order-status", mq.Event{EntityType: "order", EntityID: id, Method: "PATCH"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "success"})
}

// DeleteOrder removes the order outright. There is no soft delete.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("orderid")

	if err := h.GW.DeleteOrder(r.Context(), id); err != nil {
		log.Printf("delete order %s: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	h.Hub.Broadcast(feed.OrderEvent{Action: "deleted", OrderID: id})
	go mq.Emit("order-deleted", mq.Event{EntityType: "order", EntityID: id, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "success"})
}

func (h *Handler) findOrder(r *http.Request, id string) (models.Order, bool) {
	list, err := h.GW.ListOrders(r.Context())
	if err != nil {
		return models.Order{}, false
	}
	for _, o := range list {
		if o.OrderID == id {
			return o, true
		}
	}
	return models.Order{}, false
}
