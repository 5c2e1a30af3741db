package products

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"

	"dokan/gateway"
	"dokan/models"
	"dokan/mq"
	"dokan/rdx"
	"dokan/utils"

	"github.com/julienschmidt/httprouter"
)

const listCacheKey = "products:list"

type Handler struct {
	GW gateway.Gateway
}

func NewHandler(gw gateway.Gateway) *Handler {
	return &Handler{GW: gw}
}

// GetProducts returns the full product set. The list is cached in Redis and
// invalidated on every write; a cache failure just falls through to the
// gateway.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(listCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	list, err := h.GW.ListProducts(r.Context())
	if err != nil {
		log.Printf("list products: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	if list == nil {
		list = []models.Product{}
	}

	if data, err := json.Marshal(list); err == nil {
		if err := rdx.RdxSet(listCacheKey, string(data)); err != nil && err != rdx.ErrUnavailable {
			log.Printf("cache products: %v", err)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("productid")

	list, err := h.GW.ListProducts(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	for _, p := range list {
		if p.ProductID == id {
			utils.RespondWithJSON(w, http.StatusOK, p)
			return
		}
	}
	utils.RespondWithError(w, http.StatusNotFound, "Product not found")
}

// GetCategories derives the category list as the distinct values across all
// products; there is no separate category entity.
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	list, err := h.GW.ListProducts(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	seen := map[string]bool{}
	categories := []string{}
	for _, p := range list {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	utils.RespondWithJSON(w, http.StatusOK, categories)
}

// UpsertProduct inserts or fully replaces a product. A missing id gets one
// generated; resubmitting an existing id overwrites every field.
func (h *Handler) UpsertProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product data")
		return
	}
	if p.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if p.Price < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Price must not be negative")
		return
	}
	if p.ProductID == "" {
		p.ProductID = utils.GenerateID(14)
	}

	if err := h.GW.UpsertProduct(r.Context(), p); err != nil {
		log.Printf("upsert product %s: %v", p.ProductID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save product")
		return
	}

	rdx.RdxDel(listCacheKey)
	go mq.Emit("product-saved", mq.Event{EntityType: "product", EntityID: p.ProductID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status": "success",
		"data":   p,
	})
}

// DeleteProduct removes the product. Deleting an id that no longer exists
// reports success the same way.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("productid")

	if err := h.GW.DeleteProduct(r.Context(), id); err != nil {
		log.Printf("delete product %s: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	rdx.RdxDel(listCacheKey)
	go mq.Emit("product-deleted", mq.Event{EntityType: "product", EntityID: id, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "success"})
}
