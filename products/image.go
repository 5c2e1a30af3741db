package products

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"dokan/mq"
	"dokan/rdx"
	"dokan/utils"

	"github.com/julienschmidt/httprouter"
)

var productUploadPath = "./static/productpic"

// UploadProductImage attaches an image to an existing product, generates a
// thumbnail, and points the product's image field at the stored file.
func (h *Handler) UploadProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("productid")

	list, err := h.GW.ListProducts(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	idx := -1
	for i, p := range list {
		if p.ProductID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image file missing")
		return
	}
	defer file.Close()

	var ext string
	switch header.Header.Get("Content-Type") {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	default:
		utils.RespondWithError(w, http.StatusUnsupportedMediaType, "Only JPG, PNG and WEBP are allowed")
		return
	}

	if err := os.MkdirAll(productUploadPath, 0o755); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving image")
		return
	}
	out, err := os.Create(filepath.Join(productUploadPath, id+ext))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving image")
		return
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving image")
		return
	}
	if err := utils.CreateThumb(id, productUploadPath, ext, 300, 200); err != nil {
		log.Printf("thumbnail %s: %v", id, err)
	}

	p := list[idx]
	p.Image = "/static/productpic/" + id + ext
	if err := h.GW.UpsertProduct(r.Context(), p); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save product")
		return
	}

	rdx.RdxDel(listCacheKey)
	go mq.Emit("product-saved", mq.Event{EntityType: "product", EntityID: id, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status": "success",
		"image":  p.Image,
	})
}
