package handler

import (
	"net/http"
	"strconv"

	"koffiehuis-be/internal/logger"
	"koffiehuis-be/internal/product"
	"koffiehuis-be/internal/upload"
	"koffiehuis-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func ListProductsHandler(svc product.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := product.ListOptions{
			Category: r.URL.Query().Get("category"),
			Search:   r.URL.Query().Get("search"),
			Sort:     r.URL.Query().Get("sort"),
		}

		products, err := svc.GetList(r.Context(), opts)
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, products)
	}
}

func GetProductHandler(svc product.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			utils.WriteJSONError(w, "Product not found", http.StatusNotFound)
			return
		}

		p, err := svc.GetProductByID(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, p)
	}
}

func CreateProductHandler(svc product.Service, uploads *upload.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			utils.WriteJSONError(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		imageURL, err := processUploadedImage(r, uploads)
		if err != nil {
			writeError(w, r, err)
			return
		}

		priceStr := r.FormValue("price")
		if r.FormValue("name") == "" || r.FormValue("category") == "" ||
			priceStr == "" || r.FormValue("description") == "" {
			utils.WriteJSONError(w, "Missing required fields", http.StatusBadRequest)
			return
		}
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			utils.WriteJSONError(w, "Invalid price", http.StatusBadRequest)
			return
		}

		input := product.NewProductInput{
			Name:        r.FormValue("name"),
			Category:    r.FormValue("category"),
			Price:       price,
			Description: r.FormValue("description"),
			Image:       imageURL,
		}
		if badge := r.FormValue("badge"); badge != "" {
			input.Badge = utils.StrPtr(badge)
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, http.StatusCreated, created)
	}
}

func UpdateProductHandler(svc product.Service, uploads *upload.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			utils.WriteJSONError(w, "Product not found", http.StatusNotFound)
			return
		}

		if err := r.ParseMultipartForm(10 << 20); err != nil {
			utils.WriteJSONError(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		var input product.UpdateProductInput
		if v := r.FormValue("name"); v != "" {
			input.Name = &v
		}
		if v := r.FormValue("category"); v != "" {
			input.Category = &v
		}
		if v := r.FormValue("price"); v != "" {
			price, err := decimal.NewFromString(v)
			if err != nil {
				utils.WriteJSONError(w, "Invalid price", http.StatusBadRequest)
				return
			}
			input.Price = &price
		}
		if v := r.FormValue("description"); v != "" {
			input.Description = &v
		}
		// An explicitly supplied empty badge clears the stored badge.
		if r.Form.Has("badge") {
			v := r.FormValue("badge")
			input.Badge = &v
		}

		imageURL, err := processUploadedImage(r, uploads)
		if err != nil {
			writeError(w, r, err)
			return
		}
		input.Image = imageURL

		updated, replacedImage, err := svc.Update(r.Context(), id, input)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if replacedImage != nil {
			if err := uploads.Delete(*replacedImage); err != nil {
				logger.FromCtx(r.Context()).Warn("failed to delete replaced image", zap.Error(err))
			}
		}
		utils.WriteJSON(w, http.StatusOK, updated)
	}
}

func DeleteProductHandler(svc product.Service, uploads *upload.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			utils.WriteJSONError(w, "Product not found", http.StatusNotFound)
			return
		}

		removedImage, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if removedImage != nil {
			if err := uploads.Delete(*removedImage); err != nil {
				logger.FromCtx(r.Context()).Warn("failed to delete product image", zap.Error(err))
			}
		}
		utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
	}
}

// processUploadedImage stores the optional "image" form file and returns
// its URL, or nil when the request carries no image.
func processUploadedImage(r *http.Request, uploads *upload.Processor) (*string, error) {
	file, _, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	url, err := uploads.Process(file)
	if err != nil {
		return nil, err
	}
	return &url, nil
}
