package handler

import (
	"net/http"
	"time"

	"koffiehuis-be/internal/category"
	"koffiehuis-be/internal/utils"
)

func ListCategoriesHandler(svc category.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.GetCategories(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, categories)
	}
}

func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
