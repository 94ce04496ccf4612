package handler

import (
	"errors"
	"net/http"

	"koffiehuis-be/internal/logger"
	"koffiehuis-be/internal/order"
	"koffiehuis-be/internal/product"
	"koffiehuis-be/internal/upload"
	"koffiehuis-be/internal/utils"

	"go.uber.org/zap"
)

// writeError maps domain errors onto the HTTP status taxonomy: 400 for
// validation and invalid status, 404 for missing records, 413 for
// oversized uploads, 500 for storage faults.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		utils.WriteJSONError(w, "Product not found", http.StatusNotFound)
	case errors.Is(err, order.ErrOrderNotFound):
		utils.WriteJSONError(w, "Order not found", http.StatusNotFound)
	case errors.Is(err, order.ErrInvalidStatus):
		utils.WriteJSONError(w, "Invalid status", http.StatusBadRequest)
	case errors.Is(err, product.ErrValidation), errors.Is(err, order.ErrValidation):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, upload.ErrUnsupportedType):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, upload.ErrTooLarge):
		utils.WriteJSONError(w, "File too large", http.StatusRequestEntityTooLarge)
	default:
		logger.FromCtx(r.Context()).Error("request failed", zap.Error(err))
		utils.WriteJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}
