package handler

import (
	"encoding/json"
	"net/http"

	"koffiehuis-be/internal/order"
	"koffiehuis-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type createOrderRequest struct {
	Items    []order.Item    `json:"items"`
	Customer order.Customer  `json:"customer"`
	Total    decimal.Decimal `json:"total"`
}

type updateStatusRequest struct {
	Status order.Status `json:"status"`
}

func ListOrdersHandler(svc order.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := svc.GetOrders(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, orders)
	}
}

func GetOrderHandler(svc order.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetOrderByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, o)
	}
}

func CreateOrderHandler(svc order.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.WriteJSONError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		created, err := svc.Create(r.Context(), order.NewOrderInput{
			Items:    req.Items,
			Customer: req.Customer,
			Total:    req.Total,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, http.StatusCreated, created)
	}
}

func UpdateOrderStatusHandler(svc order.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.WriteJSONError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		updated, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, updated)
	}
}
