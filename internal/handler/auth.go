package handler

import (
	"encoding/json"
	"net/http"

	"koffiehuis-be/internal/auth"
	"koffiehuis-be/internal/utils"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string         `json:"token"`
	User  auth.Principal `json:"user"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Valid bool           `json:"valid"`
	User  auth.Principal `json:"user"`
}

func LoginHandler(authSvc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.WriteJSONError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
		if req.Username == "" || req.Password == "" {
			utils.WriteJSONError(w, "Username and password required", http.StatusBadRequest)
			return
		}

		token, principal, err := authSvc.Login(req.Username, req.Password)
		if err != nil {
			utils.WriteJSONError(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		utils.WriteJSON(w, http.StatusOK, loginResponse{Token: token, User: principal})
	}
}

func VerifyTokenHandler(authSvc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req verifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.WriteJSONError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
		if req.Token == "" {
			utils.WriteJSONError(w, "Token required", http.StatusBadRequest)
			return
		}

		principal, err := authSvc.Verify(req.Token)
		if err != nil {
			utils.WriteJSONError(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		utils.WriteJSON(w, http.StatusOK, verifyResponse{Valid: true, User: principal})
	}
}
