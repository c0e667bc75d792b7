package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kabsdesign/studio/pkg/auth"
	"github.com/kabsdesign/studio/pkg/httputil"
)

// AuthHandlers serves registration and login
type AuthHandlers struct {
	service *auth.Service
}

// NewAuthHandlers creates the auth handler set
func NewAuthHandlers(service *auth.Service) *AuthHandlers {
	return &AuthHandlers{service: service}
}

// RegisterRoutes registers the auth routes
func (h *AuthHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/auth/register", h.register).Methods("POST")
	router.HandleFunc("/api/auth/login", h.login).Methods("POST")
}

func (h *AuthHandlers) register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteCreated(w, resp)
}

func (h *AuthHandlers) login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteSuccess(w, resp)
}
