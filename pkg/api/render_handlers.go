package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/kabsdesign/studio/pkg/httputil"
	"github.com/kabsdesign/studio/pkg/render"
)

// RenderHandlers serves the image generation routes
type RenderHandlers struct {
	gateway *render.Gateway
}

// NewRenderHandlers creates the render handler set
func NewRenderHandlers(gateway *render.Gateway) *RenderHandlers {
	return &RenderHandlers{gateway: gateway}
}

// RegisterRoutes registers the rendering routes. The /gemini prefix is
// kept for client compatibility even though prompt enhancement is
// currently disabled.
func (h *RenderHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/gemini/generate-kitchen", h.generateKitchen).Methods("POST")
	router.HandleFunc("/gemini/generate-kitchen-image", h.generateKitchenImage).Methods("POST")

	router.HandleFunc("/ai-designer/generate", h.generateVariants).Methods("POST")
	router.HandleFunc("/ai-designer/upload", h.upload).Methods("POST")
	router.HandleFunc("/ai-designer/history", h.history).Methods("GET")
}

// disableWriteDeadline lifts the server's write timeout for one request.
// Generation jobs poll the provider for minutes, far past the timeout
// tuned for CRUD traffic. Writers that cannot carry deadlines, such as
// test recorders, report an error we deliberately drop.
func disableWriteDeadline(w http.ResponseWriter) {
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})
}

func (h *RenderHandlers) generateKitchen(w http.ResponseWriter, r *http.Request) {
	disableWriteDeadline(w)

	var req render.KitchenRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}

	resp, err := h.gateway.GenerateKitchen(r.Context(), &req)
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteSuccess(w, resp)
}

func (h *RenderHandlers) generateKitchenImage(w http.ResponseWriter, r *http.Request) {
	disableWriteDeadline(w)

	var req render.KitchenRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}

	resp, err := h.gateway.GenerateKitchenImage(r.Context(), &req)
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteSuccess(w, resp)
}

func (h *RenderHandlers) generateVariants(w http.ResponseWriter, r *http.Request) {
	disableWriteDeadline(w)

	var req render.VariantRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}

	resp, err := h.gateway.GenerateVariants(r.Context(), &req)
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteSuccess(w, resp)
}

type uploadRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// upload acknowledges a reference upload. Persisting uploads is not
// implemented yet; clients only need the acknowledgement.
func (h *RenderHandlers) upload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}
	if req.Type == "" {
		req.Type = "pdf"
	}
	if !httputil.RequireNonEmpty(w, req.Name, "Name") {
		return
	}

	httputil.WriteSuccess(w, map[string]string{
		"message": "upload stub",
		"name":    req.Name,
		"type":    req.Type,
	})
}

// history returns recent prompts and variants; nothing is recorded yet
// so the list is empty.
func (h *RenderHandlers) history(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, map[string]interface{}{
		"items": []interface{}{},
	})
}
