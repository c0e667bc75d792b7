package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kabsdesign/studio/pkg/catalog"
	"github.com/kabsdesign/studio/pkg/httputil"
)

// CatalogHandlers serves the furniture block catalog
type CatalogHandlers struct {
	store *catalog.Store
}

// NewCatalogHandlers creates the catalog handler set
func NewCatalogHandlers(store *catalog.Store) *CatalogHandlers {
	return &CatalogHandlers{store: store}
}

// RegisterRoutes registers the catalog routes
func (h *CatalogHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/catalog/blocks", h.listBlocks).Methods("GET")
	router.HandleFunc("/catalog/blocks", h.upsertBlock).Methods("POST")
}

func (h *CatalogHandlers) listBlocks(w http.ResponseWriter, r *http.Request) {
	blocks := h.store.All()
	if category := r.URL.Query().Get("category"); category != "" {
		blocks = h.store.ByCategory(category)
	}
	httputil.WriteSuccess(w, blocks)
}

func (h *CatalogHandlers) upsertBlock(w http.ResponseWriter, r *http.Request) {
	var block catalog.BlockDefinition
	if !httputil.ParseJSONOrError(w, r, &block) {
		return
	}
	if !httputil.RequireNonEmpty(w, block.ID, "Block id") {
		return
	}
	if !httputil.RequireNonEmpty(w, block.Name, "Block name") {
		return
	}

	h.store.Upsert(block)
	httputil.WriteCreated(w, block)
}
