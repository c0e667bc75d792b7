package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kabsdesign/studio/pkg/contextkeys"
	"github.com/kabsdesign/studio/pkg/httputil"
	"github.com/kabsdesign/studio/pkg/projects"
)

// ProjectHandlers serves tenant-scoped project CRUD, versioned design
// documents, and folders.
type ProjectHandlers struct {
	service *projects.Service
}

// NewProjectHandlers creates the project handler set
func NewProjectHandlers(service *projects.Service) *ProjectHandlers {
	return &ProjectHandlers{service: service}
}

// RegisterRoutes registers the project routes. The folder routes come
// first so "folders" is never captured as a project id.
func (h *ProjectHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/projects/folders", h.listFolders).Methods("GET")
	router.HandleFunc("/projects/folders", h.createFolder).Methods("POST")

	router.HandleFunc("/projects", h.list).Methods("GET")
	router.HandleFunc("/projects", h.create).Methods("POST")
	router.HandleFunc("/projects/{id}", h.get).Methods("GET")
	router.HandleFunc("/projects/{id}", h.update).Methods("PUT")
	router.HandleFunc("/projects/{id}", h.delete).Methods("DELETE")
	router.HandleFunc("/projects/{id}/data", h.saveData).Methods("POST")
	router.HandleFunc("/projects/{id}/data/versions", h.listVersions).Methods("GET")
}

func (h *ProjectHandlers) list(w http.ResponseWriter, r *http.Request) {
	companyID := contextkeys.GetCompanyID(r.Context())

	summaries, err := h.service.List(r.Context(), companyID)
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteSuccess(w, summaries)
}

func (h *ProjectHandlers) get(w http.ResponseWriter, r *http.Request) {
	projectID, ok := httputil.ParsePathUUIDOrError(w, r, "id", "Project")
	if !ok {
		return
	}
	companyID := contextkeys.GetCompanyID(r.Context())

	detail, err := h.service.Get(r.Context(), companyID, projectID)
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteSuccess(w, detail)
}

func (h *ProjectHandlers) create(w http.ResponseWriter, r *http.Request) {
	var req projects.CreateRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}

	ctx := r.Context()
	project, err := h.service.Create(ctx, contextkeys.GetCompanyID(ctx), contextkeys.GetUserID(ctx), &req)
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteCreated(w, project)
}

func (h *ProjectHandlers) update(w http.ResponseWriter, r *http.Request) {
	projectID, ok := httputil.ParsePathUUIDOrError(w, r, "id", "Project")
	if !ok {
		return
	}

	var patch projects.Patch
	if !httputil.ParseJSONOrError(w, r, &patch) {
		return
	}

	project, err := h.service.Update(r.Context(), contextkeys.GetCompanyID(r.Context()), projectID, &patch)
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteSuccess(w, project)
}

func (h *ProjectHandlers) delete(w http.ResponseWriter, r *http.Request) {
	projectID, ok := httputil.ParsePathUUIDOrError(w, r, "id", "Project")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), contextkeys.GetCompanyID(r.Context()), projectID); err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteSuccess(w, map[string]string{"message": "Project deleted"})
}

func (h *ProjectHandlers) saveData(w http.ResponseWriter, r *http.Request) {
	projectID, ok := httputil.ParsePathUUIDOrError(w, r, "id", "Project")
	if !ok {
		return
	}

	var req projects.SaveDataRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}
	if len(req.Data) == 0 {
		httputil.WriteValidationError(w, "Design data is required")
		return
	}

	ctx := r.Context()
	version, err := h.service.SaveData(ctx, contextkeys.GetCompanyID(ctx), projectID, contextkeys.GetUserID(ctx), req.Data)
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteCreated(w, map[string]interface{}{"version": version})
}

func (h *ProjectHandlers) listVersions(w http.ResponseWriter, r *http.Request) {
	projectID, ok := httputil.ParsePathUUIDOrError(w, r, "id", "Project")
	if !ok {
		return
	}

	versions, err := h.service.ListVersions(r.Context(), contextkeys.GetCompanyID(r.Context()), projectID)
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteSuccess(w, versions)
}

func (h *ProjectHandlers) listFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.service.ListFolders(r.Context(), contextkeys.GetCompanyID(r.Context()))
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteSuccess(w, folders)
}

func (h *ProjectHandlers) createFolder(w http.ResponseWriter, r *http.Request) {
	var req projects.CreateFolderRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}
	if !httputil.RequireNonEmpty(w, req.Name, "Folder name") {
		return
	}

	ctx := r.Context()
	folder, err := h.service.CreateFolder(ctx, contextkeys.GetCompanyID(ctx), contextkeys.GetUserID(ctx), &req)
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteCreated(w, folder)
}
