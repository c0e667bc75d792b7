package projects

import (
	"encoding/json"
	"time"
)

// Project is the core row without version data
type Project struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"createdBy,omitempty"`
	DesignMode  string    `json:"designMode"`
	IsDraft     bool      `json:"isDraft"`
	FolderID    *string   `json:"folderId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Summary is a list entry annotated with creator email and save count
type Summary struct {
	Project
	CreatedByEmail string `json:"createdByEmail"`
	VersionCount   int    `json:"versionCount"`
}

// Detail is a project with its latest design document. Version is 0 and
// Data nil when the project has never been saved.
type Detail struct {
	Project
	Version        int             `json:"version"`
	Data           json.RawMessage `json:"data"`
	PDFBackgrounds []PDFBackground `json:"pdfBackgrounds"`
}

// VersionInfo describes one saved revision without its document body
type VersionInfo struct {
	Version   int       `json:"version"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// PDFBackground is an uploaded plan underlay attached to a project. The
// file itself lives in object storage; the row carries its URL and
// renderer metadata.
type PDFBackground struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"projectId"`
	FileURL   string          `json:"fileUrl"`
	FileName  string          `json:"fileName"`
	PageCount int             `json:"pageCount"`
	Metadata  json.RawMessage `json:"metadata"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Folder groups projects; folders nest through ParentID
type Folder struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Name      string    `json:"name"`
	ParentID  *string   `json:"parentId"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateRequest is the payload for project creation. InitialData, when
// present, is written as version 1 in the same transaction.
type CreateRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	DesignMode  string          `json:"designMode"`
	IsDraft     *bool           `json:"isDraft"`
	FolderID    *string         `json:"folderId"`
	InitialData json.RawMessage `json:"initialData"`
}

// Patch carries the updatable fields; nil means "leave unchanged"
type Patch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// IsEmpty reports whether the patch changes nothing
func (p *Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil
}

// SaveDataRequest is the payload for appending a design document revision
type SaveDataRequest struct {
	Data json.RawMessage `json:"data"`
}

// CreateFolderRequest is the payload for folder creation
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
}
