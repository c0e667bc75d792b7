package projects

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kabsdesign/studio/pkg/apperr"
)

// Design modes accepted on project creation.
const (
	DesignMode2D = "2d"
	DesignMode3D = "3d"
)

// ProjectStatusActive is the lifecycle state new projects start in.
const ProjectStatusActive = "active"

// Service implements project CRUD and versioned design-document storage
// over PostgreSQL. Every query binds the caller's company id, so rows
// from other tenants are unreachable rather than merely forbidden.
type Service struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewService creates the project service
func NewService(db *sql.DB, logger *logrus.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// List returns the company's projects, newest activity first, annotated
// with the creator's email and the number of saved revisions.
func (s *Service) List(ctx context.Context, companyID string) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.company_id, p.name, COALESCE(p.description, ''), p.status,
		        p.created_by, p.design_mode, p.is_draft, p.folder_id,
		        p.created_at, p.updated_at,
		        COALESCE(u.email, ''),
		        (SELECT COUNT(*) FROM project_data pd WHERE pd.project_id = p.id)
		 FROM projects p
		 LEFT JOIN users u ON u.id = p.created_by
		 WHERE p.company_id = $1
		 ORDER BY p.updated_at DESC`,
		companyID,
	)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("listing projects: %w", err))
	}
	defer rows.Close()

	summaries := make([]Summary, 0)
	for rows.Next() {
		var item Summary
		var createdBy sql.NullString
		if err := rows.Scan(
			&item.ID, &item.CompanyID, &item.Name, &item.Description, &item.Status,
			&createdBy, &item.DesignMode, &item.IsDraft, &item.FolderID,
			&item.CreatedAt, &item.UpdatedAt,
			&item.CreatedByEmail, &item.VersionCount,
		); err != nil {
			return nil, apperr.Internal(fmt.Errorf("scanning project row: %w", err))
		}
		item.CreatedBy = createdBy.String
		summaries = append(summaries, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(err)
	}
	return summaries, nil
}

// Get returns a project with its latest design document and its PDF
// backgrounds. Version is 0 and Data nil when no revision has been saved.
func (s *Service) Get(ctx context.Context, companyID, projectID string) (*Detail, error) {
	detail := &Detail{}
	var createdBy sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, company_id, name, COALESCE(description, ''), status, created_by,
		        design_mode, is_draft, folder_id, created_at, updated_at
		 FROM projects
		 WHERE id = $1 AND company_id = $2`,
		projectID, companyID,
	).Scan(
		&detail.ID, &detail.CompanyID, &detail.Name, &detail.Description,
		&detail.Status, &createdBy, &detail.DesignMode, &detail.IsDraft, &detail.FolderID,
		&detail.CreatedAt, &detail.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Project not found")
		}
		return nil, apperr.Internal(fmt.Errorf("fetching project: %w", err))
	}
	detail.CreatedBy = createdBy.String

	var data []byte
	err = s.db.QueryRowContext(ctx,
		`SELECT data_json, version
		 FROM project_data
		 WHERE project_id = $1
		 ORDER BY version DESC
		 LIMIT 1`,
		projectID,
	).Scan(&data, &detail.Version)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Internal(fmt.Errorf("fetching latest revision: %w", err))
	}
	detail.Data = json.RawMessage(data)

	backgrounds, err := s.listPDFBackgrounds(ctx, projectID)
	if err != nil {
		return nil, err
	}
	detail.PDFBackgrounds = backgrounds

	return detail, nil
}

func (s *Service) listPDFBackgrounds(ctx context.Context, projectID string) ([]PDFBackground, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, file_url, file_name, page_count, metadata, created_at
		 FROM pdf_backgrounds
		 WHERE project_id = $1
		 ORDER BY created_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("listing pdf backgrounds: %w", err))
	}
	defer rows.Close()

	backgrounds := make([]PDFBackground, 0)
	for rows.Next() {
		var bg PDFBackground
		var metadata []byte
		if err := rows.Scan(
			&bg.ID, &bg.ProjectID, &bg.FileURL, &bg.FileName,
			&bg.PageCount, &metadata, &bg.CreatedAt,
		); err != nil {
			return nil, apperr.Internal(fmt.Errorf("scanning pdf background: %w", err))
		}
		bg.Metadata = json.RawMessage(metadata)
		backgrounds = append(backgrounds, bg)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(err)
	}
	return backgrounds, nil
}

// Create inserts a project, and when InitialData is present writes it as
// revision 1 in the same transaction so a project is never visible
// half-created.
func (s *Service) Create(ctx context.Context, companyID, userID string, req *CreateRequest) (*Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("Project name is required")
	}

	doc := defaultsFromData(req.InitialData)

	mode := req.DesignMode
	if mode == "" {
		mode = doc.DesignMode
	}
	if mode == "" {
		mode = DesignMode2D
	}
	if mode != DesignMode2D && mode != DesignMode3D {
		return nil, apperr.Validation("Design mode must be '2d' or '3d'")
	}

	isDraft := true
	switch {
	case req.IsDraft != nil:
		isDraft = *req.IsDraft
	case doc.IsDraft != nil:
		isDraft = *doc.IsDraft
	}

	folderID := req.FolderID
	if folderID == nil {
		folderID = doc.FolderID
	}
	if folderID != nil {
		if err := s.ensureFolderOwned(ctx, companyID, *folderID); err != nil {
			return nil, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("beginning create tx: %w", err))
	}
	defer tx.Rollback()

	project := &Project{
		CompanyID:   companyID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Status:      ProjectStatusActive,
		CreatedBy:   userID,
		DesignMode:  mode,
		IsDraft:     isDraft,
		FolderID:    folderID,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO projects (company_id, name, description, created_by, design_mode, is_draft, folder_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		companyID, project.Name, project.Description, userID, mode, isDraft, folderID,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return nil, apperr.FromDB(err, "Project already exists")
	}

	if len(req.InitialData) > 0 {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO project_data (project_id, data_json, version, created_by)
			 VALUES ($1, $2, 1, $3)`,
			project.ID, []byte(req.InitialData), userID,
		)
		if err != nil {
			return nil, apperr.Internal(fmt.Errorf("inserting initial revision: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.Internal(fmt.Errorf("committing project create: %w", err))
	}

	s.logger.WithFields(logrus.Fields{
		"project_id": project.ID,
		"company_id": companyID,
	}).Info("project created")

	return project, nil
}

// documentDefaults are settings clients embed inside the initial design
// document rather than sending as top-level request fields. They seed
// the project row wherever the request leaves the field unset.
type documentDefaults struct {
	DesignMode string  `json:"design_mode"`
	IsDraft    *bool   `json:"is_draft"`
	FolderID   *string `json:"folder_id"`
}

func defaultsFromData(data json.RawMessage) documentDefaults {
	if len(data) == 0 {
		return documentDefaults{}
	}
	var doc documentDefaults
	if err := json.Unmarshal(data, &doc); err != nil {
		return documentDefaults{}
	}
	if doc.FolderID != nil && *doc.FolderID == "" {
		doc.FolderID = nil
	}
	return doc
}

// ensureFolderOwned verifies a folder referenced by id belongs to the
// caller's company. Foreign folders read as not found.
func (s *Service) ensureFolderOwned(ctx context.Context, companyID, folderID string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM folders WHERE id = $1 AND company_id = $2)",
		folderID, companyID,
	).Scan(&exists)
	if err != nil {
		return apperr.Internal(fmt.Errorf("checking folder: %w", err))
	}
	if !exists {
		return apperr.NotFound("Folder not found")
	}
	return nil
}

// Update applies a partial update of name and description. An empty patch
// returns the current row unchanged.
func (s *Service) Update(ctx context.Context, companyID, projectID string, patch *Patch) (*Project, error) {
	if patch.IsEmpty() {
		return s.getProjectRow(ctx, companyID, projectID)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperr.Validation("Project name cannot be empty")
	}

	setClauses := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	argPos := 1

	if patch.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argPos))
		args = append(args, strings.TrimSpace(*patch.Name))
		argPos++
	}
	if patch.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argPos))
		args = append(args, strings.TrimSpace(*patch.Description))
		argPos++
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(
		`UPDATE projects SET %s
		 WHERE id = $%d AND company_id = $%d
		 RETURNING id, company_id, name, COALESCE(description, ''), status, created_by,
		           design_mode, is_draft, folder_id, created_at, updated_at`,
		strings.Join(setClauses, ", "), argPos, argPos+1,
	)
	args = append(args, projectID, companyID)

	project := &Project{}
	var createdBy sql.NullString
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&project.ID, &project.CompanyID, &project.Name, &project.Description,
		&project.Status, &createdBy, &project.DesignMode, &project.IsDraft, &project.FolderID,
		&project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Project not found")
		}
		return nil, apperr.Internal(fmt.Errorf("updating project: %w", err))
	}
	project.CreatedBy = createdBy.String
	return project, nil
}

func (s *Service) getProjectRow(ctx context.Context, companyID, projectID string) (*Project, error) {
	project := &Project{}
	var createdBy sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, company_id, name, COALESCE(description, ''), status, created_by,
		        design_mode, is_draft, folder_id, created_at, updated_at
		 FROM projects
		 WHERE id = $1 AND company_id = $2`,
		projectID, companyID,
	).Scan(
		&project.ID, &project.CompanyID, &project.Name, &project.Description,
		&project.Status, &createdBy, &project.DesignMode, &project.IsDraft, &project.FolderID,
		&project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Project not found")
		}
		return nil, apperr.Internal(fmt.Errorf("fetching project: %w", err))
	}
	project.CreatedBy = createdBy.String
	return project, nil
}

// Delete removes a project. Revisions and PDF backgrounds go with it via
// the schema's cascade rules.
func (s *Service) Delete(ctx context.Context, companyID, projectID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM projects WHERE id = $1 AND company_id = $2",
		projectID, companyID,
	)
	if err != nil {
		return apperr.Internal(fmt.Errorf("deleting project: %w", err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.Internal(err)
	}
	if affected == 0 {
		return apperr.NotFound("Project not found")
	}

	s.logger.WithField("project_id", projectID).Info("project deleted")
	return nil
}

// SaveData appends a new design-document revision. Revisions are
// immutable; the new version number is always one past the current
// maximum for the project.
func (s *Service) SaveData(ctx context.Context, companyID, projectID, userID string, data json.RawMessage) (int, error) {
	if len(data) == 0 {
		return 0, apperr.Validation("Design data is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, apperr.Internal(fmt.Errorf("beginning save tx: %w", err))
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1 AND company_id = $2)",
		projectID, companyID,
	).Scan(&exists)
	if err != nil {
		return 0, apperr.Internal(fmt.Errorf("checking project: %w", err))
	}
	if !exists {
		return 0, apperr.NotFound("Project not found")
	}

	var version int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO project_data (project_id, data_json, version, created_by)
		 VALUES ($1, $2,
		         (SELECT COALESCE(MAX(version), 0) + 1 FROM project_data WHERE project_id = $1),
		         $3)
		 RETURNING version`,
		projectID, []byte(data), userID,
	).Scan(&version)
	if err != nil {
		return 0, apperr.FromDB(err, "Concurrent save conflict, please retry")
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE projects SET updated_at = NOW() WHERE id = $1",
		projectID,
	)
	if err != nil {
		return 0, apperr.Internal(fmt.Errorf("touching project: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return 0, apperr.Internal(fmt.Errorf("committing save: %w", err))
	}
	return version, nil
}

// ListVersions returns revision metadata for a project, newest first
func (s *Service) ListVersions(ctx context.Context, companyID, projectID string) ([]VersionInfo, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1 AND company_id = $2)",
		projectID, companyID,
	).Scan(&exists)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("checking project: %w", err))
	}
	if !exists {
		return nil, apperr.NotFound("Project not found")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT version, created_by, created_at
		 FROM project_data
		 WHERE project_id = $1
		 ORDER BY version DESC`,
		projectID,
	)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("listing versions: %w", err))
	}
	defer rows.Close()

	versions := make([]VersionInfo, 0)
	for rows.Next() {
		var v VersionInfo
		var createdBy sql.NullString
		if err := rows.Scan(&v.Version, &createdBy, &v.CreatedAt); err != nil {
			return nil, apperr.Internal(fmt.Errorf("scanning version row: %w", err))
		}
		v.CreatedBy = createdBy.String
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(err)
	}
	return versions, nil
}

// ListFolders returns the company's folders, alphabetical
func (s *Service) ListFolders(ctx context.Context, companyID string) ([]Folder, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, company_id, name, parent_id, created_by, created_at, updated_at
		 FROM folders
		 WHERE company_id = $1
		 ORDER BY name ASC`,
		companyID,
	)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("listing folders: %w", err))
	}
	defer rows.Close()

	folders := make([]Folder, 0)
	for rows.Next() {
		var f Folder
		var createdBy sql.NullString
		if err := rows.Scan(
			&f.ID, &f.CompanyID, &f.Name, &f.ParentID,
			&createdBy, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, apperr.Internal(fmt.Errorf("scanning folder row: %w", err))
		}
		f.CreatedBy = createdBy.String
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(err)
	}
	return folders, nil
}

// CreateFolder creates a folder, optionally nested under a parent in the
// same company.
func (s *Service) CreateFolder(ctx context.Context, companyID, userID string, req *CreateFolderRequest) (*Folder, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("Folder name is required")
	}
	if req.ParentID != nil {
		if err := s.ensureFolderOwned(ctx, companyID, *req.ParentID); err != nil {
			return nil, err
		}
	}

	folder := &Folder{
		CompanyID: companyID,
		Name:      name,
		ParentID:  req.ParentID,
		CreatedBy: userID,
	}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO folders (company_id, name, parent_id, created_by)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		companyID, name, req.ParentID, userID,
	).Scan(&folder.ID, &folder.CreatedAt, &folder.UpdatedAt)
	if err != nil {
		return nil, apperr.FromDB(err, "Folder already exists")
	}
	return folder, nil
}
