package projects

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabsdesign/studio/pkg/apperr"
)

const (
	testCompanyID = "11111111-1111-1111-1111-111111111111"
	testUserID    = "22222222-2222-2222-2222-222222222222"
	testProjectID = "33333333-3333-3333-3333-333333333333"
)

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewService(db, logger), mock
}

var projectColumns = []string{
	"id", "company_id", "name", "description", "status", "created_by",
	"design_mode", "is_draft", "folder_id", "created_at", "updated_at",
}

func projectRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(projectColumns).AddRow(
		testProjectID, testCompanyID, "Kitchen A", "", ProjectStatusActive, testUserID,
		DesignMode2D, true, nil, now, now,
	)
}

func TestListScopesByCompany(t *testing.T) {
	svc, mock := newTestService(t)
	now := time.Now()

	cols := append(append([]string{}, projectColumns...), "email", "version_count")
	rows := sqlmock.NewRows(cols).
		AddRow(testProjectID, testCompanyID, "Kitchen A", "", ProjectStatusActive, testUserID,
			DesignMode2D, true, nil, now, now, "owner@acme.test", 3)

	mock.ExpectQuery("SELECT p.id, p.company_id").
		WithArgs(testCompanyID).
		WillReturnRows(rows)

	list, err := svc.List(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "owner@acme.test", list[0].CreatedByEmail)
	assert.Equal(t, ProjectStatusActive, list[0].Status)
	assert.Equal(t, 3, list[0].VersionCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmptyReturnsEmptySlice(t *testing.T) {
	svc, mock := newTestService(t)

	cols := append(append([]string{}, projectColumns...), "email", "version_count")
	mock.ExpectQuery("SELECT p.id, p.company_id").
		WillReturnRows(sqlmock.NewRows(cols))

	list, err := svc.List(context.Background(), testCompanyID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestGetReturnsLatestRevision(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery("SELECT id, company_id").
		WithArgs(testProjectID, testCompanyID).
		WillReturnRows(projectRow())
	mock.ExpectQuery("SELECT data_json, version").
		WithArgs(testProjectID).
		WillReturnRows(sqlmock.NewRows([]string{"data_json", "version"}).
			AddRow([]byte(`{"elements":[]}`), 4))
	mock.ExpectQuery("SELECT id, project_id, file_url").
		WithArgs(testProjectID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "project_id", "file_url", "file_name",
			"page_count", "metadata", "created_at",
		}).AddRow("bg1", testProjectID, "https://cdn.test/plans/floor.pdf",
			"floor.pdf", 3, []byte(`{"scale":100}`), time.Now()))

	detail, err := svc.Get(context.Background(), testCompanyID, testProjectID)
	require.NoError(t, err)
	assert.Equal(t, 4, detail.Version)
	assert.Equal(t, ProjectStatusActive, detail.Status)
	assert.JSONEq(t, `{"elements":[]}`, string(detail.Data))
	require.Len(t, detail.PDFBackgrounds, 1)
	bg := detail.PDFBackgrounds[0]
	assert.Equal(t, "https://cdn.test/plans/floor.pdf", bg.FileURL)
	assert.Equal(t, "floor.pdf", bg.FileName)
	assert.Equal(t, 3, bg.PageCount)
	assert.JSONEq(t, `{"scale":100}`, string(bg.Metadata))
}

func TestGetWithNoRevisionsReportsVersionZero(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery("SELECT id, company_id").
		WillReturnRows(projectRow())
	mock.ExpectQuery("SELECT data_json, version").
		WillReturnRows(sqlmock.NewRows([]string{"data_json", "version"}))
	mock.ExpectQuery("SELECT id, project_id, file_url").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "project_id", "file_url", "file_name",
			"page_count", "metadata", "created_at",
		}))

	detail, err := svc.Get(context.Background(), testCompanyID, testProjectID)
	require.NoError(t, err)
	assert.Equal(t, 0, detail.Version)
	assert.Nil(t, detail.Data)
}

func TestGetCrossTenantReadsAsNotFound(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery("SELECT id, company_id").
		WithArgs(testProjectID, "other-company").
		WillReturnRows(sqlmock.NewRows(projectColumns))

	_, err := svc.Get(context.Background(), "other-company", testProjectID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}

func TestCreateWithoutInitialData(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO projects").
		WithArgs(testCompanyID, "Kitchen A", "", testUserID, DesignMode2D, true, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(testProjectID, time.Now(), time.Now()))
	mock.ExpectCommit()

	project, err := svc.Create(context.Background(), testCompanyID, testUserID,
		&CreateRequest{Name: "Kitchen A"})
	require.NoError(t, err)
	assert.Equal(t, DesignMode2D, project.DesignMode)
	assert.Equal(t, ProjectStatusActive, project.Status)
	assert.True(t, project.IsDraft)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithInitialDataWritesVersionOne(t *testing.T) {
	svc, mock := newTestService(t)
	initial := json.RawMessage(`{"elements":[],"folder_id":"44444444-4444-4444-4444-444444444444"}`)

	mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM folders").
		WithArgs("44444444-4444-4444-4444-444444444444", testCompanyID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO projects").
		WithArgs(testCompanyID, "Kitchen A", "", testUserID, DesignMode2D, true,
			"44444444-4444-4444-4444-444444444444").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(testProjectID, time.Now(), time.Now()))
	mock.ExpectExec("INSERT INTO project_data").
		WithArgs(testProjectID, []byte(initial), testUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	project, err := svc.Create(context.Background(), testCompanyID, testUserID,
		&CreateRequest{Name: "Kitchen A", InitialData: initial})
	require.NoError(t, err)
	require.NotNil(t, project.FolderID)
	assert.Equal(t, "44444444-4444-4444-4444-444444444444", *project.FolderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// design_mode and is_draft embedded in the initial document seed the
// project row when the request leaves those fields unset.
func TestCreateHonorsDocumentDefaults(t *testing.T) {
	svc, mock := newTestService(t)
	initial := json.RawMessage(`{"elements":[],"design_mode":"3d","is_draft":false}`)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO projects").
		WithArgs(testCompanyID, "Kitchen A", "", testUserID, DesignMode3D, false, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(testProjectID, time.Now(), time.Now()))
	mock.ExpectExec("INSERT INTO project_data").
		WithArgs(testProjectID, []byte(initial), testUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	project, err := svc.Create(context.Background(), testCompanyID, testUserID,
		&CreateRequest{Name: "Kitchen A", InitialData: initial})
	require.NoError(t, err)
	assert.Equal(t, DesignMode3D, project.DesignMode)
	assert.False(t, project.IsDraft)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsForeignFolder(t *testing.T) {
	svc, mock := newTestService(t)
	foreign := "44444444-4444-4444-4444-444444444444"

	mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM folders").
		WithArgs(foreign, testCompanyID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := svc.Create(context.Background(), testCompanyID, testUserID,
		&CreateRequest{Name: "Kitchen A", FolderID: &foreign})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), testCompanyID, testUserID,
		&CreateRequest{Name: "  "})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))

	_, err = svc.Create(context.Background(), testCompanyID, testUserID,
		&CreateRequest{Name: "Kitchen", DesignMode: "4d"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}

func TestUpdatePartialPatch(t *testing.T) {
	svc, mock := newTestService(t)
	newName := "Kitchen B"

	mock.ExpectQuery("UPDATE projects SET name = \\$1, updated_at = NOW\\(\\)").
		WithArgs(newName, testProjectID, testCompanyID).
		WillReturnRows(projectRow())

	project, err := svc.Update(context.Background(), testCompanyID, testProjectID,
		&Patch{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, testProjectID, project.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmptyPatchReturnsCurrentRow(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery("SELECT id, company_id").
		WithArgs(testProjectID, testCompanyID).
		WillReturnRows(projectRow())

	project, err := svc.Update(context.Background(), testCompanyID, testProjectID, &Patch{})
	require.NoError(t, err)
	assert.Equal(t, "Kitchen A", project.Name)
}

func TestUpdateRejectsEmptyName(t *testing.T) {
	svc, _ := newTestService(t)
	blank := "  "

	_, err := svc.Update(context.Background(), testCompanyID, testProjectID,
		&Patch{Name: &blank})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}

func TestUpdateUnknownProjectIsNotFound(t *testing.T) {
	svc, mock := newTestService(t)
	newName := "Kitchen B"

	mock.ExpectQuery("UPDATE projects SET").
		WillReturnRows(sqlmock.NewRows(projectColumns))

	_, err := svc.Update(context.Background(), testCompanyID, testProjectID,
		&Patch{Name: &newName})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}

func TestDelete(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectExec("DELETE FROM projects").
		WithArgs(testProjectID, testCompanyID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, svc.Delete(context.Background(), testCompanyID, testProjectID))
}

func TestDeleteUnknownProjectIsNotFound(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectExec("DELETE FROM projects").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(context.Background(), testCompanyID, testProjectID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}

func TestSaveDataAppendsNextVersion(t *testing.T) {
	svc, mock := newTestService(t)
	data := json.RawMessage(`{"elements":[{"type":"wall"}]}`)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(testProjectID, testCompanyID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("INSERT INTO project_data").
		WithArgs(testProjectID, []byte(data), testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(5))
	mock.ExpectExec("UPDATE projects SET updated_at").
		WithArgs(testProjectID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	version, err := svc.SaveData(context.Background(), testCompanyID, testProjectID, testUserID, data)
	require.NoError(t, err)
	assert.Equal(t, 5, version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveDataUnknownProjectIsNotFound(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err := svc.SaveData(context.Background(), testCompanyID, testProjectID, testUserID,
		json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}

func TestSaveDataRequiresBody(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SaveData(context.Background(), testCompanyID, testProjectID, testUserID, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}

func TestListVersions(t *testing.T) {
	svc, mock := newTestService(t)
	now := time.Now()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(testProjectID, testCompanyID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT version, created_by, created_at").
		WithArgs(testProjectID).
		WillReturnRows(sqlmock.NewRows([]string{"version", "created_by", "created_at"}).
			AddRow(2, testUserID, now).
			AddRow(1, testUserID, now.Add(-time.Hour)))

	versions, err := svc.ListVersions(context.Background(), testCompanyID, testProjectID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, 2, versions[0].Version)
	assert.Equal(t, 1, versions[1].Version)
}

func TestFolders(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		svc, mock := newTestService(t)
		now := time.Now()
		mock.ExpectQuery("SELECT id, company_id, name, parent_id").
			WithArgs(testCompanyID).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "company_id", "name", "parent_id", "created_by", "created_at", "updated_at",
			}).AddRow("f1", testCompanyID, "Drafts", nil, testUserID, now, now))

		folders, err := svc.ListFolders(context.Background(), testCompanyID)
		require.NoError(t, err)
		require.Len(t, folders, 1)
		assert.Equal(t, "Drafts", folders[0].Name)
	})

	t.Run("create", func(t *testing.T) {
		svc, mock := newTestService(t)
		mock.ExpectQuery("INSERT INTO folders").
			WithArgs(testCompanyID, "Drafts", nil, testUserID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow("f1", time.Now(), time.Now()))

		folder, err := svc.CreateFolder(context.Background(), testCompanyID, testUserID,
			&CreateFolderRequest{Name: "Drafts"})
		require.NoError(t, err)
		assert.Equal(t, "f1", folder.ID)
	})

	t.Run("create requires name", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.CreateFolder(context.Background(), testCompanyID, testUserID,
			&CreateFolderRequest{Name: " "})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	})

	t.Run("create nested under own folder", func(t *testing.T) {
		svc, mock := newTestService(t)
		parent := "55555555-5555-5555-5555-555555555555"
		mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM folders").
			WithArgs(parent, testCompanyID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("INSERT INTO folders").
			WithArgs(testCompanyID, "Archive", parent, testUserID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow("f2", time.Now(), time.Now()))

		folder, err := svc.CreateFolder(context.Background(), testCompanyID, testUserID,
			&CreateFolderRequest{Name: "Archive", ParentID: &parent})
		require.NoError(t, err)
		assert.Equal(t, "f2", folder.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("create rejects foreign parent", func(t *testing.T) {
		svc, mock := newTestService(t)
		parent := "55555555-5555-5555-5555-555555555555"
		mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM folders").
			WithArgs(parent, testCompanyID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := svc.CreateFolder(context.Background(), testCompanyID, testUserID,
			&CreateFolderRequest{Name: "Archive", ParentID: &parent})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperr.Status(err))
	})
}
