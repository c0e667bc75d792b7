package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabsdesign/studio/pkg/catalog"
)

func TestListBlocks(t *testing.T) {
	f := newServerFixture(t, nil)
	token := f.bearer(t, testUserID, testCompanyID)

	rec := f.do(t, http.MethodGet, "/api/catalog/blocks", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var blocks []catalog.BlockDefinition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blocks))
	assert.NotEmpty(t, blocks)
}

func TestListBlocksByCategory(t *testing.T) {
	f := newServerFixture(t, nil)
	token := f.bearer(t, testUserID, testCompanyID)

	rec := f.do(t, http.MethodGet, "/api/catalog/blocks?category=kitchen", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var blocks []catalog.BlockDefinition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blocks))
	for _, b := range blocks {
		assert.Equal(t, "kitchen", b.Category)
	}
}

func TestUpsertBlock(t *testing.T) {
	f := newServerFixture(t, nil)
	token := f.bearer(t, testUserID, testCompanyID)

	block := catalog.BlockDefinition{
		ID:       "island-1200",
		Name:     "Kitchen Island 1200",
		Type:     "furniture",
		Category: "kitchen",
		Width:    1200,
		Height:   900,
	}
	rec := f.do(t, http.MethodPost, "/api/catalog/blocks", token, block)
	require.Equal(t, http.StatusCreated, rec.Code)

	// The new block shows up in the listing.
	rec = f.do(t, http.MethodGet, "/api/catalog/blocks", token, nil)
	assert.Contains(t, rec.Body.String(), "island-1200")
}

func TestUpsertBlockValidation(t *testing.T) {
	f := newServerFixture(t, nil)
	token := f.bearer(t, testUserID, testCompanyID)

	tests := []struct {
		name  string
		block catalog.BlockDefinition
	}{
		{"missing id", catalog.BlockDefinition{Name: "Nameless"}},
		{"missing name", catalog.BlockDefinition{ID: "no-name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/api/catalog/blocks", token, tt.block)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
