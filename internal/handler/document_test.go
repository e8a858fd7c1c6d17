package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deluxetools/menued/internal/document"
)

// documentRouter mounts the document handlers the way the server does,
// so chi URL parameters resolve in tests.
func documentRouter(store document.Store) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/v1/documents", HandleDocumentCreate(store))
	r.Get("/api/v1/documents", HandleDocumentList(store))
	r.Get("/api/v1/documents/{id}", HandleDocumentGet(store))
	r.Put("/api/v1/documents/{id}", HandleDocumentUpdate(store))
	r.Delete("/api/v1/documents/{id}", HandleDocumentDelete(store))
	r.Get("/api/v1/documents/{id}/export", HandleDocumentExport(store))
	return r
}

func doJSON(t *testing.T, router http.Handler, method, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createDocument(t *testing.T, router http.Handler, req DocumentRequest) DocumentResponse {
	t.Helper()
	w := doJSON(t, router, "POST", "/api/v1/documents", req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp DocumentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestDocumentCreate(t *testing.T) {
	router := documentRouter(document.NewStore())

	t.Run("from settings", func(t *testing.T) {
		doc := createDocument(t, router, DocumentRequest{
			Name:        "shop",
			GameVersion: "1.21",
			Settings:    &SettingsDTO{MenuTitle: "&6Shop", OpenCommand: "shop"},
		})
		assert.NotEqual(t, uuid.Nil, doc.ID)
		assert.Equal(t, "shop", doc.Name)
		assert.Equal(t, "&6Shop", doc.Settings.MenuTitle)
	})

	t.Run("from yaml", func(t *testing.T) {
		doc := createDocument(t, router, DocumentRequest{
			Name: "imported",
			Yaml: sampleMenuYAML,
		})
		assert.Equal(t, "&6Shop", doc.Settings.MenuTitle)
		require.Len(t, doc.Settings.Items, 1)
	})

	t.Run("empty request opens a default menu", func(t *testing.T) {
		doc := createDocument(t, router, DocumentRequest{Name: "blank"})
		assert.Equal(t, "CHEST", doc.Settings.InventoryType)
		assert.Equal(t, 54, doc.Settings.Size)
		assert.Empty(t, doc.Settings.Items)
	})

	t.Run("broken yaml rejected", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/documents", DocumentRequest{
			Name: "bad",
			Yaml: "menu_title: 'unterminated",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("bad game version rejected", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/documents", DocumentRequest{
			Name:        "bad",
			GameVersion: "latest",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDocumentListAndGet(t *testing.T) {
	router := documentRouter(document.NewStore())
	created := createDocument(t, router, DocumentRequest{
		Name:     "shop",
		Settings: &SettingsDTO{MenuTitle: "&6Shop", Items: []ItemDTO{{ID: "a", Material: "STONE", Slots: []int{0}}}},
	})

	t.Run("list", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/documents", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp DocumentListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Documents, 1)
		assert.Equal(t, created.ID, resp.Documents[0].ID)
		assert.Equal(t, "&6Shop", resp.Documents[0].Title)
		assert.Equal(t, 1, resp.Documents[0].Items)
	})

	t.Run("get", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/documents/"+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp DocumentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.ID)
		require.Len(t, resp.Settings.Items, 1)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/documents/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidDocumentID)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/documents/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDocumentUpdate(t *testing.T) {
	router := documentRouter(document.NewStore())
	created := createDocument(t, router, DocumentRequest{
		Name:     "shop",
		Settings: &SettingsDTO{MenuTitle: "&6Shop"},
	})

	w := doJSON(t, router, "PUT", "/api/v1/documents/"+created.ID.String(), DocumentRequest{
		Name:     "warps",
		Settings: &SettingsDTO{MenuTitle: "&bWarps"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp DocumentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "warps", resp.Name)
	assert.Equal(t, "&bWarps", resp.Settings.MenuTitle)

	t.Run("unknown id", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/api/v1/documents/"+uuid.NewString(), DocumentRequest{
			Settings: &SettingsDTO{MenuTitle: "x"},
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDocumentDelete(t *testing.T) {
	router := documentRouter(document.NewStore())
	created := createDocument(t, router, DocumentRequest{Name: "shop"})

	w := doJSON(t, router, "DELETE", "/api/v1/documents/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/documents/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentExport(t *testing.T) {
	router := documentRouter(document.NewStore())
	created := createDocument(t, router, DocumentRequest{Name: "shop", Yaml: sampleMenuYAML})

	w := doJSON(t, router, "GET", "/api/v1/documents/"+created.ID.String()+"/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/yaml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="shop.yml"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "menu_title: '&6Shop'")
	assert.Contains(t, w.Body.String(), "material: DIAMOND_SWORD")
}
