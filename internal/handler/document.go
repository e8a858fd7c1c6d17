package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/deluxetools/menued/internal/document"
	"github.com/deluxetools/menued/internal/domain"
	"github.com/deluxetools/menued/internal/logger"
	"github.com/deluxetools/menued/internal/menu"
	"github.com/deluxetools/menued/internal/metrics"
)

// DocumentRequest creates or replaces a document. Exactly one of
// Settings and Yaml supplies the content; Yaml wins when both are set
// so a file import always lands verbatim.
type DocumentRequest struct {
	Name        string       `json:"name" validate:"max=64"`
	GameVersion string       `json:"game_version" validate:"gameversion"`
	Settings    *SettingsDTO `json:"settings,omitempty"`
	Yaml        string       `json:"yaml,omitempty"`
}

// DocumentResponse is the full document, settings included.
type DocumentResponse struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	GameVersion string      `json:"game_version,omitempty"`
	Settings    SettingsDTO `json:"settings"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// DocumentSummary is the header-only shape used by list responses.
type DocumentSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	GameVersion string    `json:"game_version,omitempty"`
	Title       string    `json:"menu_title"`
	Items       int       `json:"items"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DocumentListResponse wraps the document list.
type DocumentListResponse struct {
	Documents []DocumentSummary `json:"documents"`
}

func documentToResponse(doc *document.Document) DocumentResponse {
	return DocumentResponse{
		ID:          doc.ID,
		Name:        doc.Name,
		GameVersion: doc.GameVersion,
		Settings:    settingsToDTO(doc.Settings),
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

// settingsFromRequest resolves the document content from either form.
func settingsFromRequest(req *DocumentRequest) (*domain.MenuSettings, error) {
	if req.Yaml != "" {
		return menu.Parse(req.Yaml)
	}
	if req.Settings != nil {
		return settingsFromDTO(req.Settings)
	}
	// Neither given: open an empty menu with editor defaults.
	return domain.NewMenuSettings(), nil
}

// documentID pulls and parses the {id} route parameter. When it returns
// false the error response has already been written.
func documentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidDocumentID)
		return uuid.Nil, false
	}
	return id, true
}

// HandleDocumentCreate opens a new document from settings, YAML, or
// nothing at all.
func HandleDocumentCreate(store document.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DocumentRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create document"); err != nil {
			return
		}

		settings, err := settingsFromRequest(&req)
		if err != nil {
			respondServiceError(w, r, "Create document", err)
			return
		}

		doc, err := store.Create(r.Context(), req.Name, req.GameVersion, settings)
		if err != nil {
			respondServiceError(w, r, "Create document", err)
			return
		}

		metrics.DocumentsOpen.Inc()
		log := logger.FromContext(r.Context())
		log.Info("Document created", "id", doc.ID, "name", doc.Name)

		respondJSON(w, http.StatusCreated, documentToResponse(doc))
	}
}

// HandleDocumentList returns header summaries for every open document.
func HandleDocumentList(store document.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs := store.List(r.Context())
		summaries := make([]DocumentSummary, 0, len(docs))
		for _, doc := range docs {
			summaries = append(summaries, DocumentSummary{
				ID:          doc.ID,
				Name:        doc.Name,
				GameVersion: doc.GameVersion,
				Title:       doc.Settings.Title,
				Items:       len(doc.Settings.Items),
				CreatedAt:   doc.CreatedAt,
				UpdatedAt:   doc.UpdatedAt,
			})
		}
		respondJSON(w, http.StatusOK, DocumentListResponse{Documents: summaries})
	}
}

// HandleDocumentGet returns one document with its full settings tree.
func HandleDocumentGet(store document.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := documentID(w, r)
		if !ok {
			return
		}

		doc, err := store.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get document", err)
			return
		}
		respondJSON(w, http.StatusOK, documentToResponse(doc))
	}
}

// HandleDocumentUpdate replaces a document's content, last write wins.
func HandleDocumentUpdate(store document.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := documentID(w, r)
		if !ok {
			return
		}

		var req DocumentRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update document"); err != nil {
			return
		}

		settings, err := settingsFromRequest(&req)
		if err != nil {
			respondServiceError(w, r, "Update document", err)
			return
		}

		doc, err := store.Update(r.Context(), id, req.Name, req.GameVersion, settings)
		if err != nil {
			respondServiceError(w, r, "Update document", err)
			return
		}
		respondJSON(w, http.StatusOK, documentToResponse(doc))
	}
}

// HandleDocumentDelete closes a document.
func HandleDocumentDelete(store document.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := documentID(w, r)
		if !ok {
			return
		}

		if err := store.Delete(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete document", err)
			return
		}

		metrics.DocumentsOpen.Dec()
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Document deleted"})
	}
}

// HandleDocumentExport renders the document to YAML and serves it as a
// downloadable file.
func HandleDocumentExport(store document.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := documentID(w, r)
		if !ok {
			return
		}

		doc, err := store.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Export document", err)
			return
		}

		text, err := menu.Generate(doc.Settings)
		if err != nil {
			respondServiceError(w, r, "Export document", err)
			return
		}

		metrics.DocumentExports.Inc()

		w.Header().Set("Content-Type", "text/yaml; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Name+`.yml"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(text)); err != nil {
			logger.FromContext(r.Context()).Error("Failed to write export body", "error", err)
		}
	}
}
