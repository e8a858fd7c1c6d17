package handler

import (
	"errors"
	"net/http"

	"github.com/deluxetools/menued/internal/domain"
	"github.com/deluxetools/menued/internal/logger"
	"github.com/deluxetools/menued/internal/menu"
	"github.com/deluxetools/menued/internal/metrics"
)

// ParseRequest carries the raw YAML text of one menu configuration.
type ParseRequest struct {
	Yaml string `json:"yaml" validate:"required"`
}

// ParseResponse returns the absorbed settings tree.
type ParseResponse struct {
	Settings SettingsDTO `json:"settings"`
}

// GenerateRequest carries a settings tree to render.
type GenerateRequest struct {
	Settings SettingsDTO `json:"settings"`
}

// GenerateResponse returns the rendered YAML text.
type GenerateResponse struct {
	Yaml string `json:"yaml"`
}

// ValidateResponse reports settings problems found by the linter.
type ValidateResponse struct {
	Valid    bool           `json:"valid"`
	Problems []menu.Problem `json:"problems"`
}

// HandleMenuParse absorbs YAML text into a settings tree.
func HandleMenuParse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ParseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Parse menu"); err != nil {
			return
		}

		settings, err := menu.Parse(req.Yaml)
		if err != nil {
			recordParseFailure(err)
			respondParseError(w, r, err)
			return
		}

		metrics.MenusParsed.Inc()
		respondJSON(w, http.StatusOK, ParseResponse{Settings: settingsToDTO(settings)})
	}
}

// respondParseError surfaces the YAML grammar detail alongside the
// mapped status so the editor can show where the document broke.
func respondParseError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	log.Warn("Menu parse failed", "error", err)

	status, message := mapServiceErrorToUserMessage(err)
	if errors.Is(err, domain.ErrParse) {
		respondJSON(w, status, struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}{Error: message, Detail: err.Error()})
		return
	}
	respondError(w, status, message)
}

func recordParseFailure(err error) {
	reason := metrics.ReasonGrammar
	if errors.Is(err, domain.ErrEmptyConfig) {
		reason = metrics.ReasonEmpty
	}
	metrics.ParseFailures.WithLabelValues(reason).Inc()
}

// HandleMenuGenerate renders a settings tree into YAML text.
func HandleMenuGenerate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Generate menu"); err != nil {
			return
		}

		settings, err := settingsFromDTO(&req.Settings)
		if err != nil {
			respondServiceError(w, r, "Generate menu", err)
			return
		}

		text, err := menu.Generate(settings)
		if err != nil {
			respondServiceError(w, r, "Generate menu", err)
			return
		}

		metrics.MenusGenerated.Inc()
		respondJSON(w, http.StatusOK, GenerateResponse{Yaml: text})
	}
}

// HandleMenuValidate lints a settings tree without rendering it.
func HandleMenuValidate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Validate menu"); err != nil {
			return
		}

		settings, err := settingsFromDTO(&req.Settings)
		if err != nil {
			respondServiceError(w, r, "Validate menu", err)
			return
		}

		problems := menu.Validate(settings)
		metrics.MenusValidated.Inc()
		respondJSON(w, http.StatusOK, ValidateResponse{
			Valid:    len(problems) == 0,
			Problems: problems,
		})
	}
}
