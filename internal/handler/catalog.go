package handler

import (
	"net/http"

	"github.com/deluxetools/menued/internal/catalog"
)

// VersionsResponse lists the known game versions.
type VersionsResponse struct {
	Versions []catalog.Version `json:"versions"`
	Latest   string            `json:"latest"`
}

// MaterialsResponse lists the materials of one game version.
type MaterialsResponse struct {
	GameVersion string             `json:"game_version"`
	Materials   []catalog.Material `json:"materials"`
}

// HandleCatalogVersions returns the version manifest.
func HandleCatalogVersions(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionsResponse{
			Versions: svc.Versions(r.Context()),
			Latest:   svc.LatestVersion(r.Context()).ID,
		})
	}
}

// HandleCatalogMaterials returns the material set for the version named
// in the query string, defaulting to the latest version.
func HandleCatalogMaterials(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := GetOptionalQueryParam(r, "version", svc.LatestVersion(r.Context()).ID)

		set, err := svc.Materials(r.Context(), version)
		if err != nil {
			respondServiceError(w, r, "Get materials", err)
			return
		}

		respondJSON(w, http.StatusOK, MaterialsResponse{
			GameVersion: set.GameVersion,
			Materials:   set.Materials,
		})
	}
}
