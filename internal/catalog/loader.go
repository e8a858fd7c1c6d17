package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/deluxetools/menued/internal/validation"
)

// Sentinel error for catalog loading
var ErrInvalidCatalog = errors.New("invalid catalog")

// Manifest lists the game versions the editor knows about.
type Manifest struct {
	Description string    `json:"description,omitempty"`
	Versions    []Version `json:"versions"`
}

// Version identifies one supported game version.
type Version struct {
	ID          string `json:"id"`
	DataVersion int    `json:"data_version"`
	Latest      bool   `json:"latest,omitempty"`
}

// MaterialSet holds the materials available in one game version.
type MaterialSet struct {
	GameVersion string     `json:"game_version"`
	Materials   []Material `json:"materials"`
}

// Material describes one vanilla material.
type Material struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	StackSize   int    `json:"stack_size,omitempty"`
	Block       bool   `json:"block,omitempty"`
}

// Loader reads and validates catalog files from a catalog directory.
// Every file is checked against its JSON schema before decoding.
type Loader interface {
	LoadManifest() (*Manifest, error)
	LoadMaterials(versionID string) (*MaterialSet, error)
}

type catalogLoader struct {
	dir       string
	validator validation.SchemaValidator
}

// NewLoader creates a Loader rooted at dir.
func NewLoader(dir string) Loader {
	return &catalogLoader{
		dir:       dir,
		validator: validation.NewSchemaValidator(),
	}
}

// LoadManifest reads and validates the version manifest.
func (l *catalogLoader) LoadManifest() (*Manifest, error) {
	path := filepath.Join(l.dir, ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadManifestFailed, err)
	}

	if err := l.validator.ValidateBytes(data, ManifestSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf(ErrMsgParseManifestFailed, err)
	}

	if err := validateManifest(&manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// LoadMaterials reads and validates the materials file for one version.
func (l *catalogLoader) LoadMaterials(versionID string) (*MaterialSet, error) {
	path := filepath.Join(l.dir, MaterialsDirName, versionID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadMaterialsFailed, versionID, err)
	}

	if err := l.validator.ValidateBytes(data, MaterialsSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var set MaterialSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf(ErrMsgParseMaterialsFailed, versionID, err)
	}
	return &set, nil
}

func validateManifest(manifest *Manifest) error {
	if len(manifest.Versions) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgNoVersionsDefined)
	}

	seen := make(map[string]bool, len(manifest.Versions))
	for i, version := range manifest.Versions {
		if version.ID == "" {
			return fmt.Errorf("%w: entry %d %s", ErrInvalidCatalog, i, ErrMsgEmptyVersionID)
		}
		if seen[version.ID] {
			return fmt.Errorf("%w: %s '%s'", ErrInvalidCatalog, ErrMsgDuplicateVersion, version.ID)
		}
		seen[version.ID] = true
	}
	return nil
}
