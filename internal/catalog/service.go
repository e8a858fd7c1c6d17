package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/deluxetools/menued/internal/domain"
	"github.com/deluxetools/menued/internal/logger"
)

// Log messages
const (
	LogMsgMaterialsLoaded   = "Materials loaded from catalog"
	LogMsgMaterialsCacheHit = "Materials served from cache"
)

// Service exposes the game-version catalog to the rest of the editor.
// Material sets are loaded lazily per version and cached.
type Service interface {
	// Versions returns the known game versions in manifest order.
	Versions(ctx context.Context) []Version

	// LatestVersion returns the version flagged latest, falling back to
	// the last manifest entry.
	LatestVersion(ctx context.Context) Version

	// Materials returns the material set for a game version.
	// Returns domain.ErrVersionUnknown for versions not in the manifest.
	Materials(ctx context.Context, versionID string) (*MaterialSet, error)
}

type service struct {
	loader   Loader
	manifest *Manifest
	known    map[string]bool
	cache    *materialCache
}

// NewService loads the manifest eagerly so a broken catalog fails at
// startup, then serves material sets on demand.
func NewService(loader Loader, cacheSize int, cacheTTL time.Duration) (Service, error) {
	manifest, err := loader.LoadManifest()
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(manifest.Versions))
	for _, version := range manifest.Versions {
		known[version.ID] = true
	}

	return &service{
		loader:   loader,
		manifest: manifest,
		known:    known,
		cache:    newMaterialCache(cacheSize, cacheTTL),
	}, nil
}

func (s *service) Versions(ctx context.Context) []Version {
	versions := make([]Version, len(s.manifest.Versions))
	copy(versions, s.manifest.Versions)
	return versions
}

func (s *service) LatestVersion(ctx context.Context) Version {
	for _, version := range s.manifest.Versions {
		if version.Latest {
			return version
		}
	}
	return s.manifest.Versions[len(s.manifest.Versions)-1]
}

func (s *service) Materials(ctx context.Context, versionID string) (*MaterialSet, error) {
	log := logger.FromContext(ctx)

	if !s.known[versionID] {
		return nil, fmt.Errorf("%w: %s", domain.ErrVersionUnknown, versionID)
	}

	if set, ok := s.cache.Get(versionID); ok {
		log.Debug(LogMsgMaterialsCacheHit, "version", versionID)
		return set, nil
	}

	set, err := s.loader.LoadMaterials(versionID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(versionID, set)

	log.Info(LogMsgMaterialsLoaded, "version", versionID, "materials", len(set.Materials))
	return set, nil
}
