package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deluxetools/menued/internal/domain"
)

type stubLoader struct {
	manifest      *Manifest
	manifestErr   error
	materials     map[string]*MaterialSet
	materialsErr  error
	materialCalls int
}

func (s *stubLoader) LoadManifest() (*Manifest, error) {
	return s.manifest, s.manifestErr
}

func (s *stubLoader) LoadMaterials(versionID string) (*MaterialSet, error) {
	s.materialCalls++
	if s.materialsErr != nil {
		return nil, s.materialsErr
	}
	return s.materials[versionID], nil
}

func newStubLoader() *stubLoader {
	return &stubLoader{
		manifest: &Manifest{Versions: []Version{
			{ID: "1.20.4", DataVersion: 3700},
			{ID: "1.21", DataVersion: 3953, Latest: true},
		}},
		materials: map[string]*MaterialSet{
			"1.21": {GameVersion: "1.21", Materials: []Material{{Name: "STONE"}}},
		},
	}
}

func TestService_FailsOnBrokenManifest(t *testing.T) {
	loader := &stubLoader{manifestErr: errors.New("boom")}
	_, err := NewService(loader, 8, time.Minute)
	require.Error(t, err)
}

func TestService_Versions(t *testing.T) {
	svc, err := NewService(newStubLoader(), 8, time.Minute)
	require.NoError(t, err)

	versions := svc.Versions(context.Background())
	require.Len(t, versions, 2)
	assert.Equal(t, "1.20.4", versions[0].ID)

	// Mutating the returned slice must not affect the service.
	versions[0].ID = "mutated"
	assert.Equal(t, "1.20.4", svc.Versions(context.Background())[0].ID)
}

func TestService_LatestVersion(t *testing.T) {
	t.Run("flagged latest wins", func(t *testing.T) {
		svc, err := NewService(newStubLoader(), 8, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "1.21", svc.LatestVersion(context.Background()).ID)
	})

	t.Run("falls back to last entry", func(t *testing.T) {
		loader := newStubLoader()
		loader.manifest.Versions[1].Latest = false
		svc, err := NewService(loader, 8, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "1.21", svc.LatestVersion(context.Background()).ID)
	})
}

func TestService_Materials(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown version", func(t *testing.T) {
		svc, err := NewService(newStubLoader(), 8, time.Minute)
		require.NoError(t, err)

		_, err = svc.Materials(ctx, "0.0.0")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrVersionUnknown)
	})

	t.Run("caches loaded sets", func(t *testing.T) {
		loader := newStubLoader()
		svc, err := NewService(loader, 8, time.Minute)
		require.NoError(t, err)

		first, err := svc.Materials(ctx, "1.21")
		require.NoError(t, err)
		second, err := svc.Materials(ctx, "1.21")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, loader.materialCalls)
	})

	t.Run("loader errors are not cached", func(t *testing.T) {
		loader := newStubLoader()
		loader.materialsErr = errors.New("disk gone")
		svc, err := NewService(loader, 8, time.Minute)
		require.NoError(t, err)

		_, err = svc.Materials(ctx, "1.21")
		require.Error(t, err)

		loader.materialsErr = nil
		set, err := svc.Materials(ctx, "1.21")
		require.NoError(t, err)
		assert.Equal(t, "1.21", set.GameVersion)
		assert.Equal(t, 2, loader.materialCalls)
	})
}

func TestMaterialCache_SchemaVersionMismatch(t *testing.T) {
	cache := newMaterialCache(4, time.Minute)
	cache.lru.Add("1.21", &cachedMaterialSet{Version: "0.9", Set: &MaterialSet{}})

	_, ok := cache.Get("1.21")
	assert.False(t, ok)

	// Mismatched entry is dropped, not just skipped.
	_, ok = cache.lru.Get("1.21")
	assert.False(t, ok)
}
