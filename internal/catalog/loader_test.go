package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, manifest string, materials map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFileName), []byte(manifest), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, MaterialsDirName), 0755))
	for version, content := range materials {
		path := filepath.Join(dir, MaterialsDirName, version+".json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

const testManifest = `{
	"versions": [
		{"id": "1.20.4", "data_version": 3700},
		{"id": "1.21", "data_version": 3953, "latest": true}
	]
}`

const testMaterials = `{
	"game_version": "1.21",
	"materials": [
		{"name": "STONE", "display_name": "Stone", "stack_size": 64, "block": true},
		{"name": "DIAMOND_SWORD", "display_name": "Diamond Sword", "stack_size": 1}
	]
}`

func TestLoader_LoadManifest(t *testing.T) {
	dir := writeCatalog(t, testManifest, nil)
	loader := NewLoader(dir)

	manifest, err := loader.LoadManifest()
	require.NoError(t, err)
	require.Len(t, manifest.Versions, 2)
	assert.Equal(t, "1.20.4", manifest.Versions[0].ID)
	assert.Equal(t, 3700, manifest.Versions[0].DataVersion)
	assert.False(t, manifest.Versions[0].Latest)
	assert.True(t, manifest.Versions[1].Latest)
}

func TestLoader_LoadManifestErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		errorMsg string
	}{
		{
			name:     "empty version list",
			manifest: `{"versions": []}`,
			errorMsg: "schema validation failed",
		},
		{
			name:     "malformed version id",
			manifest: `{"versions": [{"id": "snapshot", "data_version": 1}]}`,
			errorMsg: "schema validation failed",
		},
		{
			name: "duplicate version id",
			manifest: `{"versions": [
				{"id": "1.21", "data_version": 3953},
				{"id": "1.21", "data_version": 3953}
			]}`,
			errorMsg: "duplicate version id",
		},
		{
			name:     "invalid JSON",
			manifest: `{"versions": [}`,
			errorMsg: "schema validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeCatalog(t, tt.manifest, nil)
			_, err := NewLoader(dir).LoadManifest()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}

	t.Run("missing manifest file", func(t *testing.T) {
		_, err := NewLoader(t.TempDir()).LoadManifest()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read catalog manifest")
	})
}

func TestLoader_LoadMaterials(t *testing.T) {
	dir := writeCatalog(t, testManifest, map[string]string{"1.21": testMaterials})
	loader := NewLoader(dir)

	set, err := loader.LoadMaterials("1.21")
	require.NoError(t, err)
	assert.Equal(t, "1.21", set.GameVersion)
	require.Len(t, set.Materials, 2)
	assert.Equal(t, "STONE", set.Materials[0].Name)
	assert.True(t, set.Materials[0].Block)
	assert.Equal(t, 1, set.Materials[1].StackSize)
}

func TestLoader_LoadMaterialsErrors(t *testing.T) {
	dir := writeCatalog(t, testManifest, map[string]string{
		"1.20.4": `{"game_version": "1.20.4", "materials": [{"name": "stone"}]}`,
	})
	loader := NewLoader(dir)

	t.Run("missing materials file", func(t *testing.T) {
		_, err := loader.LoadMaterials("1.21")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read materials file for 1.21")
	})

	t.Run("lowercase material name rejected", func(t *testing.T) {
		_, err := loader.LoadMaterials("1.20.4")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})
}
