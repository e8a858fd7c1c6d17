package catalog

// Catalog file layout under the catalog directory
const (
	// ManifestFileName lists the known game versions.
	ManifestFileName = "versions.json"

	// MaterialsDirName holds one materials file per game version,
	// named "<version>.json".
	MaterialsDirName = "materials"
)

// Schema paths
const (
	ManifestSchemaPath  = "configs/schemas/versions.schema.json"
	MaterialsSchemaPath = "configs/schemas/materials.schema.json"
)

// File operation error messages
const (
	ErrMsgReadManifestFailed   = "failed to read catalog manifest: %w"
	ErrMsgParseManifestFailed  = "failed to parse catalog manifest: %w"
	ErrMsgReadMaterialsFailed  = "failed to read materials file for %s: %w"
	ErrMsgParseMaterialsFailed = "failed to parse materials file for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgNoVersionsDefined = "no versions defined"
	ErrMsgDuplicateVersion  = "duplicate version id"
	ErrMsgEmptyVersionID    = "has empty version id"
)
