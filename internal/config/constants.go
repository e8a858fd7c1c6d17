package config

import "time"

const (
	// Catalog data paths
	DefaultCatalogDir = "configs/catalog"

	// Material cache defaults
	DefaultMaterialCacheTTL = 30 * time.Minute
	DefaultMaterialCacheMax = 16
)
