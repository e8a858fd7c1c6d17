package domain

import "strings"

// MaterialScheme classifies where a material tag's content comes from.
type MaterialScheme string

const (
	// SchemeVanilla is a bare material name (STONE, DIAMOND_SWORD).
	SchemeVanilla MaterialScheme = "vanilla"
	// SchemePlayerHead is a head by player name (head-Notch).
	SchemePlayerHead MaterialScheme = "head"
	// SchemeBase64Head is a head by base64 profile (basehead-eyJ...).
	SchemeBase64Head MaterialScheme = "basehead"
	// SchemeTextureHead is a head by texture hash (texture-abc...).
	SchemeTextureHead MaterialScheme = "texture"
	// SchemeHeadDatabase is a HeadDatabase id (hdb-12345).
	SchemeHeadDatabase MaterialScheme = "hdb"
	// SchemeItemsAdder through SchemeSimpleItemGenerator are third-party
	// plugin item namespaces.
	SchemeItemsAdder           MaterialScheme = "itemsadder"
	SchemeOraxen               MaterialScheme = "oraxen"
	SchemeNexo                 MaterialScheme = "nexo"
	SchemeMMOItems             MaterialScheme = "mmoitems"
	SchemeExecutableItems      MaterialScheme = "executableitems"
	SchemeExecutableBlocks     MaterialScheme = "executableblocks"
	SchemeSimpleItemGenerator  MaterialScheme = "simpleitemgenerator"
	// SchemePlaceholder is a raw placeholder expression
	// (placeholder-%player_item_in_hand%).
	SchemePlaceholder MaterialScheme = "placeholder"
	// SchemeEquipment mirrors a slot of the viewer's own equipment
	// (main_hand, armor_helmet, ...).
	SchemeEquipment MaterialScheme = "equipment"
)

// prefixSchemes maps material tag prefixes to their scheme, in the
// "<prefix>-<payload>" form.
var prefixSchemes = map[string]MaterialScheme{
	"head":                SchemePlayerHead,
	"basehead":            SchemeBase64Head,
	"texture":             SchemeTextureHead,
	"hdb":                 SchemeHeadDatabase,
	"itemsadder":          SchemeItemsAdder,
	"oraxen":              SchemeOraxen,
	"nexo":                SchemeNexo,
	"mmoitems":            SchemeMMOItems,
	"executableitems":     SchemeExecutableItems,
	"executableblocks":    SchemeExecutableBlocks,
	"simpleitemgenerator": SchemeSimpleItemGenerator,
	"placeholder":         SchemePlaceholder,
}

// equipmentSlots are the bare equipment-slot material names.
var equipmentSlots = map[string]bool{
	"main_hand":        true,
	"off_hand":         true,
	"armor_helmet":     true,
	"armor_chestplate": true,
	"armor_leggings":   true,
	"armor_boots":      true,
}

// ParseMaterial splits a material tag into its scheme and payload. Vanilla
// names come back unchanged as the payload.
func ParseMaterial(material string) (MaterialScheme, string) {
	m := strings.TrimSpace(material)
	if equipmentSlots[strings.ToLower(m)] {
		return SchemeEquipment, strings.ToLower(m)
	}
	if prefix, payload, ok := strings.Cut(m, "-"); ok {
		if scheme, known := prefixSchemes[strings.ToLower(prefix)]; known {
			return scheme, payload
		}
	}
	return SchemeVanilla, m
}

// IsVanillaMaterial reports whether the material tag is a bare vanilla name
// (and therefore resolvable against the material catalog).
func IsVanillaMaterial(material string) bool {
	scheme, _ := ParseMaterial(material)
	return scheme == SchemeVanilla
}
