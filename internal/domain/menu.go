package domain

// InventoryType identifies the kind of inventory a menu renders into.
// The value is the DeluxeMenus / Bukkit inventory type name, verbatim.
type InventoryType string

const (
	InventoryChest       InventoryType = "CHEST"
	InventoryHopper      InventoryType = "HOPPER"
	InventoryDispenser   InventoryType = "DISPENSER"
	InventoryDropper     InventoryType = "DROPPER"
	InventoryFurnace     InventoryType = "FURNACE"
	InventoryBlastFurnace InventoryType = "BLAST_FURNACE"
	InventorySmoker      InventoryType = "SMOKER"
	InventoryBrewing     InventoryType = "BREWING"
	InventoryAnvil       InventoryType = "ANVIL"
	InventoryGrindstone  InventoryType = "GRINDSTONE"
	InventoryCartography InventoryType = "CARTOGRAPHY"
	InventoryLoom        InventoryType = "LOOM"
	InventoryWorkbench   InventoryType = "WORKBENCH"
	InventoryEnchanting  InventoryType = "ENCHANTING"
	InventoryBarrel      InventoryType = "BARREL"
	InventoryEnderChest  InventoryType = "ENDER_CHEST"
	InventoryShulkerBox  InventoryType = "SHULKER_BOX"
	InventoryBeacon      InventoryType = "BEACON"
)

// Menu size limits for chest-style inventories (rows of 9).
const (
	MinMenuSize     = 9
	MaxMenuSize     = 54
	DefaultMenuSize = 54
)

// fixedInventorySizes maps inventory types whose slot count is dictated by
// the inventory itself. Chest-style types (CHEST, BARREL, ...) are absent
// when their size is configurable.
var fixedInventorySizes = map[InventoryType]int{
	InventoryHopper:       5,
	InventoryDispenser:    9,
	InventoryDropper:      9,
	InventoryFurnace:      3,
	InventoryBlastFurnace: 3,
	InventorySmoker:       3,
	InventoryBrewing:      5,
	InventoryAnvil:        3,
	InventoryGrindstone:   3,
	InventoryCartography:  3,
	InventoryLoom:         4,
	InventoryWorkbench:    10,
	InventoryEnchanting:   2,
	InventoryBeacon:       1,
}

// FixedSize reports whether the inventory type dictates its own slot count,
// and if so, what it is.
func (t InventoryType) FixedSize() (int, bool) {
	size, ok := fixedInventorySizes[t]
	return size, ok
}

// RequirementGroup is a list of requirements plus the command lists run when
// the group as a whole passes or fails. Used for the menu-level open gate
// and for per-item click gates.
type RequirementGroup struct {
	Requirements    []Requirement
	DenyCommands    []string
	SuccessCommands []string
}

// IsEmpty reports whether the group carries no requirements and no commands.
func (g RequirementGroup) IsEmpty() bool {
	return len(g.Requirements) == 0 && len(g.DenyCommands) == 0 && len(g.SuccessCommands) == 0
}

// MenuSettings is the root entity of one edited menu document. It is the
// single source of truth for the editor: YAML text is always derived from it
// or re-absorbed into it, never incrementally patched.
type MenuSettings struct {
	Title           string
	Type            InventoryType
	Size            int
	OpenCommand     string
	RegisterCommand bool
	UpdateInterval  int

	// Permission is the legacy convenience field. It is mirrored into a
	// synthesized "has permission" open requirement on serialization when
	// OpenRequirement is empty, and recovered from the first
	// "has permission" open requirement on deserialization.
	Permission string

	OpenCommands  []string
	CloseCommands []string

	OpenRequirement RequirementGroup

	Args                            []Argument
	ArgsUsageMessage                string
	ArgumentsSupportPlaceholders    bool
	ParsePlaceholdersAfterArguments bool

	Items []MenuItem
}

// NewMenuSettings returns settings with editor defaults: an empty 54-slot
// chest menu.
func NewMenuSettings() *MenuSettings {
	return &MenuSettings{
		Type: InventoryChest,
		Size: DefaultMenuSize,
	}
}

// EffectiveSize returns the slot count the menu actually renders with:
// the fixed size of the inventory type when it has one, else Size.
func (s *MenuSettings) EffectiveSize() int {
	if fixed, ok := s.Type.FixedSize(); ok {
		return fixed
	}
	if s.Size == 0 {
		return DefaultMenuSize
	}
	return s.Size
}

// Argument is one positional command argument (%args_N%, 1-indexed by
// position in the Args list), optionally validated by requirements.
type Argument struct {
	Name         string
	Requirements []Requirement
	DenyCommands []string
}

// HasRequirements reports whether the argument carries at least one
// requirement. The serializer uses this to pick the args encoding shape.
func (a Argument) HasRequirements() bool {
	return len(a.Requirements) > 0
}
