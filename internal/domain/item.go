package domain

// Item amount limits (vanilla stack size).
const (
	MinItemAmount = 1
	MaxItemAmount = 64
)

// LoreAppendModeOverride is the default lore mode; it is never serialized.
const LoreAppendModeOverride = "OVERRIDE"

// Enchantment is one enchantment applied to a menu item. Serialized as
// "name;level".
type Enchantment struct {
	Name  string
	Level int
}

// PotionEffect is one effect on a potion item. Serialized as
// "effect;duration;amplifier".
type PotionEffect struct {
	Effect    string
	Duration  int
	Amplifier int
}

// BannerLayer is one color/pattern layer of a banner item. Serialized as
// "color;pattern".
type BannerLayer struct {
	Color   string
	Pattern string
}

// MenuItem is one inventory-slot occupant definition.
//
// Slots is kept sorted ascending and deduplicated; the minimum element
// doubles as the legacy single-slot field in the serialized form. An item
// whose slot set resolves to empty cannot be placed and is dropped on
// deserialization.
type MenuItem struct {
	// ID is the stable key, unique within a document. It doubles as the
	// serialized map key under "items".
	ID string

	Slots    []int
	Material string

	DisplayName    string
	Lore           []string
	LoreAppendMode string

	Amount        int
	DynamicAmount string

	Damage    int
	ModelData int

	// Priority breaks ties between items claiming overlapping slots.
	// Lower value wins; 0 is highest precedence.
	Priority int

	// Update marks the item for periodic placeholder refresh.
	Update bool

	LeftClickCommands       []string
	RightClickCommands      []string
	MiddleClickCommands     []string
	ShiftLeftClickCommands  []string
	ShiftRightClickCommands []string

	Enchantments []Enchantment
	ItemFlags    []string

	HideEnchantments         bool
	HideAttributes           bool
	HideTooltip              bool
	EnchantmentGlintOverride bool
	Unbreakable              bool

	// Glow renders the enchantment shimmer without a visible enchantment.
	// Serialization expands it into a synthetic enchantment plus
	// hide_enchantments; deserialization reconstructs it heuristically and
	// cannot distinguish it from a manually hidden real enchantment.
	Glow bool

	// RGB is the dye color for leather armor. Decoding also accepts the
	// legacy "color" key; serialization always writes "rgb".
	RGB        string
	EntityType string
	BaseColor  string

	PotionEffects []PotionEffect
	BannerLayers  []BannerLayer

	// ViewRequirements gate the item's visibility.
	ViewRequirements []Requirement

	// ClickRequirements gate click handling, with the group-level command
	// lists run on overall deny/success.
	ClickRequirements    []Requirement
	ClickDenyCommands    []string
	ClickSuccessCommands []string
}

// Slot returns the item's legacy single-slot index: the minimum slot, or -1
// when the item has no slots.
func (i *MenuItem) Slot() int {
	if len(i.Slots) == 0 {
		return -1
	}
	min := i.Slots[0]
	for _, s := range i.Slots[1:] {
		if s < min {
			min = s
		}
	}
	return min
}

// EffectiveAmount returns the stack size to render, clamped to the vanilla
// range. DynamicAmount, when set, overrides it at display time.
func (i *MenuItem) EffectiveAmount() int {
	switch {
	case i.Amount < MinItemAmount:
		return MinItemAmount
	case i.Amount > MaxItemAmount:
		return MaxItemAmount
	default:
		return i.Amount
	}
}
