package menu

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/deluxetools/menued/internal/domain"
)

// fallbackMaterial stands in when an item defines no material at all.
const fallbackMaterial = "STONE"

// Parse reconstructs menu settings from YAML text. Absent optional fields
// fall back to type-appropriate defaults and recognized-but-malformed
// values degrade silently; the only errors are ErrEmptyConfig for blank or
// null input and a wrapped ErrParse when the text fails the YAML grammar.
// The result is always complete: either a full settings object or an
// error, never both.
func Parse(text string) (*domain.MenuSettings, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyConfig
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	root := resolved(&doc)
	if isNull(root) {
		return nil, domain.ErrEmptyConfig
	}
	if !isMap(root) {
		return nil, fmt.Errorf("%w: top level is not a mapping", domain.ErrParse)
	}

	settings := &domain.MenuSettings{
		Title:           nodeString(mapGet(root, "menu_title")),
		OpenCommand:     nodeString(mapGet(root, "open_command")),
		RegisterCommand: nodeBool(mapGet(root, "register_command")),
		Size:            nodeInt(mapGet(root, "size"), domain.DefaultMenuSize),
		Type:            domain.InventoryChest,
		UpdateInterval:  nodeInt(mapGet(root, "update_interval"), 0),
		OpenCommands:    nodeStringList(mapGet(root, "open_commands")),
		CloseCommands:   nodeStringList(mapGet(root, "close_commands")),

		ArgsUsageMessage:                nodeString(mapGet(root, "args_usage_message")),
		ArgumentsSupportPlaceholders:    nodeBool(mapGet(root, "arguments_support_placeholders")),
		ParsePlaceholdersAfterArguments: nodeBool(mapGet(root, "parse_placeholders_after_arguments")),
	}
	if settings.Size == 0 {
		settings.Size = domain.DefaultMenuSize
	}
	if t := nodeString(mapGet(root, "inventory_type")); t != "" {
		settings.Type = domain.InventoryType(strings.ToUpper(t))
	}
	// Fixed-size inventory types dictate the slot count regardless of what
	// the document claims.
	if fixed, ok := settings.Type.FixedSize(); ok {
		settings.Size = fixed
	}

	decodeOpenRequirement(settings, mapGet(root, "open_requirement"))
	settings.Args = decodeArgs(mapGet(root, "args"))
	settings.Items = decodeItems(mapGet(root, "items"))

	return settings, nil
}

// decodeOpenRequirement fills the open gate and mirrors the first plain
// "has permission" requirement into the legacy permission field.
func decodeOpenRequirement(settings *domain.MenuSettings, n *yaml.Node) {
	if !isMap(n) {
		return
	}
	settings.OpenRequirement = domain.RequirementGroup{
		Requirements:    decodeRequirementMap(mapGet(n, "requirements"), true),
		DenyCommands:    nodeStringList(mapGet(n, "deny_commands")),
		SuccessCommands: nodeStringList(mapGet(n, "success_commands")),
	}
	for _, req := range settings.OpenRequirement.Requirements {
		if check, ok := req.Check.(domain.HasPermission); ok && !check.Not {
			settings.Permission = check.Permission
			break
		}
	}
}

// decodeArgs accepts every encoding of the args field seen in real
// configs, independently of how the rest of the document is shaped:
//
//   - a flat list of name strings
//   - a list mixing bare names and single-key {name: payload} entries
//   - a map keyed by argument name, payloads being true/null or a body
//   - a single space-separated string of names
//
// Empty-string names in list form are preserved; null entries are dropped.
func decodeArgs(n *yaml.Node) []domain.Argument {
	n = resolved(n)
	var args []domain.Argument

	switch {
	case isSeq(n):
		for _, entry := range n.Content {
			entry = resolved(entry)
			switch {
			case isNull(entry):
				continue
			case isScalar(entry):
				args = append(args, domain.Argument{Name: entry.Value})
			case isMap(entry):
				for _, p := range mapPairs(entry) {
					args = append(args, decodeArgBody(p.key, p.value))
				}
			}
		}
	case isMap(n):
		for _, p := range mapPairs(n) {
			args = append(args, decodeArgBody(p.key, p.value))
		}
	case isScalar(n) && !isNull(n):
		for _, name := range strings.Fields(n.Value) {
			args = append(args, domain.Argument{Name: name})
		}
	}

	return args
}

// decodeArgBody reads one named argument payload. Scalar payloads (true,
// null) mean a requirement-free argument; only a mapping carries
// requirements and deny commands.
func decodeArgBody(name string, payload *yaml.Node) domain.Argument {
	arg := domain.Argument{Name: name}
	if isMap(payload) {
		arg.Requirements = decodeRequirementMap(mapGet(payload, "requirements"), true)
		arg.DenyCommands = nodeStringList(mapGet(payload, "deny_commands"))
	}
	return arg
}

// decodeItems reads the keyed items mapping in document order. Items whose
// slot set resolves to empty cannot be placed anywhere and are silently
// dropped.
func decodeItems(n *yaml.Node) []domain.MenuItem {
	pairs := mapPairs(n)
	if len(pairs) == 0 {
		return nil
	}
	items := make([]domain.MenuItem, 0, len(pairs))
	for _, p := range pairs {
		if !isMap(p.value) {
			continue
		}
		item := decodeItem(p.key, p.value)
		if len(item.Slots) == 0 {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

func decodeItem(id string, n *yaml.Node) domain.MenuItem {
	item := domain.MenuItem{
		ID:       id,
		Slots:    decodeItemSlots(n),
		Material: decodeMaterial(mapGet(n, "material")),

		DisplayName:    nodeString(mapGet(n, "display_name")),
		Lore:           nodeStringList(mapGet(n, "lore")),
		LoreAppendMode: nodeString(mapGet(n, "lore_append_mode")),

		Amount:        nodeInt(mapGet(n, "amount"), domain.MinItemAmount),
		DynamicAmount: nodeString(mapGet(n, "dynamic_amount")),

		ModelData: nodeInt(mapGet(n, "model_data"), 0),
		Priority:  nodeInt(mapGet(n, "priority"), 0),
		Update:    nodeBool(mapGet(n, "update")),

		LeftClickCommands:       nodeStringList(mapGet(n, "left_click_commands")),
		RightClickCommands:      nodeStringList(mapGet(n, "right_click_commands")),
		MiddleClickCommands:     nodeStringList(mapGet(n, "middle_click_commands")),
		ShiftLeftClickCommands:  nodeStringList(mapGet(n, "shift_left_click_commands")),
		ShiftRightClickCommands: nodeStringList(mapGet(n, "shift_right_click_commands")),

		Enchantments: decodeEnchantments(mapGet(n, "enchantments")),
		ItemFlags:    nodeStringList(mapGet(n, "item_flags")),

		HideEnchantments:         nodeBool(mapGet(n, "hide_enchantments")),
		HideAttributes:           nodeBool(mapGet(n, "hide_attributes")),
		HideTooltip:              nodeBool(mapGet(n, "hide_tooltip")),
		EnchantmentGlintOverride: nodeBool(mapGet(n, "enchantment_glint_override")),
		Unbreakable:              nodeBool(mapGet(n, "unbreakable")),

		EntityType: nodeString(mapGet(n, "entity_type")),
		BaseColor:  nodeString(mapGet(n, "base_color")),

		PotionEffects: decodePotionEffects(mapGet(n, "potion_effects")),
		BannerLayers:  decodeBannerLayers(mapGet(n, "banner_meta")),
	}
	if item.Amount < domain.MinItemAmount {
		item.Amount = domain.MinItemAmount
	}

	// Legacy aliases: "data" for damage, "color" for rgb.
	if d := mapGet(n, "damage"); d != nil {
		item.Damage = nodeInt(d, 0)
	} else {
		item.Damage = nodeInt(mapGet(n, "data"), 0)
	}
	if rgb := nodeString(mapGet(n, "rgb")); rgb != "" {
		item.RGB = rgb
	} else {
		item.RGB = nodeString(mapGet(n, "color"))
	}

	// Glow cannot be stored directly; reconstruct it from its expansion.
	// This conflates "user wants glow" with "user manually hid real
	// enchantments" - a documented ambiguity of the schema.
	item.Glow = item.HideEnchantments && len(item.Enchantments) > 0

	if view := mapGet(n, "view_requirement"); isMap(view) {
		item.ViewRequirements = decodeRequirementMap(mapGet(view, "requirements"), false)
	}
	if click := mapGet(n, "click_requirement"); isMap(click) {
		item.ClickRequirements = decodeRequirementMap(mapGet(click, "requirements"), false)
		item.ClickDenyCommands = nodeStringList(mapGet(click, "deny_commands"))
		item.ClickSuccessCommands = nodeStringList(mapGet(click, "success_commands"))
	}

	return item
}

// decodeItemSlots prefers the slots field in any of its encodings, falling
// back to the singular legacy slot integer.
func decodeItemSlots(n *yaml.Node) []int {
	if slots := mapGet(n, "slots"); !isNull(slots) {
		return ExpandSlots(nodeAny(slots))
	}
	if slot := mapGet(n, "slot"); isScalar(slot) {
		if v, err := strconv.Atoi(strings.TrimSpace(slot.Value)); err == nil && v >= 0 {
			return []int{v}
		}
	}
	return nil
}

func decodeMaterial(n *yaml.Node) string {
	material := strings.TrimSpace(nodeString(n))
	if material == "" {
		return fallbackMaterial
	}
	return material
}

func decodeEnchantments(n *yaml.Node) []domain.Enchantment {
	raw := nodeStringList(n)
	if len(raw) == 0 {
		return nil
	}
	enchantments := make([]domain.Enchantment, 0, len(raw))
	for _, entry := range raw {
		parts := strings.Split(entry, ";")
		e := domain.Enchantment{Name: parts[0], Level: 1}
		if len(parts) > 1 {
			if lvl, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && lvl > 0 {
				e.Level = lvl
			}
		}
		enchantments = append(enchantments, e)
	}
	return enchantments
}

func decodePotionEffects(n *yaml.Node) []domain.PotionEffect {
	raw := nodeStringList(n)
	if len(raw) == 0 {
		return nil
	}
	effects := make([]domain.PotionEffect, 0, len(raw))
	for _, entry := range raw {
		parts := strings.Split(entry, ";")
		effect := domain.PotionEffect{Effect: parts[0]}
		if len(parts) > 1 {
			effect.Duration, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
		}
		if len(parts) > 2 {
			effect.Amplifier, _ = strconv.Atoi(strings.TrimSpace(parts[2]))
		}
		effects = append(effects, effect)
	}
	return effects
}

func decodeBannerLayers(n *yaml.Node) []domain.BannerLayer {
	raw := nodeStringList(n)
	if len(raw) == 0 {
		return nil
	}
	layers := make([]domain.BannerLayer, 0, len(raw))
	for _, entry := range raw {
		parts := strings.Split(entry, ";")
		layer := domain.BannerLayer{Color: parts[0]}
		if len(parts) > 1 {
			layer.Pattern = parts[1]
		}
		layers = append(layers, layer)
	}
	return layers
}
