package menu

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/deluxetools/menued/internal/domain"
)

// permissionDenyMessage is the canned deny command synthesized for the
// legacy top-level permission field.
const permissionDenyMessage = "[message] &cYou don't have permission to open this menu!"

// glowEnchantment is the synthetic enchantment that carries the glint when
// an item wants glow without any real enchantment.
const glowEnchantment = "efficiency;1"

// Generate renders settings into the plugin's YAML schema. Emission order
// is fixed, default/empty fields are omitted, and two calls with identical
// input produce byte-identical output. The input is never mutated.
//
// Generate is total over structurally valid settings; an unexpected
// internal failure is recovered and surfaced as a single ErrGenerate
// rather than a panic reaching the caller.
func Generate(settings *domain.MenuSettings) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = fmt.Errorf("%w: %v", domain.ErrGenerate, r)
		}
	}()

	if settings == nil {
		return "", fmt.Errorf("%w: nil settings", domain.ErrGenerate)
	}

	invType := settings.Type
	if invType == "" {
		invType = domain.InventoryChest
	}

	root := newObj()
	root.putVal("menu_title", settings.Title)
	root.putVal("open_command", settings.OpenCommand)
	root.putVal("register_command", settings.RegisterCommand)
	root.putVal("size", settings.EffectiveSize())
	root.putVal("inventory_type", string(invType))

	if settings.UpdateInterval > 0 {
		root.putVal("update_interval", settings.UpdateInterval)
	}
	root.putStrings("open_commands", settings.OpenCommands)
	root.putStrings("close_commands", settings.CloseCommands)

	if node := encodeOpenRequirement(settings); node != nil {
		root.put("open_requirement", node)
	}

	if node := encodeArgs(settings.Args); node != nil {
		root.put("args", node)
	}
	root.putString("args_usage_message", settings.ArgsUsageMessage)
	root.putTrue("arguments_support_placeholders", settings.ArgumentsSupportPlaceholders)
	root.putTrue("parse_placeholders_after_arguments", settings.ParsePlaceholdersAfterArguments)

	root.put("items", encodeItems(settings.Items))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root.node); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerate, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerate, err)
	}
	return buf.String(), nil
}

// encodeOpenRequirement emits the open_requirement block when the group has
// content. With an empty group but a legacy permission set, it synthesizes
// a single "has permission" requirement with the canned deny message so old
// documents keep their gate.
func encodeOpenRequirement(settings *domain.MenuSettings) *yaml.Node {
	group := settings.OpenRequirement
	if group.IsEmpty() {
		if settings.Permission == "" {
			return nil
		}
		group = domain.RequirementGroup{
			Requirements: []domain.Requirement{{
				ID:           "permission",
				Check:        domain.HasPermission{Permission: settings.Permission},
				DenyCommands: []string{permissionDenyMessage},
			}},
		}
	}

	o := newObj()
	if len(group.Requirements) > 0 {
		reqs := newObj()
		for i, req := range group.Requirements {
			key := req.ID
			if key == "" {
				key = fmt.Sprintf("requirement_%d", i+1)
			}
			reqs.put(key, encodeRequirement(req))
		}
		o.put("requirements", reqs.node)
	}
	o.putStrings("deny_commands", filterBlank(group.DenyCommands))
	o.putStrings("success_commands", filterBlank(group.SuccessCommands))
	if o.empty() {
		return nil
	}
	return o.node
}

// encodeArgs picks the args encoding shape for the whole document: a flat
// name list when no argument carries requirements, else a keyed map where
// requirement-free arguments encode as a literal true. The shape switch is
// all-or-nothing; the downstream parser rejects mixed list/map forms.
func encodeArgs(args []domain.Argument) *yaml.Node {
	if len(args) == 0 {
		return nil
	}

	useMap := false
	for _, arg := range args {
		if arg.HasRequirements() {
			useMap = true
			break
		}
	}

	if !useMap {
		names := make([]string, len(args))
		for i, arg := range args {
			names[i] = arg.Name
		}
		return scalarNode(names)
	}

	o := newObj()
	for _, arg := range args {
		if !arg.HasRequirements() && len(arg.DenyCommands) == 0 {
			o.putVal(arg.Name, true)
			continue
		}
		body := newObj()
		if len(arg.Requirements) > 0 {
			reqs := newObj()
			used := make(map[string]bool, len(arg.Requirements))
			for i, req := range arg.Requirements {
				reqs.put(argRequirementKey(req, i, used), encodeRequirement(req))
			}
			body.put("requirements", reqs.node)
		}
		body.putStrings("deny_commands", filterBlank(arg.DenyCommands))
		o.put(arg.Name, body.node)
	}
	return o.node
}

// argRequirementKey picks the map key for an argument requirement: the
// requirement's own id when it has one, else its type tag with spaces
// collapsed to underscores, deduplicated with _2, _3... suffixes.
func argRequirementKey(req domain.Requirement, idx int, used map[string]bool) string {
	key := req.ID
	if key == "" {
		key = strings.ReplaceAll(strings.TrimSpace(req.Type()), " ", "_")
	}
	if key == "" {
		key = fmt.Sprintf("req_%d", idx+1)
	}
	unique := key
	for counter := 2; used[unique]; counter++ {
		unique = fmt.Sprintf("%s_%d", key, counter)
	}
	used[unique] = true
	return unique
}

// encodeItems emits the items mapping in list order; each item's id is its
// map key, with a slot-derived fallback for items created before naming.
func encodeItems(items []domain.MenuItem) *yaml.Node {
	o := newObj()
	for i := range items {
		item := &items[i]
		key := item.ID
		if key == "" {
			key = fmt.Sprintf("item_%d", item.Slot())
		}
		o.put(key, encodeItem(item))
	}
	return o.node
}

func encodeItem(item *domain.MenuItem) *yaml.Node {
	o := newObj()
	o.putVal("material", item.Material)

	tokens := CompactSlots(item.Slots)
	switch {
	case len(tokens) == 1:
		// A single bare slot uses the legacy scalar field, never a
		// one-element list. A single range token still needs the list.
		if slot, ok := tokens[0].(int); ok {
			o.putVal("slot", slot)
		} else {
			o.put("slots", slotsNode(tokens))
		}
	case len(tokens) > 1:
		o.put("slots", slotsNode(tokens))
	}

	o.putString("display_name", item.DisplayName)
	o.putStrings("lore", item.Lore)
	if item.LoreAppendMode != "" && item.LoreAppendMode != domain.LoreAppendModeOverride {
		o.putVal("lore_append_mode", item.LoreAppendMode)
	}

	if item.Amount > domain.MinItemAmount {
		o.putVal("amount", item.EffectiveAmount())
	}
	o.putString("dynamic_amount", strings.TrimSpace(item.DynamicAmount))

	if item.Damage > 0 {
		o.putVal("damage", item.Damage)
	}
	if item.Priority > 0 {
		o.putVal("priority", item.Priority)
	}
	o.putTrue("update", item.Update)
	if item.ModelData > 0 {
		o.putVal("model_data", item.ModelData)
	}

	o.putStrings("left_click_commands", filterBlank(item.LeftClickCommands))
	o.putStrings("right_click_commands", filterBlank(item.RightClickCommands))
	o.putStrings("middle_click_commands", filterBlank(item.MiddleClickCommands))
	o.putStrings("shift_left_click_commands", filterBlank(item.ShiftLeftClickCommands))
	o.putStrings("shift_right_click_commands", filterBlank(item.ShiftRightClickCommands))

	o.putStrings("enchantments", encodeEnchantments(item))
	o.putStrings("item_flags", item.ItemFlags)

	// Glow borrows the enchantment glint: it forces hide_enchantments so
	// only the shimmer shows. The reverse heuristic in the deserializer is
	// lossy by design.
	o.putTrue("hide_enchantments", item.HideEnchantments || item.Glow)
	o.putTrue("hide_attributes", item.HideAttributes)
	o.putTrue("hide_tooltip", item.HideTooltip)
	o.putTrue("enchantment_glint_override", item.EnchantmentGlintOverride)
	o.putTrue("unbreakable", item.Unbreakable)

	o.putString("rgb", item.RGB)
	o.putString("entity_type", item.EntityType)
	o.putString("base_color", item.BaseColor)

	o.putStrings("potion_effects", encodePotionEffects(item.PotionEffects))
	o.putStrings("banner_meta", encodeBannerLayers(item.BannerLayers))

	if len(item.ViewRequirements) > 0 {
		view := newObj()
		view.put("requirements", requirementListNode(item.ViewRequirements))
		o.put("view_requirement", view.node)
	}

	if len(item.ClickRequirements) > 0 {
		click := newObj()
		click.put("requirements", requirementListNode(item.ClickRequirements))
		click.putStrings("deny_commands", filterBlank(item.ClickDenyCommands))
		click.putStrings("success_commands", filterBlank(item.ClickSuccessCommands))
		o.put("click_requirement", click.node)
	}

	return o.node
}

// requirementListNode keys anonymous requirement lists as requirement_1..N.
func requirementListNode(reqs []domain.Requirement) *yaml.Node {
	o := newObj()
	for i, req := range reqs {
		o.put(fmt.Sprintf("requirement_%d", i+1), encodeRequirement(req))
	}
	return o.node
}

func encodeEnchantments(item *domain.MenuItem) []string {
	var out []string
	for _, e := range item.Enchantments {
		if e.Name == "" || e.Level == 0 {
			continue
		}
		out = append(out, fmt.Sprintf("%s;%d", e.Name, e.Level))
	}
	if item.Glow && len(out) == 0 {
		out = append(out, glowEnchantment)
	}
	return out
}

func encodePotionEffects(effects []domain.PotionEffect) []string {
	var out []string
	for _, e := range effects {
		if e.Effect == "" {
			continue
		}
		out = append(out, fmt.Sprintf("%s;%d;%d", e.Effect, e.Duration, e.Amplifier))
	}
	return out
}

func encodeBannerLayers(layers []domain.BannerLayer) []string {
	var out []string
	for _, l := range layers {
		if l.Color == "" && l.Pattern == "" {
			continue
		}
		out = append(out, fmt.Sprintf("%s;%s", l.Color, l.Pattern))
	}
	return out
}

// slotsNode builds the mixed int/range-string slots sequence.
func slotsNode(tokens []any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, t := range tokens {
		n.Content = append(n.Content, scalarNode(t))
	}
	return n
}

// filterBlank drops empty and whitespace-only command strings.
func filterBlank(commands []string) []string {
	var out []string
	for _, c := range commands {
		if strings.TrimSpace(c) != "" {
			out = append(out, c)
		}
	}
	return out
}
