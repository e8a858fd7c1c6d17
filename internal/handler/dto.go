package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deluxetools/menued/internal/domain"
)

// JSON representations of the settings model. The editor frontend works
// on these; the YAML text only exists at the parse/generate/export
// boundaries. Field names follow the serialized YAML keys so the two
// forms stay recognizable side by side.

// SettingsDTO mirrors domain.MenuSettings.
type SettingsDTO struct {
	MenuTitle       string `json:"menu_title"`
	InventoryType   string `json:"inventory_type,omitempty"`
	Size            int    `json:"size,omitempty"`
	OpenCommand     string `json:"open_command,omitempty"`
	RegisterCommand bool   `json:"register_command,omitempty"`
	UpdateInterval  int    `json:"update_interval,omitempty"`
	Permission      string `json:"permission,omitempty"`

	OpenCommands  []string `json:"open_commands,omitempty"`
	CloseCommands []string `json:"close_commands,omitempty"`

	OpenRequirement *RequirementGroupDTO `json:"open_requirement,omitempty"`

	Args                            []ArgumentDTO `json:"args,omitempty"`
	ArgsUsageMessage                string        `json:"args_usage_message,omitempty"`
	ArgumentsSupportPlaceholders    bool          `json:"arguments_support_placeholders,omitempty"`
	ParsePlaceholdersAfterArguments bool          `json:"parse_placeholders_after_arguments,omitempty"`

	Items []ItemDTO `json:"items"`
}

// RequirementGroupDTO mirrors domain.RequirementGroup.
type RequirementGroupDTO struct {
	Requirements    []RequirementDTO `json:"requirements,omitempty"`
	DenyCommands    []string         `json:"deny_commands,omitempty"`
	SuccessCommands []string         `json:"success_commands,omitempty"`
}

// ArgumentDTO mirrors domain.Argument.
type ArgumentDTO struct {
	Name         string           `json:"name"`
	Requirements []RequirementDTO `json:"requirements,omitempty"`
	DenyCommands []string         `json:"deny_commands,omitempty"`
}

// RequirementDTO is the flat union of every requirement kind's fields;
// Type selects which of them are meaningful. Amount and Distance accept
// a JSON number or a placeholder string, matching the YAML codec.
type RequirementDTO struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type"`

	Permission  string   `json:"permission,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	Minimum     int      `json:"minimum,omitempty"`

	Amount   any    `json:"amount,omitempty"`
	Material string `json:"material,omitempty"`
	Level    bool   `json:"level,omitempty"`

	Key      string `json:"key,omitempty"`
	MetaType string `json:"meta_type,omitempty"`
	Value    string `json:"value,omitempty"`

	Input  string `json:"input,omitempty"`
	Output string `json:"output,omitempty"`
	Min    int    `json:"min,omitempty"`
	Max    int    `json:"max,omitempty"`

	Expression string `json:"expression,omitempty"`

	Location string `json:"location,omitempty"`
	Distance any    `json:"distance,omitempty"`

	ObjectType string `json:"object,omitempty"`

	DenyCommands    []string `json:"deny_commands,omitempty"`
	SuccessCommands []string `json:"success_commands,omitempty"`
}

// EnchantmentDTO mirrors domain.Enchantment.
type EnchantmentDTO struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// PotionEffectDTO mirrors domain.PotionEffect.
type PotionEffectDTO struct {
	Effect    string `json:"effect"`
	Duration  int    `json:"duration"`
	Amplifier int    `json:"amplifier"`
}

// BannerLayerDTO mirrors domain.BannerLayer.
type BannerLayerDTO struct {
	Color   string `json:"color"`
	Pattern string `json:"pattern"`
}

// ItemDTO mirrors domain.MenuItem.
type ItemDTO struct {
	ID       string `json:"id,omitempty"`
	Material string `json:"material"`
	Slots    []int  `json:"slots"`

	DisplayName    string   `json:"display_name,omitempty"`
	Lore           []string `json:"lore,omitempty"`
	LoreAppendMode string   `json:"lore_append_mode,omitempty"`

	Amount        int    `json:"amount,omitempty"`
	DynamicAmount string `json:"dynamic_amount,omitempty"`

	Damage    int  `json:"damage,omitempty"`
	ModelData int  `json:"model_data,omitempty"`
	Priority  int  `json:"priority,omitempty"`
	Update    bool `json:"update,omitempty"`

	LeftClickCommands       []string `json:"left_click_commands,omitempty"`
	RightClickCommands      []string `json:"right_click_commands,omitempty"`
	MiddleClickCommands     []string `json:"middle_click_commands,omitempty"`
	ShiftLeftClickCommands  []string `json:"shift_left_click_commands,omitempty"`
	ShiftRightClickCommands []string `json:"shift_right_click_commands,omitempty"`

	Enchantments []EnchantmentDTO `json:"enchantments,omitempty"`
	ItemFlags    []string         `json:"item_flags,omitempty"`

	HideEnchantments         bool `json:"hide_enchantments,omitempty"`
	HideAttributes           bool `json:"hide_attributes,omitempty"`
	HideTooltip              bool `json:"hide_tooltip,omitempty"`
	EnchantmentGlintOverride bool `json:"enchantment_glint_override,omitempty"`
	Unbreakable              bool `json:"unbreakable,omitempty"`
	Glow                     bool `json:"glow,omitempty"`

	RGB        string `json:"rgb,omitempty"`
	EntityType string `json:"entity_type,omitempty"`
	BaseColor  string `json:"base_color,omitempty"`

	PotionEffects []PotionEffectDTO `json:"potion_effects,omitempty"`
	BannerMeta    []BannerLayerDTO  `json:"banner_meta,omitempty"`

	ViewRequirements     []RequirementDTO `json:"view_requirements,omitempty"`
	ClickRequirements    []RequirementDTO `json:"click_requirements,omitempty"`
	ClickDenyCommands    []string         `json:"click_deny_commands,omitempty"`
	ClickSuccessCommands []string         `json:"click_success_commands,omitempty"`
}

// --- domain → DTO ---

func settingsToDTO(settings *domain.MenuSettings) SettingsDTO {
	dto := SettingsDTO{
		MenuTitle:                       settings.Title,
		InventoryType:                   string(settings.Type),
		Size:                            settings.Size,
		OpenCommand:                     settings.OpenCommand,
		RegisterCommand:                 settings.RegisterCommand,
		UpdateInterval:                  settings.UpdateInterval,
		Permission:                      settings.Permission,
		OpenCommands:                    settings.OpenCommands,
		CloseCommands:                   settings.CloseCommands,
		ArgsUsageMessage:                settings.ArgsUsageMessage,
		ArgumentsSupportPlaceholders:    settings.ArgumentsSupportPlaceholders,
		ParsePlaceholdersAfterArguments: settings.ParsePlaceholdersAfterArguments,
		Items:                           make([]ItemDTO, 0, len(settings.Items)),
	}

	if !settings.OpenRequirement.IsEmpty() {
		dto.OpenRequirement = &RequirementGroupDTO{
			Requirements:    requirementsToDTO(settings.OpenRequirement.Requirements),
			DenyCommands:    settings.OpenRequirement.DenyCommands,
			SuccessCommands: settings.OpenRequirement.SuccessCommands,
		}
	}
	for _, arg := range settings.Args {
		dto.Args = append(dto.Args, ArgumentDTO{
			Name:         arg.Name,
			Requirements: requirementsToDTO(arg.Requirements),
			DenyCommands: arg.DenyCommands,
		})
	}
	for i := range settings.Items {
		dto.Items = append(dto.Items, itemToDTO(&settings.Items[i]))
	}
	return dto
}

func itemToDTO(item *domain.MenuItem) ItemDTO {
	dto := ItemDTO{
		ID:                       item.ID,
		Material:                 item.Material,
		Slots:                    item.Slots,
		DisplayName:              item.DisplayName,
		Lore:                     item.Lore,
		LoreAppendMode:           item.LoreAppendMode,
		Amount:                   item.Amount,
		DynamicAmount:            item.DynamicAmount,
		Damage:                   item.Damage,
		ModelData:                item.ModelData,
		Priority:                 item.Priority,
		Update:                   item.Update,
		LeftClickCommands:        item.LeftClickCommands,
		RightClickCommands:       item.RightClickCommands,
		MiddleClickCommands:      item.MiddleClickCommands,
		ShiftLeftClickCommands:   item.ShiftLeftClickCommands,
		ShiftRightClickCommands:  item.ShiftRightClickCommands,
		ItemFlags:                item.ItemFlags,
		HideEnchantments:         item.HideEnchantments,
		HideAttributes:           item.HideAttributes,
		HideTooltip:              item.HideTooltip,
		EnchantmentGlintOverride: item.EnchantmentGlintOverride,
		Unbreakable:              item.Unbreakable,
		Glow:                     item.Glow,
		RGB:                      item.RGB,
		EntityType:               item.EntityType,
		BaseColor:                item.BaseColor,
		ViewRequirements:         requirementsToDTO(item.ViewRequirements),
		ClickRequirements:        requirementsToDTO(item.ClickRequirements),
		ClickDenyCommands:        item.ClickDenyCommands,
		ClickSuccessCommands:     item.ClickSuccessCommands,
	}
	for _, e := range item.Enchantments {
		dto.Enchantments = append(dto.Enchantments, EnchantmentDTO{Name: e.Name, Level: e.Level})
	}
	for _, e := range item.PotionEffects {
		dto.PotionEffects = append(dto.PotionEffects, PotionEffectDTO{Effect: e.Effect, Duration: e.Duration, Amplifier: e.Amplifier})
	}
	for _, l := range item.BannerLayers {
		dto.BannerMeta = append(dto.BannerMeta, BannerLayerDTO{Color: l.Color, Pattern: l.Pattern})
	}
	return dto
}

func requirementsToDTO(requirements []domain.Requirement) []RequirementDTO {
	if len(requirements) == 0 {
		return nil
	}
	out := make([]RequirementDTO, 0, len(requirements))
	for _, req := range requirements {
		out = append(out, requirementToDTO(req))
	}
	return out
}

// numericOrString mirrors the YAML codec's int-or-placeholder rule for
// JSON: whole base-10 values travel as numbers, placeholders as strings.
func numericOrString(value string) any {
	if value == "" {
		return nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return value
}

func requirementToDTO(req domain.Requirement) RequirementDTO {
	dto := RequirementDTO{
		ID:              req.ID,
		Type:            req.Type(),
		DenyCommands:    req.DenyCommands,
		SuccessCommands: req.SuccessCommands,
	}
	switch c := req.Check.(type) {
	case domain.HasPermission:
		dto.Permission = c.Permission
	case domain.HasPermissions:
		dto.Permissions = c.Permissions
		dto.Minimum = c.Minimum
	case domain.HasMoney:
		dto.Amount = numericOrString(c.Amount)
	case domain.HasItem:
		dto.Material = c.Material
		dto.Amount = c.Amount
	case domain.HasExp:
		dto.Amount = c.Amount
		dto.Level = c.Level
	case domain.HasMeta:
		dto.Key = c.Key
		dto.MetaType = c.MetaType
		dto.Value = c.Value
	case domain.StringCompare:
		dto.Input = c.Input
		dto.Output = c.Output
	case domain.StringLength:
		dto.Input = c.Input
		dto.Min = c.Min
		dto.Max = c.Max
	case domain.JavaScript:
		dto.Expression = c.Expression
	case domain.IsNear:
		dto.Location = c.Location
		dto.Distance = numericOrString(c.Distance)
	case domain.IsObject:
		dto.Input = c.Input
		dto.ObjectType = c.ObjectType
	}
	return dto
}

// --- DTO → domain ---

func settingsFromDTO(dto *SettingsDTO) (*domain.MenuSettings, error) {
	settings := &domain.MenuSettings{
		Title:                           dto.MenuTitle,
		Type:                            domain.InventoryType(strings.ToUpper(dto.InventoryType)),
		Size:                            dto.Size,
		OpenCommand:                     dto.OpenCommand,
		RegisterCommand:                 dto.RegisterCommand,
		UpdateInterval:                  dto.UpdateInterval,
		Permission:                      dto.Permission,
		OpenCommands:                    dto.OpenCommands,
		CloseCommands:                   dto.CloseCommands,
		ArgsUsageMessage:                dto.ArgsUsageMessage,
		ArgumentsSupportPlaceholders:    dto.ArgumentsSupportPlaceholders,
		ParsePlaceholdersAfterArguments: dto.ParsePlaceholdersAfterArguments,
	}
	if settings.Type == "" {
		settings.Type = domain.InventoryChest
	}

	if dto.OpenRequirement != nil {
		requirements, err := requirementsFromDTO("open_requirement", dto.OpenRequirement.Requirements)
		if err != nil {
			return nil, err
		}
		settings.OpenRequirement = domain.RequirementGroup{
			Requirements:    requirements,
			DenyCommands:    dto.OpenRequirement.DenyCommands,
			SuccessCommands: dto.OpenRequirement.SuccessCommands,
		}
	}

	for i, arg := range dto.Args {
		requirements, err := requirementsFromDTO(fmt.Sprintf("args[%d]", i), arg.Requirements)
		if err != nil {
			return nil, err
		}
		settings.Args = append(settings.Args, domain.Argument{
			Name:         arg.Name,
			Requirements: requirements,
			DenyCommands: arg.DenyCommands,
		})
	}

	for i := range dto.Items {
		item, err := itemFromDTO(&dto.Items[i])
		if err != nil {
			return nil, err
		}
		settings.Items = append(settings.Items, *item)
	}
	return settings, nil
}

func itemFromDTO(dto *ItemDTO) (*domain.MenuItem, error) {
	item := &domain.MenuItem{
		ID:                       dto.ID,
		Material:                 dto.Material,
		Slots:                    dto.Slots,
		DisplayName:              dto.DisplayName,
		Lore:                     dto.Lore,
		LoreAppendMode:           dto.LoreAppendMode,
		Amount:                   dto.Amount,
		DynamicAmount:            dto.DynamicAmount,
		Damage:                   dto.Damage,
		ModelData:                dto.ModelData,
		Priority:                 dto.Priority,
		Update:                   dto.Update,
		LeftClickCommands:        dto.LeftClickCommands,
		RightClickCommands:       dto.RightClickCommands,
		MiddleClickCommands:      dto.MiddleClickCommands,
		ShiftLeftClickCommands:   dto.ShiftLeftClickCommands,
		ShiftRightClickCommands:  dto.ShiftRightClickCommands,
		ItemFlags:                dto.ItemFlags,
		HideEnchantments:         dto.HideEnchantments,
		HideAttributes:           dto.HideAttributes,
		HideTooltip:              dto.HideTooltip,
		EnchantmentGlintOverride: dto.EnchantmentGlintOverride,
		Unbreakable:              dto.Unbreakable,
		Glow:                     dto.Glow,
		RGB:                      dto.RGB,
		EntityType:               dto.EntityType,
		BaseColor:                dto.BaseColor,
		ClickDenyCommands:        dto.ClickDenyCommands,
		ClickSuccessCommands:     dto.ClickSuccessCommands,
	}
	for _, e := range dto.Enchantments {
		item.Enchantments = append(item.Enchantments, domain.Enchantment{Name: e.Name, Level: e.Level})
	}
	for _, e := range dto.PotionEffects {
		item.PotionEffects = append(item.PotionEffects, domain.PotionEffect{Effect: e.Effect, Duration: e.Duration, Amplifier: e.Amplifier})
	}
	for _, l := range dto.BannerMeta {
		item.BannerLayers = append(item.BannerLayers, domain.BannerLayer{Color: l.Color, Pattern: l.Pattern})
	}

	path := "items." + dto.ID
	view, err := requirementsFromDTO(path+".view_requirements", dto.ViewRequirements)
	if err != nil {
		return nil, err
	}
	click, err := requirementsFromDTO(path+".click_requirements", dto.ClickRequirements)
	if err != nil {
		return nil, err
	}
	item.ViewRequirements = view
	item.ClickRequirements = click
	return item, nil
}

func requirementsFromDTO(path string, dtos []RequirementDTO) ([]domain.Requirement, error) {
	var requirements []domain.Requirement
	for i, dto := range dtos {
		check, err := checkFromDTO(&dto)
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %s", domain.ErrInvalidInput, path, i, err)
		}
		requirements = append(requirements, domain.Requirement{
			ID:              dto.ID,
			Check:           check,
			DenyCommands:    dto.DenyCommands,
			SuccessCommands: dto.SuccessCommands,
		})
	}
	return requirements, nil
}

// numericField coerces a JSON amount-like value into the model's string
// form (plain int or placeholder expression).
func numericField(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case float64:
		return strconv.Itoa(int(v)), nil
	case int:
		return strconv.Itoa(v), nil
	default:
		return "", fmt.Errorf("expected number or string, got %T", value)
	}
}

// intField coerces a JSON value into a plain int for strictly-integer
// fields.
func intField(value any) (int, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %q", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", value)
	}
}

func checkFromDTO(dto *RequirementDTO) (domain.Check, error) {
	tag := strings.TrimSpace(dto.Type)

	// Comparator tags like "!=" start with "!" but are not negations.
	not := false
	if !domain.IsStringCompareOp(tag) {
		if stripped, ok := strings.CutPrefix(tag, "!"); ok {
			tag = stripped
			not = true
		}
	}

	switch {
	case tag == domain.ReqHasPermission:
		return domain.HasPermission{Permission: dto.Permission, Not: not}, nil
	case tag == domain.ReqHasPermissions:
		return domain.HasPermissions{Permissions: dto.Permissions, Minimum: dto.Minimum}, nil
	case tag == domain.ReqHasMoney:
		amount, err := numericField(dto.Amount)
		if err != nil {
			return nil, err
		}
		return domain.HasMoney{Amount: amount}, nil
	case tag == domain.ReqHasItem:
		amount, err := intField(dto.Amount)
		if err != nil {
			return nil, err
		}
		if amount == 0 {
			amount = 1
		}
		return domain.HasItem{Material: dto.Material, Amount: amount}, nil
	case tag == domain.ReqHasExp:
		amount, err := intField(dto.Amount)
		if err != nil {
			return nil, err
		}
		return domain.HasExp{Amount: amount, Level: dto.Level}, nil
	case tag == domain.ReqHasMeta:
		return domain.HasMeta{Key: dto.Key, MetaType: dto.MetaType, Value: dto.Value}, nil
	case tag == domain.ReqStringLength:
		return domain.StringLength{Input: dto.Input, Min: dto.Min, Max: dto.Max}, nil
	case tag == domain.ReqJavaScript:
		return domain.JavaScript{Expression: dto.Expression}, nil
	case tag == domain.ReqIsNear:
		distance, err := numericField(dto.Distance)
		if err != nil {
			return nil, err
		}
		return domain.IsNear{Location: dto.Location, Distance: distance, Not: not}, nil
	case tag == domain.ReqIsObject:
		return domain.IsObject{Input: dto.Input, ObjectType: dto.ObjectType}, nil
	case tag == domain.ReqNone, tag == "":
		return domain.None{}, nil
	case domain.IsStringCompareOp(tag):
		return domain.StringCompare{Op: tag, Input: dto.Input, Output: dto.Output, Not: not}, nil
	default:
		return nil, fmt.Errorf("unknown requirement type %q", dto.Type)
	}
}
