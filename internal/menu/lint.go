package menu

import (
	"fmt"

	"github.com/deluxetools/menued/internal/domain"
)

// Problem describes one issue found in a settings tree. Path points at
// the offending field using the serialized key names.
type Problem struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Validate checks a settings tree for problems the plugin would reject
// or silently misbehave on. It never mutates settings and returns
// problems in traversal order; an empty slice means the menu is clean.
func Validate(settings *domain.MenuSettings) []Problem {
	problems := []Problem{}
	if settings == nil {
		return append(problems, Problem{Path: "", Message: "settings must not be nil"})
	}

	if settings.Title == "" {
		problems = append(problems, Problem{Path: "menu_title", Message: "menu title is required"})
	}
	if settings.RegisterCommand && settings.OpenCommand == "" {
		problems = append(problems, Problem{Path: "open_command", Message: "register_command requires an open command"})
	}
	if settings.UpdateInterval < 0 {
		problems = append(problems, Problem{Path: "update_interval", Message: "update interval must not be negative"})
	}

	problems = append(problems, validateSize(settings)...)
	problems = append(problems, validateArgs(settings.Args)...)
	problems = append(problems, validateRequirements("open_requirement.requirements", settings.OpenRequirement.Requirements)...)

	size := settings.EffectiveSize()
	seen := make(map[string]bool, len(settings.Items))
	for i := range settings.Items {
		item := &settings.Items[i]
		path := "items." + itemPath(item, i)
		if item.ID != "" {
			if seen[item.ID] {
				problems = append(problems, Problem{Path: path, Message: fmt.Sprintf("duplicate item id '%s'", item.ID)})
			}
			seen[item.ID] = true
		}
		problems = append(problems, validateItem(path, item, size)...)
	}
	return problems
}

func itemPath(item *domain.MenuItem, index int) string {
	if item.ID != "" {
		return item.ID
	}
	return fmt.Sprintf("[%d]", index)
}

func validateSize(settings *domain.MenuSettings) []Problem {
	var problems []Problem

	// Fixed-size inventory types carry their own size.
	if _, fixed := settings.Type.FixedSize(); fixed || settings.Size == 0 {
		return problems
	}
	if settings.Size < domain.MinMenuSize || settings.Size > domain.MaxMenuSize {
		problems = append(problems, Problem{
			Path:    "size",
			Message: fmt.Sprintf("size must be between %d and %d", domain.MinMenuSize, domain.MaxMenuSize),
		})
	} else if settings.Size%9 != 0 {
		problems = append(problems, Problem{Path: "size", Message: "size must be a multiple of 9"})
	}
	return problems
}

func validateArgs(args []domain.Argument) []Problem {
	var problems []Problem
	seen := make(map[string]bool, len(args))
	for i, arg := range args {
		path := fmt.Sprintf("args[%d]", i)
		if arg.Name == "" {
			problems = append(problems, Problem{Path: path, Message: "argument name must not be empty"})
			continue
		}
		if seen[arg.Name] {
			problems = append(problems, Problem{Path: path, Message: fmt.Sprintf("duplicate argument name '%s'", arg.Name)})
		}
		seen[arg.Name] = true
		problems = append(problems, validateRequirements(path+".requirements", arg.Requirements)...)
	}
	return problems
}

func validateItem(path string, item *domain.MenuItem, menuSize int) []Problem {
	var problems []Problem

	if len(item.Slots) == 0 {
		problems = append(problems, Problem{Path: path + ".slot", Message: "item has no slots"})
	}
	for _, slot := range item.Slots {
		if slot < 0 || slot >= menuSize {
			problems = append(problems, Problem{
				Path:    path + ".slot",
				Message: fmt.Sprintf("slot %d is outside the menu (0-%d)", slot, menuSize-1),
			})
		}
	}

	if item.Amount < 0 || item.Amount > domain.MaxItemAmount {
		problems = append(problems, Problem{
			Path:    path + ".amount",
			Message: fmt.Sprintf("amount must be between %d and %d", domain.MinItemAmount, domain.MaxItemAmount),
		})
	}
	for i, enchantment := range item.Enchantments {
		if enchantment.Name == "" {
			problems = append(problems, Problem{
				Path:    fmt.Sprintf("%s.enchantments[%d]", path, i),
				Message: "enchantment name must not be empty",
			})
		}
	}
	for i, effect := range item.PotionEffects {
		if effect.Effect == "" {
			problems = append(problems, Problem{
				Path:    fmt.Sprintf("%s.potion_effects[%d]", path, i),
				Message: "potion effect name must not be empty",
			})
		}
	}
	for i, layer := range item.BannerLayers {
		if layer.Color == "" || layer.Pattern == "" {
			problems = append(problems, Problem{
				Path:    fmt.Sprintf("%s.banner_meta[%d]", path, i),
				Message: "banner layer needs both color and pattern",
			})
		}
	}

	problems = append(problems, validateRequirements(path+".view_requirement.requirements", item.ViewRequirements)...)
	problems = append(problems, validateRequirements(path+".click_requirement.requirements", item.ClickRequirements)...)
	return problems
}

func validateRequirements(path string, requirements []domain.Requirement) []Problem {
	var problems []Problem
	for i, requirement := range requirements {
		problems = append(problems, validateCheck(fmt.Sprintf("%s[%d]", path, i), requirement.Check)...)
	}
	return problems
}

func validateCheck(path string, check domain.Check) []Problem {
	var problems []Problem
	switch c := check.(type) {
	case nil:
		problems = append(problems, Problem{Path: path, Message: "requirement has no check"})
	case domain.HasPermission:
		if c.Permission == "" {
			problems = append(problems, Problem{Path: path, Message: "permission must not be empty"})
		}
	case domain.HasPermissions:
		if len(c.Permissions) == 0 {
			problems = append(problems, Problem{Path: path, Message: "permission list must not be empty"})
		}
		if c.Minimum > len(c.Permissions) {
			problems = append(problems, Problem{
				Path:    path,
				Message: fmt.Sprintf("minimum %d exceeds the %d listed permissions", c.Minimum, len(c.Permissions)),
			})
		}
	case domain.HasItem:
		if c.Material == "" {
			problems = append(problems, Problem{Path: path, Message: "material must not be empty"})
		}
		if c.Amount < 1 {
			problems = append(problems, Problem{Path: path, Message: "amount must be at least 1"})
		}
	case domain.StringCompare:
		if c.Input == "" {
			problems = append(problems, Problem{Path: path, Message: "input must not be empty"})
		}
	case domain.StringLength:
		if c.Max != 0 && c.Min > c.Max {
			problems = append(problems, Problem{Path: path, Message: "min must not exceed max"})
		}
	case domain.JavaScript:
		if c.Expression == "" {
			problems = append(problems, Problem{Path: path, Message: "expression must not be empty"})
		}
	case domain.IsNear:
		if c.Location == "" {
			problems = append(problems, Problem{Path: path, Message: "location must not be empty"})
		}
	}
	return problems
}
