package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deluxetools/menued/internal/domain"
)

func problemPaths(problems []Problem) []string {
	paths := make([]string, len(problems))
	for i, p := range problems {
		paths[i] = p.Path
	}
	return paths
}

func cleanSettings() *domain.MenuSettings {
	settings := domain.NewMenuSettings()
	settings.Title = "&6Shop"
	settings.OpenCommand = "shop"
	settings.Items = []domain.MenuItem{
		{ID: "sword", Material: "DIAMOND_SWORD", Slots: []int{13}},
	}
	return settings
}

func TestValidate_CleanMenu(t *testing.T) {
	assert.Empty(t, Validate(cleanSettings()))
}

func TestValidate_NilSettings(t *testing.T) {
	problems := Validate(nil)
	require.Len(t, problems, 1)
}

func TestValidate_HeaderProblems(t *testing.T) {
	settings := cleanSettings()
	settings.Title = ""
	settings.OpenCommand = ""
	settings.RegisterCommand = true
	settings.UpdateInterval = -1
	settings.Size = 50

	paths := problemPaths(Validate(settings))
	assert.Contains(t, paths, "menu_title")
	assert.Contains(t, paths, "open_command")
	assert.Contains(t, paths, "update_interval")
	assert.Contains(t, paths, "size")
}

func TestValidate_Size(t *testing.T) {
	tests := []struct {
		name  string
		typ   domain.InventoryType
		size  int
		valid bool
	}{
		{name: "valid chest size", typ: domain.InventoryChest, size: 27, valid: true},
		{name: "zero size falls back to default", typ: domain.InventoryChest, size: 0, valid: true},
		{name: "not a multiple of nine", typ: domain.InventoryChest, size: 10, valid: false},
		{name: "too large", typ: domain.InventoryChest, size: 63, valid: false},
		{name: "fixed-size type ignores size", typ: domain.InventoryHopper, size: 54, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := cleanSettings()
			settings.Type = tt.typ
			settings.Size = tt.size
			settings.Items = nil

			problems := Validate(settings)
			if tt.valid {
				assert.NotContains(t, problemPaths(problems), "size")
			} else {
				assert.Contains(t, problemPaths(problems), "size")
			}
		})
	}
}

func TestValidate_Items(t *testing.T) {
	settings := cleanSettings()
	settings.Items = []domain.MenuItem{
		{ID: "ghost", Material: "STONE"},
		{ID: "outside", Material: "STONE", Slots: []int{54}},
		{ID: "stacked", Material: "STONE", Slots: []int{0}, Amount: 65},
		{ID: "stacked", Material: "STONE", Slots: []int{1}},
	}

	paths := problemPaths(Validate(settings))
	assert.Contains(t, paths, "items.ghost.slot")
	assert.Contains(t, paths, "items.outside.slot")
	assert.Contains(t, paths, "items.stacked.amount")
	assert.Contains(t, paths, "items.stacked")
}

func TestValidate_SlotBoundsFollowInventoryType(t *testing.T) {
	settings := cleanSettings()
	settings.Type = domain.InventoryHopper
	settings.Items = []domain.MenuItem{
		{ID: "ok", Material: "STONE", Slots: []int{4}},
		{ID: "outside", Material: "STONE", Slots: []int{5}},
	}

	paths := problemPaths(Validate(settings))
	assert.NotContains(t, paths, "items.ok.slot")
	assert.Contains(t, paths, "items.outside.slot")
}

func TestValidate_Args(t *testing.T) {
	settings := cleanSettings()
	settings.Args = []domain.Argument{
		{Name: "player"},
		{Name: "player"},
		{Name: ""},
	}

	paths := problemPaths(Validate(settings))
	assert.Contains(t, paths, "args[1]")
	assert.Contains(t, paths, "args[2]")
}

func TestValidate_Requirements(t *testing.T) {
	settings := cleanSettings()
	settings.OpenRequirement.Requirements = []domain.Requirement{
		{Check: domain.HasPermissions{Permissions: []string{"a", "b"}, Minimum: 3}},
		{Check: domain.HasItem{Material: "", Amount: 0}},
		{Check: domain.StringLength{Input: "%player_name%", Min: 10, Max: 3}},
		{Check: domain.JavaScript{}},
		{Check: nil},
	}

	problems := Validate(settings)
	paths := problemPaths(problems)
	assert.Contains(t, paths, "open_requirement.requirements[0]")
	assert.Contains(t, paths, "open_requirement.requirements[2]")
	assert.Contains(t, paths, "open_requirement.requirements[3]")
	assert.Contains(t, paths, "open_requirement.requirements[4]")

	// has item with empty material and zero amount reports both problems
	count := 0
	for _, p := range problems {
		if p.Path == "open_requirement.requirements[1]" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestValidate_ItemRequirementPaths(t *testing.T) {
	settings := cleanSettings()
	settings.Items[0].ViewRequirements = []domain.Requirement{
		{Check: domain.HasPermission{}},
	}
	settings.Items[0].ClickRequirements = []domain.Requirement{
		{Check: domain.IsNear{Location: "", Distance: "10"}},
	}

	paths := problemPaths(Validate(settings))
	assert.Contains(t, paths, "items.sword.view_requirement.requirements[0]")
	assert.Contains(t, paths, "items.sword.click_requirement.requirements[0]")
}
