package menu

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/deluxetools/menued/internal/domain"
)

// The requirement sub-codec is shared by the three places requirements
// appear: the menu-level open requirement, per-item view/click
// requirements, and per-argument requirements. The same type tags carry
// identical field semantics in all of them.

// encodeRequirement projects one requirement into its schema mapping:
// always the type tag first, then exactly the fields meaningful to that
// kind, then the nested pass/fail command lists. Empty fields never appear.
func encodeRequirement(req domain.Requirement) *yaml.Node {
	o := newObj()
	o.putVal("type", req.Type())

	switch c := req.Check.(type) {
	case domain.HasPermission:
		o.putString("permission", c.Permission)
	case domain.HasPermissions:
		if len(c.Permissions) > 0 {
			o.putVal("permissions", c.Permissions)
		}
		if c.Minimum > 0 {
			o.putVal("minimum", c.Minimum)
		}
	case domain.HasMoney:
		o.putNumeric("amount", c.Amount)
	case domain.HasItem:
		o.putString("material", c.Material)
		if c.Amount > 0 {
			o.putVal("amount", c.Amount)
		} else {
			o.putVal("amount", 1)
		}
	case domain.HasExp:
		o.putVal("amount", c.Amount)
		o.putTrue("level", c.Level)
	case domain.HasMeta:
		o.putString("key", c.Key)
		o.putString("meta_type", c.MetaType)
		o.putString("value", c.Value)
	case domain.StringCompare:
		o.putString("input", c.Input)
		o.putString("output", c.Output)
	case domain.StringLength:
		o.putString("input", c.Input)
		if c.Min > 0 {
			o.putVal("min", c.Min)
		}
		if c.Max > 0 {
			o.putVal("max", c.Max)
		}
	case domain.JavaScript:
		o.putString("expression", c.Expression)
	case domain.IsNear:
		o.putString("location", c.Location)
		o.putNumeric("distance", c.Distance)
	case domain.IsObject:
		o.putString("input", c.Input)
		o.putString("object", c.ObjectType)
	}

	o.putStrings("deny_commands", req.DenyCommands)
	o.putStrings("success_commands", req.SuccessCommands)

	return o.node
}

// decodeRequirement is the inverse: it dispatches on the type tag and reads
// only that kind's fields. Unknown or missing tags decode to the none
// variant rather than failing. The id is the requirement's map key when it
// came from a keyed map, empty otherwise.
func decodeRequirement(n *yaml.Node, id string) domain.Requirement {
	req := domain.Requirement{
		ID:              id,
		DenyCommands:    nodeStringList(mapGet(n, "deny_commands")),
		SuccessCommands: nodeStringList(mapGet(n, "success_commands")),
	}

	tag := strings.TrimSpace(nodeString(mapGet(n, "type")))

	// Comparator tags like "!=" and "<=" are full type tags of their own;
	// match them before treating "!" as a negation prefix.
	if domain.IsStringCompareOp(tag) {
		req.Check = decodeStringCompare(n, tag, false)
		return req
	}

	base, not := strings.CutPrefix(tag, "!")

	switch {
	case base == domain.ReqHasPermission:
		req.Check = domain.HasPermission{
			Permission: nodeString(mapGet(n, "permission")),
			Not:        not,
		}
	case tag == domain.ReqHasPermissions:
		req.Check = domain.HasPermissions{
			Permissions: decodePermissionList(mapGet(n, "permissions")),
			Minimum:     nodeInt(mapGet(n, "minimum"), 0),
		}
	case tag == domain.ReqHasMoney:
		req.Check = domain.HasMoney{
			Amount: nodeString(mapGet(n, "amount")),
		}
	case tag == domain.ReqHasItem:
		req.Check = domain.HasItem{
			Material: nodeString(mapGet(n, "material")),
			Amount:   nodeInt(mapGet(n, "amount"), 1),
		}
	case tag == domain.ReqHasExp:
		req.Check = domain.HasExp{
			Amount: nodeInt(mapGet(n, "amount"), 0),
			Level:  nodeBool(mapGet(n, "level")),
		}
	case tag == domain.ReqHasMeta:
		req.Check = domain.HasMeta{
			Key:      nodeString(mapGet(n, "key")),
			MetaType: nodeString(mapGet(n, "meta_type")),
			Value:    nodeString(mapGet(n, "value")),
		}
	case tag == domain.ReqStringLength:
		req.Check = domain.StringLength{
			Input: nodeString(mapGet(n, "input")),
			Min:   nodeInt(mapGet(n, "min"), 0),
			Max:   nodeInt(mapGet(n, "max"), 0),
		}
	case domain.IsStringCompareOp(base):
		req.Check = decodeStringCompare(n, base, not)
	case tag == domain.ReqJavaScript:
		req.Check = domain.JavaScript{
			Expression: nodeString(mapGet(n, "expression")),
		}
	case base == domain.ReqIsNear:
		req.Check = domain.IsNear{
			Location: nodeString(mapGet(n, "location")),
			Distance: nodeString(mapGet(n, "distance")),
			Not:      not,
		}
	case tag == domain.ReqIsObject:
		req.Check = domain.IsObject{
			Input:      nodeString(mapGet(n, "input")),
			ObjectType: nodeString(mapGet(n, "object")),
		}
	default:
		req.Check = domain.None{}
	}

	return req
}

// decodeStringCompare reads the string/regex/comparator family. Some
// configs in the wild spell the regex pattern under a "regex" key instead
// of "output"; accept it as a fallback source.
func decodeStringCompare(n *yaml.Node, op string, not bool) domain.StringCompare {
	output := nodeString(mapGet(n, "output"))
	if output == "" {
		output = nodeString(mapGet(n, "regex"))
	}
	return domain.StringCompare{
		Op:     op,
		Input:  nodeString(mapGet(n, "input")),
		Output: output,
		Not:    not,
	}
}

// decodePermissionList accepts either a YAML list or the legacy
// comma-joined string form.
func decodePermissionList(n *yaml.Node) []string {
	if isSeq(n) {
		return nodeStringList(n)
	}
	raw := nodeString(n)
	if raw == "" {
		return nil
	}
	var perms []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			perms = append(perms, p)
		}
	}
	return perms
}

// decodeRequirementMap reads a keyed requirements mapping in document
// order. keepIDs preserves each map key as the requirement's id; the
// anonymous contexts (view/click requirements, whose keys are synthesized
// requirement_N counters) pass false so ids stay empty.
func decodeRequirementMap(n *yaml.Node, keepIDs bool) []domain.Requirement {
	pairs := mapPairs(n)
	if len(pairs) == 0 {
		return nil
	}
	reqs := make([]domain.Requirement, 0, len(pairs))
	for _, p := range pairs {
		if !isMap(p.value) {
			continue
		}
		id := ""
		if keepIDs {
			id = p.key
		}
		reqs = append(reqs, decodeRequirement(p.value, id))
	}
	return reqs
}
