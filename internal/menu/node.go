package menu

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// The serializer needs full control over key order (the schema's field
// order is fixed and not alphabetical, and items/requirements keep
// insertion order), so it builds *yaml.Node mapping trees directly instead
// of marshaling Go maps. The deserializer walks the same node trees, which
// also preserves document order for the keyed collections.

// obj is an ordered YAML mapping under construction.
type obj struct {
	node *yaml.Node
}

func newObj() *obj {
	return &obj{node: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
}

func (o *obj) put(key string, value *yaml.Node) {
	k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	o.node.Content = append(o.node.Content, k, value)
}

// putVal encodes any plain Go value (string, int, bool, []string) in place.
func (o *obj) putVal(key string, v any) {
	o.put(key, scalarNode(v))
}

// putString adds the key only when the value is non-empty.
func (o *obj) putString(key, v string) {
	if v != "" {
		o.putVal(key, v)
	}
}

// putStrings adds the key only when the list has at least one entry.
func (o *obj) putStrings(key string, v []string) {
	if len(v) > 0 {
		o.putVal(key, v)
	}
}

// putTrue adds the key with a literal true only when set.
func (o *obj) putTrue(key string, v bool) {
	if v {
		o.putVal(key, true)
	}
}

// putNumeric encodes a value that may be either an integer or a placeholder
// expression: whole-integer text becomes a YAML int, anything else stays a
// string. Empty values are omitted.
func (o *obj) putNumeric(key, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		o.putVal(key, n)
		return
	}
	o.putVal(key, v)
}

func (o *obj) empty() bool {
	return len(o.node.Content) == 0
}

// scalarNode encodes a plain Go value into a fresh node.
func scalarNode(v any) *yaml.Node {
	var n yaml.Node
	// Encode cannot fail for the scalar and []string values used here.
	_ = n.Encode(v)
	return &n
}

// --- decode-side walkers ---

// resolved follows document wrappers and alias nodes to the underlying
// content node.
func resolved(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

func isMap(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.MappingNode
}

func isSeq(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.SequenceNode
}

func isScalar(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.ScalarNode
}

// isNull reports a missing or explicit-null node.
func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") || (n.Kind == 0 && len(n.Content) == 0)
}

// pair is one key/value entry of a mapping, in document order.
type pair struct {
	key   string
	value *yaml.Node
}

// mapPairs returns the mapping's entries in document order.
func mapPairs(n *yaml.Node) []pair {
	n = resolved(n)
	if !isMap(n) {
		return nil
	}
	pairs := make([]pair, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		pairs = append(pairs, pair{key: n.Content[i].Value, value: resolved(n.Content[i+1])})
	}
	return pairs
}

// mapGet returns the value for key, or nil when absent or n is not a map.
func mapGet(n *yaml.Node, key string) *yaml.Node {
	n = resolved(n)
	if !isMap(n) {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return resolved(n.Content[i+1])
		}
	}
	return nil
}

// nodeString returns a scalar's text, empty for null or non-scalar nodes.
// Numeric and boolean scalars come back as their literal text, which is
// exactly what the placeholder-tolerant fields need.
func nodeString(n *yaml.Node) string {
	n = resolved(n)
	if !isScalar(n) || n.Tag == "!!null" {
		return ""
	}
	return n.Value
}

// nodeInt returns a scalar parsed as an integer, with a fallback for
// missing, non-scalar, or non-numeric values. Floats truncate.
func nodeInt(n *yaml.Node, fallback int) int {
	n = resolved(n)
	if !isScalar(n) {
		return fallback
	}
	if v, err := strconv.Atoi(strings.TrimSpace(n.Value)); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(n.Value), 64); err == nil {
		return int(f)
	}
	return fallback
}

// nodeBool returns a scalar boolean; anything else is false.
func nodeBool(n *yaml.Node) bool {
	n = resolved(n)
	if !isScalar(n) {
		return false
	}
	v, err := strconv.ParseBool(n.Value)
	return err == nil && v
}

// nodeStringList decodes a sequence of scalars into strings. A lone scalar
// is tolerated as a single-element list; null and blank entries are
// skipped, matching what the serializer is willing to emit.
func nodeStringList(n *yaml.Node) []string {
	n = resolved(n)
	switch {
	case isSeq(n):
		out := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			item = resolved(item)
			if isNull(item) || !isScalar(item) || strings.TrimSpace(item.Value) == "" {
				continue
			}
			out = append(out, item.Value)
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case isScalar(n) && n.Tag != "!!null" && n.Value != "":
		return []string{n.Value}
	default:
		return nil
	}
}

// nodeAny decodes a node into plain Go values (map[string]any, []any,
// scalars), for the codecs that operate on loose shapes.
func nodeAny(n *yaml.Node) any {
	n = resolved(n)
	if n == nil {
		return nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil
	}
	return v
}
