package domain

// Requirement type tags, verbatim as DeluxeMenus spells them. Negatable
// kinds use a leading "!" on the tag; the model tracks negation as a flag on
// the check payload so each tag constant appears exactly once.
const (
	ReqHasPermission  = "has permission"
	ReqHasPermissions = "has permissions"
	ReqHasMoney       = "has money"
	ReqHasItem        = "has item"
	ReqHasExp         = "has exp"
	ReqHasMeta        = "has meta"
	ReqJavaScript     = "javascript"
	ReqIsNear         = "is near"
	ReqIsObject       = "is object"
	ReqStringLength   = "string length"
	ReqNone           = "none"
)

// String comparison operators, each a requirement type tag of its own.
const (
	ReqStringEquals           = "string equals"
	ReqStringEqualsIgnoreCase = "string equals ignorecase"
	ReqStringContains         = "string contains"
	ReqRegexMatches           = "regex matches"
	ReqCompareEqual           = "=="
	ReqCompareNotEqual        = "!="
	ReqCompareGreater         = ">"
	ReqCompareGreaterOrEqual  = ">="
	ReqCompareLess            = "<"
	ReqCompareLessOrEqual     = "<="
)

// Check is the payload of one requirement: a closed set of variants, each
// carrying only the fields meaningful to its kind. Type returns the
// serialized type tag, including the "!" prefix for negated checks.
type Check interface {
	Type() string
	isCheck()
}

// negate prefixes the tag with "!" when not is set.
func negate(tag string, not bool) string {
	if not {
		return "!" + tag
	}
	return tag
}

// HasPermission checks a single permission node.
type HasPermission struct {
	Permission string
	Not        bool
}

func (c HasPermission) Type() string { return negate(ReqHasPermission, c.Not) }
func (HasPermission) isCheck()       {}

// HasPermissions checks that at least Minimum of the listed permission
// nodes are held.
type HasPermissions struct {
	Permissions []string
	Minimum     int
}

func (c HasPermissions) Type() string { return ReqHasPermissions }
func (HasPermissions) isCheck()       {}

// HasMoney checks the player's balance. Amount may be a plain integer or a
// placeholder expression, so it is held as a string.
type HasMoney struct {
	Amount string
}

func (c HasMoney) Type() string { return ReqHasMoney }
func (HasMoney) isCheck()       {}

// HasItem checks for an amount of a material in the player's inventory.
type HasItem struct {
	Material string
	Amount   int
}

func (c HasItem) Type() string { return ReqHasItem }
func (HasItem) isCheck()       {}

// HasExp checks experience points, or levels when Level is set.
type HasExp struct {
	Amount int
	Level  bool
}

func (c HasExp) Type() string { return ReqHasExp }
func (HasExp) isCheck()       {}

// HasMeta checks a persistent metadata value on the player.
type HasMeta struct {
	Key      string
	MetaType string
	Value    string
}

func (c HasMeta) Type() string { return ReqHasMeta }
func (HasMeta) isCheck()       {}

// StringCompare covers the string and numeric comparison family: Op is one
// of the ReqString*/ReqRegexMatches/ReqCompare* tags. Input and Output are
// the two sides of the comparison (for regex, Output is the pattern).
// Not applies to the string/regex operators; the numeric comparators carry
// their own negation in the operator itself.
type StringCompare struct {
	Op     string
	Input  string
	Output string
	Not    bool
}

func (c StringCompare) Type() string { return negate(c.Op, c.Not) }
func (StringCompare) isCheck()       {}

// StringLength bounds the length of Input. Zero Min/Max means unbounded on
// that side.
type StringLength struct {
	Input string
	Min   int
	Max   int
}

func (c StringLength) Type() string { return ReqStringLength }
func (StringLength) isCheck()       {}

// JavaScript evaluates a scripted expression server-side.
type JavaScript struct {
	Expression string
}

func (c JavaScript) Type() string { return ReqJavaScript }
func (JavaScript) isCheck()       {}

// IsNear checks proximity to a location. Distance may be a plain integer or
// a placeholder expression.
type IsNear struct {
	Location string
	Distance string
	Not      bool
}

func (c IsNear) Type() string { return negate(ReqIsNear, c.Not) }
func (IsNear) isCheck()       {}

// IsObject checks that Input parses as the named object type.
type IsObject struct {
	Input      string
	ObjectType string
}

func (c IsObject) Type() string { return ReqIsObject }
func (IsObject) isCheck()       {}

// None is the empty requirement: produced for unrecognized or missing type
// tags, and a valid placeholder while the user is still picking a kind.
type None struct{}

func (None) Type() string { return ReqNone }
func (None) isCheck()     {}

// Requirement is one named condition gating an action or visibility:
// a check payload plus the optional nested pass/fail command lists.
type Requirement struct {
	// ID is the requirement's map key when it lives in a keyed map (open
	// requirements, argument requirements). Empty for requirements decoded
	// from anonymous contexts.
	ID string

	Check Check

	DenyCommands    []string
	SuccessCommands []string
}

// Type returns the requirement's serialized type tag, or the none tag when
// no check payload is attached.
func (r Requirement) Type() string {
	if r.Check == nil {
		return ReqNone
	}
	return r.Check.Type()
}

// stringCompareOps is the operator set of the StringCompare family.
var stringCompareOps = map[string]bool{
	ReqStringEquals:           true,
	ReqStringEqualsIgnoreCase: true,
	ReqStringContains:         true,
	ReqRegexMatches:           true,
	ReqCompareEqual:           true,
	ReqCompareNotEqual:        true,
	ReqCompareGreater:         true,
	ReqCompareGreaterOrEqual:  true,
	ReqCompareLess:            true,
	ReqCompareLessOrEqual:     true,
}

// IsStringCompareOp reports whether tag is an operator of the StringCompare
// family (without any "!" negation prefix).
func IsStringCompareOp(tag string) bool {
	return stringCompareOps[tag]
}
