package stylec

// Value is one declaration value. At compile time it holds one of:
//
//   - nil           — removes the property (no declaration is generated)
//   - string        — scalar CSS text
//   - int / float64 — numeric scalar ("px" appended unless the property is unitless)
//   - Fallbacks     — ordered fallback values, resolved per CSS var() semantics
//   - FirstOf       — firstThatWorks sequence (reversed fallback convention)
//   - Cond          — nested condition map (pseudo / @media / @supports / selector)
//   - Param         — reference to a dynamic-rule parameter
type Value any

// Fallbacks is a plain fallback array: later var() references nest over
// earlier plain values, a leading var() yields sequential declarations.
type Fallbacks []string

// FirstOf mirrors the reference tool's firstThatWorks: the first value that
// the browser understands wins, so the compiled declaration order is the
// reverse of the declared order.
type FirstOf []string

// Cond is an ordered condition map. Keys are ":default", a pseudo-class or
// pseudo-element, an "@media ..."/"@supports ..." string, or a contextual
// :where() selector from the When builders. Values may nest further Conds.
type Cond []CondEntry

// CondEntry is one key/value pair of a Cond.
type CondEntry struct {
	Key   string
	Value Value
}

// Param references a named parameter of a dynamic rule. It compiles to a
// var() reference whose custom property is set inline at resolution time.
type Param struct {
	Name string
}

// Declaration is one (property, value) pair of a rule body. Property names
// may be camelCase or dashed; they are normalized to dashed form during
// compilation. Custom properties ("--foo") pass through untouched.
type Declaration struct {
	Property string
	Value    Value
}

// RuleDecl is the normalized declaration of one named style rule.
// A non-empty Params list marks the rule dynamic: its values may contain
// Param references and are compiled into var() templates.
type RuleDecl struct {
	Name   string
	Params []string
	Decls  []Declaration
}

// VarDecl declares one CSS custom property within a var group.
// Syntax, when non-empty ("<color>", "<length>", ...), triggers an
// @property rule with inherits:true and the resolved default as
// initial-value.
type VarDecl struct {
	Name   string
	Value  Value
	Syntax string
}

// VarGroupDecl is a defineVars-equivalent: a named group of variables
// hashed under a shared export scope.
type VarGroupDecl struct {
	Name string
	Vars []VarDecl
}

// ConstDecl declares a named compile-time constant. Constants generate no
// CSS; they are registered in the manifest and inlined into declaration
// values by the loader.
type ConstDecl struct {
	Name  string
	Value string
}

// ThemeDecl is a createTheme-equivalent: overrides a subset of the
// variables of the referenced group. Of is the dotted manifest key of the
// base group ("module.group" form, or a bare group name within the same
// module).
type ThemeDecl struct {
	Name      string
	Of        string
	Overrides []Declaration
}

// KeyframeBlock is one frame of a keyframes declaration ("from", "to" or a
// percentage) with its property list.
type KeyframeBlock struct {
	Key   string
	Decls []Declaration
}

// KeyframesDecl declares an @keyframes animation.
type KeyframesDecl struct {
	Name   string
	Frames []KeyframeBlock
}

// PositionTryDecl declares an @position-try fallback rule.
type PositionTryDecl struct {
	Name  string
	Decls []Declaration
}

// ViewTransitionPart is one view-transition pseudo-element block. Part is
// one of "group", "imagePair", "old", "new".
type ViewTransitionPart struct {
	Part  string
	Decls []Declaration
}

// ViewTransitionDecl declares styles for the view-transition
// pseudo-elements of one named transition class.
type ViewTransitionDecl struct {
	Name  string
	Parts []ViewTransitionPart
}

// ModuleDecl is the complete normalized declaration input for one owning
// module, as produced by the front-end declaration layer or the YAML
// loader. Rule and entity names are keyed in the manifest as
// "<module>.<name>".
type ModuleDecl struct {
	Module          string
	Consts          []ConstDecl
	VarGroups       []VarGroupDecl
	Themes          []ThemeDecl
	Keyframes       []KeyframesDecl
	PositionTry     []PositionTryDecl
	ViewTransitions []ViewTransitionDecl
	Rules           []RuleDecl
}

// AtomicClassMeta is one compiled atomic class: a single-property CSS rule
// identified by its content hash. Immutable once computed.
type AtomicClassMeta struct {
	ClassName string // hash with the class prefix applied
	Condition string // ":default" or the flattened condition path
	LTR       string // complete rule text, including at-rule wrappers
	RTL       string // rtl-flipped rule text, "" when the declaration has no flip
	Priority  int
}

// PropClasses holds the compiled classes for one CSS property key within a
// rule. The key retains pseudo-element qualifiers ("color::before") and
// shorthand/longhand identity ("margin" and "margin-left" are distinct
// keys). Classes iterate in priority order; an empty Classes slice is a
// null revert: the property is cleared at merge time without emitting
// anything.
type PropClasses struct {
	Property string
	Classes  []AtomicClassMeta
}

// CompiledRule is one compiled style rule.
type CompiledRule struct {
	Key         string
	Props       []PropClasses
	ClassString string
	Dynamic     bool
	Params      []string
	// ParamVars maps a parameter name to the generated custom property set
	// inline at resolution time. Only populated for dynamic rules.
	ParamVars map[string]string
}

// VarRule is one generated :root (or theme) rule for a variable: the
// resolved value under one condition path.
type VarRule struct {
	AtRules  []string
	Value    string
	Priority int
}

// VarEntry is one compiled CSS custom property.
type VarEntry struct {
	Name    string
	CSSName string // "--<hash>"
	Syntax  string // typed syntax, "" for untyped
	Default string // resolved default value (also the @property initial-value)
	Rules   []VarRule
}

// VarGroup is a compiled defineVars group.
type VarGroup struct {
	Key  string
	Vars []VarEntry
}

// ThemeOverride is one overridden variable within a theme.
type ThemeOverride struct {
	CSSName string
	Rules   []VarRule
}

// Theme is a compiled createTheme result. ClassName carries the "t" prefix.
type Theme struct {
	Key       string
	ClassName string
	Overrides []ThemeOverride
}

// KeyframesMeta is a compiled @keyframes block. Name carries the class
// prefix and the "-B" suffix of the reference scheme.
type KeyframesMeta struct {
	Key      string
	Name     string
	LTR      string
	Priority int
}

// PositionTryMeta is a compiled @position-try block. Name is a dashed-ident
// ("--<hash>") as required by the at-rule.
type PositionTryMeta struct {
	Key      string
	Name     string
	LTR      string
	Priority int
}

// ViewTransitionMeta is a compiled view-transition class: the class name to
// put in view-transition-class plus the pseudo-element rules.
type ViewTransitionMeta struct {
	Key       string
	ClassName string
	LTR       string
	Priority  int
}

// ConstEntry is a registered compile-time constant.
type ConstEntry struct {
	Key   string
	Value string
}
