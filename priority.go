package stylec

import "strings"

// Cascade priorities follow the StyleX convention: the generated stylesheet
// contains no @layer blocks, so rule order alone decides the cascade. Base
// priorities are assigned per property, condition qualifiers add fixed
// offsets, and the assembler sorts rules by the summed priority. Any change
// to these tables changes ordering semantics site-wide.
const (
	priorityCustomProperty       = 1
	priorityShorthandOfShorthand = 1000
	priorityShorthandOfLonghand  = 2000
	priorityLonghand             = 3000
	priorityPseudoElement        = 8000
)

// Condition offsets. Pseudo-classes not listed in pseudoClassPriorities get
// the default offset.
const (
	priorityPseudoClassDefault = 40
	priorityMediaQuery         = 200
	prioritySupports           = 30
)

// shorthandsOfShorthands are shorthands whose expansions are themselves
// shorthands (margin expands to margin-top..., but also competes with
// margin-block).
var shorthandsOfShorthands = map[string]bool{
	"all":           true,
	"animation":     true,
	"background":    true,
	"border":        true,
	"border-block":  true,
	"border-inline": true,
	"font":          true,
	"grid":          true,
	"grid-area":     true,
	"inset":         true,
	"margin":        true,
	"padding":       true,
}

// shorthandsOfLonghands set multiple longhands at once but are not
// overridden by any other shorthand except the ones above.
var shorthandsOfLonghands = map[string]bool{
	"animation-range":         true,
	"background-position":     true,
	"border-bottom":           true,
	"border-block-end":        true,
	"border-block-start":      true,
	"border-color":            true,
	"border-image":            true,
	"border-inline-end":       true,
	"border-inline-start":     true,
	"border-left":             true,
	"border-radius":           true,
	"border-right":            true,
	"border-style":            true,
	"border-top":              true,
	"border-width":            true,
	"column-rule":             true,
	"columns":                 true,
	"contain-intrinsic-size":  true,
	"container":               true,
	"flex":                    true,
	"flex-flow":               true,
	"gap":                     true,
	"grid-column":             true,
	"grid-row":                true,
	"grid-template":           true,
	"inset-block":             true,
	"inset-inline":            true,
	"list-style":              true,
	"margin-block":            true,
	"margin-inline":           true,
	"mask":                    true,
	"offset":                  true,
	"outline":                 true,
	"overflow":                true,
	"overscroll-behavior":     true,
	"padding-block":           true,
	"padding-inline":          true,
	"place-content":           true,
	"place-items":             true,
	"place-self":              true,
	"scroll-margin":           true,
	"scroll-padding":          true,
	"text-decoration":         true,
	"text-emphasis":           true,
	"transition":              true,
}

// pseudoClassPriorities is the fixed per-pseudo-class offset table imported
// from the reference tool. The values encode the canonical LVHFA ordering
// (:hover < :focus < :active) and give every pseudo-class a distinct, stable
// position in the output. Treat as a versioned constant: do not re-derive.
var pseudoClassPriorities = map[string]int{
	":first-child":       51,
	":last-child":        52,
	":only-child":        53,
	":nth-child":         60,
	":nth-last-child":    61,
	":first-of-type":     62,
	":nth-of-type":       63,
	":nth-last-of-type":  64,
	":last-of-type":      65,
	":only-of-type":      66,
	":empty":             70,
	":link":              72,
	":visited":           74,
	":enabled":           80,
	":disabled":          82,
	":required":          84,
	":optional":          86,
	":read-only":         88,
	":read-write":        90,
	":placeholder-shown": 92,
	":default":           94,
	":checked":           96,
	":indeterminate":     98,
	":valid":             100,
	":invalid":           102,
	":in-range":          104,
	":out-of-range":      106,
	":target":            110,
	":focus-within":      120,
	":hover":             130,
	":focus":             150,
	":focus-visible":     155,
	":active":            170,
	":fullscreen":        180,
}

// propertyPriority returns the base priority for a property key. The key may
// carry a pseudo-element qualifier ("color::before"), which dominates the
// property itself. Unknown properties are treated as longhands.
func propertyPriority(key string) int {
	if strings.Contains(key, "::") {
		return priorityPseudoElement
	}
	if strings.HasPrefix(key, "--") {
		return priorityCustomProperty
	}
	switch {
	case shorthandsOfShorthands[key]:
		return priorityShorthandOfShorthand
	case shorthandsOfLonghands[key]:
		return priorityShorthandOfLonghand
	default:
		return priorityLonghand
	}
}

// pseudoClassPriority returns the offset for a single pseudo-class.
// Functional forms (":nth-child(2n)") are looked up by name.
func pseudoClassPriority(pseudo string) int {
	name := pseudo
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	if p, ok := pseudoClassPriorities[name]; ok {
		return p
	}
	return priorityPseudoClassDefault
}

// conditionPriority returns the summed offset for one flattened condition
// path: every at-rule and pseudo-class contributes its fixed offset, nested
// combinations sum both.
func conditionPriority(atRules, pseudos []string) int {
	p := 0
	for _, at := range atRules {
		if strings.HasPrefix(at, "@supports") {
			p += prioritySupports
		} else {
			p += priorityMediaQuery
		}
	}
	for _, ps := range pseudos {
		if strings.HasPrefix(ps, "::") {
			// Pseudo-elements are folded into the property key, priced by
			// propertyPriority, not here.
			continue
		}
		p += pseudoClassPriority(ps)
	}
	return p
}
