package stylec

import (
	"fmt"
	"strings"
)

// propValue is one expanded (property, value) pair.
type propValue struct {
	property string
	value    string
}

// ShorthandStrategy is the pluggable expansion behavior for shorthand
// declarations. Expand handles scalar values, ExpandCond rewrites a
// condition map per longhand so each branch flows through the condition
// tree independently. The strategy is a single build-wide configuration
// value; it never varies per rule.
type ShorthandStrategy interface {
	Name() string
	Expand(property, value string) ([]propValue, error)
	ExpandCond(property string, cond Cond) ([]propCond, error)
}

// propCond pairs an expanded longhand with its per-longhand condition map.
type propCond struct {
	property string
	cond     Cond
}

// Strategy names accepted in configuration.
const (
	StrategyKeepShorthands   = "keep-shorthands"
	StrategyExpandLonghands  = "expand-to-longhands"
	StrategyRejectShorthands = "reject-shorthands"
)

// StrategyFor returns the shorthand strategy for a configured name.
func StrategyFor(name string) (ShorthandStrategy, error) {
	switch name {
	case StrategyKeepShorthands, "":
		return keepShorthands{}, nil
	case StrategyExpandLonghands:
		return expandToLonghands{}, nil
	case StrategyRejectShorthands:
		return rejectShorthands{}, nil
	default:
		return nil, &ConfigError{
			Msg:  fmt.Sprintf("unknown shorthand strategy %q", name),
			Hint: "valid strategies: keep-shorthands, expand-to-longhands, reject-shorthands",
		}
	}
}

// fourValueBox maps box-model shorthands to their physical longhands in
// top/right/bottom/left order, expanded with the 1/2/3/4-value CSS rules.
var fourValueBox = map[string][4]string{
	"margin":        {"margin-top", "margin-right", "margin-bottom", "margin-left"},
	"padding":       {"padding-top", "padding-right", "padding-bottom", "padding-left"},
	"inset":         {"top", "right", "bottom", "left"},
	"border-width":  {"border-top-width", "border-right-width", "border-bottom-width", "border-left-width"},
	"border-style":  {"border-top-style", "border-right-style", "border-bottom-style", "border-left-style"},
	"border-color":  {"border-top-color", "border-right-color", "border-bottom-color", "border-left-color"},
	"scroll-margin": {"scroll-margin-top", "scroll-margin-right", "scroll-margin-bottom", "scroll-margin-left"},
}

// twoValuePairs maps two-value shorthands to their longhands. The first
// longhand takes the first value, the second the second; one value sets
// both.
var twoValuePairs = map[string][2]string{
	"margin-block":        {"margin-block-start", "margin-block-end"},
	"margin-inline":       {"margin-inline-start", "margin-inline-end"},
	"padding-block":       {"padding-block-start", "padding-block-end"},
	"padding-inline":      {"padding-inline-start", "padding-inline-end"},
	"inset-block":         {"inset-block-start", "inset-block-end"},
	"inset-inline":        {"inset-inline-start", "inset-inline-end"},
	"gap":                 {"row-gap", "column-gap"},
	"overflow":            {"overflow-x", "overflow-y"},
	"overscroll-behavior": {"overscroll-behavior-x", "overscroll-behavior-y"},
	"place-content":       {"align-content", "justify-content"},
	"place-items":         {"align-items", "justify-items"},
	"place-self":          {"align-self", "justify-self"},
}

// radiusCorners in shorthand order: top-left, top-right, bottom-right,
// bottom-left.
var radiusCorners = [4]string{
	"border-top-left-radius",
	"border-top-right-radius",
	"border-bottom-right-radius",
	"border-bottom-left-radius",
}

// rejectedShorthands maps disallowed shorthands to the longhands to suggest
// instead. Only these raise an error under reject-shorthands; box-model
// shorthands like margin and flex stay allowed because their expansion is
// unambiguous.
var rejectedShorthands = map[string][]string{
	"animation":           {"animation-name", "animation-duration", "animation-timing-function", "animation-delay", "animation-iteration-count", "animation-direction", "animation-fill-mode", "animation-play-state"},
	"background":          {"background-color", "background-image", "background-position", "background-repeat", "background-size", "background-attachment", "background-origin", "background-clip"},
	"border":              {"border-width", "border-style", "border-color"},
	"border-top":          {"border-top-width", "border-top-style", "border-top-color"},
	"border-right":        {"border-right-width", "border-right-style", "border-right-color"},
	"border-bottom":       {"border-bottom-width", "border-bottom-style", "border-bottom-color"},
	"border-left":         {"border-left-width", "border-left-style", "border-left-color"},
	"border-block":        {"border-block-width", "border-block-style", "border-block-color"},
	"border-block-start":  {"border-block-start-width", "border-block-start-style", "border-block-start-color"},
	"border-block-end":    {"border-block-end-width", "border-block-end-style", "border-block-end-color"},
	"border-inline":       {"border-inline-width", "border-inline-style", "border-inline-color"},
	"border-inline-start": {"border-inline-start-width", "border-inline-start-style", "border-inline-start-color"},
	"border-inline-end":   {"border-inline-end-width", "border-inline-end-style", "border-inline-end-color"},
	"columns":             {"column-count", "column-width"},
	"flex-flow":           {"flex-direction", "flex-wrap"},
	"font":                {"font-family", "font-size", "font-style", "font-variant", "font-weight", "line-height"},
	"grid":                {"grid-template-rows", "grid-template-columns", "grid-template-areas", "grid-auto-rows", "grid-auto-columns", "grid-auto-flow"},
	"grid-area":           {"grid-row-start", "grid-column-start", "grid-row-end", "grid-column-end"},
	"list-style":          {"list-style-type", "list-style-position", "list-style-image"},
	"outline":             {"outline-width", "outline-style", "outline-color"},
	"text-decoration":     {"text-decoration-line", "text-decoration-style", "text-decoration-color", "text-decoration-thickness"},
	"transition":          {"transition-property", "transition-duration", "transition-timing-function", "transition-delay"},
}

// keepShorthands passes every declaration through unchanged. This is the
// default strategy.
type keepShorthands struct{}

func (keepShorthands) Name() string { return StrategyKeepShorthands }

func (keepShorthands) Expand(property, value string) ([]propValue, error) {
	return []propValue{{property, value}}, nil
}

func (keepShorthands) ExpandCond(property string, cond Cond) ([]propCond, error) {
	return []propCond{{property, cond}}, nil
}

// rejectShorthands disallows ambiguous multi-kind shorthands outright,
// naming the longhand replacements in the error.
type rejectShorthands struct{}

func (rejectShorthands) Name() string { return StrategyRejectShorthands }

func (rejectShorthands) Expand(property, value string) ([]propValue, error) {
	if longhands, bad := rejectedShorthands[property]; bad {
		return nil, &ConfigError{
			Msg:  fmt.Sprintf("shorthand property %q is not allowed", property),
			Hint: "use the longhand properties instead: " + strings.Join(longhands, ", "),
		}
	}
	return []propValue{{property, value}}, nil
}

func (r rejectShorthands) ExpandCond(property string, cond Cond) ([]propCond, error) {
	// The value is irrelevant to rejection; only the property matters.
	if _, err := r.Expand(property, ""); err != nil {
		return nil, err
	}
	return []propCond{{property, cond}}, nil
}

// expandToLonghands expands registered multi-value shorthands into their
// longhands. Properties without a registered pattern, and custom
// properties, pass through unchanged.
type expandToLonghands struct{}

func (expandToLonghands) Name() string { return StrategyExpandLonghands }

func (expandToLonghands) Expand(property, value string) ([]propValue, error) {
	if strings.HasPrefix(property, "--") {
		return []propValue{{property, value}}, nil
	}

	bare, important := splitImportant(value)

	if longhands, ok := fourValueBox[property]; ok {
		parts := splitSpace(bare)
		if expanded, ok := expandFour(parts); ok {
			out := make([]propValue, 0, 4)
			for i, name := range longhands {
				out = append(out, propValue{name, expanded[i] + important})
			}
			return out, nil
		}
	}

	if longhands, ok := twoValuePairs[property]; ok {
		parts := splitSpace(bare)
		switch len(parts) {
		case 1:
			return []propValue{
				{longhands[0], parts[0] + important},
				{longhands[1], parts[0] + important},
			}, nil
		case 2:
			return []propValue{
				{longhands[0], parts[0] + important},
				{longhands[1], parts[1] + important},
			}, nil
		}
	}

	if property == "border-radius" {
		if out, ok := expandRadius(bare, important); ok {
			return out, nil
		}
	}

	if property == "list-style" {
		if out, ok := expandListStyle(bare, important); ok {
			return out, nil
		}
	}

	return []propValue{{property, value}}, nil
}

func (e expandToLonghands) ExpandCond(property string, cond Cond) ([]propCond, error) {
	// Expand every branch independently, then regroup by longhand so each
	// longhand carries its own condition map. Branches that expand to fewer
	// longhands simply omit those keys.
	grouped := make(map[string]Cond)
	var order []string

	for _, entry := range cond {
		nested, isNested := entry.Value.(Cond)
		if isNested {
			inner, err := e.ExpandCond(property, nested)
			if err != nil {
				return nil, err
			}
			for _, pc := range inner {
				if _, seen := grouped[pc.property]; !seen {
					order = append(order, pc.property)
				}
				grouped[pc.property] = append(grouped[pc.property], CondEntry{entry.Key, pc.cond})
			}
			continue
		}

		switch entry.Value.(type) {
		case nil:
			// nil clears the whole shorthand: forward to every longhand the
			// property could expand to.
			for _, name := range condLonghands(property) {
				if _, seen := grouped[name]; !seen {
					order = append(order, name)
				}
				grouped[name] = append(grouped[name], CondEntry{entry.Key, nil})
			}
		case string, int, int64, float64:
			pairs, err := e.Expand(property, styleValue(property, entry.Value))
			if err != nil {
				return nil, err
			}
			for _, pv := range pairs {
				if _, seen := grouped[pv.property]; !seen {
					order = append(order, pv.property)
				}
				grouped[pv.property] = append(grouped[pv.property], CondEntry{entry.Key, pv.value})
			}
		default:
			// fallback arrays, firstThatWorks sequences and parameter
			// references are opaque to shorthand parsing
			if _, seen := grouped[property]; !seen {
				order = append(order, property)
			}
			grouped[property] = append(grouped[property], entry)
		}
	}

	out := make([]propCond, 0, len(order))
	for _, name := range order {
		out = append(out, propCond{name, grouped[name]})
	}
	return out, nil
}

// condLonghands returns every longhand a property can expand to, for
// forwarding nil reverts, or the property itself when unregistered.
func condLonghands(property string) []string {
	if longhands, ok := fourValueBox[property]; ok {
		return longhands[:]
	}
	if longhands, ok := twoValuePairs[property]; ok {
		return longhands[:]
	}
	if property == "border-radius" {
		return radiusCorners[:]
	}
	if property == "list-style" {
		return []string{"list-style-type", "list-style-position", "list-style-image"}
	}
	return []string{property}
}

// expandFour applies the 1/2/3/4-value CSS shorthand rules, returning the
// four values in top/right/bottom/left order.
func expandFour(parts []string) ([4]string, bool) {
	switch len(parts) {
	case 1:
		return [4]string{parts[0], parts[0], parts[0], parts[0]}, true
	case 2:
		return [4]string{parts[0], parts[1], parts[0], parts[1]}, true
	case 3:
		return [4]string{parts[0], parts[1], parts[2], parts[1]}, true
	case 4:
		return [4]string{parts[0], parts[1], parts[2], parts[3]}, true
	default:
		return [4]string{}, false
	}
}

// expandRadius expands the border-radius shorthand, including the
// "horizontal / vertical" slash syntax. When a corner's horizontal and
// vertical radii collapse to the same value, the single value is emitted.
func expandRadius(value, important string) ([]propValue, bool) {
	horizRaw, vertRaw, hasSlash := splitSlash(value)

	horiz, ok := expandFour(splitSpace(horizRaw))
	if !ok {
		return nil, false
	}

	vert := horiz
	if hasSlash {
		vert, ok = expandFour(splitSpace(vertRaw))
		if !ok {
			return nil, false
		}
	}

	out := make([]propValue, 0, 4)
	for i, name := range radiusCorners {
		v := horiz[i]
		if vert[i] != horiz[i] {
			v = horiz[i] + " " + vert[i]
		}
		out = append(out, propValue{name, v + important})
	}
	return out, true
}

// expandListStyle classifies the list-style tokens into type, position and
// image, accepting them in any order. A bare "none" is assigned to type
// first, then image.
func expandListStyle(value, important string) ([]propValue, bool) {
	parts := splitSpace(value)
	if len(parts) == 0 || len(parts) > 3 {
		return nil, false
	}

	var styleType, position, image string
	for _, p := range parts {
		switch {
		case p == "inside" || p == "outside":
			if position != "" {
				return nil, false
			}
			position = p
		case strings.HasPrefix(p, "url(") || strings.HasPrefix(p, "image-set(") ||
			strings.HasPrefix(p, "linear-gradient("):
			if image != "" {
				return nil, false
			}
			image = p
		case p == "none":
			if styleType == "" {
				styleType = p
			} else if image == "" {
				image = p
			} else {
				return nil, false
			}
		default:
			if styleType != "" {
				return nil, false
			}
			styleType = p
		}
	}

	var out []propValue
	if styleType != "" {
		out = append(out, propValue{"list-style-type", styleType + important})
	}
	if position != "" {
		out = append(out, propValue{"list-style-position", position + important})
	}
	if image != "" {
		out = append(out, propValue{"list-style-image", image + important})
	}
	return out, true
}
