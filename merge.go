package stylec

import (
	"fmt"
	"strconv"
	"strings"
)

// Call references a dynamic rule together with its positional arguments,
// matched against the rule's declared parameter names.
type Call struct {
	Key  string
	Args []any
}

// Resolved is the outcome of resolving an ordered reference list: the
// de-duplicated class string plus, for dynamic rules, the inline custom
// property assignments.
type Resolved struct {
	Class string
	Style map[string]string
}

// StyleString renders the inline style map as a style attribute value, or
// "" when no dynamic rule contributed.
func (r Resolved) StyleString() string {
	if len(r.Style) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r.Style))
	for _, k := range sortedKeys(r.Style) {
		parts = append(parts, k+":"+r.Style[k])
	}
	return strings.Join(parts, ";")
}

// Resolve resolves an ordered sequence of rule references into a final
// class string. References are rule keys, Calls for dynamic rules, nested
// slices (flattened in order), or nil/false (filtered). Resolution is
// last-wins per CSS property key: a later reference's property replaces an
// earlier one's entirely, and a null-revert property clears its key
// without emitting a class. Unknown keys contribute nothing; there is no
// error path.
//
// Resolve only reads the manifest and is safe for concurrent callers once
// compilation has finished.
func (m *Manifest) Resolve(refs ...any) Resolved {
	type slot struct {
		classes []AtomicClassMeta
		style   map[string]string
	}

	slots := make(map[string]*slot)
	var order []string

	apply := func(key string, args []any) {
		rule, ok := m.Classes[key]
		if !ok {
			// graceful degradation: optional references resolve to nothing
			return
		}

		var style map[string]string
		if rule.Dynamic && len(args) > 0 {
			style = make(map[string]string, len(args))
			for i, param := range rule.Params {
				if i >= len(args) {
					break
				}
				style[rule.ParamVars[param]] = argValue(args[i])
			}
		}

		for _, p := range rule.Props {
			if _, seen := slots[p.Property]; !seen {
				order = append(order, p.Property)
			}
			slots[p.Property] = &slot{classes: p.Classes, style: style}
		}
	}

	var walk func(ref any)
	walk = func(ref any) {
		switch v := ref.(type) {
		case nil:
		case bool:
			// false (and true, which carries no reference) filters out
		case string:
			apply(v, nil)
		case Call:
			apply(v.Key, v.Args)
		case []any:
			for _, e := range v {
				walk(e)
			}
		}
	}
	for _, ref := range refs {
		walk(ref)
	}

	var classes []string
	seen := make(map[string]bool)
	style := make(map[string]string)
	for _, prop := range order {
		s := slots[prop]
		if len(s.classes) == 0 {
			// the property was reverted by its winning reference
			continue
		}
		for _, cls := range s.classes {
			if !seen[cls.ClassName] {
				seen[cls.ClassName] = true
				classes = append(classes, cls.ClassName)
			}
		}
		for k, v := range s.style {
			style[k] = v
		}
	}

	out := Resolved{Class: strings.Join(classes, " ")}
	if len(style) > 0 {
		out.Style = style
	}
	return out
}

// argValue stringifies one dynamic-rule argument for the inline style map.
// Units are the caller's responsibility; numbers are formatted bare.
func argValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
