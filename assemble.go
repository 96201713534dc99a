package stylec

import (
	"sort"
	"strings"
)

// AssembleCSS serializes a finished manifest into the single output
// stylesheet. Section order and the sorting inside each section are fixed:
// :root variable blocks, @property rules, theme overrides, atomic classes
// by ascending priority (ties broken by class name), then keyframes,
// position-try and view-transition blocks. The result is byte-identical
// for any registration order of the same declarations.
func AssembleCSS(m *Manifest) string {
	var b strings.Builder

	writeVarSections(&b, m)
	writeThemeSections(&b, m)
	writeClassSection(&b, m)

	for _, key := range sortedKeys(m.Keyframes) {
		b.WriteString(m.Keyframes[key].LTR)
		b.WriteString("\n")
	}
	for _, key := range sortedKeys(m.PositionTry) {
		b.WriteString(m.PositionTry[key].LTR)
		b.WriteString("\n")
	}
	for _, key := range sortedKeys(m.ViewTransitions) {
		b.WriteString(m.ViewTransitions[key].LTR)
		b.WriteString("\n")
	}

	return b.String()
}

// writeVarSections emits the :root blocks and @property rules. Each group
// contributes one :root block with every default value, then its
// conditional rules by ascending priority. Conditional variable rules nest
// with the innermost declared at-rule outermost.
func writeVarSections(b *strings.Builder, m *Manifest) {
	type condRule struct {
		cssName string
		rule    VarRule
	}

	var properties []string

	for _, key := range sortedKeys(m.Vars) {
		group := m.Vars[key]

		var defaults []string
		var conds []condRule
		for _, v := range group.Vars {
			for _, r := range v.Rules {
				if len(r.AtRules) == 0 {
					defaults = append(defaults, v.CSSName+":"+r.Value)
				} else {
					conds = append(conds, condRule{v.CSSName, r})
				}
			}
			if v.Syntax != "" {
				prop := "@property " + v.CSSName + "{syntax:\"" + v.Syntax + "\";inherits:true"
				if v.Default != "" {
					prop += ";initial-value:" + v.Default
				}
				properties = append(properties, prop+"}")
			}
		}

		if len(defaults) > 0 {
			b.WriteString(":root{" + strings.Join(defaults, ";") + "}\n")
		}

		sort.SliceStable(conds, func(i, j int) bool {
			if conds[i].rule.Priority != conds[j].rule.Priority {
				return conds[i].rule.Priority < conds[j].rule.Priority
			}
			return conds[i].cssName < conds[j].cssName
		})
		for _, cr := range conds {
			b.WriteString(wrapAtRulesInverted(":root{"+cr.cssName+":"+cr.rule.Value+"}", cr.rule.AtRules))
			b.WriteString("\n")
		}
	}

	for _, p := range properties {
		b.WriteString(p)
		b.WriteString("\n")
	}
}

// writeThemeSections emits the theme override blocks. The selector pairs
// the bare class with a :root-qualified form so a theme can be applied to
// any element, including the root itself.
func writeThemeSections(b *strings.Builder, m *Manifest) {
	for _, key := range sortedKeys(m.Themes) {
		theme := m.Themes[key]
		selector := "." + theme.ClassName + ",." + theme.ClassName + ":root"

		var defaults []string
		type condRule struct {
			cssName string
			rule    VarRule
		}
		var conds []condRule
		for _, o := range theme.Overrides {
			for _, r := range o.Rules {
				if len(r.AtRules) == 0 {
					defaults = append(defaults, o.CSSName+":"+r.Value)
				} else {
					conds = append(conds, condRule{o.CSSName, r})
				}
			}
		}

		if len(defaults) > 0 {
			b.WriteString(selector + "{" + strings.Join(defaults, ";") + "}\n")
		}
		sort.SliceStable(conds, func(i, j int) bool {
			if conds[i].rule.Priority != conds[j].rule.Priority {
				return conds[i].rule.Priority < conds[j].rule.Priority
			}
			return conds[i].cssName < conds[j].cssName
		})
		for _, cr := range conds {
			b.WriteString(wrapAtRulesInverted(selector+"{"+cr.cssName+":"+cr.rule.Value+"}", cr.rule.AtRules))
			b.WriteString("\n")
		}
	}
}

// writeClassSection emits every atomic class exactly once, ascending by
// (priority, class name). The same class referenced from many rules has
// identical content by construction, so deduplication by name is safe.
func writeClassSection(b *strings.Builder, m *Manifest) {
	seen := make(map[string]bool)
	var classes []AtomicClassMeta

	for _, key := range sortedKeys(m.Classes) {
		for _, p := range m.Classes[key].Props {
			for _, cls := range p.Classes {
				if seen[cls.ClassName] {
					continue
				}
				seen[cls.ClassName] = true
				classes = append(classes, cls)
			}
		}
	}

	sort.SliceStable(classes, func(i, j int) bool {
		if classes[i].Priority != classes[j].Priority {
			return classes[i].Priority < classes[j].Priority
		}
		return classes[i].ClassName < classes[j].ClassName
	})

	for _, cls := range classes {
		b.WriteString(cls.LTR)
		b.WriteString("\n")
	}
}
