package stylec

import (
	"fmt"

	"go.uber.org/zap"
)

// VarCSSName returns the hashed custom property name for one variable in
// a defineVars group. The hash input scopes the variable by module and
// group so identical leaf names in different groups stay distinct.
func VarCSSName(moduleID, group, name string) string {
	return "--" + Hash(moduleID+"//"+group+"."+name)
}

// compileVarGroup compiles a defineVars group. Every variable gets a
// hashed --name scoped by module and group, one :root rule per condition,
// and an @property rule when the declaration carries a typed syntax.
func (c *Compiler) compileVarGroup(moduleID string, vg VarGroupDecl) error {
	key := moduleID + "." + vg.Name

	group := &VarGroup{Key: key, Vars: make([]VarEntry, 0, len(vg.Vars))}

	for _, v := range vg.Vars {
		entry := VarEntry{
			Name:    v.Name,
			CSSName: VarCSSName(moduleID, vg.Name, v.Name),
			Syntax:  v.Syntax,
		}

		rules, def, err := c.compileVarRules(entry.CSSName, v.Value)
		if err != nil {
			return fmt.Errorf("var %s.%s: %w", key, v.Name, err)
		}
		entry.Rules = rules
		entry.Default = def

		group.Vars = append(group.Vars, entry)
	}

	c.manifest.Vars[key] = group
	c.log.Debug("compiled vars", zap.String("key", key), zap.Int("count", len(group.Vars)))
	return nil
}

// compileVarRules resolves a variable value into its per-condition rules
// and the default value. Conditional branches keep their at-rule chain;
// the assembler nests them with the innermost declared at-rule outermost.
func (c *Compiler) compileVarRules(cssName string, value Value) ([]VarRule, string, error) {
	cond, isCond := value.(Cond)
	if !isCond {
		cond = Cond{{":default", value}}
	}

	leaves, err := flattenCond(cond)
	if err != nil {
		return nil, "", err
	}

	var rules []VarRule
	def := ""
	for _, leaf := range leaves {
		values, ok := resolveScalar(cssName, leaf.value)
		if !ok || len(values) == 0 {
			continue
		}
		// variables take a single resolved value; fallback sequences
		// collapse to their final declaration
		v := values[len(values)-1]

		if leaf.path.isDefault() {
			def = v
		}
		rules = append(rules, VarRule{
			AtRules:  leaf.path.atRules,
			Value:    v,
			Priority: conditionPriority(leaf.path.atRules, nil),
		})
	}

	return rules, def, nil
}

// compileTheme compiles a createTheme override set against a previously
// compiled variable group. Untouched variables keep their base :root
// value.
func (c *Compiler) compileTheme(moduleID string, th ThemeDecl) error {
	key := moduleID + "." + th.Name

	groupKey := th.Of
	if groupKey == "" {
		return newConfigError("theme %s: missing base variable group reference", key)
	}
	if _, qualified := c.manifest.Vars[groupKey]; !qualified {
		groupKey = moduleID + "." + th.Of
	}
	group, ok := c.manifest.Vars[groupKey]
	if !ok {
		return &ConfigError{
			Msg:  fmt.Sprintf("theme %s: unknown variable group %q", key, th.Of),
			Hint: "themes can only override variables from a compiled defineVars group",
		}
	}

	byName := make(map[string]VarEntry, len(group.Vars))
	for _, v := range group.Vars {
		byName[v.Name] = v
	}

	theme := &Theme{
		Key:       key,
		ClassName: "t" + Hash(moduleID+"//"+th.Name),
	}

	for _, o := range th.Overrides {
		base, ok := byName[o.Property]
		if !ok {
			return &ConfigError{
				Msg:  fmt.Sprintf("theme %s: variable %q is not defined in %s", key, o.Property, groupKey),
				Hint: "partial themes may only override declared variables",
			}
		}

		rules, _, err := c.compileVarRules(base.CSSName, o.Value)
		if err != nil {
			return fmt.Errorf("theme %s override %s: %w", key, o.Property, err)
		}
		theme.Overrides = append(theme.Overrides, ThemeOverride{
			CSSName: base.CSSName,
			Rules:   rules,
		})
	}

	c.manifest.Themes[key] = theme
	c.log.Debug("compiled theme",
		zap.String("key", key),
		zap.String("class", theme.ClassName),
		zap.Int("overrides", len(theme.Overrides)))
	return nil
}
