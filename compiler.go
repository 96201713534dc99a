package stylec

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Options configures a compilation. The zero value selects the defaults
// used by the reference tool: "x" class prefix, keep-shorthands.
type Options struct {
	// ClassPrefix is prepended to every generated class hash.
	ClassPrefix string
	// Strategy selects the shorthand strategy by name.
	Strategy string
}

func (o Options) classPrefix() string {
	if o.ClassPrefix == "" {
		return "x"
	}
	return o.ClassPrefix
}

// Compiler turns normalized module declarations into manifest entries.
// Compilation is single-pass and synchronous; the manifest is its only
// output. One Compiler serves one build.
type Compiler struct {
	opts     Options
	strategy ShorthandStrategy
	manifest *Manifest
	log      *zap.Logger
}

// NewCompiler creates a compiler for the given options. A nil logger
// disables debug tracing.
func NewCompiler(opts Options, log *zap.Logger) (*Compiler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	strategy, err := StrategyFor(opts.Strategy)
	if err != nil {
		return nil, err
	}
	return &Compiler{
		opts:     opts,
		strategy: strategy,
		manifest: NewManifest(),
		log:      log.Named("compiler"),
	}, nil
}

// Manifest returns the manifest being built. It must not be mutated by the
// caller; read access is safe once compilation is done.
func (c *Compiler) Manifest() *Manifest {
	return c.manifest
}

// DefaultMarker returns the default contextual-selector marker for this
// compilation's class prefix.
func (c *Compiler) DefaultMarker() Marker {
	return DefaultMarker(c.opts.classPrefix())
}

// CompileModule compiles one module's declarations into the manifest.
// Errors from individual entities are accumulated; an entity that fails
// leaves no partial entry behind and does not affect its siblings.
func (c *Compiler) CompileModule(decl ModuleDecl) error {
	var errs error

	for _, cd := range decl.Consts {
		key := decl.Module + "." + cd.Name
		c.manifest.Consts[key] = &ConstEntry{Key: key, Value: cd.Value}
	}
	for _, vg := range decl.VarGroups {
		if err := c.compileVarGroup(decl.Module, vg); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	for _, th := range decl.Themes {
		if err := c.compileTheme(decl.Module, th); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	for _, kf := range decl.Keyframes {
		if err := c.compileKeyframes(decl.Module, kf); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	for _, pt := range decl.PositionTry {
		if err := c.compilePositionTry(decl.Module, pt); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	for _, vt := range decl.ViewTransitions {
		if err := c.compileViewTransition(decl.Module, vt); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	for _, rule := range decl.Rules {
		if err := c.compileRule(decl.Module, rule); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}

// compileRule compiles one named rule into atomic classes.
func (c *Compiler) compileRule(moduleID string, rule RuleDecl) error {
	key := moduleID + "." + rule.Name

	compiled := &CompiledRule{
		Key:     key,
		Dynamic: len(rule.Params) > 0,
		Params:  rule.Params,
	}

	decls := rule.Decls
	if compiled.Dynamic {
		compiled.ParamVars = make(map[string]string, len(rule.Params))
		for _, p := range rule.Params {
			compiled.ParamVars[p] = "--" + Hash(key+"//"+p)
		}
		decls = substituteParams(decls, compiled.ParamVars)
	}
	decls = c.resolveKeyframeRefs(moduleID, decls)

	// props are keyed by CSS property name plus pseudo-element qualifier.
	// A later declaration of the same key replaces the earlier one.
	index := make(map[string]int)

	for _, d := range decls {
		prop := dashed(d.Property)

		cond, isCond := d.Value.(Cond)
		if !isCond {
			cond = Cond{{":default", d.Value}}
		}

		expanded, err := c.strategy.ExpandCond(prop, cond)
		if err != nil {
			return err
		}

		for _, pc := range expanded {
			leaves, err := flattenCond(pc.cond)
			if err != nil {
				return err
			}

			byKey := make(map[string]*PropClasses)
			var keyOrder []string
			for _, leaf := range leaves {
				propKey := pc.property + leaf.path.pseudoElement()
				slot, ok := byKey[propKey]
				if !ok {
					slot = &PropClasses{Property: propKey}
					byKey[propKey] = slot
					keyOrder = append(keyOrder, propKey)
				}

				meta, emit := c.compileAtomic(pc.property, propKey, leaf)
				if emit {
					slot.Classes = append(slot.Classes, meta)
				}
			}

			for _, propKey := range keyOrder {
				slot := byKey[propKey]
				// conditions iterate in priority order, not declared order
				sort.SliceStable(slot.Classes, func(i, j int) bool {
					if slot.Classes[i].Priority != slot.Classes[j].Priority {
						return slot.Classes[i].Priority < slot.Classes[j].Priority
					}
					return slot.Classes[i].Condition < slot.Classes[j].Condition
				})

				if i, seen := index[propKey]; seen {
					compiled.Props[i] = *slot
				} else {
					index[propKey] = len(compiled.Props)
					compiled.Props = append(compiled.Props, *slot)
				}
			}
		}
	}

	var classes []string
	for _, p := range compiled.Props {
		for _, cls := range p.Classes {
			classes = append(classes, cls.ClassName)
		}
	}
	compiled.ClassString = strings.Join(classes, " ")

	c.manifest.Classes[key] = compiled
	c.log.Debug("compiled rule",
		zap.String("key", key),
		zap.Int("properties", len(compiled.Props)),
		zap.Bool("dynamic", compiled.Dynamic))
	return nil
}

// compileAtomic compiles one (property, condition, value) leaf into an
// atomic class. The second result is false when the value is a null revert
// and no class is generated.
func (c *Compiler) compileAtomic(property, propKey string, leaf flatValue) (AtomicClassMeta, bool) {
	values, ok := resolveScalar(property, leaf.value)
	if !ok {
		return AtomicClassMeta{}, false
	}

	condKey := leaf.path.key()
	hashInput := "<>" + property +
		strings.Join(leaf.path.pseudos, "") +
		strings.Join(leaf.path.atRules, "") +
		strings.Join(values, ", ")
	className := c.opts.classPrefix() + Hash(hashInput)

	priority := propertyPriority(propKey) + conditionPriority(leaf.path.atRules, leaf.path.pseudoClasses())

	var decls []string
	for _, v := range values {
		decls = append(decls, prefixedDeclarations(property, v)...)
	}
	selector := "." + className + strings.Join(leaf.path.pseudos, "")
	ltr := wrapAtRules(selector+"{"+strings.Join(decls, ";")+"}", leaf.path.atRules)

	rtl := ""
	if len(values) == 1 {
		if flipped := rtlDeclaration(property, values[0]); flipped != "" {
			rtl = wrapAtRules(selector+"{"+flipped+"}", leaf.path.atRules)
		}
	}

	return AtomicClassMeta{
		ClassName: className,
		Condition: condKey,
		LTR:       ltr,
		RTL:       rtl,
		Priority:  priority,
	}, true
}

// wrapAtRules nests rule text in its at-rule wrappers, first declared
// outermost.
func wrapAtRules(text string, atRules []string) string {
	for i := len(atRules) - 1; i >= 0; i-- {
		text = atRules[i] + "{" + text + "}"
	}
	return text
}

// wrapAtRulesInverted nests rule text with the innermost declared at-rule
// outermost. Variable rules use this ordering.
func wrapAtRulesInverted(text string, atRules []string) string {
	for _, at := range atRules {
		text = at + "{" + text + "}"
	}
	return text
}

var keyframesRefPattern = regexp.MustCompile(`\$keyframes\.([A-Za-z_][\w-]*)`)

// resolveKeyframeRefs rewrites $keyframes.name references to their
// generated animation names. Keyframes compile before rules in
// CompileModule, so lookups hit the current build's manifest. Unresolved
// references pass through unchanged.
func (c *Compiler) resolveKeyframeRefs(moduleID string, decls []Declaration) []Declaration {
	out := make([]Declaration, len(decls))
	copy(out, decls)
	return rewriteDecls(out, func(s string) string {
		return keyframesRefPattern.ReplaceAllStringFunc(s, func(ref string) string {
			name := keyframesRefPattern.FindStringSubmatch(ref)[1]
			if kf, ok := c.manifest.Keyframes[moduleID+"."+name]; ok {
				return kf.Name
			}
			return ref
		})
	})
}

// substituteParams rewrites Param references into var() references over
// the rule's generated custom properties.
func substituteParams(decls []Declaration, paramVars map[string]string) []Declaration {
	out := make([]Declaration, len(decls))
	for i, d := range decls {
		out[i] = Declaration{Property: d.Property, Value: substituteParamValue(d.Value, paramVars)}
	}
	return out
}

func substituteParamValue(v Value, paramVars map[string]string) Value {
	switch val := v.(type) {
	case Param:
		if cssVar, ok := paramVars[val.Name]; ok {
			return "var(" + cssVar + ")"
		}
		return v
	case Cond:
		out := make(Cond, len(val))
		for i, e := range val {
			out[i] = CondEntry{e.Key, substituteParamValue(e.Value, paramVars)}
		}
		return out
	default:
		return v
	}
}
