package stylec

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Declaration files are YAML documents carrying the normalized declaration
// input for one module: rules, vars, consts, themes, keyframes,
// position-try and view-transition blocks. Mapping order is significant
// (declarations are ordered property lists), so parsing walks yaml.v3
// nodes instead of decoding into Go maps.

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a matched file is excluded from loading.
// Only relative paths are checked against the project .gitignore; absolute
// paths (like /tmp fixtures) are never project files.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// globDeclFiles expands include globs to a deduplicated file list,
// skipping directories and gitignored paths.
func globDeclFiles(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if shouldSkipFile(match) {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}
	return files, nil
}

// LoadFiles expands the include globs and parses every matched declaration
// file. Files that fail to parse abort the load; the glob expansion
// deduplicates overlapping patterns.
func LoadFiles(patterns []string, log *zap.Logger) ([]ModuleDecl, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("loader")

	files, err := globDeclFiles(patterns)
	if err != nil {
		return nil, err
	}

	var decls []ModuleDecl
	for _, file := range files {
		// #nosec G304 - paths come from configured include patterns
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		decl, err := ParseDeclFile(data, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		log.Debug("loaded declaration file",
			zap.String("path", file),
			zap.String("module", decl.Module),
			zap.Int("rules", len(decl.Rules)))
		decls = append(decls, decl)
	}

	return decls, nil
}

// ParseDeclFile parses one YAML declaration document. The path is used
// only as a fallback module id when the document omits one.
func ParseDeclFile(data []byte, path string) (ModuleDecl, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ModuleDecl{}, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return ModuleDecl{}, fmt.Errorf("empty declaration document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return ModuleDecl{}, fmt.Errorf("declaration document must be a mapping")
	}

	decl := ModuleDecl{
		Module: strings.TrimSuffix(filepath.Base(path), ".style.yaml"),
	}

	var err error
	forEachPair(root, func(key string, node *yaml.Node) {
		if err != nil {
			return
		}
		switch key {
		case "module":
			decl.Module = node.Value
		case "consts":
			forEachPair(node, func(name string, v *yaml.Node) {
				decl.Consts = append(decl.Consts, ConstDecl{Name: name, Value: v.Value})
			})
		case "vars":
			forEachPair(node, func(name string, v *yaml.Node) {
				group, groupErr := parseVarGroup(name, v)
				if groupErr != nil {
					err = groupErr
					return
				}
				decl.VarGroups = append(decl.VarGroups, group)
			})
		case "themes":
			forEachPair(node, func(name string, v *yaml.Node) {
				theme, themeErr := parseTheme(name, v)
				if themeErr != nil {
					err = themeErr
					return
				}
				decl.Themes = append(decl.Themes, theme)
			})
		case "keyframes":
			forEachPair(node, func(name string, v *yaml.Node) {
				kf := KeyframesDecl{Name: name}
				forEachPair(v, func(frame string, body *yaml.Node) {
					kf.Frames = append(kf.Frames, KeyframeBlock{Key: frame, Decls: parseDecls(body)})
				})
				decl.Keyframes = append(decl.Keyframes, kf)
			})
		case "positionTry":
			forEachPair(node, func(name string, v *yaml.Node) {
				decl.PositionTry = append(decl.PositionTry, PositionTryDecl{Name: name, Decls: parseDecls(v)})
			})
		case "viewTransitions":
			forEachPair(node, func(name string, v *yaml.Node) {
				vt := ViewTransitionDecl{Name: name}
				forEachPair(v, func(part string, body *yaml.Node) {
					vt.Parts = append(vt.Parts, ViewTransitionPart{Part: part, Decls: parseDecls(body)})
				})
				decl.ViewTransitions = append(decl.ViewTransitions, vt)
			})
		case "rules":
			forEachPair(node, func(name string, v *yaml.Node) {
				decl.Rules = append(decl.Rules, parseRule(name, v))
			})
		default:
			err = fmt.Errorf("unknown top-level key %q", key)
		}
	})
	if err != nil {
		return ModuleDecl{}, err
	}

	resolveDeclRefs(&decl)
	return decl, nil
}

// forEachPair iterates the key/value pairs of a mapping node in document
// order.
func forEachPair(node *yaml.Node, fn func(key string, value *yaml.Node)) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		fn(node.Content[i].Value, node.Content[i+1])
	}
}

// parseRule parses one rule body. A mapping with "params" and "decls" keys
// declares a dynamic rule; any other mapping is the declaration list
// itself.
func parseRule(name string, node *yaml.Node) RuleDecl {
	rule := RuleDecl{Name: name}

	isDynamic := false
	forEachPair(node, func(key string, v *yaml.Node) {
		if key == "params" && v.Kind == yaml.SequenceNode {
			isDynamic = true
		}
	})

	if !isDynamic {
		rule.Decls = parseDecls(node)
		return rule
	}

	forEachPair(node, func(key string, v *yaml.Node) {
		switch key {
		case "params":
			for _, p := range v.Content {
				rule.Params = append(rule.Params, p.Value)
			}
		case "decls":
			rule.Decls = parseDecls(v)
		}
	})
	return rule
}

func parseDecls(node *yaml.Node) []Declaration {
	var decls []Declaration
	forEachPair(node, func(prop string, v *yaml.Node) {
		decls = append(decls, Declaration{Property: prop, Value: parseValue(v)})
	})
	return decls
}

// parseVarGroup parses one defineVars group. Each variable is either a
// bare value or a {value, syntax} mapping for typed custom properties.
func parseVarGroup(name string, node *yaml.Node) (VarGroupDecl, error) {
	group := VarGroupDecl{Name: name}
	var err error

	forEachPair(node, func(varName string, v *yaml.Node) {
		vd := VarDecl{Name: varName}

		if v.Kind == yaml.MappingNode && hasKey(v, "value") {
			forEachPair(v, func(key string, field *yaml.Node) {
				switch key {
				case "value":
					vd.Value = parseValue(field)
				case "syntax":
					vd.Syntax = field.Value
				default:
					err = fmt.Errorf("var %s.%s: unknown field %q", name, varName, key)
				}
			})
		} else {
			vd.Value = parseValue(v)
		}

		group.Vars = append(group.Vars, vd)
	})

	return group, err
}

func parseTheme(name string, node *yaml.Node) (ThemeDecl, error) {
	theme := ThemeDecl{Name: name}
	var err error

	forEachPair(node, func(key string, v *yaml.Node) {
		switch key {
		case "of":
			theme.Of = v.Value
		case "overrides":
			theme.Overrides = parseDecls(v)
		default:
			err = fmt.Errorf("theme %s: unknown field %q", name, key)
		}
	})

	return theme, err
}

// parseValue converts a YAML value node into the engine's Value shape.
func parseValue(node *yaml.Node) Value {
	switch node.Kind {
	case yaml.ScalarNode:
		return parseScalar(node)
	case yaml.SequenceNode:
		fb := make(Fallbacks, 0, len(node.Content))
		for _, item := range node.Content {
			fb = append(fb, item.Value)
		}
		return fb
	case yaml.MappingNode:
		// {firstThatWorks: [...]} is the firstOf marker form
		if len(node.Content) == 2 && node.Content[0].Value == "firstThatWorks" &&
			node.Content[1].Kind == yaml.SequenceNode {
			fo := make(FirstOf, 0, len(node.Content[1].Content))
			for _, item := range node.Content[1].Content {
				fo = append(fo, item.Value)
			}
			return fo
		}
		var cond Cond
		forEachPair(node, func(key string, v *yaml.Node) {
			cond = append(cond, CondEntry{Key: key, Value: parseValue(v)})
		})
		return cond
	default:
		return nil
	}
}

var paramRefPattern = regexp.MustCompile(`^\$param\.([A-Za-z_][\w-]*)$`)

func parseScalar(node *yaml.Node) Value {
	switch node.Tag {
	case "!!null":
		return nil
	case "!!int":
		if n, err := strconv.Atoi(node.Value); err == nil {
			return n
		}
	case "!!float":
		if f, err := strconv.ParseFloat(node.Value, 64); err == nil {
			return f
		}
	}
	if m := paramRefPattern.FindStringSubmatch(node.Value); m != nil {
		return Param{Name: m[1]}
	}
	return node.Value
}

var (
	constRefPattern = regexp.MustCompile(`\$consts\.([A-Za-z_][\w-]*)`)
	varRefPattern   = regexp.MustCompile(`\$vars\.([A-Za-z_][\w-]*)\.([A-Za-z_][\w-]*)`)
)

// resolveDeclRefs inlines $consts.* values and rewrites $vars.group.name
// references to their hashed var() form. Keyframes references resolve
// later, at compile time, because animation names are content hashes.
func resolveDeclRefs(decl *ModuleDecl) {
	consts := make(map[string]string, len(decl.Consts))
	for _, cd := range decl.Consts {
		consts[cd.Name] = cd.Value
	}

	rewrite := func(s string) string {
		s = constRefPattern.ReplaceAllStringFunc(s, func(ref string) string {
			name := constRefPattern.FindStringSubmatch(ref)[1]
			if v, ok := consts[name]; ok {
				return v
			}
			return ref
		})
		return varRefPattern.ReplaceAllStringFunc(s, func(ref string) string {
			m := varRefPattern.FindStringSubmatch(ref)
			return "var(" + VarCSSName(decl.Module, m[1], m[2]) + ")"
		})
	}

	for i := range decl.Rules {
		decl.Rules[i].Decls = rewriteDecls(decl.Rules[i].Decls, rewrite)
	}
	for i := range decl.VarGroups {
		for j := range decl.VarGroups[i].Vars {
			decl.VarGroups[i].Vars[j].Value = rewriteValue(decl.VarGroups[i].Vars[j].Value, rewrite)
		}
	}
	for i := range decl.Themes {
		decl.Themes[i].Overrides = rewriteDecls(decl.Themes[i].Overrides, rewrite)
	}
	for i := range decl.Keyframes {
		for j := range decl.Keyframes[i].Frames {
			decl.Keyframes[i].Frames[j].Decls = rewriteDecls(decl.Keyframes[i].Frames[j].Decls, rewrite)
		}
	}
}

func rewriteDecls(decls []Declaration, fn func(string) string) []Declaration {
	for i := range decls {
		decls[i].Value = rewriteValue(decls[i].Value, fn)
	}
	return decls
}

func rewriteValue(v Value, fn func(string) string) Value {
	switch val := v.(type) {
	case string:
		return fn(val)
	case Fallbacks:
		out := make(Fallbacks, len(val))
		for i, s := range val {
			out[i] = fn(s)
		}
		return out
	case FirstOf:
		out := make(FirstOf, len(val))
		for i, s := range val {
			out[i] = fn(s)
		}
		return out
	case Cond:
		out := make(Cond, len(val))
		for i, e := range val {
			out[i] = CondEntry{e.Key, rewriteValue(e.Value, fn)}
		}
		return out
	default:
		return v
	}
}

func hasKey(node *yaml.Node, key string) bool {
	found := false
	forEachPair(node, func(k string, _ *yaml.Node) {
		if k == key {
			found = true
		}
	})
	return found
}
