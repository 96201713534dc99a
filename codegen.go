package stylec

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// CodegenOptions configures Go constant generation.
type CodegenOptions struct {
	// PackageName for the generated file. Defaults to "styles".
	PackageName string
}

func (o CodegenOptions) packageName() string {
	if o.PackageName == "" {
		return "styles"
	}
	return o.PackageName
}

// WriteConstantsFile generates a Go source file with one constant per
// compiled rule, so templates reference class strings through the type
// system instead of raw literals. Dynamic rules get their constant too;
// their inline style still comes from Manifest.Resolve at render time.
func WriteConstantsFile(w io.Writer, m *Manifest, opts CodegenOptions) error {
	var b strings.Builder

	b.WriteString("// Code generated by stylec. DO NOT EDIT.\n\n")
	b.WriteString("package " + opts.packageName() + "\n\n")

	names := assignExportedNames(sortedKeys(m.Classes))

	if len(m.Classes) > 0 {
		b.WriteString("// Class strings for compiled style rules.\n")
		b.WriteString("const (\n")
		for _, key := range sortedKeys(m.Classes) {
			fmt.Fprintf(&b, "\t%s = %q // %s\n", names[key], m.Classes[key].ClassString, key)
		}
		b.WriteString(")\n\n")

		b.WriteString("// RuleClasses maps rule keys to their class strings.\n")
		b.WriteString("var RuleClasses = map[string]string{\n")
		for _, key := range sortedKeys(m.Classes) {
			fmt.Fprintf(&b, "\t%q: %s,\n", key, names[key])
		}
		b.WriteString("}\n")
	}

	if len(m.Themes) > 0 {
		themeNames := assignExportedNames(sortedKeys(m.Themes))
		b.WriteString("\n// Theme class names.\n")
		b.WriteString("const (\n")
		for _, key := range sortedKeys(m.Themes) {
			fmt.Fprintf(&b, "\tTheme%s = %q // %s\n", themeNames[key], m.Themes[key].ClassName, key)
		}
		b.WriteString(")\n")
	}

	if len(m.Keyframes) > 0 {
		kfNames := assignExportedNames(sortedKeys(m.Keyframes))
		b.WriteString("\n// Generated animation names.\n")
		b.WriteString("const (\n")
		for _, key := range sortedKeys(m.Keyframes) {
			fmt.Fprintf(&b, "\tAnimation%s = %q // %s\n", kfNames[key], m.Keyframes[key].Name, key)
		}
		b.WriteString(")\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// assignExportedNames mangles dotted keys into unique exported Go
// identifiers. Collisions get a numeric suffix in sorted-key order.
func assignExportedNames(keys []string) map[string]string {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	names := make(map[string]string, len(keys))
	taken := make(map[string]bool, len(keys))

	for _, key := range sorted {
		name := exportedName(key)
		if taken[name] {
			for i := 2; ; i++ {
				candidate := name + strconv.Itoa(i)
				if !taken[candidate] {
					name = candidate
					break
				}
			}
		}
		taken[name] = true
		names[key] = name
	}
	return names
}

// exportedName converts "app/button.base" into "AppButtonBase".
func exportedName(key string) string {
	var b strings.Builder
	upper := true
	for _, r := range key {
		switch {
		case r == '/' || r == '.' || r == '-' || r == '_':
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 || !unicode.IsLetter(rune(b.String()[0])) {
		return "X" + b.String()
	}
	return b.String()
}
