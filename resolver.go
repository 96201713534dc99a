package stylec

import (
	"strconv"
	"strings"
)

// Properties whose numeric values are unitless; everywhere else a bare
// number gets "px" appended, matching the reference tool.
var unitlessProperties = map[string]bool{
	"animation-iteration-count": true,
	"aspect-ratio":              true,
	"column-count":              true,
	"flex":                      true,
	"flex-grow":                 true,
	"flex-shrink":               true,
	"font-weight":               true,
	"line-clamp":                true,
	"mask-border-slice":         true,
	"opacity":                   true,
	"order":                     true,
	"orphans":                   true,
	"scale":                     true,
	"tab-size":                  true,
	"widows":                    true,
	"z-index":                   true,
	"zoom":                      true,
}

// dashed converts a camelCase property name to its dashed CSS form.
// Already-dashed names and custom properties pass through unchanged.
func dashed(property string) string {
	if strings.HasPrefix(property, "--") {
		return property
	}

	var b strings.Builder
	b.Grow(len(property) + 4)
	for _, r := range property {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// styleValue stringifies a scalar declaration value. Numbers are formatted
// without trailing zeros and receive a "px" unit unless the property takes
// unitless numbers or the value is zero.
func styleValue(property string, v Value) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case int:
		return numberValue(property, float64(val))
	case int64:
		return numberValue(property, float64(val))
	case float64:
		return numberValue(property, val)
	default:
		return ""
	}
}

func numberValue(property string, v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v == 0 || unitlessProperties[property] || strings.HasPrefix(property, "--") {
		return s
	}
	return s + "px"
}

// isVarRef reports whether a value is a bare var() reference.
func isVarRef(v string) bool {
	return strings.HasPrefix(strings.TrimSpace(v), "var(")
}

// varInner extracts the contents of a bare var() reference.
func varInner(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "var(")
	return strings.TrimSuffix(v, ")")
}

// resolveFallbacks turns a plain fallback array into declaration value
// strings. A var() reference following plain values claims them as its
// fallback: ["red", "var(--c)"] yields one "var(--c,red)" declaration.
// A var() appearing before a plain value cannot act as its fallback, so
// ["var(--c)", "red"] yields two sequential declarations. Nesting only
// helps when the variable is tried first.
func resolveFallbacks(values []string) []string {
	var out []string
	var plain []string

	for _, v := range values {
		if isVarRef(v) {
			if len(plain) > 0 {
				out = append(out, "var("+varInner(v)+","+strings.Join(plain, ",")+")")
				plain = nil
			} else {
				out = append(out, v)
			}
		} else {
			plain = append(plain, v)
		}
	}

	return append(out, plain...)
}

// resolveFirstOf implements the firstThatWorks convention: the declared
// order is "first value the browser understands wins", so plain values are
// emitted in reverse (CSS last-wins picks the earliest declared), and every
// var() run nests recursively over the remaining values:
// ["var(--a)", "var(--b)", "red"] becomes "var(--a,var(--b,red))".
func resolveFirstOf(values []string) []string {
	firstVar := -1
	for i, v := range values {
		if isVarRef(v) {
			firstVar = i
			break
		}
	}
	if firstVar == -1 {
		reversed := make([]string, 0, len(values))
		for i := len(values) - 1; i >= 0; i-- {
			reversed = append(reversed, values[i])
		}
		return reversed
	}

	// Plain values declared before the first var() are higher priority:
	// they end up after the nested var() declaration, reversed.
	priorities := make([]string, 0, firstVar)
	for i := firstVar - 1; i >= 0; i-- {
		priorities = append(priorities, values[i])
	}

	rest := values[firstVar:]
	firstNonVar := -1
	for i, v := range rest {
		if !isVarRef(v) {
			firstNonVar = i
			break
		}
	}

	varRefs := rest
	var fallbacks []string
	if firstNonVar != -1 {
		varRefs = rest[:firstNonVar]
		fallbacks = rest[firstNonVar:]
	}

	combined := strings.Join(fallbacks, ",")
	for i := len(varRefs) - 1; i >= 0; i-- {
		if combined == "" {
			combined = "var(" + varInner(varRefs[i]) + ")"
		} else {
			combined = "var(" + varInner(varRefs[i]) + "," + combined + ")"
		}
	}

	return append([]string{combined}, priorities...)
}

// resolveScalar resolves a non-conditional value into its declaration value
// strings. A nil value resolves to no declarations at all. The bool result
// is false when the value removes the property.
func resolveScalar(property string, v Value) ([]string, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case Fallbacks:
		return resolveFallbacks(val), true
	case FirstOf:
		return resolveFirstOf(val), true
	default:
		return []string{styleValue(property, v)}, true
	}
}
