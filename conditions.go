package stylec

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// conditionPath is one flattened chain of wrapping conditions: the at-rules
// outer-to-inner as declared, and the pseudo-classes/elements in canonical
// order.
type conditionPath struct {
	atRules []string
	pseudos []string
}

// key returns the canonical condition key: ":default" for the empty path,
// otherwise the pseudos followed by the at-rules. Two declarations that
// differ only in pseudo order share a key, and therefore a hash.
func (p conditionPath) key() string {
	if len(p.atRules) == 0 && len(p.pseudos) == 0 {
		return ":default"
	}
	return strings.Join(p.pseudos, "") + strings.Join(p.atRules, "")
}

func (p conditionPath) isDefault() bool {
	return len(p.atRules) == 0 && len(p.pseudos) == 0
}

// pseudoElement returns the single pseudo-element of the path, or "".
func (p conditionPath) pseudoElement() string {
	for _, ps := range p.pseudos {
		if strings.HasPrefix(ps, "::") {
			return ps
		}
	}
	return ""
}

// pseudoClasses returns the pseudo-classes of the path without any
// pseudo-element.
func (p conditionPath) pseudoClasses() []string {
	out := make([]string, 0, len(p.pseudos))
	for _, ps := range p.pseudos {
		if !strings.HasPrefix(ps, "::") {
			out = append(out, ps)
		}
	}
	return out
}

// flatValue is one leaf of a flattened condition tree.
type flatValue struct {
	path  conditionPath
	value Value
}

// flattenCond normalizes a nested condition map into a flat, de-duplicated
// list of (path, value) leaves. Consecutive unbounded min-width media keys
// are range-bounded first, so only one of them ever matches at a time.
func flattenCond(cond Cond) ([]flatValue, error) {
	var out []flatValue
	index := make(map[string]int)

	var walk func(c Cond, atRules, pseudos []string) error
	walk = func(c Cond, atRules, pseudos []string) error {
		c = boundMediaRanges(c)

		for _, entry := range c {
			key := strings.TrimSpace(entry.Key)

			nextAt, nextPs := atRules, pseudos
			switch {
			case key == ":default" || key == "default":
				// value applies at the current path
			case strings.HasPrefix(key, "@"):
				nextAt = append(append([]string{}, atRules...), key)
			case strings.HasPrefix(key, ":"):
				nextPs = append(append([]string{}, pseudos...), splitPseudos(key)...)
			default:
				return newConfigError("invalid condition key %q: conditions must be a pseudo selector or an at-rule", entry.Key)
			}

			if nested, ok := entry.Value.(Cond); ok {
				if err := walk(nested, nextAt, nextPs); err != nil {
					return err
				}
				continue
			}

			path := conditionPath{nextAt, sortPseudos(nextPs)}
			leaf := flatValue{path, entry.Value}
			if i, dup := index[path.key()]; dup {
				// same canonical path declared twice: last one wins
				out[i] = leaf
				continue
			}
			index[path.key()] = len(out)
			out = append(out, leaf)
		}
		return nil
	}

	if err := walk(cond, nil, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// splitPseudos splits a compound pseudo key (":active:hover") into its
// segments. Colons inside functional notation and the double colon of a
// pseudo-element never split.
func splitPseudos(key string) []string {
	var out []string
	depth := 0
	start := 0

	for i := 1; i < len(key); i++ {
		switch key[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ':':
			// a new segment starts at any colon that is not the second
			// colon of a pseudo-element
			if depth == 0 && key[i-1] != ':' {
				out = append(out, key[start:i])
				start = i
			}
		}
	}

	return append(out, key[start:])
}

// sortPseudos returns the canonical ordering: pseudo-classes sorted by
// their fixed priority (then name), pseudo-elements last. ":active:hover"
// and ":hover:active" produce identical output.
func sortPseudos(pseudos []string) []string {
	if len(pseudos) < 2 {
		return pseudos
	}

	sorted := append([]string{}, pseudos...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ei, ej := strings.HasPrefix(sorted[i], "::"), strings.HasPrefix(sorted[j], "::")
		if ei != ej {
			return !ei
		}
		if ei {
			return false
		}
		pi, pj := pseudoClassPriority(sorted[i]), pseudoClassPriority(sorted[j])
		if pi != pj {
			return pi < pj
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

var minWidthPattern = regexp.MustCompile(`^@media \(min-width:\s*([0-9.]+)px\)$`)

// boundMediaRanges rewrites consecutive ascending unbounded min-width media
// keys so that all but the widest get an upper bound just below the next
// breakpoint. Source order then no longer decides which rule wins: at any
// viewport width exactly one of them matches.
func boundMediaRanges(c Cond) Cond {
	type breakpoint struct {
		idx   int
		bound float64
	}

	var bps []breakpoint
	for i, entry := range c {
		m := minWidthPattern.FindStringSubmatch(strings.TrimSpace(entry.Key))
		if m == nil {
			continue
		}
		bound, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		bps = append(bps, breakpoint{i, bound})
	}
	if len(bps) < 2 {
		return c
	}
	for i := 1; i < len(bps); i++ {
		if bps[i].bound <= bps[i-1].bound {
			return c
		}
	}

	out := append(Cond{}, c...)
	for i := 0; i < len(bps)-1; i++ {
		upper := bps[i+1].bound - 0.01
		out[bps[i].idx].Key = fmt.Sprintf("@media (min-width: %spx) and (max-width: %spx)",
			formatBound(bps[i].bound), formatBound(upper))
	}
	return out
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
