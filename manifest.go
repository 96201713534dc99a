package stylec

import "sort"

// Manifest is the central registry of every compiled entity, keyed by
// dotted "<module>.<name>" paths. It is append-only during a build and
// consumed read-only afterwards; all iteration happens over sorted keys, so
// registration order never affects output. Independent module compilations
// can be merged by key union.
type Manifest struct {
	Vars            map[string]*VarGroup
	Consts          map[string]*ConstEntry
	Keyframes       map[string]*KeyframesMeta
	Classes         map[string]*CompiledRule
	Themes          map[string]*Theme
	PositionTry     map[string]*PositionTryMeta
	ViewTransitions map[string]*ViewTransitionMeta
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	m := &Manifest{}
	m.Reset()
	return m
}

// Reset clears every category. Builds and tests call this between runs;
// there is no implicit process-lifetime state.
func (m *Manifest) Reset() {
	m.Vars = make(map[string]*VarGroup)
	m.Consts = make(map[string]*ConstEntry)
	m.Keyframes = make(map[string]*KeyframesMeta)
	m.Classes = make(map[string]*CompiledRule)
	m.Themes = make(map[string]*Theme)
	m.PositionTry = make(map[string]*PositionTryMeta)
	m.ViewTransitions = make(map[string]*ViewTransitionMeta)
}

// Merge unions another manifest into this one. Keys are derived from
// declared content, so a key collision carries identical compiled output
// and the union is associative regardless of merge order.
func (m *Manifest) Merge(other *Manifest) {
	for k, v := range other.Vars {
		m.Vars[k] = v
	}
	for k, v := range other.Consts {
		m.Consts[k] = v
	}
	for k, v := range other.Keyframes {
		m.Keyframes[k] = v
	}
	for k, v := range other.Classes {
		m.Classes[k] = v
	}
	for k, v := range other.Themes {
		m.Themes[k] = v
	}
	for k, v := range other.PositionTry {
		m.PositionTry[k] = v
	}
	for k, v := range other.ViewTransitions {
		m.ViewTransitions[k] = v
	}
}

// Rule looks up a compiled rule by dotted key.
func (m *Manifest) Rule(key string) (*CompiledRule, bool) {
	r, ok := m.Classes[key]
	return r, ok
}

// VarGroup looks up a compiled variable group by dotted key.
func (m *Manifest) VarGroup(key string) (*VarGroup, bool) {
	g, ok := m.Vars[key]
	return g, ok
}

// Theme looks up a compiled theme by dotted key.
func (m *Manifest) Theme(key string) (*Theme, bool) {
	t, ok := m.Themes[key]
	return t, ok
}

// Const looks up a registered constant by dotted key.
func (m *Manifest) Const(key string) (*ConstEntry, bool) {
	c, ok := m.Consts[key]
	return c, ok
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
