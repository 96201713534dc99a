package stylec

import (
	"fmt"
	"strings"
)

// Marker is a class used purely as a selector anchor for contextual
// combinators; it carries no styling of its own. Two markers defined with
// the same logical name are value-equal.
type Marker struct {
	Class string
}

// defaultMarkerSuffix is appended to the configured class prefix for the
// shared default marker.
const defaultMarkerSuffix = "-default-marker"

// DefaultMarker returns the fixed marker class for a class-name prefix.
func DefaultMarker(prefix string) Marker {
	return Marker{Class: prefix + defaultMarkerSuffix}
}

// DefineMarker returns a hash-derived unique marker class for a logical
// name. The generated class never contains the default marker's literal
// substring, so the two kinds cannot shadow each other.
func DefineMarker(prefix, name string) Marker {
	return Marker{Class: prefix + Hash("marker//"+name)}
}

// validateWhenPseudo checks the pseudo-class argument of the When
// builders: it must start with a single colon, and pseudo-elements are not
// accepted.
func validateWhenPseudo(pseudo string) error {
	if !strings.HasPrefix(pseudo, ":") {
		return &ConfigError{
			Msg:  fmt.Sprintf("invalid pseudo-class %q: must start with ':'", pseudo),
			Hint: fmt.Sprintf("did you mean %q", ":"+pseudo),
		}
	}
	if strings.HasPrefix(pseudo, "::") {
		return &ConfigError{
			Msg: fmt.Sprintf("invalid pseudo-class %q: pseudo-elements are not supported", pseudo),
		}
	}
	return nil
}

// WhenAncestor matches an element with a marked ancestor in the given
// pseudo state: ":where(.<marker>:hover *)". The returned string is an
// ordinary condition-map key.
func WhenAncestor(pseudo string, marker Marker) (string, error) {
	if err := validateWhenPseudo(pseudo); err != nil {
		return "", err
	}
	return ":where(." + marker.Class + pseudo + " *)", nil
}

// WhenDescendant matches an element that has a marked descendant in the
// given pseudo state.
func WhenDescendant(pseudo string, marker Marker) (string, error) {
	if err := validateWhenPseudo(pseudo); err != nil {
		return "", err
	}
	return ":where(:has(." + marker.Class + pseudo + "))", nil
}

// WhenSiblingBefore matches an element with a marked earlier sibling in the
// given pseudo state.
func WhenSiblingBefore(pseudo string, marker Marker) (string, error) {
	if err := validateWhenPseudo(pseudo); err != nil {
		return "", err
	}
	return ":where(." + marker.Class + pseudo + " ~ *)", nil
}

// WhenSiblingAfter matches an element with a marked later sibling in the
// given pseudo state.
func WhenSiblingAfter(pseudo string, marker Marker) (string, error) {
	if err := validateWhenPseudo(pseudo); err != nil {
		return "", err
	}
	return ":where(:has(~ ." + marker.Class + pseudo + "))", nil
}

// WhenAnySibling matches an element with a marked sibling on either side in
// the given pseudo state.
func WhenAnySibling(pseudo string, marker Marker) (string, error) {
	if err := validateWhenPseudo(pseudo); err != nil {
		return "", err
	}
	m := marker.Class
	return ":where(." + m + pseudo + " ~ *, :has(~ ." + m + pseudo + "))", nil
}
