package stylec

import "strings"

// Physical-direction declarations that flip under right-to-left layout.
// Logical properties need no flipping; this table only covers the legacy
// physical set the reference tool rewrites.
var rtlFlipProperties = map[string]bool{
	"clear":      true,
	"float":      true,
	"text-align": true,
}

var rtlFlipValues = map[string]string{
	"left":  "right",
	"right": "left",
}

var rtlCursorValues = map[string]string{
	"e-resize":  "w-resize",
	"w-resize":  "e-resize",
	"ne-resize": "nw-resize",
	"nw-resize": "ne-resize",
	"se-resize": "sw-resize",
	"sw-resize": "se-resize",
}

// rtlDeclaration returns the flipped "property:value" text for a
// declaration, or "" when the declaration renders identically in both
// directions.
func rtlDeclaration(property, value string) string {
	bare, important := splitImportant(value)

	switch {
	case rtlFlipProperties[property]:
		if flipped, ok := rtlFlipValues[strings.ToLower(bare)]; ok {
			return property + ":" + flipped + important
		}
	case property == "cursor":
		if flipped, ok := rtlCursorValues[strings.ToLower(bare)]; ok {
			return property + ":" + flipped + important
		}
	}
	return ""
}
