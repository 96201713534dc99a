package stylec

// vendorPrefixes is the fixed prefix table: the prefixed duplicates are
// emitted before the standard declaration so the standard one wins where
// supported. Properties outside this table never get prefixes.
var vendorPrefixes = map[string][]string{
	"appearance":           {"-webkit-appearance", "-moz-appearance"},
	"backdrop-filter":      {"-webkit-backdrop-filter"},
	"box-decoration-break": {"-webkit-box-decoration-break"},
	"hyphens":              {"-webkit-hyphens"},
	"mask-image":           {"-webkit-mask-image"},
	"tab-size":             {"-moz-tab-size"},
	"text-size-adjust":     {"-webkit-text-size-adjust", "-moz-text-size-adjust"},
	"user-select":          {"-webkit-user-select", "-moz-user-select", "-ms-user-select"},
}

// prefixedDeclarations expands one "property:value" declaration into its
// vendor-prefixed duplicates followed by the standard form.
func prefixedDeclarations(property, value string) []string {
	prefixes := vendorPrefixes[property]
	out := make([]string, 0, len(prefixes)+1)
	for _, p := range prefixes {
		out = append(out, p+":"+value)
	}
	return append(out, property+":"+value)
}
