package stylec

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "stylelint"
	Text        string       `json:"Text"`        // "duplicate declaration of \"color\""
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines with the issue
	Pos         IssuePos     `json:"Pos"`         // File location
	LineRange   *LineRange   `json:"LineRange"`   // Optional range
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "ui/button.style.yaml"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 3 (1-based)
}

// LineRange specifies a range of lines
type LineRange struct {
	From int `json:"From"`
	To   int `json:"To"`
}

// Replacement provides an automated fix suggestion (future --fix flag)
type Replacement struct {
	NewText      string // ":hover"
	InlineLength int    // Length of text to replace
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// IssueType constants matching linter categories
const (
	IssueUnknownSection    = "unknown top-level section %q"
	IssueDuplicateProperty = "duplicate declaration of %q: the later declaration wins"
	IssueRejectedShorthand = "shorthand %q is not allowed with reject-shorthands, use %s"
	IssueInvalidCondition  = "invalid condition key %q: expected \"default\", a \":pseudo\" selector or an \"@\" at-rule"
	IssueBarePseudo        = "invalid condition key %q: did you mean %q"
	IssueUnknownConstRef   = "unknown const reference %q"
	IssueUnknownParamRef   = "param %q is not declared by this rule"
)
