package stylec

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// LintOptions configures declaration-file linting.
type LintOptions struct {
	// Strategy selects the shorthand strategy to validate against.
	Strategy string
	// MaxIssues limits the total number of reported issues (0 = unlimited).
	MaxIssues int
	// MaxSameIssues limits repeats of the same message (0 = unlimited).
	MaxSameIssues int
}

// LintResult contains the outcome of linting declaration files.
type LintResult struct {
	Issues         []Issue
	FilesScanned   int
	RulesChecked   int
	ErrorCount     int
	WarningCount   int
	TruncatedCount int
}

// LintFiles checks every declaration file matched by the include patterns
// for problems the compiler would reject or silently paper over: duplicate
// properties, invalid condition keys, rejected shorthands, and dangling
// $consts/$param references. Unreadable or unparseable files report as
// issues, not as a failed lint run.
func LintFiles(patterns []string, opts LintOptions, log *zap.Logger) (*LintResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("lint")

	if _, err := StrategyFor(opts.Strategy); err != nil {
		return nil, err
	}

	result := &LintResult{}
	files, err := globDeclFiles(patterns)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		// #nosec G304 - paths come from configured include patterns
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		result.FilesScanned++
		lintFile(file, data, opts, result)
		log.Debug("linted file", zap.String("path", file))
	}

	if opts.MaxIssues > 0 || opts.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, opts)
	}
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
	return result, nil
}

// fileLinter carries per-file lint state.
type fileLinter struct {
	path   string
	lines  []string
	consts map[string]bool
	result *LintResult
}

func lintFile(path string, data []byte, opts LintOptions, result *LintResult) {
	fl := &fileLinter{
		path:   path,
		lines:  strings.Split(string(data), "\n"),
		consts: make(map[string]bool),
		result: result,
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		fl.report(&doc, SeverityError, "invalid YAML: %v", err)
		return
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		fl.report(root, SeverityError, "declaration document must be a mapping")
		return
	}

	// consts first so forward references inside rules resolve
	forEachPair(root, func(key string, node *yaml.Node) {
		if key == "consts" {
			forEachPair(node, func(name string, _ *yaml.Node) {
				fl.consts[name] = true
			})
		}
	})

	forEachPair(root, func(key string, node *yaml.Node) {
		switch key {
		case "module", "consts", "vars", "themes", "positionTry", "viewTransitions":
		case "keyframes":
			forEachPair(node, func(_ string, frames *yaml.Node) {
				forEachPair(frames, func(_ string, body *yaml.Node) {
					fl.lintKeyframeBody(body)
				})
			})
		case "rules":
			forEachPair(node, func(name string, body *yaml.Node) {
				result.RulesChecked++
				fl.lintRule(name, body, opts)
			})
		default:
			fl.reportKey(root, key, SeverityError, IssueUnknownSection, key)
		}
	})
}

func (fl *fileLinter) lintRule(name string, node *yaml.Node, opts LintOptions) {
	params := make(map[string]bool)
	decls := node

	if node.Kind == yaml.MappingNode && hasKey(node, "params") {
		forEachPair(node, func(key string, v *yaml.Node) {
			switch key {
			case "params":
				for _, p := range v.Content {
					params[p.Value] = true
				}
			case "decls":
				decls = v
			}
		})
	}

	seen := make(map[string]bool)
	forEachPair(decls, func(prop string, v *yaml.Node) {
		dashedProp := dashed(prop)

		if seen[dashedProp] {
			fl.reportKey(decls, prop, SeverityWarning, IssueDuplicateProperty, dashedProp)
		}
		seen[dashedProp] = true

		if opts.Strategy == StrategyRejectShorthands {
			if longhands, bad := rejectedShorthands[dashedProp]; bad {
				fl.reportKey(decls, prop, SeverityError,
					IssueRejectedShorthand, dashedProp, strings.Join(longhands, ", "))
			}
		}

		fl.lintValue(v, params)
	})
}

// lintValue walks one declaration value, checking condition keys and
// reference syntax at every level.
func (fl *fileLinter) lintValue(node *yaml.Node, params map[string]bool) {
	switch node.Kind {
	case yaml.ScalarNode:
		fl.lintScalarRefs(node, params)
	case yaml.SequenceNode:
		for _, item := range node.Content {
			fl.lintScalarRefs(item, params)
		}
	case yaml.MappingNode:
		if len(node.Content) == 2 && node.Content[0].Value == "firstThatWorks" {
			fl.lintValue(node.Content[1], params)
			return
		}
		forEachPair(node, func(key string, v *yaml.Node) {
			fl.lintConditionKey(node, key)
			fl.lintValue(v, params)
		})
	}
}

func (fl *fileLinter) lintConditionKey(parent *yaml.Node, key string) {
	switch {
	case key == "default" || key == ":default":
	case strings.HasPrefix(key, ":"), strings.HasPrefix(key, "@"):
	case pseudoClassPriorities[":"+key] != 0:
		fl.reportKey(parent, key, SeverityError, IssueBarePseudo, key, ":"+key)
	default:
		fl.reportKey(parent, key, SeverityError, IssueInvalidCondition, key)
	}
}

func (fl *fileLinter) lintKeyframeBody(node *yaml.Node) {
	forEachPair(node, func(prop string, v *yaml.Node) {
		if v.Kind == yaml.MappingNode {
			fl.reportKey(node, prop, SeverityError,
				"conditional value for %q: conditions are not supported inside keyframes", dashed(prop))
		}
	})
}

func (fl *fileLinter) lintScalarRefs(node *yaml.Node, params map[string]bool) {
	if m := paramRefPattern.FindStringSubmatch(node.Value); m != nil {
		if !params[m[1]] {
			fl.report(node, SeverityError, IssueUnknownParamRef, m[1])
		}
		return
	}
	for _, m := range constRefPattern.FindAllStringSubmatch(node.Value, -1) {
		if !fl.consts[m[1]] {
			fl.report(node, SeverityError, IssueUnknownConstRef, m[0])
		}
	}
}

// report records an issue at a value node's position.
func (fl *fileLinter) report(node *yaml.Node, severity, format string, args ...any) {
	issue := Issue{
		FromLinter: "stylelint",
		Text:       fmt.Sprintf(format, args...),
		Severity:   severity,
		Pos: IssuePos{
			Filename: fl.path,
			Line:     node.Line,
			Column:   node.Column,
		},
	}
	if node.Line >= 1 && node.Line <= len(fl.lines) {
		issue.SourceLines = []string{fl.lines[node.Line-1]}
	}
	fl.result.Issues = append(fl.result.Issues, issue)
}

// reportKey records an issue at a mapping key's position. The last
// occurrence is used so duplicate-key reports point at the duplicate.
func (fl *fileLinter) reportKey(mapping *yaml.Node, key, severity, format string, args ...any) {
	var at *yaml.Node
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			at = mapping.Content[i]
		}
	}
	if at == nil {
		at = mapping
	}
	fl.report(at, severity, format, args...)
}

// limitIssues applies max-issues and max-same-issues constraints.
func limitIssues(issues []Issue, opts LintOptions) ([]Issue, int) {
	originalCount := len(issues)

	if opts.MaxSameIssues > 0 {
		messageCounts := make(map[string]int)
		var filtered []Issue
		for _, issue := range issues {
			if messageCounts[issue.Text] < opts.MaxSameIssues {
				filtered = append(filtered, issue)
				messageCounts[issue.Text]++
			}
		}
		issues = filtered
	}

	if opts.MaxIssues > 0 && len(issues) > opts.MaxIssues {
		issues = issues[:opts.MaxIssues]
	}

	return issues, originalCount - len(issues)
}
