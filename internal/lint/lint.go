// Package lint reports suspicious constructs in parsed documents.
//
// The block scanner never fails. Rules run as a separate pass over its output.
package lint

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/julien-sobczak/mdscan/internal/config"
	"github.com/julien-sobczak/mdscan/pkg/markdown"
)

// File is a parsed document ready to be checked.
type File struct {
	RelativePath string
	Blocks       []markdown.Block
}

func NewFile(relativePath string, doc markdown.Document, parser markdown.Parser) *File {
	return &File{
		RelativePath: relativePath,
		Blocks:       parser.ParseBlocks(doc.String()),
	}
}

type Violation struct {
	// The name of the rule
	Rule string
	// "error" or "warning"
	Severity string
	// The human-readable description of the violation
	Message string
	// The relative path to the file containing the violation
	RelativePath string
	// The position of the block containing the violation, starting at 1
	Block int
	// The type of the block containing the violation
	Kind markdown.BlockKind
}

func (v *Violation) String() string {
	return fmt.Sprintf("%s: block %d (%s): %s [%s]", v.RelativePath, v.Block, v.Kind, v.Message, v.Rule)
}

type LintResult struct {
	AnalyzedFiles int
	AffectedFiles int
	Warnings      []*Violation
	Errors        []*Violation
}

// Append dispatches violations according to their severity.
func (r *LintResult) Append(violations ...*Violation) {
	for _, violation := range violations {
		if violation.Severity == "warning" {
			r.Warnings = append(r.Warnings, violation)
		} else {
			r.Errors = append(r.Errors, violation)
		}
	}
}

// Merge adds the result of another analysis.
func (r *LintResult) Merge(other *LintResult) {
	r.AnalyzedFiles += other.AnalyzedFiles
	r.AffectedFiles += other.AffectedFiles
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Errors = append(r.Errors, other.Errors...)
}

// Sort orders violations by file and position.
func (r *LintResult) Sort() {
	compare := func(a, b *Violation) int {
		if a.RelativePath != b.RelativePath {
			return strings.Compare(a.RelativePath, b.RelativePath)
		}
		if a.Block != b.Block {
			return a.Block - b.Block
		}
		return strings.Compare(a.Rule, b.Rule)
	}
	slices.SortStableFunc(r.Warnings, compare)
	slices.SortStableFunc(r.Errors, compare)
}

func (r *LintResult) String() string {
	var sb strings.Builder
	for _, violation := range r.Errors {
		fmt.Fprintf(&sb, "error: %s\n", violation)
	}
	for _, violation := range r.Warnings {
		fmt.Fprintf(&sb, "warning: %s\n", violation)
	}
	fmt.Fprintf(&sb, "%d error(s), %d warning(s) in %d/%d file(s)", len(r.Errors), len(r.Warnings), r.AffectedFiles, r.AnalyzedFiles)
	return sb.String()
}

type LintRuleDefinition struct {
	Eval LintRule
}

// LintRule describes the interface that rules must conform.
type LintRule func(*File, []string) ([]*Violation, error)

var LintRules = map[string]LintRuleDefinition{
	// Tables must have a separator row after the header
	"table-missing-separator": {
		Eval: TableMissingSeparator,
	},

	// Table rows must have as many cells as the header
	"table-ragged-row": {
		Eval: TableRaggedRow,
	},

	// Heading levels must increase one at a time
	"heading-level-jump": {
		Eval: HeadingLevelJump,
	},

	// Headings must not be deeper than a given level
	"heading-max-level": {
		Eval: HeadingMaxLevel,
	},

	// Heading titles must match a regular expression
	"heading-title-match": {
		Eval: HeadingTitleMatch,
	},

	// Headings must generate distinct anchors
	"duplicate-heading-id": {
		Eval: DuplicateHeadingID,
	},

	// Links and images must have a target
	"empty-link-target": {
		Eval: EmptyLinkTarget,
	},

	// Alerts must have a content
	"empty-alert": {
		Eval: EmptyAlert,
	},

	// Lists must not mix task items and plain items
	"task-list-mixed": {
		Eval: TaskListMixed,
	},

	// Code blocks must declare a language
	"code-missing-language": {
		Eval: CodeMissingLanguage,
	},
}

// RuleNames returns the names of all known rules.
func RuleNames() []string {
	var names []string
	for name := range LintRules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Check validates the lint rules of a configuration.
func Check(lintFile config.LintFile) error {
	for _, rule := range lintFile.Rules {
		if _, ok := LintRules[rule.Name]; !ok {
			return fmt.Errorf("unknown lint rule %q", rule.Name)
		}
	}
	return nil
}

// Lint evaluates the configured rules on a file.
// The rule names restrict the evaluated rules when not empty.
func Lint(file *File, lintFile config.LintFile, ruleNames []string) ([]*Violation, error) {
	var violations []*Violation
	for _, rule := range lintFile.Rules {
		if rule.Severity == "off" {
			continue
		}
		if len(ruleNames) > 0 && !slices.Contains(ruleNames, rule.Name) {
			continue
		}
		if !rule.MatchesPath(file.RelativePath) {
			continue
		}
		definition, ok := LintRules[rule.Name]
		if !ok {
			return nil, fmt.Errorf("unknown lint rule %q", rule.Name)
		}
		ruleViolations, err := definition.Eval(file, rule.Args)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", rule.Name, err)
		}
		for _, violation := range ruleViolations {
			violation.Rule = rule.Name
			violation.Severity = rule.Severity
			violation.RelativePath = file.RelativePath
		}
		violations = append(violations, ruleViolations...)
	}
	return violations, nil
}

func newViolation(position int, block markdown.Block, format string, a ...any) *Violation {
	return &Violation{
		Message: fmt.Sprintf(format, a...),
		Block:   position + 1,
		Kind:    block.Kind(),
	}
}

// TableMissingSeparator implements the rule "table-missing-separator".
func TableMissingSeparator(file *File, args []string) ([]*Violation, error) {
	var violations []*Violation

	for i, block := range file.Blocks {
		if table, ok := block.(markdown.Table); ok && !table.Delimited {
			violations = append(violations, newViolation(i, block, "missing separator row after table header %q", strings.Join(table.Headers, " | ")))
		}
	}

	return violations, nil
}

// TableRaggedRow implements the rule "table-ragged-row".
func TableRaggedRow(file *File, args []string) ([]*Violation, error) {
	var violations []*Violation

	for i, block := range file.Blocks {
		table, ok := block.(markdown.Table)
		if !ok {
			continue
		}
		for j, row := range table.Rows {
			if len(row) != len(table.Headers) {
				violations = append(violations, newViolation(i, block, "row %d has %d cell(s) but header has %d", j+1, len(row), len(table.Headers)))
			}
		}
	}

	return violations, nil
}

// HeadingLevelJump implements the rule "heading-level-jump".
func HeadingLevelJump(file *File, args []string) ([]*Violation, error) {
	var violations []*Violation

	previousLevel := 0
	for i, block := range file.Blocks {
		heading, ok := block.(markdown.Heading)
		if !ok {
			continue
		}
		// The first heading can use any level
		if previousLevel > 0 && heading.Level > previousLevel+1 {
			violations = append(violations, newViolation(i, block, "heading %q jumps from level %d to %d", heading.Text, previousLevel, heading.Level))
		}
		previousLevel = heading.Level
	}

	return violations, nil
}

// HeadingMaxLevel implements the rule "heading-max-level".
// The maximum level defaults to 6.
func HeadingMaxLevel(file *File, args []string) ([]*Violation, error) {
	var violations []*Violation

	if len(args) > 1 {
		return nil, errors.New("at most a single argument is supported")
	}
	maxLevel := 6
	if len(args) == 1 {
		level, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("argument %s must be an integer", args[0])
		}
		maxLevel = level
	}

	for i, block := range file.Blocks {
		if heading, ok := block.(markdown.Heading); ok && heading.Level > maxLevel {
			violations = append(violations, newViolation(i, block, "heading %q exceeds level %d", heading.Text, maxLevel))
		}
	}

	return violations, nil
}

// HeadingTitleMatch implements the rule "heading-title-match".
// Only level-1 headings are checked.
func HeadingTitleMatch(file *File, args []string) ([]*Violation, error) {
	var violations []*Violation

	if len(args) != 1 {
		return nil, errors.New("only a single argument is required")
	}
	re, err := regexp.Compile(args[0])
	if err != nil {
		return nil, fmt.Errorf("argument %s must be a valid regular expression", args[0])
	}

	for i, block := range file.Blocks {
		heading, ok := block.(markdown.Heading)
		if !ok || heading.Level != 1 {
			continue
		}
		if !re.MatchString(heading.Text) {
			violations = append(violations, newViolation(i, block, "heading title %q does not match regex %q", heading.Text, args[0]))
		}
	}

	return violations, nil
}

// DuplicateHeadingID implements the rule "duplicate-heading-id".
func DuplicateHeadingID(file *File, args []string) ([]*Violation, error) {
	var violations []*Violation

	uniqueIDs := make(map[string]string) // id => first heading text
	for i, block := range file.Blocks {
		heading, ok := block.(markdown.Heading)
		if !ok {
			continue
		}
		id := markdown.Slugify(heading.Text)
		if first, ok := uniqueIDs[id]; ok {
			violations = append(violations, newViolation(i, block, "heading %q has the same id %q as heading %q", heading.Text, id, first))
		} else {
			uniqueIDs[id] = heading.Text
		}
	}

	return violations, nil
}

// EmptyLinkTarget implements the rule "empty-link-target".
func EmptyLinkTarget(file *File, args []string) ([]*Violation, error) {
	var violations []*Violation

	for i, block := range file.Blocks {
		for _, span := range markdown.Spans(block) {
			for _, node := range markdown.ParseInline(span) {
				if node.Kind != markdown.InlineLink && node.Kind != markdown.InlineImage {
					continue
				}
				if strings.TrimSpace(node.URL) == "" {
					violations = append(violations, newViolation(i, block, "empty target for %s %q", node.Kind, node.Text))
				}
			}
		}
	}

	return violations, nil
}

// EmptyAlert implements the rule "empty-alert".
func EmptyAlert(file *File, args []string) ([]*Violation, error) {
	var violations []*Violation

	for i, block := range file.Blocks {
		if alert, ok := block.(markdown.Alert); ok && strings.TrimSpace(alert.Text) == "" {
			violations = append(violations, newViolation(i, block, "empty %s alert", alert.Type))
		}
	}

	return violations, nil
}

// TaskListMixed implements the rule "task-list-mixed".
func TaskListMixed(file *File, args []string) ([]*Violation, error) {
	var violations []*Violation

	for i, block := range file.Blocks {
		list, ok := block.(markdown.List)
		if !ok {
			continue
		}
		tasks := 0
		for _, item := range list.Items {
			if item.IsTask() {
				tasks++
			}
		}
		if tasks > 0 && tasks < len(list.Items) {
			violations = append(violations, newViolation(i, block, "list mixes %d task item(s) with %d plain item(s)", tasks, len(list.Items)-tasks))
		}
	}

	return violations, nil
}

// CodeMissingLanguage implements the rule "code-missing-language".
func CodeMissingLanguage(file *File, args []string) ([]*Violation, error) {
	var violations []*Violation

	for i, block := range file.Blocks {
		if code, ok := block.(markdown.CodeBlock); ok && code.Language == "" {
			violations = append(violations, newViolation(i, block, "missing language for code block"))
		}
	}

	return violations, nil
}
