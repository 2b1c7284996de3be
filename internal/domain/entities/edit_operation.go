package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// Position places an inserted block relative to its anchor.
type Position string

const (
	Before Position = "before"
	After  Position = "after"
)

// EditOperation is one text transformation applied to a single file's contents.
// The implementations are DeleteMatching, ReplaceMatching and InsertBlock.
type EditOperation interface {
	Apply(path, content string) (string, error)
	Describe() string
}

// Pattern compiles a line-oriented expression: "^" and "$" match at line boundaries.
func Pattern(expr string) *regexp.Regexp {
	return regexp.MustCompile("(?m)" + expr)
}

// CommentLinePattern matches whole comment lines, including any blank lines before them
// and a final comment line with no trailing newline.
var CommentLinePattern = Pattern(`^\s*#.*(?:\n|\z)`) //nolint:gochecknoglobals // shared pattern

// DeleteMatching removes every match of Pattern. Zero matches is a no-op.
type DeleteMatching struct {
	Pattern *regexp.Regexp
}

func (op DeleteMatching) Apply(_ string, content string) (string, error) {
	if !op.Pattern.MatchString(content) {
		return content, nil
	}
	return op.Pattern.ReplaceAllString(content, ""), nil
}

func (op DeleteMatching) Describe() string {
	return fmt.Sprintf("delete /%s/", trimFlags(op.Pattern))
}

// ReplaceMatching replaces every match of Pattern with Replacement ("$1" expands).
// Zero matches is a no-op.
type ReplaceMatching struct {
	Pattern     *regexp.Regexp
	Replacement string
}

func (op ReplaceMatching) Apply(_ string, content string) (string, error) {
	if !op.Pattern.MatchString(content) {
		return content, nil
	}
	return op.Pattern.ReplaceAllString(content, op.Replacement), nil
}

func (op ReplaceMatching) Describe() string {
	return fmt.Sprintf("replace /%s/ with %q", trimFlags(op.Pattern), op.Replacement)
}

// Anchor locates an insertion point, either a literal string or a regular expression.
// It is matched against the whole file, first occurrence wins.
type Anchor struct {
	Literal string
	Regexp  *regexp.Regexp
}

// LiteralAnchor builds an anchor matching text exactly.
func LiteralAnchor(text string) Anchor {
	return Anchor{Literal: text}
}

// PatternAnchor builds an anchor from a line-oriented expression.
func PatternAnchor(expr string) Anchor {
	return Anchor{Regexp: Pattern(expr)}
}

// locate returns the byte span of the first match, or ok=false.
func (a Anchor) locate(content string) (int, int, bool) {
	if a.Regexp != nil {
		loc := a.Regexp.FindStringIndex(content)
		if loc == nil {
			return 0, 0, false
		}
		return loc[0], loc[1], true
	}
	if a.Literal == "" {
		return 0, 0, false
	}
	idx := strings.Index(content, a.Literal)
	if idx < 0 {
		return 0, 0, false
	}
	return idx, idx + len(a.Literal), true
}

func (a Anchor) String() string {
	if a.Regexp != nil {
		return "/" + trimFlags(a.Regexp) + "/"
	}
	return fmt.Sprintf("%q", a.Literal)
}

// InsertBlock inserts Text immediately before or after the first Anchor match.
// A missing anchor is an AnchorNotFoundError.
type InsertBlock struct {
	Anchor   Anchor
	Position Position
	Text     string
}

func (op InsertBlock) Apply(path, content string) (string, error) {
	start, end, ok := op.Anchor.locate(content)
	if !ok {
		return content, &AnchorNotFoundError{Path: path, Anchor: op.Anchor.String()}
	}

	at := end
	if op.Position == Before {
		at = start
	}
	return content[:at] + op.Text + content[at:], nil
}

func (op InsertBlock) Describe() string {
	return fmt.Sprintf("insert %d line(s) %s %s", strings.Count(op.Text, "\n"), op.Position, op.Anchor)
}

// ApplyOperations runs the operations in order over content. On the first failure
// the original content is returned together with the error.
func ApplyOperations(path, content string, operations []EditOperation) (string, error) {
	result := content
	for _, op := range operations {
		next, err := op.Apply(path, result)
		if err != nil {
			return content, err
		}
		result = next
	}
	return result, nil
}

func trimFlags(re *regexp.Regexp) string {
	return strings.TrimPrefix(re.String(), "(?m)")
}
