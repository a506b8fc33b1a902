package optparse

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrInvalidDeclaration = errors.New("invalid flag declaration")
var ErrInvalidLongFlag = errors.New("invalid long flag")

// Rule is a single normalized flag definition.
type Rule struct {
	// ShortFlag is the single-character flag like "-o", or "" if absent
	ShortFlag string
	// LongFlag is the canonical long flag like "--output", with any
	// placeholder text from the declaration stripped
	LongFlag string
	// Name is LongFlag without the leading dashes; it's the key the
	// parsed value is stored under in Options
	Name        string
	Description string
	// HasArgument means the declaration carried a placeholder like
	// "--output [DIR]" and the flag consumes the next token as its value
	HasArgument bool
	// IsList means the placeholder name ended with "*" like "--tag [NAME*]"
	// and repeated occurrences accumulate instead of overwriting
	IsList bool
}

// RuleSet is an ordered sequence of rules. Order is declaration order
// and matters twice: the first matching rule wins during parsing, and
// help lists flags in the same order.
type RuleSet []Rule

var longFlagSpecRegexp = regexp.MustCompile(`^--\w+(?:-\w+)*`)
var placeholderRegexp = regexp.MustCompile(`\[(\w+\*?)\]`)

// NewRuleSet compiles flag declarations into rules, keeping the input
// order. Each declaration is either [longFlagSpec, description] or
// [shortFlag, longFlagSpec, description]. Any other arity or a
// longFlagSpec not starting with "--word" fails the whole set.
func NewRuleSet(decls [][]string) (RuleSet, error) {
	rules := make(RuleSet, 0, len(decls))
	for i, decl := range decls {
		rule, err := newRule(decl)
		if err != nil {
			return nil, fmt.Errorf("declaration %d: %w", i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func newRule(decl []string) (Rule, error) {
	var shortFlag, longFlagSpec, description string
	switch len(decl) {
	case 2:
		longFlagSpec, description = decl[0], decl[1]
	case 3:
		shortFlag, longFlagSpec, description = decl[0], decl[1], decl[2]
	default:
		return Rule{}, fmt.Errorf(
			"%w: expected 2 or 3 elements, got %d", ErrInvalidDeclaration, len(decl),
		)
	}

	longFlag := longFlagSpecRegexp.FindString(longFlagSpec)
	if longFlag == "" {
		return Rule{}, fmt.Errorf("%w: %q", ErrInvalidLongFlag, longFlagSpec)
	}

	rule := Rule{
		ShortFlag:   shortFlag,
		LongFlag:    longFlag,
		Name:        strings.TrimPrefix(longFlag, "--"),
		Description: description,
	}
	if placeholder := placeholderRegexp.FindStringSubmatch(longFlagSpec); placeholder != nil {
		rule.HasArgument = true
		rule.IsList = strings.HasSuffix(placeholder[1], "*")
	}
	return rule, nil
}
