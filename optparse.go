package optparse

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Acidburn0zzz/coco/cmdargs"
)

var ErrUnrecognizedOption = errors.New("unrecognized option")

// ErrorHandling defines how Parser.Parse behaves if parsing fails.
type ErrorHandling int

const (
	ContinueOnError ErrorHandling = iota // Return a descriptive error.
	ExitOnError                          // Print the error to Output and call os.Exit(2).
	PanicOnError                         // Panic with a descriptive error.
)

// Parser matches an argument vector against an immutable RuleSet and
// renders the help listing from the same rules.
type Parser struct {
	rules         RuleSet
	banner        string
	errorHandling ErrorHandling
	output        io.Writer
}

// NewParser compiles the given declarations into a RuleSet and returns
// a Parser over it. banner, when non-empty, is prefixed to Help output.
// Malformed declarations are reported here, not during Parse.
func NewParser(decls [][]string, banner string, errorHandling ErrorHandling) (*Parser, error) {
	rules, err := NewRuleSet(decls)
	if err != nil {
		return nil, err
	}
	return &Parser{
		rules:         rules,
		banner:        banner,
		errorHandling: errorHandling,
	}, nil
}

// Rules returns the compiled rule set in declaration order.
func (p *Parser) Rules() RuleSet {
	return p.rules
}

// Output returns the destination for error messages, os.Stderr by default.
func (p *Parser) Output() io.Writer {
	if p.output == nil {
		return os.Stderr
	}
	return p.output
}

// SetOutput sets the destination for error messages.
func (p *Parser) SetOutput(output io.Writer) {
	p.output = output
}

// Parse scans args left to right matching each token against the rules,
// after expanding merged short-flag bundles. Scanning stops at the first
// token that matches no flag pattern: that token and everything after it,
// flag-looking or not, end up untouched under Options.Args(). A token
// that does match a flag pattern but no rule fails parsing with
// ErrUnrecognizedOption, handled per the parser's ErrorHandling policy.
func (p *Parser) Parse(args []string) (Options, error) {
	options, err := p.parse(args)
	if err != nil {
		switch p.errorHandling {
		case ContinueOnError:
			return nil, err
		case ExitOnError:
			_, _ = fmt.Fprintln(p.Output(), err.Error())
			os.Exit(2)
		case PanicOnError:
			panic(err)
		}
		return nil, err
	}
	return options, nil
}

func (p *Parser) parse(args []string) (Options, error) {
	normalized := cmdargs.NewArgs(args).Normalize().Args
	options := Options{ArgumentsKey: []string{}}

	for i := 0; i < len(normalized); i++ {
		arg := normalized[i]
		rule, found := p.lookupRule(arg)
		switch {
		case found && rule.HasArgument:
			// The next token is consumed verbatim, even if it looks
			// like a flag. A flag at the very end gets an empty value.
			var value string
			if i++; i < len(normalized) {
				value = normalized[i]
			}
			if rule.IsList {
				options[rule.Name] = append(options.Strings(rule.Name), value)
			} else {
				options[rule.Name] = value
			}
		case found:
			options[rule.Name] = true
		case cmdargs.ClassifyToken(arg) != cmdargs.RoleArg:
			return nil, fmt.Errorf("%w: %s", ErrUnrecognizedOption, arg)
		default:
			// First non-flag token: it and the whole remainder are
			// positional, even tokens that would match a rule.
			options[ArgumentsKey] = normalized[i:]
			return options, nil
		}
	}
	return options, nil
}

// lookupRule returns the first rule in declaration order whose short or
// long flag equals arg.
func (p *Parser) lookupRule(arg string) (Rule, bool) {
	for _, rule := range p.rules {
		if (rule.ShortFlag != "" && rule.ShortFlag == arg) || rule.LongFlag == arg {
			return rule, true
		}
	}
	return Rule{}, false
}
