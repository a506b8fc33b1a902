package optparse

import (
	"fmt"
	"strings"
)

// Help renders the usage listing: the banner (when set) followed by a
// blank line, an "Available options:" header and one line per rule in
// declaration order. Long flags are padded to the width of the longest
// long flag; rules without a short flag get blank padding in its place.
func (p *Parser) Help() string {
	var b strings.Builder
	if p.banner != "" {
		b.WriteString(p.banner)
		b.WriteString("\n\n")
	}
	b.WriteString("Available options:\n")

	longFlagWidth := 0
	for _, rule := range p.rules {
		if len(rule.LongFlag) > longFlagWidth {
			longFlagWidth = len(rule.LongFlag)
		}
	}
	for _, rule := range p.rules {
		shortFlag := strings.Repeat(" ", 4)
		if rule.ShortFlag != "" {
			shortFlag = rule.ShortFlag + ", "
		}
		_, _ = fmt.Fprintf(&b, "  %s%-*s  %s\n", shortFlag, longFlagWidth, rule.LongFlag, rule.Description)
	}
	return b.String()
}
