package cmdargs

import "regexp"

type Role int

func (r Role) Has(role Role) bool {
	return r&role != 0
}

const (
	// RoleLongFlag is a double-dash token like "--output" or "--source-map"
	RoleLongFlag Role = 1 << iota
	// RoleShortFlag is a single-dash, single-character token like "-o"
	RoleShortFlag = 1 << iota
	// RoleMerged is a single-dash bundle of short flags like "-wl"
	RoleMerged = 1 << iota
	// RoleArg is any token that matches no flag pattern
	RoleArg = 1 << iota
)

var (
	longFlagRegexp  = regexp.MustCompile(`^--\w[\w-]*$`)
	shortFlagRegexp = regexp.MustCompile(`^-\w$`)
	mergedRegexp    = regexp.MustCompile(`^-\w{2,}$`)
)

// ClassifyToken reports the role of a single argument token.
// Bare "--" and "-" match no flag pattern and classify as RoleArg,
// as does "--name=value" (inline values are not part of the grammar).
func ClassifyToken(arg string) Role {
	switch {
	case longFlagRegexp.MatchString(arg):
		return RoleLongFlag
	case shortFlagRegexp.MatchString(arg):
		return RoleShortFlag
	case mergedRegexp.MatchString(arg):
		return RoleMerged
	}
	return RoleArg
}
