package cmdargs

type Args struct {
	Args []string
}

func NewArgs(args []string) Args {
	return Args{
		Args: args,
	}
}

// Normalize returns a new Args where every RoleMerged token is expanded
// in place into its single-character short flags ("-wl" becomes "-w", "-l"),
// preserving the relative order of all tokens. Other tokens pass through
// unchanged. Expansion is blind: it doesn't consult any rule set, so a
// multi-character short flag would be split up too.
func (args Args) Normalize() Args {
	res := make([]string, 0, len(args.Args))
	for _, arg := range args.Args {
		if ClassifyToken(arg).Has(RoleMerged) {
			for _, c := range arg[1:] {
				res = append(res, "-"+string(c))
			}
			continue
		}
		res = append(res, arg)
	}
	return Args{Args: res}
}
