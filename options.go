package optparse

// ArgumentsKey is the reserved Options key holding the positional
// arguments left after flag parsing stopped.
const ArgumentsKey = "arguments"

// Options is the result of a single Parse call: rule names mapped to
// parsed values. A value is true for a presence flag, a string for an
// argument-taking flag (last occurrence wins) or a []string for a list
// flag (occurrences accumulate in order). ArgumentsKey is always set.
type Options map[string]any

// Bool reports whether the presence flag name was passed.
func (o Options) Bool(name string) bool {
	v, ok := o[name].(bool)
	return ok && v
}

// String returns the value of the argument-taking flag name,
// or "" if it was not passed.
func (o Options) String(name string) string {
	v, _ := o[name].(string)
	return v
}

// Strings returns the accumulated values of the list flag name,
// nil if it was not passed.
func (o Options) Strings(name string) []string {
	v, _ := o[name].([]string)
	return v
}

// Args returns the positional arguments. Never nil.
func (o Options) Args() []string {
	v, _ := o[ArgumentsKey].([]string)
	return v
}
