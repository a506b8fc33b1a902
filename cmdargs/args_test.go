package cmdargs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgs_Normalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		expArgs []string
	}{
		{
			name:    "no merged flags",
			args:    []string{"-w", "--lint", "foo.js"},
			expArgs: []string{"-w", "--lint", "foo.js"},
		},
		{
			name:    "merged bundle expands in place",
			args:    []string{"-wl", "foo.js", "-w"},
			expArgs: []string{"-w", "-l", "foo.js", "-w"},
		},
		{
			name:    "several bundles keep relative order",
			args:    []string{"a", "-xy", "b", "-zq", "--long"},
			expArgs: []string{"a", "-x", "-y", "b", "-z", "-q", "--long"},
		},
		{
			name:    "digits and underscores expand too",
			args:    []string{"-a1_"},
			expArgs: []string{"-a", "-1", "-_"},
		},
		{
			name:    "long flags untouched",
			args:    []string{"--watch", "--source-map"},
			expArgs: []string{"--watch", "--source-map"},
		},
		{
			name:    "non-flag tokens untouched",
			args:    []string{"-w.l", "--", "-"},
			expArgs: []string{"-w.l", "--", "-"},
		},
		{
			name:    "empty input",
			args:    []string{},
			expArgs: []string{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expArgs, NewArgs(tc.args).Normalize().Args)
		})
	}
}

func TestArgs_NormalizeDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	args := []string{"-wl", "foo"}
	NewArgs(args).Normalize()
	require.Equal(t, []string{"-wl", "foo"}, args)
}
