package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitp.dev/gitp/internal/git"
)

func TestUpstreamPushArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		branch   string
		extra    []string
		expected []string
	}{
		{
			name:     "extra flag follows the branch",
			branch:   "main",
			extra:    []string{"--force"},
			expected: []string{"-u", "origin", "main", "--force"},
		},
		{
			name:     "no extra args",
			branch:   "main",
			expected: []string{"-u", "origin", "main"},
		},
		{
			name:     "order of extra args is kept",
			branch:   "feature/x",
			extra:    []string{"--tags", "-v"},
			expected: []string{"-u", "origin", "feature/x", "--tags", "-v"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, git.UpstreamPushArgs("origin", tt.branch, tt.extra))
		})
	}
}

func TestUpstreamPushArgsDoesNotAliasExtra(t *testing.T) {
	t.Parallel()

	extra := make([]string, 1, 8)
	extra[0] = "--tags"
	args := git.UpstreamPushArgs("origin", "main", extra)
	args[3] = "--force"

	require.Equal(t, "--tags", extra[0])
}
