package testhelpers

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireGit skips the test when no git binary is on PATH.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// ExpectPushedUpstream asserts that branch exists on the bare remote at the
// same commit as locally and that remoteName is recorded as its upstream.
func ExpectPushedUpstream(t *testing.T, repo *GitRepo, remoteDir, remoteName, branch string) {
	t.Helper()

	local, err := repo.BranchHash(branch)
	require.NoError(t, err)

	remote, err := repo.RemoteBranchHash(remoteDir, branch)
	require.NoError(t, err, "branch %s should exist on the remote", branch)
	require.Equal(t, local, remote)

	upstream, err := repo.UpstreamRemote(branch)
	require.NoError(t, err)
	require.Equal(t, remoteName, upstream)
}
