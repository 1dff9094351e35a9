package git

// UpstreamPushArgs builds the arguments for `git push` that publish branch
// to remote and record it as the upstream. Extra arguments follow in order.
func UpstreamPushArgs(remote, branch string, extra []string) []string {
	args := make([]string, 0, 3+len(extra))
	args = append(args, "-u", remote, branch)
	return append(args, extra...)
}
