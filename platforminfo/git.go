// platforminfo/git.go
package platforminfo

import "strings"

// UnknownCommit is stamped into report metadata when the current git commit
// cannot be determined.
const UnknownCommit = "unknown"

const commitSHALength = 12

// GitCommitSHA returns the first 12 characters of the current git commit
// hash, or UnknownCommit when the lookup fails for any reason.
func GitCommitSHA(env Environment) string {
	out, err := env.RunCommand("git", "rev-parse", "HEAD")
	if err != nil {
		return UnknownCommit
	}
	sha := strings.TrimSpace(string(out))
	if sha == "" {
		return UnknownCommit
	}
	if len(sha) > commitSHALength {
		sha = sha[:commitSHALength]
	}
	return sha
}
