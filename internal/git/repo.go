package git

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// IsRepo reports whether the working directory is inside a git repository.
func IsRepo() bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	return cmd.Run() == nil
}

// CurrentBranch returns the short name of the checked-out branch, or the
// "detached-head" sentinel when HEAD is not a symbolic ref.
func CurrentBranch() (string, error) {
	if !IsRepo() {
		return "", fmt.Errorf("not a git repository")
	}

	cmd := exec.Command("git", "symbolic-ref", "--short", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "detached-head", nil
	}
	return strings.TrimSpace(string(output)), nil
}

// StagedDiff returns the diff between the index and HEAD.
func StagedDiff() (string, error) {
	cmd := exec.Command("git", "diff", "--cached")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to read staged diff: %w", err)
	}
	return string(output), nil
}

// RecentCommitTitles returns up to n most recent commit subjects, newest
// first. A repository without commits yields an empty slice, not an error.
func RecentCommitTitles(n int) ([]string, error) {
	cmd := exec.Command("git", "log", "--format=%s", "-n", strconv.Itoa(n))
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to read recent commits: %w", err)
	}

	var titles []string
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			titles = append(titles, line)
		}
	}
	return titles, nil
}
