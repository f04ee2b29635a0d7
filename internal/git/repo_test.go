package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepo creates a throwaway repository with one commit and chdirs
// into it for the duration of the test.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	t.Chdir(dir)

	runGit(t, "init", "-b", "master")
	runGit(t, "config", "user.email", "test@example.com")
	runGit(t, "config", "user.name", "Test")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.txt"), []byte("initial content"), 0644))
	runGit(t, "add", "test.txt")
	runGit(t, "commit", "-m", "Initial commit")

	return dir
}

func runGit(t *testing.T, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, output)
}

func TestCurrentBranch(t *testing.T) {
	setupTestRepo(t)

	branch, err := CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "master", branch)
}

func TestCurrentBranchDetachedHead(t *testing.T) {
	setupTestRepo(t)

	runGit(t, "checkout", "--detach", "HEAD")

	branch, err := CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "detached-head", branch)
}

func TestCurrentBranchOutsideRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	t.Chdir(t.TempDir())

	_, err := CurrentBranch()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a git repository")
}

func TestStagedDiff(t *testing.T) {
	dir := setupTestRepo(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.txt"), []byte("modified content"), 0644))
	runGit(t, "add", "test.txt")

	diff, err := StagedDiff()
	require.NoError(t, err)
	assert.Contains(t, diff, "modified content")
}

func TestStagedDiffEmpty(t *testing.T) {
	dir := setupTestRepo(t)

	// Unstaged changes must not show up.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unstaged.txt"), []byte("unstaged"), 0644))

	diff, err := StagedDiff()
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestRecentCommitTitles(t *testing.T) {
	dir := setupTestRepo(t)

	for _, msg := range []string{"feat: second commit", "fix: third commit"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "test.txt"), []byte(msg), 0644))
		runGit(t, "add", "test.txt")
		runGit(t, "commit", "-m", msg)
	}

	titles, err := RecentCommitTitles(3)
	require.NoError(t, err)
	require.Len(t, titles, 3)
	assert.Equal(t, "fix: third commit", titles[0])
	assert.Equal(t, "feat: second commit", titles[1])
	assert.Equal(t, "Initial commit", titles[2])

	titles, err = RecentCommitTitles(2)
	require.NoError(t, err)
	assert.Len(t, titles, 2)
}

func TestCommit(t *testing.T) {
	dir := setupTestRepo(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.txt"), []byte("committed change"), 0644))
	runGit(t, "add", "test.txt")

	require.NoError(t, Commit("feat(test): record staged change"))

	titles, err := RecentCommitTitles(1)
	require.NoError(t, err)
	require.Len(t, titles, 1)
	assert.Equal(t, "feat(test): record staged change", titles[0])
}

func TestCommitEmptyMessage(t *testing.T) {
	err := Commit("   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit message cannot be empty")
}
