package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Commit records the staged changes with the given message.
func Commit(message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("commit message cannot be empty")
	}

	cmd := exec.Command("git", "commit", "-m", message)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to create commit: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
