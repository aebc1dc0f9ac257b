package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
)

// Manager wraps the git binary for the commit and backup conveniences.
// Every operation shells out; nothing here maintains state beyond the
// repository root.
type Manager struct {
	repoRoot string
}

func NewManager() *Manager {
	repoRoot, _ := os.Getwd()
	return &Manager{repoRoot: repoRoot}
}

func NewManagerWithRepoRoot(repoRoot string) *Manager {
	return &Manager{repoRoot: repoRoot}
}

func (m *Manager) GetRepoRoot() string {
	return m.repoRoot
}

func (m *Manager) HasGitRepo() bool {
	_, err := os.Stat(filepath.Join(m.repoRoot, ".git"))
	return err == nil
}

func (m *Manager) InitRepo() error {
	cmd := exec.Command("git", "init")
	cmd.Dir = m.repoRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git init failed (exit status %d): %w\nOutput: %s", getExitCode(err), err, string(output))
	}
	return nil
}

// HasChanges reports whether the working tree has anything to commit,
// staged or not.
func (m *Manager) HasChanges() (bool, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = m.repoRoot
	output, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("failed to get git status: %w", err)
	}
	return len(strings.TrimSpace(string(output))) > 0, nil
}

// CommitAll stages everything and commits with the given message.
func (m *Manager) CommitAll(message string) error {
	if !m.HasGitRepo() {
		return fmt.Errorf("not a git repository: %s", m.repoRoot)
	}

	addCmd := exec.Command("git", "add", "-A")
	addCmd.Dir = m.repoRoot
	if err := addCmd.Run(); err != nil {
		return fmt.Errorf("git add failed: %w", err)
	}

	commitCmd := exec.Command("git", "commit", "-m", message)
	commitCmd.Dir = m.repoRoot
	output, err := commitCmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git commit failed (exit status %d): %w\nOutput: %s", getExitCode(err), err, string(output))
	}
	return nil
}

// Backup commits any pending changes and pushes the branch to the remote.
func (m *Manager) Backup(remote, branch, message string) error {
	dirty, err := m.HasChanges()
	if err != nil {
		return err
	}

	if dirty {
		if err := m.CommitAll(message); err != nil {
			return err
		}
	}

	pushCmd := exec.Command("git", "push", remote, branch)
	pushCmd.Dir = m.repoRoot
	output, err := pushCmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git push failed (exit status %d): %w\nOutput: %s", getExitCode(err), err, string(output))
	}
	return nil
}

func (m *Manager) CurrentBranch() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = m.repoRoot
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

func getExitCode(err error) int {
	if exitErr, ok := err.(*exec.ExitError); ok {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			return status.ExitStatus()
		}
	}
	return -1
}
