// Package testutil provides utilities for testing
package testutil

import (
	"fmt"
	"math/rand"
	"time"
)

// RandomString generates a random string of given length
func RandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// RandomProjectName generates a unique project name for testing
func RandomProjectName() string {
	return fmt.Sprintf("test-proj-%s-%d", RandomString(8), time.Now().UnixNano())
}

// RandomTemplateName generates a unique template name for testing
func RandomTemplateName() string {
	kinds := []string{"python", "go", "node", "rust", "docs"}
	return fmt.Sprintf("%s-%s", kinds[rand.Intn(len(kinds))], RandomString(6))
}

// RandomCommitMessage generates a random commit message
func RandomCommitMessage() string {
	messages := []string{
		"Update project scaffolding",
		"Add initial structure",
		"Fix template rendering",
		"Update documentation",
		"Refactor config loading",
	}
	return messages[rand.Intn(len(messages))] + " " + RandomString(5)
}
