package services

import (
	"os"
	"os/exec"
	"path/filepath"
)

// executableCandidates lists where name may be installed, PATH first.
// Packaged desktop apps don't inherit the user's shell PATH.
func executableCandidates(name string) []string {
	homeDir, _ := os.UserHomeDir()

	searchPaths := []string{
		"/opt/homebrew/bin",                        // Homebrew (Apple Silicon)
		"/usr/local/bin",                           // Homebrew (Intel) / system
		"/usr/bin",                                 // System
		"/opt/anaconda3/bin",                       // Anaconda Python
		filepath.Join(homeDir, "miniconda3", "bin"),
		filepath.Join(homeDir, ".local", "bin"), // pip user install
	}

	var found []string
	if path, err := exec.LookPath(name); err == nil {
		found = append(found, path)
	}
	for _, dir := range searchPaths {
		fullPath := filepath.Join(dir, name)
		if _, err := os.Stat(fullPath); err == nil {
			found = append(found, fullPath)
		}
	}
	return found
}
