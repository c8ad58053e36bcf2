// Package fileutils provides the small file operations shared by the stores
// and commands.
package fileutils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/spend-tracker/internal/models"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if dirPath == "" || DirectoryExists(dirPath) {
		return nil
	}
	if err := os.MkdirAll(dirPath, models.PermissionDirectory); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// EnsureParentDirectory creates the directory that will hold filePath.
func EnsureParentDirectory(filePath string) error {
	return EnsureDirectoryExists(filepath.Dir(filePath))
}

// IsEmptyFile reports whether a file is missing or has no content.
func IsEmptyFile(filePath string) (bool, error) {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", filePath, err)
	}
	return info.Size() == 0, nil
}

// ReadLines returns every line of r without line terminators.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return lines, nil
}

// ReadFileLines opens filePath, or stdin when filePath is "-", and returns its lines.
func ReadFileLines(filePath string) ([]string, error) {
	if filePath == "-" {
		return ReadLines(os.Stdin)
	}

	file, err := os.Open(filePath) // #nosec G304 -- path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return ReadLines(file)
}
