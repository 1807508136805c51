package walker

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	titleFile  = ".title"
	ignoreFile = ".ignore"
	orderFile  = ".order"
	labelFile  = ".label"
	dpiFile    = ".dpi"
)

// FolderConfig holds the dot-file settings of a single folder.
type FolderConfig struct {
	Title     string
	Order     []string
	Labels    map[string]string
	DPI       int
	IgnoreAll bool
	Ignored   map[string]bool
}

// loadFolderConfig reads the recognized dot-files of dir. Missing files are
// fine; unreadable files and malformed lines are warned about and skipped.
func loadFolderConfig(dir string, warn warnFunc) *FolderConfig {
	cfg := &FolderConfig{
		Labels:  map[string]string{},
		Ignored: map[string]bool{},
	}

	if title, ok := readDotFile(dir, titleFile, warn); ok {
		cfg.Title = strings.TrimSpace(title)
	}

	if content, ok := readDotFile(dir, ignoreFile, warn); ok {
		names := splitLines(content)
		if len(names) == 0 {
			cfg.IgnoreAll = true
		}
		for _, name := range names {
			cfg.Ignored[name] = true
		}
	}

	if content, ok := readDotFile(dir, orderFile, warn); ok {
		cfg.Order = splitLines(content)
	}

	if content, ok := readDotFile(dir, labelFile, warn); ok {
		for _, line := range splitLines(content) {
			key, value, found := strings.Cut(line, "=")
			if !found {
				warn("Malformed .label line in %s: %q", dir, line)
				continue
			}
			cfg.Labels[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}

	if content, ok := readDotFile(dir, dpiFile, warn); ok {
		dpi, err := strconv.Atoi(strings.TrimSpace(content))
		if err != nil || dpi <= 0 {
			warn("Invalid .dpi value in %s: %q", dir, strings.TrimSpace(content))
		} else {
			cfg.DPI = dpi
		}
	}

	return cfg
}

// readDotFile returns the file content and whether the file exists. A file
// that exists but cannot be read is treated as absent.
func readDotFile(dir, name string, warn warnFunc) (string, bool) {
	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			warn("Cannot read %s: %v", filepath.Join(dir, name), err)
		}
		return "", false
	}
	return string(content), true
}

// splitLines returns the non-empty, whitespace-trimmed lines of content.
func splitLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
