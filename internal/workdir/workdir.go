// Package workdir resolves the roster root directory: the nearest directory
// holding a .duty directory, or the target of a .duty-root redirect file.
package workdir

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	rootFile = ".duty-root"
	dutyDir  = ".duty"
)

// ResolveBaseDir resolves the roster root for baseDir:
//  1. Honor .duty-root in baseDir.
//  2. Walk up from baseDir to the first directory containing .duty.
//
// If no marker is found, it returns baseDir unchanged so that init creates
// the roster there.
func ResolveBaseDir(baseDir string) string {
	if baseDir == "" {
		return baseDir
	}
	baseDir = filepath.Clean(baseDir)

	if resolved, ok := readRootFile(baseDir); ok {
		return resolved
	}

	for dir := baseDir; ; {
		if hasDutyDir(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return baseDir
}

func readRootFile(dir string) (string, bool) {
	content, err := os.ReadFile(filepath.Join(dir, rootFile))
	if err != nil {
		return "", false
	}

	resolved := strings.TrimSpace(string(content))
	if resolved == "" {
		return "", false
	}
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(dir, resolved)
	}
	return filepath.Clean(resolved), true
}

func hasDutyDir(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, dutyDir))
	return err == nil && fi.IsDir()
}
