package resolver

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Target is a resolved inspect argument: the module to load from and the
// package pattern, relative to ModuleRoot, that selects the requested tree.
type Target struct {
	ModuleRoot string
	Pattern    string
}

// Resolve turns a local directory (empty means ".") into a Target. Remote
// URLs are rejected; only local source trees can be inspected.
func Resolve(input string, logger *slog.Logger) (Target, error) {
	if input == "" {
		input = "."
	}
	if isRemote(input) {
		return Target{}, fmt.Errorf("remote sources are not supported: %s", input)
	}

	absPath, err := filepath.Abs(input)
	if err != nil {
		return Target{}, fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return Target{}, fmt.Errorf("stat %s: %w", absPath, err)
	}
	if !info.IsDir() {
		return Target{}, fmt.Errorf("%s is not a directory", absPath)
	}

	modRoot, err := findModuleRoot(absPath)
	if err != nil {
		return Target{}, err
	}

	pattern, err := packagePattern(modRoot, absPath)
	if err != nil {
		return Target{}, err
	}

	logger.Info("resolved local directory", "input", input, "module_root", modRoot, "pattern", pattern)
	return Target{ModuleRoot: modRoot, Pattern: pattern}, nil
}

func isRemote(input string) bool {
	return strings.HasPrefix(input, "http://") ||
		strings.HasPrefix(input, "https://") ||
		strings.HasPrefix(input, "git@")
}

func findModuleRoot(dir string) (string, error) {
	current := dir
	for {
		goMod := filepath.Join(current, "go.mod")
		if _, err := os.Stat(goMod); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("no go.mod found in %s or any parent directory", dir)
		}
		current = parent
	}
}

// packagePattern builds a "./sub/dir/..." pattern for dir relative to modRoot.
func packagePattern(modRoot, dir string) (string, error) {
	rel, err := filepath.Rel(modRoot, dir)
	if err != nil {
		return "", fmt.Errorf("relating %s to module root: %w", dir, err)
	}
	if rel == "." {
		return "./...", nil
	}
	return "./" + filepath.ToSlash(rel) + "/...", nil
}
