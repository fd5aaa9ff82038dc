package deps

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolve maps an import specifier found in a stylesheet to the concrete
// file it denotes, following the Sass partial and index conventions.
// The specifier is resolved relative to fromDir. A miss returns the empty
// string; unresolvable specifiers are an expected outcome, not an error.
func Resolve(fromDir, specifier string) string {
	specifier = strings.TrimSpace(specifier)
	if specifier == "" {
		return ""
	}

	// Remote and package-manager specifiers are out of scope
	if strings.HasPrefix(specifier, "http://") ||
		strings.HasPrefix(specifier, "https://") ||
		strings.HasPrefix(specifier, "~") {
		return ""
	}

	base := filepath.Join(fromDir, specifier)
	dir := filepath.Dir(base)
	name := filepath.Base(base)

	candidates := []string{
		base,
		base + ".scss",
		filepath.Join(dir, "_"+name+".scss"),
		filepath.Join(dir, "_"+name),
		filepath.Join(base, "_index.scss"),
		filepath.Join(base, "index.scss"),
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return NormalizePath(candidate)
		}
	}

	return ""
}

// NormalizePath returns the cleaned absolute form of a path. Paths are
// compared case-sensitively; lowercasing would alias distinct files on
// case-sensitive filesystems.
func NormalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return filepath.Clean(abs)
}
