package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveRuntimePath turns a configured directory into an absolute path.
// Relative paths are anchored at the executable's directory so the service
// behaves the same whether launched from a shell or a process manager.
func ResolveRuntimePath(raw string, fallbackSubdir string) string {
	dir := strings.TrimSpace(raw)
	if dir == "" {
		dir = strings.TrimSpace(fallbackSubdir)
	}
	base := runtimeBaseDir()
	if dir == "" {
		return base
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Clean(filepath.Join(base, dir))
}

func runtimeBaseDir() string {
	if exe, err := os.Executable(); err == nil && strings.TrimSpace(exe) != "" {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil && strings.TrimSpace(resolved) != "" {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil && strings.TrimSpace(wd) != "" {
		return wd
	}
	return "."
}
