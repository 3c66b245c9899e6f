package core

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// VenvBinDir returns the scripts directory of a virtual environment
// ("bin" on POSIX, "Scripts" on Windows).
func VenvBinDir(venvDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvDir, "Scripts")
	}
	return filepath.Join(venvDir, "bin")
}

// VenvPython returns the path of the interpreter inside a virtual
// environment. Invoking this interpreter is what scopes activation to a
// single child process.
func VenvPython(venvDir string) string {
	name := "python"
	if runtime.GOOS == "windows" {
		name = "python.exe"
	}
	return filepath.Join(VenvBinDir(venvDir), name)
}

// BuildScopedEnv derives the child-process environment for an activated
// virtual environment from a base environment. The parent environment
// is never mutated: VIRTUAL_ENV is set, the venv scripts directory is
// prepended to PATH, and PYTHONHOME is dropped because it overrides the
// venv's interpreter prefix. Extra entries win over base entries.
func BuildScopedEnv(venvDir string, base []string, extra map[string]string) []string {
	merged := map[string]string{}
	for _, entry := range base {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		merged[key] = value
	}
	delete(merged, "PYTHONHOME")
	merged["VIRTUAL_ENV"] = venvDir

	binDir := VenvBinDir(venvDir)
	if path, ok := merged["PATH"]; ok && path != "" {
		merged["PATH"] = binDir + string(os.PathListSeparator) + path
	} else {
		merged["PATH"] = binDir
	}

	for key, value := range extra {
		if strings.TrimSpace(key) == "" {
			continue
		}
		merged[key] = value
	}

	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	env := make([]string, 0, len(keys))
	for _, key := range keys {
		env = append(env, key+"="+merged[key])
	}
	return env
}
