package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"pyboot/internal/ports"
	"pyboot/internal/shared"
	"pyboot/internal/types"
)

// ManifestFileAdapter reads declared dependencies from requirements.txt
// style files, delegating pyproject.toml files to the pyproject parser.
type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) Kind(path string) types.ManifestKind {
	if filepath.Base(path) == "pyproject.toml" {
		return types.ManifestKindPyProject
	}
	return types.ManifestKindRequirements
}

func (a ManifestFileAdapter) Load(path string) ([]types.Requirement, error) {
	if a.Kind(path) == types.ManifestKindPyProject {
		return loadPyProject(path)
	}
	seen := map[string]struct{}{}
	return loadRequirementsFile(path, seen)
}

// loadRequirementsFile parses one requirements file, following -r
// includes recursively. seen guards against include cycles.
func loadRequirementsFile(path string, seen map[string]struct{}) ([]types.Requirement, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if _, ok := seen[abs]; ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("requirements include cycle at %s", path))
	}
	seen[abs] = struct{}{}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("manifest not found: %s", path)).
			WithCause(err)
	}

	var reqs []types.Requirement
	for lineNum, raw := range strings.Split(string(content), "\n") {
		line := stripInlineComment(strings.TrimSpace(raw))
		if line == "" {
			continue
		}
		if include, ok := includeTarget(line); ok {
			includePath := include
			if !filepath.IsAbs(includePath) {
				includePath = filepath.Join(filepath.Dir(path), includePath)
			}
			nested, err := loadRequirementsFile(includePath, seen)
			if err != nil {
				return nil, err
			}
			reqs = append(reqs, nested...)
			continue
		}
		// Other pip options (--index-url, -e, hashes) are pip's
		// business, not the manifest's declared packages.
		if strings.HasPrefix(line, "-") {
			continue
		}
		req, err := parseRequirementLine(line, path, lineNum+1)
		if err != nil {
			return nil, err
		}
		if req.Name == "" {
			continue
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func stripInlineComment(line string) string {
	if strings.HasPrefix(line, "#") {
		return ""
	}
	if idx := strings.Index(line, " #"); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

func includeTarget(line string) (string, bool) {
	for _, prefix := range []string{"-r ", "--requirement "} {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", false
}

// specifier operators ordered so two-character operators match before
// their one-character prefixes.
var specifierOps = []string{"===", "==", "!=", "~=", ">=", "<=", ">", "<"}

// parseRequirementLine splits a PEP 508-lite requirement into a
// normalized name and its raw specifier set. Extras and environment
// markers are stripped; the specifier is validated as PEP 440.
func parseRequirementLine(line string, source string, lineNum int) (types.Requirement, error) {
	if idx := strings.Index(line, ";"); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}
	if idx := strings.Index(line, "["); idx >= 0 {
		end := strings.Index(line, "]")
		if end < idx {
			return types.Requirement{}, manifestLineError(source, lineNum, "unterminated extras bracket")
		}
		line = strings.TrimSpace(line[:idx] + line[end+1:])
	}
	if line == "" {
		return types.Requirement{}, nil
	}

	name := line
	specifier := ""
	opIdx := -1
	for _, op := range specifierOps {
		if idx := strings.Index(line, op); idx >= 0 && (opIdx == -1 || idx < opIdx) {
			opIdx = idx
		}
	}
	if opIdx >= 0 {
		name = strings.TrimSpace(line[:opIdx])
		specifier = strings.TrimSpace(line[opIdx:])
	}
	if name == "" {
		return types.Requirement{}, manifestLineError(source, lineNum, "missing package name")
	}
	for _, r := range name {
		if !isPipNameRune(r) {
			return types.Requirement{}, manifestLineError(source, lineNum, fmt.Sprintf("invalid package name %q", name))
		}
	}
	if specifier != "" {
		if _, err := pep440.NewSpecifiers(specifier); err != nil {
			return types.Requirement{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("%s:%d: invalid version specifier %q", source, lineNum, specifier)).
				WithCause(err)
		}
	}
	return types.Requirement{
		Name:      shared.NormalizePipName(name),
		Specifier: specifier,
		Source:    fmt.Sprintf("%s:%d", source, lineNum),
	}, nil
}

func manifestLineError(source string, lineNum int, msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s:%d: %s", source, lineNum, msg))
}

func isPipNameRune(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	if r >= 'A' && r <= 'Z' {
		return true
	}
	if r >= '0' && r <= '9' {
		return true
	}
	return r == '-' || r == '_' || r == '.'
}

var _ ports.ManifestPort = ManifestFileAdapter{}
