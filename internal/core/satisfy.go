package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"pyboot/internal/types"
)

// versionCache memoizes parsed version objects to avoid repeated parsing
// while evaluating a manifest against the installed-package list.
type versionCache struct {
	pep  map[string]pep440.Version
	spec map[string]pep440.Specifiers
}

func newVersionCache() *versionCache {
	return &versionCache{
		pep:  map[string]pep440.Version{},
		spec: map[string]pep440.Specifiers{},
	}
}

// pepVersion returns a parsed PEP 440 version, caching the result.
func (c *versionCache) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.pep[value] = parsed
	return parsed, nil
}

// pepSpec returns parsed PEP 440 specifiers, caching the result.
func (c *versionCache) pepSpec(value string) (pep440.Specifiers, error) {
	if parsed, ok := c.spec[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.NewSpecifiers(value)
	if err != nil {
		return pep440.Specifiers{}, err
	}
	c.spec[value] = parsed
	return parsed, nil
}

// ParseSpecifier validates a PEP 440 specifier set string. An empty
// specifier is valid and matches any version.
func ParseSpecifier(value string) error {
	if value == "" {
		return nil
	}
	if _, err := pep440.NewSpecifiers(value); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version specifier %q", value)).
			WithCause(err)
	}
	return nil
}

// EvaluateRequirements checks each manifest requirement against the
// installed-package list and reports whether it is missing, installed
// at an incompatible version, or satisfied.
func EvaluateRequirements(reqs []types.Requirement, installed []types.InstalledPackage) ([]types.RequirementStatus, error) {
	versions := map[string]string{}
	for _, pkg := range installed {
		versions[pkg.Name] = pkg.Version
	}
	cache := newVersionCache()
	statuses := make([]types.RequirementStatus, 0, len(reqs))
	for _, req := range reqs {
		version, ok := versions[req.Name]
		if !ok {
			statuses = append(statuses, types.RequirementStatus{
				Requirement: req,
				State:       types.RequirementStateMissing,
			})
			continue
		}
		state := types.RequirementStateSatisfied
		if req.Specifier != "" {
			spec, err := cache.pepSpec(req.Specifier)
			if err != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid version specifier for %s", req.Name)).
					WithCause(err)
			}
			parsed, err := cache.pepVersion(version)
			if err != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid installed version for %s", req.Name)).
					WithCause(err)
			}
			if !spec.Check(parsed) {
				state = types.RequirementStateMismatch
			}
		}
		statuses = append(statuses, types.RequirementStatus{
			Requirement: req,
			State:       state,
			Installed:   version,
		})
	}
	return statuses, nil
}

// Unsatisfied filters statuses down to the missing and mismatched ones.
func Unsatisfied(statuses []types.RequirementStatus) []types.RequirementStatus {
	var out []types.RequirementStatus
	for _, status := range statuses {
		if status.State != types.RequirementStateSatisfied {
			out = append(out, status)
		}
	}
	return out
}
