package types

// Requirement is one declared dependency from a manifest. Name is
// normalized per PEP 503; Specifier holds the raw PEP 440 specifier set
// (e.g. ">=2.28,<3") or is empty when the requirement is unpinned.
type Requirement struct {
	Name      string
	Specifier string
	Source    string
}

// InstalledPackage is one entry from the environment's installed-package
// list, name normalized per PEP 503.
type InstalledPackage struct {
	Name    string
	Version string
}

// EnvironmentInfo describes an existing virtual environment.
type EnvironmentInfo struct {
	Path          string
	PythonVersion string
	BasePrefix    string
}

// RequirementStatus pairs a manifest requirement with its observed
// install state inside the environment.
type RequirementStatus struct {
	Requirement Requirement
	State       RequirementState
	Installed   string
}
