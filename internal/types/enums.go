package types

type ManifestKind string

const (
	ManifestKindRequirements ManifestKind = "requirements"
	ManifestKindPyProject    ManifestKind = "pyproject"
)

type SpecKind string

const (
	SpecKindProject SpecKind = "project"
)

type RequirementState string

const (
	RequirementStateSatisfied RequirementState = "satisfied"
	RequirementStateMissing   RequirementState = "missing"
	RequirementStateMismatch  RequirementState = "mismatch"
)
