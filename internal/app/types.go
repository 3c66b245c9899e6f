package app

import "pyboot/internal/types"

type UpRequest struct {
	Workdir        string
	Venv           string
	Python         string
	Manifest       string
	Entrypoint     string
	Args           []string
	IndexURL       string
	EnvFile        string
	SkipPipUpgrade bool
}

type UpResult struct {
	ProjectName string
	VenvDir     string
	Created     bool
	Entrypoint  string
}

type EnsureRequest struct {
	Workdir        string
	Venv           string
	Python         string
	Manifest       string
	IndexURL       string
	SkipPipUpgrade bool
}

type EnsureResult struct {
	ProjectName string
	VenvDir     string
	Created     bool
	Manifest    string
}

type StatusRequest struct {
	Workdir  string
	Venv     string
	Manifest string
}

type StatusResult struct {
	ProjectName   string
	VenvDir       string
	Exists        bool
	PythonVersion string
	Requirements  []types.RequirementStatus
	Unsatisfied   int
}

type ValidateRequest struct {
	Workdir  string
	Manifest string
}

type ValidateResult struct {
	ProjectName  string
	Manifest     string
	Requirements []types.Requirement
}

type CleanRequest struct {
	Workdir string
	Venv    string
}

type CleanResult struct {
	VenvDir string
	Removed bool
}
