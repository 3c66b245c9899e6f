package types

type Metadata struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// ProjectDefaults provides per-project defaults that the CLI and
// application layer use when a value is not explicitly provided via
// flags or environment variables. Embedding defaults in the project
// spec means a checked-out project bootstraps with a bare `pyboot up`.
type ProjectDefaults struct {
	Workdir    string   `yaml:"workdir,omitempty"`
	Venv       string   `yaml:"venv,omitempty"`
	Python     string   `yaml:"python,omitempty"`
	Manifest   string   `yaml:"manifest,omitempty"`
	Entrypoint string   `yaml:"entrypoint,omitempty"`
	Args       []string `yaml:"args,omitempty"`
	IndexURL   string   `yaml:"index_url,omitempty"`
	EnvFile    string   `yaml:"env_file,omitempty"`
}

// ProjectSpec is the optional pyboot.yaml file at the root of a
// project directory.
type ProjectSpec struct {
	APIVersion string            `yaml:"api_version"`
	Kind       SpecKind          `yaml:"kind"`
	Metadata   Metadata          `yaml:"metadata"`
	Defaults   ProjectDefaults   `yaml:"defaults,omitempty"`
	Env        map[string]string `yaml:"env,omitempty"`
}
