package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/subosito/gotenv"
)

// LoadEnvFile reads a dotenv file into a map for the child process
// environment. A missing file is only an error when the path was
// explicitly requested; optional lookups pass explicit=false.
func LoadEnvFile(path string, explicit bool) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("env file not found: " + path).
			WithCause(err)
	}
	defer file.Close()
	env, err := gotenv.StrictParse(file)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse env file").
			WithCause(err)
	}
	return env, nil
}
