package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyboot/internal/types"
)

func TestEvaluateRequirements(t *testing.T) {
	reqs := []types.Requirement{
		{Name: "awsiotsdk", Specifier: ">=1.0"},
		{Name: "python-dotenv"},
		{Name: "requests", Specifier: "==2.31.0"},
		{Name: "absent-pkg"},
	}
	installed := []types.InstalledPackage{
		{Name: "awsiotsdk", Version: "1.21.0"},
		{Name: "python-dotenv", Version: "1.0.1"},
		{Name: "requests", Version: "2.28.2"},
	}

	statuses, err := EvaluateRequirements(reqs, installed)
	require.NoError(t, err)
	require.Len(t, statuses, 4)

	assert.Equal(t, types.RequirementStateSatisfied, statuses[0].State)
	assert.Equal(t, "1.21.0", statuses[0].Installed)
	assert.Equal(t, types.RequirementStateSatisfied, statuses[1].State)
	assert.Equal(t, types.RequirementStateMismatch, statuses[2].State)
	assert.Equal(t, "2.28.2", statuses[2].Installed)
	assert.Equal(t, types.RequirementStateMissing, statuses[3].State)
}

func TestEvaluateRequirementsCompatibleRelease(t *testing.T) {
	statuses, err := EvaluateRequirements(
		[]types.Requirement{{Name: "paho-mqtt", Specifier: "~=1.6"}},
		[]types.InstalledPackage{{Name: "paho-mqtt", Version: "1.6.1"}},
	)
	require.NoError(t, err)
	assert.Equal(t, types.RequirementStateSatisfied, statuses[0].State)
}

func TestEvaluateRequirementsInvalidSpecifier(t *testing.T) {
	_, err := EvaluateRequirements(
		[]types.Requirement{{Name: "requests", Specifier: ">>nope"}},
		[]types.InstalledPackage{{Name: "requests", Version: "2.31.0"}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requests")
}

func TestUnsatisfied(t *testing.T) {
	statuses := []types.RequirementStatus{
		{State: types.RequirementStateSatisfied},
		{State: types.RequirementStateMissing},
		{State: types.RequirementStateMismatch},
	}
	assert.Len(t, Unsatisfied(statuses), 2)
	assert.Empty(t, Unsatisfied(statuses[:1]))
}

func TestParseSpecifier(t *testing.T) {
	require.NoError(t, ParseSpecifier(""))
	require.NoError(t, ParseSpecifier(">=1.0,<2"))
	require.Error(t, ParseSpecifier("not-a-spec"))
}
