package caseforge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateScenarioCases(t *testing.T) {
	cases, err := GenerateScenarioCases("bluetooth pairing and reconnection", "automotive")
	require.Nil(t, err)
	require.Len(t, cases, 4)

	require.Equal(t, "BLUETOOTH-001", cases[0].ID)
	require.Equal(t, "BLUETOOTH-002", cases[1].ID)
	require.Equal(t, "BLUETOOTH-003", cases[2].ID)
	require.Equal(t, "BLUETOOTH-004", cases[3].ID)

	require.Contains(t, cases[0].Title, "happy path")
	require.Contains(t, cases[1].Title, "missing required data")
	require.Contains(t, cases[2].Title, "invalid data values")
	require.Contains(t, cases[3].Title, "boundary and edge conditions")

	for _, c := range cases {
		require.NotEmpty(t, c.Preconditions)
		require.NotEmpty(t, c.Steps)
		require.NotEmpty(t, c.ExpectedResult)
		require.NotEmpty(t, c.Priority)
		require.Contains(t, c.Tags, "automotive")
	}
	require.Contains(t, cases[0].Steps[0], "'bluetooth pairing and reconnection'")
}

func TestGenerateScenarioCasesEmpty(t *testing.T) {
	_, err := GenerateScenarioCases("   ", "web")
	require.NotNil(t, err)
}

func TestGenerateScenarioCasesDefaultPlatform(t *testing.T) {
	cases, err := GenerateScenarioCases("login", "")
	require.Nil(t, err)
	require.Contains(t, cases[0].Tags, "generic")
}

func TestIDPrefix(t *testing.T) {
	testcases := []struct {
		name     string
		expected string
	}{
		{name: "bluetooth pairing and reconnection", expected: "BLUETOOTH"},
		{name: "login", expected: "LOGIN"},
		{name: "vehicle_integration", expected: "VEHICLE"},
		{name: "performance", expected: "PERFORMANC"},
		{name: "!!!", expected: "SCENARIO"},
		{name: "", expected: "SCENARIO"},
	}
	for _, tc := range testcases {
		require.Equal(t, tc.expected, IDPrefix(tc.name), "name %q", tc.name)
	}
}

func TestFileSlug(t *testing.T) {
	require.Equal(t, "bluetooth_pairing", FileSlug("  Bluetooth   Pairing "))
	require.Equal(t, "test_cases", FileSlug("   "))
}
