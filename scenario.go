package caseforge

import (
	"fmt"
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// ScenarioCase is one high-level scenario-based test case.
type ScenarioCase struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Preconditions  []string `json:"preconditions"`
	Steps          []string `json:"steps"`
	ExpectedResult string   `json:"expected_result"`
	Priority       string   `json:"priority"`
	Tags           []string `json:"tags"`
}

// GenerateScenarioCases creates the four canned scenario-style cases:
// happy path, missing required data, invalid data and boundary conditions.
// Deterministic for a given scenario and platform.
func GenerateScenarioCases(scenario, platform string) ([]*ScenarioCase, error) {
	scenario = strings.TrimSpace(scenario)
	if scenario == "" {
		return nil, errorutil.NewWithTag("caseforge", "no scenario provided to generate test cases")
	}
	platform = strings.ToLower(strings.TrimSpace(platform))
	if platform == "" {
		platform = "generic"
	}

	prefix := IDPrefix(scenario)
	vars := map[string]interface{}{"scenario": scenario}
	tagBase := []string{platform}

	happy := &ScenarioCase{
		ID:    fmt.Sprintf("%s-001", prefix),
		Title: scenario + " - happy path",
		Preconditions: []string{
			"System is available and responsive.",
			"All required preconditions for the scenario are fulfilled (data, configuration, permissions).",
		},
		Steps: []string{
			Replace("Open the application or module where '{{scenario}}' is performed.", vars),
			Replace("Navigate to the screen or API endpoint responsible for '{{scenario}}'.", vars),
			"Provide all required inputs with valid and typical data values.",
			Replace("Trigger the main action to execute '{{scenario}}' (e.g. click button, call API).", vars),
			"Wait for the system to process the request.",
			"Observe the UI, logs, or API response returned by the system.",
		},
		ExpectedResult: Replace("The system successfully completes '{{scenario}}' without errors. "+
			"The expected UI changes, data updates, or API responses are visible, "+
			"and logs show no critical errors.", vars),
		Priority: "High",
		Tags:     append([]string{"happy_path"}, tagBase...),
	}

	missing := &ScenarioCase{
		ID:    fmt.Sprintf("%s-002", prefix),
		Title: scenario + " - missing required data",
		Preconditions: []string{
			"System is available.",
		},
		Steps: []string{
			Replace("Open the part of the application where '{{scenario}}' would normally be executed.", vars),
			"Identify fields or parameters that are mandatory according to the specification.",
			"Leave one or more mandatory fields empty or unset.",
			Replace("Attempt to execute '{{scenario}}' (e.g. click save/submit or call API).", vars),
			"Observe any validation messages or error indicators.",
		},
		ExpectedResult: "The system does not proceed with the operation. " +
			"Clear validation messages are displayed for all missing required fields, " +
			"indicating what needs to be provided. No data is saved and no partial " +
			"or corrupted state is created.",
		Priority: "Medium",
		Tags:     append([]string{"validation", "negative"}, tagBase...),
	}

	invalid := &ScenarioCase{
		ID:    fmt.Sprintf("%s-003", prefix),
		Title: scenario + " - invalid data values",
		Preconditions: []string{
			"System is available.",
		},
		Steps: []string{
			Replace("Open the screen or endpoint where '{{scenario}}' is performed.", vars),
			"Identify input fields or parameters that have format or range constraints.",
			"Enter invalid, out-of-range, or syntactically incorrect values (e.g. wrong format, too long, negative where not allowed).",
			Replace("Attempt to execute '{{scenario}}' with these invalid values.", vars),
			"Observe the system response and any messages shown to the user or API client.",
		},
		ExpectedResult: "The system rejects invalid data inputs. User-friendly error or validation " +
			"messages are displayed, no data corruption occurs, and the system remains " +
			"stable without crashes or unhandled exceptions.",
		Priority: "High",
		Tags:     append([]string{"negative", "data_validation"}, tagBase...),
	}

	boundary := &ScenarioCase{
		ID:    fmt.Sprintf("%s-004", prefix),
		Title: scenario + " - boundary and edge conditions",
		Preconditions: []string{
			"System is available.",
			"Boundary values and limits for inputs are known (e.g. min/max length, numeric ranges).",
		},
		Steps: []string{
			Replace("Open the relevant part of the application for '{{scenario}}'.", vars),
			"Identify fields or parameters with defined limits (length, range, list size, etc.).",
			"Test with minimum allowed values.",
			"Test with maximum allowed values.",
			"If applicable, test just-below-minimum and just-above-maximum values.",
			Replace("Attempt to perform '{{scenario}}' with each of these values.", vars),
		},
		ExpectedResult: "The system correctly enforces boundary conditions. " +
			"Values within the allowed range are accepted and processed correctly, " +
			"while values outside the allowed range are rejected with appropriate messages. " +
			"System stability is maintained throughout testing.",
		Priority: "Medium",
		Tags:     append([]string{"boundary", "edge_case"}, tagBase...),
	}

	return []*ScenarioCase{happy, missing, invalid, boundary}, nil
}
