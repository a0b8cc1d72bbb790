package caseforge

import (
	"fmt"
	"strings"
)

// step templates per field state, rendered with Replace
var stateStepTemplates = map[string]string{
	"Valid":     "Enter a valid value into '{{field}}' (e.g. a correctly formatted and allowed {{lower}}).",
	"Invalid":   "Enter an invalid or not allowed value into '{{field}}' (e.g. wrong format, out-of-range value, or disallowed characters).",
	"Empty":     "Leave the '{{field}}' field empty or do not provide this parameter in the request.",
	"Checked":   "Ensure the '{{field}}' option is enabled/checked before executing the '{{scenario}}' operation.",
	"Unchecked": "Ensure the '{{field}}' option is disabled/unchecked before executing the '{{scenario}}' operation.",
}

// platform specific opening steps, generic platform is the fallback
var platformOpenings = map[string][]string{
	"web": {
		"Launch a supported web browser (e.g. latest Chrome or Firefox).",
		"Navigate to the application's URL and ensure the page loads without errors.",
	},
	"mobile": {
		"Launch the mobile application on a supported device/emulator.",
		"Ensure the app loads to the main screen without crashes.",
	},
	"api": {
		"Prepare an API client (e.g. Postman, curl, or automated test).",
		"Ensure the target environment and endpoint are reachable.",
	},
	"desktop": {
		"Launch the desktop application on a supported operating system.",
		"Ensure the application starts successfully without error dialogs.",
	},
	"automotive": {
		"Ensure the test vehicle or HIL/SIL environment is powered on and in a safe state.",
		"Connect diagnostic tools to the in-vehicle network or test bench as required.",
	},
	"generic": {
		"Open the system under test using the appropriate client or interface.",
		"Navigate to the relevant module for this scenario.",
	},
}

// CombinationCase is one rendered combinational test case. Markdown carries
// a self-contained fragment so many cases can be concatenated into a single
// document without repair.
type CombinationCase struct {
	ID             string     `json:"id"`
	Category       []string   `json:"category"`
	Combination    Assignment `json:"combination"`
	Steps          []string   `json:"steps"`
	ExpectedResult string     `json:"expected_result"`
	Markdown       string     `json:"markdown"`
}

// RenderCase renders one assignment into a test case. seq is the 1-based
// position within the returned page: ids are page-relative, so the same
// combination carries a different id when fetched through a different page.
// Rendering is pure, identical inputs always produce identical output.
func RenderCase(scenario, platform, prefix string, seq int, spec *FieldSpec, assignment Assignment) (*CombinationCase, error) {
	for _, field := range spec.Fields() {
		if _, ok := assignment[field]; !ok {
			return nil, fmt.Errorf("%w: missing field %v", ErrFieldMismatch, field)
		}
	}
	if len(assignment) != len(spec.Fields()) {
		return nil, fmt.Errorf("%w: %v states for %v fields", ErrFieldMismatch, len(assignment), len(spec.Fields()))
	}
	categories := categorize(scenario, spec, assignment)
	steps := buildSteps(scenario, platform, spec, assignment)
	expected := buildExpectedResult(scenario, categories)
	caseID := fmt.Sprintf("%s-%04d", prefix, seq)
	return &CombinationCase{
		ID:             caseID,
		Category:       categories,
		Combination:    assignment,
		Steps:          steps,
		ExpectedResult: expected,
		Markdown:       buildMarkdown(caseID, scenario, categories, spec, assignment, steps, expected),
	}, nil
}

// categorize tags a combination as Positive/Negative/Validation/Edge/Security
// based on its text field states and the scenario wording.
func categorize(scenario string, spec *FieldSpec, assignment Assignment) []string {
	s := strings.ToLower(strings.TrimSpace(scenario))

	var hasInvalid, hasEmpty bool
	invalidCount := 0
	allValidText := len(spec.TextFields) > 0
	for _, field := range spec.TextFields {
		switch assignment[field] {
		case "Invalid":
			hasInvalid = true
			invalidCount++
			allValidText = false
		case "Empty":
			hasEmpty = true
			allValidText = false
		}
	}

	var cats []string
	if allValidText {
		cats = append(cats, "Positive")
	}
	if hasEmpty {
		cats = append(cats, "Negative", "Validation", "Edge")
	}
	if hasInvalid && !hasEmpty {
		cats = append(cats, "Negative")
	}
	if strings.Contains(s, "login") || strings.Contains(s, "auth") || strings.Contains(strings.ReplaceAll(s, "-", " "), "sign in") {
		security := invalidCount >= 2
		for _, field := range spec.TextFields {
			lf := strings.ToLower(field)
			if (lf == "password" || lf == "otp" || lf == "token") && (assignment[field] == "Invalid" || assignment[field] == "Empty") {
				security = true
			}
		}
		if security {
			cats = append(cats, "Security")
		}
	}
	if len(cats) == 0 {
		cats = append(cats, "Positive")
	}
	return cats
}

// buildSteps creates the ordered step list: platform opening, navigation,
// one step per field in spec order, trigger and observation.
func buildSteps(scenario, platform string, spec *FieldSpec, assignment Assignment) []string {
	opening, ok := platformOpenings[platform]
	if !ok {
		opening = platformOpenings["generic"]
	}
	steps := make([]string, 0, len(opening)+len(assignment)+3)
	steps = append(steps, opening...)
	steps = append(steps, Replace("Navigate to the part of the system where the '{{scenario}}' operation is performed (screen, API endpoint, or flow).",
		map[string]interface{}{"scenario": scenario}))
	for _, field := range spec.Fields() {
		steps = append(steps, Replace(stateStepTemplates[assignment[field]], map[string]interface{}{
			"field":    field,
			"lower":    strings.ToLower(field),
			"scenario": scenario,
		}))
	}
	steps = append(steps,
		Replace("Trigger the '{{scenario}}' operation (e.g. click the corresponding button, submit the form, or send the API request).",
			map[string]interface{}{"scenario": scenario}),
		"Observe the system behaviour in the UI, logs, and/or API response, including status codes and returned data.",
	)
	return steps
}

func buildExpectedResult(scenario string, categories []string) string {
	has := func(name string) bool {
		for _, c := range categories {
			if c == name {
				return true
			}
		}
		return false
	}
	s := strings.TrimSpace(scenario)
	switch {
	case has("Positive") && !has("Negative") && !has("Validation"):
		return Replace("The system successfully completes the '{{scenario}}' operation. The expected UI changes, data updates, "+
			"and/or API responses are produced without errors. No validation or error messages are displayed, "+
			"and the system state is consistent and correct, with no crashes or unstable behavior.",
			map[string]interface{}{"scenario": s})
	case has("Validation") || has("Edge"):
		return "The system does not proceed with the main operation. Clear and descriptive validation messages are " +
			"displayed or returned for all fields that are empty or invalid. No partial data is stored, no corrupted " +
			"state is created, and the system exhibits no crashes or unstable behavior."
	case has("Security"):
		return "The system protects against unauthorized or suspicious usage of the scenario. Privileged operations are " +
			"rejected, error messages remain generic without sensitive information leakage, and no session or " +
			"privileged access is granted. The system remains stable with no crashes or unstable behavior."
	case has("Negative"):
		return "The system rejects the operation for this combination of inputs. Appropriate error or validation messages " +
			"are displayed or returned, and the system remains stable with no crashes or unstable behavior."
	default:
		return Replace("The system handles the '{{scenario}}' operation in accordance with the specification for this input "+
			"combination, with no crashes or unstable behavior.", map[string]interface{}{"scenario": s})
	}
}

// buildMarkdown renders a standalone markdown block: heading, category,
// combination list, numbered steps and the expected result.
func buildMarkdown(caseID, scenario string, categories []string, spec *FieldSpec, assignment Assignment, steps []string, expected string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "### %s - %s Combination Test\n", caseID, titleCase(scenario))
	fmt.Fprintf(&sb, "**Category:** %s\n", strings.Join(categories, ", "))
	sb.WriteString("**Combination:**\n")
	for _, field := range spec.Fields() {
		fmt.Fprintf(&sb, "- **%s**: %s\n", field, assignment[field])
	}
	sb.WriteString("\n**Steps:**\n")
	for i, step := range steps {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}
	sb.WriteString("\n**Expected Result:**\n")
	fmt.Fprintf(&sb, "- %s\n", expected)
	return sb.String()
}

func titleCase(scenario string) string {
	s := strings.TrimSpace(scenario)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
