package models

// ValidationResult is the outcome of a structural scan over a workflow
// graph. Errors make the graph non-runnable; warnings flag suspicious but
// legal shapes and never affect Valid.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// NewValidationResult builds a result with Valid derived from the error
// list.
func NewValidationResult(errors, warnings []string) ValidationResult {
	if errors == nil {
		errors = []string{}
	}

	if warnings == nil {
		warnings = []string{}
	}

	return ValidationResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}
