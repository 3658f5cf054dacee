package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"littlemeals/models"
)

// Machine-readable validation codes. These are part of the API surface
// the mobile clients key on; renaming one is a breaking change.
const (
	CodeRequiredField        = "REQUIRED_FIELD"
	CodeMinLength            = "MIN_LENGTH"
	CodeMaxLength            = "MAX_LENGTH"
	CodeInvalidValue         = "INVALID_VALUE"
	CodeInvalidDate          = "INVALID_DATE"
	CodeInvalidDateFuture    = "INVALID_DATE_FUTURE"
	CodeInvalidDatePast      = "INVALID_DATE_PAST"
	CodeMissingChildResponse = "MISSING_CHILD_RESPONSE"
	CodeInvalidResponseType  = "INVALID_RESPONSE_TYPE"
	CodeInvalidChildID       = "INVALID_CHILD_ID"
	CodeInvalidCharacters    = "INVALID_CHARACTERS"
)

const (
	foodNameMinLen = 2
	foodNameMaxLen = 100
	notesMaxLen    = 500
	pastWindowDays = 30
)

// ValidationError is a structured finding you can attribute to a form
// field in the client.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s [%s]", e.Field, e.Message, e.Code)
}

// ValidationResult is the outcome of validating one candidate record.
// IsValid is always derived from Errors; there is no separate state to
// drift out of sync.
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors"`
}

func resultOf(errs []ValidationError) ValidationResult {
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// ValidResult is the identity for Combine.
func ValidResult() ValidationResult {
	return ValidationResult{IsValid: true}
}

// Combine concatenates the error lists of several partial results and
// recomputes validity. Associative, with ValidResult as identity, so
// callers may group partial results however they like.
func Combine(results ...ValidationResult) ValidationResult {
	var errs []ValidationError
	for _, r := range results {
		errs = append(errs, r.Errors...)
	}
	return resultOf(errs)
}

// InvalidRecordError adapts a failed result to the error interface for
// call sites that prefer fail-fast handling. It layers on top of the
// result-based API and carries the complete error list unchanged.
type InvalidRecordError struct {
	Errors []ValidationError `json:"errors"`
}

func (e *InvalidRecordError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, ve := range e.Errors {
		parts = append(parts, ve.Error())
	}
	return "meal record validation failed: " + strings.Join(parts, "; ")
}

// Err returns nil for a valid result, otherwise an *InvalidRecordError
// wrapping every finding.
func (r ValidationResult) Err() error {
	if r.IsValid {
		return nil
	}
	return &InvalidRecordError{Errors: r.Errors}
}

// containsHarmfulPattern mirrors the sanitizer's rule set, but as a
// detector: sanitized input can still carry an unclosed "<script" or a
// bare "javascript:" fragment, and those must be reported, not saved.
func containsHarmfulPattern(s string) bool {
	if strings.Contains(strings.ToLower(s), "<script") {
		return true
	}
	return jsURIRe.MatchString(s) || eventHandlerRe.MatchString(s)
}

// ValidateFoodName checks the food name field. Checks are independent;
// a name can be flagged for length and for harmful content at once.
func ValidateFoodName(name string) []ValidationError {
	var errs []ValidationError
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		errs = append(errs, ValidationError{
			Field:   "foodName",
			Message: "Food name is required",
			Code:    CodeRequiredField,
		})
	} else {
		if utf8.RuneCountInString(trimmed) < foodNameMinLen {
			errs = append(errs, ValidationError{
				Field:   "foodName",
				Message: fmt.Sprintf("Food name must be at least %d characters", foodNameMinLen),
				Code:    CodeMinLength,
			})
		}
		if utf8.RuneCountInString(trimmed) > foodNameMaxLen {
			errs = append(errs, ValidationError{
				Field:   "foodName",
				Message: fmt.Sprintf("Food name must be at most %d characters", foodNameMaxLen),
				Code:    CodeMaxLength,
			})
		}
	}
	if containsHarmfulPattern(name) {
		errs = append(errs, ValidationError{
			Field:   "foodName",
			Message: "Food name contains characters that are not allowed",
			Code:    CodeInvalidCharacters,
		})
	}
	return errs
}

// ValidateMealType checks the meal type against the closed set.
func ValidateMealType(mt models.MealType) []ValidationError {
	if mt == "" {
		return []ValidationError{{
			Field:   "mealType",
			Message: "Meal type is required",
			Code:    CodeRequiredField,
		}}
	}
	for _, valid := range models.MealTypes {
		if mt == valid {
			return nil
		}
	}
	return []ValidationError{{
		Field:   "mealType",
		Message: fmt.Sprintf("Meal type must be one of: %s", joinMealTypes()),
		Code:    CodeInvalidValue,
	}}
}

func joinMealTypes() string {
	names := make([]string, len(models.MealTypes))
	for i, mt := range models.MealTypes {
		names[i] = string(mt)
	}
	return strings.Join(names, ", ")
}

// ValidateMealDate checks the date against the inclusive logging window
// [now-30d, now+1d]. The window is anchored to the instant the check
// runs; it is never cached across calls.
func ValidateMealDate(date time.Time) []ValidationError {
	return validateMealDateAt(date, time.Now())
}

func validateMealDateAt(date, now time.Time) []ValidationError {
	if date.IsZero() {
		return []ValidationError{{
			Field:   "date",
			Message: "A valid meal date is required",
			Code:    CodeInvalidDate,
		}}
	}
	// Both bounds are evaluated; neither check assumes the other failed.
	var errs []ValidationError
	if date.After(now.AddDate(0, 0, 1)) {
		errs = append(errs, ValidationError{
			Field:   "date",
			Message: "Meal date cannot be more than 1 day in the future",
			Code:    CodeInvalidDateFuture,
		})
	}
	if date.Before(now.AddDate(0, 0, -pastWindowDays)) {
		errs = append(errs, ValidationError{
			Field:   "date",
			Message: fmt.Sprintf("Meal date cannot be more than %d days in the past", pastWindowDays),
			Code:    CodeInvalidDatePast,
		})
	}
	return errs
}

// ValidateMealNotes checks the optional notes field. Absent notes are
// fine; only the length is bounded.
func ValidateMealNotes(notes string) []ValidationError {
	if utf8.RuneCountInString(notes) > notesMaxLen {
		return []ValidationError{{
			Field:   "notes",
			Message: fmt.Sprintf("Notes must be at most %d characters", notesMaxLen),
			Code:    CodeMaxLength,
		}}
	}
	return nil
}

// ValidateChildResponses cross-checks the responses on a candidate
// record against the authoritative children list. Three independent
// passes, all run to completion:
//
//   - every child must be covered by an entry with a recorded response
//   - every entry must reference a known child
//   - every recorded response must be a valid ResponseType
//
// Duplicate entries for one child are tolerated; any one of them with a
// recorded response covers that child.
func ValidateChildResponses(children []models.Child, responses []models.ChildResponse) []ValidationError {
	var errs []ValidationError

	known := make(map[string]bool, len(children))
	for _, c := range children {
		known[c.ID] = true
	}

	answered := make(map[string]bool, len(responses))
	for i, r := range responses {
		if !known[r.ChildID] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("childResponses[%d].childId", i),
				Message: "Response refers to a child that is not in this family",
				Code:    CodeInvalidChildID,
			})
		}
		switch r.Response {
		case models.ResponseUnset:
			// not yet recorded; handled by the completeness pass
		case models.ResponseEaten, models.ResponsePartial, models.ResponseRefused:
			answered[r.ChildID] = true
		default:
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("childResponses[%d].response", i),
				Message: fmt.Sprintf("Response must be one of: %s, %s, %s", models.ResponseEaten, models.ResponsePartial, models.ResponseRefused),
				Code:    CodeInvalidResponseType,
			})
		}
	}

	for _, c := range children {
		if answered[c.ID] {
			continue
		}
		name := strings.TrimSpace(c.Name)
		if name == "" {
			name = "this child"
		}
		errs = append(errs, ValidationError{
			Field:   "childResponses",
			Message: fmt.Sprintf("No response recorded for %s", name),
			Code:    CodeMissingChildResponse,
		})
	}

	return errs
}

// ValidateMealRecord runs the full rule set over a candidate record and
// the family's children and reports every finding at once; there is no
// early exit. Free-text fields are sanitized before their rules run.
// The record itself is never mutated.
func ValidateMealRecord(rec *models.MealRecord, children []models.Child) ValidationResult {
	var errs []ValidationError
	errs = append(errs, ValidateFoodName(SanitizeInput(rec.FoodName))...)
	errs = append(errs, ValidateMealType(rec.MealType)...)
	errs = append(errs, ValidateMealDate(rec.Date)...)
	errs = append(errs, ValidateMealNotes(SanitizeInput(rec.Notes))...)
	errs = append(errs, ValidateChildResponses(children, rec.ChildResponses)...)
	return resultOf(errs)
}
