package utils

// User-facing templates for each validation code. Initialized once and
// never written after that; additions go through code review, not
// runtime mutation.
var errorMessages = map[string]string{
	CodeRequiredField:        "This field is required",
	CodeMinLength:            "This entry is too short",
	CodeMaxLength:            "This entry is too long",
	CodeInvalidValue:         "Choose one of the listed options",
	CodeInvalidDate:          "Enter a valid date",
	CodeInvalidDateFuture:    "Meals can only be logged up to 1 day ahead",
	CodeInvalidDatePast:      "Meals can only be logged up to 30 days back",
	CodeMissingChildResponse: "Each child needs a response before saving",
	CodeInvalidResponseType:  "Responses must be eaten, partial, or refused",
	CodeInvalidChildID:       "This response refers to an unknown child",
	CodeInvalidCharacters:    "This entry contains characters that are not allowed",
}

// MessageFor resolves the display message for a finding. The lookup
// never fails: unknown codes fall back to the message carried on the
// error, and a blank one falls back to a generic string.
func MessageFor(e ValidationError) string {
	if msg, ok := errorMessages[e.Code]; ok {
		return msg
	}
	if e.Message != "" {
		return e.Message
	}
	return "Validation error"
}
