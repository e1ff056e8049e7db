package services

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// MaxUploadSize is the hard cap of the generic upload flow.
const MaxUploadSize = 10 << 20 // 10 MiB

// ValidationError is a field-level rejection carrying a machine code and a
// user-facing message.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateTitleNoDigits rejects titles containing any digit.
func ValidateTitleNoDigits(title string) *ValidationError {
	for _, r := range title {
		if unicode.IsDigit(r) {
			return &ValidationError{Field: "title", Code: "no_digits", Message: "digits are not allowed in the title"}
		}
	}
	return nil
}

// ValidateTitleNoTest rejects titles containing the reserved word "test",
// case-insensitively.
func ValidateTitleNoTest(title string) *ValidationError {
	if strings.Contains(strings.ToLower(title), "test") {
		return &ValidationError{Field: "title", Code: "no_test", Message: `the word "test" is not allowed in the title`}
	}
	return nil
}

// ValidateQuickTitle is the quick-form pipeline: only the digit check runs.
func ValidateQuickTitle(title string) []*ValidationError {
	var errs []*ValidationError
	if verr := ValidateTitleNoDigits(title); verr != nil {
		errs = append(errs, verr)
	}
	return errs
}

// ValidateModelTitle is the full-form pipeline: reserved word first, then
// digits. All failing checks are reported.
func ValidateModelTitle(title string) []*ValidationError {
	var errs []*ValidationError
	if verr := ValidateTitleNoTest(title); verr != nil {
		errs = append(errs, verr)
	}
	if verr := ValidateTitleNoDigits(title); verr != nil {
		errs = append(errs, verr)
	}
	return errs
}

// ValidatePrice parses a submitted price: non-negative, at most 10 digits in
// total with at most 2 of them after the decimal point.
func ValidatePrice(raw string) (float64, *ValidationError) {
	invalid := &ValidationError{
		Field:   "price",
		Code:    "price_digits",
		Message: "price must be a number with at most 10 digits and 2 decimal places",
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, invalid
	}

	negative := strings.HasPrefix(raw, "-")
	body := strings.TrimPrefix(raw, "-")

	whole, frac := body, ""
	if i := strings.IndexByte(body, '.'); i >= 0 {
		whole, frac = body[:i], body[i+1:]
	}
	if whole == "" || !isDigits(whole) || len(frac) > 2 || (frac != "" && !isDigits(frac)) {
		return 0, invalid
	}
	// 2 of the 10 digits are reserved for the decimal places.
	if len(strings.TrimLeft(whole, "0")) > 8 {
		return 0, invalid
	}

	value, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return 0, invalid
	}
	if negative {
		return 0, &ValidationError{Field: "price", Code: "price_negative", Message: "price must not be negative"}
	}
	return value, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateUploadSize enforces the 10 MiB cap of the generic upload flow.
func ValidateUploadSize(size int64) *ValidationError {
	if size > MaxUploadSize {
		return &ValidationError{Field: "file", Code: "file_too_large", Message: "file is too large (over 10 MB)"}
	}
	return nil
}

// ValidateImageContent accepts only image payloads for car image fields.
func ValidateImageContent(contentType string) *ValidationError {
	if !strings.HasPrefix(contentType, "image/") {
		return &ValidationError{Field: "image", Code: "not_image", Message: "only image files are accepted"}
	}
	return nil
}
