package form

import "regexp"

// Messages shown next to a field that failed validation
const (
	MsgUsernameRequired = "Username is required"
	MsgInvalidEmail     = "Invalid email address"
	MsgImageRequired    = "Image is required"
	MsgLanguageRequired = "At least one language is required"
	MsgGenderRequired   = "Please select a gender"
)

// emailPattern is local-part@domain.tld where every part is one or more
// characters that are neither whitespace nor "@".
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateUsername requires a non-empty username
func ValidateUsername(username string) error {
	if username == "" {
		return NewValidationError(FieldUsername, MsgUsernameRequired)
	}
	return nil
}

// ValidateEmail checks the address against the local@domain.tld pattern.
//
// Examples:
//   - "a@b.c" is valid
//   - "a@b", "a.com" and "@b.com" are not
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return NewValidationError(FieldEmail, MsgInvalidEmail)
	}
	return nil
}

// ValidateGender requires one of the gender options to be selected
func ValidateGender(gender Gender) error {
	if gender == GenderUnset {
		return NewValidationError(FieldGender, MsgGenderRequired)
	}
	return nil
}

// ValidateTags requires at least one committed language tag
func ValidateTags(tags []string) error {
	if len(tags) == 0 {
		return NewValidationError(FieldLanguages, MsgLanguageRequired)
	}
	return nil
}

// ValidateImage requires a selected file
func ValidateImage(image *FileHandle) error {
	if image == nil {
		return NewValidationError(FieldImage, MsgImageRequired)
	}
	return nil
}

// Validate checks every field independently and returns the complete error set.
// There is no early exit: every failing field gets a message.
func Validate(s State) Errors {
	errs := make(Errors)

	checks := []error{
		ValidateUsername(s.Username),
		ValidateEmail(s.Email),
		ValidateImage(s.Image),
		ValidateTags(s.Tags),
		ValidateGender(s.Gender),
	}
	for _, err := range checks {
		if fe, ok := err.(*FieldError); ok {
			errs[fe.Field] = fe.Message
		}
	}

	return errs
}
