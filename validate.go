package convo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the message has an author. Messages built in code are
// trusted; loaders call Validate on data read from disk.
func (m Message) Validate() error {
	return ValidateStruct(m)
}

// Validate checks every message in the transcript.
func (t Transcript) Validate() error {
	for i, m := range t.Messages {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
	}
	return nil
}

// ValidateStruct runs struct-tag validation on v and wraps the first failure
// in ErrValidation. Loaders use it on their wire DTOs, where a nil pointer
// field means the key was absent from the file.
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0].Field()
		return fmt.Errorf("%s%s is %s: %w", strings.ToLower(field[:1]), field[1:], verrs[0].Tag(), ErrValidation)
	}
	return fmt.Errorf("%v: %w", err, ErrValidation)
}
