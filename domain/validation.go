package domain

import (
	"fmt"
	"unicode/utf8"
	"web-messenger/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateSendMessage checks the request before any network call is made.
// maxLength is counted in runes.
func ValidateSendMessage(req SendMessageRequest, maxLength int) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	if maxLength > 0 && utf8.RuneCountInString(req.Content) > maxLength {
		return fmt.Errorf("%w: message exceeds %d characters", errors.ErrValidation, maxLength)
	}
	return nil
}
