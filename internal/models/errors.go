package models

import (
	"errors"
	"fmt"
)

// ValidationError: a write-time rule violation (missing name, negative
// quantity, unknown status, malformed date). The operation is aborted with
// no partial write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
