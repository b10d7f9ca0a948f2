package utils

import (
	"errors"
	"fmt"
)

var ErrorRecordNotFound = errors.New("record not found")

// ErrorStoreUnavailable marks a failed record-store query. Detection and
// scoring wrap their query errors with it so callers can branch with
// errors.Is without inspecting driver errors.
var ErrorStoreUnavailable = errors.New("record store unavailable")

func WrapStoreError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrorStoreUnavailable, err)
}
