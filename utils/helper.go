package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

func ProcessValidationErrors(err error) map[string]string {

	validationErrors := err.(validator.ValidationErrors)

	errorResponse := make(map[string]string)

	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}

	return errorResponse
}

func NewTrue() *bool {
	b := true
	return &b
}

func NewFalse() *bool {
	b := false
	return &b
}

func NewPtr[T any](v T) *T {
	return &v
}

// DereferencePtr returns the pointed-to value, or def when the pointer is nil.
func DereferencePtr[T any](ptr *T, def T) T {
	if ptr == nil {
		return def
	}
	return *ptr
}

// SplitConcat splits a GROUP_CONCAT column into its elements, dropping
// empties. Aggregate rows carry case-number lists this way in SQL; the store
// boundary hands them to callers as proper slices.
func SplitConcat(concat string) []string {
	if strings.TrimSpace(concat) == "" {
		return nil
	}
	parts := strings.Split(concat, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
