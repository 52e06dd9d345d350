package serverutils

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError lists failed fields keyed by their struct field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "is required"
		case "oneof":
			fields[fe.Field()] = "must be one of: " + fe.Param()
		default:
			fields[fe.Field()] = "failed on " + fe.Tag()
		}
	}
	return &ValidationError{Fields: fields}
}
