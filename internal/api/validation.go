package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationIssue describes one field-level problem with a request body.
type ValidationIssue struct {
	Code    string   `json:"code"`
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report the JSON field name
// instead of the Go struct field name.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
}

// validationIssues converts a binding error into the issue list returned
// to the client.
func validationIssues(err error) []ValidationIssue {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		issues := make([]ValidationIssue, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			issues = append(issues, ValidationIssue{
				Code:    fe.Tag(),
				Path:    []string{fe.Field()},
				Message: issueMessage(fe),
			})
		}
		return issues
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []ValidationIssue{{
			Code:    "invalid_type",
			Path:    []string{typeErr.Field},
			Message: fmt.Sprintf("Expected %s, received %s", typeErr.Type, typeErr.Value),
		}}
	}

	return []ValidationIssue{{
		Code:    "invalid_json",
		Path:    []string{},
		Message: "Request body must be a valid JSON object",
	}}
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Expected one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fe.Error()
	}
}
