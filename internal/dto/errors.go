package dto

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a wire field name to a human-readable message.
// It is the body of every 400 response.
type FieldErrors map[string]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = msg
}

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

func init() {
	// report validation errors under json field names, not Go ones
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// FromBinding converts a gin binding error into a FieldErrors map.
func FromBinding(err error) FieldErrors {
	out := FieldErrors{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = messageFor(fe)
		}
		return out
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		out[ute.Field] = "invalid value"
		return out
	}

	out["non_field_errors"] = "invalid request body"
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return "ensure this field has at least " + fe.Param() + " characters"
	case "gte":
		return "ensure this value is greater than or equal to " + fe.Param()
	default:
		return "invalid value"
	}
}
