package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FromBinding turns a gin binding error into a field -> message map.
// Field names are the json names registered on the validator engine.
func FromBinding(err error) map[string]string {
	fields := make(map[string]string)

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		for _, fe := range ves {
			fields[fieldName(fe)] = message(fe)
		}
		return fields
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		name := typeErr.Field
		if name == "" {
			name = "non_field_errors"
		}
		fields[name] = fmt.Sprintf("Expected a %s.", typeErr.Type.String())
		return fields
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		fields["non_field_errors"] = "Malformed JSON body."
		return fields
	}

	fields["non_field_errors"] = err.Error()
	return fields
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	// drop the struct name prefix, keep nested paths like services[0]
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("Ensure this field has at least %s elements.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("Ensure this field has no more than %s elements.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return "Enter a valid URL."
	case "shop_status", "service_category", "booking_status", "payment_method":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "iso_date":
		return "Date has wrong format. Use YYYY-MM-DD."
	case "money":
		return "Ensure a non-negative amount below 10000 with at most 2 decimal places."
	default:
		return fmt.Sprintf("Invalid value for %s.", fe.Field())
	}
}
