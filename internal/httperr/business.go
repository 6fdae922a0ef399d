package httperr

import "errors"

// BusinessError is a rule violation identified by a stable code.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// FieldError rejects one request field; it renders as a 400 naming the field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func ErrField(field, message string) error {
	return FieldError{Field: field, Message: message}
}

// AsFields collects every FieldError wrapped in err.
func AsFields(err error) (map[string]string, bool) {
	var fe FieldError
	if errors.As(err, &fe) {
		return map[string]string{fe.Field: fe.Message}, true
	}
	var fes FieldErrors
	if errors.As(err, &fes) && len(fes) > 0 {
		return map[string]string(fes), true
	}
	return nil, false
}

// FieldErrors groups several field rejections from one request.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return "validation_failed"
}
