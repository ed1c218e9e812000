// internal/service/validation.go
package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/futurelabs/labtrack/internal/domain"
	"github.com/go-playground/validator/v10"
)

// newValidator builds a validator that reports failing fields under their
// json names, so ValidationError details match the wire format.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// asValidationError converts validator failures into the domain taxonomy;
// other errors pass through untouched.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return &domain.ValidationError{Fields: fields}
	}
	return err
}
