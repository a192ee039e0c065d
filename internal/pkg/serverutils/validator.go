package serverutils

import (
	"reflect"
	"strings"

	"ichibetsu-be/internal/constant"
	"ichibetsu-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRequest checks the struct's validate tags and converts failures to
// the enveloped VALIDATION_ERROR shape, listing the offending fields.
func ValidateRequest(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fe.Field())
	}

	return apperror.NewValidation(
		constant.CodeValidationError,
		constant.ErrMsgValidationRequired,
		map[string]interface{}{"required": fields},
	)
}
