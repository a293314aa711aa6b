package validator

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/geocoder-api/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// в сообщениях используем имена полей из JSON
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate - валидация структуры; первая ошибка переводится в AppError
func Validate(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return ToAppError(err)
	}
	return nil
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// ToAppError maps the first validation failure onto the request error taxonomy.
func ToAppError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.ErrInvalidBody.Newf("invalid request body: %v", err)
	}

	fe := verrs[0]
	field := fieldPath(fe.Namespace())

	switch fe.Field() {
	case "lon", "lat":
		if fe.Tag() == "required" {
			return errors.ErrInvalidCoordinate.Newf("missing param '%s', try instead {\"lat\": 51.5, \"lon\": 8.0}", field)
		}
		return errors.ErrOutOfRange.Newf("invalid param '%s'", field)
	}

	switch fe.Tag() {
	case "required":
		return errors.ErrMissingRequiredField.Newf("missing param '%s'", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return errors.ErrMissingRequiredField.Newf("param '%s' must contain at least %s element(s)", field, fe.Param())
		}
		return errors.ErrOutOfRange.Newf("param '%s' must be >= %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return errors.ErrInvalidParameter.Newf("param '%s' must contain at most %s element(s)", field, fe.Param())
		}
		return errors.ErrOutOfRange.Newf("param '%s' must be <= %s", field, fe.Param())
	default:
		return errors.ErrInvalidParameter.Newf("invalid param '%s'", field)
	}
}

// fieldPath drops the root struct name: "SearchBody.location.lon" -> "location.lon".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
