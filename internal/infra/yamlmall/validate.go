package yamlmall

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aalvaropc/mallctl/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their YAML names so errors point at the file's keys.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateStruct(path string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &domain.OpError{
			Op:   "yamlmall.validate",
			Kind: domain.KindInvalidData,
			Path: path,
			Err:  err,
		}
	}

	fe := verrs[0]
	return invalidField(path, fieldPath(fe.Namespace()), describe(fe))
}

// fieldPath drops the Go type name validator puts in front of every namespace.
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value is required"
	case "len":
		if fe.Field() == "working_hours" {
			return "working_hours must be [start, end]"
		}
		return fmt.Sprintf("must have exactly %s entries", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlmall.validate",
		Kind: domain.KindInvalidData,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidData),
	}
}
