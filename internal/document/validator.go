package document

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/boxtable/internal/table"
	tableerrors "github.com/alexisbeaulieu97/boxtable/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for
// documents.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("table_style", func(fl validator.FieldLevel) bool {
			return table.IsKnownStyle(table.StyleID(fl.Field().String()))
		})

		validateInst = v
	})

	return validateInst
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return tableerrors.NewValidationError(field, msg, err)
	}

	return tableerrors.NewValidationError("document", err.Error(), err)
}

// fieldName drops the root struct name from the namespace, leaving the YAML
// path of the offending field.
func fieldName(fe validator.FieldError) string {
	parts := strings.SplitN(fe.Namespace(), ".", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return fe.Field()
}
