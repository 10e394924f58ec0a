package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct aplica las etiquetas validate y devuelve un mensaje legible con el primer campo inválido.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", fe.Namespace())
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s elementos", fe.Namespace(), fe.Param())
	case "max":
		return fmt.Sprintf("%s admite como máximo %s elementos", fe.Namespace(), fe.Param())
	default:
		return fmt.Sprintf("%s no cumple %s", fe.Namespace(), fe.Tag())
	}
}
